// Package mcp exposes the Boggle game to AI agents over the Model Context
// Protocol.
//
// Client is a thin proxy: every tool call becomes a request to the REST API
// and the JSON reply is rendered as text for the agent. The game itself
// always runs in the API server, so agents, browsers and WebSocket watchers
// all see the same sessions.
//
// MCP Tools:
//   - create_session, list_sessions, get_session
//   - game_state: board, scores and the player to move
//   - submit_word: submit a word for the current player
//   - end_turn: pass to the next player; the last turn ends the game
//   - check_word: verdict, points and path without submitting
//   - solve_board: every dictionary word on the board
//   - reset_game, word_history, list_configs, game_instructions
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
package mcp
