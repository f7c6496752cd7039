// Package service provides the business logic layer for the Boggle game server.
//
// The service package implements:
//   - Multi-session game management
//   - Word submission, turn passing and scoring through the engine
//   - Read-only board queries (check a word, solve the board)
//   - Submission history tracking
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// SessionManager handles session creation, retrieval, and lifecycle.
// ConfigManager loads board configurations and their dictionaries.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the game engine. Each session owns a GridEngine over its board and an
// explicit GameState; the engine never changes, the state is only mutated
// under the service lock. States handed to callers are copies.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr, _ := config.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, configMgr)
//
//	info, err := gameService.CreateSession(ctx, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := gameService.SubmitWord(ctx, info.ID, "stars")
//	state, err := gameService.EndTurn(ctx, info.ID)
package service
