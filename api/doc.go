// Package api serves the Boggle game over HTTP.
//
// Endpoints:
//
// Sessions:
//   - POST /api/sessions - Create a session ({"config_id": "classic"})
//   - GET /api/sessions - List sessions (?sort=created|accessed&order=asc|desc&limit=N)
//   - GET /api/sessions/scoreboard - Scores of several sessions (?sessionIds=a,b or ?configName=x)
//   - GET /api/sessions/{id} - Get a session
//   - DELETE /api/sessions/{id} - Delete a session
//
// Turns:
//   - GET /api/sessions/{id}/state - Current game state
//   - POST /api/sessions/{id}/words - Submit a word for the current player ({"word": "cats"})
//   - POST /api/sessions/{id}/end-turn - Pass to the next player; the last turn ends the game
//   - POST /api/sessions/{id}/reset - Start the game over on the same board
//   - GET /api/sessions/{id}/history - Submission history (?page&limit&order)
//
// Board queries (no state change):
//   - GET /api/sessions/{id}/check?word=W - Verdict, points and path for W
//   - GET /api/sessions/{id}/solutions - Every dictionary word on the board
//
// Configuration:
//   - GET /api/configs - List board configurations
//   - GET /api/configs/{name} - Get one configuration
//   - POST /api/configs - Save a configuration
//
// Other:
//   - GET /ws?session=ID - WebSocket updates for a session
//   - GET /metrics - Prometheus metrics
//   - GET /health - Liveness check
//
// Errors are returned as {"error": "..."}: 400 for bad input or invalid
// boards, 404 for unknown sessions and configs, 409 when the game is over.
// A rejected word is not an error; it returns 200 with its verdict.
package api
