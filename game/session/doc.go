// Package session provides session management for the Boggle game server.
//
// The session package implements:
//   - Thread-safe session storage and retrieval
//   - Unique session ID generation
//   - Optional file persistence of game state
//   - Session cleanup and expiration
//
// Core Types:
//
// Manager is the main session manager that handles all session operations.
// Each service.Session pairs a GridEngine over the session's board with the
// GameState of the game being played on it.
//
// Session Identifiers:
//
// Sessions use 4-character hex IDs for easy reference. Lookups are
// case-insensitive. IDs are also file names when persistence is enabled, so
// path separators and dots are rejected.
//
// Persistence:
//
// FilePersistence stores one JSON file per session holding the config ID and
// the game state. The engine is not stored: on load it is rebuilt from the
// configuration and its dictionary, and the saved board must still match.
//
// Usage:
//
//	persistence, _ := session.NewFilePersistence("sessions", configManager)
//	manager := session.NewManagerWithPersistence(persistence)
//	manager.LoadPersistedSessions()
//
//	sess, err := manager.Create("", "classic", boardConfig, dict)
//	if err != nil {
//		log.Fatal(err)
//	}
package session
