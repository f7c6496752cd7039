// Package websocket pushes live game updates to browsers and other watchers.
//
// A central Hub owns every connection. Clients attach to a single session
// with the session query parameter (/ws?session=ab12) and receive a JSON
// Message whenever that session changes:
//
//	{"session_id": "ab12", "event": "state_update", "game_state": {...}, "timestamp": "..."}
//
// Events are state_update, word_accepted, word_rejected, turn_ended,
// game_over and game_reset. The socket is push only; words are submitted
// through the REST API or MCP tools.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//	router.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
//		hub.ServeWS(w, r, r.URL.Query().Get("session"))
//	})
//
// Broadcasts never block the caller. When the hub's queue is full the
// message is dropped, and a client whose send buffer is full is
// disconnected.
package websocket
