package service

import (
	"time"

	"github.com/wricardo/boggle-game/game/engine"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string              `json:"id"`
	ConfigName     string              `json:"config_name"`
	CreatedAt      time.Time           `json:"created_at"`
	LastAccessedAt time.Time           `json:"last_accessed_at"`
	GameState      *engine.GameState   `json:"game_state"`
	BoardConfig    *engine.BoardConfig `json:"board_config"`
}

// SubmitResult contains the result of submitting a word
type SubmitResult struct {
	Accepted  bool              `json:"accepted"`
	Word      string            `json:"word"`
	Verdict   engine.Verdict    `json:"verdict"`
	Points    int               `json:"points"`
	Player    int               `json:"player"` // 1-based
	Score     int               `json:"score"`  // submitting player's score after the word
	Message   string            `json:"message"`
	Path      []engine.Position `json:"path,omitempty"`
	GameState *engine.GameState `json:"game_state"`
	Events    []GameEvent       `json:"events,omitempty"`
}

// CheckResult reports what a submission of word would do, without recording it
type CheckResult struct {
	Word         string            `json:"word"`
	Verdict      engine.Verdict    `json:"verdict"`
	InDictionary bool              `json:"in_dictionary"`
	OnBoard      bool              `json:"on_board"`
	Points       int               `json:"points"`
	Path         []engine.Position `json:"path,omitempty"`
}

// SolveResult lists every dictionary word on a session's board
type SolveResult struct {
	Words       []string `json:"words"`
	Count       int      `json:"count"`
	MaxScore    int      `json:"max_score"`
	LongestWord string   `json:"longest_word,omitempty"`
}

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string    `json:"type"` // "word_accepted", "word_rejected", "turn_ended", "game_over", "reset"
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Player    int       `json:"player,omitempty"` // 1-based
}

// HistoryOptions configures submission history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated submission history
type HistoryResponse struct {
	Submissions      []engine.SubmissionEntry `json:"submissions"`
	TotalSubmissions int                      `json:"total_submissions"`
	Page             int                      `json:"page"`
	PageSize         int                      `json:"page_size"`
	TotalPages       int                      `json:"total_pages"`
	HasNext          bool                     `json:"has_next"`
	HasPrevious      bool                     `json:"has_previous"`
}

// ConfigInfo provides information about a board configuration
type ConfigInfo struct {
	Filename      string `json:"filename"`
	ConfigID      string `json:"config_id"` // The identifier to use for session creation
	Name          string `json:"name"`      // Display name
	Description   string `json:"description"`
	Size          int    `json:"size"`
	MinWordLength int    `json:"min_word_length"`
	Players       int    `json:"players"`
}
