package engine

// Verdict is the outcome of checking a submitted word
type Verdict string

const (
	Accepted     Verdict = "accepted"
	TooShort     Verdict = "too_short"
	NotAWord     Verdict = "not_a_word"
	NotOnBoard   Verdict = "not_on_board"
	AlreadyFound Verdict = "already_found"
	GameFinished Verdict = "game_over"

	// Validation constants
	MinBoardSize         = 1
	MaxBoardSize         = 20
	DefaultMinWordLength = 4
	DefaultPlayers       = 2
	MaxPlayers           = 4
	WebSocketBufferSize  = 256

	// EndTurnWord ends the current player's turn in the console game
	EndTurnWord = "???"

	// NoWinner marks a tie in GameState.Winner
	NoWinner = -1
)

// Position represents row,col coordinates on the board
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// BoardConfig represents a board definition loaded from JSON or YAML
type BoardConfig struct {
	Name          string   `json:"name" yaml:"name"`
	Description   string   `json:"description" yaml:"description"`
	Size          int      `json:"size" yaml:"size"`
	Rows          []string `json:"rows" yaml:"rows"`
	MinWordLength int      `json:"min_word_length,omitempty" yaml:"min_word_length,omitempty"`
	Dictionary    string   `json:"dictionary,omitempty" yaml:"dictionary,omitempty"` // word list path, relative to the config directory
	Players       int      `json:"players,omitempty" yaml:"players,omitempty"`
}

// PlayerState holds one player's found words and score
type PlayerState struct {
	Number int      `json:"number"` // 1-based
	Words  []string `json:"words"`
	Score  int      `json:"score"`
}

// GameState represents the complete state of one game
type GameState struct {
	Board         []string      `json:"board"`
	Size          int           `json:"size"`
	MinWordLength int           `json:"min_word_length"`
	Players       []PlayerState `json:"players"`
	CurrentPlayer int           `json:"current_player"` // 0-based index into Players
	GameOver      bool          `json:"game_over"`
	Winner        int           `json:"winner"` // 0-based index, NoWinner on a tie; only meaningful once GameOver
	Message       string        `json:"message"`
	ConfigName    string        `json:"config_name"`

	// History is cumulative across resets; CurrentSubmissions only covers
	// the game in progress.
	History            []SubmissionEntry `json:"history"`
	TotalSubmissions   int               `json:"total_submissions"`
	CurrentSubmissions int               `json:"current_submissions"`
}

// SubmissionEntry represents a single word submission in the game history
type SubmissionEntry struct {
	Player           int     `json:"player"` // 0-based
	Word             string  `json:"word"`
	Verdict          Verdict `json:"verdict"`
	Points           int     `json:"points"`
	Timestamp        int64   `json:"timestamp"`
	SubmissionNumber int     `json:"submission_number"`
}

// Submission is the result of submitting one word
type Submission struct {
	Player  int        `json:"player"`
	Word    string     `json:"word"`
	Verdict Verdict    `json:"verdict"`
	Points  int        `json:"points"`
	Message string     `json:"message"`
	Path    []Position `json:"path,omitempty"`
}
