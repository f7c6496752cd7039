package engine

import (
	"fmt"
	"strings"

	"github.com/wricardo/boggle-game/game/dictionary"
)

// Engine provides the main interface for word-search operations
type Engine interface {
	// Board queries
	ExistsPath(word string) bool
	FindPath(word string) []Position
	EnumerateAllWords() []string

	// Dictionary
	IsWord(word string) bool

	// Rules
	CheckWord(word string, alreadyFound []string) Verdict
	ScoreWord(word string) int
	MinWordLength() int

	GetBoard() *Board
}

// GridEngine implements the Engine interface over one board and dictionary.
// It holds no mutable state; each query allocates its own search.
type GridEngine struct {
	board         *Board
	dict          *dictionary.Dictionary
	minWordLength int
}

// NewEngine creates a new search engine for the board and dictionary
func NewEngine(board *Board, dict *dictionary.Dictionary, minWordLength int) (*GridEngine, error) {
	if board == nil {
		return nil, fmt.Errorf("board cannot be nil")
	}
	if dict == nil {
		return nil, fmt.Errorf("dictionary cannot be nil")
	}
	if minWordLength < 1 {
		return nil, fmt.Errorf("minimum word length must be at least 1, got %d", minWordLength)
	}

	return &GridEngine{
		board:         board,
		dict:          dict,
		minWordLength: minWordLength,
	}, nil
}

// GetBoard returns the board being searched
func (e *GridEngine) GetBoard() *Board {
	return e.board
}

// GetDictionary returns the dictionary used for word checks
func (e *GridEngine) GetDictionary() *dictionary.Dictionary {
	return e.dict
}

// MinWordLength returns the shortest word length that counts
func (e *GridEngine) MinWordLength() int {
	return e.minWordLength
}

// ExistsPath reports whether word can be traced on the board along adjacent
// cells without reusing a cell. Dictionary membership is not consulted.
func (e *GridEngine) ExistsPath(word string) bool {
	return e.FindPath(word) != nil
}

// FindPath returns the cells of one path spelling word, or nil if there is none
func (e *GridEngine) FindPath(word string) []Position {
	word = dictionary.Normalize(word)
	if word == "" || len(word) > e.board.Cells() {
		return nil
	}
	return e.newSearch().findPath(word)
}

// EnumerateAllWords returns every dictionary word of at least MinWordLength
// letters that can be traced on the board, sorted and without duplicates
func (e *GridEngine) EnumerateAllWords() []string {
	return e.newSearch().enumerate()
}

// IsWord reports whether word is in the dictionary
func (e *GridEngine) IsWord(word string) bool {
	return e.dict.Contains(dictionary.Normalize(word))
}

// CheckWord judges a submission the way a referee would: too short first,
// then dictionary membership, then presence on the board, then whether it
// is already in alreadyFound (compared case-insensitively).
func (e *GridEngine) CheckWord(word string, alreadyFound []string) Verdict {
	word = dictionary.Normalize(word)

	switch {
	case len(word) < e.minWordLength:
		return TooShort
	case !e.dict.Contains(word):
		return NotAWord
	case !e.ExistsPath(word):
		return NotOnBoard
	}

	for _, w := range alreadyFound {
		if strings.EqualFold(w, word) {
			return AlreadyFound
		}
	}
	return Accepted
}

// ScoreWord returns the points for an accepted word: one point for a word of
// exactly MinWordLength letters and one more per extra letter
func (e *GridEngine) ScoreWord(word string) int {
	n := len(dictionary.Normalize(word))
	if n < e.minWordLength {
		return 0
	}
	return n - e.minWordLength + 1
}

// MaxScore returns the total points available on the board
func (e *GridEngine) MaxScore() int {
	total := 0
	for _, w := range e.EnumerateAllWords() {
		total += e.ScoreWord(w)
	}
	return total
}
