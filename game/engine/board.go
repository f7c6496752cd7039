package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

var (
	ErrInvalidSize      = errors.New("invalid board size")
	ErrInvalidCharacter = errors.New("invalid board character")
)

// Board is an immutable square grid of uppercase letters
type Board struct {
	size  int
	cells []byte // row-major
}

// NewBoard builds a board from its rows. Whitespace inside a row is ignored,
// so "C A T S" and "CATS" are the same row. Letters are uppercased.
func NewBoard(rows []string) (*Board, error) {
	n := len(rows)
	if err := checkSize(n); err != nil {
		return nil, err
	}

	cells := make([]byte, 0, n*n)
	for r, row := range rows {
		letters := []rune(strings.Join(strings.Fields(row), ""))
		for c, ch := range letters {
			if !isAlpha(ch) {
				return nil, fmt.Errorf("%w: %q at row %d, col %d (board must contain only alphabetic characters)",
					ErrInvalidCharacter, ch, r+1, c+1)
			}
		}
		if len(letters) != n {
			return nil, fmt.Errorf("%w: row %d has %d letters, expected %d", ErrInvalidSize, r+1, len(letters), n)
		}
		for _, ch := range letters {
			cells = append(cells, byte(unicode.ToUpper(ch)))
		}
	}

	return &Board{size: n, cells: cells}, nil
}

// ReadBoard reads a board in the console format: an integer N followed by
// N*N letters, separated by any amount of whitespace (or none). Only the
// board is consumed; anything after the last letter is left in r.
func ReadBoard(r *bufio.Reader) (*Board, error) {
	var n int
	if _, err := fmt.Fscan(r, &n); err != nil {
		return nil, fmt.Errorf("%w: could not read board size: %v", ErrInvalidSize, err)
	}
	if err := checkSize(n); err != nil {
		return nil, err
	}

	cells := make([]byte, 0, n*n)
	for len(cells) < n*n {
		ch, _, err := r.ReadRune()
		if err != nil {
			if err == io.EOF {
				return nil, fmt.Errorf("%w: expected %d letters, got %d", ErrInvalidCharacter, n*n, len(cells))
			}
			return nil, fmt.Errorf("failed to read board: %w", err)
		}
		if unicode.IsSpace(ch) {
			continue
		}
		if !isAlpha(ch) {
			return nil, fmt.Errorf("%w: %q at row %d, col %d (board must contain only alphabetic characters)",
				ErrInvalidCharacter, ch, len(cells)/n+1, len(cells)%n+1)
		}
		cells = append(cells, byte(unicode.ToUpper(ch)))
	}

	return &Board{size: n, cells: cells}, nil
}

// Size returns N for an NxN board
func (b *Board) Size() int {
	return b.size
}

// Cells returns the number of cells on the board
func (b *Board) Cells() int {
	return len(b.cells)
}

// InBounds reports whether (row, col) is on the board
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

// At returns the letter at (row, col). The position must be in bounds.
func (b *Board) At(row, col int) byte {
	return b.cells[row*b.size+col]
}

// Rows returns the board as one string per row
func (b *Board) Rows() []string {
	rows := make([]string, b.size)
	for r := range rows {
		rows[r] = string(b.cells[r*b.size : (r+1)*b.size])
	}
	return rows
}

// String renders the board with letters separated by spaces, one row per line
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(b.At(r, c))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func checkSize(n int) error {
	if n < MinBoardSize || n > MaxBoardSize {
		return fmt.Errorf("%w: must be between %d and %d, got %d", ErrInvalidSize, MinBoardSize, MaxBoardSize, n)
	}
	return nil
}

// isAlpha accepts ASCII letters only; the dictionary alphabet is A-Z.
func isAlpha(ch rune) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z')
}
