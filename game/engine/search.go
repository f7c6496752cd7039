package engine

import (
	"sort"

	"github.com/wricardo/boggle-game/game/dictionary"
)

// neighbors lists the eight king-move directions
var neighbors = [8]struct{ dr, dc int }{
	{-1, 0},  // North
	{-1, 1},  // North-East
	{0, 1},   // East
	{1, 1},   // South-East
	{1, 0},   // South
	{1, -1},  // South-West
	{0, -1},  // West
	{-1, -1}, // North-West
}

// search is the transient state of one top-level query. visited holds
// exactly the cells of the current partial path and is all false whenever
// no recursive call is active.
type search struct {
	board   *Board
	dict    *dictionary.Dictionary
	minLen  int
	visited [][]bool

	path  []Position
	word  []byte
	found map[string]struct{}
}

func (e *GridEngine) newSearch() *search {
	n := e.board.Size()
	visited := make([][]bool, n)
	for i := range visited {
		visited[i] = make([]bool, n)
	}

	return &search{
		board:   e.board,
		dict:    e.dict,
		minLen:  e.minWordLength,
		visited: visited,
	}
}

// findPath tries every cell holding the first letter as a starting point.
func (s *search) findPath(word string) []Position {
	s.path = make([]Position, 0, len(word))
	for r := 0; r < s.board.Size(); r++ {
		for c := 0; c < s.board.Size(); c++ {
			if s.board.At(r, c) != word[0] {
				continue
			}
			if s.pathFrom(word, 0, r, c) {
				return s.path
			}
		}
	}
	return nil
}

// pathFrom matches word[index:] starting at (row, col). On success s.path
// holds the matched cells; on failure it is left as it was on entry.
func (s *search) pathFrom(word string, index, row, col int) bool {
	if index == len(word) {
		return true
	}
	if !s.board.InBounds(row, col) || s.visited[row][col] || s.board.At(row, col) != word[index] {
		return false
	}

	s.visited[row][col] = true
	s.path = append(s.path, Position{Row: row, Col: col})

	found := false
	for _, d := range neighbors {
		if s.pathFrom(word, index+1, row+d.dr, col+d.dc) {
			found = true
			break
		}
	}

	s.visited[row][col] = false
	if !found {
		s.path = s.path[:len(s.path)-1]
	}
	return found
}

// enumerate collects every word reachable from every starting cell.
func (s *search) enumerate() []string {
	s.found = make(map[string]struct{})
	s.word = make([]byte, 0, s.board.Cells())

	for r := 0; r < s.board.Size(); r++ {
		for c := 0; c < s.board.Size(); c++ {
			s.collect(r, c)
		}
	}

	words := make([]string, 0, len(s.found))
	for w := range s.found {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// collect extends the current candidate with (row, col). A match is recorded
// and the walk still continues while the candidate remains a prefix, so both
// CAT and CATS are found along the same path.
func (s *search) collect(row, col int) {
	if !s.board.InBounds(row, col) || s.visited[row][col] {
		return
	}

	s.word = append(s.word, s.board.At(row, col))
	s.visited[row][col] = true

	candidate := string(s.word)
	if len(s.word) >= s.minLen && s.dict.Contains(candidate) {
		s.found[candidate] = struct{}{}
	}

	if s.dict.ContainsPrefix(candidate) {
		for _, d := range neighbors {
			s.collect(row+d.dr, col+d.dc)
		}
	}

	s.word = s.word[:len(s.word)-1]
	s.visited[row][col] = false
}
