// Package engine provides the core word-search logic for the Boggle game.
//
// The engine package implements:
//   - Board construction and validation (square grid of A-Z letters, 1x1 to 20x20)
//   - Path verification for a single word (ExistsPath, FindPath)
//   - Exhaustive enumeration of every dictionary word on a board
//   - Word verdicts and scoring
//   - Explicit turn state for multi-player games
//
// Core Types:
//
// Board is the immutable letter grid. GridEngine pairs a Board with a
// dictionary and a minimum word length and answers queries about it; it
// implements the Engine interface. GameState holds the scores, found words
// and turn order of one game and is advanced by SubmitWord and EndTurn.
//
// Usage:
//
//	board, err := engine.NewBoard([]string{"CA", "TS"})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	dict := dictionary.FromWords("CAT", "CATS", "ACT")
//	eng, err := engine.NewEngine(board, dict, 3)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	eng.ExistsPath("CATS")   // true
//	eng.EnumerateAllWords() // [ACT CAT CATS]
//
// Search:
//
// Cells are adjacent when they touch horizontally, vertically or diagonally.
// A word is on the board when its letters can be traced along adjacent cells
// without using any cell twice. Enumeration walks every such path from every
// cell and stops extending a path as soon as its letters are no longer a
// prefix of any dictionary word.
//
// Both searches mark the cells of the current path in a visited grid that is
// owned by a single query. Every mark is removed on the way back out of the
// recursion, so the grid is entirely clear whenever a query returns.
package engine
