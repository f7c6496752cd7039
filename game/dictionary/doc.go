// Package dictionary provides the word list used to judge Boggle words.
//
// A Dictionary is a prefix tree over the uppercase alphabet A-Z. It answers
// two questions in time proportional to the length of the query:
//   - Contains: is this exact string a stored word?
//   - ContainsPrefix: does any stored word start with this string?
//
// The second question is what lets the engine abandon a path on the board as
// soon as the letters collected so far cannot grow into a word.
//
// Nodes live in a flat slice and refer to their children by index, so the
// whole tree is a single allocation that grows as words are inserted.
//
// Usage:
//
//	dict, stats, err := dictionary.LoadFile("data/words.txt")
//	if err != nil {
//		log.Fatal(err)
//	}
//	log.Printf("loaded %d words (%d skipped)", stats.Inserted, stats.Skipped)
//
//	dict.Contains("CATS")      // true
//	dict.ContainsPrefix("CAT") // true
//
// Callers normalize input with Normalize before querying. The tree never
// folds case on its own.
package dictionary
