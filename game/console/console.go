// Package console runs a hot-seat game on a terminal: the board is read from
// the input, then each player in turn types words until the end-turn marker.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/wricardo/boggle-game/game/dictionary"
	"github.com/wricardo/boggle-game/game/engine"
)

// Run reads a board from in (the size N followed by N×N letters) and plays a
// full game on it
func Run(in io.Reader, out io.Writer, dict *dictionary.Dictionary, minWordLength, players int) error {
	r := bufio.NewReader(in)

	board, err := engine.ReadBoard(r)
	if err != nil {
		return err
	}

	eng, err := engine.NewEngine(board, dict, minWordLength)
	if err != nil {
		return err
	}

	state := engine.NewGameState("console", board, players, minWordLength)
	return Play(r, out, eng, state)
}

// Play runs the turn loop until every player has ended a turn, then prints
// the standings, the result and every word on the board. Words are read
// whitespace separated; engine.EndTurnWord ends a turn. End of input ends
// the current turn and every turn after it.
func Play(in io.Reader, out io.Writer, eng engine.Engine, state *engine.GameState) error {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	exhausted := false

	for !state.GameOver {
		p := state.Players[state.CurrentPlayer]
		if _, err := fmt.Fprintf(out, "Player %d Score: %d\n", p.Number, p.Score); err != nil {
			return err
		}

		for !exhausted {
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("failed to read words: %w", err)
				}
				exhausted = true
				break
			}

			word := scanner.Text()
			if word == engine.EndTurnWord {
				break
			}

			sub := state.SubmitWord(eng, word)
			current := state.Players[sub.Player]
			fmt.Fprintln(out, sub.Message)
			fmt.Fprintf(out, "Player %d Score: %d\n", current.Number, current.Score)
		}

		state.EndTurn()
	}

	for _, line := range state.Standings() {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintln(out, state.Message)

	words := eng.EnumerateAllWords()
	all := "All Possible Words: "
	if len(words) > 0 {
		all += strings.Join(words, " ") + " "
	}
	_, err := fmt.Fprintln(out, all)
	return err
}
