package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/wricardo/boggle-game/game/dictionary"
)

// NewGameState creates the state for a fresh game on board
func NewGameState(configName string, board *Board, players, minWordLength int) *GameState {
	if players < 1 {
		players = DefaultPlayers
	}

	ps := make([]PlayerState, players)
	for i := range ps {
		ps[i] = PlayerState{Number: i + 1, Words: []string{}}
	}

	return &GameState{
		Board:         board.Rows(),
		Size:          board.Size(),
		MinWordLength: minWordLength,
		Players:       ps,
		CurrentPlayer: 0,
		Winner:        NoWinner,
		Message:       "Player 1 Score: 0",
		ConfigName:    configName,
		History:       []SubmissionEntry{},
	}
}

// SubmitWord checks word for the current player and, if it is accepted,
// records it and adds its points to that player's score
func (gs *GameState) SubmitWord(e Engine, word string) Submission {
	raw := strings.TrimSpace(word)
	normalized := dictionary.Normalize(raw)

	sub := Submission{
		Player: gs.CurrentPlayer,
		Word:   normalized,
	}

	if gs.GameOver {
		sub.Verdict = GameFinished
		sub.Message = "The game is over."
		return sub
	}

	player := &gs.Players[gs.CurrentPlayer]
	sub.Verdict = e.CheckWord(normalized, player.Words)

	switch sub.Verdict {
	case Accepted:
		sub.Points = e.ScoreWord(normalized)
		sub.Path = e.FindPath(normalized)
		player.Words = append(player.Words, normalized)
		player.Score += sub.Points
		sub.Message = "Correct."
	case TooShort:
		sub.Message = fmt.Sprintf("%s is too short.", raw)
	case NotAWord:
		sub.Message = fmt.Sprintf("%s is not a word.", raw)
	case NotOnBoard:
		sub.Message = fmt.Sprintf("%s is not on board.", raw)
	case AlreadyFound:
		sub.Message = fmt.Sprintf("%s is already found.", raw)
	}

	gs.Message = sub.Message
	gs.addToHistory(sub)
	return sub
}

// EndTurn passes play to the next player. After the last player's turn the
// game is finished and the winner decided.
func (gs *GameState) EndTurn() {
	if gs.GameOver {
		return
	}

	gs.CurrentPlayer++
	if gs.CurrentPlayer >= len(gs.Players) {
		gs.CurrentPlayer = len(gs.Players) - 1
		gs.finish()
		return
	}

	p := gs.Players[gs.CurrentPlayer]
	gs.Message = fmt.Sprintf("Player %d Score: %d", p.Number, p.Score)
}

// Reset starts the game over on the same board, keeping the cumulative history
func (gs *GameState) Reset() {
	prevHistory := gs.History
	prevTotal := gs.TotalSubmissions

	for i := range gs.Players {
		gs.Players[i].Words = []string{}
		gs.Players[i].Score = 0
	}
	gs.CurrentPlayer = 0
	gs.GameOver = false
	gs.Winner = NoWinner
	gs.Message = "Player 1 Score: 0"

	gs.History = prevHistory
	gs.TotalSubmissions = prevTotal
	gs.CurrentSubmissions = 0
}

// Standings returns one "Player N Score: S" line per player
func (gs *GameState) Standings() []string {
	lines := make([]string, len(gs.Players))
	for i, p := range gs.Players {
		lines[i] = fmt.Sprintf("Player %d Score: %d", p.Number, p.Score)
	}
	return lines
}

// finish marks the game over and picks the winner; equal top scores tie
func (gs *GameState) finish() {
	gs.GameOver = true
	gs.Winner = NoWinner

	best := -1
	for i, p := range gs.Players {
		switch {
		case p.Score > best:
			best = p.Score
			gs.Winner = i
		case p.Score == best:
			gs.Winner = NoWinner
		}
	}

	if gs.Winner == NoWinner {
		gs.Message = "It's a tie!"
	} else {
		gs.Message = fmt.Sprintf("Player %d wins!", gs.Players[gs.Winner].Number)
	}
}

// addToHistory appends a submission to both the cumulative and current history
func (gs *GameState) addToHistory(sub Submission) {
	entry := SubmissionEntry{
		Player:           sub.Player,
		Word:             sub.Word,
		Verdict:          sub.Verdict,
		Points:           sub.Points,
		Timestamp:        time.Now().Unix(),
		SubmissionNumber: gs.TotalSubmissions + 1,
	}
	gs.History = append(gs.History, entry)
	gs.TotalSubmissions++
	gs.CurrentSubmissions++
}

// Clone returns a deep copy of the state, safe to hand out while the
// original keeps changing
func (gs *GameState) Clone() *GameState {
	c := *gs
	c.Board = append([]string(nil), gs.Board...)
	c.Players = make([]PlayerState, len(gs.Players))
	for i, p := range gs.Players {
		p.Words = append([]string{}, p.Words...)
		c.Players[i] = p
	}
	c.History = append([]SubmissionEntry{}, gs.History...)
	return &c
}
