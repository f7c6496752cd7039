package main

import (
	"fmt"
	"sort"
)

const (
	StrategyDraft  = "draft"  // players take turns picking the longest unclaimed word
	StrategyGreedy = "greedy" // every player submits every word
)

// WordStrategy decides which words each player submits on their turn
type WordStrategy struct {
	queues [][]string // per player, in submission order
}

// NewWordStrategy plans the words for players from a solved board.
// maxWords caps each player's turn; zero means no cap.
func NewWordStrategy(mode string, words []string, players, maxWords int) (*WordStrategy, error) {
	if players < 1 {
		return nil, fmt.Errorf("players must be at least 1, got %d", players)
	}

	ranked := append([]string(nil), words...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if len(ranked[i]) != len(ranked[j]) {
			return len(ranked[i]) > len(ranked[j])
		}
		return ranked[i] < ranked[j]
	})

	s := &WordStrategy{queues: make([][]string, players)}
	switch mode {
	case StrategyDraft:
		for i, word := range ranked {
			p := i % players
			s.queues[p] = append(s.queues[p], word)
		}
	case StrategyGreedy:
		for p := range s.queues {
			s.queues[p] = append([]string(nil), ranked...)
		}
	default:
		return nil, fmt.Errorf("unknown strategy %q (use %s or %s)", mode, StrategyDraft, StrategyGreedy)
	}

	if maxWords > 0 {
		for p, queue := range s.queues {
			if len(queue) > maxWords {
				s.queues[p] = queue[:maxWords]
			}
		}
	}
	return s, nil
}

// TurnWords returns the words player (0-based) submits on their turn
func (s *WordStrategy) TurnWords(player int) []string {
	if player < 0 || player >= len(s.queues) {
		return nil
	}
	return s.queues[player]
}
