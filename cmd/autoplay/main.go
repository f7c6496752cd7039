// Command autoplay is a bot that plays a Boggle session through the REST API.
// It asks the server for every word on the board, splits them between the
// players with a WordStrategy, then submits each player's words and ends
// their turn until the game is over.
package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/wricardo/boggle-game/game/engine"
)

// Options configures one autoplay run
type Options struct {
	Strategy string
	MaxWords int
	Delay    time.Duration
	Reset    bool
	Verbose  bool
}

// Summary counts what the bot submitted
type Summary struct {
	Submitted int
	Accepted  int
	Rejected  int
}

// play finishes the client's current session and returns the final state
func play(ctx context.Context, client *Client, state *engine.GameState, opts Options) (*engine.GameState, Summary, error) {
	var summary Summary
	var err error

	if opts.Reset || state.GameOver {
		log.Printf("🔄 Resetting game state...")
		if state, err = client.Reset(ctx); err != nil {
			return nil, summary, err
		}
	}

	solved, err := client.Solve(ctx)
	if err != nil {
		return nil, summary, err
	}
	log.Printf("Board %dx%d holds %d words worth %d points", state.Size, state.Size, solved.Count, solved.MaxScore)

	strategy, err := NewWordStrategy(opts.Strategy, solved.Words, len(state.Players), opts.MaxWords)
	if err != nil {
		return nil, summary, err
	}

	for !state.GameOver {
		player := state.CurrentPlayer
		for _, word := range strategy.TurnWords(player) {
			result, err := client.SubmitWord(ctx, word)
			if err != nil {
				return nil, summary, err
			}
			summary.Submitted++
			if result.Accepted {
				summary.Accepted++
			} else {
				summary.Rejected++
			}
			if opts.Verbose {
				log.Printf("Player %d: %s -> %s (+%d, score %d)", result.Player, word, result.Verdict, result.Points, result.Score)
			}

			if opts.Delay > 0 {
				select {
				case <-ctx.Done():
					return nil, summary, ctx.Err()
				case <-time.After(opts.Delay):
				}
			}
		}

		if state, err = client.EndTurn(ctx); err != nil {
			return nil, summary, err
		}
		log.Printf("Player %d ended their turn", player+1)
	}

	return state, summary, nil
}

func standings(state *engine.GameState) string {
	var b strings.Builder
	for _, p := range state.Players {
		fmt.Fprintf(&b, "  Player %d: %d points, %d words\n", p.Number, p.Score, len(p.Words))
	}
	return b.String()
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "autoplay",
		Usage: "play a Boggle session automatically through the REST API",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "url", Value: "http://localhost:8080", Usage: "game server URL"},
			&cli.StringFlag{Name: "config", Usage: "board config_id for a new session (server default when empty)"},
			&cli.StringFlag{Name: "continue", Usage: "resume playing an existing session by ID"},
			&cli.StringFlag{Name: "session-file", Value: ".session", Usage: "file remembering the last session ID (empty disables)"},
			&cli.StringFlag{Name: "strategy", Value: StrategyDraft, Usage: "word split between players: draft or greedy"},
			&cli.IntFlag{Name: "max-words", Usage: "maximum words per turn (0 = no limit)"},
			&cli.DurationFlag{Name: "delay", Usage: "delay between submissions"},
			&cli.BoolFlag{Name: "reset", Usage: "reset the session before playing"},
			&cli.BoolFlag{Name: "v", Usage: "verbose output"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			serverURL := cmd.String("url")
			log.Printf("Connecting to game server at %s", serverURL)
			client := NewClient(serverURL)

			sessionFile := cmd.String("session-file")
			savedSessionID := cmd.String("continue")
			if savedSessionID == "" && sessionFile != "" {
				if data, err := os.ReadFile(sessionFile); err == nil {
					savedSessionID = string(bytes.TrimSpace(data))
				}
			}

			var state *engine.GameState
			if savedSessionID != "" {
				var err error
				log.Printf("🔄 Resuming session: %s", savedSessionID)
				if state, err = client.Resume(ctx, savedSessionID); err != nil {
					log.Printf("⚠️  Failed to resume session (may be expired): %v", err)
					state = nil
				}
			}

			if state == nil {
				var err error
				if state, err = client.CreateSession(ctx, cmd.String("config")); err != nil {
					return err
				}
				log.Printf("✨ Session created: %s", client.SessionID())
				if sessionFile != "" {
					if err := os.WriteFile(sessionFile, []byte(client.SessionID()), 0644); err != nil {
						log.Printf("Warning: Failed to save session ID: %v", err)
					}
				}
			}

			final, summary, err := play(ctx, client, state, Options{
				Strategy: cmd.String("strategy"),
				MaxWords: int(cmd.Int("max-words")),
				Delay:    cmd.Duration("delay"),
				Reset:    cmd.Bool("reset"),
				Verbose:  cmd.Bool("v"),
			})
			if err != nil {
				return err
			}

			fmt.Printf("\n🏁 %s\n", final.Message)
			fmt.Print(standings(final))
			fmt.Printf("Submitted %d words: %d accepted, %d rejected\n", summary.Submitted, summary.Accepted, summary.Rejected)
			return nil
		},
	}
}

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatalf("autoplay failed: %v", err)
	}
}
