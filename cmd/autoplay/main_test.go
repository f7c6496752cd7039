package main

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wricardo/boggle-game/api"
	"github.com/wricardo/boggle-game/game/config"
	"github.com/wricardo/boggle-game/game/service"
	"github.com/wricardo/boggle-game/game/session"
)

// newGameServer runs the real REST stack over a temp config directory
func newGameServer(t *testing.T) *httptest.Server {
	t.Helper()
	root := t.TempDir()
	configDir := filepath.Join(root, "configs")
	dataDir := filepath.Join(root, "data")
	os.MkdirAll(configDir, 0755)
	os.MkdirAll(dataDir, 0755)

	classic := `{"name": "Classic", "size": 4, "rows": ["STAR", "EATS", "NOTE", "DICE"]}`
	if err := os.WriteFile(filepath.Join(configDir, "classic.json"), []byte(classic), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dataDir, "words.txt"), []byte("star\nstars\nnote\ndice\neats\n"), 0644); err != nil {
		t.Fatalf("Failed to write word list: %v", err)
	}

	configManager, err := config.NewManager(configDir)
	if err != nil {
		t.Fatalf("Failed to create config manager: %v", err)
	}
	gameService := service.NewGameService(session.NewManager(), configManager)
	server := httptest.NewServer(api.NewServer(gameService, nil))
	t.Cleanup(server.Close)
	return server
}

func TestNewWordStrategy(t *testing.T) {
	words := []string{"STAR", "STARS", "NOTE", "DICE", "EATS"}

	t.Run("draft", func(t *testing.T) {
		s, err := NewWordStrategy(StrategyDraft, words, 2, 0)
		if err != nil {
			t.Fatalf("NewWordStrategy failed: %v", err)
		}
		if got := strings.Join(s.TurnWords(0), " "); got != "STARS EATS STAR" {
			t.Errorf("Player 1 words: %s", got)
		}
		if got := strings.Join(s.TurnWords(1), " "); got != "DICE NOTE" {
			t.Errorf("Player 2 words: %s", got)
		}
	})

	t.Run("greedy with cap", func(t *testing.T) {
		s, err := NewWordStrategy(StrategyGreedy, words, 3, 2)
		if err != nil {
			t.Fatalf("NewWordStrategy failed: %v", err)
		}
		for p := 0; p < 3; p++ {
			if got := strings.Join(s.TurnWords(p), " "); got != "STARS DICE" {
				t.Errorf("Player %d words: %s", p+1, got)
			}
		}
	})

	t.Run("out of range player", func(t *testing.T) {
		s, _ := NewWordStrategy(StrategyDraft, words, 2, 0)
		if s.TurnWords(2) != nil || s.TurnWords(-1) != nil {
			t.Error("Expected no words for unknown players")
		}
	})

	t.Run("errors", func(t *testing.T) {
		if _, err := NewWordStrategy("random", words, 2, 0); err == nil {
			t.Error("Expected error for unknown strategy")
		}
		if _, err := NewWordStrategy(StrategyDraft, words, 0, 0); err == nil {
			t.Error("Expected error for zero players")
		}
	})

	if words[0] != "STAR" {
		t.Error("Strategy must not reorder the caller's slice")
	}
}

func TestPlay_Draft(t *testing.T) {
	server := newGameServer(t)
	client := NewClient(server.URL)
	ctx := context.Background()

	state, err := client.CreateSession(ctx, "classic")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if client.SessionID() == "" {
		t.Fatal("Expected a session ID")
	}

	final, summary, err := play(ctx, client, state, Options{Strategy: StrategyDraft})
	if err != nil {
		t.Fatalf("play failed: %v", err)
	}

	if !final.GameOver {
		t.Error("Expected the game to be over")
	}
	if final.Players[0].Score != 4 || final.Players[1].Score != 2 {
		t.Errorf("Unexpected scores %d/%d", final.Players[0].Score, final.Players[1].Score)
	}
	if !strings.Contains(final.Message, "Player 1 wins!") {
		t.Errorf("Unexpected final message %q", final.Message)
	}
	if summary != (Summary{Submitted: 5, Accepted: 5}) {
		t.Errorf("Unexpected summary %+v", summary)
	}
	if got := standings(final); !strings.Contains(got, "Player 1: 4 points, 3 words") {
		t.Errorf("Unexpected standings:\n%s", got)
	}
}

func TestPlay_GreedyAfterGameOver(t *testing.T) {
	server := newGameServer(t)
	client := NewClient(server.URL)
	ctx := context.Background()

	created, err := client.CreateSession(ctx, "classic")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if _, _, err := play(ctx, client, created, Options{Strategy: StrategyDraft}); err != nil {
		t.Fatalf("First game failed: %v", err)
	}

	// A finished session is reset before the next game
	resumed, err := NewClient(server.URL).Resume(ctx, client.SessionID())
	if err != nil {
		t.Fatalf("Resume failed: %v", err)
	}
	if !resumed.GameOver {
		t.Fatal("Expected the resumed session to be over")
	}

	final, summary, err := play(ctx, client, resumed, Options{Strategy: StrategyGreedy, Verbose: true})
	if err != nil {
		t.Fatalf("Second game failed: %v", err)
	}
	if final.Players[0].Score != 6 || final.Players[1].Score != 6 {
		t.Errorf("Expected 6/6, got %d/%d", final.Players[0].Score, final.Players[1].Score)
	}
	if !strings.Contains(final.Message, "It's a tie!") {
		t.Errorf("Unexpected final message %q", final.Message)
	}
	if summary.Submitted != 10 || summary.Rejected != 0 {
		t.Errorf("Unexpected summary %+v", summary)
	}
}

func TestClient_Errors(t *testing.T) {
	server := newGameServer(t)
	ctx := context.Background()

	client := NewClient(server.URL)
	if _, err := client.Resume(ctx, "missing"); err == nil || !strings.Contains(err.Error(), "404") {
		t.Errorf("Expected 404 error, got %v", err)
	}
	if _, err := client.CreateSession(ctx, "nope"); err == nil {
		t.Error("Expected error for unknown config")
	}

	offline := NewClient("http://127.0.0.1:1")
	if _, err := offline.CreateSession(ctx, ""); err == nil {
		t.Error("Expected error for unreachable server")
	}
}
