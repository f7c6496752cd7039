package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wricardo/boggle-game/api"
	"github.com/wricardo/boggle-game/game/config"
	"github.com/wricardo/boggle-game/game/session"
	"github.com/wricardo/boggle-game/transport/mcp"
)

// writeTestConfigs lays out configs/classic.json and data/words.txt under a
// temp dir and returns the config directory
func writeTestConfigs(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	configDir := filepath.Join(root, "configs")
	dataDir := filepath.Join(root, "data")
	for _, dir := range []string{configDir, dataDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	classic := `{"name": "Classic", "size": 2, "rows": ["CA", "TS"], "min_word_length": 3}`
	if err := os.WriteFile(filepath.Join(configDir, "classic.json"), []byte(classic), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dataDir, "words.txt"), []byte("cat\ncats\nact\n"), 0644); err != nil {
		t.Fatalf("Failed to write word list: %v", err)
	}
	return configDir
}

func TestConstants(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if AppName != "Boggle Game Server" {
		t.Errorf("Unexpected app name %s", AppName)
	}
}

func TestFlagDefaults(t *testing.T) {
	if *port <= 0 || *port > 65535 {
		t.Errorf("Invalid default port: %d", *port)
	}
	if *host == "" {
		t.Error("Host should have a default value")
	}
	if *configDir == "" {
		t.Error("Config directory should have a default value")
	}
	if *minLength != 4 || *players != 2 {
		t.Errorf("Expected play defaults 4/2, got %d/%d", *minLength, *players)
	}
}

func TestEnvDefault(t *testing.T) {
	t.Setenv("BOGGLE_TEST_VALUE", "from-env")
	if got := envDefault("BOGGLE_TEST_VALUE", "fallback"); got != "from-env" {
		t.Errorf("Expected from-env, got %s", got)
	}
	if got := envDefault("BOGGLE_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("Expected fallback, got %s", got)
	}
}

func TestPlayDictionaryPath(t *testing.T) {
	if got := playDictionaryPath("words.txt", "configs"); got != "words.txt" {
		t.Errorf("Explicit dictionary should win, got %s", got)
	}
	if got := playDictionaryPath("", filepath.Join("game", "configs")); got != filepath.Join("game", "data", "words.txt") {
		t.Errorf("Unexpected default dictionary %s", got)
	}
}

func TestRunPlay(t *testing.T) {
	configDir := writeTestConfigs(t)
	dictFile := config.DefaultDictionaryPath(configDir)

	var out bytes.Buffer
	input := "2\nCA\nTS\ncats ???\ncat ???\n"
	if err := runPlay(strings.NewReader(input), &out, dictFile, 3, 2); err != nil {
		t.Fatalf("runPlay failed: %v", err)
	}

	transcript := out.String()
	for _, line := range []string{"Player 1 wins!", "All Possible Words: ACT CAT CATS "} {
		if !strings.Contains(transcript, line) {
			t.Errorf("Expected %q in transcript:\n%s", line, transcript)
		}
	}

	if err := runPlay(strings.NewReader(input), &out, filepath.Join(t.TempDir(), "missing.txt"), 3, 2); err == nil {
		t.Error("Expected error for a missing word list")
	}
}

func TestInitializeServices(t *testing.T) {
	configDir := writeTestConfigs(t)

	gameService, err := initializeServices(configDir, "", t.TempDir())
	if err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}
	if gameService == nil {
		t.Fatal("Expected game service to be initialized")
	}

	info, err := gameService.CreateSession(t.Context(), "classic")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	result, err := gameService.SubmitWord(t.Context(), info.ID, "cats")
	if err != nil {
		t.Fatalf("Failed to submit word: %v", err)
	}
	if !result.Accepted || result.Points != 2 {
		t.Errorf("Expected CATS to score 2, got %+v", result)
	}
}

func TestInitializeServices_InvalidConfigDir(t *testing.T) {
	if _, err := initializeServices("/non/existent/path", "", t.TempDir()); err == nil {
		t.Error("Expected error for non-existent config directory")
	}
}

func TestPruneOrphanedSessions(t *testing.T) {
	configManager, err := config.NewManager(writeTestConfigs(t))
	if err != nil {
		t.Fatalf("Failed to create config manager: %v", err)
	}
	persistence, err := session.NewFilePersistence(t.TempDir(), configManager)
	if err != nil {
		t.Fatalf("Failed to create persistence: %v", err)
	}
	manager := session.NewManagerWithPersistence(persistence)

	boardConfig, _ := configManager.LoadConfig("classic")
	dict, err := configManager.LoadDictionary(boardConfig)
	if err != nil {
		t.Fatalf("Failed to load dictionary: %v", err)
	}
	for _, id := range []string{"keep", "gone"} {
		if _, err := manager.Create(id, "classic", boardConfig, dict); err != nil {
			t.Fatalf("Failed to create %s: %v", id, err)
		}
	}

	if err := persistence.Delete("gone"); err != nil {
		t.Fatalf("Failed to delete session file: %v", err)
	}

	if pruned := pruneOrphanedSessions(manager, persistence); pruned != 1 {
		t.Errorf("Expected 1 pruned session, got %d", pruned)
	}
	if manager.Count() != 1 {
		t.Errorf("Expected 1 session left, got %d", manager.Count())
	}
	if pruneOrphanedSessions(manager, nil) != 0 {
		t.Error("Nothing should be pruned without persistence")
	}
}

func TestMCPEndpoint(t *testing.T) {
	gameService, err := initializeServices(writeTestConfigs(t), "", t.TempDir())
	if err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}
	handler := newMux(api.NewServer(gameService, nil), mcp.NewClient("http://127.0.0.1:0"))

	t.Run("GET not allowed", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/mcp", nil))
		if w.Code != http.StatusMethodNotAllowed {
			t.Errorf("Expected 405, got %d", w.Code)
		}
	})

	t.Run("tools/list", func(t *testing.T) {
		body := `{"jsonrpc": "2.0", "id": 1, "method": "tools/list"}`
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("POST", "/mcp", strings.NewReader(body)))
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}
		for _, tool := range []string{"submit_word", "end_turn", "solve_board"} {
			if !strings.Contains(w.Body.String(), tool) {
				t.Errorf("Expected %s in tool list", tool)
			}
		}
	})

	t.Run("API still mounted", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/api/configs", nil))
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "classic") {
			t.Errorf("Unexpected /api/configs response %d %s", w.Code, w.Body.String())
		}
	})
}
