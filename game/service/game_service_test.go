package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/wricardo/boggle-game/game/dictionary"
	"github.com/wricardo/boggle-game/game/engine"
	"github.com/wricardo/boggle-game/game/service"
)

// MockSessionManager implements service.SessionManager for testing
type MockSessionManager struct {
	sessions map[string]*service.Session
	saves    int
}

func NewMockSessionManager() *MockSessionManager {
	return &MockSessionManager{
		sessions: make(map[string]*service.Session),
	}
}

func (m *MockSessionManager) Create(id, configID string, config *engine.BoardConfig, dict *dictionary.Dictionary) (*service.Session, error) {
	// Generate ID if empty (mimics real session manager behavior)
	if id == "" {
		id = fmt.Sprintf("test_%d", len(m.sessions)+1)
	}

	if _, exists := m.sessions[id]; exists {
		return nil, errors.New("session already exists")
	}

	session, err := service.NewSession(id, configID, config, dict)
	if err != nil {
		return nil, err
	}

	m.sessions[id] = session
	return session, nil
}

func (m *MockSessionManager) Get(id string) (*service.Session, error) {
	session, exists := m.sessions[id]
	if !exists {
		return nil, errors.New("session not found")
	}
	return session, nil
}

func (m *MockSessionManager) List() []*service.Session {
	result := make([]*service.Session, 0, len(m.sessions))
	for _, session := range m.sessions {
		result = append(result, session)
	}
	return result
}

func (m *MockSessionManager) Delete(id string) error {
	if _, exists := m.sessions[id]; !exists {
		return errors.New("session not found")
	}
	delete(m.sessions, id)
	return nil
}

func (m *MockSessionManager) UpdateLastAccessed(id string) error {
	if session, exists := m.sessions[id]; exists {
		session.LastAccessedAt = time.Now()
		return nil
	}
	return errors.New("session not found")
}

func (m *MockSessionManager) Save(id string) error {
	if _, exists := m.sessions[id]; !exists {
		return errors.New("session not found")
	}
	m.saves++
	return nil
}

// MockConfigManager implements service.ConfigManager for testing
type MockConfigManager struct {
	configs map[string]*engine.BoardConfig
	dict    *dictionary.Dictionary
}

func NewMockConfigManager() *MockConfigManager {
	// S T A R
	// E A T S
	// N O T E
	// D I C E
	testConfig := &engine.BoardConfig{
		Name:          "test",
		Description:   "Test board",
		Size:          4,
		Rows:          []string{"STAR", "EATS", "NOTE", "DICE"},
		MinWordLength: 4,
		Players:       2,
	}

	return &MockConfigManager{
		configs: map[string]*engine.BoardConfig{
			"test":    testConfig,
			"default": engine.DefaultBoardConfig(),
		},
		dict: dictionary.FromWords("STAR", "STARS", "SEAT", "EATS", "NOTE", "DICE", "RATS", "ZEBRA"),
	}
}

func (m *MockConfigManager) LoadConfig(name string) (*engine.BoardConfig, error) {
	config, exists := m.configs[name]
	if !exists {
		return nil, errors.New("configuration not found")
	}
	return config, nil
}

func (m *MockConfigManager) ListConfigs() ([]*service.ConfigInfo, error) {
	result := make([]*service.ConfigInfo, 0, len(m.configs))
	for name, config := range m.configs {
		result = append(result, &service.ConfigInfo{
			Filename:    name + ".json",
			ConfigID:    name,
			Name:        config.Name,
			Description: config.Description,
			Size:        config.Size,
		})
	}
	return result, nil
}

func (m *MockConfigManager) GetDefault() *engine.BoardConfig {
	return m.configs["default"]
}

func (m *MockConfigManager) SaveConfig(name string, config *engine.BoardConfig) error {
	if err := engine.ValidateBoardConfig(config); err != nil {
		return err
	}
	m.configs[name] = config
	return nil
}

func (m *MockConfigManager) LoadDictionary(config *engine.BoardConfig) (*dictionary.Dictionary, error) {
	return m.dict, nil
}

func newTestService(t *testing.T) (service.GameService, *MockSessionManager, string) {
	t.Helper()
	sessions := NewMockSessionManager()
	svc := service.NewGameService(sessions, NewMockConfigManager())

	info, err := svc.CreateSession(context.Background(), "test")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	return svc, sessions, info.ID
}

func TestGameService_CreateSession(t *testing.T) {
	ctx := context.Background()
	svc := service.NewGameService(NewMockSessionManager(), NewMockConfigManager())

	tests := []struct {
		name       string
		configName string
		wantID     string
		wantErr    bool
	}{
		{"create with default config", "", "default", false},
		{"create with specific config", "test", "test", false},
		{"create with invalid config", "nonexistent", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := svc.CreateSession(ctx, tt.configName)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateSession() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !strings.Contains(err.Error(), "available configs") {
					t.Errorf("Expected error to list available configs, got %v", err)
				}
				return
			}
			if info.ConfigName != tt.wantID {
				t.Errorf("Expected config id %s, got %s", tt.wantID, info.ConfigName)
			}
			if info.GameState == nil || len(info.GameState.Players) != 2 {
				t.Errorf("Expected a fresh two-player game, got %+v", info.GameState)
			}
		})
	}
}

func TestGameService_SubmitWord(t *testing.T) {
	ctx := context.Background()
	svc, sessions, id := newTestService(t)

	tests := []struct {
		word     string
		verdict  engine.Verdict
		accepted bool
		score    int
	}{
		{"stars", engine.Accepted, true, 2},
		{"STARS", engine.AlreadyFound, false, 2},
		{"ZEBRA", engine.NotOnBoard, false, 2},
		{"TEN", engine.TooShort, false, 2},
		{"note", engine.Accepted, true, 3},
	}

	for _, tt := range tests {
		result, err := svc.SubmitWord(ctx, id, tt.word)
		if err != nil {
			t.Fatalf("SubmitWord(%q) failed: %v", tt.word, err)
		}
		if result.Verdict != tt.verdict || result.Accepted != tt.accepted {
			t.Errorf("SubmitWord(%q): expected %s/%v, got %s/%v", tt.word, tt.verdict, tt.accepted, result.Verdict, result.Accepted)
		}
		if result.Score != tt.score {
			t.Errorf("SubmitWord(%q): expected score %d, got %d", tt.word, tt.score, result.Score)
		}
		if result.Player != 1 {
			t.Errorf("Expected player 1, got %d", result.Player)
		}
		if len(result.Events) != 1 {
			t.Errorf("Expected one event, got %d", len(result.Events))
		}
	}

	if sessions.saves != len(tests) {
		t.Errorf("Expected session saved after each submission, got %d saves", sessions.saves)
	}

	t.Run("invalid session", func(t *testing.T) {
		if _, err := svc.SubmitWord(ctx, "nonexistent", "STAR"); err == nil {
			t.Error("Expected error for unknown session")
		}
	})
}

func TestGameService_StateIsCopied(t *testing.T) {
	ctx := context.Background()
	svc, _, id := newTestService(t)

	state, err := svc.GetGameState(ctx, id)
	if err != nil {
		t.Fatalf("GetGameState failed: %v", err)
	}
	state.Players[0].Score = 99

	again, _ := svc.GetGameState(ctx, id)
	if again.Players[0].Score != 0 {
		t.Error("Mutating a returned state should not change the session")
	}
}

func TestGameService_EndTurn(t *testing.T) {
	ctx := context.Background()
	svc, _, id := newTestService(t)

	svc.SubmitWord(ctx, id, "STARS")
	state, err := svc.EndTurn(ctx, id)
	if err != nil {
		t.Fatalf("EndTurn failed: %v", err)
	}
	if state.CurrentPlayer != 1 {
		t.Errorf("Expected player index 1, got %d", state.CurrentPlayer)
	}

	svc.SubmitWord(ctx, id, "DICE")
	state, err = svc.EndTurn(ctx, id)
	if err != nil {
		t.Fatalf("EndTurn failed: %v", err)
	}
	if !state.GameOver || state.Winner != 0 {
		t.Errorf("Expected player 1 to win, got game_over=%v winner=%d", state.GameOver, state.Winner)
	}

	if _, err := svc.SubmitWord(ctx, id, "NOTE"); !errors.Is(err, service.ErrGameOver) {
		t.Errorf("Expected ErrGameOver on submit, got %v", err)
	}
	if _, err := svc.EndTurn(ctx, id); !errors.Is(err, service.ErrGameOver) {
		t.Errorf("Expected ErrGameOver on end turn, got %v", err)
	}

	state, err = svc.Reset(ctx, id)
	if err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if state.GameOver || state.Players[0].Score != 0 {
		t.Errorf("Reset should start a new game, got %+v", state)
	}
	if _, err := svc.SubmitWord(ctx, id, "NOTE"); err != nil {
		t.Errorf("Submitting after reset should work, got %v", err)
	}
}

func TestGameService_CheckWord(t *testing.T) {
	ctx := context.Background()
	svc, _, id := newTestService(t)
	svc.SubmitWord(ctx, id, "STAR")

	tests := []struct {
		word         string
		verdict      engine.Verdict
		inDictionary bool
		onBoard      bool
		points       int
	}{
		{"stars", engine.Accepted, true, true, 2},
		{"STAR", engine.AlreadyFound, true, true, 0},
		{"ZEBRA", engine.NotOnBoard, true, false, 0},
		{"TSAE", engine.NotAWord, false, true, 0},
	}

	for _, tt := range tests {
		result, err := svc.CheckWord(ctx, id, tt.word)
		if err != nil {
			t.Fatalf("CheckWord(%q) failed: %v", tt.word, err)
		}
		if result.Verdict != tt.verdict {
			t.Errorf("CheckWord(%q): expected %s, got %s", tt.word, tt.verdict, result.Verdict)
		}
		if result.InDictionary != tt.inDictionary || result.OnBoard != tt.onBoard {
			t.Errorf("CheckWord(%q): expected dict=%v board=%v, got %+v", tt.word, tt.inDictionary, tt.onBoard, result)
		}
		if result.Points != tt.points {
			t.Errorf("CheckWord(%q): expected %d points, got %d", tt.word, tt.points, result.Points)
		}
	}

	state, _ := svc.GetGameState(ctx, id)
	if state.TotalSubmissions != 1 {
		t.Errorf("CheckWord should not record submissions, got %d", state.TotalSubmissions)
	}
}

func TestGameService_Solve(t *testing.T) {
	ctx := context.Background()
	svc, _, id := newTestService(t)

	result, err := svc.Solve(ctx, id)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	expected := []string{"DICE", "EATS", "NOTE", "RATS", "SEAT", "STAR", "STARS"}
	if strings.Join(result.Words, ",") != strings.Join(expected, ",") {
		t.Errorf("Expected %v, got %v", expected, result.Words)
	}
	if result.Count != len(expected) {
		t.Errorf("Expected count %d, got %d", len(expected), result.Count)
	}
	if result.MaxScore != 8 {
		t.Errorf("Expected max score 8, got %d", result.MaxScore)
	}
	if result.LongestWord != "STARS" {
		t.Errorf("Expected longest word STARS, got %s", result.LongestWord)
	}
}

func TestGameService_GetHistory(t *testing.T) {
	ctx := context.Background()
	svc, _, id := newTestService(t)

	for _, w := range []string{"STAR", "NOTE", "ZEBRA", "DICE", "EATS"} {
		svc.SubmitWord(ctx, id, w)
	}

	tests := []struct {
		name      string
		sessionID string
		opts      service.HistoryOptions
		wantWords []string
		wantErr   bool
	}{
		{"default options", id, service.HistoryOptions{}, []string{"EATS", "DICE", "ZEBRA", "NOTE", "STAR"}, false},
		{"ascending page 2", id, service.HistoryOptions{Page: 2, Limit: 2, Order: "asc"}, []string{"ZEBRA", "DICE"}, false},
		{"descending page 3", id, service.HistoryOptions{Page: 3, Limit: 2, Order: "desc"}, []string{"STAR"}, false},
		{"past the end", id, service.HistoryOptions{Page: 9, Limit: 2, Order: "asc"}, []string{}, false},
		{"invalid session", "nonexistent", service.HistoryOptions{}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.GetHistory(ctx, tt.sessionID, tt.opts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetHistory() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if result.Submissions == nil {
				t.Fatal("GetHistory() returned nil submissions slice")
			}
			var words []string
			for _, s := range result.Submissions {
				words = append(words, s.Word)
			}
			if strings.Join(words, ",") != strings.Join(tt.wantWords, ",") {
				t.Errorf("Expected %v, got %v", tt.wantWords, words)
			}
			if result.TotalSubmissions != 5 {
				t.Errorf("Expected 5 total submissions, got %d", result.TotalSubmissions)
			}
		})
	}
}

func TestGameService_ListAndDeleteSessions(t *testing.T) {
	ctx := context.Background()
	svc := service.NewGameService(NewMockSessionManager(), NewMockConfigManager())

	var ids []string
	for i := 0; i < 3; i++ {
		info, err := svc.CreateSession(ctx, "test")
		if err != nil {
			t.Fatalf("Failed to create session %d: %v", i, err)
		}
		ids = append(ids, info.ID)
	}

	sessionList, err := svc.ListSessions(ctx)
	if err != nil {
		t.Fatalf("ListSessions() error = %v", err)
	}
	if len(sessionList) != 3 {
		t.Errorf("ListSessions() returned %d sessions, want 3", len(sessionList))
	}

	if err := svc.DeleteSession(ctx, ids[0]); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}
	if _, err := svc.GetSession(ctx, ids[0]); err == nil {
		t.Error("Expected deleted session to be gone")
	}
	if _, err := svc.GetSession(ctx, ids[1]); err != nil {
		t.Errorf("Other sessions should remain, got %v", err)
	}
}
