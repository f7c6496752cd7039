package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/wricardo/boggle-game/game/dictionary"
	"github.com/wricardo/boggle-game/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

// getConfigID returns the config_id for a given config name, used for consistent API responses
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "default"
	}
	return configName
}

// CreateSession creates a new game session
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var config *engine.BoardConfig
	var err error
	configID := configName
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			// Provide helpful error message with available options
			if strings.Contains(err.Error(), "configuration not found") {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("config '%s' not found, available configs %v: %w", configName, configIDs, err)
				}
				return nil, fmt.Errorf("config '%s' not found, use /api/configs to list available configurations: %w", configName, err)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
		configID = s.getConfigID(config.Name)
	}

	dict, err := s.configs.LoadDictionary(config)
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary for %s: %w", configID, err)
	}

	// Let session manager generate the ID
	session, err := s.sessions.Create("", configID, config, dict)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session.Info(), nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	return session.Info(), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, sess.Info())
	}
	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// SubmitWord plays word for the current player of a session
func (s *gameServiceImpl) SubmitWord(ctx context.Context, sessionID, word string) (*SubmitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	if sess.State.GameOver {
		return nil, ErrGameOver
	}

	sub := sess.State.SubmitWord(sess.Engine, word)
	player := sess.State.Players[sub.Player]

	result := &SubmitResult{
		Accepted: sub.Verdict == engine.Accepted,
		Word:     sub.Word,
		Verdict:  sub.Verdict,
		Points:   sub.Points,
		Player:   player.Number,
		Score:    player.Score,
		Message:  sub.Message,
		Path:     sub.Path,
	}

	eventType := "word_rejected"
	if result.Accepted {
		eventType = "word_accepted"
	}
	result.Events = []GameEvent{{
		Type:      eventType,
		Message:   sub.Message,
		Timestamp: time.Now(),
		Player:    player.Number,
	}}
	result.GameState = sess.State.Clone()

	if err := s.sessions.Save(sessionID); err != nil {
		log.Printf("Warning: Failed to persist session %s after submission: %v", sessionID, err)
	}

	return result, nil
}

// EndTurn passes play to the next player, finishing the game after the last one
func (s *gameServiceImpl) EndTurn(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	if sess.State.GameOver {
		return nil, ErrGameOver
	}

	sess.State.EndTurn()

	if err := s.sessions.Save(sessionID); err != nil {
		log.Printf("Warning: Failed to persist session %s after end of turn: %v", sessionID, err)
	}

	return sess.State.Clone(), nil
}

// Reset starts a new game on the same board
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	sess.State.Reset()

	if err := s.sessions.Save(sessionID); err != nil {
		log.Printf("Warning: Failed to persist session %s after reset: %v", sessionID, err)
	}

	return sess.State.Clone(), nil
}

// CheckWord reports the verdict word would get for the current player,
// without recording anything
func (s *gameServiceImpl) CheckWord(ctx context.Context, sessionID, word string) (*CheckResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	normalized := dictionary.Normalize(word)
	found := sess.State.Players[sess.State.CurrentPlayer].Words
	path := sess.Engine.FindPath(normalized)

	result := &CheckResult{
		Word:         normalized,
		Verdict:      sess.Engine.CheckWord(normalized, found),
		InDictionary: sess.Engine.IsWord(normalized),
		OnBoard:      path != nil,
		Path:         path,
	}
	if result.Verdict == engine.Accepted {
		result.Points = sess.Engine.ScoreWord(normalized)
	}
	return result, nil
}

// Solve enumerates every dictionary word on the session's board
func (s *gameServiceImpl) Solve(ctx context.Context, sessionID string) (*SolveResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	words := sess.Engine.EnumerateAllWords()
	result := &SolveResult{
		Words: words,
		Count: len(words),
	}
	for _, w := range words {
		result.MaxScore += sess.Engine.ScoreWord(w)
		if len(w) > len(result.LongestWord) {
			result.LongestWord = w
		}
	}
	return result, nil
}

// GetGameState retrieves the current game state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	return sess.State.Clone(), nil
}

// GetHistory returns paginated submission history
func (s *gameServiceImpl) GetHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	history := sess.State.History
	total := len(history)

	// Apply defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	submissions := []engine.SubmissionEntry{}
	if opts.Order == "desc" {
		// Most recent first
		for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
			submissions = append(submissions, history[i])
		}
	} else if start < total {
		submissions = append(submissions, history[start:end]...)
	}

	return &HistoryResponse{
		Submissions:      submissions,
		TotalSubmissions: total,
		Page:             opts.Page,
		PageSize:         opts.Limit,
		TotalPages:       totalPages,
		HasNext:          opts.Page < totalPages,
		HasPrevious:      opts.Page > 1,
	}, nil
}

// ListConfigs returns available board configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific board configuration
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.BoardConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a board configuration to disk
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.BoardConfig) error {
	return s.configs.SaveConfig(configName, config)
}
