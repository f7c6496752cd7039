package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wricardo/boggle-game/game/dictionary"
	"github.com/wricardo/boggle-game/game/engine"
)

// ErrGameOver is returned for turn operations on a finished game
var ErrGameOver = errors.New("game is over")

// GameService defines all game-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, configName string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Turn Operations
	SubmitWord(ctx context.Context, sessionID, word string) (*SubmitResult, error)
	EndTurn(ctx context.Context, sessionID string) (*engine.GameState, error)
	Reset(ctx context.Context, sessionID string) (*engine.GameState, error)

	// Board Queries
	CheckWord(ctx context.Context, sessionID, word string) (*CheckResult, error)
	Solve(ctx context.Context, sessionID string) (*SolveResult, error)

	// Game State
	GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error)
	GetHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*engine.BoardConfig, error)
	SaveConfig(ctx context.Context, configName string, config *engine.BoardConfig) error
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id, configID string, config *engine.BoardConfig, dict *dictionary.Dictionary) (*Session, error)
	Get(id string) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
	Save(id string) error
}

// ConfigManager handles board configuration and dictionary loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.BoardConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.BoardConfig
	SaveConfig(name string, config *engine.BoardConfig) error
	LoadDictionary(config *engine.BoardConfig) (*dictionary.Dictionary, error)
}

// Session represents an active game session
type Session struct {
	ID             string
	ConfigID       string
	Engine         *engine.GridEngine
	State          *engine.GameState
	Config         *engine.BoardConfig
	CreatedAt      time.Time
	LastAccessedAt time.Time
}

// NewSession builds the engine and a fresh game for config
func NewSession(id, configID string, config *engine.BoardConfig, dict *dictionary.Dictionary) (*Session, error) {
	board, err := config.NewBoard()
	if err != nil {
		return nil, fmt.Errorf("failed to build board: %w", err)
	}

	minLen := config.MinWordLength
	if minLen == 0 {
		minLen = engine.DefaultMinWordLength
	}

	eng, err := engine.NewEngine(board, dict, minLen)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	now := time.Now()
	return &Session{
		ID:             id,
		ConfigID:       configID,
		Engine:         eng,
		State:          engine.NewGameState(config.Name, board, config.Players, minLen),
		Config:         config,
		CreatedAt:      now,
		LastAccessedAt: now,
	}, nil
}

// Info summarizes the session for API responses
func (s *Session) Info() *SessionInfo {
	return &SessionInfo{
		ID:             s.ID,
		ConfigName:     s.ConfigID,
		CreatedAt:      s.CreatedAt,
		LastAccessedAt: s.LastAccessedAt,
		GameState:      s.State.Clone(),
		BoardConfig:    s.Config,
	}
}
