package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/wricardo/boggle-game/game/dictionary"
	"github.com/wricardo/boggle-game/game/engine"
	"github.com/wricardo/boggle-game/game/service"
)

var (
	ErrConfigNotFound = errors.New("configuration not found")
	ErrInvalidConfig  = errors.New("invalid configuration")
)

const (
	// DefaultConfigName is loaded as the default board when present
	DefaultConfigName = "classic"

	// BuiltinConfigName resolves to the default board when no file has that name
	BuiltinConfigName = "default"
)

// extensions lists the supported config file formats in lookup order
var extensions = []string{".json", ".yaml", ".yml"}

// Manager handles board configuration loading and caching, and shares one
// loaded dictionary per word-list path across all sessions
type Manager struct {
	configDir      string
	dictionaryPath string
	defaultConfig  *engine.BoardConfig
	configs        map[string]*engine.BoardConfig
	dictionaries   map[string]*dictionary.Dictionary
	mu             sync.RWMutex
}

// DefaultDictionaryPath is data/words.txt next to configDir
func DefaultDictionaryPath(configDir string) string {
	return filepath.Join(filepath.Dir(filepath.Clean(configDir)), "data", "words.txt")
}

// NewManager creates a new configuration manager. The default word list is
// DefaultDictionaryPath(configDir).
func NewManager(configDir string) (*Manager, error) {
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("config directory does not exist: %s", configDir)
	}

	m := &Manager{
		configDir:      configDir,
		dictionaryPath: DefaultDictionaryPath(configDir),
		configs:        make(map[string]*engine.BoardConfig),
		dictionaries:   make(map[string]*dictionary.Dictionary),
	}

	if err := m.loadDefaultConfig(); err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	return m, nil
}

// SetDictionaryPath sets the word list used by configs that name none
func (m *Manager) SetDictionaryPath(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dictionaryPath = path
}

// DictionaryPath returns the word list used by configs that name none
func (m *Manager) DictionaryPath() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dictionaryPath
}

// LoadConfig loads a configuration by name, with or without file extension
func (m *Manager) LoadConfig(name string) (*engine.BoardConfig, error) {
	name = configID(name)

	m.mu.RLock()
	if config, exists := m.configs[name]; exists {
		m.mu.RUnlock()
		return config, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if config, exists := m.configs[name]; exists {
		return config, nil
	}

	config, err := m.readConfig(name)
	if errors.Is(err, ErrConfigNotFound) && name == BuiltinConfigName && m.defaultConfig != nil {
		return m.defaultConfig, nil
	}
	if err != nil {
		return nil, err
	}

	m.configs[name] = config
	return config, nil
}

// readConfig reads, defaults and validates the first file matching name
func (m *Manager) readConfig(name string) (*engine.BoardConfig, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("%w: %q", ErrConfigNotFound, name)
	}
	for _, ext := range extensions {
		path := filepath.Join(m.configDir, name+ext)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		var config engine.BoardConfig
		if ext == ".json" {
			err = json.Unmarshal(data, &config)
		} else {
			err = yaml.Unmarshal(data, &config)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: failed to parse %s: %v", ErrInvalidConfig, filepath.Base(path), err)
		}

		config.ApplyDefaults()
		if err := engine.ValidateBoardConfig(&config); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		return &config, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, name)
}

// ListConfigs returns information about all valid configurations
func (m *Manager) ListConfigs() ([]*service.ConfigInfo, error) {
	entries, err := os.ReadDir(m.configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read config directory: %w", err)
	}

	var configs []*service.ConfigInfo
	seen := make(map[string]bool)

	for _, entry := range entries {
		if entry.IsDir() || !isConfigFile(entry.Name()) {
			continue
		}

		name := configID(entry.Name())
		if seen[name] {
			continue
		}
		seen[name] = true

		config, err := m.LoadConfig(name)
		if err != nil {
			// Skip invalid configs
			continue
		}

		configs = append(configs, &service.ConfigInfo{
			Filename:      entry.Name(),
			ConfigID:      name,
			Name:          config.Name,
			Description:   config.Description,
			Size:          config.Size,
			MinWordLength: config.MinWordLength,
			Players:       config.Players,
		})
	}

	return configs, nil
}

// GetDefault returns the default configuration
func (m *Manager) GetDefault() *engine.BoardConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultConfig
}

// SetDefault sets the default configuration by name
func (m *Manager) SetDefault(name string) error {
	config, err := m.LoadConfig(name)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultConfig = config
	return nil
}

// ReloadConfig drops a cached configuration and reads it again from disk
func (m *Manager) ReloadConfig(name string) error {
	name = configID(name)

	m.mu.Lock()
	delete(m.configs, name)
	m.mu.Unlock()

	_, err := m.LoadConfig(name)
	return err
}

// RefreshCache reloads all cached configurations and dictionaries from disk
func (m *Manager) RefreshCache() error {
	m.mu.Lock()
	m.configs = make(map[string]*engine.BoardConfig)
	m.dictionaries = make(map[string]*dictionary.Dictionary)
	m.mu.Unlock()

	return m.loadDefaultConfig()
}

// ValidateConfig checks a configuration without saving it. A dictionary
// must be a local path inside the config directory.
func (m *Manager) ValidateConfig(config *engine.BoardConfig) error {
	if err := engine.ValidateBoardConfig(config); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if config.Dictionary != "" && !filepath.IsLocal(config.Dictionary) {
		return fmt.Errorf("%w: dictionary %q must be a relative path inside the config directory", ErrInvalidConfig, config.Dictionary)
	}
	return nil
}

// SaveConfig saves a configuration to disk. The format follows the extension
// of name, JSON when there is none.
func (m *Manager) SaveConfig(name string, config *engine.BoardConfig) error {
	if config == nil {
		return fmt.Errorf("%w: config cannot be nil", ErrInvalidConfig)
	}
	config.ApplyDefaults()
	if err := m.ValidateConfig(config); err != nil {
		return err
	}

	ext := strings.ToLower(filepath.Ext(name))
	if !isConfigFile(name) {
		ext = ".json"
	}
	id := configID(name)
	if id == "" || strings.ContainsAny(id, `/\`) {
		return fmt.Errorf("%w: invalid config name %q", ErrInvalidConfig, name)
	}

	var data []byte
	var err error
	if ext == ".json" {
		data, err = json.MarshalIndent(config, "", "  ")
	} else {
		data, err = yaml.Marshal(config)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	configPath := filepath.Join(m.configDir, id+ext)
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	m.mu.Lock()
	m.configs[id] = config
	m.mu.Unlock()

	return nil
}

// LoadDictionary returns the word list for config, loading it on first use.
// A dictionary path in the config is resolved against the config directory
// and must stay under it or under the default data directory.
func (m *Manager) LoadDictionary(config *engine.BoardConfig) (*dictionary.Dictionary, error) {
	path := m.DictionaryPath()
	if config != nil && config.Dictionary != "" {
		path = config.Dictionary
		if !filepath.IsAbs(path) {
			path = filepath.Join(m.configDir, path)
		}
		if !m.allowedDictionary(path) {
			return nil, fmt.Errorf("%w: dictionary %q is outside the config and data directories", ErrInvalidConfig, config.Dictionary)
		}
	}
	path = filepath.Clean(path)

	m.mu.RLock()
	dict, exists := m.dictionaries[path]
	m.mu.RUnlock()
	if exists {
		return dict, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if dict, exists := m.dictionaries[path]; exists {
		return dict, nil
	}

	dict, stats, err := dictionary.LoadFile(path)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded dictionary %s: %d words (%d lines, %d skipped)", path, dict.Len(), stats.Lines, stats.Skipped)

	m.dictionaries[path] = dict
	return dict, nil
}

// allowedDictionary reports whether path lies under the config directory or
// the data directory next to it
func (m *Manager) allowedDictionary(path string) bool {
	dataDir := filepath.Dir(DefaultDictionaryPath(m.configDir))
	for _, base := range []string{m.configDir, dataDir} {
		if within(base, path) {
			return true
		}
	}
	return false
}

func within(base, path string) bool {
	absBase, err := filepath.Abs(base)
	if err != nil {
		return false
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absBase, absPath)
	return err == nil && filepath.IsLocal(rel)
}

// loadDefaultConfig loads the default configuration
func (m *Manager) loadDefaultConfig() error {
	config, err := m.LoadConfig(DefaultConfigName)
	if err != nil {
		// Try the first available config
		configs, listErr := m.ListConfigs()
		if listErr != nil || len(configs) == 0 {
			config = engine.DefaultBoardConfig()
		} else if config, err = m.LoadConfig(configs[0].ConfigID); err != nil {
			config = engine.DefaultBoardConfig()
		}
	}

	m.mu.Lock()
	m.defaultConfig = config
	m.mu.Unlock()
	return nil
}

// configID strips a supported extension from a config file name
func configID(name string) string {
	for _, ext := range extensions {
		if strings.HasSuffix(strings.ToLower(name), ext) {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

func isConfigFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}
