// Package config provides board configuration management for the Boggle game server.
//
// The config package handles:
//   - Loading board configurations from JSON and YAML files
//   - Configuration validation and defaults
//   - Default configuration management
//   - Loading and sharing dictionaries (word lists)
//
// Configuration Format:
//
// Board configurations are stored as .json, .yaml or .yml files in the
// configs directory. The file name without extension is the config ID used
// to create sessions. Each configuration defines:
//   - name and description
//   - size and rows: an N×N letter grid, one string per row
//   - min_word_length (default 4) and players (default 2)
//   - dictionary: an optional word-list path, relative to the configs directory
//
// Example (YAML):
//
//	name: Classic
//	description: Standard 4x4 board
//	size: 4
//	rows: [SERS, PATG, LINE, SERS]
//
// Dictionaries:
//
// Configs without a dictionary use data/words.txt next to the configs
// directory, or the path given to SetDictionaryPath. Each word list is read
// once and the loaded dictionary is shared read-only by every session.
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	boardConfig, err := manager.LoadConfig("classic")
//	dict, err := manager.LoadDictionary(boardConfig)
//	configs, err := manager.ListConfigs()
package config
