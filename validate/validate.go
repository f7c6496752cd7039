// Command validate checks the board configuration files in a config
// directory (JSON or YAML). It checks:
//   - file structure and required fields
//   - board shape and letters
//   - rule bounds (minimum word length and player count)
//   - playability: the board holds at least one dictionary word
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/wricardo/boggle-game/game/config"
	"github.com/wricardo/boggle-game/game/dictionary"
	"github.com/wricardo/boggle-game/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

func (r *ValidationResult) fail(format string, args ...any) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) info(format string, args ...any) {
	r.Errors = append(r.Errors, "✓ "+fmt.Sprintf(format, args...))
}

// validateConfig loads and validates a single board file. dictPath overrides
// the word list used for the playability check; when empty the file's own
// dictionary entry or the shared data/words.txt is used.
func validateConfig(filePath, dictPath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.fail("Failed to read file: %v", err)
		return result
	}

	var boardConfig engine.BoardConfig
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &boardConfig); err != nil {
			result.fail("Invalid YAML: %v", err)
			return result
		}
	default:
		if err := json.Unmarshal(data, &boardConfig); err != nil {
			result.fail("Invalid JSON: %v", err)
			return result
		}
	}

	boardConfig.ApplyDefaults()
	if err := engine.ValidateBoardConfig(&boardConfig); err != nil {
		result.fail("%v", err)
		return result
	}

	cells := boardConfig.Size * boardConfig.Size
	if boardConfig.MinWordLength > cells {
		result.fail("min_word_length %d exceeds the %d cells on the board", boardConfig.MinWordLength, cells)
		return result
	}

	result.info("Name: %s", boardConfig.Name)
	result.info("Board: %dx%d", boardConfig.Size, boardConfig.Size)
	result.info("Rules: min word length %d, %d players", boardConfig.MinWordLength, boardConfig.Players)

	validatePlayability(&boardConfig, resolveDictionary(filePath, dictPath, &boardConfig), &result)
	return result
}

// resolveDictionary picks the word list for a board file
func resolveDictionary(filePath, dictPath string, boardConfig *engine.BoardConfig) string {
	if dictPath != "" {
		return dictPath
	}
	configDir := filepath.Dir(filePath)
	if boardConfig.Dictionary != "" {
		if filepath.IsAbs(boardConfig.Dictionary) {
			return boardConfig.Dictionary
		}
		return filepath.Join(configDir, boardConfig.Dictionary)
	}
	return config.DefaultDictionaryPath(configDir)
}

// validatePlayability solves the board and fails it when no word can be found
func validatePlayability(boardConfig *engine.BoardConfig, dictPath string, result *ValidationResult) {
	dict, _, err := dictionary.LoadFile(dictPath)
	if err != nil {
		result.fail("Failed to load dictionary: %v", err)
		return
	}

	board, err := boardConfig.NewBoard()
	if err != nil {
		result.fail("Invalid board: %v", err)
		return
	}
	gameEngine, err := engine.NewEngine(board, dict, boardConfig.MinWordLength)
	if err != nil {
		result.fail("Failed to build engine: %v", err)
		return
	}

	words := gameEngine.EnumerateAllWords()
	if len(words) == 0 {
		result.fail("Playability failure: no words of %d+ letters from %s", boardConfig.MinWordLength, filepath.Base(dictPath))
		return
	}
	result.info("Playability: %d words, max score %d", len(words), gameEngine.MaxScore())
}

// configFiles lists the board files in dir, sorted by name
func configFiles(dir string) ([]string, error) {
	var files []string
	for _, pattern := range []string{"*.json", "*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}
	sort.Strings(files)
	return files, nil
}

// report prints one result and returns whether it was valid
func report(w *strings.Builder, result ValidationResult) bool {
	fmt.Fprintf(w, "\n%s %s\n", strings.Repeat("=", 20), result.File)

	if result.Valid {
		fmt.Fprintln(w, "✅ VALID")
		for _, info := range result.Errors {
			fmt.Fprintln(w, "  "+info)
		}
		return true
	}

	fmt.Fprintln(w, "❌ INVALID")
	for _, err := range result.Errors {
		if !strings.HasPrefix(err, "✓") {
			fmt.Fprintln(w, "  ❌ "+err)
		}
	}
	return false
}

// run validates every board file in configDir and returns the printed report
func run(configDir, dictPath string) (string, bool, error) {
	files, err := configFiles(configDir)
	if err != nil {
		return "", false, fmt.Errorf("error finding config files: %w", err)
	}
	if len(files) == 0 {
		return "", false, fmt.Errorf("no config files found in %s", configDir)
	}

	var out strings.Builder
	allValid := true
	for _, file := range files {
		if !report(&out, validateConfig(file, dictPath)) {
			allValid = false
		}
	}

	fmt.Fprintf(&out, "\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Fprintln(&out, "✅ All configurations are valid!")
	} else {
		fmt.Fprintln(&out, "❌ Some configurations have errors")
	}
	return out.String(), allValid, nil
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "validate Boggle board configuration files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config-dir",
				Value:   "configs",
				Usage:   "directory containing board files",
				Sources: cli.EnvVars("CONFIG_DIR"),
			},
			&cli.StringFlag{
				Name:    "dict",
				Usage:   "word list used for the playability check (default: data/words.txt next to the config dir)",
				Sources: cli.EnvVars("DICTIONARY"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			out, allValid, err := run(cmd.String("config-dir"), cmd.String("dict"))
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			fmt.Print(out)
			if !allValid {
				return cli.Exit("", 1)
			}
			return nil
		},
	}
}

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
