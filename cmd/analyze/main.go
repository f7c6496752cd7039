// Command analyze prints quick, human-readable statistics about the boards in
// a config directory: how many dictionary words each board holds, the total
// points available, the longest word, a word-length breakdown and any cells
// that no word passes through.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/wricardo/boggle-game/game/config"
	"github.com/wricardo/boggle-game/game/dictionary"
	"github.com/wricardo/boggle-game/game/engine"
)

// Analysis summarizes one solved board
type Analysis struct {
	ConfigID      string
	Name          string
	Size          int
	MinWordLength int
	Words         []string
	MaxScore      int
	Longest       string
	ByLength      map[int]int
	DeadCells     []engine.Position
}

// analyzeBoard solves the board and collects its statistics
func analyzeBoard(configID string, boardConfig *engine.BoardConfig, dict *dictionary.Dictionary) (*Analysis, error) {
	board, err := boardConfig.NewBoard()
	if err != nil {
		return nil, err
	}
	gameEngine, err := engine.NewEngine(board, dict, boardConfig.MinWordLength)
	if err != nil {
		return nil, err
	}

	analysis := &Analysis{
		ConfigID:      configID,
		Name:          boardConfig.Name,
		Size:          board.Size(),
		MinWordLength: boardConfig.MinWordLength,
		Words:         gameEngine.EnumerateAllWords(),
		ByLength:      make(map[int]int),
	}

	used := make([]bool, board.Cells())
	for _, word := range analysis.Words {
		analysis.MaxScore += gameEngine.ScoreWord(word)
		analysis.ByLength[len(word)]++
		if len(word) > len(analysis.Longest) {
			analysis.Longest = word
		}
		for _, pos := range gameEngine.FindPath(word) {
			used[pos.Row*board.Size()+pos.Col] = true
		}
	}

	for i, ok := range used {
		if !ok {
			analysis.DeadCells = append(analysis.DeadCells, engine.Position{Row: i / board.Size(), Col: i % board.Size()})
		}
	}
	return analysis, nil
}

func printAnalysis(w io.Writer, a *Analysis, board *engine.Board) {
	fmt.Fprintf(w, "\n=== Analyzing %s (%s) ===\n", a.ConfigID, a.Name)
	fmt.Fprintf(w, "📐 Board: %dx%d, min word length %d\n", a.Size, a.Size, a.MinWordLength)
	for _, row := range board.Rows() {
		fmt.Fprintf(w, "   %s\n", strings.Join(strings.Split(row, ""), " "))
	}

	if len(a.Words) == 0 {
		fmt.Fprintf(w, "⚠️  CRITICAL: no words of %d+ letters on this board!\n", a.MinWordLength)
		return
	}

	fmt.Fprintf(w, "📖 Words: %d, max score: %d\n", len(a.Words), a.MaxScore)
	fmt.Fprintf(w, "🏆 Longest: %s (%d letters)\n", a.Longest, len(a.Longest))

	lengths := make([]int, 0, len(a.ByLength))
	for n := range a.ByLength {
		lengths = append(lengths, n)
	}
	sort.Ints(lengths)
	for _, n := range lengths {
		fmt.Fprintf(w, "   %2d letters: %d\n", n, a.ByLength[n])
	}

	if len(a.DeadCells) > 0 {
		fmt.Fprintf(w, "⚠️  %d cells are not used by any word\n", len(a.DeadCells))
		for i, p := range a.DeadCells {
			if i < 5 { // Show first 5 dead cells
				fmt.Fprintf(w, "   Unused: (%d, %d) - '%c'\n", p.Row, p.Col, board.At(p.Row, p.Col))
			}
		}
		if len(a.DeadCells) > 5 {
			fmt.Fprintf(w, "   ... and %d more\n", len(a.DeadCells)-5)
		}
	} else {
		fmt.Fprintln(w, "✅ Every cell is used by at least one word")
	}
}

// run analyzes the named boards, or every board in configDir when names is empty
func run(w io.Writer, configDir, dictPath string, names []string) error {
	configManager, err := config.NewManager(configDir)
	if err != nil {
		return err
	}
	if dictPath != "" {
		configManager.SetDictionaryPath(dictPath)
	}

	if len(names) == 0 {
		configs, err := configManager.ListConfigs()
		if err != nil {
			return err
		}
		for _, info := range configs {
			names = append(names, info.ConfigID)
		}
		sort.Strings(names)
	}
	if len(names) == 0 {
		return fmt.Errorf("no boards found in %s", configDir)
	}

	for _, name := range names {
		boardConfig, err := configManager.LoadConfig(name)
		if err != nil {
			fmt.Fprintf(w, "\n=== Analyzing %s ===\nError loading board: %v\n", name, err)
			continue
		}
		dict, err := configManager.LoadDictionary(boardConfig)
		if err != nil {
			return fmt.Errorf("failed to load dictionary for %s: %w", name, err)
		}
		board, err := boardConfig.NewBoard()
		if err != nil {
			fmt.Fprintf(w, "\n=== Analyzing %s ===\nError building board: %v\n", name, err)
			continue
		}
		analysis, err := analyzeBoard(name, boardConfig, dict)
		if err != nil {
			fmt.Fprintf(w, "\n=== Analyzing %s ===\nError solving board: %v\n", name, err)
			continue
		}
		printAnalysis(w, analysis, board)
	}
	return nil
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "print word statistics for Boggle boards",
		ArgsUsage: "[config_id ...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config-dir",
				Value:   "configs",
				Usage:   "directory containing board files",
				Sources: cli.EnvVars("CONFIG_DIR"),
			},
			&cli.StringFlag{
				Name:    "dict",
				Usage:   "word list to solve with (default: data/words.txt next to the config dir)",
				Sources: cli.EnvVars("DICTIONARY"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(os.Stdout, cmd.String("config-dir"), cmd.String("dict"), cmd.Args().Slice())
		},
	}
}

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
