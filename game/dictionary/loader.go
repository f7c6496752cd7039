package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadStats summarizes a word-list load.
type LoadStats struct {
	Lines    int `json:"lines"`
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"` // lines holding something other than A-Z letters
}

// Load reads a line-oriented word list. Each non-blank line that does not
// start with '#' is normalized to uppercase and inserted. Lines that still
// contain non-letters after normalization are counted as skipped.
func Load(r io.Reader) (*Dictionary, LoadStats, error) {
	var stats LoadStats
	d := New()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		stats.Lines++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		word := Normalize(line)
		if err := d.Insert(word); err != nil {
			if errors.Is(err, ErrInvalidWord) {
				stats.Skipped++
				continue
			}
			return nil, stats, err
		}
		stats.Inserted++
	}

	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("failed to read word list: %w", err)
	}

	return d, stats, nil
}

// LoadFile opens path and loads it with Load.
func LoadFile(path string) (*Dictionary, LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	d, stats, err := Load(f)
	if err != nil {
		return nil, stats, fmt.Errorf("%s: %w", path, err)
	}
	return d, stats, nil
}
