package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeBoardDir lays out configs/ and data/words.txt under a temp dir and
// returns the config directory
func writeBoardDir(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	configDir := filepath.Join(root, "configs")
	dataDir := filepath.Join(root, "data")
	for _, dir := range []string{configDir, dataDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}
	if err := os.WriteFile(filepath.Join(dataDir, "words.txt"), []byte("cat\ncats\nact\nzzz\n"), 0644); err != nil {
		t.Fatalf("Failed to write word list: %v", err)
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(configDir, name), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	return configDir
}

func hasMessage(result ValidationResult, substr string) bool {
	for _, msg := range result.Errors {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}

func TestValidateConfig_ValidConfig(t *testing.T) {
	dir := writeBoardDir(t, map[string]string{
		"classic.json": `{"name": "Classic", "size": 2, "rows": ["CA", "TS"], "min_word_length": 3}`,
	})

	result := validateConfig(filepath.Join(dir, "classic.json"), "")
	if !result.Valid {
		t.Fatalf("Expected valid config, but got errors: %v", result.Errors)
	}
	if result.File != "classic.json" {
		t.Errorf("Expected file name classic.json, got %s", result.File)
	}

	for _, info := range []string{"✓ Name: Classic", "✓ Board: 2x2", "✓ Rules: min word length 3, 2 players", "✓ Playability: 3 words, max score 4"} {
		if !hasMessage(result, info) {
			t.Errorf("Expected %q in %v", info, result.Errors)
		}
	}
}

func TestValidateConfig_YAML(t *testing.T) {
	dir := writeBoardDir(t, map[string]string{
		"tiny.yaml": "name: Tiny\nrows:\n  - CA\n  - TS\nmin_word_length: 4\nplayers: 3\n",
	})

	result := validateConfig(filepath.Join(dir, "tiny.yaml"), "")
	if !result.Valid {
		t.Fatalf("Expected valid config, but got errors: %v", result.Errors)
	}
	// Size defaults to the row count
	if !hasMessage(result, "Board: 2x2") || !hasMessage(result, "3 players") {
		t.Errorf("Unexpected info: %v", result.Errors)
	}
	if !hasMessage(result, "Playability: 1 words") {
		t.Errorf("Expected only CATS to be playable: %v", result.Errors)
	}
}

func TestValidateConfig_InvalidJSON(t *testing.T) {
	dir := writeBoardDir(t, map[string]string{"bad.json": `{"name": "Bad", "rows": [`})

	result := validateConfig(filepath.Join(dir, "bad.json"), "")
	if result.Valid {
		t.Error("Expected invalid config due to bad JSON")
	}
	if !hasMessage(result, "Invalid JSON") {
		t.Errorf("Expected 'Invalid JSON' error, got %v", result.Errors)
	}
}

func TestValidateConfig_InvalidYAML(t *testing.T) {
	dir := writeBoardDir(t, map[string]string{"bad.yml": "name: [unclosed\n"})

	result := validateConfig(filepath.Join(dir, "bad.yml"), "")
	if result.Valid || !hasMessage(result, "Invalid YAML") {
		t.Errorf("Expected 'Invalid YAML' error, got %v", result.Errors)
	}
}

func TestValidateConfig_MissingFile(t *testing.T) {
	result := validateConfig("/non/existent/file.json", "")
	if result.Valid {
		t.Error("Expected invalid result for missing file")
	}
	if !hasMessage(result, "Failed to read file") {
		t.Error("Expected 'Failed to read file' error")
	}
}

func TestValidateConfig_BoardErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"missing name", `{"rows": ["CA", "TS"]}`, "name is required"},
		{"empty rows", `{"name": "Empty", "rows": []}`, "size must be between"},
		{"size mismatch", `{"name": "Odd", "size": 3, "rows": ["CA", "TS"]}`, "rows must have 3 entries"},
		{"ragged row", `{"name": "Ragged", "rows": ["CAT", "TS"]}`, "invalid board size"},
		{"bad letter", `{"name": "Digits", "rows": ["C1", "TS"]}`, "invalid board character"},
		{"too many players", `{"name": "Crowd", "rows": ["CA", "TS"], "players": 9}`, "players must be between"},
		{"min length too long", `{"name": "Long", "rows": ["CA", "TS"], "min_word_length": 5}`, "exceeds the 4 cells"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeBoardDir(t, map[string]string{"board.json": tt.content})
			result := validateConfig(filepath.Join(dir, "board.json"), "")
			if result.Valid {
				t.Fatal("Expected invalid config")
			}
			if !hasMessage(result, tt.want) {
				t.Errorf("Expected %q error, got %v", tt.want, result.Errors)
			}
		})
	}
}

func TestValidateConfig_NoPlayableWords(t *testing.T) {
	dir := writeBoardDir(t, map[string]string{
		"dead.json": `{"name": "Dead", "rows": ["QQ", "QQ"], "min_word_length": 3}`,
	})

	result := validateConfig(filepath.Join(dir, "dead.json"), "")
	if result.Valid {
		t.Error("Expected invalid config for a board with no words")
	}
	if !hasMessage(result, "Playability failure") {
		t.Errorf("Expected 'Playability failure' error, got %v", result.Errors)
	}
}

func TestValidateConfig_Dictionary(t *testing.T) {
	dir := writeBoardDir(t, map[string]string{
		"custom.json":  `{"name": "Custom", "rows": ["CA", "TS"], "min_word_length": 3, "dictionary": "custom.txt"}`,
		"missing.json": `{"name": "Missing", "rows": ["CA", "TS"], "dictionary": "nope.txt"}`,
	})
	if err := os.WriteFile(filepath.Join(dir, "custom.txt"), []byte("sat\n"), 0644); err != nil {
		t.Fatalf("Failed to write word list: %v", err)
	}

	t.Run("relative to config dir", func(t *testing.T) {
		result := validateConfig(filepath.Join(dir, "custom.json"), "")
		if !result.Valid || !hasMessage(result, "Playability: 1 words") {
			t.Errorf("Expected SAT from custom.txt, got %v", result.Errors)
		}
	})

	t.Run("missing word list", func(t *testing.T) {
		result := validateConfig(filepath.Join(dir, "missing.json"), "")
		if result.Valid || !hasMessage(result, "Failed to load dictionary") {
			t.Errorf("Expected dictionary error, got %v", result.Errors)
		}
	})

	t.Run("override wins", func(t *testing.T) {
		result := validateConfig(filepath.Join(dir, "missing.json"), filepath.Join(dir, "custom.txt"))
		if result.Valid {
			t.Errorf("SAT is 3 letters and min length defaults to 4: %v", result.Errors)
		}
		if !hasMessage(result, "from custom.txt") {
			t.Errorf("Expected the override word list to be used, got %v", result.Errors)
		}
	})
}

func TestRun(t *testing.T) {
	dir := writeBoardDir(t, map[string]string{
		"classic.json": `{"name": "Classic", "rows": ["CA", "TS"], "min_word_length": 3}`,
		"tiny.yml":     "name: Tiny\nrows: [CA, TS]\n",
		"notes.txt":    "ignored",
	})

	out, allValid, err := run(dir, "")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !allValid {
		t.Errorf("Expected all configs valid:\n%s", out)
	}
	for _, want := range []string{"classic.json", "tiny.yml", "✅ All configurations are valid!"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in report:\n%s", want, out)
		}
	}
	if strings.Contains(out, "notes.txt") {
		t.Error("Non-config files should be skipped")
	}
	if strings.Index(out, "classic.json") > strings.Index(out, "tiny.yml") {
		t.Error("Files should be reported in name order")
	}
}

func TestRun_Invalid(t *testing.T) {
	dir := writeBoardDir(t, map[string]string{
		"good.json": `{"name": "Good", "rows": ["CA", "TS"], "min_word_length": 3}`,
		"bad.json":  `{"rows": ["CA", "TS"]}`,
	})

	out, allValid, err := run(dir, "")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if allValid {
		t.Error("Expected an invalid config to be reported")
	}
	if !strings.Contains(out, "❌ INVALID") || !strings.Contains(out, "❌ Some configurations have errors") {
		t.Errorf("Unexpected report:\n%s", out)
	}
	if !strings.Contains(out, "  ✓ Name: Good") {
		t.Errorf("Valid files should still list their info lines:\n%s", out)
	}
}

func TestRun_EmptyDir(t *testing.T) {
	if _, _, err := run(t.TempDir(), ""); err == nil {
		t.Error("Expected error for a directory without config files")
	}
}
