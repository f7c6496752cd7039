package dictionary

import (
	"errors"
	"testing"
)

func TestDictionary_Insert(t *testing.T) {
	t.Run("valid words", func(t *testing.T) {
		d := New()
		for _, w := range []string{"CAT", "CATS", "ACT"} {
			if err := d.Insert(w); err != nil {
				t.Fatalf("Insert(%q) failed: %v", w, err)
			}
		}
		if d.Len() != 3 {
			t.Errorf("Expected 3 words, got %d", d.Len())
		}
	})

	t.Run("duplicate insert is idempotent", func(t *testing.T) {
		d := New()
		d.Insert("CAT")
		nodes := d.NodeCount()
		d.Insert("CAT")

		if d.Len() != 1 {
			t.Errorf("Expected 1 word after duplicate insert, got %d", d.Len())
		}
		if d.NodeCount() != nodes {
			t.Errorf("Expected node count to stay %d, got %d", nodes, d.NodeCount())
		}
	})

	t.Run("shared prefixes reuse nodes", func(t *testing.T) {
		d := New()
		d.Insert("CAT")
		d.Insert("CATS")
		// root + C + A + T + S
		if d.NodeCount() != 5 {
			t.Errorf("Expected 5 nodes, got %d", d.NodeCount())
		}
	})

	t.Run("empty word", func(t *testing.T) {
		d := New()
		if err := d.Insert(""); !errors.Is(err, ErrEmptyWord) {
			t.Errorf("Expected ErrEmptyWord, got %v", err)
		}
	})

	t.Run("non-letter characters", func(t *testing.T) {
		d := New()
		for _, w := range []string{"cat", "CA-T", "C4T", "ÉTÉ", "CAT "} {
			if err := d.Insert(w); !errors.Is(err, ErrInvalidWord) {
				t.Errorf("Insert(%q): expected ErrInvalidWord, got %v", w, err)
			}
		}
		if d.Len() != 0 {
			t.Errorf("Expected no words after rejected inserts, got %d", d.Len())
		}
	})
}

func TestDictionary_Contains(t *testing.T) {
	d := FromWords("CAT", "CATS", "ACT", "DOG")

	tests := []struct {
		word     string
		expected bool
	}{
		{"CAT", true},
		{"CATS", true},
		{"ACT", true},
		{"DOG", true},
		{"CA", false},
		{"CATSS", false},
		{"DOGS", false},
		{"", false},
		{"cat", false},
		{"C@T", false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := d.Contains(tt.word); got != tt.expected {
				t.Errorf("Contains(%q) = %v, expected %v", tt.word, got, tt.expected)
			}
		})
	}
}

func TestDictionary_ContainsPrefix(t *testing.T) {
	d := FromWords("CAT", "CATS", "ACT")

	tests := []struct {
		prefix   string
		expected bool
	}{
		{"", true},
		{"C", true},
		{"CA", true},
		{"CAT", true},
		{"CATS", true},
		{"A", true},
		{"AC", true},
		{"CATSX", false},
		{"D", false},
		{"TA", false},
		{"c", false},
		{"1", false},
	}

	for _, tt := range tests {
		t.Run("prefix_"+tt.prefix, func(t *testing.T) {
			if got := d.ContainsPrefix(tt.prefix); got != tt.expected {
				t.Errorf("ContainsPrefix(%q) = %v, expected %v", tt.prefix, got, tt.expected)
			}
		})
	}
}

func TestDictionary_EveryWordIsItsOwnPrefix(t *testing.T) {
	words := []string{"A", "AN", "ANT", "ANTS", "BOGGLE", "BOG", "ZEBRA", "QUIZ"}
	d := FromWords(words...)

	for _, w := range words {
		if !d.Contains(w) {
			t.Errorf("Expected %q to be contained", w)
		}
		if !d.ContainsPrefix(w) {
			t.Errorf("Expected %q to be a prefix of itself", w)
		}
	}
}

func TestDictionary_Empty(t *testing.T) {
	d := New()

	for _, s := range []string{"", "A", "CAT", "ZZZZ"} {
		if d.Contains(s) {
			t.Errorf("Empty dictionary: Contains(%q) should be false", s)
		}
		if d.ContainsPrefix(s) {
			t.Errorf("Empty dictionary: ContainsPrefix(%q) should be false", s)
		}
	}
	if d.Len() != 0 {
		t.Errorf("Expected length 0, got %d", d.Len())
	}
}

func TestFromWords_Normalizes(t *testing.T) {
	d := FromWords("  cat ", "Dogs", "not-a-word", "")

	if !d.Contains("CAT") {
		t.Error("Expected CAT after normalization")
	}
	if !d.Contains("DOGS") {
		t.Error("Expected DOGS after normalization")
	}
	if d.Len() != 2 {
		t.Errorf("Expected 2 words, got %d", d.Len())
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"cat", "CAT"},
		{"  Cats\n", "CATS"},
		{"", ""},
		{"QUIZ", "QUIZ"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.out {
			t.Errorf("Normalize(%q) = %q, expected %q", tt.in, got, tt.out)
		}
	}
}
