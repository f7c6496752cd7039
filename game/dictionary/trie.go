package dictionary

import (
	"errors"
	"fmt"
	"strings"
)

// AlphabetSize is the number of letters a node can branch on (A-Z).
const AlphabetSize = 26

var (
	ErrEmptyWord   = errors.New("empty word")
	ErrInvalidWord = errors.New("invalid word")
)

// node is one prefix in the tree. A zero child index means "no child";
// index 0 is always the root, which is never anybody's child.
type node struct {
	children [AlphabetSize]int32
	terminal bool
}

// Dictionary is an immutable-after-load set of uppercase words supporting
// exact and prefix lookups.
type Dictionary struct {
	nodes []node
	words int
}

// New creates an empty dictionary containing only the root node.
func New() *Dictionary {
	return &Dictionary{
		nodes: make([]node, 1, 64),
	}
}

// FromWords builds a dictionary from the given words, normalizing each one.
// Words that are not made of letters are skipped.
func FromWords(words ...string) *Dictionary {
	d := New()
	for _, w := range words {
		_ = d.Insert(Normalize(w))
	}
	return d
}

// Normalize trims surrounding whitespace and uppercases s.
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Insert adds word to the dictionary. The word must be non-empty and made of
// the letters A-Z only. Inserting the same word twice is a no-op.
func (d *Dictionary) Insert(word string) error {
	if word == "" {
		return ErrEmptyWord
	}
	for i := 0; i < len(word); i++ {
		if !isLetter(word[i]) {
			return fmt.Errorf("%w: %q has non A-Z character %q at %d", ErrInvalidWord, word, word[i], i)
		}
	}

	cur := int32(0)
	for i := 0; i < len(word); i++ {
		idx := word[i] - 'A'
		next := d.nodes[cur].children[idx]
		if next == 0 {
			d.nodes = append(d.nodes, node{})
			next = int32(len(d.nodes) - 1)
			d.nodes[cur].children[idx] = next
		}
		cur = next
	}

	if !d.nodes[cur].terminal {
		d.nodes[cur].terminal = true
		d.words++
	}
	return nil
}

// Contains reports whether word was inserted.
func (d *Dictionary) Contains(word string) bool {
	if word == "" {
		return false
	}
	n, ok := d.walk(word)
	return ok && d.nodes[n].terminal
}

// ContainsPrefix reports whether some inserted word starts with prefix.
// The empty prefix matches any non-empty dictionary.
func (d *Dictionary) ContainsPrefix(prefix string) bool {
	if prefix == "" {
		return d.words > 0
	}
	_, ok := d.walk(prefix)
	return ok
}

// Len returns the number of distinct words stored.
func (d *Dictionary) Len() int {
	return d.words
}

// NodeCount returns the number of prefix nodes, root included.
func (d *Dictionary) NodeCount() int {
	return len(d.nodes)
}

// walk follows s from the root and returns the index of the node reached.
func (d *Dictionary) walk(s string) (int32, bool) {
	cur := int32(0)
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) {
			return 0, false
		}
		cur = d.nodes[cur].children[s[i]-'A']
		if cur == 0 {
			return 0, false
		}
	}
	return cur, true
}

func isLetter(c byte) bool {
	return c >= 'A' && c <= 'Z'
}
