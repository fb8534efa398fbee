// Package words supplies the words a session asks the player to type.
package words

import (
	"errors"
	"math/rand"
	"strings"
	"time"
)

var (
	// ErrEmptyWord is returned when a source produces no usable word.
	ErrEmptyWord = errors.New("words: empty word")

	// ErrEmptyCatalog is returned when a catalog is built without any usable word.
	ErrEmptyCatalog = errors.New("words: empty catalog")
)

// Source produces one word per call.
type Source interface {
	Word() (string, error)
}

// Catalog is a fixed list of words sampled uniformly with replacement.
// Consecutive calls may return the same word.
type Catalog struct {
	words []string
	rng   *rand.Rand
}

// NewCatalog builds a catalog from list. Entries are trimmed and blank ones
// dropped. A zero seed seeds from the clock.
func NewCatalog(list []string, seed int64) (*Catalog, error) {
	clean := make([]string, 0, len(list))
	for _, w := range list {
		if w = strings.TrimSpace(w); w != "" {
			clean = append(clean, w)
		}
	}
	if len(clean) == 0 {
		return nil, ErrEmptyCatalog
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Catalog{
		words: clean,
		rng:   rand.New(rand.NewSource(seed)),
	}, nil
}

// Word returns a random word from the catalog.
func (c *Catalog) Word() (string, error) {
	if c == nil || len(c.words) == 0 {
		return "", ErrEmptyWord
	}
	return c.words[c.rng.Intn(len(c.words))], nil
}

// Len returns the number of words in the catalog.
func (c *Catalog) Len() int {
	return len(c.words)
}

// Words returns a copy of the catalog's words.
func (c *Catalog) Words() []string {
	out := make([]string, len(c.words))
	copy(out, c.words)
	return out
}
