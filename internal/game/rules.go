package game

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vovakirdan/typefall/internal/config"
	"github.com/vovakirdan/typefall/internal/words"
)

var (
	// ErrInputTooLong is returned when the typed text outgrows the target word.
	ErrInputTooLong = errors.New("input too long")

	// ErrInputCharset is returned when the typed text contains a disallowed character.
	ErrInputCharset = errors.New("input contains a disallowed character")
)

// Rules are the parameters of the state machine.
type Rules struct {
	LaneHeight         float64
	Step               float64
	TargetWords        int
	MaxInputFactor     int
	AllowedPunctuation string
}

// RulesFromConfig extracts the state machine parameters from a config.
func RulesFromConfig(cfg config.Config) Rules {
	return Rules{
		LaneHeight:         cfg.Lane.Height,
		Step:               cfg.Lane.Step,
		TargetWords:        cfg.Rules.TargetWords,
		MaxInputFactor:     cfg.Rules.MaxInputFactor,
		AllowedPunctuation: cfg.Rules.AllowedPunctuation,
	}
}

// ValidateInput checks raw typed text against the word being typed.
func (r Rules) ValidateInput(raw, word string) error {
	if limit := r.MaxInputFactor * wordLen(word); wordLen(raw) > limit {
		return fmt.Errorf("%w: %d characters, limit %d", ErrInputTooLong, wordLen(raw), limit)
	}
	return r.checkCharset(raw)
}

func (r Rules) checkCharset(text string) error {
	for _, ch := range text {
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) || strings.ContainsRune(r.AllowedPunctuation, ch) {
			continue
		}
		return fmt.Errorf("%w: %q", ErrInputCharset, ch)
	}
	return nil
}

// CheckWord returns an error if word cannot be typed under these rules.
func (r Rules) CheckWord(word string) error {
	if strings.TrimSpace(word) == "" {
		return words.ErrEmptyWord
	}
	return r.checkCharset(word)
}

// PlayableWords trims list and keeps the words a player can type. Blank
// entries are dropped silently; the rest of the dropped words are returned
// as skipped. It fails with words.ErrEmptyCatalog when nothing is left.
func (r Rules) PlayableWords(list []string) (kept, skipped []string, err error) {
	var firstErr error
	for _, w := range list {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if err := r.checkCharset(w); err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("%q: %w", w, err)
			}
			skipped = append(skipped, w)
			continue
		}
		kept = append(kept, w)
	}
	if len(kept) == 0 {
		if firstErr != nil {
			return nil, skipped, fmt.Errorf("%w: no typeable words, %v", words.ErrEmptyCatalog, firstErr)
		}
		return nil, nil, words.ErrEmptyCatalog
	}
	return kept, skipped, nil
}

// wordLen is the score value of a word: its length in characters, spaces included.
func wordLen(w string) int {
	return utf8.RuneCountInString(w)
}
