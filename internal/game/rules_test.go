package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/typefall/internal/config"
	"github.com/vovakirdan/typefall/internal/words"
)

func TestCheckWord(t *testing.T) {
	r := RulesFromConfig(config.DefaultConfig())

	tests := []struct {
		word string
		want error
	}{
		{"Hermione", nil},
		{"Harry Potter", nil},
		{"Weasley's", nil},
		{"Ravenclaw-Tower", nil},
		{"Mr. Ollivander", ErrInputCharset},
		{"Lupin!", ErrInputCharset},
		{"  ", words.ErrEmptyWord},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if err := r.CheckWord(tt.word); !errors.Is(err, tt.want) {
				t.Errorf("CheckWord(%q) = %v, expected %v", tt.word, err, tt.want)
			}
		})
	}
}

func TestPlayableWordsFiltersUntypeable(t *testing.T) {
	r := RulesFromConfig(config.DefaultConfig())

	kept, skipped, err := r.PlayableWords([]string{" Dobby ", "Mr. Ollivander", "", "Lupin!", "Hagrid"})
	if err != nil {
		t.Fatalf("PlayableWords() failed: %v", err)
	}
	if strings.Join(kept, ",") != "Dobby,Hagrid" {
		t.Errorf("kept = %q, expected [Dobby Hagrid]", kept)
	}
	if strings.Join(skipped, ",") != "Mr. Ollivander,Lupin!" {
		t.Errorf("skipped = %q", skipped)
	}
}

func TestPlayableWordsAllUntypeable(t *testing.T) {
	r := RulesFromConfig(config.DefaultConfig())

	_, skipped, err := r.PlayableWords([]string{"Mr. Ollivander", "Lupin!"})
	if !errors.Is(err, words.ErrEmptyCatalog) {
		t.Fatalf("expected ErrEmptyCatalog, got %v", err)
	}
	if !strings.Contains(err.Error(), "Mr. Ollivander") {
		t.Errorf("error should name the offending word: %v", err)
	}
	if len(skipped) != 2 {
		t.Errorf("skipped = %q, expected both words", skipped)
	}

	if _, _, err := r.PlayableWords([]string{" ", ""}); !errors.Is(err, words.ErrEmptyCatalog) {
		t.Errorf("blank list: expected ErrEmptyCatalog, got %v", err)
	}
}

func TestPlayableWordsFollowConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Rules.AllowedPunctuation = " .'-"
	r := RulesFromConfig(cfg)

	kept, _, err := r.PlayableWords([]string{"Mr. Ollivander"})
	if err != nil || len(kept) != 1 {
		t.Fatalf("PlayableWords() = %q, %v; a configured '.' should be typeable", kept, err)
	}

	m := Machine{Rules: r}
	s := running(m, kept[0])
	s, _ = m.Type(s, "mr. ollivander")
	if s.WordsCompleted != 1 {
		t.Errorf("WordsCompleted = %d, a playable word must be completable", s.WordsCompleted)
	}
}

func TestDefaultLibraryIsPlayable(t *testing.T) {
	r := RulesFromConfig(config.DefaultConfig())
	lib := words.DefaultLibrary()

	for _, id := range lib.IDs() {
		p, err := lib.Pack(id)
		if err != nil {
			t.Fatalf("Pack(%q) failed: %v", id, err)
		}
		if _, skipped, err := r.PlayableWords(p.Words); err != nil || len(skipped) > 0 {
			t.Errorf("pack %q: skipped %q, err %v", id, skipped, err)
		}
	}
}
