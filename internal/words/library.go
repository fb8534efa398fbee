package words

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/typefall/internal/config"
)

//go:embed packs/default.yaml
var defaultLibraryYAML []byte

// Pack is a named category of words.
type Pack struct {
	ID    string   `yaml:"-"`
	Name  string   `yaml:"name"`
	Words []string `yaml:"words"`
}

// Library is a set of packs plus the one used when none is requested.
type Library struct {
	Categories      map[string]Pack `yaml:"categories"`
	DefaultCategory string          `yaml:"default_category"`
}

// ParseLibrary decodes a YAML library and checks it references real packs.
func ParseLibrary(data []byte) (Library, error) {
	var lib Library
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return Library{}, fmt.Errorf("words: cannot parse library: %w", err)
	}
	if len(lib.Categories) == 0 {
		return Library{}, fmt.Errorf("words: library has no categories: %w", ErrEmptyCatalog)
	}
	for id, p := range lib.Categories {
		p.ID = id
		if p.Name == "" {
			p.Name = id
		}
		lib.Categories[id] = p
	}
	if lib.DefaultCategory == "" {
		lib.DefaultCategory = lib.IDs()[0]
	}
	if _, ok := lib.Categories[lib.DefaultCategory]; !ok {
		return Library{}, fmt.Errorf("words: default category %q is not defined", lib.DefaultCategory)
	}
	return lib, nil
}

// LoadLibrary loads word packs.
// Search order: customPath -> ~/.typefall/configs/words.yaml -> ./configs/words.yaml -> embedded default.
func LoadLibrary(customPath string) (Library, error) {
	data, _, err := config.ReadFirst(customPath, "words.yaml", defaultLibraryYAML)
	if err != nil {
		return Library{}, err
	}
	return ParseLibrary(data)
}

// DefaultLibrary returns the embedded library.
func DefaultLibrary() Library {
	lib, err := ParseLibrary(defaultLibraryYAML)
	if err != nil {
		panic(fmt.Sprintf("words: embedded library is broken: %v", err))
	}
	return lib
}

// IDs returns the category IDs, sorted.
func (l Library) IDs() []string {
	ids := make([]string, 0, len(l.Categories))
	for id := range l.Categories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Pack returns the pack with the given ID. An empty ID selects the default.
func (l Library) Pack(id string) (Pack, error) {
	if id == "" {
		id = l.DefaultCategory
	}
	p, ok := l.Categories[id]
	if !ok {
		return Pack{}, fmt.Errorf("words: unknown pack %q", id)
	}
	return p, nil
}

// ParsePack decodes a single pack document ({name, words}) for import.
func ParsePack(id string, data []byte) (Pack, error) {
	var p Pack
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Pack{}, fmt.Errorf("words: cannot parse pack %q: %w", id, err)
	}
	p.ID = id
	if p.Name == "" {
		p.Name = id
	}
	if _, err := NewCatalog(p.Words, 1); err != nil {
		return Pack{}, fmt.Errorf("words: pack %q: %w", id, err)
	}
	return p, nil
}
