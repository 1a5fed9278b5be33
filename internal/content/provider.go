package content

import (
	"context"
	"embed"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed decks/*.yaml
var deckFS embed.FS

// fallbackIndustry is the deck served for industries with no dedicated deck.
const fallbackIndustry = "default"

// StaticProvider serves copy decks parsed once from the embedded YAML files.
// The deck map is read-only after construction, so lookups are safe under
// concurrent generation without locking.
type StaticProvider struct {
	decks map[string]*Deck
}

// NewStaticProvider parses all embedded decks. A malformed built-in deck is
// a programmer error and panics at startup rather than surfacing mid-run.
func NewStaticProvider() *StaticProvider {
	entries, err := deckFS.ReadDir("decks")
	if err != nil {
		panic(fmt.Errorf("embedded content decks unreadable: %w", err))
	}

	decks := make(map[string]*Deck, len(entries))
	for _, entry := range entries {
		data, err := deckFS.ReadFile(path.Join("decks", entry.Name()))
		if err != nil {
			panic(fmt.Errorf("embedded deck %s unreadable: %w", entry.Name(), err))
		}
		var deck Deck
		if err := yaml.Unmarshal(data, &deck); err != nil {
			panic(fmt.Errorf("embedded deck %s invalid: %w", entry.Name(), err))
		}
		industry := strings.TrimSuffix(entry.Name(), ".yaml")
		decks[industry] = &deck
	}

	if _, ok := decks[fallbackIndustry]; !ok {
		panic("embedded content decks missing the default fallback deck")
	}
	return &StaticProvider{decks: decks}
}

// ContentForIndustry returns the deck for the industry, or the non-empty
// fallback deck when the industry is unrecognized. It never fails.
func (p *StaticProvider) ContentForIndustry(ctx context.Context, industry string) (*Deck, error) {
	if deck, ok := p.decks[strings.ToLower(industry)]; ok {
		return deck, nil
	}
	return p.decks[fallbackIndustry], nil
}

// Industries returns the industries with a dedicated deck. Primarily for
// CLI help output and tests.
func (p *StaticProvider) Industries() []string {
	out := make([]string, 0, len(p.decks))
	for industry := range p.decks {
		out = append(out, industry)
	}
	return out
}
