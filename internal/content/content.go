// Package content defines the Content Provider boundary: the source of
// industry-specific business copy consumed by the artifact generator.
//
// The generator depends only on the Provider interface and the Deck shape,
// not on how copy is produced. The default implementation serves cached,
// read-only decks parsed once from embedded YAML, which makes it safely
// re-entrant under concurrent generation.
package content

import (
	"context"
	"fmt"
)

// Hero is the above-the-fold copy block of a landing page.
type Hero struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	CTA      string `yaml:"cta"`
}

// Service is one offered-service entry.
type Service struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Testimonial is one customer quote.
type Testimonial struct {
	Quote  string `yaml:"quote"`
	Author string `yaml:"author"`
}

// Deck is the full copy set for one industry.
type Deck struct {
	Hero         Hero          `yaml:"hero"`
	Services     []Service     `yaml:"services"`
	Testimonials []Testimonial `yaml:"testimonials"`
	About        string        `yaml:"about"`
}

// Provider supplies a copy deck per industry. Implementations must return a
// non-empty fallback deck for unrecognized industries and must be safe for
// concurrent use.
type Provider interface {
	ContentForIndustry(ctx context.Context, industry string) (*Deck, error)
}

// ProviderError marks an upstream content failure. It is always recovered
// locally via fallback content, never escalated to a fatal error.
type ProviderError struct {
	Industry string
	Err      error
}

// Error implements the error interface for ProviderError.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("content provider failed for industry %q: %v", e.Industry, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *ProviderError) Unwrap() error {
	return e.Err
}
