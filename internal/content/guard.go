package content

import (
	"context"
	"time"

	"github.com/vk/siteforge/internal/ctxlog"
)

// DefaultTimeout bounds a single provider call.
const DefaultTimeout = 5 * time.Second

// defaultDeck is the built-in copy used when the provider fails or times
// out. Generation trades content richness for structural validity; a failed
// provider never fails the run.
var defaultDeck = &Deck{
	Hero: Hero{
		Title:    "Welcome",
		Subtitle: "Quality service you can rely on",
		CTA:      "Get in touch",
	},
	Services: []Service{
		{Name: "Our Services", Description: "We offer a range of services tailored to your needs."},
		{Name: "Consultations", Description: "Reach out to discuss how we can help."},
	},
	Testimonials: []Testimonial{
		{Quote: "A pleasure to work with.", Author: "A happy customer"},
	},
	About: "We are a dedicated local business committed to our customers.",
}

// Guard wraps a Provider with a timeout and a built-in fallback deck. Its
// FetchDeck never fails and never blocks past the timeout, which lets the
// generator call it without its own error handling.
type Guard struct {
	provider Provider
	timeout  time.Duration
}

// NewGuard wraps the provider. A non-positive timeout falls back to
// DefaultTimeout.
func NewGuard(provider Provider, timeout time.Duration) *Guard {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Guard{provider: provider, timeout: timeout}
}

// FetchDeck returns the provider's deck for the industry, or the built-in
// default deck on error, timeout or an empty response.
func (g *Guard) FetchDeck(ctx context.Context, industry string) *Deck {
	logger := ctxlog.FromContext(ctx)

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	type result struct {
		deck *Deck
		err  error
	}
	resCh := make(chan result, 1)
	go func() {
		deck, err := g.provider.ContentForIndustry(callCtx, industry)
		resCh <- result{deck: deck, err: err}
	}()

	select {
	case <-callCtx.Done():
		logger.Warn("Content provider call cancelled, using default copy.", "industry", industry, "cause", callCtx.Err())
		return defaultDeck
	case res := <-resCh:
		if res.err != nil {
			perr := &ProviderError{Industry: industry, Err: res.err}
			logger.Warn("Content provider failed, using default copy.", "industry", industry, "error", perr)
			return defaultDeck
		}
		if res.deck == nil || res.deck.Hero.Title == "" {
			logger.Warn("Content provider returned an empty deck, using default copy.", "industry", industry)
			return defaultDeck
		}
		return res.deck
	}
}
