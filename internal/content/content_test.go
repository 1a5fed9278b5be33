package content

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticProvider(t *testing.T) {
	p := NewStaticProvider()

	t.Run("known industry has a dedicated deck", func(t *testing.T) {
		deck, err := p.ContentForIndustry(context.Background(), "restaurant")
		require.NoError(t, err)
		require.NotNil(t, deck)
		assert.NotEmpty(t, deck.Hero.Title)
		assert.NotEmpty(t, deck.Services)
		assert.NotEmpty(t, deck.About)
	})

	t.Run("industry lookup is case-insensitive", func(t *testing.T) {
		deck, err := p.ContentForIndustry(context.Background(), "Restaurant")
		require.NoError(t, err)
		assert.NotEmpty(t, deck.Hero.Title)
	})

	t.Run("unknown industry falls back to default deck", func(t *testing.T) {
		deck, err := p.ContentForIndustry(context.Background(), "submarine-racing")
		require.NoError(t, err)
		require.NotNil(t, deck)
		assert.NotEmpty(t, deck.Hero.Title)
		assert.NotEmpty(t, deck.Services)
	})

	t.Run("decks are stable across calls", func(t *testing.T) {
		a, _ := p.ContentForIndustry(context.Background(), "fitness")
		b, _ := p.ContentForIndustry(context.Background(), "fitness")
		assert.Same(t, a, b)
	})
}

// failingProvider always reports an upstream failure.
type failingProvider struct{}

func (failingProvider) ContentForIndustry(ctx context.Context, industry string) (*Deck, error) {
	return nil, errors.New("upstream exploded")
}

// slowProvider blocks until its context is cancelled.
type slowProvider struct{}

func (slowProvider) ContentForIndustry(ctx context.Context, industry string) (*Deck, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

// emptyProvider returns a deck with no usable copy.
type emptyProvider struct{}

func (emptyProvider) ContentForIndustry(ctx context.Context, industry string) (*Deck, error) {
	return &Deck{}, nil
}

func TestGuard(t *testing.T) {
	t.Run("provider error falls back to default copy", func(t *testing.T) {
		g := NewGuard(failingProvider{}, time.Second)
		deck := g.FetchDeck(context.Background(), "restaurant")
		require.NotNil(t, deck)
		assert.NotEmpty(t, deck.Hero.Title)
		assert.NotEmpty(t, deck.Services)
	})

	t.Run("provider timeout falls back to default copy", func(t *testing.T) {
		g := NewGuard(slowProvider{}, 20*time.Millisecond)
		start := time.Now()
		deck := g.FetchDeck(context.Background(), "restaurant")
		assert.Less(t, time.Since(start), time.Second)
		require.NotNil(t, deck)
		assert.NotEmpty(t, deck.Hero.Title)
	})

	t.Run("empty deck falls back to default copy", func(t *testing.T) {
		g := NewGuard(emptyProvider{}, time.Second)
		deck := g.FetchDeck(context.Background(), "restaurant")
		assert.NotEmpty(t, deck.Hero.Title)
	})

	t.Run("healthy provider passes through", func(t *testing.T) {
		g := NewGuard(NewStaticProvider(), time.Second)
		deck := g.FetchDeck(context.Background(), "salon")
		assert.Contains(t, deck.Hero.Title, "Yourself")
	})
}

func TestProviderError(t *testing.T) {
	cause := errors.New("boom")
	err := &ProviderError{Industry: "retail", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "retail")
}
