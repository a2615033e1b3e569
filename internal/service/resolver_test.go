package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestResolver(threshold float64) *ResolverService {
	catalog := &fakeCatalog{items: map[string][]string{
		"dairy":   {"Cheddar Cheese", "Whole Milk"},
		"produce": {"Tomato", "Red Onion"},
	}}
	return NewResolverService(catalog, threshold, testLogger())
}

func TestResolveExact(t *testing.T) {
	resolver := newTestResolver(0.82)

	res, err := resolver.Resolve(context.Background(), "tomatoes")
	require.NoError(t, err)
	require.True(t, res.Matched)
	require.Equal(t, "Tomato", res.Name)
	require.Equal(t, "produce", res.Category)
	require.Equal(t, 1.0, res.Confidence)
}

func TestResolveTypo(t *testing.T) {
	resolver := newTestResolver(0.82)

	// One edit away from "cheddar cheese" after normalization.
	res, err := resolver.Resolve(context.Background(), "chedar cheese")
	require.NoError(t, err)
	require.True(t, res.Matched)
	require.Equal(t, "Cheddar Cheese", res.Name)
	require.Equal(t, "dairy", res.Category)
	require.Greater(t, res.Confidence, 0.9)
}

func TestResolveBelowThreshold(t *testing.T) {
	resolver := newTestResolver(0.82)

	res, err := resolver.Resolve(context.Background(), "dragonfruit")
	require.NoError(t, err)
	require.False(t, res.Matched)
	require.Equal(t, "dragonfruit", res.Name)
	require.Empty(t, res.Category)
}

func TestResolveBlankName(t *testing.T) {
	resolver := newTestResolver(0.82)

	res, err := resolver.Resolve(context.Background(), "   ")
	require.NoError(t, err)
	require.False(t, res.Matched)
	require.Empty(t, res.Name)
}

func TestSimilarity(t *testing.T) {
	require.Equal(t, 1.0, similarity("tomato", "tomato"))
	require.Equal(t, 1.0, similarity("", ""))
	require.Equal(t, 0.5, similarity("ab", "aX"))
	require.Less(t, similarity("tomato", "flour"), 0.82)
}
