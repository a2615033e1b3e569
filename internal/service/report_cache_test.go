package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"recipe-pantry-api/internal/matching"
)

func TestReportCacheSetGet(t *testing.T) {
	cache, err := NewReportCache()
	require.NoError(t, err)
	defer cache.Close()

	key := ReportKey("r1", 1, 2)
	report := &matching.CompatibilityReport{RecipeID: "r1", CompatibilityScore: 67}

	cache.Set(key, report)
	cache.Wait()

	got, ok := cache.Get(key)
	require.True(t, ok)
	require.Equal(t, report, got)

	_, ok = cache.Get(ReportKey("r1", 1, 3))
	require.False(t, ok, "different catalog version must miss")
}

func TestReportKey(t *testing.T) {
	require.Equal(t, "r1:0000000000000001:0000000000000002", ReportKey("r1", 1, 2))
	require.NotEqual(t, ReportKey("r1", 1, 2), ReportKey("r1", 2, 1))
}

func TestNilReportCacheIsSafe(t *testing.T) {
	var cache *ReportCache

	cache.Set("k", &matching.CompatibilityReport{})
	_, ok := cache.Get("k")
	require.False(t, ok)
	cache.Wait()
	cache.Close()
}
