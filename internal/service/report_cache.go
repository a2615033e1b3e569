package service

import (
	"fmt"

	"github.com/dgraph-io/ristretto"

	"recipe-pantry-api/internal/matching"
)

// ReportCache memoizes compatibility reports. Keys carry the inventory
// and catalog index hashes, so a stale report can never be served after
// either collection changes: the key simply stops being asked for.
type ReportCache struct {
	cache *ristretto.Cache
}

func NewReportCache() (*ReportCache, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10_000,
		MaxCost:     1_000,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create report cache: %w", err)
	}
	return &ReportCache{cache: cache}, nil
}

// ReportKey builds the cache key for one (recipe, inventory version,
// catalog version) triple.
func ReportKey(recipeID string, invHash, catalogHash uint64) string {
	return fmt.Sprintf("%s:%016x:%016x", recipeID, invHash, catalogHash)
}

func (c *ReportCache) Get(key string) (*matching.CompatibilityReport, bool) {
	if c == nil {
		return nil, false
	}
	value, ok := c.cache.Get(key)
	if !ok {
		return nil, false
	}
	report, ok := value.(*matching.CompatibilityReport)
	return report, ok
}

func (c *ReportCache) Set(key string, report *matching.CompatibilityReport) {
	if c == nil {
		return
	}
	c.cache.Set(key, report, 1)
}

// Wait blocks until buffered writes are applied. Only needed by tests.
func (c *ReportCache) Wait() {
	if c != nil {
		c.cache.Wait()
	}
}

func (c *ReportCache) Close() {
	if c != nil {
		c.cache.Close()
	}
}
