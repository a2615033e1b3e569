package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"recipe-pantry-api/internal/matching"
)

// Resolution is the outcome of canonicalizing a free-typed ingredient
// name against the global catalog.
type Resolution struct {
	Name       string  `json:"name"`
	Category   string  `json:"category,omitempty"`
	Confidence float64 `json:"confidence"`
	Matched    bool    `json:"matched"`
}

// ResolverService maps what users type ("tomatos", "Chedar cheese")
// onto canonical global catalog entries so inventories stay consistent.
// Below the similarity threshold the typed name is kept as-is.
type ResolverService struct {
	catalog   CatalogSource
	threshold float64
	logger    *slog.Logger
}

func NewResolverService(catalog CatalogSource, threshold float64, logger *slog.Logger) *ResolverService {
	return &ResolverService{
		catalog:   catalog,
		threshold: threshold,
		logger:    logger,
	}
}

// Resolve finds the best-matching catalog entry for a raw name. Exact
// normalized equality is an immediate hit; otherwise Levenshtein
// similarity over normalized names picks the best candidate, accepted
// only at or above the threshold.
func (s *ResolverService) Resolve(ctx context.Context, rawName string) (Resolution, error) {
	fallback := Resolution{Name: strings.TrimSpace(rawName)}

	normalized := matching.Normalize(rawName)
	if normalized == "" {
		return fallback, nil
	}

	byCategory, err := s.catalog.All(ctx)
	if err != nil {
		return Resolution{}, fmt.Errorf("failed to load catalog: %w", err)
	}

	categories := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	best := fallback
	bestScore := -1.0

	for _, cat := range categories {
		for _, name := range byCategory[cat] {
			candidate := matching.Normalize(name)
			if candidate == "" {
				continue
			}
			if candidate == normalized {
				return Resolution{Name: name, Category: cat, Confidence: 1.0, Matched: true}, nil
			}
			if score := similarity(normalized, candidate); score > bestScore {
				bestScore = score
				best = Resolution{Name: name, Category: cat, Confidence: score, Matched: true}
			}
		}
	}

	if bestScore < s.threshold {
		return fallback, nil
	}

	s.logger.Debug("resolved inventory name against catalog",
		"raw", rawName,
		"canonical", best.Name,
		"confidence", best.Confidence,
	)
	return best, nil
}

// similarity scores two strings in 0.0–1.0 using Levenshtein distance:
// 1 - distance/max(len(a), len(b)).
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	maxLen := len([]rune(a))
	if lb := len([]rune(b)); lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}
