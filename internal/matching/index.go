package matching

import (
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// IndexEntry is one ingredient known to an index, keyed by its
// normalized name but keeping the original display name for output.
type IndexEntry struct {
	Key         string
	DisplayName string
	Category    string

	tokens map[string]struct{}
}

// Index is a read-only snapshot over an ingredient collection (a user's
// personal inventory or the shared global catalog) with O(1) lookup by
// normalized name. Build a fresh one whenever the underlying collection
// changes; an Index is never mutated after construction and is safe for
// concurrent use.
type Index struct {
	entries []IndexEntry
	byKey   map[string]int
	hash    uint64
}

// BuildIndex normalizes every ingredient of a category-grouped
// collection into a reverse lookup. When two raw names normalize to the
// same key the first-seen entry wins; matching only needs existence.
// Categories are walked in sorted order so insertion order (the final
// matcher tie-break) is deterministic for identical input.
func BuildIndex(byCategory map[string][]string) *Index {
	idx := &Index{byKey: make(map[string]int)}

	categories := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	h := xxhash.New()
	for _, cat := range categories {
		for _, name := range byCategory[cat] {
			key := Normalize(name)
			if key == "" {
				continue
			}

			// Content hash covers every input entry, so any inventory
			// change produces a new version even on key collisions.
			h.WriteString(cat)
			h.Write([]byte{0})
			h.WriteString(key)
			h.Write([]byte{0})

			if _, seen := idx.byKey[key]; seen {
				continue
			}
			idx.byKey[key] = len(idx.entries)
			idx.entries = append(idx.entries, IndexEntry{
				Key:         key,
				DisplayName: strings.TrimSpace(name),
				Category:    cat,
				tokens:      tokenSet(key),
			})
		}
	}
	idx.hash = h.Sum64()

	return idx
}

// Lookup returns the entry stored under a normalized name.
func (idx *Index) Lookup(key string) (IndexEntry, bool) {
	if idx == nil {
		return IndexEntry{}, false
	}
	i, ok := idx.byKey[key]
	if !ok {
		return IndexEntry{}, false
	}
	return idx.entries[i], true
}

// Entries returns all entries in insertion order. Callers must not
// modify the returned slice.
func (idx *Index) Entries() []IndexEntry {
	if idx == nil {
		return nil
	}
	return idx.entries
}

// Len reports the number of distinct normalized names in the index.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.entries)
}

// Hash is a content hash over the source collection, usable as a cache
// version key: equal input yields an equal hash.
func (idx *Index) Hash() uint64 {
	if idx == nil {
		return 0
	}
	return idx.hash
}
