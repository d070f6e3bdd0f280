package catalog

import (
	"strings"

	"github.com/roomlens/backend/internal/domain"
)

// Default catalog pair used when no exact (style, roomType) entry exists.
const (
	DefaultStyle    = "boho"
	DefaultRoomType = "living_room"
)

// MemoryIndex is a static in-memory catalog keyed by (style, roomType).
// It is read-only after construction and safe for concurrent lookups.
// Returned slices are shared views of the catalog data; callers copy
// before filtering or sorting.
type MemoryIndex struct {
	entries       map[string][]domain.Product
	complementary map[string][]domain.Product
}

// NewMemoryIndex creates an index over the built-in catalog data.
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{
		entries:       catalogEntries,
		complementary: complementaryEntries,
	}
}

// Lookup returns the products for a (style, roomType) pair. A miss is not
// an error: unknown pairs fall back to the default boho/living_room entry.
func (idx *MemoryIndex) Lookup(style, roomType string) []domain.Product {
	if products, ok := idx.entries[catalogKey(style, roomType)]; ok {
		return products
	}
	return idx.entries[catalogKey(DefaultStyle, DefaultRoomType)]
}

// Complementary returns the coordinating products registered for a kept
// item slot and style. No registration yields an empty result.
func (idx *MemoryIndex) Complementary(kind domain.KeepKind, style string) []domain.Product {
	return idx.complementary[complementaryKey(kind, style)]
}

// catalogKey builds the composite (style, roomType) lookup key.
func catalogKey(style, roomType string) string {
	return normalizeKey(style) + "|" + normalizeKey(roomType)
}

// complementaryKey builds the (keepKind, style) registry key.
func complementaryKey(kind domain.KeepKind, style string) string {
	return string(kind) + "|" + normalizeKey(style)
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
