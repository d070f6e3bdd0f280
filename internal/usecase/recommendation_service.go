package usecase

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/roomlens/backend/internal/domain"
)

// Scoring policy constants
const (
	// lowPriceThreshold is the price below which refresh-tier candidates
	// earn the low-price bonus, in the catalog's currency units.
	lowPriceThreshold = 100.0

	// refreshLowPriceBonus biases the refresh tier toward cheap,
	// low-commitment accent items.
	refreshLowPriceBonus = 20.0
)

// keepRemovals maps each keep flag to the categories it suppresses.
// Only the major category of a domain is removed: a user who keeps their
// sofa can still receive accent-seating suggestions.
var keepRemovals = map[domain.KeepKind][]domain.Category{
	domain.KeepSeating:  {domain.CategorySeatingMajor},
	domain.KeepRug:      {domain.CategoryRug},
	domain.KeepLighting: {domain.CategoryLightingMajor},
}

// RecommendationConfig holds configuration for the recommendation service
type RecommendationConfig struct {
	EnableDebugLogging bool
}

// RecommendationService selects, scores, orders and price-anchors product
// candidates from the catalog. It is a pure, synchronous computation over
// immutable inputs and is safe for concurrent use.
type RecommendationService struct {
	catalog            domain.CatalogIndex
	enableDebugLogging bool
}

// NewRecommendationService creates a recommendation service backed by the
// given catalog index.
func NewRecommendationService(catalog domain.CatalogIndex, config RecommendationConfig) *RecommendationService {
	return &RecommendationService{
		catalog:            catalog,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Recommend runs the full pipeline:
// lookup -> filter -> rank -> truncate to target count -> compose anchors.
// Truncation happens before anchor composition on purpose: anchor pairs
// only surface when both halves rank inside the target count.
//
// The engine is total. Unknown style/room pairs fall back to the default
// catalog entry, unknown intensities to the redesign profile, and an empty
// candidate set yields an empty list rather than an error.
func (s *RecommendationService) Recommend(criteria domain.SelectionCriteria) domain.RecommendationResult {
	intensity := NormalizeIntensity(criteria.Intensity)
	profile := ProfileFor(intensity)

	candidates := s.catalog.Lookup(criteria.Style, criteria.RoomType)
	filtered := s.filterCandidates(candidates, criteria)
	ranked := rankCandidates(filtered, intensity)

	if len(ranked) > profile.TargetItemCount {
		ranked = ranked[:profile.TargetItemCount]
	}

	products := composeAnchors(ranked, intensity)

	if s.enableDebugLogging {
		logrus.Debugf("[RECOMMEND] style=%q room=%q intensity=%q candidates=%d filtered=%d returned=%d",
			criteria.Style, criteria.RoomType, intensity, len(candidates), len(filtered), len(products))
	}

	return domain.RecommendationResult{
		Products:      products,
		ProductCount:  len(products),
		IntensityInfo: profile,
	}
}

// filterCandidates removes candidates in kept categories and appends the
// complementary products registered for each kept slot and the current
// style. The operation is idempotent: complementary products already
// present are not appended again.
func (s *RecommendationService) filterCandidates(products []domain.Product, criteria domain.SelectionCriteria) []domain.Product {
	removed := make(map[domain.Category]bool)
	for _, kind := range activeKeepKinds(criteria.KeepItems) {
		for _, category := range keepRemovals[kind] {
			removed[category] = true
		}
	}

	filtered := make([]domain.Product, 0, len(products))
	seen := make(map[string]bool, len(products))
	for _, p := range products {
		if removed[p.Category] {
			continue
		}
		filtered = append(filtered, p)
		seen[p.ID] = true
	}

	for _, kind := range activeKeepKinds(criteria.KeepItems) {
		for _, p := range s.catalog.Complementary(kind, criteria.Style) {
			if seen[p.ID] {
				continue
			}
			filtered = append(filtered, p)
			seen[p.ID] = true
		}
	}

	return filtered
}

// activeKeepKinds returns the kept slots in a fixed order so filtering is
// deterministic.
func activeKeepKinds(keep domain.KeepItems) []domain.KeepKind {
	var kinds []domain.KeepKind
	if keep.Seating {
		kinds = append(kinds, domain.KeepSeating)
	}
	if keep.Rug {
		kinds = append(kinds, domain.KeepRug)
	}
	if keep.Lighting {
		kinds = append(kinds, domain.KeepLighting)
	}
	return kinds
}

// compositeScore computes the ranking score for one candidate:
// conversion score plus commission rate, with a fixed bonus for cheap
// items on the refresh tier. A missing price is treated as 0 and therefore
// receives the bonus.
func compositeScore(p domain.Product, intensity domain.Intensity) float64 {
	score := p.ConversionScore + p.CommissionRate
	if intensity == domain.IntensityRefresh && p.PriceValue < lowPriceThreshold {
		score += refreshLowPriceBonus
	}
	return score
}

// rankCandidates orders candidates by descending composite score. The sort
// is stable: ties keep the catalog's original relative order. Input records
// are never mutated; ranking operates on a fresh slice.
func rankCandidates(products []domain.Product, intensity domain.Intensity) []domain.Product {
	ranked := make([]domain.Product, len(products))
	copy(ranked, products)

	sort.SliceStable(ranked, func(i, j int) bool {
		return compositeScore(ranked[i], intensity) > compositeScore(ranked[j], intensity)
	})

	return ranked
}

// composeAnchors rearranges the ranked list so that, per category, a
// premium anchor item is presented immediately before its designated
// cheaper comparison item. Groups are emitted in first-encounter order and
// the output is always a permutation of the input.
//
// The step is skipped entirely for the refresh tier; anchor pairing is a
// "step up" tactic inappropriate for the lightest tier.
func composeAnchors(ranked []domain.Product, intensity domain.Intensity) []domain.Product {
	if intensity == domain.IntensityRefresh {
		return ranked
	}

	var order []domain.Category
	groups := make(map[domain.Category][]domain.Product)
	for _, p := range ranked {
		if _, ok := groups[p.Category]; !ok {
			order = append(order, p.Category)
		}
		groups[p.Category] = append(groups[p.Category], p)
	}

	composed := make([]domain.Product, 0, len(ranked))
	for _, category := range order {
		composed = append(composed, arrangeAnchorPair(groups[category])...)
	}

	// Grouping should never lose products, but a ranked list must survive
	// this step no matter what.
	if len(composed) == 0 {
		return ranked
	}

	return composed
}

// arrangeAnchorPair moves a valid anchor/value pair to the front of a
// category group, anchor first, leaving the remaining products in their
// existing rank order. Groups without a complete pair pass through
// unchanged, including when truncation dropped one half of a pair.
func arrangeAnchorPair(group []domain.Product) []domain.Product {
	anchorIdx, valueIdx := -1, -1
	for i, anchor := range group {
		if !anchor.IsPremiumAnchor {
			continue
		}
		for j, value := range group {
			if j != i && value.ComparesToID == anchor.ID {
				anchorIdx, valueIdx = i, j
				break
			}
		}
		if anchorIdx >= 0 {
			break
		}
	}

	if anchorIdx < 0 {
		return group
	}

	arranged := make([]domain.Product, 0, len(group))
	arranged = append(arranged, group[anchorIdx], group[valueIdx])
	for i, p := range group {
		if i != anchorIdx && i != valueIdx {
			arranged = append(arranged, p)
		}
	}
	return arranged
}
