package domain

// Category tags a product for filtering and anchor grouping.
// The vocabulary is fixed; all engine behavior is data-driven through
// these tags plus the anchor flags on Product.
type Category string

const (
	CategorySeatingMajor   Category = "seating_major"
	CategorySeatingAccent  Category = "seating_accent"
	CategoryRug            Category = "rug"
	CategoryTable          Category = "table"
	CategoryTableSmall     Category = "table_small"
	CategoryLightingMajor  Category = "lighting_major"
	CategoryLightingAccent Category = "lighting_accent"
	CategoryDecor          Category = "decor"
	CategoryTextiles       Category = "textiles"
)

// Product is an immutable catalog entry. Records are static and read-only
// for the lifetime of the process; the engine never mutates them.
type Product struct {
	ID           string   `json:"id"`
	Category     Category `json:"category"`
	Title        string   `json:"title"`
	DisplayPrice string   `json:"displayPrice"`

	// PriceValue backs price comparisons and the refresh low-price bonus.
	// Entries authored without it are treated as 0 for threshold checks.
	PriceValue float64 `json:"priceValue,omitempty"`

	Vendor         string            `json:"vendor"`
	AffiliateLinks map[string]string `json:"affiliateLinks,omitempty"`
	CommissionRate float64           `json:"commissionRate"`

	// ConversionScore is an author-curated likelihood-to-purchase estimate,
	// conventionally 0-100.
	ConversionScore float64 `json:"conversionScore"`

	// Badge is purely presentational ("BEST VALUE", "FAST SHIP") and never
	// affects engine logic.
	Badge string `json:"badge,omitempty"`

	// IsPremiumAnchor marks the "high" member of an anchor-pricing pair.
	IsPremiumAnchor bool `json:"isPremiumAnchor,omitempty"`

	// ComparesToID marks the "value" member of an anchor-pricing pair,
	// referencing the anchor product's ID.
	ComparesToID string `json:"comparesToId,omitempty"`
}

// Intensity is the user-selected transformation aggressiveness tier.
type Intensity string

const (
	IntensityRefresh   Intensity = "refresh"
	IntensityRedesign  Intensity = "redesign"
	IntensityTransform Intensity = "transform"
)

// KeepItems holds the user's "keep this item" constraints. A true flag
// suppresses the corresponding major category from recommendations.
type KeepItems struct {
	Seating  bool `json:"seating"`
	Rug      bool `json:"rug"`
	Lighting bool `json:"lighting"`
}

// KeepKind identifies a retainable item slot for the complementary-product
// registry.
type KeepKind string

const (
	KeepSeating  KeepKind = "seating"
	KeepRug      KeepKind = "rug"
	KeepLighting KeepKind = "lighting"
)

// SelectionCriteria is the request-scoped input to the recommendation
// engine. Constructed fresh per call, never mutated after construction.
type SelectionCriteria struct {
	Style     string    `json:"style"`
	RoomType  string    `json:"roomType"`
	Intensity Intensity `json:"intensity"`
	KeepItems KeepItems `json:"keepItems"`
}

// IntensityProfile describes how broad a recommendation set an intensity
// tier produces. TargetItemCount bounds the final list length.
type IntensityProfile struct {
	Label           string     `json:"label"`
	TargetItemCount int        `json:"targetItemCount"`
	FocusAreas      []Category `json:"focusAreas"`
}

// RecommendationResult is the engine's output envelope.
type RecommendationResult struct {
	Products      []Product        `json:"products"`
	ProductCount  int              `json:"productCount"`
	IntensityInfo IntensityProfile `json:"intensityInfo"`
}
