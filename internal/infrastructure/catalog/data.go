package catalog

import "github.com/roomlens/backend/internal/domain"

// Static catalog data, loaded once at process start and never mutated.
// Price and conversion figures are author-curated; conversion scores use
// the conventional 0-100 range.

// catalogEntries maps "style|roomType" to its product list.
var catalogEntries = map[string][]domain.Product{
	"boho|living_room": {
		{
			ID:              "blr-sofa-linen",
			Category:        domain.CategorySeatingMajor,
			Title:           "Cream 3-Seat Linen Sofa",
			DisplayPrice:    "$899",
			PriceValue:      899,
			Vendor:          "Wayfair",
			AffiliateLinks:  map[string]string{"wayfair": "https://www.wayfair.com/roomlens/blr-sofa-linen"},
			CommissionRate:  4.5,
			ConversionScore: 88,
		},
		{
			ID:              "blr-rug-jute-premium",
			Category:        domain.CategoryRug,
			Title:           "Handwoven 8x10 Jute Rug",
			DisplayPrice:    "$349",
			PriceValue:      349,
			Vendor:          "Amazon",
			AffiliateLinks:  map[string]string{"amazon": "https://amzn.to/blr-rug-jute-premium"},
			CommissionRate:  6,
			ConversionScore: 84,
			IsPremiumAnchor: true,
		},
		{
			ID:              "blr-rug-jute-value",
			Category:        domain.CategoryRug,
			Title:           "Natural 8x10 Jute Rug",
			DisplayPrice:    "$129",
			PriceValue:      129,
			Vendor:          "Amazon",
			AffiliateLinks:  map[string]string{"amazon": "https://amzn.to/blr-rug-jute-value"},
			CommissionRate:  5,
			ConversionScore: 82,
			Badge:           "BEST VALUE",
			ComparesToID:    "blr-rug-jute-premium",
		},
		{
			ID:              "blr-pendant-rattan",
			Category:        domain.CategoryLightingMajor,
			Title:           "Woven Rattan Pendant Light",
			DisplayPrice:    "$159",
			PriceValue:      159,
			Vendor:          "Amazon",
			AffiliateLinks:  map[string]string{"amazon": "https://amzn.to/blr-pendant-rattan"},
			CommissionRate:  5.5,
			ConversionScore: 80,
		},
		{
			ID:              "blr-pillow-set",
			Category:        domain.CategoryTextiles,
			Title:           "Tassel Throw Pillow Set of 4",
			DisplayPrice:    "$45",
			PriceValue:      45,
			Vendor:          "Amazon",
			AffiliateLinks:  map[string]string{"amazon": "https://amzn.to/blr-pillow-set"},
			CommissionRate:  6,
			ConversionScore: 79,
			Badge:           "FAST SHIP",
		},
		{
			ID:              "blr-accent-chair",
			Category:        domain.CategorySeatingAccent,
			Title:           "Rattan Accent Chair with Cushion",
			DisplayPrice:    "$289",
			PriceValue:      289,
			Vendor:          "Wayfair",
			AffiliateLinks:  map[string]string{"wayfair": "https://www.wayfair.com/roomlens/blr-accent-chair"},
			CommissionRate:  4,
			ConversionScore: 76,
		},
		{
			ID:              "blr-coffee-table",
			Category:        domain.CategoryTable,
			Title:           "Round Mango Wood Coffee Table",
			DisplayPrice:    "$249",
			PriceValue:      249,
			Vendor:          "Wayfair",
			AffiliateLinks:  map[string]string{"wayfair": "https://www.wayfair.com/roomlens/blr-coffee-table"},
			CommissionRate:  4.5,
			ConversionScore: 74,
		},
		{
			ID:              "blr-macrame-wall",
			Category:        domain.CategoryDecor,
			Title:           "Large Macrame Wall Hanging",
			DisplayPrice:    "$39",
			PriceValue:      39,
			Vendor:          "Etsy",
			AffiliateLinks:  map[string]string{"etsy": "https://www.etsy.com/roomlens/blr-macrame-wall"},
			CommissionRate:  7,
			ConversionScore: 72,
		},
		{
			ID:              "blr-table-lamp",
			Category:        domain.CategoryLightingAccent,
			Title:           "Ceramic Base Table Lamp",
			DisplayPrice:    "$79",
			PriceValue:      79,
			Vendor:          "Amazon",
			AffiliateLinks:  map[string]string{"amazon": "https://amzn.to/blr-table-lamp"},
			CommissionRate:  5,
			ConversionScore: 70,
		},
		{
			ID:              "blr-throw-blanket",
			Category:        domain.CategoryTextiles,
			Title:           "Chunky Knit Throw Blanket",
			DisplayPrice:    "$59",
			PriceValue:      59,
			Vendor:          "Amazon",
			AffiliateLinks:  map[string]string{"amazon": "https://amzn.to/blr-throw-blanket"},
			CommissionRate:  6,
			ConversionScore: 68,
		},
		{
			ID:              "blr-side-table",
			Category:        domain.CategoryTableSmall,
			Title:           "Woven Seagrass Side Table",
			DisplayPrice:    "$119",
			PriceValue:      119,
			Vendor:          "Wayfair",
			AffiliateLinks:  map[string]string{"wayfair": "https://www.wayfair.com/roomlens/blr-side-table"},
			CommissionRate:  4,
			ConversionScore: 66,
		},
		{
			ID:              "blr-floor-plant",
			Category:        domain.CategoryDecor,
			Title:           "Faux Olive Tree in Woven Basket",
			DisplayPrice:    "$89",
			PriceValue:      89,
			Vendor:          "Amazon",
			AffiliateLinks:  map[string]string{"amazon": "https://amzn.to/blr-floor-plant"},
			CommissionRate:  8,
			ConversionScore: 64,
		},
		{
			ID:              "blr-candle-set",
			Category:        domain.CategoryDecor,
			Title:           "Amber Glass Candle Trio",
			DisplayPrice:    "$34",
			PriceValue:      34,
			Vendor:          "Etsy",
			AffiliateLinks:  map[string]string{"etsy": "https://www.etsy.com/roomlens/blr-candle-set"},
			CommissionRate:  7,
			ConversionScore: 62,
		},
		{
			ID:              "blr-wall-mirror",
			Category:        domain.CategoryDecor,
			Title:           "Arched Rattan Wall Mirror",
			DisplayPrice:    "$149",
			PriceValue:      149,
			Vendor:          "Wayfair",
			AffiliateLinks:  map[string]string{"wayfair": "https://www.wayfair.com/roomlens/blr-wall-mirror"},
			CommissionRate:  4,
			ConversionScore: 58,
		},
		{
			ID:              "blr-pouf",
			Category:        domain.CategorySeatingAccent,
			Title:           "Moroccan Leather Pouf",
			DisplayPrice:    "$99",
			PriceValue:      99,
			Vendor:          "Etsy",
			AffiliateLinks:  map[string]string{"etsy": "https://www.etsy.com/roomlens/blr-pouf"},
			CommissionRate:  5,
			ConversionScore: 55,
		},
	},

	"modern|living_room": {
		{
			ID:              "mlr-sofa-track",
			Category:        domain.CategorySeatingMajor,
			Title:           "Charcoal Track-Arm Sofa",
			DisplayPrice:    "$1,099",
			PriceValue:      1099,
			Vendor:          "Wayfair",
			AffiliateLinks:  map[string]string{"wayfair": "https://www.wayfair.com/roomlens/mlr-sofa-track"},
			CommissionRate:  4,
			ConversionScore: 86,
		},
		{
			ID:              "mlr-floor-lamp-arc",
			Category:        domain.CategoryLightingMajor,
			Title:           "Brushed Brass Arc Floor Lamp",
			DisplayPrice:    "$299",
			PriceValue:      299,
			Vendor:          "Amazon",
			AffiliateLinks:  map[string]string{"amazon": "https://amzn.to/mlr-floor-lamp-arc"},
			CommissionRate:  5,
			ConversionScore: 81,
			IsPremiumAnchor: true,
		},
		{
			ID:              "mlr-floor-lamp-basic",
			Category:        domain.CategoryLightingMajor,
			Title:           "Matte Black Arc Floor Lamp",
			DisplayPrice:    "$119",
			PriceValue:      119,
			Vendor:          "Amazon",
			AffiliateLinks:  map[string]string{"amazon": "https://amzn.to/mlr-floor-lamp-basic"},
			CommissionRate:  4.5,
			ConversionScore: 78,
			Badge:           "BEST VALUE",
			ComparesToID:    "mlr-floor-lamp-arc",
		},
		{
			ID:              "mlr-rug-geometric",
			Category:        domain.CategoryRug,
			Title:           "Geometric Low-Pile 8x10 Rug",
			DisplayPrice:    "$189",
			PriceValue:      189,
			Vendor:          "Amazon",
			AffiliateLinks:  map[string]string{"amazon": "https://amzn.to/mlr-rug-geometric"},
			CommissionRate:  5.5,
			ConversionScore: 77,
		},
		{
			ID:              "mlr-coffee-table-marble",
			Category:        domain.CategoryTable,
			Title:           "Faux Marble Coffee Table",
			DisplayPrice:    "$399",
			PriceValue:      399,
			Vendor:          "Wayfair",
			AffiliateLinks:  map[string]string{"wayfair": "https://www.wayfair.com/roomlens/mlr-coffee-table-marble"},
			CommissionRate:  4,
			ConversionScore: 73,
		},
		{
			ID:              "mlr-pillow-set",
			Category:        domain.CategoryTextiles,
			Title:           "Textured Neutral Pillow Set",
			DisplayPrice:    "$49",
			PriceValue:      49,
			Vendor:          "Amazon",
			AffiliateLinks:  map[string]string{"amazon": "https://amzn.to/mlr-pillow-set"},
			CommissionRate:  6,
			ConversionScore: 72,
		},
		{
			ID:              "mlr-wall-art",
			Category:        domain.CategoryDecor,
			Title:           "Abstract Line Art Print Set",
			DisplayPrice:    "$79",
			PriceValue:      79,
			Vendor:          "Etsy",
			AffiliateLinks:  map[string]string{"etsy": "https://www.etsy.com/roomlens/mlr-wall-art"},
			CommissionRate:  7,
			ConversionScore: 68,
		},
		{
			ID:              "mlr-side-table",
			Category:        domain.CategoryTableSmall,
			Title:           "Round Metal Side Table",
			DisplayPrice:    "$149",
			PriceValue:      149,
			Vendor:          "Wayfair",
			AffiliateLinks:  map[string]string{"wayfair": "https://www.wayfair.com/roomlens/mlr-side-table"},
			CommissionRate:  4,
			ConversionScore: 63,
		},
		{
			ID:              "mlr-vase-set",
			Category:        domain.CategoryDecor,
			Title:           "Matte Ceramic Vase Duo",
			DisplayPrice:    "$42",
			PriceValue:      42,
			Vendor:          "Amazon",
			AffiliateLinks:  map[string]string{"amazon": "https://amzn.to/mlr-vase-set"},
			CommissionRate:  6.5,
			ConversionScore: 60,
		},
	},

	"boho|bedroom": {
		{
			ID:              "bbr-duvet-block",
			Category:        domain.CategoryTextiles,
			Title:           "Block Print Cotton Duvet Set",
			DisplayPrice:    "$89",
			PriceValue:      89,
			Vendor:          "Amazon",
			AffiliateLinks:  map[string]string{"amazon": "https://amzn.to/bbr-duvet-block"},
			CommissionRate:  6,
			ConversionScore: 83,
		},
		{
			ID:              "bbr-rug-moroccan",
			Category:        domain.CategoryRug,
			Title:           "Moroccan Diamond 5x8 Rug",
			DisplayPrice:    "$169",
			PriceValue:      169,
			Vendor:          "Amazon",
			AffiliateLinks:  map[string]string{"amazon": "https://amzn.to/bbr-rug-moroccan"},
			CommissionRate:  5.5,
			ConversionScore: 79,
		},
		{
			ID:              "bbr-nightstand",
			Category:        domain.CategoryTableSmall,
			Title:           "Two-Drawer Rattan Nightstand",
			DisplayPrice:    "$129",
			PriceValue:      129,
			Vendor:          "Wayfair",
			AffiliateLinks:  map[string]string{"wayfair": "https://www.wayfair.com/roomlens/bbr-nightstand"},
			CommissionRate:  4,
			ConversionScore: 75,
		},
		{
			ID:              "bbr-lamp-rattan",
			Category:        domain.CategoryLightingAccent,
			Title:           "Rattan Shade Bedside Lamp",
			DisplayPrice:    "$59",
			PriceValue:      59,
			Vendor:          "Amazon",
			AffiliateLinks:  map[string]string{"amazon": "https://amzn.to/bbr-lamp-rattan"},
			CommissionRate:  5,
			ConversionScore: 72,
		},
		{
			ID:              "bbr-pendant-woven",
			Category:        domain.CategoryLightingMajor,
			Title:           "Woven Bamboo Ceiling Pendant",
			DisplayPrice:    "$119",
			PriceValue:      119,
			Vendor:          "Amazon",
			AffiliateLinks:  map[string]string{"amazon": "https://amzn.to/bbr-pendant-woven"},
			CommissionRate:  5.5,
			ConversionScore: 70,
		},
		{
			ID:              "bbr-bench-woven",
			Category:        domain.CategorySeatingAccent,
			Title:           "Woven End-of-Bed Bench",
			DisplayPrice:    "$199",
			PriceValue:      199,
			Vendor:          "Wayfair",
			AffiliateLinks:  map[string]string{"wayfair": "https://www.wayfair.com/roomlens/bbr-bench-woven"},
			CommissionRate:  4.5,
			ConversionScore: 66,
		},
		{
			ID:              "bbr-wall-baskets",
			Category:        domain.CategoryDecor,
			Title:           "Hanging Wall Basket Set of 5",
			DisplayPrice:    "$49",
			PriceValue:      49,
			Vendor:          "Etsy",
			AffiliateLinks:  map[string]string{"etsy": "https://www.etsy.com/roomlens/bbr-wall-baskets"},
			CommissionRate:  7,
			ConversionScore: 64,
		},
		{
			ID:              "bbr-curtains-linen",
			Category:        domain.CategoryTextiles,
			Title:           "Sheer Linen Curtain Panels",
			DisplayPrice:    "$69",
			PriceValue:      69,
			Vendor:          "Amazon",
			AffiliateLinks:  map[string]string{"amazon": "https://amzn.to/bbr-curtains-linen"},
			CommissionRate:  6,
			ConversionScore: 61,
		},
	},
}

// complementaryEntries maps "keepKind|style" to the coordinating products
// suggested when that item is kept. Entries never collide with the
// categories removed by their keep flag.
var complementaryEntries = map[string][]domain.Product{
	"seating|boho": {
		{
			ID:              "comp-boho-lumbar",
			Category:        domain.CategoryTextiles,
			Title:           "Fringed Lumbar Pillow Pair",
			DisplayPrice:    "$49",
			PriceValue:      49,
			Vendor:          "Amazon",
			AffiliateLinks:  map[string]string{"amazon": "https://amzn.to/comp-boho-lumbar"},
			CommissionRate:  6,
			ConversionScore: 71,
		},
		{
			ID:              "comp-boho-sofa-throw",
			Category:        domain.CategoryTextiles,
			Title:           "Woven Cotton Sofa Throw",
			DisplayPrice:    "$35",
			PriceValue:      35,
			Vendor:          "Amazon",
			AffiliateLinks:  map[string]string{"amazon": "https://amzn.to/comp-boho-sofa-throw"},
			CommissionRate:  6,
			ConversionScore: 65,
		},
	},
	"seating|modern": {
		{
			ID:              "comp-modern-lumbar",
			Category:        domain.CategoryTextiles,
			Title:           "Boucle Lumbar Pillow Pair",
			DisplayPrice:    "$55",
			PriceValue:      55,
			Vendor:          "Amazon",
			AffiliateLinks:  map[string]string{"amazon": "https://amzn.to/comp-modern-lumbar"},
			CommissionRate:  6,
			ConversionScore: 69,
		},
	},
	"rug|boho": {
		{
			ID:              "comp-boho-basket",
			Category:        domain.CategoryDecor,
			Title:           "Seagrass Floor Basket",
			DisplayPrice:    "$45",
			PriceValue:      45,
			Vendor:          "Etsy",
			AffiliateLinks:  map[string]string{"etsy": "https://www.etsy.com/roomlens/comp-boho-basket"},
			CommissionRate:  6.5,
			ConversionScore: 63,
		},
	},
	"lighting|boho": {
		{
			ID:              "comp-boho-bulbs",
			Category:        domain.CategoryDecor,
			Title:           "Amber Glass Edison Bulb Set",
			DisplayPrice:    "$25",
			PriceValue:      25,
			Vendor:          "Amazon",
			AffiliateLinks:  map[string]string{"amazon": "https://amzn.to/comp-boho-bulbs"},
			CommissionRate:  5,
			ConversionScore: 57,
		},
	},
}
