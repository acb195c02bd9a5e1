package entities

import "log"

// IconKey is the closed set of display icons a service (or marketing card)
// can reference. Stored alongside the service so the catalog and order
// snapshots stay renderable even if the catalog changes later.

type IconKey string

const (
	IconLayout            IconKey = "layout"
	IconGlobe             IconKey = "globe"
	IconDatabase          IconKey = "database"
	IconUsers             IconKey = "users"
	IconCloud             IconKey = "cloud"
	IconSmartphone        IconKey = "smartphone"
	IconMonitorSmartphone IconKey = "monitor-smartphone"
	IconCode              IconKey = "code"
	IconPalette           IconKey = "palette"
)

var knownIcons = map[IconKey]struct{}{
	IconLayout:            {},
	IconGlobe:             {},
	IconDatabase:          {},
	IconUsers:             {},
	IconCloud:             {},
	IconSmartphone:        {},
	IconMonitorSmartphone: {},
	IconCode:              {},
	IconPalette:           {},
}

// ResolveIcon maps a stored icon key to a member of the closed enumeration.
// Unknown keys log a warning and fall back to the layout icon; this never
// fails, so render paths don't need an error branch.
func ResolveIcon(key string) IconKey {
	k := IconKey(key)
	if _, ok := knownIcons[k]; ok {
		return k
	}
	log.Printf("[catalog][icons] unknown icon key=%q, using default", key)
	return IconLayout
}

// Service is a catalog offering. BasePrice is denominated in the base
// currency (EUR); every display or settlement amount is derived from it via
// the exchange-rate table.
//
// Invariants:
//   - ID is unique within the catalog.
//   - BasePrice >= 0 (enforced by callers of UpdateServicePrice).

type Service struct {
	ID          string  `json:"id"`
	IconKey     string  `json:"icon_key"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"base_price"`
}

// DefaultCatalog returns the built-in seed catalog used on first run and
// whenever the stored catalog cannot be parsed. Order matters: the catalog
// is rendered in insertion order.
func DefaultCatalog() []Service {
	return []Service{
		{
			ID:          "single-page",
			IconKey:     string(IconLayout),
			Title:       "Single Page Site",
			Description: "Perfect for portfolios, landing pages, and small businesses. High impact, one-page experience.",
			BasePrice:   400,
		},
		{
			ID:          "multi-page",
			IconKey:     string(IconGlobe),
			Title:       "Multi-Page Site",
			Description: "Comprehensive website (up to 5 pages) for businesses needing more content structure.",
			BasePrice:   600,
		},
		{
			ID:          "erp",
			IconKey:     string(IconDatabase),
			Title:       "ERP Application",
			Description: "Enterprise Resource Planning systems to streamline your business operations and data.",
			BasePrice:   800,
		},
		{
			ID:          "crm",
			IconKey:     string(IconUsers),
			Title:       "CRM Application",
			Description: "Customer Relationship Management tools to boost sales and customer satisfaction.",
			BasePrice:   800,
		},
		{
			ID:          "saas",
			IconKey:     string(IconCloud),
			Title:       "SaaS Platform",
			Description: "Scalable Software as a Service solutions built for growth and recurring revenue.",
			BasePrice:   1000,
		},
		{
			ID:          "android",
			IconKey:     string(IconSmartphone),
			Title:       "Android Development",
			Description: "Native Android applications tailored for the world's most popular mobile OS.",
			BasePrice:   1200,
		},
		{
			ID:          "ios",
			IconKey:     string(IconSmartphone),
			Title:       "iOS Development",
			Description: "Premium native iOS applications for iPhone and iPad ecosystems.",
			BasePrice:   1200,
		},
		{
			ID:          "cross-platform",
			IconKey:     string(IconMonitorSmartphone),
			Title:       "Cross-Platform Mobile",
			Description: "Efficient mobile apps that work seamlessly on both iOS and Android from a single codebase.",
			BasePrice:   2200,
		},
	}
}
