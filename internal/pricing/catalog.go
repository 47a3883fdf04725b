// Package pricing holds the static product catalog. Prices are minor
// currency units (USD cents) so amounts pass to the payment provider
// without floating-point conversion.
package pricing

import "errors"

// ErrTierNotFound is returned for any product/tier pair outside the catalog.
var ErrTierNotFound = errors.New("pricing tier not found")

type ProductType string

const (
	ProductJobPosting   ProductType = "job_posting"
	ProductProfileBoost ProductType = "profile_boost"
)

// Job posting tiers.
const (
	TierBasic    = "basic"
	TierFeatured = "featured"
)

// Profile boost tiers.
const (
	TierWeekly  = "weekly"
	TierMonthly = "monthly"
)

// Product describes one purchasable item.
type Product struct {
	ID           string
	Name         string
	UnitAmount   int64 // cents
	DurationDays int
	Features     []string
}

var catalog = map[ProductType]map[string]Product{
	ProductJobPosting: {
		TierBasic: {
			ID:           "job_basic",
			Name:         "Basic Job Posting",
			UnitAmount:   9900,
			DurationDays: 30,
			Features: []string{
				"Listed for 30 days",
				"Standard visibility",
				"Application tracking",
			},
		},
		TierFeatured: {
			ID:           "job_featured",
			Name:         "Featured Job Posting",
			UnitAmount:   19900,
			DurationDays: 30,
			Features: []string{
				"Listed for 30 days",
				"Featured badge & top placement",
				"Highlighted in search results",
				"Included in weekly email digest",
				"Social media promotion",
			},
		},
	},
	ProductProfileBoost: {
		TierWeekly: {
			ID:           "profile_boost_weekly",
			Name:         "Profile Boost - 1 Week",
			UnitAmount:   2900,
			DurationDays: 7,
			Features: []string{
				"Featured badge",
				"Top placement in search",
				"Priority in employer searches",
			},
		},
		TierMonthly: {
			ID:           "profile_boost_monthly",
			Name:         "Profile Boost - 1 Month",
			UnitAmount:   7900,
			DurationDays: 30,
			Features: []string{
				"Featured badge",
				"Top placement in search",
				"Priority in employer searches",
				"Included in talent spotlight emails",
			},
		},
	},
}

// Lookup resolves a product/tier pair. Callers must reject the request
// with a client error on ErrTierNotFound.
func Lookup(productType ProductType, tier string) (Product, error) {
	tiers, ok := catalog[productType]
	if !ok {
		return Product{}, ErrTierNotFound
	}
	product, ok := tiers[tier]
	if !ok {
		return Product{}, ErrTierNotFound
	}
	return product, nil
}

// BoostDurationDays maps a boost tier to its duration. Unknown tiers get
// the monthly duration, matching the provider-metadata fallback behavior.
func BoostDurationDays(tier string) int {
	if tier == TierWeekly {
		return 7
	}
	return 30
}
