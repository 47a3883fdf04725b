package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupJobPostingTiers(t *testing.T) {
	basic, err := Lookup(ProductJobPosting, TierBasic)
	require.NoError(t, err)
	assert.Equal(t, "job_basic", basic.ID)
	assert.Equal(t, int64(9900), basic.UnitAmount)
	assert.Equal(t, 30, basic.DurationDays)

	featured, err := Lookup(ProductJobPosting, TierFeatured)
	require.NoError(t, err)
	assert.Equal(t, "job_featured", featured.ID)
	assert.Equal(t, int64(19900), featured.UnitAmount)
	assert.Equal(t, 30, featured.DurationDays)
	assert.Greater(t, featured.UnitAmount, basic.UnitAmount)
}

func TestLookupProfileBoostTiers(t *testing.T) {
	weekly, err := Lookup(ProductProfileBoost, TierWeekly)
	require.NoError(t, err)
	assert.Equal(t, int64(2900), weekly.UnitAmount)
	assert.Equal(t, 7, weekly.DurationDays)

	monthly, err := Lookup(ProductProfileBoost, TierMonthly)
	require.NoError(t, err)
	assert.Equal(t, int64(7900), monthly.UnitAmount)
	assert.Equal(t, 30, monthly.DurationDays)
}

func TestLookupUnknownPairs(t *testing.T) {
	cases := []struct {
		productType ProductType
		tier        string
	}{
		{ProductJobPosting, "premium"},
		{ProductJobPosting, TierWeekly},
		{ProductProfileBoost, TierBasic},
		{ProductProfileBoost, ""},
		{ProductType("subscription"), TierBasic},
	}
	for _, tc := range cases {
		_, err := Lookup(tc.productType, tc.tier)
		assert.ErrorIs(t, err, ErrTierNotFound, "%s/%s", tc.productType, tc.tier)
	}
}

func TestBoostDurationDays(t *testing.T) {
	assert.Equal(t, 7, BoostDurationDays(TierWeekly))
	assert.Equal(t, 30, BoostDurationDays(TierMonthly))
	// Unknown tiers in callback metadata fall back to the monthly window.
	assert.Equal(t, 30, BoostDurationDays("lifetime"))
}
