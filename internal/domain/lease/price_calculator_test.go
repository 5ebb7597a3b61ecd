//go:build unit

package lease_test

import (
	"testing"

	"lease-market/internal/domain/lease"
	"lease-market/internal/domain/requester"
	"lease-market/internal/domain/resource"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResource(t *testing.T, rate float64) *resource.Resource {
	t.Helper()
	res, err := resource.NewResource(1, "Ugly Fred", rate)
	require.NoError(t, err)
	return res
}

func newRequester(t *testing.T, vip bool) *requester.Requester {
	t.Helper()
	req, err := requester.NewRequester(1, "Master Bob", vip)
	require.NoError(t, err)
	return req
}

func mustPipeline(t *testing.T, maxHoursPerDay int, vipPercent float64) lease.PriceCalculator {
	t.Helper()
	base, err := lease.NewBasePriceCalculator(maxHoursPerDay)
	require.NoError(t, err)
	vip, err := lease.NewVIPPriceCalculator(base, vipPercent)
	require.NoError(t, err)
	return vip
}

func TestBasePriceCalculator(t *testing.T) {
	testCases := []struct {
		name      string
		cap       int
		from      string
		till      string
		wantPrice float64
	}{
		{name: "scenario: cap applies to the first date only", cap: 16, from: "2017-01-01 01:30:00", till: "2017-01-02 02:01:00", wantPrice: 380},
		{name: "under the cap", cap: 16, from: "2017-01-01 01:30:00", till: "2017-01-01 02:01:00", wantPrice: 40},
		{name: "cap on every date of a three day lease", cap: 8, from: "2017-01-01 00:00:00", till: "2017-01-03 23:00:00", wantPrice: 3 * 8 * 20},
		{name: "zero cap is free", cap: 0, from: "2017-01-01 00:00:00", till: "2017-01-01 05:00:00", wantPrice: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calc, err := lease.NewBasePriceCalculator(tc.cap)
			require.NoError(t, err)

			period := lease.NewPeriod(at(t, tc.from), at(t, tc.till))
			price := calc.CalculatePrice(newRequester(t, false), newResource(t, 20), period)

			assert.Equal(t, tc.wantPrice, price)
		})
	}
}

func TestBasePriceCalculator_MatchesPerDateFormula(t *testing.T) {
	calc, err := lease.NewBasePriceCalculator(5)
	require.NoError(t, err)
	period := lease.NewPeriod(at(t, "2017-03-01 20:15:00"), at(t, "2017-03-04 03:00:00"))

	perDate := map[string]int{}
	for _, h := range period.Hours() {
		perDate[h.Date()]++
	}
	expected := 0
	for _, n := range perDate {
		expected += min(5, n)
	}

	assert.Equal(t, float64(expected)*12.5, calc.CalculatePrice(newRequester(t, false), newResource(t, 12.5), period))
}

func TestBasePriceCalculator_RejectsNegativeCap(t *testing.T) {
	_, err := lease.NewBasePriceCalculator(-1)
	assert.ErrorIs(t, err, lease.ErrNegativeDailyCap)
}

func TestVIPPriceCalculator(t *testing.T) {
	period := func(t *testing.T) *lease.Period {
		return lease.NewPeriod(at(t, "2017-01-01 01:30:00"), at(t, "2017-01-02 02:01:00"))
	}

	t.Run("scenario: regular requester pays full price", func(t *testing.T) {
		price := mustPipeline(t, 16, 10).CalculatePrice(newRequester(t, false), newResource(t, 20), period(t))
		assert.Equal(t, float64(380), price)
	})

	t.Run("scenario: VIP requester gets the discount", func(t *testing.T) {
		price := mustPipeline(t, 16, 10).CalculatePrice(newRequester(t, true), newResource(t, 20), period(t))
		assert.Equal(t, float64(342), price)
	})

	t.Run("full discount", func(t *testing.T) {
		price := mustPipeline(t, 16, 100).CalculatePrice(newRequester(t, true), newResource(t, 20), period(t))
		assert.Equal(t, float64(0), price)
	})

	t.Run("out of range percent", func(t *testing.T) {
		base, err := lease.NewBasePriceCalculator(16)
		require.NoError(t, err)

		_, err = lease.NewVIPPriceCalculator(base, 100.5)
		assert.ErrorIs(t, err, lease.ErrInvalidDiscountPercent)
		_, err = lease.NewVIPPriceCalculator(base, -1)
		assert.ErrorIs(t, err, lease.ErrInvalidDiscountPercent)
	})
}

func TestDiscountPriceCalculator_Composes(t *testing.T) {
	base, err := lease.NewBasePriceCalculator(16)
	require.NoError(t, err)

	vip, err := lease.NewVIPPriceCalculator(base, 10)
	require.NoError(t, err)
	everyone, err := lease.NewDiscountPriceCalculator(vip, 50, func(*requester.Requester) bool { return true })
	require.NoError(t, err)

	// base is shared by both chains
	other, err := lease.NewDiscountPriceCalculator(base, 25, func(*requester.Requester) bool { return true })
	require.NoError(t, err)

	p := lease.NewPeriod(at(t, "2017-01-01 01:30:00"), at(t, "2017-01-02 02:01:00"))
	res := newResource(t, 20)

	assert.Equal(t, float64(171), everyone.CalculatePrice(newRequester(t, true), res, p))
	assert.Equal(t, float64(190), everyone.CalculatePrice(newRequester(t, false), res, p))
	assert.Equal(t, float64(285), other.CalculatePrice(newRequester(t, true), res, p))
}
