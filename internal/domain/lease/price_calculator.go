package lease

//go:generate mockgen -source=price_calculator.go -destination=../../../tests/mock/lease/price_calculator_mock.go -package=leasemock

import (
	"errors"

	"lease-market/internal/domain/requester"
	"lease-market/internal/domain/resource"
)

var (
	ErrInvalidDiscountPercent = errors.New("discount percent must be between 0 and 100")
	ErrNegativeDailyCap       = errors.New("max hours per day cannot be negative")
)

type PriceCalculator interface {
	CalculatePrice(req *requester.Requester, res *resource.Resource, period *Period) float64
}

// BasePriceCalculator bills every hour at the resource rate, except that no more
// than maxHoursPerDay hours are billed for a single calendar date.
type BasePriceCalculator struct {
	maxHoursPerDay int
}

func NewBasePriceCalculator(maxHoursPerDay int) (*BasePriceCalculator, error) {
	if maxHoursPerDay < 0 {
		return nil, ErrNegativeDailyCap
	}
	return &BasePriceCalculator{maxHoursPerDay: maxHoursPerDay}, nil
}

func (c *BasePriceCalculator) CalculatePrice(_ *requester.Requester, res *resource.Resource, period *Period) float64 {
	hoursByDate := make(map[string]int)
	billable := 0
	for _, h := range period.Hours() {
		date := h.Date()
		hoursByDate[date]++
		if hoursByDate[date] > c.maxHoursPerDay {
			continue
		}
		billable++
	}
	return float64(billable) * res.PricePerHour()
}

// DiscountPriceCalculator takes percent off the price of next when eligible
// holds for the requester.
type DiscountPriceCalculator struct {
	next     PriceCalculator
	percent  float64
	eligible func(*requester.Requester) bool
}

func NewDiscountPriceCalculator(next PriceCalculator, percent float64, eligible func(*requester.Requester) bool) (*DiscountPriceCalculator, error) {
	if percent < 0 || percent > 100 {
		return nil, ErrInvalidDiscountPercent
	}
	return &DiscountPriceCalculator{
		next:     next,
		percent:  percent,
		eligible: eligible,
	}, nil
}

func NewVIPPriceCalculator(next PriceCalculator, percent float64) (*DiscountPriceCalculator, error) {
	return NewDiscountPriceCalculator(next, percent, (*requester.Requester).IsVIP)
}

func (c *DiscountPriceCalculator) CalculatePrice(req *requester.Requester, res *resource.Resource, period *Period) float64 {
	price := c.next.CalculatePrice(req, res, period)
	if c.eligible(req) {
		price = price * (100 - c.percent) / 100
	}
	return price
}
