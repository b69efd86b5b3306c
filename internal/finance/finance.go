package finance

import "math"

// Discount returns the present value of a cash flow occurring in the given
// projection year. Year 0 is discounted at factor 1.
func Discount(cashFlow, rate float64, year int) float64 {
	return cashFlow / math.Pow(1+rate, float64(year))
}

// NPV sums the discounted cash flows of a year-indexed series, index 0 being
// the commissioning year.
func NPV(cashFlows []float64, rate float64) float64 {
	npv := 0.0
	for year, cf := range cashFlows {
		npv += Discount(cf, rate, year)
	}
	return npv
}

// Payback returns the first year whose cumulative (undiscounted) cash flow is
// non-negative, or nil if that never happens within the series.
func Payback(cashFlows []float64) *int {
	cum := 0.0
	for year, cf := range cashFlows {
		cum += cf
		if cum >= 0 {
			y := year
			return &y
		}
	}
	return nil
}

// AnnuityFactor converts a present value into a constant annual payment over
// n years at the given rate.
func AnnuityFactor(rate float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	if rate == 0 {
		return 1 / float64(n)
	}
	q := math.Pow(1+rate, float64(n))
	return rate * q / (q - 1)
}
