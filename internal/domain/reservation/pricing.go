package reservation

import "math"

// Quote is the priced breakdown of a stay. All amounts are in cents.
type Quote struct {
	Nights            int
	NightlyTotalCents int64
	ServiceFeeCents   int64
	TaxesCents        int64
	TotalCents        int64
}

// Total exposes the grand total as Money for callers that format amounts.
func (q Quote) Total() Money {
	return Money{cents: q.TotalCents}
}

type PriceCalculator interface {
	Quote(rateCents int64, stay StayPeriod) Quote
}

// Calculator prices a stay from the nightly rate: a flat service fee plus
// taxes on the nightly total, rounded to the nearest whole currency unit.
// Pure and deterministic, so the server can re-derive and verify any total a
// client displays.
type Calculator struct {
	ServiceFeeCents int64
	TaxRatePercent  float64
}

func NewCalculator(serviceFeeCents int64, taxRatePercent float64) Calculator {
	return Calculator{
		ServiceFeeCents: serviceFeeCents,
		TaxRatePercent:  taxRatePercent,
	}
}

func (c Calculator) Quote(rateCents int64, stay StayPeriod) Quote {
	nights := stay.Nights()
	nightly := Money{cents: rateCents * int64(nights)}
	fee := Money{cents: c.ServiceFeeCents}
	taxes := Money{cents: roundToWholeUnit(float64(nightly.Cents()) * c.TaxRatePercent / 100.0)}
	total := nightly.Add(fee).Add(taxes)

	return Quote{
		Nights:            nights,
		NightlyTotalCents: nightly.Cents(),
		ServiceFeeCents:   fee.Cents(),
		TaxesCents:        taxes.Cents(),
		TotalCents:        total.Cents(),
	}
}

// roundToWholeUnit rounds a cent amount to the nearest whole dollar.
func roundToWholeUnit(cents float64) int64 {
	return int64(math.Round(cents/100.0)) * 100
}
