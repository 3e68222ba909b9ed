package room

import "sort"

type SortKey string

const (
	SortFeatured SortKey = "featured"
	SortPrice    SortKey = "price"
	SortRating   SortKey = "rating"
	SortSize     SortKey = "size"
)

type PriceBand string

const (
	BandAll    PriceBand = "all"
	BandBudget PriceBand = "budget" // under $200
	BandMid    PriceBand = "mid"    // $200 to under $300
	BandLuxury PriceBand = "luxury" // $300 and up
)

const (
	budgetCeilingCents = 200_00
	midCeilingCents    = 300_00
)

// Summary is the catalog projection the matcher works on. Read stores scan
// straight into it.
type Summary struct {
	Slug        string
	Name        string
	RateCents   int64
	SizeM2      int
	ViewType    string
	Rating      float64
	MaxAdults   int
	MaxChildren int
	MaxGuests   int
	Amenities   []string
}

// Query carries the guest's search. Zero values mean "no filter"; SortKey
// falls back to featured (catalog) order.
type Query struct {
	Adults    int
	Children  int
	View      string
	PriceBand PriceBand
	Sort      SortKey
}

// Match filters the catalog by occupancy and the optional view/price filters,
// then orders the survivors. Filtering and sorting are independent stages and
// the sort is stable, so ties keep catalog order. An empty result is a valid
// outcome, not an error.
func Match(catalog []Summary, q Query) []Summary {
	result := make([]Summary, 0, len(catalog))
	for _, s := range catalog {
		if !fits(s, q) {
			continue
		}
		result = append(result, s)
	}

	switch q.Sort {
	case SortPrice:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].RateCents < result[j].RateCents
		})
	case SortRating:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Rating > result[j].Rating
		})
	case SortSize:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].SizeM2 > result[j].SizeM2
		})
	default:
		// featured: keep catalog order
	}

	return result
}

func fits(s Summary, q Query) bool {
	guests := q.Adults + q.Children
	if guests > s.MaxGuests || q.Adults > s.MaxAdults || q.Children > s.MaxChildren {
		return false
	}

	if q.View != "" && s.ViewType != q.View {
		return false
	}

	switch q.PriceBand {
	case BandBudget:
		return s.RateCents < budgetCeilingCents
	case BandMid:
		return s.RateCents >= budgetCeilingCents && s.RateCents < midCeilingCents
	case BandLuxury:
		return s.RateCents >= midCeilingCents
	default:
		return true
	}
}
