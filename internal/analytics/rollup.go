package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

// epochSentinel stands in for "no orders yet" wherever a max over zero rows
// would otherwise be undefined. Matches '1970-01-01'::timestamp.
var epochSentinel = time.Unix(0, 0).UTC()

func sumDecimal(vals []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range vals {
		total = total.Add(v)
	}
	return total
}

// avgDecimal resolves the zero-count case to 0 before dividing. Callers never
// see a division error or NaN out of an empty group.
func avgDecimal(sum decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(int64(count)))
}

func maxTime(times []time.Time) time.Time {
	if len(times) == 0 {
		return epochSentinel
	}
	max := times[0]
	for _, t := range times[1:] {
		if t.After(max) {
			max = t
		}
	}
	return max
}

func distinctCount[T comparable](vals []T) int {
	seen := make(map[T]struct{}, len(vals))
	for _, v := range vals {
		seen[v] = struct{}{}
	}
	return len(seen)
}

// meanAge averages known ages only: a row with no recorded age contributes to
// neither numerator nor denominator, mirroring SQL AVG over a nullable column.
// All ages unknown resolves to 0.
func meanAge(ages []*int) float64 {
	sum := 0
	known := 0
	for _, age := range ages {
		if age == nil {
			continue
		}
		sum += *age
		known++
	}
	if known == 0 {
		return 0
	}
	return float64(sum) / float64(known)
}
