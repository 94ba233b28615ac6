package cost

import (
	"os"
	"strconv"
	"strings"

	"github.com/alexanderramin/groundwork/internal/domain"
)

// RateBand is a low/high dollars-per-square-foot range for a project type.
type RateBand struct {
	Low  int64
	High int64
}

// RateTable maps project types to their rate bands. The bands are
// configuration, not computed values.
type RateTable map[domain.ProjectType]RateBand

// DefaultRateTable returns the built-in per-square-foot rate bands.
func DefaultRateTable() RateTable {
	return RateTable{
		domain.TypeResidential: {Low: 140, High: 300},
		domain.TypeRenovation:  {Low: 80, High: 150},
		domain.TypeCommercial:  {Low: 160, High: 320},
		domain.TypeAddition:    {Low: 120, High: 250},
	}
}

// LoadRateTable reads rate band overrides from environment variables of the
// form GROUNDWORK_RATE_<TYPE>="low,high" (dollars per square foot), falling
// back to the defaults for any unset or malformed value.
func LoadRateTable() RateTable {
	table := DefaultRateTable()
	for _, pt := range []domain.ProjectType{
		domain.TypeResidential, domain.TypeRenovation,
		domain.TypeCommercial, domain.TypeAddition,
	} {
		env := "GROUNDWORK_RATE_" + strings.ToUpper(string(pt))
		v := os.Getenv(env)
		if v == "" {
			continue
		}
		band, ok := parseBand(v)
		if ok {
			table[pt] = band
		}
	}
	return table
}

func parseBand(s string) (RateBand, bool) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return RateBand{}, false
	}
	low, err1 := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	high, err2 := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err1 != nil || err2 != nil || low <= 0 || high < low {
		return RateBand{}, false
	}
	return RateBand{Low: low, High: high}, true
}

// Estimate computes the cost range for the given params: total footage
// (square footage times stories) multiplied by the type's rate band. Pure
// and deterministic; invalid inputs are rejected by ProjectParams.Validate,
// not here.
func Estimate(table RateTable, p domain.ProjectParams) domain.CostEstimate {
	band, ok := table[p.Type]
	if !ok {
		band = DefaultRateTable()[domain.TypeResidential]
	}
	total := int64(p.SquareFootage) * int64(p.Stories)
	return domain.CostEstimate{
		Low:  total * band.Low,
		High: total * band.High,
	}
}
