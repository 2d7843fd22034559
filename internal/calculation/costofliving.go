package calculation

import (
	"sort"
	"strings"

	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/shopspring/decimal"
)

// cityIndex is a relative cost-of-living index with Mumbai as the 100 baseline
var cityIndex = map[string]int64{
	"mumbai":     100,
	"delhi":      95,
	"bengaluru":  92,
	"gurugram":   93,
	"noida":      88,
	"hyderabad":  85,
	"chennai":    84,
	"pune":       86,
	"kolkata":    80,
	"ahmedabad":  76,
	"jaipur":     72,
	"chandigarh": 78,
	"kochi":      74,
	"lucknow":    68,
	"indore":     66,
	"coimbatore": 70,
}

var cityAliases = map[string]string{
	"bangalore": "bengaluru",
	"bombay":    "mumbai",
	"new delhi": "delhi",
	"gurgaon":   "gurugram",
	"madras":    "chennai",
	"calcutta":  "kolkata",
	"cochin":    "kochi",
}

func normalizeCity(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := cityAliases[key]; ok {
		return alias
	}
	return key
}

// CityIndex returns the cost-of-living index of a city
func CityIndex(city string) (decimal.Decimal, error) {
	idx, ok := cityIndex[normalizeCity(city)]
	if !ok {
		return decimal.Zero, &domain.LookupError{Kind: "city", Key: city}
	}
	return decimal.NewFromInt(idx), nil
}

// Cities lists the known city names in sorted order
func Cities() []string {
	out := make([]string, 0, len(cityIndex))
	for name := range cityIndex {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// ConvertCostOfLiving returns the salary needed in toCity to match salary in fromCity
func ConvertCostOfLiving(salary decimal.Decimal, fromCity, toCity string) (domain.CostOfLivingResult, error) {
	from, err := CityIndex(fromCity)
	if err != nil {
		return domain.CostOfLivingResult{}, err
	}
	to, err := CityIndex(toCity)
	if err != nil {
		return domain.CostOfLivingResult{}, err
	}
	equivalent := salary.Mul(to).Div(from)
	return domain.CostOfLivingResult{
		Salary:     salary,
		FromCity:   normalizeCity(fromCity),
		ToCity:     normalizeCity(toCity),
		FromIndex:  from,
		ToIndex:    to,
		Equivalent: equivalent,
		Difference: equivalent.Sub(salary),
	}, nil
}
