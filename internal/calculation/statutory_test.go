package calculation

import (
	"testing"
	"time"

	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatePF(t *testing.T) {
	tests := []struct {
		name         string
		basic        decimal.Decimal
		wantEmployee decimal.Decimal
		wantEPS      decimal.Decimal
		wantEPF      decimal.Decimal
	}{
		{"above wage ceiling", dec(20000), dec(2400), dec(1249.5), dec(1150.5)},
		{"below wage ceiling", dec(10000), dec(1200), dec(833), dec(367)},
		{"zero basic", decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf := CalculatePF(tt.basic)
			assertDecimal(t, tt.wantEmployee, pf.Employee, "employee")
			assertDecimal(t, tt.wantEPS, pf.EmployerEPS, "eps")
			assertDecimal(t, tt.wantEPF, pf.EmployerEPF, "epf")
			assertDecimal(t, tt.wantEmployee.Add(tt.wantEPS).Add(tt.wantEPF), pf.Total, "total")
		})
	}
}

func TestCalculateGratuity(t *testing.T) {
	g := CalculateGratuity(dec(50000), 5)
	assert.Equal(t, "144230.77", g.Amount.StringFixed(2))
	assert.True(t, g.Eligible)
	assert.True(t, g.TaxableAmount.IsZero())

	short := CalculateGratuity(dec(50000), 3)
	assert.False(t, short.Eligible)

	large := CalculateGratuity(dec(500000), 40)
	assert.True(t, large.TaxableAmount.GreaterThan(decimal.Zero), "amount above the tax-free ceiling is taxable")
}

func TestServiceYears(t *testing.T) {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	tests := []struct {
		name   string
		joined time.Time
		left   time.Time
		want   int
	}{
		{"exact years", date(2019, time.January, 15), date(2024, time.January, 15), 5},
		{"seven month remainder rounds up", date(2019, time.January, 15), date(2024, time.August, 20), 6},
		{"six month remainder does not", date(2019, time.January, 15), date(2024, time.July, 15), 5},
		{"incomplete month", date(2019, time.January, 15), date(2024, time.August, 10), 5},
		{"same day", date(2020, time.March, 1), date(2020, time.March, 1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ServiceYears(tt.joined, tt.left))
		})
	}
}

func TestCalculateGratuityForService(t *testing.T) {
	joined := time.Date(2015, time.April, 1, 0, 0, 0, 0, time.UTC)
	left := time.Date(2020, time.April, 1, 0, 0, 0, 0, time.UTC)

	g, err := CalculateGratuityForService(dec(50000), joined, left)
	require.NoError(t, err)
	assert.Equal(t, 5, g.Years)
	assert.Equal(t, "144230.77", g.Amount.StringFixed(2))
	require.NotNil(t, g.JoinDate)

	_, err = CalculateGratuityForService(dec(50000), left, joined)
	assert.Error(t, err)
}

func TestCalculateHRAExemption(t *testing.T) {
	tests := []struct {
		name         string
		basic        decimal.Decimal
		hra          decimal.Decimal
		rent         decimal.Decimal
		metro        bool
		wantExempt   decimal.Decimal
		wantTaxable  decimal.Decimal
		wantLimiting string
	}{
		{"rent leg limits", dec(600000), dec(300000), dec(240000), true, dec(180000), dec(120000), "rent paid over 10% of basic"},
		{"metro basic share limits", dec(600000), dec(400000), dec(500000), true, dec(300000), dec(100000), "50% of basic"},
		{"non-metro basic share limits", dec(600000), dec(400000), dec(500000), false, dec(240000), dec(160000), "40% of basic"},
		{"actual hra limits", dec(600000), dec(100000), dec(500000), true, dec(100000), decimal.Zero, "actual HRA received"},
		{"zero rent exempts nothing", dec(600000), dec(300000), decimal.Zero, true, decimal.Zero, dec(300000), "rent paid over 10% of basic"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := CalculateHRAExemption(tt.basic, tt.hra, tt.rent, tt.metro)
			assertDecimal(t, tt.wantExempt, r.Exempt, "exempt")
			assertDecimal(t, tt.wantTaxable, r.Taxable, "taxable")
			assert.Equal(t, tt.wantLimiting, r.LimitingFactor)
		})
	}
}

func TestCalculateBonus(t *testing.T) {
	b := CalculateBonus(dec(100000), nil)
	assertDecimal(t, dec(8330), b.Minimum, "minimum")
	assertDecimal(t, dec(20000), b.Maximum, "maximum")
	assert.Nil(t, b.Custom)

	pct := dec(10)
	custom := CalculateBonus(dec(100000), &pct)
	require.NotNil(t, custom.Custom)
	assertDecimal(t, dec(10000), *custom.Custom, "custom")
}

func TestCalculateLTA(t *testing.T) {
	tests := []struct {
		name        string
		received    decimal.Decimal
		actual      decimal.Decimal
		wantExempt  decimal.Decimal
		wantTaxable decimal.Decimal
	}{
		{"travel cheaper than allowance", dec(50000), dec(30000), dec(30000), dec(20000)},
		{"travel costlier than allowance", dec(50000), dec(80000), dec(50000), decimal.Zero},
		{"no travel", dec(50000), decimal.Zero, decimal.Zero, dec(50000)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := CalculateLTA(tt.received, tt.actual)
			assertDecimal(t, tt.wantExempt, r.Exempt, "exempt")
			assertDecimal(t, tt.wantTaxable, r.Taxable, "taxable")
		})
	}
}

func TestConvertCostOfLiving(t *testing.T) {
	r, err := ConvertCostOfLiving(dec(1000000), "Mumbai", "Bangalore")
	require.NoError(t, err)
	assertDecimal(t, dec(920000), r.Equivalent, "equivalent")
	assertDecimal(t, dec(-80000), r.Difference, "difference")
	assert.Equal(t, "bengaluru", r.ToCity)

	_, err = ConvertCostOfLiving(dec(1000000), "Mumbai", "Atlantis")
	require.Error(t, err)
	var lookupErr *domain.LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, "city", lookupErr.Kind)
}

func TestCities(t *testing.T) {
	cities := Cities()
	assert.Contains(t, cities, "mumbai")
	assert.IsIncreasing(t, cities)
}
