package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-payroll-api/internal/config"
	"github.com/vfg2006/sales-payroll-api/internal/domain"
)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "%s: want %s, got %s", field, want, got.String())
}

func TestCalculate(t *testing.T) {
	bonusPerUnit := decimal.NewFromInt(50)

	tests := []struct {
		name           string
		input          domain.PayrollInput
		wantBase       string
		wantCommission string
		wantBonus      string
		wantTotal      string
		wantDays       int
	}{
		{
			name: "Dois dias trabalhados com comissão e bônus",
			input: domain.PayrollInput{
				DailyRate:         dec("1000"),
				CommissionPercent: dec("5"),
				WorkDates:         []string{"2024-03-01", "2024-03-02"},
				SalesByDate: map[string]decimal.Decimal{
					"2024-03-01": dec("10000"),
					"2024-03-02": dec("6000"),
				},
				BonusUnitsByDate: map[string]int64{
					"2024-03-01": 2,
					"2024-03-02": 1,
				},
			},
			wantBase:       "2000",
			wantCommission: "800",
			wantBonus:      "150",
			wantTotal:      "2950",
			wantDays:       2,
		},
		{
			name: "Datas fora de WorkDates não contam",
			input: domain.PayrollInput{
				DailyRate:         dec("1000"),
				CommissionPercent: dec("10"),
				WorkDates:         []string{"2024-03-01"},
				SalesByDate: map[string]decimal.Decimal{
					"2024-03-01": dec("1000"),
					"2024-03-05": dec("99999"),
				},
				BonusUnitsByDate: map[string]int64{
					"2024-03-05": 10,
				},
			},
			wantBase:       "1000",
			wantCommission: "100",
			wantBonus:      "0",
			wantTotal:      "1100",
			wantDays:       1,
		},
		{
			name: "Sem dias trabalhados tudo é zero",
			input: domain.PayrollInput{
				DailyRate:         dec("1000"),
				CommissionPercent: dec("5"),
				SalesByDate: map[string]decimal.Decimal{
					"2024-03-01": dec("10000"),
				},
			},
			wantBase:       "0",
			wantCommission: "0",
			wantBonus:      "0",
			wantTotal:      "0",
			wantDays:       0,
		},
		{
			name: "Data repetida conta uma vez",
			input: domain.PayrollInput{
				DailyRate:         dec("1500"),
				CommissionPercent: dec("3"),
				WorkDates:         []string{"2024-03-01", "2024-03-01"},
				SalesByDate: map[string]decimal.Decimal{
					"2024-03-01": dec("2000"),
				},
				BonusUnitsByDate: map[string]int64{
					"2024-03-01": 1,
				},
			},
			wantBase:       "1500",
			wantCommission: "60",
			wantBonus:      "50",
			wantTotal:      "1610",
			wantDays:       1,
		},
		{
			name: "Sem arredondamento interno",
			input: domain.PayrollInput{
				DailyRate:         dec("0"),
				CommissionPercent: dec("3.5"),
				WorkDates:         []string{"2024-03-01"},
				SalesByDate: map[string]decimal.Decimal{
					"2024-03-01": dec("123.45"),
				},
			},
			wantBase:       "0",
			wantCommission: "4.32075",
			wantBonus:      "0",
			wantTotal:      "4.32075",
			wantDays:       1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breakdown := Calculate(tt.input, bonusPerUnit)

			assertDecimal(t, tt.wantBase, breakdown.BaseRatePay, "baseRatePay")
			assertDecimal(t, tt.wantCommission, breakdown.CommissionPay, "commissionPay")
			assertDecimal(t, tt.wantBonus, breakdown.BonusPay, "bonusPay")
			assertDecimal(t, tt.wantTotal, breakdown.Total, "total")
			assert.Equal(t, tt.wantDays, breakdown.WorkDayCount)
		})
	}
}

func TestService_CalculateFromAggregates(t *testing.T) {
	service := NewService(&config.Config{Payroll: config.Payroll{BonusPerUnit: 50}})

	results := map[string]domain.DateResult{
		"2024-03-01": {Aggregate: &domain.DayAggregate{Date: "2024-03-01", NetSalesTotal: 1234500, BonusEligibleUnits: 3}},
		"2024-03-02": {Error: "moysklad: rate limit exceeded"},
		"2024-03-03": {Aggregate: &domain.DayAggregate{Date: "2024-03-03", NetSalesTotal: 500000, BonusEligibleUnits: 1}},
	}

	input := domain.PayrollInput{
		DailyRate:         dec("2000"),
		CommissionPercent: dec("2"),
		WorkDates:         []string{"2024-03-01", "2024-03-02"},
	}

	breakdown, err := service.CalculateFromAggregates(input, results)

	require.NoError(t, err)
	assertDecimal(t, "4000", breakdown.BaseRatePay, "baseRatePay")
	// 12345.00 rublos × 2%
	assertDecimal(t, "246.9", breakdown.CommissionPay, "commissionPay")
	assertDecimal(t, "150", breakdown.BonusPay, "bonusPay")
	assertDecimal(t, "4396.9", breakdown.Total, "total")
	assert.Equal(t, 2, breakdown.WorkDayCount)
}

func TestService_Calculate_RejectsNegativeValues(t *testing.T) {
	service := NewService(&config.Config{})

	_, err := service.Calculate(domain.PayrollInput{DailyRate: dec("-1"), WorkDates: []string{"2024-03-01"}})
	assert.ErrorIs(t, err, ErrNegativeValue)
}

func TestNewService_DefaultBonus(t *testing.T) {
	service := NewService(&config.Config{})

	breakdown, err := service.Calculate(domain.PayrollInput{
		WorkDates:        []string{"2024-03-01"},
		BonusUnitsByDate: map[string]int64{"2024-03-01": 2},
	})

	require.NoError(t, err)
	assertDecimal(t, "100", breakdown.BonusPay, "bonusPay")
}
