package domain

import (
	"github.com/shopspring/decimal"
)

type PayrollInput struct {
	DailyRate         decimal.Decimal
	CommissionPercent decimal.Decimal
	WorkDates         []string
	SalesByDate       map[string]decimal.Decimal
	BonusUnitsByDate  map[string]int64
}

type PayrollBreakdown struct {
	BaseRatePay   decimal.Decimal
	CommissionPay decimal.Decimal
	BonusPay      decimal.Decimal
	Total         decimal.Decimal
	WorkDayCount  int
}
