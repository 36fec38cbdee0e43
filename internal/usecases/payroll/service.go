package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-payroll-api/internal/config"
	"github.com/vfg2006/sales-payroll-api/internal/domain"
)

const defaultBonusPerUnit = 50

var hundred = decimal.NewFromInt(100)

type Calculator interface {
	Calculate(input domain.PayrollInput) (domain.PayrollBreakdown, error)
	CalculateFromAggregates(input domain.PayrollInput, results map[string]domain.DateResult) (domain.PayrollBreakdown, error)
}

type Service struct {
	bonusPerUnit decimal.Decimal
}

func NewService(cfg *config.Config) *Service {
	bonusPerUnit := decimal.NewFromFloat(cfg.Payroll.BonusPerUnit)
	if cfg.Payroll.BonusPerUnit <= 0 {
		bonusPerUnit = decimal.NewFromInt(defaultBonusPerUnit)
	}

	return &Service{bonusPerUnit: bonusPerUnit}
}

func (s *Service) Calculate(input domain.PayrollInput) (domain.PayrollBreakdown, error) {
	if input.DailyRate.IsNegative() || input.CommissionPercent.IsNegative() {
		return domain.PayrollBreakdown{}, ErrNegativeValue
	}

	return Calculate(input, s.bonusPerUnit), nil
}

// CalculateFromAggregates preenche vendas e unidades a partir do resultado da agregação.
// Os valores chegam em copeques e são convertidos em rublos aqui; datas com erro contam zero.
func (s *Service) CalculateFromAggregates(input domain.PayrollInput, results map[string]domain.DateResult) (domain.PayrollBreakdown, error) {
	input.SalesByDate = make(map[string]decimal.Decimal, len(results))
	input.BonusUnitsByDate = make(map[string]int64, len(results))

	for date, result := range results {
		if result.Failed() {
			logrus.WithFields(logrus.Fields{
				"date":  date,
				"error": result.Error,
			}).Warn("Data com erro na agregação contará zero na folha")
			continue
		}

		input.SalesByDate[date] = domain.MinorToMajor(result.Aggregate.NetSalesTotal)
		input.BonusUnitsByDate[date] = result.Aggregate.BonusEligibleUnits
	}

	return s.Calculate(input)
}

// Calculate é puro e determinístico: só as datas de WorkDates contam, cada uma uma vez,
// e nenhum arredondamento é aplicado.
func Calculate(input domain.PayrollInput, bonusPerUnit decimal.Decimal) domain.PayrollBreakdown {
	workDates := uniqueDates(input.WorkDates)
	rate := input.CommissionPercent.Div(hundred)

	commissionPay := decimal.Zero
	bonusPay := decimal.Zero

	for _, date := range workDates {
		if sales, ok := input.SalesByDate[date]; ok {
			commissionPay = commissionPay.Add(sales.Mul(rate))
		}
		if units, ok := input.BonusUnitsByDate[date]; ok {
			bonusPay = bonusPay.Add(decimal.NewFromInt(units).Mul(bonusPerUnit))
		}
	}

	baseRatePay := input.DailyRate.Mul(decimal.NewFromInt(int64(len(workDates))))

	return domain.PayrollBreakdown{
		BaseRatePay:   baseRatePay,
		CommissionPay: commissionPay,
		BonusPay:      bonusPay,
		Total:         baseRatePay.Add(commissionPay).Add(bonusPay),
		WorkDayCount:  len(workDates),
	}
}

func uniqueDates(dates []string) []string {
	seen := make(map[string]struct{}, len(dates))
	unique := make([]string, 0, len(dates))

	for _, date := range dates {
		if _, ok := seen[date]; ok {
			continue
		}
		seen[date] = struct{}{}
		unique = append(unique, date)
	}

	return unique
}
