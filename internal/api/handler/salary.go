package handler

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-payroll-api/internal/config"
	"github.com/vfg2006/sales-payroll-api/internal/domain"
	"github.com/vfg2006/sales-payroll-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-payroll-api/internal/usecases/payroll"
	"github.com/vfg2006/sales-payroll-api/pkg/apiErrors"
	"github.com/vfg2006/sales-payroll-api/pkg/log"
	"github.com/vfg2006/sales-payroll-api/pkg/utils"
)

// SalaryRequest aceita dailyRate e salesPercentage como número ou texto
type SalaryRequest struct {
	DailyRate           *decimal.Decimal           `json:"dailyRate"`
	WorkDays            []string                   `json:"workDays"`
	SalesPercentage     *decimal.Decimal           `json:"salesPercentage"`
	SalesByDay          map[string]decimal.Decimal `json:"salesByDay"`
	TargetProductsCount map[string]int64           `json:"targetProductsCount"`
}

func (r SalaryRequest) validate() error {
	if r.DailyRate == nil || r.WorkDays == nil || r.SalesPercentage == nil ||
		r.SalesByDay == nil || r.TargetProductsCount == nil {
		return payroll.ErrMissingRequiredFields
	}
	return nil
}

func (r SalaryRequest) input() domain.PayrollInput {
	return domain.PayrollInput{
		DailyRate:         *r.DailyRate,
		CommissionPercent: *r.SalesPercentage,
		WorkDates:         r.WorkDays,
		SalesByDate:       r.SalesByDay,
		BonusUnitsByDate:  r.TargetProductsCount,
	}
}

// MoyskladSalaryRequest busca vendas e produtos-alvo no MoySklad para os dias trabalhados
type MoyskladSalaryRequest struct {
	DailyRate       *decimal.Decimal `json:"dailyRate"`
	WorkDays        []string         `json:"workDays"`
	SalesPercentage *decimal.Decimal `json:"salesPercentage"`
}

func (r MoyskladSalaryRequest) validate() error {
	if r.DailyRate == nil || r.SalesPercentage == nil {
		return payroll.ErrMissingRequiredFields
	}
	if len(r.WorkDays) == 0 {
		return aggregating.ErrDatesRequired
	}
	return nil
}

type BreakdownResponse struct {
	RateSalary    float64 `json:"rateSalary"`
	SalesBonus    float64 `json:"salesBonus"`
	TargetBonus   float64 `json:"targetBonus"`
	TotalSalary   float64 `json:"totalSalary"`
	WorkDaysCount int     `json:"workDaysCount"`
}

type SalaryResponse struct {
	TotalSalary float64                      `json:"totalSalary"`
	Breakdown   BreakdownResponse            `json:"breakdown"`
	DailyData   map[string]DailyDataResponse `json:"dailyData,omitempty"`
}

func newSalaryResponse(breakdown domain.PayrollBreakdown) SalaryResponse {
	total := breakdown.Total.InexactFloat64()

	return SalaryResponse{
		TotalSalary: total,
		Breakdown: BreakdownResponse{
			RateSalary:    breakdown.BaseRatePay.InexactFloat64(),
			SalesBonus:    breakdown.CommissionPay.InexactFloat64(),
			TargetBonus:   breakdown.BonusPay.InexactFloat64(),
			TotalSalary:   total,
			WorkDaysCount: breakdown.WorkDayCount,
		},
	}
}

func CalculateSalary(service payroll.Calculator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request SalaryRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.WithError(err).Warn("salary: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, msgInvalidPayload, nil)
			return
		}

		if err := request.validate(); err != nil {
			logger.Warn("salary: missing required fields")
			writeServiceError(w, logger, err)
			return
		}

		breakdown, err := service.Calculate(request.input())
		if err != nil {
			logger.WithError(err).Warn("salary: failed to calculate salary")
			writeServiceError(w, logger, err)
			return
		}

		logger.WithField("dates_count", breakdown.WorkDayCount).Info("salary: salary calculated")

		writeJSON(w, logger, newSalaryResponse(breakdown))
	})
}

func CalculateSalaryFromMoysklad(aggregator aggregating.Aggregator, service payroll.Calculator, settings config.SettingsProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request MoyskladSalaryRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.WithError(err).Warn("salary: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, msgInvalidPayload, nil)
			return
		}

		if err := request.validate(); err != nil {
			logger.WithError(err).Warn("salary: invalid moysklad salary request")
			writeServiceError(w, logger, err)
			return
		}

		current, err := settings.MoyskladSettings(r.Context())
		if err != nil {
			logger.WithError(err).Warn("salary: settings not available")
			writeServiceError(w, logger, err)
			return
		}

		workDays := utils.SplitDates(request.WorkDays)

		results, err := aggregator.AggregateDates(r.Context(), current.AccessToken, current.StoreID, workDays)
		if err != nil {
			logger.WithFields(log.Fields{
				"store_id": current.StoreID,
				"error":    err.Error(),
			}).Warn("salary: failed to aggregate work days")

			writeServiceError(w, logger, err)
			return
		}

		breakdown, err := service.CalculateFromAggregates(domain.PayrollInput{
			DailyRate:         *request.DailyRate,
			CommissionPercent: *request.SalesPercentage,
			WorkDates:         workDays,
		}, results)
		if err != nil {
			logger.WithError(err).Warn("salary: failed to calculate salary")
			writeServiceError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"store_id":    current.StoreID,
			"dates_count": breakdown.WorkDayCount,
		}).Info("salary: salary calculated from moysklad data")

		response := newSalaryResponse(breakdown)
		response.DailyData = newDailyDataResponse(results)

		writeJSON(w, logger, response)
	})
}
