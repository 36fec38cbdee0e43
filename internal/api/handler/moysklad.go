package handler

import (
	"net/http"
	"sort"

	"github.com/vfg2006/sales-payroll-api/infrastructure/integrator/moysklad"
	"github.com/vfg2006/sales-payroll-api/internal/config"
	"github.com/vfg2006/sales-payroll-api/internal/domain"
	"github.com/vfg2006/sales-payroll-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-payroll-api/pkg/log"
	"github.com/vfg2006/sales-payroll-api/pkg/utils"
)

// DailyDataResponse é a entrada de uma data na resposta. Vendas em copeques.
type DailyDataResponse struct {
	Sales          *int64 `json:"sales,omitempty"`
	TargetProducts *int64 `json:"targetProducts,omitempty"`
	ValidDemands   *int   `json:"validDemands,omitempty"`
	Error          string `json:"error,omitempty"`
}

type StoreResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

type ConnectionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func newDailyDataResponse(results map[string]domain.DateResult) map[string]DailyDataResponse {
	response := make(map[string]DailyDataResponse, len(results))

	for date, result := range results {
		if result.Failed() {
			response[date] = DailyDataResponse{Error: result.Error}
			continue
		}

		aggregate := result.Aggregate
		response[date] = DailyDataResponse{
			Sales:          &aggregate.NetSalesTotal,
			TargetProducts: &aggregate.BonusEligibleUnits,
			ValidDemands:   &aggregate.ValidDemands,
		}
	}

	return response
}

func requestedDates(r *http.Request) []string {
	query := r.URL.Query()
	values := append(query["dates"], query["dates[]"]...)
	return utils.SplitDates(values)
}

func DailyData(service aggregating.Aggregator, settings config.SettingsProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		dates := requestedDates(r)
		if len(dates) == 0 {
			logger.Warn("moysklad: daily data requested without dates")
			writeServiceError(w, logger, aggregating.ErrDatesRequired)
			return
		}

		current, err := settings.MoyskladSettings(r.Context())
		if err != nil {
			logger.WithError(err).Warn("moysklad: settings not available")
			writeServiceError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"store_id":    current.StoreID,
			"dates_count": len(dates),
		}).Info("moysklad: fetching daily data")

		results, err := service.AggregateDates(r.Context(), current.AccessToken, current.StoreID, dates)
		if err != nil {
			logger.WithFields(log.Fields{
				"store_id": current.StoreID,
				"error":    err.Error(),
			}).Warn("moysklad: failed to aggregate daily data")

			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, newDailyDataResponse(results))
	})
}

func ListStores(service moysklad.MoyskladIntegrator, settings config.SettingsProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		current, err := settings.MoyskladSettings(r.Context())
		if err != nil {
			logger.WithError(err).Warn("moysklad: settings not available")
			writeServiceError(w, logger, err)
			return
		}

		stores, err := service.ListRetailStores(r.Context(), current.AccessToken)
		if err != nil {
			logger.WithError(err).Warn("moysklad: failed to list retail stores")
			writeServiceError(w, logger, err)
			return
		}

		response := make([]StoreResponse, 0, len(stores))
		for _, store := range stores {
			response = append(response, StoreResponse{
				ID:      store.ID,
				Name:    store.Name,
				Address: store.Address,
			})
		}
		sort.SliceStable(response, func(i, j int) bool {
			return response[i].Name < response[j].Name
		})

		logger.WithField("stores_count", len(response)).Info("moysklad: retail stores listed")

		writeJSON(w, logger, response)
	})
}

func CheckConnection(service moysklad.MoyskladIntegrator, settings config.SettingsProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		current, err := settings.MoyskladSettings(r.Context())
		if err != nil {
			logger.WithError(err).Warn("moysklad: settings not available")
			writeServiceError(w, logger, err)
			return
		}

		if _, err := service.CheckConnection(r.Context(), current.AccessToken); err != nil {
			logger.WithError(err).Warn("moysklad: connection check failed")
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, ConnectionResponse{Success: true, Message: "Connection successful"})
	})
}
