package handler

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-payroll-api/infrastructure/integrator/moysklad/moyskladclient"
	"github.com/vfg2006/sales-payroll-api/internal/config"
	"github.com/vfg2006/sales-payroll-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-payroll-api/internal/usecases/payroll"
	"github.com/vfg2006/sales-payroll-api/pkg/apiErrors"
	"github.com/vfg2006/sales-payroll-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	msgNotConfigured   = "Moysklad settings not configured"
	msgDatesRequired   = "Dates array required"
	msgMissingFields   = "Missing required fields"
	msgInternalError   = "Internal server error"
	msgRateLimited     = "Moysklad rate limit exceeded, try again later"
	msgCommunication   = "Failed to communicate with Moysklad"
	msgInvalidPayload  = "Invalid request body"
	msgNegativeValues  = "Values must not be negative"
	msgInvalidTokenAPI = "Invalid Moysklad access token"
)

// writeServiceError traduz os erros das camadas de baixo para o contrato da API
func writeServiceError(w http.ResponseWriter, logger log.Logger, err error) {
	var authErr *moyskladclient.AuthError
	var rateLimitErr *moyskladclient.RateLimitError
	var networkErr *moyskladclient.NetworkError
	var apiErr *moyskladclient.APIError

	switch {
	case errors.Is(err, config.ErrSettingsNotConfigured),
		errors.Is(err, aggregating.ErrStoreRequired),
		errors.Is(err, aggregating.ErrTokenRequired):
		apiErrors.WriteError(w, apiErrors.ErrNotConfigured, msgNotConfigured, nil)
	case errors.Is(err, aggregating.ErrDatesRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, msgDatesRequired, nil)
	case errors.Is(err, aggregating.ErrInvalidDate):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	case errors.Is(err, payroll.ErrMissingRequiredFields):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, msgMissingFields, nil)
	case errors.Is(err, payroll.ErrNegativeValue):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, msgNegativeValues, nil)
	case errors.As(err, &authErr):
		if authErr.IsForbidden() {
			apiErrors.WriteError(w, apiErrors.ErrForbiddenMoysklad, authErr.Message, nil)
			return
		}
		apiErrors.WriteError(w, apiErrors.ErrInvalidTokenMoysklad, msgInvalidTokenAPI, nil)
	case errors.As(err, &rateLimitErr):
		apiErrors.WriteError(w, apiErrors.ErrRateLimited, msgRateLimited, nil)
	case errors.As(err, &networkErr),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		apiErrors.WriteError(w, apiErrors.ErrCommunication, msgCommunication, nil)
	case errors.As(err, &apiErr):
		apiErrors.WriteError(w, apiErrors.ErrExternalService, apiErr.Message, nil)
	default:
		logger.WithError(err).Error("handler: unexpected error")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, msgInternalError, nil)
	}
}

func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("handler: failed to encode response")
	}
}
