package handler

import (
	"net/http"

	"github.com/vfg2006/sales-payroll-api/infrastructure/integrator/moysklad"
	"github.com/vfg2006/sales-payroll-api/internal/api/handler/router"
	"github.com/vfg2006/sales-payroll-api/internal/config"
	"github.com/vfg2006/sales-payroll-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-payroll-api/internal/usecases/payroll"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Moysklad(aggregator aggregating.Aggregator, integrator moysklad.MoyskladIntegrator, settings config.SettingsProvider) []router.Route {
	dailyData := DailyData(aggregator, settings)

	return []router.Route{
		{
			Path:    "/v1/moysklad/daily-data",
			Method:  http.MethodGet,
			Handler: dailyData,
		},
		{
			Path:    "/v1/salary/moysklad-data",
			Method:  http.MethodGet,
			Handler: dailyData,
		},
		{
			Path:    "/v1/moysklad/stores",
			Method:  http.MethodGet,
			Handler: ListStores(integrator, settings),
		},
		{
			Path:    "/v1/moysklad/connection",
			Method:  http.MethodGet,
			Handler: CheckConnection(integrator, settings),
		},
	}
}

func Salary(aggregator aggregating.Aggregator, calculator payroll.Calculator, settings config.SettingsProvider) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/salary/calculate",
			Method:  http.MethodPost,
			Handler: CalculateSalary(calculator),
		},
		{
			Path:    "/v1/salary/calculate-from-moysklad",
			Method:  http.MethodPost,
			Handler: CalculateSalaryFromMoysklad(aggregator, calculator, settings),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
