package handler

import (
	"net/http"

	"github.com/vfg2006/sales-flash-api/infrastructure/chart"
	"github.com/vfg2006/sales-flash-api/internal/api/handler/router"
	"github.com/vfg2006/sales-flash-api/internal/usecases/reporting"
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

// Pages retorna as rotas da página HTML do flash de vendas
func Pages(service reporting.Reporter, pageTitle string) []router.Route {
	page := DashboardPage(service, pageTitle)

	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: page,
		},
		{
			Path:    "/flash",
			Method:  http.MethodGet,
			Handler: page,
		},
	}
}

func SalesFlash(service reporting.Reporter, renderer chart.Renderer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales/flash",
			Method:  http.MethodGet,
			Handler: GetSalesFlash(service),
		},
		{
			Path:    "/v1/sales/flash/chart.png",
			Method:  http.MethodGet,
			Handler: GetSalesFlashChart(service, renderer),
		},
		{
			Path:    "/v1/sales/periods",
			Method:  http.MethodGet,
			Handler: GetAvailablePeriods(service),
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
