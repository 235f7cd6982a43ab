package handler

import (
	"net/http"

	"github.com/vfg2006/operation-metrics-api/internal/api/handler/router"
	"github.com/vfg2006/operation-metrics-api/internal/usecases/reporting"
	"github.com/vfg2006/operation-metrics-api/pkg/middleware"
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

func Operations(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/operations",
			Method:      http.MethodGet,
			Handler:     ListOperations(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/operations/:id/metrics",
			Method:      http.MethodGet,
			Handler:     GetOperationMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func MetricsCache(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/metrics/cache/invalidate",
			Method:      http.MethodPost,
			Handler:     InvalidateMetricsCache(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
