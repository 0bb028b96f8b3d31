package handler

import (
	"net/http"

	"github.com/vfg2006/geo-content-api/internal/api/handler/router"
	"github.com/vfg2006/geo-content-api/internal/usecases/generating"
	"github.com/vfg2006/geo-content-api/internal/usecases/optimizing"
	"github.com/vfg2006/geo-content-api/pkg/middleware"
)

var limitBody = []func(http.Handler) http.Handler{middleware.BodyLimit(middleware.MaxRequestBodyBytes)}

func Healthcheck(version string, probe ProviderProbe) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/api/v1/health",
			Method:  http.MethodGet,
			Handler: Health(version, probe),
		},
	}
}

func OverseasContent(service generating.ContentGenerator) []router.Route {
	return []router.Route{
		{
			Path:        "/api/v1/overseas_content/generate",
			Method:      http.MethodPost,
			Handler:     GenerateContent(service),
			Middlewares: limitBody,
		},
		{
			Path:    "/api/v1/overseas_content/markets",
			Method:  http.MethodGet,
			Handler: ListMarkets(service),
		},
	}
}

func GeoOptimize(advisor optimizing.Advisor) []router.Route {
	return []router.Route{
		{
			Path:        "/api/v1/geo_optimize",
			Method:      http.MethodPost,
			Handler:     OptimizeContent(advisor),
			Middlewares: limitBody,
		},
		{
			Path:    "/api/v1/geo_optimize/options",
			Method:  http.MethodGet,
			Handler: OptimizationOptions(advisor),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/api/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/api/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
