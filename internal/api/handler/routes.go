package handler

import (
	"net/http"

	"github.com/vfg2006/recho-console/infrastructure/repository"
	"github.com/vfg2006/recho-console/internal/api/handler/router"
	"github.com/vfg2006/recho-console/internal/telemetry"
	"github.com/vfg2006/recho-console/internal/usecases/aggregating"
	"github.com/vfg2006/recho-console/internal/usecases/ranking"
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

func Dashboard(service aggregating.DashboardInsighter, metrics *telemetry.Metrics) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/quick-stats",
			Method:  http.MethodGet,
			Handler: GetQuickStats(service, metrics),
		},
		{
			Path:    "/v1/overview",
			Method:  http.MethodGet,
			Handler: GetOverview(service, metrics),
		},
		{
			Path:    "/v1/organic",
			Method:  http.MethodGet,
			Handler: GetOrganic(service, metrics),
		},
		{
			Path:    "/v1/paid",
			Method:  http.MethodGet,
			Handler: GetPaid(service, metrics),
		},
		{
			Path:    "/v1/brand",
			Method:  http.MethodGet,
			Handler: GetBrand(service, metrics),
		},
		{
			Path:    "/v1/accounts",
			Method:  http.MethodGet,
			Handler: GetAccounts(service, metrics),
		},
	}
}

func Rankings(service ranking.RankingService, defaultN int, metrics *telemetry.Metrics) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/rankings/:kind",
			Method:  http.MethodGet,
			Handler: GetRanking(service, defaultN, metrics),
		},
	}
}

func Document(repo repository.DocumentRepository, metrics *telemetry.Metrics) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/document",
			Method:  http.MethodGet,
			Handler: GetDocument(repo, metrics),
		},
		{
			Path:    "/v1/document/reload",
			Method:  http.MethodPost,
			Handler: ReloadDocument(repo, metrics),
		},
		{
			Path:    "/v1/document/invalidate",
			Method:  http.MethodPost,
			Handler: InvalidateDocument(repo),
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

func Metrics(metrics *telemetry.Metrics) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}
