package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/recho-console/internal/domain"
	"github.com/vfg2006/recho-console/internal/telemetry"
	"github.com/vfg2006/recho-console/internal/usecases/aggregating"
	"github.com/vfg2006/recho-console/pkg/apiErrors"
	"github.com/vfg2006/recho-console/pkg/log"
)

// serveDashboard executa a consulta da aba e envia o resultado ou o erro padronizado
func serveDashboard[T any](tab string, metrics *telemetry.Metrics, query func(ctx context.Context, filters *domain.DashboardFilters) (T, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := log.ForContext(ctx)

		filters, err := parseFilters(r.URL.Query())
		if err != nil {
			logger.WithError(err).Warn("dashboard: filtros inválidos")
			metrics.ObserveQueryError("invalid_request")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"tab":        tab,
			"date_range": filters.DateRange,
			"accounts":   filters.Accounts,
		}).Debug("dashboard: calculando métricas")

		result, err := query(ctx, filters)
		if err != nil {
			writeServiceError(ctx, w, metrics, err)
			return
		}

		writeJSON(ctx, w, result)
	})
}

func GetQuickStats(service aggregating.DashboardInsighter, metrics *telemetry.Metrics) http.Handler {
	return serveDashboard("quick-stats", metrics, func(ctx context.Context, _ *domain.DashboardFilters) (*domain.QuickStats, error) {
		return service.QuickStats(ctx)
	})
}

func GetOverview(service aggregating.DashboardInsighter, metrics *telemetry.Metrics) http.Handler {
	return serveDashboard("overview", metrics, func(ctx context.Context, _ *domain.DashboardFilters) (*domain.OverviewSummary, error) {
		return service.Overview(ctx)
	})
}

func GetOrganic(service aggregating.DashboardInsighter, metrics *telemetry.Metrics) http.Handler {
	return serveDashboard("organic", metrics, service.Organic)
}

func GetPaid(service aggregating.DashboardInsighter, metrics *telemetry.Metrics) http.Handler {
	return serveDashboard("paid", metrics, service.Paid)
}

func GetBrand(service aggregating.DashboardInsighter, metrics *telemetry.Metrics) http.Handler {
	return serveDashboard("brand", metrics, service.Brand)
}

func GetAccounts(service aggregating.DashboardInsighter, metrics *telemetry.Metrics) http.Handler {
	return serveDashboard("accounts", metrics, service.Accounts)
}
