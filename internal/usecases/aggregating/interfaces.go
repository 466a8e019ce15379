package aggregating

import (
	"context"

	"github.com/vfg2006/recho-console/internal/domain"
)

// DashboardInsighter define as consultas das abas do console.
// Cada chamada calcula todos os números sobre um único snapshot do documento.
type DashboardInsighter interface {
	// QuickStats retorna sessões, conversões e receita da barra lateral
	QuickStats(ctx context.Context) (*domain.QuickStats, error)

	// Overview retorna os KPIs da visão executiva
	Overview(ctx context.Context) (*domain.OverviewSummary, error)

	// Organic retorna os KPIs e séries da aba orgânica
	Organic(ctx context.Context, filters *domain.DashboardFilters) (*domain.OrganicSummary, error)

	// Paid retorna os KPIs e séries da aba de mídia paga
	Paid(ctx context.Context, filters *domain.DashboardFilters) (*domain.PaidSummary, error)

	// Brand retorna os dados do monitoramento de marca
	Brand(ctx context.Context, filters *domain.DashboardFilters) (*domain.BrandSummary, error)

	// Accounts retorna a comparação entre as contas
	Accounts(ctx context.Context, filters *domain.DashboardFilters) (*domain.AccountsSummary, error)
}
