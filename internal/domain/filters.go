package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateRange define a janela aplicada às séries diárias
type DateRange string

const (
	DateRangeLast7Days  DateRange = "last_7_days"
	DateRangeLast30Days DateRange = "last_30_days"
	DateRangeLast90Days DateRange = "last_90_days"
	DateRangeAllTime    DateRange = "all_time"

	DefaultDateRange = DateRangeLast30Days
)

// AllAccounts seleciona todas as contas no filtro de contas
const AllAccounts = "all"

// ParseDateRange valida o valor recebido na query. Vazio usa o padrão (últimos 30 dias).
func ParseDateRange(value string) (DateRange, error) {
	switch r := DateRange(strings.TrimSpace(value)); r {
	case "":
		return DefaultDateRange, nil
	case DateRangeLast7Days, DateRangeLast30Days, DateRangeLast90Days, DateRangeAllTime:
		return r, nil
	default:
		return "", fmt.Errorf("invalid date_range %q: accepted values are last_7_days, last_30_days, last_90_days, all_time", value)
	}
}

// Days retorna o tamanho da janela em dias (0 para todo o período)
func (r DateRange) Days() int {
	switch r {
	case DateRangeLast7Days:
		return 7
	case DateRangeLast30Days:
		return 30
	case DateRangeLast90Days:
		return 90
	default:
		return 0
	}
}

// DashboardFilters são os filtros somente leitura aceitos pelas consultas
type DashboardFilters struct {
	DateRange DateRange
	AsOf      *time.Time // Âncora da janela; quando nil usa a data mais recente da série
	Accounts  []string   // Vazio ou contendo "all" seleciona todas as contas
}

// IncludesAccount informa se a conta passa no filtro de contas
func (f *DashboardFilters) IncludesAccount(name string) bool {
	if f == nil || len(f.Accounts) == 0 {
		return true
	}

	for _, account := range f.Accounts {
		if strings.EqualFold(account, AllAccounts) || account == name {
			return true
		}
	}
	return false
}

// FilterByDateRange mantém os itens cuja data (YYYY-MM-DD) está dentro da janela.
// A janela termina na âncora (AsOf ou a maior data da série) e inclui a âncora.
func FilterByDateRange[T any](items []T, date func(T) string, filters *DashboardFilters) []T {
	if filters == nil || len(items) == 0 {
		return items
	}

	var anchor string
	if filters.AsOf != nil {
		anchor = filters.AsOf.Format(time.DateOnly)
	} else {
		for _, item := range items {
			if d := date(item); d > anchor {
				anchor = d
			}
		}
	}

	from := ""
	if days := filters.DateRange.Days(); days > 0 {
		anchorDate, err := time.Parse(time.DateOnly, anchor)
		if err == nil {
			from = anchorDate.AddDate(0, 0, -(days - 1)).Format(time.DateOnly)
		}
	}

	filtered := make([]T, 0, len(items))
	for _, item := range items {
		d := date(item)
		if d > anchor || d < from {
			continue
		}
		filtered = append(filtered, item)
	}

	return filtered
}
