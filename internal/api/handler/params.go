package handler

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/vfg2006/recho-console/internal/domain"
	"github.com/vfg2006/recho-console/pkg/utils"
)

// parseFilters lê date_range, as_of e accounts da query string
func parseFilters(query url.Values) (*domain.DashboardFilters, error) {
	dateRange, err := domain.ParseDateRange(query.Get("date_range"))
	if err != nil {
		return nil, err
	}

	asOf, err := utils.ParseDate(query.Get("as_of"))
	if err != nil {
		return nil, fmt.Errorf("invalid as_of %q: expected YYYY-MM-DD", query.Get("as_of"))
	}

	var accounts []string
	for _, account := range strings.Split(query.Get("accounts"), ",") {
		if account = strings.TrimSpace(account); account != "" {
			accounts = append(accounts, account)
		}
	}

	return &domain.DashboardFilters{
		DateRange: dateRange,
		AsOf:      asOf,
		Accounts:  accounts,
	}, nil
}

// parseTopN lê o parâmetro n; ausente usa o padrão configurado
func parseTopN(query url.Values, defaultN int) (int, error) {
	value := query.Get("n")
	if value == "" {
		return defaultN, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid n %q: expected a positive integer", value)
	}
	return n, nil
}
