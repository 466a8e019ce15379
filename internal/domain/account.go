package domain

// Account é uma linha de accounts.comparison
type Account struct {
	Name           string `json:"account_name"`
	Type           string `json:"account_type"`
	TotalKarma     int    `json:"total_karma"`
	TotalPosts     int    `json:"total_posts"`
	AccountAgeDays int    `json:"account_age_days"`
	TotalClicks    int    `json:"total_clicks"`
}

// AccountPerformance é a conta acrescida das métricas de ritmo
type AccountPerformance struct {
	Account
	PostsPerWeek  float64 `json:"posts_per_week"`
	KarmaVelocity int     `json:"karma_velocity"`
}

// DecodeAccounts converte os registros de accounts.comparison
func DecodeAccounts(records []Record) ([]Account, error) {
	const section = SectionAccountsComparison

	accounts := make([]Account, 0, len(records))
	for i, rec := range records {
		var (
			acc Account
			err error
		)

		if acc.Name, err = rec.String(section, i, "account_name"); err != nil {
			return nil, err
		}
		if acc.Type, err = rec.String(section, i, "account_type"); err != nil {
			return nil, err
		}
		if acc.TotalKarma, err = rec.Int(section, i, "total_karma"); err != nil {
			return nil, err
		}
		if acc.TotalPosts, err = rec.Int(section, i, "total_posts"); err != nil {
			return nil, err
		}
		if acc.AccountAgeDays, err = rec.Int(section, i, "account_age_days"); err != nil {
			return nil, err
		}
		if acc.TotalClicks, err = rec.Int(section, i, "total_clicks"); err != nil {
			return nil, err
		}

		accounts = append(accounts, acc)
	}

	return accounts, nil
}

// Performance calcula posts por semana e velocidade de karma da conta
func (a Account) Performance() AccountPerformance {
	return AccountPerformance{
		Account:       a,
		PostsPerWeek:  PostsPerWeek(a.TotalPosts, a.AccountAgeDays),
		KarmaVelocity: KarmaVelocity(a.TotalKarma, a.AccountAgeDays),
	}
}

// AccountsPerformance calcula o desempenho de cada conta, na ordem recebida
func AccountsPerformance(accounts []Account) []AccountPerformance {
	performance := make([]AccountPerformance, 0, len(accounts))
	for _, acc := range accounts {
		performance = append(performance, acc.Performance())
	}
	return performance
}
