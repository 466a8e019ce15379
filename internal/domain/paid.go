package domain

import (
	"sort"
	"time"
)

// CampaignSummary é uma linha de paid.campaign_summary.
// ROAS e CPA vêm do documento quando presentes, senão são derivados.
type CampaignSummary struct {
	Name        string  `json:"campaign_name"`
	Spend       float64 `json:"spend"`
	Revenue     float64 `json:"revenue"`
	Conversions int     `json:"conversions"`
	ROAS        float64 `json:"roas"`
	CPA         float64 `json:"cpa"`
}

// PaidDailyMetric é uma linha de paid.daily_metrics (pode haver várias por data)
type PaidDailyMetric struct {
	Date        time.Time `json:"date"`
	Spend       float64   `json:"spend"`
	Conversions int       `json:"conversions"`
}

// DailySpend é o investimento e as conversões somados de uma data
type DailySpend struct {
	Date        string  `json:"date"`
	Spend       float64 `json:"spend"`
	Conversions int     `json:"conversions"`
}

// SubredditROAS é uma linha de paid.subreddit_performance com a classificação
type SubredditROAS struct {
	Subreddit string   `json:"subreddit"`
	ROAS      float64  `json:"roas"`
	Tier      ROASTier `json:"tier"`
}

// DecodeCampaigns converte os registros de paid.campaign_summary
func DecodeCampaigns(records []Record) ([]CampaignSummary, error) {
	const section = SectionPaidCampaignSummary

	campaigns := make([]CampaignSummary, 0, len(records))
	for i, rec := range records {
		var (
			c   CampaignSummary
			err error
		)

		if c.Name, err = rec.String(section, i, "campaign_name"); err != nil {
			return nil, err
		}
		if c.Spend, err = rec.Number(section, i, "spend"); err != nil {
			return nil, err
		}
		if c.Revenue, err = rec.Number(section, i, "revenue"); err != nil {
			return nil, err
		}
		if c.Conversions, err = rec.Int(section, i, "conversions"); err != nil {
			return nil, err
		}

		roas, ok, err := rec.OptionalNumber(section, i, "roas")
		if err != nil {
			return nil, err
		}
		if !ok {
			roas = BlendedROAS(c.Revenue, c.Spend)
		}
		c.ROAS = roas

		cpa, ok, err := rec.OptionalNumber(section, i, "cpa")
		if err != nil {
			return nil, err
		}
		if !ok {
			cpa = CostPerAcquisition(c.Spend, c.Conversions)
		}
		c.CPA = cpa

		campaigns = append(campaigns, c)
	}

	return campaigns, nil
}

// DecodePaidDailyMetrics converte os registros de paid.daily_metrics
func DecodePaidDailyMetrics(records []Record) ([]PaidDailyMetric, error) {
	const section = SectionPaidDailyMetrics

	metrics := make([]PaidDailyMetric, 0, len(records))
	for i, rec := range records {
		var (
			m   PaidDailyMetric
			err error
		)

		if m.Date, err = rec.Date(section, i, "date"); err != nil {
			return nil, err
		}
		if m.Spend, err = rec.Number(section, i, "spend"); err != nil {
			return nil, err
		}
		if m.Conversions, err = rec.Int(section, i, "conversions"); err != nil {
			return nil, err
		}

		metrics = append(metrics, m)
	}

	return metrics, nil
}

// DecodeSubredditROAS converte os registros de paid.subreddit_performance
func DecodeSubredditROAS(records []Record) ([]SubredditROAS, error) {
	const section = SectionPaidSubreddits

	items := make([]SubredditROAS, 0, len(records))
	for i, rec := range records {
		var (
			item SubredditROAS
			err  error
		)

		if item.Subreddit, err = rec.String(section, i, "subreddit"); err != nil {
			return nil, err
		}
		if item.ROAS, err = rec.Number(section, i, "roas"); err != nil {
			return nil, err
		}
		item.Tier = ClassifyROAS(item.ROAS)

		items = append(items, item)
	}

	return items, nil
}

// GroupDailySpend soma investimento e conversões por data, em ordem cronológica
func GroupDailySpend(metrics []PaidDailyMetric) []DailySpend {
	byDate := make(map[string]*DailySpend)
	for _, m := range metrics {
		key := m.Date.Format(time.DateOnly)

		day, exists := byDate[key]
		if !exists {
			day = &DailySpend{Date: key}
			byDate[key] = day
		}
		day.Spend += m.Spend
		day.Conversions += m.Conversions
	}

	days := make([]DailySpend, 0, len(byDate))
	for _, day := range byDate {
		days = append(days, *day)
	}

	// Datas no formato YYYY-MM-DD ordenam lexicograficamente
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})

	return days
}
