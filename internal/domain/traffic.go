package domain

// TrafficSource é uma linha de traffic.organic_vs_paid
type TrafficSource struct {
	Source      string `json:"source,omitempty"`
	Sessions    int    `json:"sessions"`
	Conversions int    `json:"conversions"`
}

// SubredditTraffic é uma linha de traffic.by_subreddit
type SubredditTraffic struct {
	Subreddit   string `json:"subreddit"`
	Sessions    int    `json:"sessions"`
	Conversions int    `json:"conversions"`
}

// DecodeTrafficSources converte os registros de traffic.organic_vs_paid.
// O nome da origem é opcional.
func DecodeTrafficSources(records []Record) ([]TrafficSource, error) {
	const section = SectionTrafficOrganicVsPaid

	sources := make([]TrafficSource, 0, len(records))
	for i, rec := range records {
		var (
			src TrafficSource
			err error
		)

		if name, ok := rec["source"].(string); ok {
			src.Source = name
		}
		if src.Sessions, err = rec.Int(section, i, "sessions"); err != nil {
			return nil, err
		}
		if src.Conversions, err = rec.Int(section, i, "conversions"); err != nil {
			return nil, err
		}

		sources = append(sources, src)
	}

	return sources, nil
}

// DecodeSubredditTraffic converte os registros de traffic.by_subreddit
func DecodeSubredditTraffic(records []Record) ([]SubredditTraffic, error) {
	const section = SectionTrafficBySubreddit

	items := make([]SubredditTraffic, 0, len(records))
	for i, rec := range records {
		var (
			item SubredditTraffic
			err  error
		)

		if item.Subreddit, err = rec.String(section, i, "subreddit"); err != nil {
			return nil, err
		}
		if item.Sessions, err = rec.Int(section, i, "sessions"); err != nil {
			return nil, err
		}
		if item.Conversions, err = rec.Int(section, i, "conversions"); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}
