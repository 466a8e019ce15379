package domain

// QuickStats são os números resumidos da barra lateral
type QuickStats struct {
	Sessions    int     `json:"sessions"`
	Conversions int     `json:"conversions"`
	Revenue     float64 `json:"revenue"`
}

// OverviewSummary reúne os KPIs da visão executiva
type OverviewSummary struct {
	SnapshotID     string             `json:"snapshot_id"`
	Revenue        float64            `json:"revenue"`
	Spend          float64            `json:"spend"`
	BlendedROAS    float64            `json:"blended_roas"`
	Conversions    int                `json:"conversions"`
	TotalKarma     int                `json:"total_karma"`
	Sessions       int                `json:"sessions"`
	ConversionRate float64            `json:"conversion_rate"`
	Posts          int                `json:"posts"`
	SentimentRatio float64            `json:"sentiment_ratio"`
	TopSubreddits  []SubredditTraffic `json:"top_subreddits"`
	Campaigns      []CampaignSummary  `json:"campaigns"`
}

// OrganicSummary reúne os dados da aba orgânica
type OrganicSummary struct {
	SnapshotID              string                 `json:"snapshot_id"`
	Posts                   int                    `json:"posts"`
	Engagement              int                    `json:"engagement"`
	AvgEngagementRate       float64                `json:"avg_engagement_rate"`
	EngagementRateAvailable bool                   `json:"engagement_rate_available"`
	Karma                   int                    `json:"karma"`
	KarmaVelocity           []KarmaVelocityPoint   `json:"karma_velocity"`
	TopPosts                []TopPost              `json:"top_posts"`
	Subreddits              []SubredditPerformance `json:"subreddits"`
	Activity                []OrganicDailyMetric   `json:"activity"`
}

// PaidSummary reúne os dados da aba de mídia paga
type PaidSummary struct {
	SnapshotID    string            `json:"snapshot_id"`
	Spend         float64           `json:"spend"`
	Revenue       float64           `json:"revenue"`
	ROAS          float64           `json:"roas"`
	CPA           float64           `json:"cpa"`
	Conversions   int               `json:"conversions"`
	ROASTarget    float64           `json:"roas_target"`
	Daily         []DailySpend      `json:"daily"`
	Campaigns     []CampaignSummary `json:"campaigns"`
	SubredditROAS []SubredditROAS   `json:"subreddit_roas"`
}

// BrandSummary reúne os dados do monitoramento de marca
type BrandSummary struct {
	SnapshotID      string           `json:"snapshot_id"`
	TotalMentions   int              `json:"total_mentions"`
	SentimentRatio  float64          `json:"sentiment_ratio"`
	DailyMentionAvg float64          `json:"daily_mention_avg"`
	SentimentShare  []SentimentShare `json:"sentiment_share"`
	MentionTrend    []MentionPoint   `json:"mention_trend"`
}

// AccountsSummary reúne a comparação entre contas
type AccountsSummary struct {
	SnapshotID string               `json:"snapshot_id"`
	TotalKarma int                  `json:"total_karma"`
	Accounts   []AccountPerformance `json:"accounts"`
}

// RankingItem é um item de ranking com sua posição (começando em 1)
type RankingItem struct {
	Position int     `json:"position"`
	Name     string  `json:"name"`
	Value    float64 `json:"value"`
	Item     any     `json:"item"`
}

// RankingResponse é a resposta de um ranking TopN
type RankingResponse struct {
	SnapshotID string        `json:"snapshot_id"`
	Kind       string        `json:"kind"`
	Ranking    []RankingItem `json:"ranking"`
}
