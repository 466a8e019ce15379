package aggregating

import (
	"github.com/vfg2006/recho-console/internal/domain"
)

// Aggregator calcula as métricas derivadas sobre um único documento.
// Não guarda estado além do documento e nunca altera os registros de entrada.
type Aggregator struct {
	doc *domain.MetricsDocument
}

// NewAggregator cria um agregador para o documento informado
func NewAggregator(doc *domain.MetricsDocument) *Aggregator {
	return &Aggregator{doc: doc}
}

func sumInt[T any](items []T, value func(T) int) int {
	total := 0
	for _, item := range items {
		total += value(item)
	}
	return total
}

func sumFloat[T any](items []T, value func(T) float64) float64 {
	total := 0.0
	for _, item := range items {
		total += value(item)
	}
	return total
}

// Tráfego

func (a *Aggregator) TrafficSources() ([]domain.TrafficSource, error) {
	return domain.DecodeSection(a.doc, domain.SectionTrafficOrganicVsPaid, domain.DecodeTrafficSources)
}

func (a *Aggregator) SubredditTraffic() ([]domain.SubredditTraffic, error) {
	return domain.DecodeSection(a.doc, domain.SectionTrafficBySubreddit, domain.DecodeSubredditTraffic)
}

// TotalSessions soma as sessões de traffic.organic_vs_paid
func (a *Aggregator) TotalSessions() (int, error) {
	sources, err := a.TrafficSources()
	if err != nil {
		return 0, err
	}
	return sumInt(sources, func(s domain.TrafficSource) int { return s.Sessions }), nil
}

// TotalConversions soma as conversões de traffic.organic_vs_paid
func (a *Aggregator) TotalConversions() (int, error) {
	sources, err := a.TrafficSources()
	if err != nil {
		return 0, err
	}
	return sumInt(sources, func(s domain.TrafficSource) int { return s.Conversions }), nil
}

// AverageConversionRate calcula conversões / sessões * 100 sobre o tráfego total
func (a *Aggregator) AverageConversionRate() (float64, error) {
	sessions, err := a.TotalSessions()
	if err != nil {
		return 0, err
	}
	conversions, err := a.TotalConversions()
	if err != nil {
		return 0, err
	}
	return domain.ConversionRate(conversions, sessions), nil
}

// Mídia paga

func (a *Aggregator) Campaigns() ([]domain.CampaignSummary, error) {
	return domain.DecodeSection(a.doc, domain.SectionPaidCampaignSummary, domain.DecodeCampaigns)
}

func (a *Aggregator) PaidDailyMetrics() ([]domain.PaidDailyMetric, error) {
	return domain.DecodeSection(a.doc, domain.SectionPaidDailyMetrics, domain.DecodePaidDailyMetrics)
}

func (a *Aggregator) SubredditROAS() ([]domain.SubredditROAS, error) {
	return domain.DecodeSection(a.doc, domain.SectionPaidSubreddits, domain.DecodeSubredditROAS)
}

// TotalRevenue soma a receita das campanhas
func (a *Aggregator) TotalRevenue() (float64, error) {
	campaigns, err := a.Campaigns()
	if err != nil {
		return 0, err
	}
	return sumFloat(campaigns, func(c domain.CampaignSummary) float64 { return c.Revenue }), nil
}

// TotalSpend soma o investimento das campanhas
func (a *Aggregator) TotalSpend() (float64, error) {
	campaigns, err := a.Campaigns()
	if err != nil {
		return 0, err
	}
	return sumFloat(campaigns, func(c domain.CampaignSummary) float64 { return c.Spend }), nil
}

// PaidConversions soma as conversões atribuídas às campanhas
func (a *Aggregator) PaidConversions() (int, error) {
	campaigns, err := a.Campaigns()
	if err != nil {
		return 0, err
	}
	return sumInt(campaigns, func(c domain.CampaignSummary) int { return c.Conversions }), nil
}

// BlendedROAS calcula receita total / investimento total
func (a *Aggregator) BlendedROAS() (float64, error) {
	revenue, err := a.TotalRevenue()
	if err != nil {
		return 0, err
	}
	spend, err := a.TotalSpend()
	if err != nil {
		return 0, err
	}
	return domain.BlendedROAS(revenue, spend), nil
}

// AverageCPA calcula investimento total / conversões das campanhas
func (a *Aggregator) AverageCPA() (float64, error) {
	spend, err := a.TotalSpend()
	if err != nil {
		return 0, err
	}
	conversions, err := a.PaidConversions()
	if err != nil {
		return 0, err
	}
	return domain.CostPerAcquisition(spend, conversions), nil
}

// DailySpend agrupa paid.daily_metrics por data
func (a *Aggregator) DailySpend() ([]domain.DailySpend, error) {
	metrics, err := a.PaidDailyMetrics()
	if err != nil {
		return nil, err
	}
	return domain.GroupDailySpend(metrics), nil
}

// Orgânico

func (a *Aggregator) SubredditPerformance() ([]domain.SubredditPerformance, error) {
	return domain.DecodeSection(a.doc, domain.SectionOrganicSubreddits, domain.DecodeSubredditPerformance)
}

func (a *Aggregator) OrganicActivity() ([]domain.OrganicDailyMetric, error) {
	return domain.DecodeSection(a.doc, domain.SectionOrganicDailyMetrics, domain.DecodeOrganicDailyMetrics)
}

func (a *Aggregator) KarmaVelocitySeries() ([]domain.KarmaVelocityPoint, error) {
	return domain.DecodeSection(a.doc, domain.SectionOrganicKarmaVelocity, domain.DecodeKarmaVelocity)
}

func (a *Aggregator) TopPosts() ([]domain.TopPost, error) {
	return domain.DecodeSection(a.doc, domain.SectionOrganicTopPosts, domain.DecodeTopPosts)
}

// TotalPosts soma post_count dos subreddits orgânicos
func (a *Aggregator) TotalPosts() (int, error) {
	subreddits, err := a.SubredditPerformance()
	if err != nil {
		return 0, err
	}
	return sumInt(subreddits, func(s domain.SubredditPerformance) int { return s.PostCount }), nil
}

// TotalEngagement soma upvotes + comentários de cada subreddit
func (a *Aggregator) TotalEngagement() (int, error) {
	subreddits, err := a.SubredditPerformance()
	if err != nil {
		return 0, err
	}
	return sumInt(subreddits, domain.SubredditPerformance.Engagement), nil
}

// OrganicKarma soma o karma dos subreddits orgânicos
func (a *Aggregator) OrganicKarma() (int, error) {
	subreddits, err := a.SubredditPerformance()
	if err != nil {
		return 0, err
	}
	return sumInt(subreddits, func(s domain.SubredditPerformance) int { return s.TotalKarma }), nil
}

// AverageEngagementRate é a média aritmética de avg_engagement_rate.
// Com a seção vazia retorna ErrDivisionByZero; quem chama decide o que exibir.
func (a *Aggregator) AverageEngagementRate() (float64, error) {
	subreddits, err := a.SubredditPerformance()
	if err != nil {
		return 0, err
	}
	if len(subreddits) == 0 {
		return 0, domain.NewDivisionByZeroError(domain.SectionOrganicSubreddits, "avg_engagement_rate")
	}

	total := sumFloat(subreddits, func(s domain.SubredditPerformance) float64 { return s.AvgEngagementRate })
	return total / float64(len(subreddits)), nil
}

// Contas

func (a *Aggregator) Accounts() ([]domain.Account, error) {
	return domain.DecodeSection(a.doc, domain.SectionAccountsComparison, domain.DecodeAccounts)
}

// TotalKarma soma o karma de todas as contas
func (a *Aggregator) TotalKarma() (int, error) {
	accounts, err := a.Accounts()
	if err != nil {
		return 0, err
	}
	return sumInt(accounts, func(acc domain.Account) int { return acc.TotalKarma }), nil
}

// AccountPerformance calcula posts por semana e velocidade de karma de cada conta
func (a *Aggregator) AccountPerformance() ([]domain.AccountPerformance, error) {
	accounts, err := a.Accounts()
	if err != nil {
		return nil, err
	}
	return domain.AccountsPerformance(accounts), nil
}

// Marca

func (a *Aggregator) SubredditMentions() ([]domain.SubredditMentions, error) {
	return domain.DecodeSection(a.doc, domain.SectionBrandBySubreddit, domain.DecodeSubredditMentions)
}

func (a *Aggregator) SentimentBuckets() ([]domain.SentimentBucket, error) {
	return domain.DecodeSection(a.doc, domain.SectionBrandSentiment, domain.DecodeSentimentBuckets)
}

func (a *Aggregator) MentionTrend() ([]domain.MentionPoint, error) {
	return domain.DecodeSection(a.doc, domain.SectionBrandMentionTrend, domain.DecodeMentionTrend)
}

// SentimentRatio retorna o percentual de menções positivas informado no documento
func (a *Aggregator) SentimentRatio() (float64, error) {
	ratio, err := a.doc.Scalar(domain.FieldBrandSentimentRatio)
	if err != nil {
		return 0, err
	}
	if ratio > 100 {
		return 0, domain.NewShapeError(domain.FieldBrandSentimentRatio, "", "percentage above 100")
	}
	return ratio, nil
}

// SentimentShare calcula a participação percentual de cada sentimento
func (a *Aggregator) SentimentShare() ([]domain.SentimentShare, error) {
	buckets, err := a.SentimentBuckets()
	if err != nil {
		return nil, err
	}
	return domain.CalculateSentimentShare(buckets), nil
}

// TotalMentions soma as menções por subreddit
func (a *Aggregator) TotalMentions() (int, error) {
	mentions, err := a.SubredditMentions()
	if err != nil {
		return 0, err
	}
	return sumInt(mentions, func(m domain.SubredditMentions) int { return m.MentionCount }), nil
}

// DailyMentionAverage divide o total de menções pela quantidade de dias distintos
// da série de menções (0 quando a série está vazia)
func (a *Aggregator) DailyMentionAverage() (float64, error) {
	total, err := a.TotalMentions()
	if err != nil {
		return 0, err
	}
	trend, err := a.MentionTrend()
	if err != nil {
		return 0, err
	}

	days := make(map[string]struct{}, len(trend))
	for _, point := range trend {
		days[point.Date] = struct{}{}
	}
	if len(days) == 0 {
		return 0, nil
	}
	return float64(total) / float64(len(days)), nil
}
