package aggregating

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/recho-console/infrastructure/repository"
	"github.com/vfg2006/recho-console/internal/domain"
	"github.com/vfg2006/recho-console/internal/usecases/ranking"
)

const (
	overviewTopSubreddits = 5
	organicTopPosts       = 10
	paidTopSubreddits     = 10
)

// Service implementa DashboardInsighter sobre o repositório do documento
type Service struct {
	repo repository.DocumentRepository
}

// NewService cria o serviço de agregação
func NewService(repo repository.DocumentRepository) *Service {
	return &Service{repo: repo}
}

// snapshot captura a versão atual do documento e o agregador correspondente
func (s *Service) snapshot(ctx context.Context) (*domain.Snapshot, *Aggregator, error) {
	snapshot, err := s.repo.Current(ctx)
	if err != nil {
		return nil, nil, err
	}
	return snapshot, NewAggregator(snapshot.Document), nil
}

func (s *Service) QuickStats(ctx context.Context) (*domain.QuickStats, error) {
	_, agg, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	sessions, err := agg.TotalSessions()
	if err != nil {
		return nil, err
	}
	conversions, err := agg.TotalConversions()
	if err != nil {
		return nil, err
	}
	revenue, err := agg.TotalRevenue()
	if err != nil {
		return nil, err
	}

	return &domain.QuickStats{
		Sessions:    sessions,
		Conversions: conversions,
		Revenue:     revenue,
	}, nil
}

func (s *Service) Overview(ctx context.Context) (*domain.OverviewSummary, error) {
	snapshot, agg, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	summary := &domain.OverviewSummary{SnapshotID: snapshot.ID}

	if summary.Revenue, err = agg.TotalRevenue(); err != nil {
		return nil, err
	}
	if summary.Spend, err = agg.TotalSpend(); err != nil {
		return nil, err
	}
	summary.BlendedROAS = domain.BlendedROAS(summary.Revenue, summary.Spend)

	if summary.Sessions, err = agg.TotalSessions(); err != nil {
		return nil, err
	}
	if summary.Conversions, err = agg.TotalConversions(); err != nil {
		return nil, err
	}
	summary.ConversionRate = domain.ConversionRate(summary.Conversions, summary.Sessions)

	if summary.TotalKarma, err = agg.TotalKarma(); err != nil {
		return nil, err
	}
	if summary.Posts, err = agg.TotalPosts(); err != nil {
		return nil, err
	}
	if summary.SentimentRatio, err = agg.SentimentRatio(); err != nil {
		return nil, err
	}

	subreddits, err := agg.SubredditTraffic()
	if err != nil {
		return nil, err
	}
	summary.TopSubreddits = ranking.TopN(subreddits, overviewTopSubreddits, func(s domain.SubredditTraffic) float64 {
		return float64(s.Sessions)
	})

	if summary.Campaigns, err = agg.Campaigns(); err != nil {
		return nil, err
	}

	return summary, nil
}

func (s *Service) Organic(ctx context.Context, filters *domain.DashboardFilters) (*domain.OrganicSummary, error) {
	snapshot, agg, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	summary := &domain.OrganicSummary{SnapshotID: snapshot.ID}

	if summary.Posts, err = agg.TotalPosts(); err != nil {
		return nil, err
	}
	if summary.Engagement, err = agg.TotalEngagement(); err != nil {
		return nil, err
	}
	if summary.Karma, err = agg.OrganicKarma(); err != nil {
		return nil, err
	}

	rate, err := agg.AverageEngagementRate()
	switch {
	case err == nil:
		summary.AvgEngagementRate = rate
		summary.EngagementRateAvailable = true
	case errors.Is(err, domain.ErrDivisionByZero):
		logrus.WithField("snapshot_id", snapshot.ID).Debug("Sem subreddits orgânicos para calcular a taxa média de engajamento")
	default:
		return nil, err
	}

	velocity, err := agg.KarmaVelocitySeries()
	if err != nil {
		return nil, err
	}
	velocity = domain.FilterByDateRange(velocity, func(p domain.KarmaVelocityPoint) string { return p.Date }, filters)
	summary.KarmaVelocity = filterAccounts(velocity, func(p domain.KarmaVelocityPoint) string { return p.AccountName }, filters)

	posts, err := agg.TopPosts()
	if err != nil {
		return nil, err
	}
	summary.TopPosts = ranking.TopN(posts, organicTopPosts, func(p domain.TopPost) float64 {
		return float64(p.Upvotes)
	})

	if summary.Subreddits, err = agg.SubredditPerformance(); err != nil {
		return nil, err
	}

	activity, err := agg.OrganicActivity()
	if err != nil {
		return nil, err
	}
	summary.Activity = domain.FilterByDateRange(activity, func(m domain.OrganicDailyMetric) string { return m.Date }, filters)

	return summary, nil
}

func (s *Service) Paid(ctx context.Context, filters *domain.DashboardFilters) (*domain.PaidSummary, error) {
	snapshot, agg, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	summary := &domain.PaidSummary{
		SnapshotID: snapshot.ID,
		ROASTarget: domain.ROASTarget,
	}

	if summary.Spend, err = agg.TotalSpend(); err != nil {
		return nil, err
	}
	if summary.Revenue, err = agg.TotalRevenue(); err != nil {
		return nil, err
	}
	if summary.Conversions, err = agg.PaidConversions(); err != nil {
		return nil, err
	}
	summary.ROAS = domain.BlendedROAS(summary.Revenue, summary.Spend)
	summary.CPA = domain.CostPerAcquisition(summary.Spend, summary.Conversions)

	daily, err := agg.DailySpend()
	if err != nil {
		return nil, err
	}
	summary.Daily = domain.FilterByDateRange(daily, func(d domain.DailySpend) string { return d.Date }, filters)

	if summary.Campaigns, err = agg.Campaigns(); err != nil {
		return nil, err
	}

	subreddits, err := agg.SubredditROAS()
	if err != nil {
		return nil, err
	}
	summary.SubredditROAS = ranking.TopN(subreddits, paidTopSubreddits, func(s domain.SubredditROAS) float64 {
		return s.ROAS
	})

	return summary, nil
}

func (s *Service) Brand(ctx context.Context, filters *domain.DashboardFilters) (*domain.BrandSummary, error) {
	snapshot, agg, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	summary := &domain.BrandSummary{SnapshotID: snapshot.ID}

	if summary.TotalMentions, err = agg.TotalMentions(); err != nil {
		return nil, err
	}
	if summary.SentimentRatio, err = agg.SentimentRatio(); err != nil {
		return nil, err
	}
	if summary.DailyMentionAvg, err = agg.DailyMentionAverage(); err != nil {
		return nil, err
	}
	if summary.SentimentShare, err = agg.SentimentShare(); err != nil {
		return nil, err
	}

	trend, err := agg.MentionTrend()
	if err != nil {
		return nil, err
	}
	summary.MentionTrend = domain.FilterByDateRange(trend, func(p domain.MentionPoint) string { return p.Date }, filters)

	return summary, nil
}

func (s *Service) Accounts(ctx context.Context, filters *domain.DashboardFilters) (*domain.AccountsSummary, error) {
	snapshot, agg, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	performance, err := agg.AccountPerformance()
	if err != nil {
		return nil, err
	}
	performance = filterAccounts(performance, func(p domain.AccountPerformance) string { return p.Name }, filters)

	total := 0
	for _, p := range performance {
		total += p.TotalKarma
	}

	return &domain.AccountsSummary{
		SnapshotID: snapshot.ID,
		TotalKarma: total,
		Accounts:   performance,
	}, nil
}

func filterAccounts[T any](items []T, account func(T) string, filters *domain.DashboardFilters) []T {
	if filters == nil || len(filters.Accounts) == 0 {
		return items
	}

	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if filters.IncludesAccount(account(item)) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
