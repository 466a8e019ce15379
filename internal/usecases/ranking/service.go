package ranking

import (
	"context"
	"errors"
	"fmt"

	"github.com/vfg2006/recho-console/infrastructure/repository"
	"github.com/vfg2006/recho-console/internal/domain"
)

// Tipos de ranking disponíveis
const (
	KindSubreddits = "subreddits"
	KindPosts      = "posts"
	KindCampaigns  = "campaigns"
	KindAccounts   = "accounts"
)

var ErrUnknownKind = errors.New("unknown ranking kind")

type RankingService interface {
	GetRanking(ctx context.Context, kind string, n int) (*domain.RankingResponse, error)
}

type DocumentRankingService struct {
	DocumentRepository repository.DocumentRepository
}

func NewDocumentRankingService(documentRepository repository.DocumentRepository) RankingService {
	return &DocumentRankingService{
		DocumentRepository: documentRepository,
	}
}

func (s *DocumentRankingService) GetRanking(ctx context.Context, kind string, n int) (*domain.RankingResponse, error) {
	if !IsKnownKind(kind) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	snapshot, err := s.DocumentRepository.Current(ctx)
	if err != nil {
		return nil, err
	}

	items, err := rankDocument(snapshot.Document, kind, n)
	if err != nil {
		return nil, err
	}

	return &domain.RankingResponse{
		SnapshotID: snapshot.ID,
		Kind:       kind,
		Ranking:    items,
	}, nil
}

// IsKnownKind informa se o tipo de ranking é suportado
func IsKnownKind(kind string) bool {
	switch kind {
	case KindSubreddits, KindPosts, KindCampaigns, KindAccounts:
		return true
	}
	return false
}

func rankDocument(doc *domain.MetricsDocument, kind string, n int) ([]domain.RankingItem, error) {
	switch kind {
	case KindSubreddits:
		subreddits, err := domain.DecodeSection(doc, domain.SectionTrafficBySubreddit, domain.DecodeSubredditTraffic)
		if err != nil {
			return nil, err
		}
		return Rank(subreddits, n,
			func(s domain.SubredditTraffic) string { return s.Subreddit },
			func(s domain.SubredditTraffic) float64 { return float64(s.Sessions) }), nil

	case KindPosts:
		posts, err := domain.DecodeSection(doc, domain.SectionOrganicTopPosts, domain.DecodeTopPosts)
		if err != nil {
			return nil, err
		}
		return Rank(posts, n,
			func(p domain.TopPost) string { return p.Title },
			func(p domain.TopPost) float64 { return float64(p.Upvotes) }), nil

	case KindCampaigns:
		campaigns, err := domain.DecodeSection(doc, domain.SectionPaidCampaignSummary, domain.DecodeCampaigns)
		if err != nil {
			return nil, err
		}
		return Rank(campaigns, n,
			func(c domain.CampaignSummary) string { return c.Name },
			func(c domain.CampaignSummary) float64 { return c.ROAS }), nil

	default:
		accounts, err := domain.DecodeSection(doc, domain.SectionAccountsComparison, domain.DecodeAccounts)
		if err != nil {
			return nil, err
		}
		return Rank(domain.AccountsPerformance(accounts), n,
			func(p domain.AccountPerformance) string { return p.Name },
			func(p domain.AccountPerformance) float64 { return float64(p.KarmaVelocity) }), nil
	}
}
