package ranking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/recho-console/infrastructure/metricsfile"
	"github.com/vfg2006/recho-console/infrastructure/repository/mocks"
	"github.com/vfg2006/recho-console/internal/domain"
	"go.uber.org/mock/gomock"
)

func rankingDocument() *domain.MetricsDocument {
	return domain.NewMetricsDocument(map[string]any{
		"traffic": map[string]any{"by_subreddit": []any{
			map[string]any{"subreddit": "r/a", "sessions": 100.0, "conversions": 1.0},
			map[string]any{"subreddit": "r/b", "sessions": 300.0, "conversions": 2.0},
			map[string]any{"subreddit": "r/c", "sessions": 200.0, "conversions": 3.0},
		}},
		"organic": map[string]any{"top_posts": []any{
			map[string]any{"title": "P1", "subreddit": "r/a", "upvotes": 10.0, "comments": 1.0, "engagement_rate": 1.0},
			map[string]any{"title": "P2", "subreddit": "r/b", "upvotes": 90.0, "comments": 2.0, "engagement_rate": 2.0},
		}},
		"paid": map[string]any{"campaign_summary": []any{
			map[string]any{"campaign_name": "Launch", "spend": 100.0, "revenue": 200.0, "conversions": 4.0},
			map[string]any{"campaign_name": "Retarget", "spend": 100.0, "revenue": 600.0, "conversions": 4.0},
		}},
		"accounts": map[string]any{"comparison": []any{
			map[string]any{"account_name": "alpha", "account_type": "brand", "total_karma": 700.0, "total_posts": 14.0, "account_age_days": 14.0, "total_clicks": 5.0},
			map[string]any{"account_name": "beta", "account_type": "personal", "total_karma": 700.0, "total_posts": 7.0, "account_age_days": 7.0, "total_clicks": 5.0},
		}},
	})
}

func TestDocumentRankingService_GetRanking(t *testing.T) {
	tests := []struct {
		name          string
		kind          string
		n             int
		expectedNames []string
		expectedFirst float64
	}{
		{"Subreddits por sessões", KindSubreddits, 2, []string{"r/b", "r/c"}, 300},
		{"Posts por upvotes", KindPosts, 5, []string{"P2", "P1"}, 90},
		{"Campanhas por ROAS derivado", KindCampaigns, 1, []string{"Retarget"}, 6},
		{"Contas por velocidade de karma", KindAccounts, 2, []string{"beta", "alpha"}, 700},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockDocumentRepository(ctrl)
			repo.EXPECT().Current(gomock.Any()).Return(&domain.Snapshot{ID: "snap-9", Document: rankingDocument()}, nil)

			result, err := NewDocumentRankingService(repo).GetRanking(context.Background(), tt.kind, tt.n)
			require.NoError(t, err)

			assert.Equal(t, "snap-9", result.SnapshotID)
			assert.Equal(t, tt.kind, result.Kind)

			names := make([]string, 0, len(result.Ranking))
			for i, item := range result.Ranking {
				assert.Equal(t, i+1, item.Position)
				names = append(names, item.Name)
			}
			assert.Equal(t, tt.expectedNames, names)
			assert.InDelta(t, tt.expectedFirst, result.Ranking[0].Value, 1e-9)
		})
	}
}

func TestDocumentRankingService_UnknownKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDocumentRepository(ctrl)

	_, err := NewDocumentRankingService(repo).GetRanking(context.Background(), "comments", 5)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestDocumentRankingService_DocumentError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDocumentRepository(ctrl)
	repo.EXPECT().Current(gomock.Any()).Return(nil, metricsfile.ErrMalformedDocument)

	_, err := NewDocumentRankingService(repo).GetRanking(context.Background(), KindPosts, 5)
	assert.ErrorIs(t, err, metricsfile.ErrMalformedDocument)
}

func TestDocumentRankingService_MissingSection(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDocumentRepository(ctrl)
	repo.EXPECT().Current(gomock.Any()).Return(&domain.Snapshot{ID: "snap-1", Document: domain.NewMetricsDocument(nil)}, nil)

	_, err := NewDocumentRankingService(repo).GetRanking(context.Background(), KindCampaigns, 5)
	assert.ErrorIs(t, err, domain.ErrInvalidShape)
}
