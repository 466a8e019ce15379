package aggregating

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/recho-console/internal/domain"
)

const fixtureJSON = `{
  "traffic": {
    "organic_vs_paid": [
      {"source": "organic", "sessions": 1200, "conversions": 36},
      {"source": "paid", "sessions": 800, "conversions": 44}
    ],
    "by_subreddit": [
      {"subreddit": "r/a", "sessions": 500, "conversions": 20},
      {"subreddit": "r/b", "sessions": 300, "conversions": 9},
      {"subreddit": "r/c", "sessions": 300, "conversions": 12},
      {"subreddit": "r/d", "sessions": 700, "conversions": 30},
      {"subreddit": "r/e", "sessions": 100, "conversions": 5},
      {"subreddit": "r/f", "sessions": 50, "conversions": 1}
    ]
  },
  "paid": {
    "campaign_summary": [
      {"campaign_name": "Launch", "spend": 1000, "revenue": 4500, "conversions": 30, "roas": 4.5, "cpa": 33.33},
      {"campaign_name": "Retarget", "spend": 500, "revenue": 3000, "conversions": 20}
    ],
    "daily_metrics": [
      {"date": "2024-03-01", "spend": 100, "conversions": 2},
      {"date": "2024-03-01", "spend": 50, "conversions": 1},
      {"date": "2024-03-10", "spend": 200, "conversions": 5}
    ],
    "subreddit_performance": [
      {"subreddit": "r/a", "roas": 5.5},
      {"subreddit": "r/b", "roas": 3.0},
      {"subreddit": "r/c", "roas": 1.2}
    ]
  },
  "organic": {
    "subreddit_performance": [
      {"subreddit": "r/a", "post_count": 10, "total_upvotes": 400, "total_comments": 100, "total_karma": 450, "avg_engagement_rate": 5.0},
      {"subreddit": "r/b", "post_count": 4, "total_upvotes": 100, "total_comments": 20, "total_karma": 110, "avg_engagement_rate": 3.0, "ctr": 1.5}
    ],
    "daily_metrics": [
      {"date": "2024-03-01", "posts": 2, "clicks": 30},
      {"date": "2024-03-20", "posts": 1, "clicks": 10},
      {"date": "2024-03-25", "posts": 3, "clicks": 50}
    ],
    "karma_velocity": [
      {"date": "2024-03-20", "account_name": "alpha", "karma_velocity": 50},
      {"date": "2024-03-25", "account_name": "beta", "karma_velocity": 20},
      {"date": "2024-01-01", "account_name": "alpha", "karma_velocity": 10}
    ],
    "top_posts": [
      {"title": "P1", "subreddit": "r/a", "upvotes": 120, "comments": 10, "engagement_rate": 4.2},
      {"title": "P2", "subreddit": "r/b", "upvotes": 300, "comments": 25, "engagement_rate": 6.1},
      {"title": "P3", "subreddit": "r/a", "upvotes": 120, "comments": 5, "engagement_rate": 3.0}
    ]
  },
  "accounts": {
    "comparison": [
      {"account_name": "alpha", "account_type": "brand", "total_karma": 700, "total_posts": 14, "account_age_days": 14, "total_clicks": 90},
      {"account_name": "beta", "account_type": "personal", "total_karma": 700, "total_posts": 3, "account_age_days": 7, "total_clicks": 10},
      {"account_name": "gamma", "account_type": "personal", "total_karma": 0, "total_posts": 0, "account_age_days": 0, "total_clicks": 0}
    ]
  },
  "brand": {
    "sentiment_ratio": 80.0,
    "by_subreddit": [
      {"subreddit": "r/a", "mention_count": 60},
      {"subreddit": "r/b", "mention_count": 40}
    ],
    "sentiment_distribution": [
      {"sentiment": "positive", "mention_count": 80},
      {"sentiment": "neutral", "mention_count": 15},
      {"sentiment": "negative", "mention_count": 5}
    ],
    "mention_trend": [
      {"date": "2024-03-01", "mention_count": 30},
      {"date": "2024-03-02", "mention_count": 30},
      {"date": "2024-03-02", "mention_count": 10},
      {"date": "2024-03-05", "mention_count": 30}
    ]
  }
}`

// fixtureRoot decodifica o documento de exemplo; cada chamada devolve uma cópia independente
func fixtureRoot(t *testing.T) map[string]any {
	t.Helper()

	var root map[string]any
	require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal([]byte(fixtureJSON), &root))
	return root
}

func fixtureDocument(t *testing.T) *domain.MetricsDocument {
	t.Helper()
	return domain.NewMetricsDocument(fixtureRoot(t))
}

// records retorna os registros de uma seção do mapa raiz para os testes alterarem
func records(root map[string]any, group, section string) []any {
	return root[group].(map[string]any)[section].([]any)
}
