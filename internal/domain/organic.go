package domain

import "time"

// SubredditPerformance é uma linha de organic.subreddit_performance
type SubredditPerformance struct {
	Subreddit         string   `json:"subreddit"`
	PostCount         int      `json:"post_count"`
	TotalUpvotes      int      `json:"total_upvotes"`
	TotalComments     int      `json:"total_comments"`
	TotalKarma        int      `json:"total_karma"`
	AvgEngagementRate float64  `json:"avg_engagement_rate"`
	CTR               *float64 `json:"ctr,omitempty"`
	AvgUpvoteRate     *float64 `json:"avg_upvote_rate,omitempty"`
}

// Engagement soma upvotes e comentários do subreddit
func (s SubredditPerformance) Engagement() int {
	return s.TotalUpvotes + s.TotalComments
}

// OrganicDailyMetric é uma linha de organic.daily_metrics
type OrganicDailyMetric struct {
	Date   string `json:"date"`
	Posts  int    `json:"posts"`
	Clicks int    `json:"clicks"`
}

// KarmaVelocityPoint é uma linha de organic.karma_velocity (karma por dia de uma conta)
type KarmaVelocityPoint struct {
	Date          string  `json:"date"`
	AccountName   string  `json:"account_name"`
	KarmaVelocity float64 `json:"karma_velocity"`
}

// TopPost é uma linha de organic.top_posts
type TopPost struct {
	Title          string  `json:"title"`
	Subreddit      string  `json:"subreddit"`
	Upvotes        int     `json:"upvotes"`
	Comments       int     `json:"comments"`
	EngagementRate float64 `json:"engagement_rate"`
}

// DecodeSubredditPerformance converte os registros de organic.subreddit_performance
func DecodeSubredditPerformance(records []Record) ([]SubredditPerformance, error) {
	const section = SectionOrganicSubreddits

	items := make([]SubredditPerformance, 0, len(records))
	for i, rec := range records {
		var (
			item SubredditPerformance
			err  error
		)

		if item.Subreddit, err = rec.String(section, i, "subreddit"); err != nil {
			return nil, err
		}
		if item.PostCount, err = rec.Int(section, i, "post_count"); err != nil {
			return nil, err
		}
		if item.TotalUpvotes, err = rec.Int(section, i, "total_upvotes"); err != nil {
			return nil, err
		}
		if item.TotalComments, err = rec.Int(section, i, "total_comments"); err != nil {
			return nil, err
		}
		if item.TotalKarma, err = rec.Int(section, i, "total_karma"); err != nil {
			return nil, err
		}
		if item.AvgEngagementRate, err = rec.Number(section, i, "avg_engagement_rate"); err != nil {
			return nil, err
		}
		if item.AvgEngagementRate > 100 {
			return nil, NewShapeErrorAt(section, "avg_engagement_rate", i, "percentage above 100")
		}

		if item.CTR, err = optionalPtr(rec, section, i, "ctr"); err != nil {
			return nil, err
		}
		if item.AvgUpvoteRate, err = optionalPtr(rec, section, i, "avg_upvote_rate"); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

// DecodeOrganicDailyMetrics converte os registros de organic.daily_metrics
func DecodeOrganicDailyMetrics(records []Record) ([]OrganicDailyMetric, error) {
	const section = SectionOrganicDailyMetrics

	items := make([]OrganicDailyMetric, 0, len(records))
	for i, rec := range records {
		var (
			item OrganicDailyMetric
			date time.Time
			err  error
		)

		if date, err = rec.Date(section, i, "date"); err != nil {
			return nil, err
		}
		item.Date = date.Format(time.DateOnly)
		if item.Posts, err = rec.Int(section, i, "posts"); err != nil {
			return nil, err
		}
		if item.Clicks, err = rec.Int(section, i, "clicks"); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

// DecodeKarmaVelocity converte os registros de organic.karma_velocity
func DecodeKarmaVelocity(records []Record) ([]KarmaVelocityPoint, error) {
	const section = SectionOrganicKarmaVelocity

	items := make([]KarmaVelocityPoint, 0, len(records))
	for i, rec := range records {
		var (
			item KarmaVelocityPoint
			date time.Time
			err  error
		)

		if date, err = rec.Date(section, i, "date"); err != nil {
			return nil, err
		}
		item.Date = date.Format(time.DateOnly)
		if item.AccountName, err = rec.String(section, i, "account_name"); err != nil {
			return nil, err
		}
		if item.KarmaVelocity, err = rec.Number(section, i, "karma_velocity"); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

// DecodeTopPosts converte os registros de organic.top_posts
func DecodeTopPosts(records []Record) ([]TopPost, error) {
	const section = SectionOrganicTopPosts

	items := make([]TopPost, 0, len(records))
	for i, rec := range records {
		var (
			item TopPost
			err  error
		)

		if item.Title, err = rec.String(section, i, "title"); err != nil {
			return nil, err
		}
		if item.Subreddit, err = rec.String(section, i, "subreddit"); err != nil {
			return nil, err
		}
		if item.Upvotes, err = rec.Int(section, i, "upvotes"); err != nil {
			return nil, err
		}
		if item.Comments, err = rec.Int(section, i, "comments"); err != nil {
			return nil, err
		}
		if item.EngagementRate, err = rec.Number(section, i, "engagement_rate"); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

func optionalPtr(rec Record, section string, index int, field string) (*float64, error) {
	value, ok, err := rec.OptionalNumber(section, index, field)
	if err != nil || !ok {
		return nil, err
	}
	return &value, nil
}
