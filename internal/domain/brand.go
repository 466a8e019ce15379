package domain

import "time"

// SubredditMentions é uma linha de brand.by_subreddit
type SubredditMentions struct {
	Subreddit    string `json:"subreddit"`
	MentionCount int    `json:"mention_count"`
}

// SentimentBucket é uma linha de brand.sentiment_distribution
type SentimentBucket struct {
	Sentiment    string `json:"sentiment"`
	MentionCount int    `json:"mention_count"`
}

// SentimentShare é a participação percentual de um sentimento
type SentimentShare struct {
	Sentiment    string  `json:"sentiment"`
	MentionCount int     `json:"mention_count"`
	Share        float64 `json:"share"`
}

// MentionPoint é uma linha de brand.mention_trend
type MentionPoint struct {
	Date         string `json:"date"`
	MentionCount int    `json:"mention_count"`
}

// DecodeSubredditMentions converte os registros de brand.by_subreddit
func DecodeSubredditMentions(records []Record) ([]SubredditMentions, error) {
	const section = SectionBrandBySubreddit

	items := make([]SubredditMentions, 0, len(records))
	for i, rec := range records {
		var (
			item SubredditMentions
			err  error
		)

		if item.Subreddit, err = rec.String(section, i, "subreddit"); err != nil {
			return nil, err
		}
		if item.MentionCount, err = rec.Int(section, i, "mention_count"); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

// DecodeSentimentBuckets converte os registros de brand.sentiment_distribution
func DecodeSentimentBuckets(records []Record) ([]SentimentBucket, error) {
	const section = SectionBrandSentiment

	items := make([]SentimentBucket, 0, len(records))
	for i, rec := range records {
		var (
			item SentimentBucket
			err  error
		)

		if item.Sentiment, err = rec.String(section, i, "sentiment"); err != nil {
			return nil, err
		}
		if item.MentionCount, err = rec.Int(section, i, "mention_count"); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

// DecodeMentionTrend converte os registros de brand.mention_trend
func DecodeMentionTrend(records []Record) ([]MentionPoint, error) {
	const section = SectionBrandMentionTrend

	items := make([]MentionPoint, 0, len(records))
	for i, rec := range records {
		var (
			item MentionPoint
			date time.Time
			err  error
		)

		if date, err = rec.Date(section, i, "date"); err != nil {
			return nil, err
		}
		item.Date = date.Format(time.DateOnly)
		if item.MentionCount, err = rec.Int(section, i, "mention_count"); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}
