package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostsPerWeek(t *testing.T) {
	tests := []struct {
		name     string
		posts    int
		ageDays  int
		expected float64
	}{
		{"Duas semanas com 14 posts", 14, 14, 7.0},
		{"Conta sem idade", 10, 0, 0},
		{"Idade negativa", 10, -3, 0},
		{"Arredonda para uma casa", 10, 3, 23.3},
		{"Sem posts", 0, 30, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PostsPerWeek(tt.posts, tt.ageDays))
		})
	}
}

func TestKarmaVelocity(t *testing.T) {
	tests := []struct {
		name     string
		karma    int
		ageDays  int
		expected int
	}{
		{"Uma semana com 700 de karma", 700, 7, 700},
		{"Conta sem idade", 700, 0, 0},
		{"Meio arredonda para o par (abaixo)", 5, 14, 2},
		{"Meio arredonda para o par (acima)", 7, 14, 4},
		{"Arredonda para o inteiro mais próximo", 100, 3, 233},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KarmaVelocity(tt.karma, tt.ageDays))
		})
	}
}

func TestRatiosGuardZeroDenominator(t *testing.T) {
	assert.Zero(t, BlendedROAS(500, 0))
	assert.Zero(t, ConversionRate(10, 0))
	assert.Zero(t, CostPerAcquisition(300, 0))

	assert.Equal(t, 2.5, BlendedROAS(500, 200))
	assert.Equal(t, 4.0, ConversionRate(80, 2000))
	assert.Equal(t, 30.0, CostPerAcquisition(1500, 50))
}

func TestClassifyROAS(t *testing.T) {
	tests := []struct {
		roas     float64
		expected ROASTier
	}{
		{7.2, ROASTierExcellent},
		{5.0, ROASTierExcellent},
		{4.99, ROASTierOnTarget},
		{3.0, ROASTierOnTarget},
		{2.99, ROASTierBelowTarget},
		{0, ROASTierBelowTarget},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ClassifyROAS(tt.roas), "roas %v", tt.roas)
	}
}

func TestCalculateSentimentShare(t *testing.T) {
	t.Run("Participação proporcional somando 100", func(t *testing.T) {
		shares := CalculateSentimentShare([]SentimentBucket{
			{Sentiment: "positive", MentionCount: 80},
			{Sentiment: "neutral", MentionCount: 15},
			{Sentiment: "negative", MentionCount: 5},
		})

		assert.Equal(t, []SentimentShare{
			{Sentiment: "positive", MentionCount: 80, Share: 80},
			{Sentiment: "neutral", MentionCount: 15, Share: 15},
			{Sentiment: "negative", MentionCount: 5, Share: 5},
		}, shares)
	})

	t.Run("Total zero resulta em participações zero", func(t *testing.T) {
		shares := CalculateSentimentShare([]SentimentBucket{
			{Sentiment: "positive", MentionCount: 0},
			{Sentiment: "negative", MentionCount: 0},
		})

		for _, share := range shares {
			assert.Zero(t, share.Share)
		}
	})

	t.Run("Sem categorias", func(t *testing.T) {
		assert.Empty(t, CalculateSentimentShare(nil))
	})
}
