package domain

import (
	"github.com/vfg2006/recho-console/pkg/utils"
)

// Meta de ROAS usada para classificar subreddits pagos
const ROASTarget = 3.0

// ROASTier classifica o ROAS de um subreddit em relação à meta
type ROASTier string

const (
	ROASTierExcellent   ROASTier = "excellent"
	ROASTierOnTarget    ROASTier = "on_target"
	ROASTierBelowTarget ROASTier = "below_target"
)

// BlendedROAS calcula receita / investimento (0 quando não há investimento)
func BlendedROAS(revenue, spend float64) float64 {
	return utils.SafeDivide(revenue, spend)
}

// ConversionRate calcula conversões / sessões em porcentagem (0 quando não há sessões)
func ConversionRate(conversions, sessions int) float64 {
	return utils.SafeDivide(float64(conversions)*100, float64(sessions))
}

// CostPerAcquisition calcula investimento / conversões (0 quando não há conversões)
func CostPerAcquisition(spend float64, conversions int) float64 {
	return utils.SafeDivide(spend, float64(conversions))
}

// weeks converte a idade da conta em semanas
func weeks(accountAgeDays int) float64 {
	return float64(accountAgeDays) / 7
}

// PostsPerWeek calcula posts por semana com uma casa decimal
func PostsPerWeek(totalPosts, accountAgeDays int) float64 {
	if accountAgeDays <= 0 {
		return 0
	}

	return utils.RoundHalfEven(float64(totalPosts)/weeks(accountAgeDays), 1)
}

// KarmaVelocity calcula o karma acumulado por semana, arredondado para o inteiro mais próximo
func KarmaVelocity(totalKarma, accountAgeDays int) int {
	if accountAgeDays <= 0 {
		return 0
	}

	return int(utils.RoundHalfEven(float64(totalKarma)/weeks(accountAgeDays), 0))
}

// ClassifyROAS classifica o ROAS: >= 5 excelente, >= meta dentro da meta, abaixo disso fora
func ClassifyROAS(roas float64) ROASTier {
	switch {
	case roas >= 5:
		return ROASTierExcellent
	case roas >= ROASTarget:
		return ROASTierOnTarget
	default:
		return ROASTierBelowTarget
	}
}

// CalculateSentimentShare calcula a participação de cada sentimento no total de menções.
// A ordem de entrada é preservada. Com total 0 todas as participações são 0.
func CalculateSentimentShare(buckets []SentimentBucket) []SentimentShare {
	total := 0
	for _, bucket := range buckets {
		total += bucket.MentionCount
	}

	shares := make([]SentimentShare, 0, len(buckets))
	for _, bucket := range buckets {
		shares = append(shares, SentimentShare{
			Sentiment:    bucket.Sentiment,
			MentionCount: bucket.MentionCount,
			Share:        utils.SafeDivide(float64(bucket.MentionCount)*100, float64(total)),
		})
	}

	return shares
}
