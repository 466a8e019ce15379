package ranking

import (
	"sort"

	"github.com/vfg2006/recho-console/internal/domain"
)

// TopN retorna uma cópia dos itens ordenada de forma decrescente pela chave,
// truncada nos n primeiros. Empates mantêm a ordem de entrada (ordenação estável).
// n <= 0 retorna todos os itens ordenados.
func TopN[T any](items []T, n int, key func(T) float64) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		return key(sorted[i]) > key(sorted[j])
	})

	if n > 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// Rank aplica TopN e numera as posições a partir de 1
func Rank[T any](items []T, n int, name func(T) string, key func(T) float64) []domain.RankingItem {
	top := TopN(items, n, key)

	ranking := make([]domain.RankingItem, 0, len(top))
	for i, item := range top {
		ranking = append(ranking, domain.RankingItem{
			Position: i + 1,
			Name:     name(item),
			Value:    key(item),
			Item:     item,
		})
	}
	return ranking
}
