package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scored struct {
	name  string
	score float64
}

func byScore(s scored) float64 { return s.score }

func names(items []scored) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.name)
	}
	return out
}

func TestTopN(t *testing.T) {
	items := []scored{
		{"a", 10},
		{"b", 30},
		{"c", 20},
		{"d", 30},
		{"e", 5},
	}

	tests := []struct {
		name     string
		n        int
		expected []string
	}{
		{"Top 3 com empate mantém a ordem de entrada", 3, []string{"b", "d", "c"}},
		{"N maior que a lista retorna todos", 10, []string{"b", "d", "c", "a", "e"}},
		{"N zero retorna todos ordenados", 0, []string{"b", "d", "c", "a", "e"}},
		{"Top 1", 1, []string{"b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, names(TopN(items, tt.n, byScore)))
		})
	}
}

func TestTopN_DoesNotMutateInput(t *testing.T) {
	items := []scored{{"a", 1}, {"b", 3}, {"c", 2}}

	_ = TopN(items, 2, byScore)

	assert.Equal(t, []string{"a", "b", "c"}, names(items))
}

func TestTopN_IsIdempotent(t *testing.T) {
	items := []scored{{"a", 2}, {"b", 2}, {"c", 9}, {"d", 1}, {"e", 2}}

	first := TopN(items, 4, byScore)
	second := TopN(first, 4, byScore)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"c", "a", "b", "e"}, names(first))
}

func TestTopN_Empty(t *testing.T) {
	assert.Empty(t, TopN([]scored{}, 5, byScore))
	assert.Empty(t, TopN[scored](nil, 5, byScore))
}

func TestRank(t *testing.T) {
	items := []scored{{"a", 1}, {"b", 3}, {"c", 2}}

	ranking := Rank(items, 2, func(s scored) string { return s.name }, byScore)

	require.Len(t, ranking, 2)
	assert.Equal(t, 1, ranking[0].Position)
	assert.Equal(t, "b", ranking[0].Name)
	assert.Equal(t, 3.0, ranking[0].Value)
	assert.Equal(t, scored{"b", 3}, ranking[0].Item)
	assert.Equal(t, 2, ranking[1].Position)
	assert.Equal(t, "c", ranking[1].Name)
}
