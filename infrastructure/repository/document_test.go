package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/recho-console/infrastructure/metricsfile"
	"github.com/vfg2006/recho-console/internal/domain"
	"github.com/vfg2006/recho-console/internal/telemetry"
)

const (
	documentV1 = `{"brand": {"sentiment_ratio": 60, "mention_trend": [{"date": "2024-03-01", "mention_count": 3}]}}`
	documentV2 = `{"brand": {"sentiment_ratio": 75, "mention_trend": []}}`
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func sentimentRatio(t *testing.T, snapshot *domain.Snapshot) float64 {
	t.Helper()
	ratio, err := snapshot.Document.Scalar(domain.FieldBrandSentimentRatio)
	require.NoError(t, err)
	return ratio
}

// metricValue lê o valor atual de um contador ou gauge
func metricValue(t *testing.T, metric prometheus.Metric) float64 {
	t.Helper()

	var m dto.Metric
	require.NoError(t, metric.Write(&m))
	if m.Counter != nil {
		return m.GetCounter().GetValue()
	}
	return m.GetGauge().GetValue()
}

func newRepository(t *testing.T) (DocumentRepository, string, *telemetry.Metrics) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "reddit_metrics.json")
	metrics := telemetry.NewMetrics()
	return NewDocumentRepository(path, metricsfile.NewFileLoader(), metrics), path, metrics
}

func TestDocumentRepository_CurrentLoadsOnce(t *testing.T) {
	repo, path, metrics := newRepository(t)
	writeFile(t, path, documentV1)

	first, err := repo.Current(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, path, first.Path)
	assert.Equal(t, 60.0, sentimentRatio(t, first))

	// Alterar o arquivo não muda o snapshot até uma recarga explícita
	writeFile(t, path, documentV2)

	second, err := repo.Current(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1.0, metricValue(t, metrics.DocumentLoads.WithLabelValues("success")))
	assert.Equal(t, 1.0, metricValue(t, metrics.DocumentRecords.WithLabelValues(domain.SectionBrandMentionTrend)))
}

func TestDocumentRepository_Reload(t *testing.T) {
	repo, path, _ := newRepository(t)
	writeFile(t, path, documentV1)

	first, err := repo.Current(context.Background())
	require.NoError(t, err)

	writeFile(t, path, documentV2)

	reloaded, err := repo.Reload(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, reloaded.ID)
	assert.Equal(t, 75.0, sentimentRatio(t, reloaded))

	current, err := repo.Current(context.Background())
	require.NoError(t, err)
	assert.Same(t, reloaded, current)

	// O snapshot antigo continua consistente para quem ainda o segura
	assert.Equal(t, 60.0, sentimentRatio(t, first))
}

func TestDocumentRepository_FailedReloadKeepsPreviousSnapshot(t *testing.T) {
	repo, path, metrics := newRepository(t)
	writeFile(t, path, documentV1)

	first, err := repo.Current(context.Background())
	require.NoError(t, err)

	writeFile(t, path, `{"brand": `)

	_, err = repo.Reload(context.Background())
	assert.ErrorIs(t, err, metricsfile.ErrMalformedDocument)

	current, err := repo.Current(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, current)
	assert.Equal(t, 1.0, metricValue(t, metrics.DocumentLoads.WithLabelValues("error")))
}

func TestDocumentRepository_Invalidate(t *testing.T) {
	repo, path, _ := newRepository(t)
	writeFile(t, path, documentV1)

	first, err := repo.Current(context.Background())
	require.NoError(t, err)

	writeFile(t, path, documentV2)
	repo.Invalidate()

	current, err := repo.Current(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, current.ID)
	assert.Equal(t, 75.0, sentimentRatio(t, current))

	t.Run("Sem arquivo após invalidar retorna erro", func(t *testing.T) {
		require.NoError(t, os.Remove(path))
		repo.Invalidate()

		snapshot, err := repo.Current(context.Background())
		assert.Nil(t, snapshot)
		assert.True(t, errors.Is(err, metricsfile.ErrDocumentNotFound))
	})
}

func TestDocumentRepository_CanceledContext(t *testing.T) {
	repo, path, _ := newRepository(t)
	writeFile(t, path, documentV1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Reload(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDocumentRepository_ConcurrentReadersSeeWholeSnapshots(t *testing.T) {
	repo, path, _ := newRepository(t)
	writeFile(t, path, documentV1)

	_, err := repo.Current(context.Background())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()
			_, _ = repo.Reload(context.Background())
		}()

		go func() {
			defer wg.Done()
			snapshot, err := repo.Current(context.Background())
			if assert.NoError(t, err) {
				ratio, err := snapshot.Document.Scalar(domain.FieldBrandSentimentRatio)
				assert.NoError(t, err)
				assert.Equal(t, 60.0, ratio)
			}
		}()
	}
	wg.Wait()
}
