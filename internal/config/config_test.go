package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Setenv("METRICS_DOCUMENT_PATH", "/srv/recho/reddit_metrics.json")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://console.recho.io,http://localhost:3000")
	t.Setenv("DOCUMENT_WATCH_DEBOUNCE", "500ms")
	t.Setenv("DOCUMENT_RELOAD_ENABLED", "true")
	t.Setenv("DEFAULT_TOP_N", "0")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "/srv/recho/reddit_metrics.json", cfg.Document.Path)
	assert.Equal(t, []string{"https://console.recho.io", "http://localhost:3000"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, 500*time.Millisecond, cfg.DocumentWatch.Debounce)
	assert.True(t, cfg.DocumentReload.Enabled)
	assert.Equal(t, "*/15 * * * *", cfg.DocumentReload.CronSchedule)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)

	// Valor inválido volta para o padrão
	assert.Equal(t, 10, cfg.Dashboard.DefaultTopN)
}
