package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/recho-console/infrastructure/repository/mocks"
	"github.com/vfg2006/recho-console/internal/config"
	"github.com/vfg2006/recho-console/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestDocumentReloadService_reloadDocument(t *testing.T) {
	tests := []struct {
		name           string
		setup          func(repo *mocks.MockDocumentRepository)
		lastSnapshotID string
		lastError      string
	}{
		{
			name: "Recarga com sucesso registra o snapshot",
			setup: func(repo *mocks.MockDocumentRepository) {
				repo.EXPECT().
					Reload(gomock.Any()).
					Return(&domain.Snapshot{ID: "snap000001"}, nil).
					Times(1)
			},
			lastSnapshotID: "snap000001",
		},
		{
			name: "Falha na recarga registra o erro",
			setup: func(repo *mocks.MockDocumentRepository) {
				repo.EXPECT().
					Reload(gomock.Any()).
					Return(nil, errors.New("metrics document not found")).
					Times(1)
			},
			lastError: "metrics document not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockDocumentRepository(ctrl)
			tt.setup(repo)

			service := &DocumentReloadService{
				documentRepo: repo,
				config:       DocumentReloadConfig{CronSchedule: "*/5 * * * *", SyncEnabled: true},
			}

			service.reloadDocument(context.Background())

			status := service.GetStatus()
			assert.Equal(t, false, status["sync_running"])
			assert.Equal(t, tt.lastSnapshotID, status["last_snapshot_id"])
			assert.Equal(t, tt.lastError, status["last_error"])
		})
	}
}

func TestDocumentReloadService_SkipsWhenRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Sem EXPECT: qualquer chamada ao repositório falha o teste
	repo := mocks.NewMockDocumentRepository(ctrl)
	service := &DocumentReloadService{documentRepo: repo, syncRunning: true}

	service.reloadDocument(context.Background())
	service.TriggerManualSync()

	assert.Equal(t, true, service.GetStatus()["sync_running"])
}

func TestDocumentReloadService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{
		DocumentReload: config.DocumentReload{CronSchedule: "*/15 * * * *", Enabled: false},
	}
	service := NewDocumentReloadService(mocks.NewMockDocumentRepository(ctrl), cfg)

	assert.NoError(t, service.Start(context.Background()))
	assert.Equal(t, false, service.GetStatus()["sync_enabled"])
}
