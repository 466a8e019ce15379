package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/recho-console/infrastructure/repository"
	"github.com/vfg2006/recho-console/internal/config"
)

// DocumentReloadConfig representa a configuração do agendador de recarga do documento
type DocumentReloadConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// DocumentReloadService gerencia a recarga periódica do documento de métricas
type DocumentReloadService struct {
	scheduler           *gocron.Scheduler
	config              DocumentReloadConfig
	documentRepo        repository.DocumentRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSnapshotID      string
	lastError           string
}

// NewDocumentReloadService cria uma nova instância do serviço de recarga do documento
func NewDocumentReloadService(documentRepo repository.DocumentRepository, appConfig *config.Config) *DocumentReloadService {
	reloadConfig := DocumentReloadConfig{
		CronSchedule: appConfig.DocumentReload.CronSchedule,
		SyncEnabled:  appConfig.DocumentReload.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reloadConfig.CronSchedule,
		"sync_enabled":  reloadConfig.SyncEnabled,
		"document_path": appConfig.Document.Path,
	}).Info("Configuração do agendador de recarga do documento carregada")

	return &DocumentReloadService{
		scheduler:    gocron.NewScheduler(time.Local),
		config:       reloadConfig,
		documentRepo: documentRepo,
	}
}

// Start inicia o agendador
func (s *DocumentReloadService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Recarga agendada do documento desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga do documento")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.reloadDocument(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do documento: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga do documento")
		s.scheduler.Stop()
	}()

	return nil
}

// reloadDocument relê o documento; se já houver uma recarga em andamento a chamada é ignorada
func (s *DocumentReloadService) reloadDocument(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recarga do documento já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	snapshot, err := s.documentRepo.Reload(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	if err != nil {
		s.lastError = err.Error()
		logrus.WithError(err).Error("Erro na recarga agendada do documento, mantendo o snapshot anterior")
		return
	}

	s.lastError = ""
	s.lastSnapshotID = snapshot.ID
	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"snapshot_id": snapshot.ID,
		"duration":    s.lastSyncCompletedAt.Sub(s.lastSyncStartedAt).String(),
	}).Info("Recarga agendada do documento concluída")
}

// TriggerManualSync inicia manualmente uma recarga do documento
func (s *DocumentReloadService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recarga do documento já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recarga manual do documento")
	go s.reloadDocument(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *DocumentReloadService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_snapshot_id":       s.lastSnapshotID,
		"last_error":             s.lastError,
	}
}
