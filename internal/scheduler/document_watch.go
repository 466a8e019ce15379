package scheduler

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/recho-console/infrastructure/repository"
	"github.com/vfg2006/recho-console/internal/config"
)

// DocumentWatcher recarrega o documento quando o arquivo muda em disco.
// Vários eventos dentro da janela de debounce geram uma única recarga.
type DocumentWatcher struct {
	documentRepo repository.DocumentRepository
	path         string
	debounce     time.Duration
	enabled      bool

	mutex    sync.Mutex
	timer    *time.Timer
	reloads  int
	lastSeen time.Time
}

// NewDocumentWatcher cria o observador do arquivo de métricas
func NewDocumentWatcher(documentRepo repository.DocumentRepository, appConfig *config.Config) *DocumentWatcher {
	return &DocumentWatcher{
		documentRepo: documentRepo,
		path:         appConfig.Document.Path,
		debounce:     appConfig.DocumentWatch.Debounce,
		enabled:      appConfig.DocumentWatch.Enabled,
	}
}

// Start passa a observar o diretório do documento até o contexto ser cancelado
func (w *DocumentWatcher) Start(ctx context.Context) error {
	if !w.enabled {
		logrus.Info("Observação do arquivo de métricas desabilitada por configuração")
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("erro ao criar observador do documento: %w", err)
	}

	// Observa o diretório para acompanhar editores que substituem o arquivo (rename + create)
	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("erro ao observar o diretório %s: %w", dir, err)
	}

	logrus.WithFields(logrus.Fields{
		"path":     w.path,
		"debounce": w.debounce.String(),
	}).Info("Observando alterações do documento de métricas")

	go w.run(ctx, watcher)
	return nil
}

func (w *DocumentWatcher) run(ctx context.Context, watcher *fsnotify.Watcher) {
	defer watcher.Close()

	target := filepath.Clean(w.path)
	for {
		select {
		case <-ctx.Done():
			w.stopTimer()
			logrus.Info("Parando observação do documento de métricas")
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.schedule(ctx)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logrus.WithError(err).Error("Erro no observador do documento de métricas")
		}
	}
}

// schedule agenda (ou reinicia) a recarga após a janela de debounce
func (w *DocumentWatcher) schedule(ctx context.Context) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	w.lastSeen = time.Now()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.reload(ctx)
	})
}

func (w *DocumentWatcher) reload(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	snapshot, err := w.documentRepo.Reload(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao recarregar documento alterado, mantendo o snapshot anterior")
		return
	}

	w.mutex.Lock()
	w.reloads++
	w.mutex.Unlock()

	logrus.WithField("snapshot_id", snapshot.ID).Info("Documento de métricas recarregado após alteração no arquivo")
}

func (w *DocumentWatcher) stopTimer() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
}

// GetStatus retorna o status atual do observador
func (w *DocumentWatcher) GetStatus() map[string]any {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	return map[string]any{
		"watch_enabled":    w.enabled,
		"watch_path":       w.path,
		"watch_debounce":   w.debounce.String(),
		"reloads":          w.reloads,
		"last_change_seen": w.lastSeen,
	}
}
