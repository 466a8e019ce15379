// Package repository contém o acesso ao documento de métricas carregado
package repository

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/recho-console/infrastructure/metricsfile"
	"github.com/vfg2006/recho-console/internal/domain"
	"github.com/vfg2006/recho-console/internal/telemetry"
	"github.com/vfg2006/recho-console/pkg/utils"
)

// DocumentRepository guarda a versão atual do documento de métricas.
// Cada consulta deve pegar um único snapshot e calcular tudo sobre ele.
type DocumentRepository interface {
	// Current retorna o snapshot atual, carregando o documento se ainda não houver um
	Current(ctx context.Context) (*domain.Snapshot, error)
	// Reload relê o documento e troca o snapshot atual de uma só vez
	Reload(ctx context.Context) (*domain.Snapshot, error)
	// Invalidate descarta o snapshot atual; a próxima consulta recarrega o documento
	Invalidate()
}

type documentRepository struct {
	path    string
	loader  metricsfile.Loader
	metrics *telemetry.Metrics

	current     atomic.Pointer[domain.Snapshot]
	reloadMutex sync.Mutex
}

// NewDocumentRepository cria o repositório do documento localizado em path
func NewDocumentRepository(path string, loader metricsfile.Loader, metrics *telemetry.Metrics) DocumentRepository {
	return &documentRepository{
		path:    path,
		loader:  loader,
		metrics: metrics,
	}
}

func (r *documentRepository) Current(ctx context.Context) (*domain.Snapshot, error) {
	if snapshot := r.current.Load(); snapshot != nil {
		return snapshot, nil
	}

	r.reloadMutex.Lock()
	defer r.reloadMutex.Unlock()

	// Outra requisição pode ter carregado enquanto esperávamos o lock
	if snapshot := r.current.Load(); snapshot != nil {
		return snapshot, nil
	}

	return r.load(ctx)
}

func (r *documentRepository) Reload(ctx context.Context) (*domain.Snapshot, error) {
	r.reloadMutex.Lock()
	defer r.reloadMutex.Unlock()

	return r.load(ctx)
}

func (r *documentRepository) Invalidate() {
	r.current.Store(nil)
	logrus.WithField("path", r.path).Info("Snapshot do documento de métricas invalidado")
}

// load lê o documento e publica o novo snapshot. Deve ser chamado com reloadMutex travado.
// Em caso de erro o snapshot anterior continua valendo.
func (r *documentRepository) load(ctx context.Context) (*domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	started := time.Now()

	doc, err := r.loader.Load(r.path)
	if err != nil {
		r.metrics.ObserveLoad(started, nil, err)
		logrus.WithError(err).WithField("path", r.path).Error("Erro ao carregar o documento de métricas")
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		r.metrics.ObserveLoad(started, nil, err)
		return nil, fmt.Errorf("repository: generating snapshot id: %w", err)
	}

	snapshot := &domain.Snapshot{
		ID:       id,
		Path:     r.path,
		LoadedAt: time.Now(),
		Document: doc,
	}

	info := snapshot.Info()
	r.current.Store(snapshot)
	r.metrics.ObserveLoad(started, info.Sections, nil)

	logrus.WithFields(logrus.Fields{
		"snapshot_id": snapshot.ID,
		"path":        r.path,
		"duration_ms": time.Since(started).Milliseconds(),
	}).Info("Documento de métricas carregado")

	return snapshot, nil
}
