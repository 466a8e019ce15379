package handler

import (
	"net/http"

	"github.com/vfg2006/recho-console/infrastructure/repository"
	"github.com/vfg2006/recho-console/internal/telemetry"
	"github.com/vfg2006/recho-console/pkg/log"
)

// GetDocument retorna as informações do snapshot atual do documento
func GetDocument(repo repository.DocumentRepository, metrics *telemetry.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		snapshot, err := repo.Current(ctx)
		if err != nil {
			writeServiceError(ctx, w, metrics, err)
			return
		}

		writeJSON(ctx, w, snapshot.Info())
	}
}

// ReloadDocument relê o documento agora. Em caso de erro o snapshot anterior é mantido.
func ReloadDocument(repo repository.DocumentRepository, metrics *telemetry.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		snapshot, err := repo.Reload(ctx)
		if err != nil {
			writeServiceError(ctx, w, metrics, err)
			return
		}

		log.ForContext(ctx).WithField("snapshot_id", snapshot.ID).Info("document: recarregado manualmente")
		writeJSON(ctx, w, snapshot.Info())
	}
}

// InvalidateDocument descarta o snapshot atual; a próxima consulta carrega o documento de novo
func InvalidateDocument(repo repository.DocumentRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		repo.Invalidate()

		writeJSON(r.Context(), w, map[string]any{
			"message": "Snapshot do documento invalidado",
		})
	}
}
