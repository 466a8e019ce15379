package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/recho-console/internal/scheduler"
	"github.com/vfg2006/recho-console/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeDocumentReload = "document-reload"
)

// CronJobServices contém os serviços de recarga do documento
type CronJobServices struct {
	DocumentReloadService *scheduler.DocumentReloadService
	DocumentWatcher       *scheduler.DocumentWatcher
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		switch cronType {
		case CronJobTypeDocumentReload:
			if services.DocumentReloadService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de recarga do documento não disponível", nil)
				return
			}
			services.DocumentReloadService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: document-reload", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.DocumentReloadService != nil {
			status[CronJobTypeDocumentReload] = services.DocumentReloadService.GetStatus()
		}
		if services.DocumentWatcher != nil {
			status["document-watch"] = services.DocumentWatcher.GetStatus()
		}

		writeJSON(r.Context(), w, status)
	}
}
