package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/recho-console/internal/telemetry"
	"github.com/vfg2006/recho-console/internal/usecases/ranking"
	"github.com/vfg2006/recho-console/pkg/apiErrors"
	"github.com/vfg2006/recho-console/pkg/log"
)

// GetRanking retorna o TopN do tipo informado na rota
func GetRanking(service ranking.RankingService, defaultN int, metrics *telemetry.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := log.ForContext(ctx)

		kind := httprouter.ParamsFromContext(ctx).ByName("kind")

		n, err := parseTopN(r.URL.Query(), defaultN)
		if err != nil {
			metrics.ObserveQueryError("invalid_request")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		result, err := service.GetRanking(ctx, kind, n)
		if errors.Is(err, ranking.ErrUnknownKind) {
			logger.WithField("kind", kind).Warn("ranking: tipo inválido")
			metrics.ObserveQueryError("invalid_request")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
				"Tipo de ranking inválido. Valores aceitos: subreddits, posts, campaigns, accounts", nil)
			return
		}
		if err != nil {
			writeServiceError(ctx, w, metrics, err)
			return
		}

		writeJSON(ctx, w, result)
	}
}
