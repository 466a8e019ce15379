package handler

import (
	"context"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/recho-console/infrastructure/metricsfile"
	"github.com/vfg2006/recho-console/internal/domain"
	"github.com/vfg2006/recho-console/internal/telemetry"
	"github.com/vfg2006/recho-console/pkg/apiErrors"
	"github.com/vfg2006/recho-console/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON envia a resposta com status 200
func writeJSON(ctx context.Context, w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao enviar resposta")
	}
}

// errorKind classifica o erro para a resposta e para as métricas de consulta
func errorKind(err error) (code, kind string) {
	switch {
	case errors.Is(err, domain.ErrMissingField):
		return apiErrors.ErrMissingField, "missing_field"
	case errors.Is(err, domain.ErrInvalidShape):
		return apiErrors.ErrInvalidShape, "invalid_shape"
	case errors.Is(err, domain.ErrDivisionByZero):
		return apiErrors.ErrDivisionByZero, "division_by_zero"
	case errors.Is(err, metricsfile.ErrDocumentNotFound):
		return apiErrors.ErrDocumentNotFound, "document_not_found"
	case errors.Is(err, metricsfile.ErrMalformedDocument):
		return apiErrors.ErrMalformedDocument, "malformed_document"
	default:
		return apiErrors.ErrInternalServer, "internal"
	}
}

// metricErrorDetails expõe seção, campo e índice do registro que falhou
func metricErrorDetails(err error) map[string]any {
	var metricErr *domain.MetricError
	if !errors.As(err, &metricErr) {
		return nil
	}

	details := map[string]any{"section": metricErr.Section}
	if metricErr.Field != "" {
		details["field"] = metricErr.Field
	}
	if metricErr.Index >= 0 {
		details["index"] = metricErr.Index
	}
	return details
}

// writeServiceError traduz o erro do serviço para a resposta padronizada.
// Nunca envia agregados parciais: qualquer erro descarta a resposta inteira.
func writeServiceError(ctx context.Context, w http.ResponseWriter, metrics *telemetry.Metrics, err error) {
	code, kind := errorKind(err)
	metrics.ObserveQueryError(kind)

	logger := log.ForContext(ctx).WithError(err).WithField("kind", kind)
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logger.Error("Erro ao calcular métricas")
	} else {
		logger.Warn("Documento de métricas com dados inválidos")
	}

	apiErrors.WriteError(w, code, err.Error(), metricErrorDetails(err))
}
