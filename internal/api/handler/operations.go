package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/operation-metrics-api/internal/usecases/reporting"
	"github.com/vfg2006/operation-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/operation-metrics-api/pkg/log"
)

// ListOperations enumera as operações disponíveis para o dashboard
func ListOperations(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("operations: listing operations")

		operations, err := service.ListOperations()
		if err != nil {
			logger.WithField("error", err.Error()).Error("operations: failed to list operations")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar operações", nil)
			return
		}

		logger.WithField("count", len(operations)).Info("operations: successfully listed operations")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(operations); err != nil {
			logger.WithField("error", err.Error()).Error("operations: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
