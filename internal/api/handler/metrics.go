package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/operation-metrics-api/internal/domain"
	"github.com/vfg2006/operation-metrics-api/internal/usecases/reporting"
	"github.com/vfg2006/operation-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/operation-metrics-api/pkg/log"
	"github.com/vfg2006/operation-metrics-api/pkg/utils"
)

// GetOperationMetrics resolve o contrato de consulta de métricas:
// `period` simbólico ou `start_date`/`end_date` explícitos, com filtros
// opcionais de canal e produto. Datas explícitas e filtro de produto
// nunca passam pelo cache.
func GetOperationMetrics(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		operationID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("operation_id", operationID).Info("metrics: fetching operation metrics")

		query, err := buildMetricsQuery(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"operation_id": operationID,
				"error":        err.Error(),
			}).Warn("metrics: invalid query parameters")

			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
			return
		}

		request := domain.MetricsRequest{
			OperationID: operationID,
			Query:       query,
		}

		snapshot, err := service.GetMetrics(r.Context(), request)
		if err != nil {
			logger.WithFields(log.Fields{
				"operation_id": operationID,
				"error":        err.Error(),
			}).Error("metrics: failed to get metrics for operation")

			switch {
			case errors.Is(err, reporting.ErrInvalidPeriod):
				apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Período solicitado inválido", nil)
			case errors.Is(err, reporting.ErrTransientStore):
				apiErrors.WriteError(w, apiErrors.ErrMetricsStore, "Falha transitória na consulta, tente novamente", nil)
			default:
				apiErrors.WriteError(w, apiErrors.ErrMetricsComputation, "Erro ao calcular as métricas", nil)
			}
			return
		}

		logger.WithFields(log.Fields{
			"operation_id": operationID,
			"period":       snapshot.Period,
			"total_orders": snapshot.TotalOrders,
		}).Info("metrics: successfully retrieved operation metrics")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			logger.WithFields(log.Fields{
				"operation_id": operationID,
				"error":        err.Error(),
			}).Error("metrics: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// buildMetricsQuery converte os parâmetros da URL na forma canônica da
// consulta. Intervalo explícito tem precedência sobre a tag simbólica.
func buildMetricsQuery(r *http.Request) (domain.MetricsQuery, error) {
	params := r.URL.Query()

	var provider *string
	if value := params.Get("provider"); value != "" {
		provider = &value
	}

	startRaw := params.Get("start_date")
	endRaw := params.Get("end_date")

	if startRaw != "" || endRaw != "" {
		startDate, err := utils.ParseDate(startRaw)
		if err != nil {
			return nil, errors.Wrap(err, "start_date inválido")
		}

		endDate, err := utils.ParseDate(endRaw)
		if err != nil {
			return nil, errors.Wrap(err, "end_date inválido")
		}

		if startRaw == "" || endRaw == "" {
			return nil, errors.New("start_date e end_date devem ser informados juntos")
		}

		var productID *string
		if value := params.Get("product_id"); value != "" {
			productID = &value
		}

		return domain.ByRange{
			From:      *startDate,
			To:        *endDate,
			Provider:  provider,
			ProductID: productID,
		}, nil
	}

	tag := params.Get("period")
	if tag == "" {
		tag = domain.PeriodLast7Days
	}

	if !domain.ValidPeriodTag(tag) {
		return nil, errors.Errorf("período desconhecido: %s", tag)
	}

	if params.Get("product_id") != "" {
		// Filtro de produto fora da rotação do dashboard exige intervalo explícito
		return nil, errors.New("product_id exige start_date e end_date explícitos")
	}

	return domain.ByPeriod{
		Tag:      tag,
		Provider: provider,
	}, nil
}

// InvalidateMetricsCache descarta todos os snapshots cacheados. Rota
// administrativa para depois de reprocessamentos de custo.
func InvalidateMetricsCache(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("metrics: invalidating snapshot cache")

		removed, err := service.InvalidateCache()
		if err != nil {
			logger.WithField("error", err.Error()).Error("metrics: failed to invalidate snapshot cache")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao invalidar o cache de métricas", nil)
			return
		}

		logger.WithField("removed", removed).Info("metrics: snapshot cache invalidated")

		w.Header().Set("Content-Type", "application/json")
		response := map[string]any{
			"message":        "Cache de métricas invalidado com sucesso",
			"removed":        removed,
			"invalidated_at": time.Now().UTC(),
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithField("error", err.Error()).Error("metrics: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
