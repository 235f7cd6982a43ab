package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/operation-metrics-api/internal/scheduler"
	"github.com/vfg2006/operation-metrics-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeSnapshotCleanup = "snapshot-cleanup"
	CronJobTypeRatesRefresh    = "rates-refresh"
	CronJobTypeAll             = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	SnapshotCleanupService *scheduler.SnapshotCleanupService
	RatesRefreshService    *scheduler.RatesRefreshService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		// Validar o tipo de cron job
		switch cronType {
		case CronJobTypeSnapshotCleanup:
			if services.SnapshotCleanupService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de limpeza de snapshots não disponível", nil)
				return
			}
			services.SnapshotCleanupService.TriggerManualSync()

		case CronJobTypeRatesRefresh:
			if services.RatesRefreshService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de atualização de taxas não disponível", nil)
				return
			}
			services.RatesRefreshService.TriggerManualSync()

		case CronJobTypeAll:
			if services.SnapshotCleanupService != nil {
				services.SnapshotCleanupService.TriggerManualSync()
			}
			if services.RatesRefreshService != nil {
				services.RatesRefreshService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: snapshot-cleanup, rates-refresh, all", nil)
			return
		}

		// Responder com sucesso
		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"snapshot-cleanup": services.SnapshotCleanupService.GetStatus(),
			"rates-refresh":    services.RatesRefreshService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
