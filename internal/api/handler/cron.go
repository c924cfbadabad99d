package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/sales-flash-api/internal/scheduler"
	"github.com/vfg2006/sales-flash-api/pkg/apiErrors"
	"github.com/vfg2006/sales-flash-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeRefresh = "refresh"
	CronJobTypeAll     = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	SpreadsheetRefreshService *scheduler.SpreadsheetRefreshService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeRefresh, CronJobTypeAll:
			if services.SpreadsheetRefreshService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de releitura da planilha não disponível", nil)
				return
			}
			if err := services.SpreadsheetRefreshService.TriggerManualRefresh(); err != nil {
				if errors.Is(err, scheduler.ErrRefreshRunning) {
					apiErrors.WriteError(w, apiErrors.ErrJobAlreadyRunning, err.Error(), nil)
					return
				}
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: refresh, all", nil)
			return
		}

		logger.WithField("type", cronType).Info("cron: execução manual iniciada")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}, logger)
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		status := map[string]any{}
		if services.SpreadsheetRefreshService != nil {
			status[CronJobTypeRefresh] = services.SpreadsheetRefreshService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status, logger)
	})
}
