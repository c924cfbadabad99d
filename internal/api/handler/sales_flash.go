package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/vfg2006/sales-flash-api/infrastructure/chart"
	"github.com/vfg2006/sales-flash-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-flash-api/pkg/log"
)

// dashboardETag identifica o flash de um mês numa versão da planilha
func dashboardETag(version, month string) string {
	return fmt.Sprintf(`"%s-%s"`, version, month)
}

// GetSalesFlash retorna o flash de vendas do mês em JSON
func GetSalesFlash(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		month := r.URL.Query().Get("month")

		dashboard, err := service.BuildDashboard(r.Context(), month)
		if err != nil {
			writeReportError(w, err, logger)
			return
		}

		etag := dashboardETag(dashboard.DataVersion, dashboard.SelectedMonth)
		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "no-cache")

		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}

		logger.WithFields(log.Fields{
			"month":   dashboard.SelectedMonth,
			"orders":  len(dashboard.Orders),
			"version": dashboard.DataVersion,
		}).Info("sales-flash: flash de vendas gerado com sucesso")

		writeJSON(w, http.StatusOK, dashboard, logger)
	})
}

// GetSalesFlashChart retorna o gráfico de vendas por vendedor em PNG
func GetSalesFlashChart(service reporting.Reporter, renderer chart.Renderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		month := r.URL.Query().Get("month")

		dashboard, err := service.BuildDashboard(r.Context(), month)
		if err != nil {
			writeReportError(w, err, logger)
			return
		}

		var buf bytes.Buffer
		if err := renderer.Render(&buf, dashboard.Chart); err != nil {
			logger.WithError(err).WithField("month", dashboard.SelectedMonth).Error("sales-flash: erro ao gerar o gráfico")
			http.Error(w, "Erro ao gerar o gráfico", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("ETag", dashboardETag(dashboard.DataVersion, dashboard.SelectedMonth))
		if _, err := w.Write(buf.Bytes()); err != nil {
			logger.WithError(err).Warn("sales-flash: erro ao enviar o gráfico")
		}
	})
}

// GetAvailablePeriods retorna os meses disponíveis na planilha
func GetAvailablePeriods(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("sales-periods: buscando períodos disponíveis")

		periods, err := service.AvailableMonths(r.Context())
		if err != nil {
			writeReportError(w, err, logger)
			return
		}

		writeJSON(w, http.StatusOK, periods, logger)
	})
}
