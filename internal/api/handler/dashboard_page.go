package handler

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"net/url"

	"github.com/vfg2006/sales-flash-api/internal/domain"
	"github.com/vfg2006/sales-flash-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-flash-api/pkg/apiErrors"
	"github.com/vfg2006/sales-flash-api/pkg/log"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/flash.html"))

// dashboardPage reúne os dados exibidos na página do flash
type dashboardPage struct {
	PageTitle string
	Dashboard *domain.Dashboard
	ChartURL  string
	Error     string
	ErrorCode string
}

// DashboardPage renderiza o flash de vendas em HTML. Erros de leitura da
// planilha viram um painel de erro na própria página.
func DashboardPage(service reporting.Reporter, pageTitle string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		month := r.URL.Query().Get("month")

		page := dashboardPage{PageTitle: pageTitle}
		status := http.StatusOK

		dashboard, err := service.BuildDashboard(r.Context(), month)
		if err != nil {
			page.ErrorCode = errorCode(err)
			page.Error = err.Error()
			status = apiErrors.StatusFor(page.ErrorCode)
			logger.WithError(err).WithField("code", page.ErrorCode).Warn("flash-page: flash de vendas indisponível")
		} else {
			page.Dashboard = dashboard
			page.ChartURL = "/v1/sales/flash/chart.png?" + url.Values{"month": {dashboard.SelectedMonth}}.Encode()
		}

		var buf bytes.Buffer
		if err := pageTemplate.Execute(&buf, page); err != nil {
			logger.WithError(err).Error("flash-page: erro ao renderizar a página")
			http.Error(w, "Erro ao renderizar a página", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		if _, err := w.Write(buf.Bytes()); err != nil {
			logger.WithError(err).Warn("flash-page: erro ao enviar a página")
		}
	})
}
