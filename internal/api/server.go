package api

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-flash-api/infrastructure/chart"
	"github.com/vfg2006/sales-flash-api/internal/api/handler"
	"github.com/vfg2006/sales-flash-api/internal/api/handler/router"
	"github.com/vfg2006/sales-flash-api/internal/config"
	"github.com/vfg2006/sales-flash-api/internal/scheduler"
	"github.com/vfg2006/sales-flash-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-flash-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// NewHandler monta o roteador com a cadeia de middlewares da aplicação
func NewHandler(
	config *config.Config,
	reportService reporting.Reporter,
	renderer chart.Renderer,
	refreshService *scheduler.SpreadsheetRefreshService,
) http.Handler {
	cronServices := handler.CronJobServices{
		SpreadsheetRefreshService: refreshService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Pages(reportService, config.App.PageTitle)...),
		router.WithRoutes(handler.SalesFlash(reportService, renderer)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(
	config *config.Config,
	reportService reporting.Reporter,
	renderer chart.Renderer,
	refreshService *scheduler.SpreadsheetRefreshService,
) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              config.Address(),
			Handler:           NewHandler(config, reportService, renderer, refreshService),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
