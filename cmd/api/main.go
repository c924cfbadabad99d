package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-flash-api/infrastructure/chart"
	"github.com/vfg2006/sales-flash-api/infrastructure/spreadsheet"
	"github.com/vfg2006/sales-flash-api/internal/api"
	"github.com/vfg2006/sales-flash-api/internal/config"
	"github.com/vfg2006/sales-flash-api/internal/scheduler"
	"github.com/vfg2006/sales-flash-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var loader spreadsheet.Loader = spreadsheet.NewExcelLoader(cfg.Spreadsheet.Path, cfg.Spreadsheet.Sheet)

	var refreshService *scheduler.SpreadsheetRefreshService
	if cfg.Spreadsheet.CacheEnabled {
		cache := spreadsheet.NewCachedLoader(cfg.Spreadsheet.Path, loader)
		loader = cache

		refreshService = scheduler.NewSpreadsheetRefreshService(cache, cfg)
		if err := refreshService.Start(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar o agendador de releitura da planilha")
		} else {
			logrus.Info("Agendador de releitura da planilha iniciado com sucesso")
		}
	} else {
		logrus.Info("Cache da planilha desabilitado, cada requisição relê o arquivo")
	}

	// Primeira leitura apenas para avisar cedo sobre planilha ausente
	if _, err := loader.Load(ctx); err != nil {
		logrus.WithError(err).Warn("Planilha indisponível na inicialização")
	}

	reportService := reporting.NewService(cfg, loader)
	renderer := chart.NewBarChartRenderer(cfg.Chart.WidthCm, cfg.Chart.HeightCm)

	server, err := api.New(cfg, reportService, renderer, refreshService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
