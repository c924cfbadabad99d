// Package scheduler contém os serviços de agendamento da aplicação
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-flash-api/infrastructure/spreadsheet"
	"github.com/vfg2006/sales-flash-api/internal/config"
)

// ErrRefreshRunning indica que já existe uma releitura em andamento
var ErrRefreshRunning = errors.New("releitura da planilha já em andamento")

type SpreadsheetRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// SpreadsheetRefreshService relê a planilha periodicamente para manter o cache
// aquecido e registrar falhas de leitura antes da próxima requisição
type SpreadsheetRefreshService struct {
	scheduler *gocron.Scheduler
	cache     spreadsheet.Cache
	config    SpreadsheetRefreshConfig

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastVersion         string
	lastError           string
}

func NewSpreadsheetRefreshService(cache spreadsheet.Cache, cfg *config.Config) *SpreadsheetRefreshService {
	refreshConfig := SpreadsheetRefreshConfig{
		CronSchedule: cfg.Spreadsheet.RefreshCron, // Default: a cada 5 minutos
		Enabled:      cfg.Spreadsheet.RefreshEnabled,
	}

	location := cfg.App.Location
	if location == nil {
		location = time.Local
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"enabled":       refreshConfig.Enabled,
	}).Info("Configuração do agendador de releitura da planilha carregada")

	return &SpreadsheetRefreshService{
		scheduler: gocron.NewScheduler(location),
		cache:     cache,
		config:    refreshConfig,
	}
}

func (s *SpreadsheetRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Releitura periódica da planilha desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de releitura da planilha")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RefreshSpreadsheet(ctx); err != nil && !errors.Is(err, ErrRefreshRunning) {
			logrus.WithError(err).Error("Erro na releitura da planilha")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar releitura da planilha: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de releitura da planilha")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshSpreadsheet descarta o cache e lê a planilha novamente
func (s *SpreadsheetRefreshService) RefreshSpreadsheet(ctx context.Context) error {
	if !s.begin() {
		logrus.Warn("Releitura da planilha já está em execução")
		return ErrRefreshRunning
	}

	return s.refresh(ctx)
}

// TriggerManualRefresh reserva a execução e inicia a releitura em segundo plano
func (s *SpreadsheetRefreshService) TriggerManualRefresh() error {
	if !s.begin() {
		logrus.Info("Releitura da planilha já em andamento, ignorando solicitação manual")
		return ErrRefreshRunning
	}

	logrus.Info("Iniciando releitura manual da planilha")
	go func() {
		if err := s.refresh(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na releitura manual da planilha")
		}
	}()

	return nil
}

// refresh executa a releitura. A execução já deve ter sido reservada por begin.
func (s *SpreadsheetRefreshService) refresh(ctx context.Context) (err error) {
	var version string
	defer func() { s.finish(version, err) }()

	logrus.Info("Iniciando releitura da planilha")

	s.cache.Invalidate()

	table, err := s.cache.Load(ctx)
	if err != nil {
		return err
	}
	version = table.Version

	logrus.WithFields(logrus.Fields{
		"version": table.Version,
		"rows":    len(table.Rows),
	}).Info("Releitura da planilha concluída")

	return nil
}

// GetStatus retorna o status atual do agendador e do cache
func (s *SpreadsheetRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"refresh_enabled":        s.config.Enabled,
		"refresh_cron":           s.config.CronSchedule,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_version":           s.lastVersion,
		"last_error":             s.lastError,
		"cache":                  s.cache.Status(),
	}
}

func (s *SpreadsheetRefreshService) begin() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

func (s *SpreadsheetRefreshService) finish(version string, err error) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
		return
	}
	s.lastVersion = version
}
