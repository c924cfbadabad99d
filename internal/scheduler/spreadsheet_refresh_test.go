package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/sales-flash-api/infrastructure/spreadsheet/mocks"
	"github.com/vfg2006/sales-flash-api/internal/config"
	"github.com/vfg2006/sales-flash-api/internal/domain"
)

func newRefreshConfig(enabled bool) *config.Config {
	return &config.Config{
		App: config.App{Location: time.UTC},
		Spreadsheet: config.Spreadsheet{
			RefreshEnabled: enabled,
			RefreshCron:    "*/5 * * * *",
		},
	}
}

func TestSpreadsheetRefreshService_RefreshSpreadsheet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockCache(ctrl)
	service := NewSpreadsheetRefreshService(mockCache, newRefreshConfig(true))

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, err error, status map[string]any)
	}{
		{
			name: "Releitura com sucesso registra a versão",
			setup: func() {
				gomock.InOrder(
					mockCache.EXPECT().Invalidate(),
					mockCache.EXPECT().Load(gomock.Any()).Return(&domain.RawTable{Version: "v1", Rows: [][]string{{"1"}}}, nil),
				)
				mockCache.EXPECT().Status().Return(domain.SpreadsheetCacheStatus{Cached: true, Version: "v1"})
			},
			validate: func(t *testing.T, err error, status map[string]any) {
				require.NoError(t, err)
				assert.Equal(t, "v1", status["last_version"])
				assert.Equal(t, "", status["last_error"])
				assert.Equal(t, false, status["running"])
			},
		},
		{
			name: "Falha na leitura mantém a última versão e registra o erro",
			setup: func() {
				mockCache.EXPECT().Invalidate()
				mockCache.EXPECT().Load(gomock.Any()).Return(nil, errors.New("arquivo ausente"))
				mockCache.EXPECT().Status().Return(domain.SpreadsheetCacheStatus{})
			},
			validate: func(t *testing.T, err error, status map[string]any) {
				require.Error(t, err)
				assert.Equal(t, "v1", status["last_version"])
				assert.Equal(t, "arquivo ausente", status["last_error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			err := service.RefreshSpreadsheet(context.Background())
			tt.validate(t, err, service.GetStatus())
		})
	}
}

func TestSpreadsheetRefreshService_RunningGuard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewSpreadsheetRefreshService(mocks.NewMockCache(ctrl), newRefreshConfig(true))
	require.True(t, service.begin())

	assert.ErrorIs(t, service.RefreshSpreadsheet(context.Background()), ErrRefreshRunning)
	assert.ErrorIs(t, service.TriggerManualRefresh(), ErrRefreshRunning)

	service.finish("v2", nil)
	assert.False(t, service.syncRunning)
}

func TestSpreadsheetRefreshService_TriggerManualRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockCache(ctrl)
	mockCache.EXPECT().Invalidate()
	mockCache.EXPECT().Load(gomock.Any()).Return(&domain.RawTable{Version: "manual"}, nil)

	service := NewSpreadsheetRefreshService(mockCache, newRefreshConfig(false))
	require.NoError(t, service.TriggerManualRefresh())

	assert.Eventually(t, func() bool {
		service.syncMutex.Lock()
		defer service.syncMutex.Unlock()
		return service.lastVersion == "manual" && !service.syncRunning
	}, time.Second, 10*time.Millisecond)
}

func TestSpreadsheetRefreshService_TriggerManualRefreshConcurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	release := make(chan struct{})
	mockCache := mocks.NewMockCache(ctrl)
	mockCache.EXPECT().Invalidate().Times(1)
	mockCache.EXPECT().Load(gomock.Any()).DoAndReturn(func(ctx context.Context) (*domain.RawTable, error) {
		<-release
		return &domain.RawTable{Version: "primeira"}, nil
	}).Times(1)

	service := NewSpreadsheetRefreshService(mockCache, newRefreshConfig(false))

	require.NoError(t, service.TriggerManualRefresh())
	// A reserva acontece antes do retorno, então a segunda chamada é recusada
	assert.ErrorIs(t, service.TriggerManualRefresh(), ErrRefreshRunning)
	service.syncMutex.Lock()
	assert.True(t, service.syncRunning)
	service.syncMutex.Unlock()

	close(release)

	assert.Eventually(t, func() bool {
		service.syncMutex.Lock()
		defer service.syncMutex.Unlock()
		return service.lastVersion == "primeira" && !service.syncRunning
	}, time.Second, 10*time.Millisecond)
}

func TestSpreadsheetRefreshService_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	disabled := NewSpreadsheetRefreshService(mocks.NewMockCache(ctrl), newRefreshConfig(false))
	assert.NoError(t, disabled.Start(ctx))
	assert.False(t, disabled.scheduler.IsRunning())

	invalidCfg := newRefreshConfig(true)
	invalidCfg.Spreadsheet.RefreshCron = "cron inválida"
	invalid := NewSpreadsheetRefreshService(mocks.NewMockCache(ctrl), invalidCfg)
	assert.Error(t, invalid.Start(ctx))

	enabled := NewSpreadsheetRefreshService(mocks.NewMockCache(ctrl), newRefreshConfig(true))
	require.NoError(t, enabled.Start(ctx))
	assert.True(t, enabled.scheduler.IsRunning())
}
