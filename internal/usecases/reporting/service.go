package reporting

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-flash-api/infrastructure/spreadsheet"
	"github.com/vfg2006/sales-flash-api/internal/config"
	"github.com/vfg2006/sales-flash-api/internal/domain"
	"github.com/vfg2006/sales-flash-api/internal/usecases/cleaning"
)

// Service monta o flash de vendas a partir da planilha de pedidos
type Service struct {
	loader   spreadsheet.Loader
	cleaner  *cleaning.Cleaner
	target   decimal.Decimal
	location *time.Location
	now      func() time.Time
}

// NewService cria o serviço de relatórios com a meta e o fuso configurados
func NewService(cfg *config.Config, loader spreadsheet.Loader) Reporter {
	return newService(cfg, loader, time.Now)
}

func newService(cfg *config.Config, loader spreadsheet.Loader, now func() time.Time) *Service {
	location := cfg.App.Location
	if location == nil {
		location = time.Local
	}

	return &Service{
		loader: loader,
		cleaner: cleaning.NewCleaner(cleaning.Config{
			ExcludedOrderIDs:    cfg.Sales.ExcludedOrderIDs,
			FallbackSalesperson: cfg.Sales.FallbackSalesperson,
		}),
		target:   decimal.NewFromFloat(cfg.Sales.MonthlyTarget),
		location: location,
		now:      now,
	}
}

type cleanedTable struct {
	orders  domain.OrderTable
	report  domain.CleanReport
	version string
}

func (s *Service) loadOrders(ctx context.Context) (*cleanedTable, error) {
	table, err := s.loader.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao carregar a planilha")
	}

	orders, report, err := s.cleaner.Clean(table)
	if err != nil {
		return nil, errors.Wrapf(err, "falha ao limpar a planilha %s", table.Path)
	}

	return &cleanedTable{
		orders:  orders,
		report:  report,
		version: table.Version,
	}, nil
}

// BuildDashboard monta o flash de vendas do mês informado, ou do mês padrão quando vazio
func (s *Service) BuildDashboard(ctx context.Context, month string) (*domain.Dashboard, error) {
	cleaned, err := s.loadOrders(ctx)
	if err != nil {
		return nil, classifyError(err)
	}

	now := s.now().In(s.location)
	months := AvailableMonths(cleaned.orders)

	selected, err := SelectMonth(months, month, now)
	if err != nil {
		return nil, classifyError(err)
	}

	monthly := cleaned.orders.FilterByMonth(selected)
	aggregated := AggregateOrders(monthly)
	kpi := CalculateKPI(TotalAggregated(aggregated), s.target)

	dashboard := &domain.Dashboard{
		Title:         DashboardTitle(selected),
		SelectedMonth: selected,
		Months:        months,
		KPI:           kpi,
		Metrics:       MetricCards(kpi),
		Columns:       domain.DisplayColumns,
		Orders:        BuildOrderRows(aggregated),
		Chart:         BuildChartBars(SummarizeBySalesperson(monthly)),
		CleanReport:   cleaned.report,
		DataVersion:   cleaned.version,
		GeneratedAt:   now,
	}

	logrus.WithFields(logrus.Fields{
		"month":   selected,
		"orders":  len(dashboard.Orders),
		"total":   kpi.Total.StringFixed(2),
		"version": cleaned.version,
	}).Debug("reporting: flash de vendas gerado")

	return dashboard, nil
}

// AvailableMonths lista os meses com pedidos válidos na planilha
func (s *Service) AvailableMonths(ctx context.Context) (*domain.AvailablePeriods, error) {
	cleaned, err := s.loadOrders(ctx)
	if err != nil {
		return nil, classifyError(err)
	}

	return BuildAvailablePeriods(AvailableMonths(cleaned.orders), s.now().In(s.location)), nil
}
