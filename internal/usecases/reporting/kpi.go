package reporting

import (
	"github.com/shopspring/decimal"

	"github.com/vfg2006/sales-flash-api/internal/domain"
	"github.com/vfg2006/sales-flash-api/pkg/currency"
)

// Rótulos dos indicadores, na ordem de exibição
const (
	MetricTotal            = "Valor Total dos Pedidos"
	MetricTarget           = "Meta do Mês"
	MetricPercentRemaining = "Falta para Meta (%)"
	MetricPercentAchieved  = "Meta Batida (%)"
	MetricShortfall        = "Falta para Meta (R$)"
)

var hundred = decimal.NewFromInt(100)

// CalculateKPI calcula o desempenho do mês contra a meta. Meta menor ou igual
// a zero resulta em percentual zero.
func CalculateKPI(total, target decimal.Decimal) domain.KPISnapshot {
	percent := decimal.Zero
	if target.IsPositive() {
		percent = total.Div(target).Mul(hundred)
	}

	percentRemaining := decimal.Zero
	if percent.LessThan(hundred) {
		percentRemaining = hundred.Sub(percent)
	}

	shortfall := decimal.Zero
	if total.LessThan(target) {
		shortfall = target.Sub(total)
	}

	return domain.KPISnapshot{
		Total:            total,
		Target:           target,
		Percent:          percent,
		PercentRemaining: percentRemaining,
		Shortfall:        shortfall,
		TargetReached:    !percent.LessThan(hundred),
	}
}

// MetricCards formata os cinco indicadores do flash de vendas
func MetricCards(kpi domain.KPISnapshot) []domain.MetricCard {
	remaining := "0%"
	if kpi.Percent.LessThan(hundred) {
		remaining = currency.FormatPercent(kpi.PercentRemaining)
	}

	return []domain.MetricCard{
		{Label: MetricTotal, Value: currency.FormatBRL(kpi.Total)},
		{Label: MetricTarget, Value: currency.FormatBRL(kpi.Target)},
		{Label: MetricPercentRemaining, Value: remaining},
		{Label: MetricPercentAchieved, Value: currency.FormatPercent(kpi.Percent)},
		{Label: MetricShortfall, Value: currency.FormatBRL(kpi.Shortfall)},
	}
}
