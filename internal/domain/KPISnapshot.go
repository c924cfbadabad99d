package domain

import "github.com/shopspring/decimal"

// KPISnapshot representa o desempenho do mês contra a meta
type KPISnapshot struct {
	Total            decimal.Decimal `json:"total"`
	Target           decimal.Decimal `json:"target"`
	Percent          decimal.Decimal `json:"percent"`
	PercentRemaining decimal.Decimal `json:"percent_remaining"`
	Shortfall        decimal.Decimal `json:"shortfall"`
	TargetReached    bool            `json:"target_reached"`
}

// MetricCard é um indicador pronto para exibição
type MetricCard struct {
	Label string `json:"label"`
	Value string `json:"value"`
}
