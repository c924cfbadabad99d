package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AggregatedOrder é um pedido agrupado por cliente, número, data e vendedor
type AggregatedOrder struct {
	Customer    string          `json:"customer"`
	OrderID     string          `json:"order_id"`
	OrderDate   time.Time       `json:"order_date"`
	Salesperson string          `json:"salesperson"`
	Value       decimal.Decimal `json:"value"`
}

// SalespersonSummary é o total vendido por um vendedor no mês
type SalespersonSummary struct {
	Salesperson string          `json:"salesperson"`
	Total       decimal.Decimal `json:"total"`
}
