package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rótulos das colunas exibidas na tabela de pedidos
const (
	LabelCustomer    = "Fantasia"
	LabelOrderID     = "Ped. Cliente"
	LabelOrderDate   = "Data do Pedido"
	LabelOrderValue  = "Valor Total do Pedido"
	LabelSalesperson = "Vendedor"
)

// DisplayColumns define a ordem das colunas da tabela
var DisplayColumns = []string{
	LabelCustomer,
	LabelOrderID,
	LabelOrderDate,
	LabelOrderValue,
	LabelSalesperson,
}

// OrderRow é uma linha da tabela de pedidos já formatada
type OrderRow struct {
	Customer    string          `json:"customer"`
	OrderID     string          `json:"order_id"`
	OrderDate   string          `json:"order_date"` // Formato dd/mm/yyyy
	Value       string          `json:"value"`
	RawValue    decimal.Decimal `json:"raw_value"`
	Salesperson string          `json:"salesperson"`
}

// ChartBar é uma barra do gráfico de vendas por vendedor
type ChartBar struct {
	Salesperson    string          `json:"salesperson"`
	Total          decimal.Decimal `json:"total"`
	TotalFormatted string          `json:"total_formatted"`
}

// Dashboard agrega tudo o que é exibido no flash de vendas de um mês
type Dashboard struct {
	Title         string       `json:"title"`
	SelectedMonth string       `json:"selected_month"`
	Months        []string     `json:"months"`
	KPI           KPISnapshot  `json:"kpi"`
	Metrics       []MetricCard `json:"metrics"`
	Columns       []string     `json:"columns"`
	Orders        []OrderRow   `json:"orders"`
	Chart         []ChartBar   `json:"chart"`
	CleanReport   CleanReport  `json:"clean_report"`
	DataVersion   string       `json:"data_version"`
	GeneratedAt   time.Time    `json:"generated_at"`
}
