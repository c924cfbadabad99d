// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Colunas esperadas na planilha de pedidos (após remover espaços do cabeçalho)
const (
	ColumnOrderID     = "Ped. Cliente"
	ColumnOrderDate   = "Dt.pedido"
	ColumnOrderValue  = "Vl.Total"
	ColumnCustomer    = "Fantasia"
	ColumnSalesperson = "Vendedor"
)

// RequiredColumns são as colunas sem as quais a planilha não pode ser processada
var RequiredColumns = []string{
	ColumnOrderID,
	ColumnOrderDate,
	ColumnOrderValue,
	ColumnCustomer,
}

// MonthLayout é o formato do mês de referência (yyyy-mm)
const MonthLayout = "2006-01"

// OrderRecord representa uma linha de pedido já limpa
type OrderRecord struct {
	Customer    string          `json:"customer"`
	OrderID     string          `json:"order_id"`
	OrderDate   time.Time       `json:"order_date"`
	Salesperson string          `json:"salesperson"`
	Value       decimal.Decimal `json:"value"`
	Month       string          `json:"month"` // Formato yyyy-mm
}

// OrderTable é a coleção de pedidos na ordem em que aparecem na planilha
type OrderTable []OrderRecord

// FilterByMonth retorna apenas os pedidos do mês informado, preservando a ordem
func (t OrderTable) FilterByMonth(month string) OrderTable {
	filtered := make(OrderTable, 0, len(t))
	for _, order := range t {
		if order.Month == month {
			filtered = append(filtered, order)
		}
	}
	return filtered
}

// Total soma o valor de todos os pedidos da tabela
func (t OrderTable) Total() decimal.Decimal {
	total := decimal.Zero
	for _, order := range t {
		total = total.Add(order.Value)
	}
	return total
}

// CleanReport resume o que a limpeza descartou ou ajustou
type CleanReport struct {
	TotalRows            int `json:"total_rows"`
	BlankRows            int `json:"blank_rows"`
	Excluded             int `json:"excluded"`
	InvalidDates         int `json:"invalid_dates"`
	InvalidValues        int `json:"invalid_values"`
	DefaultedSalesperson int `json:"defaulted_salesperson"`
	Kept                 int `json:"kept"`
}

// Dropped retorna quantas linhas com conteúdo ficaram fora da tabela limpa
func (r CleanReport) Dropped() int {
	return r.Excluded + r.InvalidDates + r.InvalidValues
}
