package reporting

import (
	"sort"

	"github.com/vfg2006/sales-flash-api/internal/domain"
	"github.com/vfg2006/sales-flash-api/pkg/currency"
)

// OrderDateLayout é o formato da data exibida na tabela
const OrderDateLayout = "02/01/2006"

// DashboardTitle monta o título do flash de vendas
func DashboardTitle(month string) string {
	if month == "" {
		return "Flash de Vendas"
	}
	return "Flash de Vendas do Mês " + month
}

// BuildOrderRows formata os pedidos agrupados para a tabela
func BuildOrderRows(orders []domain.AggregatedOrder) []domain.OrderRow {
	rows := make([]domain.OrderRow, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, domain.OrderRow{
			Customer:    order.Customer,
			OrderID:     order.OrderID,
			OrderDate:   order.OrderDate.Format(OrderDateLayout),
			Value:       currency.FormatBRL(order.Value),
			RawValue:    order.Value,
			Salesperson: order.Salesperson,
		})
	}
	return rows
}

// BuildChartBars prepara as barras do gráfico em ordem decrescente de valor;
// empates seguem a ordem alfabética do vendedor
func BuildChartBars(summary []domain.SalespersonSummary) []domain.ChartBar {
	bars := make([]domain.ChartBar, 0, len(summary))
	for _, item := range summary {
		bars = append(bars, domain.ChartBar{
			Salesperson:    item.Salesperson,
			Total:          item.Total,
			TotalFormatted: currency.FormatBRL(item.Total),
		})
	}

	sort.SliceStable(bars, func(i, j int) bool {
		if cmp := bars[i].Total.Cmp(bars[j].Total); cmp != 0 {
			return cmp > 0
		}
		return bars[i].Salesperson < bars[j].Salesperson
	})

	return bars
}
