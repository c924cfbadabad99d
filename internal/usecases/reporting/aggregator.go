package reporting

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/sales-flash-api/internal/domain"
)

type orderKey struct {
	customer    string
	orderID     string
	orderDate   string
	salesperson string
}

// AggregateOrders agrupa os pedidos por cliente, número, data e vendedor,
// somando o valor. Os grupos seguem a ordem da primeira ocorrência.
func AggregateOrders(orders domain.OrderTable) []domain.AggregatedOrder {
	index := make(map[orderKey]int, len(orders))
	aggregated := make([]domain.AggregatedOrder, 0, len(orders))

	for _, order := range orders {
		key := orderKey{
			customer:    order.Customer,
			orderID:     order.OrderID,
			orderDate:   order.OrderDate.Format(time.RFC3339Nano),
			salesperson: order.Salesperson,
		}

		if i, ok := index[key]; ok {
			aggregated[i].Value = aggregated[i].Value.Add(order.Value)
			continue
		}

		index[key] = len(aggregated)
		aggregated = append(aggregated, domain.AggregatedOrder{
			Customer:    order.Customer,
			OrderID:     order.OrderID,
			OrderDate:   order.OrderDate,
			Salesperson: order.Salesperson,
			Value:       order.Value,
		})
	}

	return aggregated
}

// SummarizeBySalesperson soma o valor por vendedor diretamente dos pedidos
// filtrados, sem depender do agrupamento por pedido
func SummarizeBySalesperson(orders domain.OrderTable) []domain.SalespersonSummary {
	index := make(map[string]int)
	summary := make([]domain.SalespersonSummary, 0)

	for _, order := range orders {
		if i, ok := index[order.Salesperson]; ok {
			summary[i].Total = summary[i].Total.Add(order.Value)
			continue
		}

		index[order.Salesperson] = len(summary)
		summary = append(summary, domain.SalespersonSummary{
			Salesperson: order.Salesperson,
			Total:       order.Value,
		})
	}

	return summary
}

// TotalAggregated soma o valor de todos os pedidos agrupados
func TotalAggregated(orders []domain.AggregatedOrder) decimal.Decimal {
	total := decimal.Zero
	for _, order := range orders {
		total = total.Add(order.Value)
	}
	return total
}
