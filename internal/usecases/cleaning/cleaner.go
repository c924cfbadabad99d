// Package cleaning transforma a tabela bruta da planilha em pedidos válidos
package cleaning

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-flash-api/internal/domain"
	"github.com/vfg2006/sales-flash-api/pkg/utils"
)

// DefaultFallbackSalesperson é usado quando o pedido não tem vendedor
const DefaultFallbackSalesperson = "PAULO"

// ErrMissingColumn indica que a planilha não tem uma coluna obrigatória
var ErrMissingColumn = errors.New("coluna obrigatória ausente")

// MissingColumnError lista as colunas obrigatórias ausentes
type MissingColumnError struct {
	Columns []string
}

// Error implementa a interface error
func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingColumn.Error(), strings.Join(e.Columns, ", "))
}

// Unwrap retorna o erro sentinela
func (e *MissingColumnError) Unwrap() error {
	return ErrMissingColumn
}

// Config define as regras de limpeza
type Config struct {
	ExcludedOrderIDs    []string
	FallbackSalesperson string
}

// Cleaner aplica as regras de limpeza sobre a tabela bruta
type Cleaner struct {
	excluded map[string]struct{}
	fallback string
}

// NewCleaner cria um Cleaner a partir da configuração
func NewCleaner(cfg Config) *Cleaner {
	excluded := make(map[string]struct{}, len(cfg.ExcludedOrderIDs))
	for _, id := range cfg.ExcludedOrderIDs {
		id = normalizeOrderID(id)
		if id != "" {
			excluded[id] = struct{}{}
		}
	}

	fallback := strings.TrimSpace(cfg.FallbackSalesperson)
	if fallback == "" {
		fallback = DefaultFallbackSalesperson
	}

	return &Cleaner{
		excluded: excluded,
		fallback: fallback,
	}
}

// NormalizeHeaders remove espaços no início e no fim de cada cabeçalho
func NormalizeHeaders(headers []string) []string {
	normalized := make([]string, len(headers))
	for i, header := range headers {
		normalized[i] = strings.TrimSpace(header)
	}
	return normalized
}

// Clean converte a tabela bruta em pedidos. Linhas com data ilegível são
// descartadas sem erro e contabilizadas no relatório.
func (c *Cleaner) Clean(table *domain.RawTable) (domain.OrderTable, domain.CleanReport, error) {
	report := domain.CleanReport{}
	if table == nil {
		return domain.OrderTable{}, report, nil
	}

	columns := indexColumns(NormalizeHeaders(table.Headers))

	var missing []string
	for _, column := range domain.RequiredColumns {
		if _, ok := columns[column]; !ok {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return nil, report, &MissingColumnError{Columns: missing}
	}

	orderIDIdx := columns[domain.ColumnOrderID]
	dateIdx := columns[domain.ColumnOrderDate]
	valueIdx := columns[domain.ColumnOrderValue]
	customerIdx := columns[domain.ColumnCustomer]
	salespersonIdx, hasSalesperson := columns[domain.ColumnSalesperson]

	report.TotalRows = len(table.Rows)
	orders := make(domain.OrderTable, 0, len(table.Rows))

	for _, row := range table.Rows {
		if isBlankRow(row) {
			report.BlankRows++
			continue
		}

		orderID := normalizeOrderID(cell(row, orderIDIdx))
		if _, excluded := c.excluded[orderID]; excluded {
			report.Excluded++
			continue
		}

		orderDate, ok := ParseOrderDate(cell(row, dateIdx))
		if !ok {
			report.InvalidDates++
			continue
		}

		value, ok := ParseOrderValue(cell(row, valueIdx))
		if !ok {
			report.InvalidValues++
			continue
		}

		salesperson := ""
		if hasSalesperson {
			salesperson = strings.TrimSpace(cell(row, salespersonIdx))
		}
		if salesperson == "" {
			salesperson = c.fallback
			report.DefaultedSalesperson++
		}

		orders = append(orders, domain.OrderRecord{
			Customer:    strings.TrimSpace(cell(row, customerIdx)),
			OrderID:     orderID,
			OrderDate:   orderDate,
			Salesperson: salesperson,
			Value:       value,
			Month:       utils.FormatMonth(orderDate),
		})
	}

	report.Kept = len(orders)

	if report.Dropped() > 0 {
		logrus.WithFields(logrus.Fields{
			"path":           table.Path,
			"version":        table.Version,
			"total_rows":     report.TotalRows,
			"excluded":       report.Excluded,
			"invalid_dates":  report.InvalidDates,
			"invalid_values": report.InvalidValues,
		}).Warn("cleaning: linhas descartadas da planilha")
	}

	return orders, report, nil
}

// indexColumns mapeia o nome de cada coluna para sua posição; em nomes
// repetidos vale a primeira ocorrência
func indexColumns(headers []string) map[string]int {
	columns := make(map[string]int, len(headers))
	for i, header := range headers {
		if header == "" {
			continue
		}
		if _, exists := columns[header]; !exists {
			columns[header] = i
		}
	}
	return columns
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func isBlankRow(row []string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}

// normalizeOrderID remove espaços e o ".0" que números inteiros ganham ao
// passar por uma célula numérica
func normalizeOrderID(id string) string {
	id = strings.TrimSpace(id)
	if integer, ok := strings.CutSuffix(id, ".0"); ok && integer != "" && isDigits(integer) {
		return integer
	}
	return id
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
