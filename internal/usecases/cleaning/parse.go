package cleaning

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Formatos aceitos para a data do pedido, sempre com o dia primeiro.
// "2/1/2006" aceita dia e mês com um ou dois dígitos.
var dayFirstLayouts = []string{
	"2/1/2006",
	"2/1/2006 15:04",
	"2/1/2006 15:04:05",
	"2-1-2006",
	"2-1-2006 15:04",
	"2-1-2006 15:04:05",
	"2.1.2006",
	"2.1.2006 15:04",
	"2.1.2006 15:04:05",
	"2/1/06",
	"2/1/06 15:04",
	"2006-01-02",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// Maior número serial válido no Excel (31/12/9999)
const maxExcelSerial = 2958465

// ParseOrderDate interpreta a data do pedido. Aceita o número serial que o
// Excel grava em células de data e textos no formato dia/mês/ano.
func ParseOrderDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		if !(serial >= 1 && serial <= maxExcelSerial) {
			return time.Time{}, false
		}
		date, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, false
		}
		return date, true
	}

	for _, layout := range dayFirstLayouts {
		if date, err := time.Parse(layout, raw); err == nil {
			return date, true
		}
	}

	return time.Time{}, false
}

// ParseOrderValue interpreta o valor total do pedido. Célula vazia vale zero.
// Aceita "1234.56", "1.234,56", "1234,56" e o prefixo "R$".
func ParseOrderValue(raw string) (decimal.Decimal, bool) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "R$"))
	if raw == "" {
		return decimal.Zero, true
	}

	if value, err := decimal.NewFromString(raw); err == nil {
		return value, true
	}

	intPart, fracPart, found := strings.Cut(raw, ",")
	if !found || strings.ContainsAny(fracPart, ".,") || !validThousandsGroups(intPart) {
		return decimal.Zero, false
	}

	normalized := strings.ReplaceAll(intPart, ".", "") + "." + fracPart
	if value, err := decimal.NewFromString(normalized); err == nil {
		return value, true
	}

	return decimal.Zero, false
}

// validThousandsGroups confere o agrupamento "1.234.567" da parte inteira.
// Sem "." qualquer parte inteira é aceita.
func validThousandsGroups(intPart string) bool {
	groups := strings.Split(strings.TrimPrefix(intPart, "-"), ".")
	if len(groups) == 1 {
		return true
	}

	if len(groups[0]) == 0 || len(groups[0]) > 3 {
		return false
	}
	for _, group := range groups[1:] {
		if len(group) != 3 {
			return false
		}
	}

	return true
}
