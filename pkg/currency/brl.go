// Package currency formata valores monetários no padrão brasileiro
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Symbol é o prefixo usado em todos os valores formatados
const Symbol = "R$"

// FormatBRL formata um valor com separador de milhar "." e decimal ",",
// sempre com duas casas. Ex: 12345.67 -> "R$ 12.345,67", -5.5 -> "R$ -5,50"
func FormatBRL(value decimal.Decimal) string {
	fixed := value.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	b.Grow(len(Symbol) + 2 + len(fixed) + len(intPart)/3)
	b.WriteString(Symbol)
	b.WriteByte(' ')
	b.WriteString(sign)
	b.WriteString(groupThousands(intPart))
	b.WriteByte(',')
	b.WriteString(fracPart)

	return b.String()
}

// FormatPercent formata um percentual com duas casas: 60 -> "60.00%"
func FormatPercent(value decimal.Decimal) string {
	return value.StringFixed(2) + "%"
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := len(digits) % 3
	if head == 0 {
		head = 3
	}

	var b strings.Builder
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte('.')
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}
