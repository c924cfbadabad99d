package reporting

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/vfg2006/sales-flash-api/internal/domain"
	"github.com/vfg2006/sales-flash-api/pkg/utils"
)

// AvailableMonths retorna os meses distintos da tabela em ordem crescente
func AvailableMonths(orders domain.OrderTable) []string {
	seen := make(map[string]struct{})
	months := make([]string, 0)

	for _, order := range orders {
		if _, ok := seen[order.Month]; ok {
			continue
		}
		seen[order.Month] = struct{}{}
		months = append(months, order.Month)
	}

	slices.Sort(months)
	return months
}

// DefaultMonth escolhe o mês corrente se houver pedidos nele, senão o mais antigo
func DefaultMonth(months []string, now time.Time) string {
	current := utils.FormatMonth(now)
	if slices.Contains(months, current) {
		return current
	}

	if len(months) > 0 {
		return months[0]
	}

	return ""
}

// SelectMonth valida o mês solicitado; vazio cai na regra do mês padrão
func SelectMonth(months []string, requested string, now time.Time) (string, error) {
	requested = strings.TrimSpace(requested)
	if requested == "" {
		return DefaultMonth(months, now), nil
	}

	if _, err := utils.ParseMonth(requested); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidMonth, requested)
	}

	if !slices.Contains(months, requested) {
		return "", fmt.Errorf("%w: %s", ErrMonthNotFound, requested)
	}

	return requested, nil
}

// BuildAvailablePeriods monta a lista de períodos com anos e meses únicos
func BuildAvailablePeriods(months []string, now time.Time) *domain.AvailablePeriods {
	periods := &domain.AvailablePeriods{
		Periods: append([]string{}, months...),
		Default: DefaultMonth(months, now),
		Years:   []string{},
		Months:  []string{},
	}

	for _, month := range months {
		year, monthNumber, found := strings.Cut(month, "-")
		if !found {
			continue
		}
		if !slices.Contains(periods.Years, year) {
			periods.Years = append(periods.Years, year)
		}
		if !slices.Contains(periods.Months, monthNumber) {
			periods.Months = append(periods.Months, monthNumber)
		}
	}

	slices.Sort(periods.Years)
	slices.Sort(periods.Months)

	return periods
}
