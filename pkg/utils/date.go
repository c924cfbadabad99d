package utils

import (
	"fmt"
	"regexp"
	"time"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ParseMonth valida e converte um mês no formato yyyy-mm
func ParseMonth(month string) (time.Time, error) {
	if !monthPattern.MatchString(month) {
		return time.Time{}, fmt.Errorf("mês inválido %q: use o formato yyyy-mm", month)
	}

	return time.Parse("2006-01", month)
}

// FormatMonth devolve o mês de referência (yyyy-mm) de uma data
func FormatMonth(t time.Time) string {
	return t.Format("2006-01")
}
