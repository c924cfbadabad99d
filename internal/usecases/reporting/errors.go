package reporting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/sales-flash-api/infrastructure/spreadsheet"
	"github.com/vfg2006/sales-flash-api/internal/usecases/cleaning"
	"github.com/vfg2006/sales-flash-api/pkg/apiErrors"
)

// Erros específicos para o contexto do flash de vendas
var (
	ErrInvalidMonth  = errors.New("mês inválido, use o formato yyyy-mm")
	ErrMonthNotFound = errors.New("mês sem pedidos na planilha")
)

// ReportError é um erro com o código de API correspondente
type ReportError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError cria um novo ReportError
func NewReportError(err error, code string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// classifyError associa o erro de leitura ou seleção ao código de API
func classifyError(err error) *ReportError {
	var reportErr *ReportError
	if errors.As(err, &reportErr) {
		return reportErr
	}

	var readErr *spreadsheet.FileReadError
	switch {
	case errors.As(err, &readErr):
		return NewReportError(err, apiErrors.ErrSpreadsheetUnavailable, "")
	case errors.Is(err, cleaning.ErrMissingColumn):
		return NewReportError(err, apiErrors.ErrSpreadsheetUnavailable, "")
	case errors.Is(err, ErrInvalidMonth):
		return NewReportError(err, apiErrors.ErrInvalidFormat, "")
	case errors.Is(err, ErrMonthNotFound):
		return NewReportError(err, apiErrors.ErrPeriodNotFound, "")
	default:
		return NewReportError(err, apiErrors.ErrInternalServer, "")
	}
}
