package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/sales-flash-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-flash-api/pkg/apiErrors"
	"github.com/vfg2006/sales-flash-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON codifica a resposta com o status informado
func writeJSON(w http.ResponseWriter, status int, body any, logger log.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.WithError(err).Error("handler: erro ao codificar resposta")
	}
}

// errorCode extrai o código de API de um erro do relatório
func errorCode(err error) string {
	var reportErr *reporting.ReportError
	if errors.As(err, &reportErr) {
		return reportErr.Code
	}
	return apiErrors.ErrInternalServer
}

// writeReportError responde o erro do relatório no formato padrão da API
func writeReportError(w http.ResponseWriter, err error, logger log.Logger) {
	code := errorCode(err)

	entry := logger.WithError(err).WithField("code", code)
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		entry.Error("handler: erro ao montar o flash de vendas")
	} else {
		entry.Warn("handler: requisição inválida para o flash de vendas")
	}

	apiErrors.WriteError(w, code, err.Error(), nil)
}
