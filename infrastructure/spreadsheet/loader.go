// Package spreadsheet lê a planilha de pedidos e mantém o conteúdo em cache
package spreadsheet

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/sales-flash-api/internal/domain"
	"github.com/vfg2006/sales-flash-api/pkg/utils"
)

// ErrEmptySheet indica uma aba sem linha de cabeçalho
var ErrEmptySheet = errors.New("aba sem cabeçalho")

// FileReadError indica que a planilha não pôde ser lida como tabela
type FileReadError struct {
	Path string
	Err  error
}

// Error implementa a interface error
func (e *FileReadError) Error() string {
	return fmt.Sprintf("erro ao ler a planilha %s: %v", e.Path, e.Err)
}

// Unwrap retorna o erro subjacente
func (e *FileReadError) Unwrap() error {
	return e.Err
}

// Loader define a leitura da planilha de pedidos
type Loader interface {
	Load(ctx context.Context) (*domain.RawTable, error)
}

// ExcelLoader lê uma aba de um arquivo .xlsx
type ExcelLoader struct {
	path  string
	sheet string
}

// NewExcelLoader cria um leitor para o arquivo informado. Sem aba definida,
// a primeira aba do arquivo é usada.
func NewExcelLoader(path, sheet string) *ExcelLoader {
	return &ExcelLoader{
		path:  path,
		sheet: sheet,
	}
}

func (l *ExcelLoader) Load(ctx context.Context) (*domain.RawTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()

	info, err := os.Stat(l.path)
	if err != nil {
		return nil, &FileReadError{Path: l.path, Err: err}
	}

	file, err := excelize.OpenFile(l.path)
	if err != nil {
		return nil, &FileReadError{Path: l.path, Err: errors.Wrap(err, "arquivo não é uma planilha válida")}
	}
	defer func() {
		if err := file.Close(); err != nil {
			logrus.WithError(err).WithField("path", l.path).Warn("Erro ao fechar a planilha")
		}
	}()

	sheet := l.sheet
	if sheet == "" {
		sheets := file.GetSheetList()
		if len(sheets) == 0 {
			return nil, &FileReadError{Path: l.path, Err: ErrEmptySheet}
		}
		sheet = sheets[0]
	}

	// Valores brutos: datas chegam como número serial do Excel e números sem formatação
	rows, err := file.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &FileReadError{Path: l.path, Err: errors.Wrapf(err, "erro ao ler a aba %s", sheet)}
	}

	if len(rows) == 0 || isBlankRow(rows[0]) {
		return nil, &FileReadError{Path: l.path, Err: errors.Wrapf(ErrEmptySheet, "aba %s", sheet)}
	}

	version, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar versão da planilha")
	}

	table := &domain.RawTable{
		Path:     l.path,
		Sheet:    sheet,
		Headers:  rows[0],
		Rows:     rows[1:],
		ModTime:  info.ModTime(),
		Size:     info.Size(),
		LoadedAt: time.Now(),
		Version:  version,
	}

	logrus.WithFields(logrus.Fields{
		"path":        l.path,
		"sheet":       sheet,
		"rows":        len(table.Rows),
		"version":     version,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Planilha carregada")

	return table, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
