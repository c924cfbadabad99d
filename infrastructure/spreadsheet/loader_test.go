package spreadsheet

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook cria um .xlsx temporário com as linhas informadas na primeira aba
func writeWorkbook(t *testing.T, sheet string, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheet != "" && sheet != "Sheet1" {
		require.NoError(t, f.SetSheetName("Sheet1", sheet))
	} else {
		sheet = "Sheet1"
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "pedidos.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestExcelLoader_Load(t *testing.T) {
	path := writeWorkbook(t, "Pedidos", [][]any{
		{" Ped. Cliente ", "Dt.pedido", "Vl.Total", "Fantasia ", "Vendedor"},
		{"1001", "05/06/2024", 100.5, "Loja A", "ANA"},
		{"1002", time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC), 200, "Loja B"},
	})

	table, err := NewExcelLoader(path, "").Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, path, table.Path)
	assert.Equal(t, "Pedidos", table.Sheet)
	assert.Equal(t, []string{" Ped. Cliente ", "Dt.pedido", "Vl.Total", "Fantasia ", "Vendedor"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "1001", table.Rows[0][0])
	assert.Equal(t, "05/06/2024", table.Rows[0][1])
	assert.Equal(t, "100.5", table.Rows[0][2])
	assert.Equal(t, "Loja B", table.Rows[1][3])
	// Datas gravadas como data chegam como número serial do Excel
	assert.Equal(t, "45449", table.Rows[1][1])
	assert.NotEmpty(t, table.Version)
	assert.False(t, table.ModTime.IsZero())
	assert.Positive(t, table.Size)
}

func TestExcelLoader_LoadNamedSheet(t *testing.T) {
	path := writeWorkbook(t, "Spezia", [][]any{
		{"Ped. Cliente", "Dt.pedido", "Vl.Total", "Fantasia"},
		{"1", "01/01/2024", 1, "X"},
	})

	table, err := NewExcelLoader(path, "Spezia").Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Spezia", table.Sheet)
	assert.Len(t, table.Rows, 1)
}

func TestExcelLoader_Errors(t *testing.T) {
	tmp := t.TempDir()

	notWorkbook := filepath.Join(tmp, "pedidos.xlsx")
	require.NoError(t, os.WriteFile(notWorkbook, []byte("isto não é uma planilha"), 0o600))

	emptyWorkbook := writeWorkbook(t, "", nil)

	validWorkbook := writeWorkbook(t, "", [][]any{{"Ped. Cliente"}})

	tests := []struct {
		name  string
		path  string
		sheet string
	}{
		{name: "arquivo inexistente", path: filepath.Join(tmp, "nao-existe.xlsx")},
		{name: "arquivo inválido", path: notWorkbook},
		{name: "aba vazia", path: emptyWorkbook},
		{name: "aba inexistente", path: validWorkbook, sheet: "Outra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewExcelLoader(tt.path, tt.sheet).Load(context.Background())
			assert.Nil(t, table)

			var readErr *FileReadError
			require.True(t, errors.As(err, &readErr), "esperado FileReadError, obtido %v", err)
			assert.Equal(t, tt.path, readErr.Path)
			assert.Contains(t, err.Error(), tt.path)
		})
	}
}

func TestExcelLoader_MissingFileUnwrapsToNotExist(t *testing.T) {
	_, err := NewExcelLoader(filepath.Join(t.TempDir(), "x.xlsx"), "").Load(context.Background())
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestExcelLoader_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewExcelLoader("qualquer.xlsx", "").Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
