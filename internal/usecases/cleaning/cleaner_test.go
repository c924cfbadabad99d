package cleaning

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/sales-flash-api/internal/domain"
)

var defaultHeaders = []string{" Ped. Cliente", "Dt.pedido ", "Vl.Total", " Fantasia ", "Vendedor"}

func TestNormalizeHeaders(t *testing.T) {
	assert.Equal(t,
		[]string{"Ped. Cliente", "Dt.pedido", "Vl.Total", "Fantasia", "Vendedor"},
		NormalizeHeaders(defaultHeaders),
	)
}

func TestCleaner_Clean(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		table    *domain.RawTable
		validate func(t *testing.T, orders domain.OrderTable, report domain.CleanReport)
	}{
		{
			name: "Vendedor em branco usa o nome padrão",
			table: &domain.RawTable{
				Headers: defaultHeaders,
				Rows: [][]string{
					{"1", "05/06/2024", "100", "Loja A", ""},
					{"2", "06/06/2024", "200", "Loja B", "ANA"},
				},
			},
			validate: func(t *testing.T, orders domain.OrderTable, report domain.CleanReport) {
				require.Len(t, orders, 2)
				assert.Equal(t, DefaultFallbackSalesperson, orders[0].Salesperson)
				assert.Equal(t, "ANA", orders[1].Salesperson)
				assert.Equal(t, "2024-06", orders[0].Month)
				assert.Equal(t, time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC), orders[0].OrderDate)
				assert.True(t, decimal.NewFromInt(300).Equal(orders.Total()))
				assert.Equal(t, 1, report.DefaultedSalesperson)
				assert.Equal(t, 2, report.Kept)
			},
		},
		{
			name: "Coluna Vendedor ausente usa o nome configurado",
			cfg:  Config{FallbackSalesperson: " CARLOS "},
			table: &domain.RawTable{
				Headers: []string{"Ped. Cliente", "Dt.pedido", "Vl.Total", "Fantasia"},
				Rows: [][]string{
					{"1", "05/06/2024", "100", "Loja A"},
				},
			},
			validate: func(t *testing.T, orders domain.OrderTable, report domain.CleanReport) {
				require.Len(t, orders, 1)
				assert.Equal(t, "CARLOS", orders[0].Salesperson)
				assert.Equal(t, 1, report.DefaultedSalesperson)
			},
		},
		{
			name: "Datas ilegíveis são descartadas e contabilizadas",
			table: &domain.RawTable{
				Headers: defaultHeaders,
				Rows: [][]string{
					{"1", "não é data", "100", "Loja A", "ANA"},
					{"2", "31/02/2024", "100", "Loja A", "ANA"},
					{"3", "", "100", "Loja A", "ANA"},
					{"4", "01/07/2024", "50", "Loja C", "BIA"},
				},
			},
			validate: func(t *testing.T, orders domain.OrderTable, report domain.CleanReport) {
				require.Len(t, orders, 1)
				assert.Equal(t, "4", orders[0].OrderID)
				assert.Equal(t, 3, report.InvalidDates)
				assert.Equal(t, 3, report.Dropped())
				assert.Equal(t, 4, report.TotalRows)
			},
		},
		{
			name: "Pedidos excluídos por número",
			cfg:  Config{ExcludedOrderIDs: []string{"2", " 3 "}},
			table: &domain.RawTable{
				Headers: defaultHeaders,
				Rows: [][]string{
					{"1", "05/06/2024", "100", "Loja A", "ANA"},
					{"2", "05/06/2024", "100", "Loja A", "ANA"},
					{"3.0", "05/06/2024", "100", "Loja A", "ANA"},
				},
			},
			validate: func(t *testing.T, orders domain.OrderTable, report domain.CleanReport) {
				require.Len(t, orders, 1)
				assert.Equal(t, "1", orders[0].OrderID)
				assert.Equal(t, 2, report.Excluded)
			},
		},
		{
			name: "Valores em formato brasileiro, vazio e inválido",
			table: &domain.RawTable{
				Headers: defaultHeaders,
				Rows: [][]string{
					{"1", "05/06/2024", "1.234,56", "Loja A", "ANA"},
					{"2", "05/06/2024", "", "Loja A", "ANA"},
					{"3", "05/06/2024", "abc", "Loja A", "ANA"},
					{"4", "05/06/2024", "R$ 10,50", "Loja A", "ANA"},
				},
			},
			validate: func(t *testing.T, orders domain.OrderTable, report domain.CleanReport) {
				require.Len(t, orders, 3)
				assert.Equal(t, "1234.56", orders[0].Value.String())
				assert.True(t, orders[1].Value.IsZero())
				assert.Equal(t, "10.5", orders[2].Value.String())
				assert.Equal(t, 1, report.InvalidValues)
			},
		},
		{
			name: "Linhas em branco e linhas curtas",
			table: &domain.RawTable{
				Headers: defaultHeaders,
				Rows: [][]string{
					{},
					{"", " ", ""},
					{"1", "05/06/2024", "10", "Loja A"},
				},
			},
			validate: func(t *testing.T, orders domain.OrderTable, report domain.CleanReport) {
				require.Len(t, orders, 1)
				assert.Equal(t, DefaultFallbackSalesperson, orders[0].Salesperson)
				assert.Equal(t, 2, report.BlankRows)
				assert.Equal(t, 0, report.Dropped())
			},
		},
		{
			name: "Data serial do Excel",
			table: &domain.RawTable{
				Headers: defaultHeaders,
				Rows: [][]string{
					{"1", "45449", "10", "Loja A", "ANA"},
				},
			},
			validate: func(t *testing.T, orders domain.OrderTable, report domain.CleanReport) {
				require.Len(t, orders, 1)
				assert.Equal(t, "2024-06", orders[0].Month)
				assert.Equal(t, 6, orders[0].OrderDate.Day())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders, report, err := NewCleaner(tt.cfg).Clean(tt.table)
			require.NoError(t, err)
			tt.validate(t, orders, report)
		})
	}
}

func TestCleaner_CleanDoesNotMutateRawTable(t *testing.T) {
	table := &domain.RawTable{
		Headers: append([]string(nil), defaultHeaders...),
		Rows:    [][]string{{"1", "05/06/2024", "10", "Loja A", ""}},
	}

	_, _, err := NewCleaner(Config{}).Clean(table)
	require.NoError(t, err)

	assert.Equal(t, defaultHeaders, table.Headers)
	assert.Equal(t, "", table.Rows[0][4])
}

func TestCleaner_MissingColumns(t *testing.T) {
	table := &domain.RawTable{
		Headers: []string{"Ped. Cliente", "Fantasia"},
		Rows:    [][]string{{"1", "Loja"}},
	}

	orders, _, err := NewCleaner(Config{}).Clean(table)
	assert.Nil(t, orders)

	var missingErr *MissingColumnError
	require.True(t, errors.As(err, &missingErr))
	assert.Equal(t, []string{domain.ColumnOrderDate, domain.ColumnOrderValue}, missingErr.Columns)
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestCleaner_NilTable(t *testing.T) {
	orders, report, err := NewCleaner(Config{}).Clean(nil)
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.Zero(t, report.TotalRows)
}

func TestParseOrderDate(t *testing.T) {
	valid := map[string]time.Time{
		"05/06/2024":          time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
		"5/6/2024":            time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
		"05/06/2024 14:30":    time.Date(2024, 6, 5, 14, 30, 0, 0, time.UTC),
		"05/06/2024 14:30:15": time.Date(2024, 6, 5, 14, 30, 15, 0, time.UTC),
		"05-06-2024":          time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
		"05.06.2024":          time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
		"05/06/24":            time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
		"2024-06-05":          time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
		"2024-06-05 08:00:00": time.Date(2024, 6, 5, 8, 0, 0, 0, time.UTC),
		" 31/12/2023 ":        time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
		"45449":               time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC),
	}

	for raw, expected := range valid {
		t.Run(raw, func(t *testing.T) {
			parsed, ok := ParseOrderDate(raw)
			require.True(t, ok)
			assert.True(t, expected.Equal(parsed), "esperado %s, obtido %s", expected, parsed)
			assert.Equal(t, expected.Format(domain.MonthLayout), parsed.Format(domain.MonthLayout))
		})
	}

	for _, raw := range []string{"", "abc", "32/01/2024", "29/02/2023", "0", "-5", "NaN", "99999999", "2024/13/01"} {
		t.Run("inválida "+raw, func(t *testing.T) {
			_, ok := ParseOrderDate(raw)
			assert.False(t, ok)
		})
	}
}

func TestParseOrderValue(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
		ok       bool
	}{
		{raw: "100", expected: "100", ok: true},
		{raw: "100.5", expected: "100.5", ok: true},
		{raw: "1.234,56", expected: "1234.56", ok: true},
		{raw: "1234,56", expected: "1234.56", ok: true},
		{raw: "R$ 12.345,67", expected: "12345.67", ok: true},
		{raw: "-5,5", expected: "-5.5", ok: true},
		{raw: "", expected: "0", ok: true},
		{raw: "abc", ok: false},
		{raw: "1,2,3", ok: false},
		{raw: "1,234.56", ok: false},
		{raw: "12,345,678.90", ok: false},
		{raw: "1.23,45", ok: false},
		{raw: "1.234.567,89", expected: "1234567.89", ok: true},
		{raw: "-1.234,5", expected: "-1234.5", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			value, ok := ParseOrderValue(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, value.String())
			}
		})
	}
}
