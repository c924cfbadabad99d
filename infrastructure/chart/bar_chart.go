// Package chart desenha o gráfico de vendas por vendedor
package chart

import (
	"image/color"
	"io"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vfg2006/sales-flash-api/internal/domain"
	"github.com/vfg2006/sales-flash-api/pkg/utils"
)

const (
	Title  = "Total de Vendas por Vendedor"
	XLabel = "Vendedor"
	YLabel = "Total Vendido (R$)"
)

// Verde das barras (#4CAF50)
var barColor = color.RGBA{R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF}

// Renderer define a geração da imagem do gráfico
type Renderer interface {
	Render(w io.Writer, bars []domain.ChartBar) error
}

// BarChartRenderer gera o gráfico de barras em PNG
type BarChartRenderer struct {
	width  vg.Length
	height vg.Length
}

// NewBarChartRenderer cria um renderizador com as dimensões em centímetros
func NewBarChartRenderer(widthCm, heightCm float64) *BarChartRenderer {
	return &BarChartRenderer{
		width:  vg.Length(widthCm) * vg.Centimeter,
		height: vg.Length(heightCm) * vg.Centimeter,
	}
}

// Render escreve o PNG com uma barra por vendedor, na ordem recebida.
// Sem barras, o gráfico sai vazio com título e eixos.
func (r *BarChartRenderer) Render(w io.Writer, bars []domain.ChartBar) error {
	p := plot.New()
	p.Title.Text = Title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = XLabel
	p.Y.Label.Text = YLabel
	p.Y.Min = 0

	if len(bars) == 0 {
		p.X.Min, p.X.Max = 0, 1
		p.Y.Max = 1
	} else if err := addBars(p, bars); err != nil {
		return err
	}

	writer, err := p.WriterTo(r.width, r.height, "png")
	if err != nil {
		return errors.Wrap(err, "falha ao preparar o gráfico")
	}

	if _, err := writer.WriteTo(w); err != nil {
		return errors.Wrap(err, "falha ao escrever o gráfico")
	}

	return nil
}

func addBars(p *plot.Plot, bars []domain.ChartBar) error {
	values := make(plotter.Values, len(bars))
	names := make([]string, len(bars))
	labels := plotter.XYLabels{}

	minValue, maxValue := 0.0, 0.0
	for i, bar := range bars {
		value := utils.RoundWithTwoDecimalPlace(bar.Total.InexactFloat64())
		values[i] = value
		names[i] = bar.Salesperson
		minValue = math.Min(minValue, value)
		maxValue = math.Max(maxValue, value)
	}

	chart, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return errors.Wrap(err, "falha ao montar as barras")
	}
	chart.Color = barColor
	chart.LineStyle.Width = vg.Length(0)

	p.Add(chart)
	p.NominalX(names...)
	p.X.Tick.Label.XAlign = draw.XCenter

	if maxValue == 0 && minValue == 0 {
		maxValue = 1
	}
	p.Y.Min = minValue * 1.15
	p.Y.Max = maxValue * 1.15

	for i, bar := range bars {
		labels.XYs = append(labels.XYs, plotter.XY{X: float64(i), Y: values[i] + maxValue*0.02})
		labels.Labels = append(labels.Labels, bar.TotalFormatted)
	}

	valueLabels, err := plotter.NewLabels(labels)
	if err != nil {
		return errors.Wrap(err, "falha ao montar os rótulos")
	}
	for i := range valueLabels.TextStyle {
		valueLabels.TextStyle[i].XAlign = draw.XCenter
	}
	p.Add(valueLabels)

	return nil
}
