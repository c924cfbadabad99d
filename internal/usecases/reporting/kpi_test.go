package reporting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/sales-flash-api/internal/domain"
)

func TestCalculateKPI(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		target   int64
		validate func(t *testing.T, kpi domain.KPISnapshot, cards []domain.MetricCard)
	}{
		{
			name:   "Abaixo da meta",
			total:  30000,
			target: 50000,
			validate: func(t *testing.T, kpi domain.KPISnapshot, cards []domain.MetricCard) {
				assert.Equal(t, "60", kpi.Percent.String())
				assert.False(t, kpi.TargetReached)
				assert.Equal(t, "R$ 30.000,00", cards[0].Value)
				assert.Equal(t, "R$ 50.000,00", cards[1].Value)
				assert.Equal(t, "40.00%", cards[2].Value)
				assert.Equal(t, "60.00%", cards[3].Value)
				assert.Equal(t, "R$ 20.000,00", cards[4].Value)
			},
		},
		{
			name:   "Meta superada",
			total:  60000,
			target: 50000,
			validate: func(t *testing.T, kpi domain.KPISnapshot, cards []domain.MetricCard) {
				assert.True(t, kpi.TargetReached)
				assert.True(t, kpi.Shortfall.IsZero())
				assert.Equal(t, "0%", cards[2].Value)
				assert.Equal(t, "120.00%", cards[3].Value)
				assert.Equal(t, "R$ 0,00", cards[4].Value)
			},
		},
		{
			name:   "Meta zero",
			total:  1000,
			target: 0,
			validate: func(t *testing.T, kpi domain.KPISnapshot, cards []domain.MetricCard) {
				assert.True(t, kpi.Percent.IsZero())
				assert.True(t, kpi.Shortfall.IsZero())
				assert.Equal(t, "0.00%", cards[3].Value)
			},
		},
		{
			name:   "Sem pedidos",
			total:  0,
			target: 50000,
			validate: func(t *testing.T, kpi domain.KPISnapshot, cards []domain.MetricCard) {
				assert.Equal(t, "R$ 0,00", cards[0].Value)
				assert.Equal(t, "100.00%", cards[2].Value)
				assert.Equal(t, "R$ 50.000,00", cards[4].Value)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kpi := CalculateKPI(decimal.NewFromInt(tt.total), decimal.NewFromInt(tt.target))
			cards := MetricCards(kpi)
			require.Len(t, cards, 5)
			assert.Equal(t,
				[]string{MetricTotal, MetricTarget, MetricPercentRemaining, MetricPercentAchieved, MetricShortfall},
				[]string{cards[0].Label, cards[1].Label, cards[2].Label, cards[3].Label, cards[4].Label},
			)
			tt.validate(t, kpi, cards)
		})
	}
}

func TestCalculateKPI_Monotonic(t *testing.T) {
	target := decimal.NewFromInt(50000)
	previous := CalculateKPI(decimal.Zero, target)

	for total := int64(5000); total <= 80000; total += 5000 {
		current := CalculateKPI(decimal.NewFromInt(total), target)
		assert.True(t, current.Percent.GreaterThanOrEqual(previous.Percent), "total %d", total)
		assert.True(t, current.Shortfall.LessThanOrEqual(previous.Shortfall), "total %d", total)
		assert.False(t, current.Shortfall.IsNegative())
		previous = current
	}
}
