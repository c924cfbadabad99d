package reporting

import (
	"context"

	"github.com/vfg2006/sales-flash-api/internal/domain"
)

// Reporter define a montagem do flash de vendas a partir da planilha de pedidos
type Reporter interface {
	// BuildDashboard monta o flash de vendas do mês informado (yyyy-mm).
	// Mês vazio seleciona o mês corrente, ou o mais antigo disponível.
	BuildDashboard(ctx context.Context, month string) (*domain.Dashboard, error)

	// AvailableMonths retorna os meses presentes na planilha e o mês padrão
	AvailableMonths(ctx context.Context) (*domain.AvailablePeriods, error)
}
