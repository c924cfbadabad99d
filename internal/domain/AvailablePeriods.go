package domain

// AvailablePeriods representa os meses disponíveis na planilha de pedidos
type AvailablePeriods struct {
	Periods []string `json:"periods"` // Lista de períodos no formato yyyy-mm, em ordem crescente
	Default string   `json:"default"` // Período selecionado quando nenhum é informado
	Years   []string `json:"years"`   // Lista de anos únicos disponíveis
	Months  []string `json:"months"`  // Lista de meses únicos disponíveis
}
