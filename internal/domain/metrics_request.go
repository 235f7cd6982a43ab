package domain

import "time"

// MetricsQuery é a forma canônica de uma consulta de métricas, resolvida
// uma única vez na borda da API. As variantes substituem o antigo conjunto
// de parâmetros opcionais sobrepostos (período vs. intervalo vs. filtros).
type MetricsQuery interface {
	// Cacheable indica se a consulta participa da rotação periódica do
	// dashboard e portanto pode ler/escrever o cache de snapshots
	Cacheable() bool

	// Provider retorna o filtro de canal de vendas, se houver
	ProviderFilter() *string
}

// ByPeriod consulta por tag simbólica de período (sempre cacheável)
type ByPeriod struct {
	Tag      string
	Provider *string
}

func (q ByPeriod) Cacheable() bool { return true }
func (q ByPeriod) ProviderFilter() *string { return q.Provider }

// ByRange consulta por intervalo explícito de datas, com filtro opcional
// de produto. Nunca passa pelo cache: consultas fora da rotação do
// dashboard fariam o espaço de chaves crescer sem limite.
type ByRange struct {
	From      time.Time
	To        time.Time
	Provider  *string
	ProductID *string
}

func (q ByRange) Cacheable() bool { return false }
func (q ByRange) ProviderFilter() *string { return q.Provider }

// MetricsRequest é o pedido completo de métricas de uma operação
type MetricsRequest struct {
	OperationID string
	Query       MetricsQuery
}

// SnapshotKey identifica um snapshot no cache: operação + período + canal.
// Apenas consultas ByPeriod geram chaves.
type SnapshotKey struct {
	OperationID string
	Period      string
	Provider    *string
}
