package reporting

import (
	"context"

	"github.com/vfg2006/operation-metrics-api/internal/domain"
)

// Reporter define a interface de consulta de métricas de uma operação
type Reporter interface {
	// GetMetrics resolve a consulta, lê o cache quando aplicável e
	// recalcula o snapshot quando ausente ou vencido
	GetMetrics(ctx context.Context, request domain.MetricsRequest) (*domain.MetricsSnapshot, error)

	// ListOperations enumera as operações disponíveis para o dashboard
	ListOperations() ([]*domain.Operation, error)

	// InvalidateCache descarta todos os snapshots cacheados
	InvalidateCache() (int64, error)
}
