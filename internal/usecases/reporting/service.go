package reporting

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/operation-metrics-api/infrastructure/repository"
	"github.com/vfg2006/operation-metrics-api/internal/config"
	"github.com/vfg2006/operation-metrics-api/internal/domain"
	"github.com/vfg2006/operation-metrics-api/internal/usecases/costing"
)

type Service struct {
	cfg            *config.Config
	operationRepo  repository.OperationRepository
	orderRepo      repository.OrderRepository
	snapshotRepo   repository.MetricsSnapshotRepository
	costCalculator costing.CostCalculator
}

func NewService(
	cfg *config.Config,
	operationRepo repository.OperationRepository,
	orderRepo repository.OrderRepository,
	snapshotRepo repository.MetricsSnapshotRepository,
	costCalculator costing.CostCalculator,
) Reporter {
	return &Service{
		cfg:            cfg,
		operationRepo:  operationRepo,
		orderRepo:      orderRepo,
		snapshotRepo:   snapshotRepo,
		costCalculator: costCalculator,
	}
}

// GetMetrics resolve a consulta de métricas de uma operação. Operação
// inexistente retorna o objeto explícito de métricas vazias; snapshot
// cacheado e válido responde direto; vencido ou ausente dispara o
// recálculo síncrono que sobrescreve o cache.
func (s *Service) GetMetrics(ctx context.Context, request domain.MetricsRequest) (*domain.MetricsSnapshot, error) {
	operation, err := s.operationRepo.GetByID(request.OperationID)
	if err != nil {
		return nil, errors.Wrap(ErrTransientStore, err.Error())
	}

	if operation == nil {
		logrus.WithField("operation_id", request.OperationID).
			Info("Operação não encontrada, retornando métricas vazias")
		return domain.EmptyMetricsSnapshot(s.cfg.Metrics.ReferenceCurrency), nil
	}

	if len(operation.AdAccounts) == 0 {
		accounts, err := s.operationRepo.ListAdAccounts(operation.ID)
		if err != nil {
			logrus.WithError(err).WithField("operation_id", operation.ID).
				Warn("Erro ao listar contas de anúncio da operação, seguindo sem gasto de rede")
		} else {
			operation.AdAccounts = accounts
		}
	}

	rng, periodTag, err := s.resolveQuery(operation, request.Query)
	if err != nil {
		return nil, err
	}

	key := domain.SnapshotKey{
		OperationID: operation.ID,
		Period:      periodTag,
		Provider:    request.Query.ProviderFilter(),
	}

	if request.Query.Cacheable() {
		snapshot, err := s.snapshotRepo.Get(key)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"operation_id": operation.ID,
				"period":       periodTag,
			}).Warn("Erro ao ler o cache de snapshots, recalculando")
		} else if snapshot != nil && snapshot.IsFresh(time.Now()) {
			return snapshot, nil
		}
	}

	snapshot, err := s.computeSnapshot(ctx, operation, rng, periodTag, request.Query)
	if err != nil {
		return nil, err
	}

	if request.Query.Cacheable() {
		snapshot.ValidUntil = snapshot.CalculatedAt.Add(s.cfg.Metrics.TTLFor(periodTag))
		if err := s.snapshotRepo.SaveOrUpdate(snapshot); err != nil {
			// Falha de escrita no cache não invalida o cálculo já feito
			logrus.WithError(err).WithFields(logrus.Fields{
				"operation_id": operation.ID,
				"period":       periodTag,
			}).Warn("Erro ao gravar snapshot no cache")
		}
	}

	return snapshot, nil
}

// ListOperations enumera as operações ativas e inativas para o dashboard
func (s *Service) ListOperations() ([]*domain.Operation, error) {
	return s.operationRepo.ListOperations([]domain.OperationStatus{
		domain.OperationStatusActive,
		domain.OperationStatusInactive,
	})
}

// InvalidateCache descarta todos os snapshots cacheados e retorna quantos
// foram removidos
func (s *Service) InvalidateCache() (int64, error) {
	return s.snapshotRepo.InvalidateAll()
}

// timezoneFor resolve o fuso da operação, caindo no fuso de referência
// configurado quando a operação não tem fuso próprio
func (s *Service) timezoneFor(operation *domain.Operation) string {
	if operation.Timezone == "" {
		return s.cfg.Metrics.FallbackTimezone
	}
	return operation.Timezone
}

// resolveQuery converte a consulta na sua forma canônica: um intervalo
// absoluto UTC e a chave de período usada no cache. Intervalos explícitos
// ganham uma chave descritiva apenas para log; eles nunca tocam o cache.
func (s *Service) resolveQuery(operation *domain.Operation, query domain.MetricsQuery) (domain.DateRange, string, error) {
	switch q := query.(type) {
	case domain.ByPeriod:
		rng, err := domain.ResolvePeriod(q.Tag, s.timezoneFor(operation), time.Now())
		if err != nil {
			return domain.DateRange{}, "", errors.Wrap(ErrInvalidPeriod, err.Error())
		}
		return rng, q.Tag, nil

	case domain.ByRange:
		rng, err := domain.ResolveRange(q.From, q.To, s.timezoneFor(operation))
		if err != nil {
			return domain.DateRange{}, "", errors.Wrap(ErrInvalidPeriod, err.Error())
		}
		tag := fmt.Sprintf("%s_%s", q.From.Format(time.DateOnly), q.To.Format(time.DateOnly))
		return rng, tag, nil

	default:
		return domain.DateRange{}, "", ErrInvalidPeriod
	}
}

// computeSnapshot executa as três frentes em paralelo: agregação de
// pedidos, custos e receita do período anterior. Falha de loja aborta;
// custos de marketing já degradam internamente no calculador.
func (s *Service) computeSnapshot(ctx context.Context, operation *domain.Operation, rng domain.DateRange, periodTag string, query domain.MetricsQuery) (*domain.MetricsSnapshot, error) {
	filter := repository.OrderFilter{Provider: query.ProviderFilter()}
	if byRange, ok := query.(domain.ByRange); ok {
		filter.ProductSKU = byRange.ProductID
	}

	var wg sync.WaitGroup
	var aggregation *domain.OrderAggregation
	var costs *domain.CostBreakdown
	previousRevenue := decimal.Zero
	var aggregationErr, costsErr error

	wg.Add(1)
	go func() {
		defer wg.Done()
		aggregation, aggregationErr = s.aggregateOrders(operation, rng, filter)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		costs, costsErr = s.costCalculator.CalculateCosts(ctx, operation, rng, filter)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		previous, err := s.orderRepo.RevenueSummary(operation.ID, rng.Previous(), filter)
		if err != nil {
			// Crescimento é acessório: degrada para zero sem derrubar o cálculo
			logrus.WithError(err).WithFields(logrus.Fields{
				"operation_id": operation.ID,
				"period":       periodTag,
			}).Warn("Erro ao calcular a receita do período anterior, crescimento zerado")
			return
		}
		if previous != nil {
			previousRevenue = previous.DeliveredRevenue
		}
	}()

	wg.Wait()

	if aggregationErr != nil {
		return nil, errors.Wrap(ErrTransientStore, aggregationErr.Error())
	}
	if costsErr != nil {
		return nil, errors.Wrap(ErrTransientStore, costsErr.Error())
	}

	return ComposeSnapshot(
		operation,
		periodTag,
		query.ProviderFilter(),
		aggregation,
		costs,
		previousRevenue,
		time.Now().UTC(),
	), nil
}

// aggregateOrders reúne as saídas set-based do repositório de pedidos
func (s *Service) aggregateOrders(operation *domain.Operation, rng domain.DateRange, filter repository.OrderFilter) (*domain.OrderAggregation, error) {
	counts, err := s.orderRepo.CountByBucket(operation.ID, rng, filter)
	if err != nil {
		return nil, err
	}

	summary, err := s.orderRepo.RevenueSummary(operation.ID, rng, filter)
	if err != nil {
		return nil, err
	}

	series, err := s.orderRepo.DailyRevenueSeries(operation.ID, rng, s.timezoneFor(operation), filter)
	if err != nil {
		return nil, err
	}

	uniqueCustomers, averageDeliveryDays, err := s.orderRepo.CustomerStats(operation.ID, rng, filter)
	if err != nil {
		return nil, err
	}

	carrierOrders, carrierDelivered, err := s.orderRepo.CarrierCounts(operation.ID, rng, filter)
	if err != nil {
		return nil, err
	}

	return &domain.OrderAggregation{
		StatusCounts:        counts,
		Summary:             *summary,
		DailySeries:         series,
		UniqueCustomers:     uniqueCustomers,
		AverageDeliveryDays: averageDeliveryDays,
		CarrierOrders:       carrierOrders,
		CarrierDelivered:    carrierDelivered,
	}, nil
}
