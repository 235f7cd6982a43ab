package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/operation-metrics-api/infrastructure/repository"
	"github.com/vfg2006/operation-metrics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/operation-metrics-api/internal/config"
	"github.com/vfg2006/operation-metrics-api/internal/domain"
	costingmocks "github.com/vfg2006/operation-metrics-api/internal/usecases/costing/mocks"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Metrics: config.Metrics{
			ReferenceCurrency:   "BRL",
			FallbackTimezone:    "America/Sao_Paulo",
			TTLLastDay:          10 * time.Minute,
			TTLLast7Days:        30 * time.Minute,
			TTLLast30Days:       1 * time.Hour,
			TTLLast90Days:       3 * time.Hour,
			TTLCurrentMonth:     30 * time.Minute,
			SnapshotTTLFallback: 10 * time.Minute,
		},
	}
}

func activeOperation() *domain.Operation {
	return &domain.Operation{
		ID:           "OP001",
		Name:         "Loja Demo",
		StoreID:      "demo-store",
		BaseCurrency: "BRL",
		Timezone:     "America/Sao_Paulo",
		Status:       domain.OperationStatusActive,
		AdAccounts: []*domain.AdAccountRef{
			{ID: "AA001", ExternalID: "act_1001", Network: "meta", Selected: true},
		},
	}
}

func emptyAggregationExpectations(orderRepo *mocks.MockOrderRepository) {
	orderRepo.EXPECT().
		CountByBucket("OP001", gomock.Any(), gomock.Any()).
		Return(map[string]int{}, nil)
	orderRepo.EXPECT().
		RevenueSummary("OP001", gomock.Any(), gomock.Any()).
		Return(&domain.RevenueSummary{}, nil).
		Times(2) // período corrente e anterior
	orderRepo.EXPECT().
		DailyRevenueSeries("OP001", gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*domain.DailyRevenue{}, nil)
	orderRepo.EXPECT().
		CustomerStats("OP001", gomock.Any(), gomock.Any()).
		Return(0, 0.0, nil)
	orderRepo.EXPECT().
		CarrierCounts("OP001", gomock.Any(), gomock.Any()).
		Return(0, 0, nil)
}

func zeroCosts() *domain.CostBreakdown {
	return &domain.CostBreakdown{
		ProductCosts:        decimal.Zero,
		ShippingCosts:       decimal.Zero,
		CombinedCosts:       decimal.Zero,
		MarketingCosts:      decimal.Zero,
		ReturnHandlingCosts: decimal.Zero,
	}
}

func TestService_GetMetrics(t *testing.T) {
	tests := []struct {
		name     string
		request  domain.MetricsRequest
		setup    func(operationRepo *mocks.MockOperationRepository, orderRepo *mocks.MockOrderRepository, snapshotRepo *mocks.MockMetricsSnapshotRepository, costCalculator *costingmocks.MockCostCalculator)
		validate func(t *testing.T, snapshot *domain.MetricsSnapshot, err error)
	}{
		{
			name: "Operação inexistente - retorna métricas vazias sem erro",
			request: domain.MetricsRequest{
				OperationID: "OP404",
				Query:       domain.ByPeriod{Tag: domain.PeriodLast7Days},
			},
			setup: func(operationRepo *mocks.MockOperationRepository, orderRepo *mocks.MockOrderRepository, snapshotRepo *mocks.MockMetricsSnapshotRepository, costCalculator *costingmocks.MockCostCalculator) {
				operationRepo.EXPECT().GetByID("OP404").Return(nil, nil)
			},
			validate: func(t *testing.T, snapshot *domain.MetricsSnapshot, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, snapshot)
				assert.Equal(t, "BRL", snapshot.Currency)
				assert.Equal(t, 0, snapshot.TotalOrders)
				for _, bucket := range domain.StatusBuckets {
					assert.Contains(t, snapshot.StatusCounts, bucket)
				}
			},
		},
		{
			name: "Falha na busca da operação - propaga erro transitório",
			request: domain.MetricsRequest{
				OperationID: "OP001",
				Query:       domain.ByPeriod{Tag: domain.PeriodLast7Days},
			},
			setup: func(operationRepo *mocks.MockOperationRepository, orderRepo *mocks.MockOrderRepository, snapshotRepo *mocks.MockMetricsSnapshotRepository, costCalculator *costingmocks.MockCostCalculator) {
				operationRepo.EXPECT().GetByID("OP001").Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, snapshot *domain.MetricsSnapshot, err error) {
				assert.Nil(t, snapshot)
				assert.True(t, pkgerrors.Is(err, ErrTransientStore))
			},
		},
		{
			name: "Período simbólico desconhecido - erro de período inválido",
			request: domain.MetricsRequest{
				OperationID: "OP001",
				Query:       domain.ByPeriod{Tag: "last_fortnight"},
			},
			setup: func(operationRepo *mocks.MockOperationRepository, orderRepo *mocks.MockOrderRepository, snapshotRepo *mocks.MockMetricsSnapshotRepository, costCalculator *costingmocks.MockCostCalculator) {
				operationRepo.EXPECT().GetByID("OP001").Return(activeOperation(), nil)
			},
			validate: func(t *testing.T, snapshot *domain.MetricsSnapshot, err error) {
				assert.Nil(t, snapshot)
				assert.True(t, pkgerrors.Is(err, ErrInvalidPeriod))
			},
		},
		{
			name: "Snapshot fresco no cache - responde direto sem recalcular",
			request: domain.MetricsRequest{
				OperationID: "OP001",
				Query:       domain.ByPeriod{Tag: domain.PeriodLast7Days},
			},
			setup: func(operationRepo *mocks.MockOperationRepository, orderRepo *mocks.MockOrderRepository, snapshotRepo *mocks.MockMetricsSnapshotRepository, costCalculator *costingmocks.MockCostCalculator) {
				operationRepo.EXPECT().GetByID("OP001").Return(activeOperation(), nil)

				cached := &domain.MetricsSnapshot{
					OperationID:  "OP001",
					Period:       domain.PeriodLast7Days,
					Currency:     "BRL",
					TotalOrders:  42,
					CalculatedAt: time.Now().UTC().Add(-5 * time.Minute),
					ValidUntil:   time.Now().UTC().Add(25 * time.Minute),
				}
				snapshotRepo.EXPECT().
					Get(domain.SnapshotKey{OperationID: "OP001", Period: domain.PeriodLast7Days}).
					Return(cached, nil)
			},
			validate: func(t *testing.T, snapshot *domain.MetricsSnapshot, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 42, snapshot.TotalOrders)
			},
		},
		{
			name: "Snapshot vencido no cache - recalcula e sobrescreve",
			request: domain.MetricsRequest{
				OperationID: "OP001",
				Query:       domain.ByPeriod{Tag: domain.PeriodLast7Days},
			},
			setup: func(operationRepo *mocks.MockOperationRepository, orderRepo *mocks.MockOrderRepository, snapshotRepo *mocks.MockMetricsSnapshotRepository, costCalculator *costingmocks.MockCostCalculator) {
				operationRepo.EXPECT().GetByID("OP001").Return(activeOperation(), nil)

				stale := &domain.MetricsSnapshot{
					OperationID: "OP001",
					Period:      domain.PeriodLast7Days,
					ValidUntil:  time.Now().UTC().Add(-time.Minute),
				}
				snapshotRepo.EXPECT().
					Get(domain.SnapshotKey{OperationID: "OP001", Period: domain.PeriodLast7Days}).
					Return(stale, nil)

				emptyAggregationExpectations(orderRepo)
				costCalculator.EXPECT().
					CalculateCosts(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(zeroCosts(), nil)

				snapshotRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					DoAndReturn(func(snapshot *domain.MetricsSnapshot) error {
						assert.True(t, snapshot.ValidUntil.After(snapshot.CalculatedAt))
						assert.Equal(t, 30*time.Minute, snapshot.ValidUntil.Sub(snapshot.CalculatedAt))
						return nil
					})
			},
			validate: func(t *testing.T, snapshot *domain.MetricsSnapshot, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.PeriodLast7Days, snapshot.Period)
			},
		},
		{
			name: "Falha de escrita no cache - resultado recém-calculado é respondido mesmo assim",
			request: domain.MetricsRequest{
				OperationID: "OP001",
				Query:       domain.ByPeriod{Tag: domain.PeriodLastDay},
			},
			setup: func(operationRepo *mocks.MockOperationRepository, orderRepo *mocks.MockOrderRepository, snapshotRepo *mocks.MockMetricsSnapshotRepository, costCalculator *costingmocks.MockCostCalculator) {
				operationRepo.EXPECT().GetByID("OP001").Return(activeOperation(), nil)
				snapshotRepo.EXPECT().Get(gomock.Any()).Return(nil, nil)

				emptyAggregationExpectations(orderRepo)
				costCalculator.EXPECT().
					CalculateCosts(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(zeroCosts(), nil)

				snapshotRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(errors.New("disk full"))
			},
			validate: func(t *testing.T, snapshot *domain.MetricsSnapshot, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, snapshot)
			},
		},
		{
			name: "Intervalo explícito - nunca lê nem grava o cache",
			request: domain.MetricsRequest{
				OperationID: "OP001",
				Query: domain.ByRange{
					From: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
					To:   time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC),
				},
			},
			setup: func(operationRepo *mocks.MockOperationRepository, orderRepo *mocks.MockOrderRepository, snapshotRepo *mocks.MockMetricsSnapshotRepository, costCalculator *costingmocks.MockCostCalculator) {
				operationRepo.EXPECT().GetByID("OP001").Return(activeOperation(), nil)

				// Nenhuma expectativa em snapshotRepo: Get ou SaveOrUpdate
				// aqui falhariam o teste
				emptyAggregationExpectations(orderRepo)
				costCalculator.EXPECT().
					CalculateCosts(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(zeroCosts(), nil)
			},
			validate: func(t *testing.T, snapshot *domain.MetricsSnapshot, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "2024-03-01_2024-03-07", snapshot.Period)
				assert.True(t, snapshot.ValidUntil.IsZero())
			},
		},
		{
			name: "Intervalo explícito invertido - erro de período inválido",
			request: domain.MetricsRequest{
				OperationID: "OP001",
				Query: domain.ByRange{
					From: time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC),
					To:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				},
			},
			setup: func(operationRepo *mocks.MockOperationRepository, orderRepo *mocks.MockOrderRepository, snapshotRepo *mocks.MockMetricsSnapshotRepository, costCalculator *costingmocks.MockCostCalculator) {
				operationRepo.EXPECT().GetByID("OP001").Return(activeOperation(), nil)
			},
			validate: func(t *testing.T, snapshot *domain.MetricsSnapshot, err error) {
				assert.Nil(t, snapshot)
				assert.True(t, pkgerrors.Is(err, ErrInvalidPeriod))
			},
		},
		{
			name: "Falha na agregação de pedidos - erro transitório, nada é cacheado",
			request: domain.MetricsRequest{
				OperationID: "OP001",
				Query:       domain.ByPeriod{Tag: domain.PeriodLast30Days},
			},
			setup: func(operationRepo *mocks.MockOperationRepository, orderRepo *mocks.MockOrderRepository, snapshotRepo *mocks.MockMetricsSnapshotRepository, costCalculator *costingmocks.MockCostCalculator) {
				operationRepo.EXPECT().GetByID("OP001").Return(activeOperation(), nil)
				snapshotRepo.EXPECT().Get(gomock.Any()).Return(nil, nil)

				orderRepo.EXPECT().
					CountByBucket("OP001", gomock.Any(), gomock.Any()).
					Return(nil, errors.New("timeout"))
				orderRepo.EXPECT().
					RevenueSummary("OP001", gomock.Any(), gomock.Any()).
					Return(&domain.RevenueSummary{}, nil) // período anterior
				costCalculator.EXPECT().
					CalculateCosts(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(zeroCosts(), nil)
			},
			validate: func(t *testing.T, snapshot *domain.MetricsSnapshot, err error) {
				assert.Nil(t, snapshot)
				assert.True(t, pkgerrors.Is(err, ErrTransientStore))
			},
		},
		{
			name: "Falha na receita do período anterior - crescimento zera sem derrubar o cálculo",
			request: domain.MetricsRequest{
				OperationID: "OP001",
				Query:       domain.ByPeriod{Tag: domain.PeriodLast7Days},
			},
			setup: func(operationRepo *mocks.MockOperationRepository, orderRepo *mocks.MockOrderRepository, snapshotRepo *mocks.MockMetricsSnapshotRepository, costCalculator *costingmocks.MockCostCalculator) {
				operationRepo.EXPECT().GetByID("OP001").Return(activeOperation(), nil)
				snapshotRepo.EXPECT().Get(gomock.Any()).Return(nil, nil)

				orderRepo.EXPECT().
					CountByBucket("OP001", gomock.Any(), gomock.Any()).
					Return(map[string]int{domain.BucketDelivered: 2}, nil)
				orderRepo.EXPECT().
					RevenueSummary("OP001", gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ string, rng domain.DateRange, _ repository.OrderFilter) (*domain.RevenueSummary, error) {
						// O intervalo corrente termina hoje; o anterior
						// termina no passado
						if rng.To.Before(time.Now().UTC()) {
							return nil, errors.New("timeout")
						}
						return &domain.RevenueSummary{
							TotalOrders:      2,
							TotalRevenue:     decimal.NewFromInt(100),
							DeliveredRevenue: decimal.NewFromInt(100),
							DeliveredCount:   2,
						}, nil
					}).
					Times(2)
				orderRepo.EXPECT().
					DailyRevenueSeries("OP001", gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]*domain.DailyRevenue{}, nil)
				orderRepo.EXPECT().
					CustomerStats("OP001", gomock.Any(), gomock.Any()).
					Return(2, 1.0, nil)
				orderRepo.EXPECT().
					CarrierCounts("OP001", gomock.Any(), gomock.Any()).
					Return(2, 2, nil)

				costCalculator.EXPECT().
					CalculateCosts(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(zeroCosts(), nil)
				snapshotRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, snapshot *domain.MetricsSnapshot, err error) {
				assert.NoError(t, err)
				assert.True(t, snapshot.RevenueGrowth.IsZero())
				assert.True(t, snapshot.DeliveredRevenue.Equal(decimal.NewFromInt(100)))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			operationRepo := mocks.NewMockOperationRepository(ctrl)
			orderRepo := mocks.NewMockOrderRepository(ctrl)
			snapshotRepo := mocks.NewMockMetricsSnapshotRepository(ctrl)
			costCalculator := costingmocks.NewMockCostCalculator(ctrl)

			tt.setup(operationRepo, orderRepo, snapshotRepo, costCalculator)

			service := NewService(testConfig(), operationRepo, orderRepo, snapshotRepo, costCalculator)
			snapshot, err := service.GetMetrics(context.Background(), tt.request)

			tt.validate(t, snapshot, err)
		})
	}
}

func TestService_GetMetrics_LazyAdAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	operationRepo := mocks.NewMockOperationRepository(ctrl)
	orderRepo := mocks.NewMockOrderRepository(ctrl)
	snapshotRepo := mocks.NewMockMetricsSnapshotRepository(ctrl)
	costCalculator := costingmocks.NewMockCostCalculator(ctrl)

	operation := activeOperation()
	operation.AdAccounts = nil

	operationRepo.EXPECT().GetByID("OP001").Return(operation, nil)
	operationRepo.EXPECT().
		ListAdAccounts("OP001").
		Return([]*domain.AdAccountRef{
			{ID: "AA001", ExternalID: "act_1001", Network: "meta", Selected: true},
		}, nil)
	snapshotRepo.EXPECT().Get(gomock.Any()).Return(nil, nil)

	emptyAggregationExpectations(orderRepo)
	costCalculator.EXPECT().
		CalculateCosts(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, operation *domain.Operation, _ domain.DateRange, _ repository.OrderFilter) (*domain.CostBreakdown, error) {
			assert.Len(t, operation.AdAccounts, 1)
			return zeroCosts(), nil
		})
	snapshotRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

	service := NewService(testConfig(), operationRepo, orderRepo, snapshotRepo, costCalculator)
	snapshot, err := service.GetMetrics(context.Background(), domain.MetricsRequest{
		OperationID: "OP001",
		Query:       domain.ByPeriod{Tag: domain.PeriodLast7Days},
	})

	assert.NoError(t, err)
	assert.NotNil(t, snapshot)
}

func TestService_GetMetrics_FallbackTimezone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	operationRepo := mocks.NewMockOperationRepository(ctrl)
	orderRepo := mocks.NewMockOrderRepository(ctrl)
	snapshotRepo := mocks.NewMockMetricsSnapshotRepository(ctrl)
	costCalculator := costingmocks.NewMockCostCalculator(ctrl)

	// Operação sem fuso próprio usa o fuso de referência da configuração
	operation := activeOperation()
	operation.Timezone = ""

	cfg := testConfig()
	cfg.Metrics.FallbackTimezone = "America/Manaus"

	operationRepo.EXPECT().GetByID("OP001").Return(operation, nil)
	snapshotRepo.EXPECT().Get(gomock.Any()).Return(nil, nil)

	orderRepo.EXPECT().
		CountByBucket("OP001", gomock.Any(), gomock.Any()).
		Return(map[string]int{}, nil)
	orderRepo.EXPECT().
		RevenueSummary("OP001", gomock.Any(), gomock.Any()).
		Return(&domain.RevenueSummary{}, nil).
		Times(2)
	orderRepo.EXPECT().
		DailyRevenueSeries("OP001", gomock.Any(), "America/Manaus", gomock.Any()).
		Return([]*domain.DailyRevenue{}, nil)
	orderRepo.EXPECT().
		CustomerStats("OP001", gomock.Any(), gomock.Any()).
		Return(0, 0.0, nil)
	orderRepo.EXPECT().
		CarrierCounts("OP001", gomock.Any(), gomock.Any()).
		Return(0, 0, nil)

	costCalculator.EXPECT().
		CalculateCosts(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(zeroCosts(), nil)
	snapshotRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

	service := NewService(cfg, operationRepo, orderRepo, snapshotRepo, costCalculator)
	snapshot, err := service.GetMetrics(context.Background(), domain.MetricsRequest{
		OperationID: "OP001",
		Query:       domain.ByPeriod{Tag: domain.PeriodLast7Days},
	})

	assert.NoError(t, err)
	assert.NotNil(t, snapshot)
}

func TestService_InvalidateCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	operationRepo := mocks.NewMockOperationRepository(ctrl)
	orderRepo := mocks.NewMockOrderRepository(ctrl)
	snapshotRepo := mocks.NewMockMetricsSnapshotRepository(ctrl)
	costCalculator := costingmocks.NewMockCostCalculator(ctrl)

	snapshotRepo.EXPECT().InvalidateAll().Return(int64(7), nil)

	service := NewService(testConfig(), operationRepo, orderRepo, snapshotRepo, costCalculator)
	removed, err := service.InvalidateCache()

	assert.NoError(t, err)
	assert.Equal(t, int64(7), removed)
}
