package reporting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/operation-metrics-api/internal/domain"
)

func testOperation() *domain.Operation {
	return &domain.Operation{
		ID:           "OP001",
		Name:         "Loja Demo",
		StoreID:      "demo-store",
		BaseCurrency: "BRL",
		Timezone:     "America/Sao_Paulo",
		Status:       domain.OperationStatusActive,
	}
}

func TestComposeSnapshot(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		aggregation     *domain.OrderAggregation
		costs           *domain.CostBreakdown
		previousRevenue decimal.Decimal
		validate        func(t *testing.T, snapshot *domain.MetricsSnapshot)
	}{
		{
			name: "Período com vendas - deve derivar lucro, margem e ROI",
			aggregation: &domain.OrderAggregation{
				StatusCounts: map[string]int{
					domain.BucketDelivered: 10,
					domain.BucketPending:   2,
				},
				Summary: domain.RevenueSummary{
					TotalOrders:      12,
					TotalRevenue:     decimal.NewFromInt(720),
					DeliveredRevenue: decimal.NewFromInt(600),
					PaidRevenue:      decimal.NewFromInt(650),
					DeliveredCount:   10,
					PaidCount:        11,
				},
				UniqueCustomers:     9,
				AverageDeliveryDays: 3.5,
				CarrierOrders:       11,
				CarrierDelivered:    10,
			},
			costs: &domain.CostBreakdown{
				ProductCosts:        decimal.NewFromInt(120),
				ShippingCosts:       decimal.NewFromInt(60),
				CombinedCosts:       decimal.NewFromInt(180),
				MarketingCosts:      decimal.NewFromInt(50),
				ReturnHandlingCosts: decimal.Zero,
			},
			previousRevenue: decimal.NewFromInt(500),
			validate: func(t *testing.T, snapshot *domain.MetricsSnapshot) {
				// 600 - 180 - 50 = 370
				assert.True(t, snapshot.Profit.Equal(decimal.NewFromInt(370)), "lucro: %s", snapshot.Profit)
				// 370 / 600 * 100 = 61.67
				assert.Equal(t, "61.67", snapshot.ProfitMargin.String())
				// (600 - 230) / 230 * 100 = 160.87
				assert.Equal(t, "160.87", snapshot.ROI.String())
				// 50 / 10
				assert.Equal(t, "5", snapshot.CPAPerDelivered.String())
				// 50 / 12 = 4.17
				assert.Equal(t, "4.17", snapshot.CPAPerLead.String())
				// 600 / 10
				assert.Equal(t, "60", snapshot.AverageOrderValue.String())
				// 10 / 11 * 100 = 90.91
				assert.Equal(t, "90.91", snapshot.DeliveryRate.String())
				// (600 - 500) / 500 * 100 = 20
				assert.Equal(t, "20", snapshot.RevenueGrowth.String())
				assert.Equal(t, "BRL", snapshot.Currency)
				assert.Equal(t, now, snapshot.CalculatedAt)
			},
		},
		{
			name: "Período sem pedidos - indicadores derivados zeram em vez de dividir por zero",
			aggregation: &domain.OrderAggregation{
				StatusCounts: map[string]int{},
				Summary: domain.RevenueSummary{
					TotalOrders:      0,
					TotalRevenue:     decimal.Zero,
					DeliveredRevenue: decimal.Zero,
					PaidRevenue:      decimal.Zero,
				},
			},
			costs: &domain.CostBreakdown{
				ProductCosts:        decimal.Zero,
				ShippingCosts:       decimal.Zero,
				CombinedCosts:       decimal.Zero,
				MarketingCosts:      decimal.Zero,
				ReturnHandlingCosts: decimal.Zero,
			},
			previousRevenue: decimal.Zero,
			validate: func(t *testing.T, snapshot *domain.MetricsSnapshot) {
				assert.True(t, snapshot.Profit.IsZero())
				assert.True(t, snapshot.ProfitMargin.IsZero())
				assert.True(t, snapshot.ROI.IsZero())
				assert.True(t, snapshot.CPAPerDelivered.IsZero())
				assert.True(t, snapshot.CPAPerLead.IsZero())
				assert.True(t, snapshot.AverageOrderValue.IsZero())
				assert.True(t, snapshot.DeliveryRate.IsZero())
				assert.True(t, snapshot.RevenueGrowth.IsZero())
			},
		},
		{
			name: "Marketing sem entregas - CPA por entrega zera, CPA por lead não",
			aggregation: &domain.OrderAggregation{
				StatusCounts: map[string]int{domain.BucketPending: 4},
				Summary: domain.RevenueSummary{
					TotalOrders:      4,
					TotalRevenue:     decimal.NewFromInt(200),
					DeliveredRevenue: decimal.Zero,
					DeliveredCount:   0,
				},
			},
			costs: &domain.CostBreakdown{
				ProductCosts:        decimal.Zero,
				ShippingCosts:       decimal.Zero,
				CombinedCosts:       decimal.Zero,
				MarketingCosts:      decimal.NewFromInt(100),
				ReturnHandlingCosts: decimal.Zero,
			},
			previousRevenue: decimal.Zero,
			validate: func(t *testing.T, snapshot *domain.MetricsSnapshot) {
				assert.True(t, snapshot.CPAPerDelivered.IsZero())
				assert.Equal(t, "25", snapshot.CPAPerLead.String())
				// 0 - 0 - 100 - 0 = -100
				assert.True(t, snapshot.Profit.Equal(decimal.NewFromInt(-100)))
				assert.True(t, snapshot.ProfitMargin.IsZero())
			},
		},
		{
			name: "Custo de devoluções entra no lucro mas não nos custos combinados",
			aggregation: &domain.OrderAggregation{
				StatusCounts: map[string]int{domain.BucketDelivered: 5, domain.BucketReturned: 1},
				Summary: domain.RevenueSummary{
					TotalOrders:      6,
					TotalRevenue:     decimal.NewFromInt(360),
					DeliveredRevenue: decimal.NewFromInt(300),
					DeliveredCount:   5,
				},
			},
			costs: &domain.CostBreakdown{
				ProductCosts:        decimal.NewFromInt(80),
				ShippingCosts:       decimal.NewFromInt(20),
				CombinedCosts:       decimal.NewFromInt(100),
				MarketingCosts:      decimal.NewFromInt(30),
				ReturnHandlingCosts: decimal.NewFromInt(10),
			},
			previousRevenue: decimal.Zero,
			validate: func(t *testing.T, snapshot *domain.MetricsSnapshot) {
				// 300 - 100 - 30 - 10 = 160
				assert.True(t, snapshot.Profit.Equal(decimal.NewFromInt(160)))
				assert.True(t, snapshot.CombinedCosts.Equal(decimal.NewFromInt(100)))
				assert.True(t, snapshot.ReturnHandlingCosts.Equal(decimal.NewFromInt(10)))
				// (300 - 140) / 140 * 100 = 114.29
				assert.Equal(t, "114.29", snapshot.ROI.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := ComposeSnapshot(testOperation(), domain.PeriodLast7Days, nil, tt.aggregation, tt.costs, tt.previousRevenue, now)

			assert.Equal(t, "OP001", snapshot.OperationID)
			assert.Equal(t, domain.PeriodLast7Days, snapshot.Period)
			tt.validate(t, snapshot)
		})
	}
}

func TestComposeSnapshot_ReconciliationWithAggregation(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	aggregation := &domain.OrderAggregation{
		StatusCounts: map[string]int{
			domain.BucketPending:   3,
			domain.BucketShipped:   2,
			domain.BucketDelivered: 4,
			domain.BucketCancelled: 1,
		},
		Summary: domain.RevenueSummary{
			TotalOrders:      10,
			TotalRevenue:     decimal.NewFromInt(1000),
			DeliveredRevenue: decimal.NewFromInt(400),
			DeliveredCount:   4,
		},
		DailySeries: []*domain.DailyRevenue{
			{Day: "2024-03-09", Revenue: decimal.NewFromInt(600), OrderCount: 6},
			{Day: "2024-03-10", Revenue: decimal.NewFromInt(400), OrderCount: 4},
		},
	}
	costs := &domain.CostBreakdown{
		ProductCosts:        decimal.Zero,
		ShippingCosts:       decimal.Zero,
		CombinedCosts:       decimal.Zero,
		MarketingCosts:      decimal.Zero,
		ReturnHandlingCosts: decimal.Zero,
	}

	snapshot := ComposeSnapshot(testOperation(), domain.PeriodLast7Days, nil, aggregation, costs, decimal.Zero, now)

	// A soma dos buckets fecha com o total de pedidos
	bucketTotal := 0
	for _, count := range snapshot.StatusCounts {
		bucketTotal += count
	}
	assert.Equal(t, snapshot.TotalOrders, bucketTotal)

	// A série diária fecha com a receita total do período
	seriesTotal := decimal.Zero
	for _, day := range snapshot.DailySeries {
		seriesTotal = seriesTotal.Add(day.Revenue)
	}
	assert.True(t, snapshot.TotalRevenue.Equal(seriesTotal))
}
