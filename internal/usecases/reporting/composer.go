package reporting

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/operation-metrics-api/internal/domain"
)

// ratioPlaces é a precisão de exibição dos indicadores derivados
const ratioPlaces = 2

var oneHundred = decimal.NewFromInt(100)

// percentOf calcula num/den*100 com denominador zero resolvendo para 0,
// nunca para erro, NaN ou infinito
func percentOf(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Mul(oneHundred).DivRound(den, ratioPlaces)
}

// ratioOf calcula num/den com denominador zero resolvendo para 0
func ratioOf(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.DivRound(den, ratioPlaces)
}

// ComposeSnapshot combina a saída do agregador de pedidos com o
// detalhamento de custos no snapshot final. Função pura: toda a
// aritmética derivada acontece aqui e em nenhum outro lugar.
func ComposeSnapshot(
	operation *domain.Operation,
	periodTag string,
	provider *string,
	aggregation *domain.OrderAggregation,
	costs *domain.CostBreakdown,
	previousDeliveredRevenue decimal.Decimal,
	now time.Time,
) *domain.MetricsSnapshot {
	summary := aggregation.Summary
	totalCosts := costs.TotalCosts()

	profit := summary.DeliveredRevenue.
		Sub(costs.CombinedCosts).
		Sub(costs.MarketingCosts).
		Sub(costs.ReturnHandlingCosts)

	deliveredCount := decimal.NewFromInt(int64(summary.DeliveredCount))
	totalOrders := decimal.NewFromInt(int64(summary.TotalOrders))

	return &domain.MetricsSnapshot{
		OperationID: operation.ID,
		Period:      periodTag,
		Provider:    provider,
		Currency:    operation.BaseCurrency,

		TotalOrders:  summary.TotalOrders,
		StatusCounts: aggregation.StatusCounts,
		DailySeries:  aggregation.DailySeries,

		TotalRevenue:     summary.TotalRevenue,
		DeliveredRevenue: summary.DeliveredRevenue,
		PaidRevenue:      summary.PaidRevenue,
		DeliveredCount:   summary.DeliveredCount,
		PaidCount:        summary.PaidCount,

		ProductCosts:        costs.ProductCosts,
		ShippingCosts:       costs.ShippingCosts,
		CombinedCosts:       costs.CombinedCosts,
		MarketingCosts:      costs.MarketingCosts,
		ReturnHandlingCosts: costs.ReturnHandlingCosts,

		Profit:            profit,
		ProfitMargin:      percentOf(profit, summary.DeliveredRevenue),
		ROI:               percentOf(summary.DeliveredRevenue.Sub(totalCosts), totalCosts),
		CPAPerDelivered:   ratioOf(costs.MarketingCosts, deliveredCount),
		CPAPerLead:        ratioOf(costs.MarketingCosts, totalOrders),
		AverageOrderValue: ratioOf(summary.DeliveredRevenue, deliveredCount),
		DeliveryRate: percentOf(
			decimal.NewFromInt(int64(aggregation.CarrierDelivered)),
			decimal.NewFromInt(int64(aggregation.CarrierOrders)),
		),

		UniqueCustomers:     aggregation.UniqueCustomers,
		AverageDeliveryDays: aggregation.AverageDeliveryDays,

		RevenueGrowth: percentOf(
			summary.DeliveredRevenue.Sub(previousDeliveredRevenue),
			previousDeliveredRevenue,
		),

		CalculatedAt: now,
	}
}
