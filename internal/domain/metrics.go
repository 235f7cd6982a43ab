package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevenueSummary é a saída set-based do agregador de pedidos para um
// período, sempre na moeda base da operação.
type RevenueSummary struct {
	TotalOrders      int             `json:"total_orders"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	DeliveredRevenue decimal.Decimal `json:"delivered_revenue"`
	PaidRevenue      decimal.Decimal `json:"paid_revenue"`
	DeliveredCount   int             `json:"delivered_count"`
	PaidCount        int             `json:"paid_count"`
}

// DailyRevenue é um ponto da série diária de receita para o gráfico do
// dashboard. O dia é calculado projetando o timestamp armazenado no fuso
// da operação antes de truncar para data.
type DailyRevenue struct {
	Day        string          `json:"day"`
	Revenue    decimal.Decimal `json:"revenue"`
	OrderCount int             `json:"order_count"`
}

// OrderAggregation reúne as saídas do agregador de pedidos
type OrderAggregation struct {
	StatusCounts        map[string]int  `json:"status_counts"`
	Summary             RevenueSummary  `json:"summary"`
	DailySeries         []*DailyRevenue `json:"daily_series"`
	UniqueCustomers     int             `json:"unique_customers"`
	AverageDeliveryDays float64         `json:"average_delivery_days"`
	CarrierOrders       int             `json:"carrier_orders"`
	CarrierDelivered    int             `json:"carrier_delivered"`
}

// MetricsSnapshot é a unidade cacheada de métricas de uma operação.
// Valores monetários sempre na moeda base declarada da operação; a
// conversão para moeda de exibição acontece na leitura, com a taxa
// corrente, nunca re-derivando os valores base cacheados.
type MetricsSnapshot struct {
	ID          string  `json:"id,omitempty"`
	OperationID string  `json:"operation_id"`
	Period      string  `json:"period"`
	Provider    *string `json:"provider,omitempty"`

	Currency string `json:"currency"`

	TotalOrders  int             `json:"total_orders"`
	StatusCounts map[string]int  `json:"status_counts"`
	DailySeries  []*DailyRevenue `json:"daily_series,omitempty"`

	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	DeliveredRevenue decimal.Decimal `json:"delivered_revenue"`
	PaidRevenue      decimal.Decimal `json:"paid_revenue"`
	DeliveredCount   int             `json:"delivered_count"`
	PaidCount        int             `json:"paid_count"`

	ProductCosts        decimal.Decimal `json:"product_costs"`
	ShippingCosts       decimal.Decimal `json:"shipping_costs"`
	CombinedCosts       decimal.Decimal `json:"combined_costs"`
	MarketingCosts      decimal.Decimal `json:"marketing_costs"`
	ReturnHandlingCosts decimal.Decimal `json:"return_handling_costs"`

	Profit            decimal.Decimal `json:"profit"`
	ProfitMargin      decimal.Decimal `json:"profit_margin"`
	ROI               decimal.Decimal `json:"roi"`
	CPAPerDelivered   decimal.Decimal `json:"cpa_per_delivered"`
	CPAPerLead        decimal.Decimal `json:"cpa_per_lead"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	DeliveryRate      decimal.Decimal `json:"delivery_rate"`

	UniqueCustomers     int     `json:"unique_customers"`
	AverageDeliveryDays float64 `json:"average_delivery_days"`

	RevenueGrowth decimal.Decimal `json:"revenue_growth"`

	CalculatedAt time.Time `json:"calculated_at"`
	ValidUntil   time.Time `json:"valid_until"`
}

// Key retorna a chave de cache do snapshot
func (s *MetricsSnapshot) Key() SnapshotKey {
	return SnapshotKey{
		OperationID: s.OperationID,
		Period:      s.Period,
		Provider:    s.Provider,
	}
}

// IsFresh indica se o snapshot ainda está dentro da janela de validade
func (s *MetricsSnapshot) IsFresh(now time.Time) bool {
	return s.ValidUntil.After(now)
}

// EmptyMetricsSnapshot retorna o objeto explícito de métricas vazias usado
// quando o usuário não tem operação resolvível. "Sem dados ainda" é um
// estado normal, distinto de falha de busca.
func EmptyMetricsSnapshot(currency string) *MetricsSnapshot {
	counts := make(map[string]int, len(StatusBuckets))
	for _, bucket := range StatusBuckets {
		counts[bucket] = 0
	}

	return &MetricsSnapshot{
		Currency:     currency,
		StatusCounts: counts,
		DailySeries:  make([]*DailyRevenue, 0),
		CalculatedAt: time.Now().UTC(),
	}
}
