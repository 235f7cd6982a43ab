package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LinkedProductCost associa um SKU, no escopo de uma operação/loja, ao
// custo de produto e de frete usados para atribuir custo aos pedidos
// entregues. Somente leitura deste subsistema.
type LinkedProductCost struct {
	ID           string          `json:"id"`
	OperationID  string          `json:"operation_id"`
	StoreID      string          `json:"store_id"`
	SKU          string          `json:"sku"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	ShippingCost decimal.Decimal `json:"shipping_cost"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// CostBreakdown agrega os custos de uma operação em um período, sempre na
// moeda base da operação.
type CostBreakdown struct {
	ProductCosts        decimal.Decimal `json:"product_costs"`
	ShippingCosts       decimal.Decimal `json:"shipping_costs"`
	CombinedCosts       decimal.Decimal `json:"combined_costs"`
	MarketingCosts      decimal.Decimal `json:"marketing_costs"`
	ReturnHandlingCosts decimal.Decimal `json:"return_handling_costs"`
}

// TotalCosts soma todos os componentes de custo do período
func (c *CostBreakdown) TotalCosts() decimal.Decimal {
	return c.CombinedCosts.Add(c.MarketingCosts).Add(c.ReturnHandlingCosts)
}
