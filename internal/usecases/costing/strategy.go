package costing

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/operation-metrics-api/infrastructure/repository"
	"github.com/vfg2006/operation-metrics-api/internal/domain"
)

// CostAggregation é a estratégia de cálculo de custo de produto e frete
// para os pedidos de um status no período. A seleção entre as duas
// implementações é explícita no serviço: a agregada primeiro, a linha a
// linha apenas como recuperação em modo degradado.
type CostAggregation interface {
	Name() string
	AggregateCosts(operationID string, rng domain.DateRange, status string, filter repository.OrderFilter) (*repository.AggregatedCosts, error)
}

// FastAggregation resolve os custos em uma única query agregada com join
// contra os custos vinculados de produto
type FastAggregation struct {
	costRepo repository.ProductCostRepository
}

func NewFastAggregation(costRepo repository.ProductCostRepository) *FastAggregation {
	return &FastAggregation{costRepo: costRepo}
}

func (a *FastAggregation) Name() string {
	return "fast"
}

func (a *FastAggregation) AggregateCosts(operationID string, rng domain.DateRange, status string, filter repository.OrderFilter) (*repository.AggregatedCosts, error) {
	return a.costRepo.AggregateCostsByStatus(operationID, rng, status, filter)
}

// RowByRowAggregation recomputa os custos pedido a pedido, consultando o
// custo vinculado de cada SKU. Mais lento e sujeito ao padrão N+1;
// existe apenas como caminho de recuperação quando a query agregada falha.
type RowByRowAggregation struct {
	orderRepo repository.OrderRepository
	costRepo  repository.ProductCostRepository
}

func NewRowByRowAggregation(orderRepo repository.OrderRepository, costRepo repository.ProductCostRepository) *RowByRowAggregation {
	return &RowByRowAggregation{
		orderRepo: orderRepo,
		costRepo:  costRepo,
	}
}

func (a *RowByRowAggregation) Name() string {
	return "row_by_row"
}

func (a *RowByRowAggregation) AggregateCosts(operationID string, rng domain.DateRange, status string, filter repository.OrderFilter) (*repository.AggregatedCosts, error) {
	orders, err := a.orderRepo.ListOrdersWithItems(operationID, rng, status, filter)
	if err != nil {
		return nil, err
	}

	costs := &repository.AggregatedCosts{
		ProductCosts:  decimal.Zero,
		ShippingCosts: decimal.Zero,
	}

	// Cache local por SKU para não repetir a consulta dentro do loop
	costsBySKU := make(map[string]*domain.LinkedProductCost)

	for _, order := range orders {
		for _, item := range order.Items {
			linked, ok := costsBySKU[item.SKU]
			if !ok {
				linked, err = a.costRepo.GetBySKU(operationID, item.SKU)
				if err != nil {
					return nil, err
				}
				costsBySKU[item.SKU] = linked
			}

			if linked == nil {
				logrus.WithFields(logrus.Fields{
					"operation_id": operationID,
					"sku":          item.SKU,
				}).Warn("SKU sem custo vinculado, ignorando no cálculo de custos")
				continue
			}

			quantity := decimal.NewFromInt(int64(item.Quantity))
			costs.ProductCosts = costs.ProductCosts.Add(linked.CostPrice.Mul(quantity))
			costs.ShippingCosts = costs.ShippingCosts.Add(linked.ShippingCost.Mul(quantity))
		}
	}

	return costs, nil
}
