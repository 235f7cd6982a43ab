package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/operation-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/operation-metrics-api/internal/domain"
)

const (
	linkedProductCostsTable = "linked_product_costs lpc"
)

// AggregatedCosts é o resultado da query agregada de custos de produto e
// frete atribuíveis aos pedidos de um status no período
type AggregatedCosts struct {
	ProductCosts  decimal.Decimal
	ShippingCosts decimal.Decimal
}

type ProductCostRepository interface {
	AggregateCostsByStatus(operationID string, rng domain.DateRange, status string, filter OrderFilter) (*AggregatedCosts, error)
	GetBySKU(operationID, sku string) (*domain.LinkedProductCost, error)
}

type productCostRepository struct {
	conn *postgres.Connection
}

func NewProductCostRepository(conn *postgres.Connection) ProductCostRepository {
	return &productCostRepository{
		conn: conn,
	}
}

// AggregateCostsByStatus soma custo de produto e de frete de todos os
// pedidos do status informado em uma única query com join, evitando o
// padrão N+1 de uma ida ao banco por pedido/SKU.
func (r *productCostRepository) AggregateCostsByStatus(operationID string, rng domain.DateRange, status string, filter OrderFilter) (*AggregatedCosts, error) {
	queryBuilder := squirrel.
		Select(
			"COALESCE(SUM(lpc.cost_price * oi.quantity), 0)",
			"COALESCE(SUM(lpc.shipping_cost * oi.quantity), 0)",
		).
		From(ordersTable).
		Join("order_items oi ON oi.order_id = o.id").
		Join("linked_product_costs lpc ON lpc.sku = oi.sku AND lpc.operation_id = o.operation_id").
		Where(squirrel.Eq{"o.status": status}).
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = applyOrderFilters(queryBuilder, operationID, rng, filter)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	costs := &AggregatedCosts{}
	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&costs.ProductCosts, &costs.ShippingCosts); err != nil {
		return nil, fmt.Errorf("erro ao escanear custos agregados: %w", err)
	}

	return costs, nil
}

// GetBySKU busca o custo vinculado de um SKU. Usado apenas pelo caminho
// degradado, linha a linha, quando a query agregada falha.
func (r *productCostRepository) GetBySKU(operationID, sku string) (*domain.LinkedProductCost, error) {
	query, args, err := squirrel.
		Select("lpc.id, lpc.operation_id, lpc.store_id, lpc.sku, lpc.cost_price, lpc.shipping_cost, lpc.updated_at").
		From(linkedProductCostsTable).
		Where(squirrel.Eq{"lpc.operation_id": operationID, "lpc.sku": sku}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	cost := &domain.LinkedProductCost{}
	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(
		&cost.ID,
		&cost.OperationID,
		&cost.StoreID,
		&cost.SKU,
		&cost.CostPrice,
		&cost.ShippingCost,
		&cost.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear custo de produto: %w", err)
	}

	return cost, nil
}
