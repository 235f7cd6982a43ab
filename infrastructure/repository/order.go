package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/operation-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/operation-metrics-api/internal/domain"
)

const (
	ordersTable     = "orders o"
	orderItemsTable = "order_items oi"
)

// bucketCaseExpr projeta o status bruto no bucket do dashboard direto no
// SQL. Status desconhecidos caem no ELSE para que a soma dos buckets
// sempre feche com o total de pedidos; "confirmed" exige reconhecimento
// da transportadora, nunca apenas o status do canal.
const bucketCaseExpr = `CASE
	WHEN o.status = 'cancelled' THEN 'cancelled'
	WHEN o.status = 'returned' THEN 'returned'
	WHEN o.status = 'delivered' THEN 'delivered'
	WHEN o.status IN ('packed', 'shipped', 'in_transit') THEN 'shipped'
	WHEN o.carrier_imported AND COALESCE(o.carrier_confirmation, '') <> '' THEN 'confirmed'
	ELSE 'pending'
END`

// OrderFilter restringe as agregações por canal de vendas e/ou produto
type OrderFilter struct {
	Provider   *string
	ProductSKU *string
}

type OrderRepository interface {
	CountByBucket(operationID string, rng domain.DateRange, filter OrderFilter) (map[string]int, error)
	RevenueSummary(operationID string, rng domain.DateRange, filter OrderFilter) (*domain.RevenueSummary, error)
	DailyRevenueSeries(operationID string, rng domain.DateRange, timezone string, filter OrderFilter) ([]*domain.DailyRevenue, error)
	CustomerStats(operationID string, rng domain.DateRange, filter OrderFilter) (int, float64, error)
	CarrierCounts(operationID string, rng domain.DateRange, filter OrderFilter) (int, int, error)
	ListOrdersWithItems(operationID string, rng domain.DateRange, status string, filter OrderFilter) ([]*domain.Order, error)
}

type orderRepository struct {
	conn *postgres.Connection
}

func NewOrderRepository(conn *postgres.Connection) OrderRepository {
	return &orderRepository{
		conn: conn,
	}
}

// applyOrderFilters adiciona as cláusulas comuns de operação, período e
// filtros opcionais a uma query sobre a tabela de pedidos
func applyOrderFilters(builder squirrel.SelectBuilder, operationID string, rng domain.DateRange, filter OrderFilter) squirrel.SelectBuilder {
	builder = builder.
		Where(squirrel.Eq{"o.operation_id": operationID}).
		Where(squirrel.GtOrEq{"o.order_date": rng.From}).
		Where(squirrel.LtOrEq{"o.order_date": rng.To})

	if filter.Provider != nil && *filter.Provider != "" {
		builder = builder.Where(squirrel.Eq{"o.provider": *filter.Provider})
	}

	if filter.ProductSKU != nil && *filter.ProductSKU != "" {
		builder = builder.Where(
			squirrel.Expr("EXISTS (SELECT 1 FROM order_items oi WHERE oi.order_id = o.id AND oi.sku = ?)", *filter.ProductSKU),
		)
	}

	return builder
}

func (r *orderRepository) CountByBucket(operationID string, rng domain.DateRange, filter OrderFilter) (map[string]int, error) {
	queryBuilder := squirrel.
		Select(fmt.Sprintf("%s AS bucket", bucketCaseExpr), "COUNT(*)").
		From(ordersTable).
		GroupBy("1").
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = applyOrderFilters(queryBuilder, operationID, rng, filter)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int, len(domain.StatusBuckets))
	for _, bucket := range domain.StatusBuckets {
		counts[bucket] = 0
	}

	for rows.Next() {
		var bucket string
		var count int
		if err := rows.Scan(&bucket, &count); err != nil {
			return nil, fmt.Errorf("erro ao escanear contagem por status: %w", err)
		}
		counts[bucket] = count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return counts, nil
}

func (r *orderRepository) RevenueSummary(operationID string, rng domain.DateRange, filter OrderFilter) (*domain.RevenueSummary, error) {
	queryBuilder := squirrel.
		Select(
			"COUNT(*)",
			"COALESCE(SUM(o.total) FILTER (WHERE o.status <> 'cancelled'), 0)",
			"COALESCE(SUM(o.total) FILTER (WHERE o.status = 'delivered'), 0)",
			"COALESCE(SUM(o.total) FILTER (WHERE o.paid), 0)",
			"COUNT(*) FILTER (WHERE o.status = 'delivered')",
			"COUNT(*) FILTER (WHERE o.paid)",
		).
		From(ordersTable).
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = applyOrderFilters(queryBuilder, operationID, rng, filter)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	summary := &domain.RevenueSummary{}
	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(
		&summary.TotalOrders,
		&summary.TotalRevenue,
		&summary.DeliveredRevenue,
		&summary.PaidRevenue,
		&summary.DeliveredCount,
		&summary.PaidCount,
	); err != nil {
		return nil, fmt.Errorf("erro ao escanear resumo de receita: %w", err)
	}

	return summary, nil
}

// DailyRevenueSeries agrega a receita por dia-calendário no fuso da
// operação. A projeção do timestamp para o fuso acontece no SQL, em uma
// única operação set-based: truncar em UTC deslocaria pedidos de borda
// para o dia errado.
func (r *orderRepository) DailyRevenueSeries(operationID string, rng domain.DateRange, timezone string, filter OrderFilter) ([]*domain.DailyRevenue, error) {
	queryBuilder := squirrel.
		Select().
		Column(squirrel.Expr("TO_CHAR((o.order_date AT TIME ZONE ?)::date, 'YYYY-MM-DD') AS day", timezone)).
		Column("COALESCE(SUM(o.total) FILTER (WHERE o.status <> 'cancelled'), 0)").
		Column("COUNT(*)").
		From(ordersTable).
		GroupBy("1").
		OrderBy("1 ASC").
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = applyOrderFilters(queryBuilder, operationID, rng, filter)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	series := make([]*domain.DailyRevenue, 0)
	for rows.Next() {
		point := &domain.DailyRevenue{}
		if err := rows.Scan(&point.Day, &point.Revenue, &point.OrderCount); err != nil {
			return nil, fmt.Errorf("erro ao escanear série diária: %w", err)
		}
		series = append(series, point)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return series, nil
}

// CustomerStats retorna a quantidade de clientes únicos e o tempo médio
// de entrega em dias para os pedidos entregues do período
func (r *orderRepository) CustomerStats(operationID string, rng domain.DateRange, filter OrderFilter) (int, float64, error) {
	queryBuilder := squirrel.
		Select(
			"COUNT(DISTINCT o.customer_id)",
			"COALESCE(AVG(EXTRACT(EPOCH FROM (o.last_status_update - o.order_date)) / 86400.0) FILTER (WHERE o.status = 'delivered'), 0)",
		).
		From(ordersTable).
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = applyOrderFilters(queryBuilder, operationID, rng, filter)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var uniqueCustomers int
	var avgDeliveryDays float64

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&uniqueCustomers, &avgDeliveryDays); err != nil {
		return 0, 0, fmt.Errorf("erro ao escanear estatísticas de clientes: %w", err)
	}

	return uniqueCustomers, avgDeliveryDays, nil
}

// CarrierCounts retorna o total de pedidos reconhecidos pela
// transportadora e quantos destes foram entregues, base da taxa de entrega
func (r *orderRepository) CarrierCounts(operationID string, rng domain.DateRange, filter OrderFilter) (int, int, error) {
	queryBuilder := squirrel.
		Select(
			"COUNT(*) FILTER (WHERE o.carrier_imported AND COALESCE(o.carrier_confirmation, '') <> '')",
			"COUNT(*) FILTER (WHERE o.carrier_imported AND COALESCE(o.carrier_confirmation, '') <> '' AND o.status = 'delivered')",
		).
		From(ordersTable).
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = applyOrderFilters(queryBuilder, operationID, rng, filter)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total, delivered int
	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&total, &delivered); err != nil {
		return 0, 0, fmt.Errorf("erro ao escanear contagens da transportadora: %w", err)
	}

	return total, delivered, nil
}

// ListOrdersWithItems carrega os pedidos do status informado com seus
// itens. Usado apenas pelo caminho degradado de cálculo de custos, linha
// a linha; o caminho normal agrega tudo em uma única query com join.
func (r *orderRepository) ListOrdersWithItems(operationID string, rng domain.DateRange, status string, filter OrderFilter) ([]*domain.Order, error) {
	queryBuilder := squirrel.
		Select("o.id, o.operation_id, o.status, o.total, o.paid, o.provider, o.customer_id, o.order_date, o.last_status_update, o.carrier_imported, o.carrier_confirmation").
		From(ordersTable).
		Where(squirrel.Eq{"o.status": status}).
		OrderBy("o.order_date ASC").
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = applyOrderFilters(queryBuilder, operationID, rng, filter)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0)
	byID := make(map[string]*domain.Order)

	for rows.Next() {
		order := &domain.Order{}
		if err := rows.Scan(
			&order.ID,
			&order.OperationID,
			&order.Status,
			&order.Total,
			&order.Paid,
			&order.Provider,
			&order.CustomerID,
			&order.OrderDate,
			&order.LastStatusUpdate,
			&order.CarrierImported,
			&order.CarrierConfirmation,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear pedido: %w", err)
		}
		orders = append(orders, order)
		byID[order.ID] = order
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if len(orders) == 0 {
		return orders, nil
	}

	if err := r.loadItems(byID); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepository) loadItems(ordersByID map[string]*domain.Order) error {
	ids := make([]string, 0, len(ordersByID))
	for id := range ordersByID {
		ids = append(ids, id)
	}

	query, args, err := squirrel.
		Select("oi.order_id, oi.sku, oi.quantity").
		From(orderItemsTable).
		Where(squirrel.Eq{"oi.order_id": ids}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var orderID string
		item := domain.OrderItem{}
		if err := rows.Scan(&orderID, &item.SKU, &item.Quantity); err != nil {
			return fmt.Errorf("erro ao escanear item de pedido: %w", err)
		}
		if order, ok := ordersByID[orderID]; ok {
			order.Items = append(order.Items, item)
		}
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return nil
}
