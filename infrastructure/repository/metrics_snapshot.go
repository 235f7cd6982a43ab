package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/operation-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/operation-metrics-api/internal/domain"
	"github.com/vfg2006/operation-metrics-api/pkg/utils"
)

const (
	metricsSnapshotsTable = "metrics_snapshots ms"

	snapshotColumns = `ms.id, ms.operation_id, ms.period, ms.provider, ms.currency,
		ms.total_orders, ms.status_counts, ms.daily_series,
		ms.total_revenue, ms.delivered_revenue, ms.paid_revenue, ms.delivered_count, ms.paid_count,
		ms.product_costs, ms.shipping_costs, ms.combined_costs, ms.marketing_costs, ms.return_handling_costs,
		ms.profit, ms.profit_margin, ms.roi, ms.cpa_per_delivered, ms.cpa_per_lead,
		ms.average_order_value, ms.delivery_rate, ms.unique_customers, ms.average_delivery_days,
		ms.revenue_growth, ms.calculated_at, ms.valid_until`
)

type MetricsSnapshotRepository interface {
	Get(key domain.SnapshotKey) (*domain.MetricsSnapshot, error)
	SaveOrUpdate(snapshot *domain.MetricsSnapshot) error
	InvalidateAll() (int64, error)
	DeleteExpiredOlderThan(days int) (int64, error)
}

type metricsSnapshotRepository struct {
	conn *postgres.Connection
}

func NewMetricsSnapshotRepository(conn *postgres.Connection) MetricsSnapshotRepository {
	return &metricsSnapshotRepository{
		conn: conn,
	}
}

func providerClause(provider *string) squirrel.Sqlizer {
	if provider == nil || *provider == "" {
		return squirrel.Expr("ms.provider IS NULL")
	}
	return squirrel.Eq{"ms.provider": *provider}
}

func (r *metricsSnapshotRepository) Get(key domain.SnapshotKey) (*domain.MetricsSnapshot, error) {
	query, args, err := squirrel.
		Select(snapshotColumns).
		From(metricsSnapshotsTable).
		Where(squirrel.Eq{"ms.operation_id": key.OperationID, "ms.period": key.Period}).
		Where(providerClause(key.Provider)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	snapshot, err := r.scanSnapshot(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return snapshot, nil
}

// SaveOrUpdate substitui atomicamente qualquer snapshot anterior da mesma
// chave: delete e insert na mesma transação, nunca dois snapshots vivos
// para a mesma chave.
func (r *metricsSnapshotRepository) SaveOrUpdate(snapshot *domain.MetricsSnapshot) error {
	statusCountsJSON, err := json.Marshal(snapshot.StatusCounts)
	if err != nil {
		return fmt.Errorf("erro ao serializar contagens de status para JSON: %w", err)
	}

	dailySeriesJSON, err := json.Marshal(snapshot.DailySeries)
	if err != nil {
		return fmt.Errorf("erro ao serializar série diária para JSON: %w", err)
	}

	if snapshot.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id do snapshot: %w", err)
		}
		snapshot.ID = id
	}

	deleteBuilder := squirrel.
		Delete("metrics_snapshots").
		Where(squirrel.Eq{"operation_id": snapshot.OperationID, "period": snapshot.Period}).
		PlaceholderFormat(squirrel.Dollar)

	if snapshot.Provider == nil || *snapshot.Provider == "" {
		deleteBuilder = deleteBuilder.Where(squirrel.Expr("provider IS NULL"))
	} else {
		deleteBuilder = deleteBuilder.Where(squirrel.Eq{"provider": *snapshot.Provider})
	}

	deleteQuery, deleteArgs, err := deleteBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	insertQuery, insertArgs, err := squirrel.StatementBuilder.
		Insert("metrics_snapshots").
		Columns(
			"id", "operation_id", "period", "provider", "currency",
			"total_orders", "status_counts", "daily_series",
			"total_revenue", "delivered_revenue", "paid_revenue", "delivered_count", "paid_count",
			"product_costs", "shipping_costs", "combined_costs", "marketing_costs", "return_handling_costs",
			"profit", "profit_margin", "roi", "cpa_per_delivered", "cpa_per_lead",
			"average_order_value", "delivery_rate", "unique_customers", "average_delivery_days",
			"revenue_growth", "calculated_at", "valid_until",
		).
		Values(
			snapshot.ID, snapshot.OperationID, snapshot.Period, snapshot.Provider, snapshot.Currency,
			snapshot.TotalOrders, statusCountsJSON, dailySeriesJSON,
			snapshot.TotalRevenue, snapshot.DeliveredRevenue, snapshot.PaidRevenue, snapshot.DeliveredCount, snapshot.PaidCount,
			snapshot.ProductCosts, snapshot.ShippingCosts, snapshot.CombinedCosts, snapshot.MarketingCosts, snapshot.ReturnHandlingCosts,
			snapshot.Profit, snapshot.ProfitMargin, snapshot.ROI, snapshot.CPAPerDelivered, snapshot.CPAPerLead,
			snapshot.AverageOrderValue, snapshot.DeliveryRate, snapshot.UniqueCustomers, snapshot.AverageDeliveryDays,
			snapshot.RevenueGrowth, snapshot.CalculatedAt, snapshot.ValidUntil,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		if _, err := tx.Exec(deleteQuery, deleteArgs...); err != nil {
			return fmt.Errorf("erro ao remover snapshot anterior: %w", err)
		}
		if _, err := tx.Exec(insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("erro ao inserir snapshot: %w", err)
		}
		return nil
	})
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return err
	}

	return nil
}

func (r *metricsSnapshotRepository) InvalidateAll() (int64, error) {
	query, args, err := squirrel.
		Delete("metrics_snapshots").
		Where(squirrel.Expr("1 = 1")).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

// DeleteExpiredOlderThan remove snapshots cuja validade expirou há mais de
// N dias. Usado pelo agendador de limpeza.
func (r *metricsSnapshotRepository) DeleteExpiredOlderThan(days int) (int64, error) {
	query, args, err := squirrel.
		Delete("metrics_snapshots").
		Where(squirrel.Expr(fmt.Sprintf("valid_until < NOW() - INTERVAL '%d days'", days))).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *metricsSnapshotRepository) scanSnapshot(row *sql.Row) (*domain.MetricsSnapshot, error) {
	snapshot := &domain.MetricsSnapshot{}
	var statusCountsJSON, dailySeriesJSON []byte

	err := row.Scan(
		&snapshot.ID,
		&snapshot.OperationID,
		&snapshot.Period,
		&snapshot.Provider,
		&snapshot.Currency,
		&snapshot.TotalOrders,
		&statusCountsJSON,
		&dailySeriesJSON,
		&snapshot.TotalRevenue,
		&snapshot.DeliveredRevenue,
		&snapshot.PaidRevenue,
		&snapshot.DeliveredCount,
		&snapshot.PaidCount,
		&snapshot.ProductCosts,
		&snapshot.ShippingCosts,
		&snapshot.CombinedCosts,
		&snapshot.MarketingCosts,
		&snapshot.ReturnHandlingCosts,
		&snapshot.Profit,
		&snapshot.ProfitMargin,
		&snapshot.ROI,
		&snapshot.CPAPerDelivered,
		&snapshot.CPAPerLead,
		&snapshot.AverageOrderValue,
		&snapshot.DeliveryRate,
		&snapshot.UniqueCustomers,
		&snapshot.AverageDeliveryDays,
		&snapshot.RevenueGrowth,
		&snapshot.CalculatedAt,
		&snapshot.ValidUntil,
	)
	if err != nil {
		return nil, err
	}

	if statusCountsJSON != nil {
		counts := make(map[string]int)
		if err := json.Unmarshal(statusCountsJSON, &counts); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de status_counts: %w", err)
		}
		snapshot.StatusCounts = counts
	}

	if dailySeriesJSON != nil {
		series := make([]*domain.DailyRevenue, 0)
		if err := json.Unmarshal(dailySeriesJSON, &series); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de daily_series: %w", err)
		}
		snapshot.DailySeries = series
	}

	return snapshot, nil
}
