package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/operation-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/operation-metrics-api/internal/domain"
)

const (
	adSpendEntriesTable = "ad_spend_entries ase"
)

type AdSpendRepository interface {
	GetByDateRange(operationID string, startDate, endDate time.Time) ([]*domain.AdSpendEntry, error)
}

type adSpendRepository struct {
	conn *postgres.Connection
}

func NewAdSpendRepository(conn *postgres.Connection) AdSpendRepository {
	return &adSpendRepository{
		conn: conn,
	}
}

func (r *adSpendRepository) GetByDateRange(operationID string, startDate, endDate time.Time) ([]*domain.AdSpendEntry, error) {
	query, args, err := squirrel.
		Select("ase.id, ase.operation_id, ase.amount, ase.currency, ase.date, ase.description, ase.created_at").
		From(adSpendEntriesTable).
		Where(squirrel.Eq{"ase.operation_id": operationID}).
		Where(squirrel.GtOrEq{"ase.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"ase.date": endDate.Format(time.DateOnly)}).
		OrderBy("ase.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.AdSpendEntry, 0)
	for rows.Next() {
		entry := &domain.AdSpendEntry{}
		if err := rows.Scan(
			&entry.ID,
			&entry.OperationID,
			&entry.Amount,
			&entry.Currency,
			&entry.Date,
			&entry.Description,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear lançamento de gasto: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}
