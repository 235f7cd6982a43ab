package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/operation-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/operation-metrics-api/internal/domain"
)

const (
	operationsTable = "operations o"
	adAccountsTable = "operation_ad_accounts oa"
)

type OperationRepository interface {
	GetByID(operationID string) (*domain.Operation, error)
	ListOperations(availableStatus []domain.OperationStatus) ([]*domain.Operation, error)
	ListAdAccounts(operationID string) ([]*domain.AdAccountRef, error)
}

type operationRepository struct {
	conn *postgres.Connection
}

func NewOperationRepository(conn *postgres.Connection) OperationRepository {
	return &operationRepository{
		conn: conn,
	}
}

func (r *operationRepository) GetByID(operationID string) (*domain.Operation, error) {
	query, args, err := squirrel.
		Select("o.id, o.name, o.store_id, o.base_currency, o.timezone, o.status, o.created_at, o.updated_at").
		From(operationsTable).
		Where(squirrel.Eq{"o.id": operationID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	operation := &domain.Operation{}
	if err := row.Scan(
		&operation.ID,
		&operation.Name,
		&operation.StoreID,
		&operation.BaseCurrency,
		&operation.Timezone,
		&operation.Status,
		&operation.CreatedAt,
		&operation.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear operação: %w", err)
	}

	accounts, err := r.ListAdAccounts(operation.ID)
	if err != nil {
		return nil, err
	}
	operation.AdAccounts = accounts

	return operation, nil
}

func (r *operationRepository) ListOperations(availableStatus []domain.OperationStatus) ([]*domain.Operation, error) {
	queryBuilder := squirrel.
		Select("o.id, o.name, o.store_id, o.base_currency, o.timezone, o.status, o.created_at, o.updated_at").
		From(operationsTable).
		OrderBy("o.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"o.status": availableStatus})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	operations := make([]*domain.Operation, 0)
	for rows.Next() {
		operation := &domain.Operation{}
		if err := rows.Scan(
			&operation.ID,
			&operation.Name,
			&operation.StoreID,
			&operation.BaseCurrency,
			&operation.Timezone,
			&operation.Status,
			&operation.CreatedAt,
			&operation.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear operação: %w", err)
		}
		operations = append(operations, operation)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return operations, nil
}

func (r *operationRepository) ListAdAccounts(operationID string) ([]*domain.AdAccountRef, error) {
	query, args, err := squirrel.
		Select("oa.id, oa.external_id, oa.network, oa.selected").
		From(adAccountsTable).
		Where(squirrel.Eq{"oa.operation_id": operationID}).
		OrderBy("oa.external_id ASC").
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

	accounts := make([]*domain.AdAccountRef, 0)
	for rows.Next() {
		account := &domain.AdAccountRef{}
		if err := rows.Scan(&account.ID, &account.ExternalID, &account.Network, &account.Selected); err != nil {
			return nil, fmt.Errorf("erro ao escanear conta de anúncios: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accounts, nil
}
