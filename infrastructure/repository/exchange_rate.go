package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/operation-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/operation-metrics-api/internal/domain"
)

const (
	exchangeRatesTable = "exchange_rates er"
)

type ExchangeRateRepository interface {
	GetByDate(date time.Time) (*domain.RateSet, error)
	GetByDates(dates []time.Time) (map[string]*domain.RateSet, error)
	GetLatest() (*domain.RateSet, error)
	SaveOrUpdate(rateSet *domain.RateSet) error
}

type exchangeRateRepository struct {
	conn *postgres.Connection
}

func NewExchangeRateRepository(conn *postgres.Connection) ExchangeRateRepository {
	return &exchangeRateRepository{
		conn: conn,
	}
}

func (r *exchangeRateRepository) GetByDate(date time.Time) (*domain.RateSet, error) {
	query, args, err := squirrel.
		Select("er.date, er.reference, er.rates").
		From(exchangeRatesTable).
		Where(squirrel.Eq{"er.date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	rateSet, err := scanRateSetRow(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear conjunto de taxas: %w", err)
	}

	return rateSet, nil
}

func (r *exchangeRateRepository) GetByDates(dates []time.Time) (map[string]*domain.RateSet, error) {
	if len(dates) == 0 {
		return map[string]*domain.RateSet{}, nil
	}

	dateStrs := make([]string, 0, len(dates))
	for _, date := range dates {
		dateStrs = append(dateStrs, date.Format(time.DateOnly))
	}

	query, args, err := squirrel.
		Select("er.date, er.reference, er.rates").
		From(exchangeRatesTable).
		Where(squirrel.Eq{"er.date": dateStrs}).
		OrderBy("er.date ASC").
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

	rateSets := make(map[string]*domain.RateSet)
	for rows.Next() {
		rateSet, err := scanRateSetRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear conjunto de taxas: %w", err)
		}
		rateSets[rateSet.Date.Format(time.DateOnly)] = rateSet
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return rateSets, nil
}

func (r *exchangeRateRepository) GetLatest() (*domain.RateSet, error) {
	query, args, err := squirrel.
		Select("er.date, er.reference, er.rates").
		From(exchangeRatesTable).
		OrderBy("er.date DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	rateSet, err := scanRateSetRow(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear conjunto de taxas: %w", err)
	}

	return rateSet, nil
}

// upsertRateSetQuery monta o upsert de um conjunto de taxas. As colunas do
// DO UPDATE espelham exatamente o schema de exchange_rates.
func upsertRateSetQuery(rateSet *domain.RateSet) (string, []interface{}, error) {
	ratesJSON, err := json.Marshal(rateSet.Rates)
	if err != nil {
		return "", nil, fmt.Errorf("erro ao serializar taxas para JSON: %w", err)
	}

	sqlQuery, args, err := squirrel.StatementBuilder.
		Insert("exchange_rates").
		Columns("date", "reference", "rates").
		Values(
			rateSet.Date.Format(time.DateOnly),
			rateSet.Reference,
			ratesJSON,
		).
		Suffix("ON CONFLICT (date) DO UPDATE SET reference = EXCLUDED.reference, rates = EXCLUDED.rates").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return sqlQuery, args, nil
}

// SaveOrUpdate grava o conjunto de taxas de um dia. Conjuntos históricos
// são imutáveis na prática; o upsert existe para o refresh do dia corrente.
func (r *exchangeRateRepository) SaveOrUpdate(rateSet *domain.RateSet) error {
	sqlQuery, args, err := upsertRateSetQuery(rateSet)
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func scanRateSetRow(scan func(dest ...interface{}) error) (*domain.RateSet, error) {
	rateSet := &domain.RateSet{}
	var ratesJSON []byte

	if err := scan(&rateSet.Date, &rateSet.Reference, &ratesJSON); err != nil {
		return nil, err
	}

	if ratesJSON != nil {
		rates := make(map[string]decimal.Decimal)
		if err := json.Unmarshal(ratesJSON, &rates); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de taxas: %w", err)
		}
		rateSet.Rates = rates
	}

	return rateSet, nil
}
