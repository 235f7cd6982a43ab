package repository

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/operation-metrics-api/internal/domain"
)

func TestUpsertRateSetQuery(t *testing.T) {
	rateSet := &domain.RateSet{
		Date:      time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Reference: "BRL",
		Rates: map[string]decimal.Decimal{
			"USD": decimal.NewFromInt(5),
		},
	}

	query, args, err := upsertRateSetQuery(rateSet)

	assert.NoError(t, err)
	// O DO UPDATE toca apenas as colunas que existem em exchange_rates:
	// date, reference e rates
	assert.Equal(t,
		"INSERT INTO exchange_rates (date,reference,rates) VALUES ($1,$2,$3) "+
			"ON CONFLICT (date) DO UPDATE SET reference = EXCLUDED.reference, rates = EXCLUDED.rates",
		query,
	)
	assert.Len(t, args, 3)
	assert.Equal(t, "2024-03-05", args[0])
	assert.Equal(t, "BRL", args[1])
	assert.JSONEq(t, `{"USD":"5"}`, string(args[2].([]byte)))
}
