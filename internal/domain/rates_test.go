package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testRateSet() *RateSet {
	return &RateSet{
		Date:      time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Reference: "BRL",
		Rates: map[string]decimal.Decimal{
			"USD": decimal.NewFromFloat(5.1234),
			"EUR": decimal.NewFromFloat(5.6789),
		},
	}
}

func TestConvert(t *testing.T) {
	rateSet := testRateSet()

	t.Run("Moeda origem igual à destino retorna o valor inalterado", func(t *testing.T) {
		amount := decimal.NewFromFloat(123.45)
		converted, err := Convert(amount, "BRL", "BRL", nil)
		assert.NoError(t, err)
		assert.True(t, converted.Equal(amount))
	})

	t.Run("Conversão para a moeda de referência multiplica pela taxa", func(t *testing.T) {
		converted, err := Convert(decimal.NewFromInt(10), "USD", "BRL", rateSet)
		assert.NoError(t, err)
		assert.Equal(t, "51.234", converted.String())
	})

	t.Run("Conversão entre moedas passa pela moeda de referência", func(t *testing.T) {
		converted, err := Convert(decimal.NewFromInt(100), "USD", "EUR", rateSet)
		assert.NoError(t, err)
		// 100 * 5.1234 / 5.6789
		expected := decimal.NewFromFloat(90.21888)
		assert.True(t, converted.Sub(expected).Abs().LessThan(decimal.NewFromFloat(0.01)), "convertido: %s", converted)
	})

	t.Run("Ida e volta não acumula desvio maior que 0.01", func(t *testing.T) {
		amount := decimal.NewFromFloat(987.65)

		toEUR, err := Convert(amount, "USD", "EUR", rateSet)
		assert.NoError(t, err)
		back, err := Convert(toEUR, "EUR", "USD", rateSet)
		assert.NoError(t, err)

		assert.True(t, back.Sub(amount).Abs().LessThanOrEqual(decimal.NewFromFloat(0.01)), "volta: %s", back)
	})

	t.Run("Moeda fora do conjunto retorna erro", func(t *testing.T) {
		_, err := Convert(decimal.NewFromInt(10), "JPY", "BRL", rateSet)
		assert.Error(t, err)
	})

	t.Run("Conjunto ausente com moedas distintas retorna erro", func(t *testing.T) {
		_, err := Convert(decimal.NewFromInt(10), "USD", "BRL", nil)
		assert.Error(t, err)
	})
}

func TestRateSet_RateFor(t *testing.T) {
	rateSet := testRateSet()

	rate, ok := rateSet.RateFor("BRL")
	assert.True(t, ok)
	assert.True(t, rate.Equal(decimal.NewFromInt(1)))

	rate, ok = rateSet.RateFor("USD")
	assert.True(t, ok)
	assert.True(t, rate.Equal(decimal.NewFromFloat(5.1234)))

	_, ok = rateSet.RateFor("JPY")
	assert.False(t, ok)
}
