package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolvePeriod(t *testing.T) {
	// 10 de março de 2024, meio-dia em São Paulo (15h UTC)
	now := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
	assert.NoError(t, err)

	tests := []struct {
		name         string
		tag          string
		timezone     string
		expectedFrom time.Time
		expectedTo   time.Time
		expectedErr  bool
	}{
		{
			name:         "last_day cobre o dia corrente inteiro no fuso da operação",
			tag:          PeriodLastDay,
			timezone:     "America/Sao_Paulo",
			expectedFrom: time.Date(2024, 3, 10, 0, 0, 0, 0, saoPaulo),
			expectedTo:   time.Date(2024, 3, 10, 23, 59, 59, 0, saoPaulo),
		},
		{
			name:         "last_7_days termina hoje e começa seis dias atrás",
			tag:          PeriodLast7Days,
			timezone:     "America/Sao_Paulo",
			expectedFrom: time.Date(2024, 3, 4, 0, 0, 0, 0, saoPaulo),
			expectedTo:   time.Date(2024, 3, 10, 23, 59, 59, 0, saoPaulo),
		},
		{
			name:         "current_month começa no primeiro dia do mês",
			tag:          PeriodCurrentMonth,
			timezone:     "America/Sao_Paulo",
			expectedFrom: time.Date(2024, 3, 1, 0, 0, 0, 0, saoPaulo),
			expectedTo:   time.Date(2024, 3, 10, 23, 59, 59, 0, saoPaulo),
		},
		{
			name:         "Fuso ausente usa o fuso de fallback, não UTC",
			tag:          PeriodLastDay,
			timezone:     "",
			expectedFrom: time.Date(2024, 3, 10, 0, 0, 0, 0, saoPaulo),
			expectedTo:   time.Date(2024, 3, 10, 23, 59, 59, 0, saoPaulo),
		},
		{
			name:         "Fuso inválido usa o fuso de fallback",
			tag:          PeriodLastDay,
			timezone:     "Marte/Olympus_Mons",
			expectedFrom: time.Date(2024, 3, 10, 0, 0, 0, 0, saoPaulo),
			expectedTo:   time.Date(2024, 3, 10, 23, 59, 59, 0, saoPaulo),
		},
		{
			name:        "Tag desconhecida retorna erro",
			tag:         "last_fortnight",
			timezone:    "America/Sao_Paulo",
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng, err := ResolvePeriod(tt.tag, tt.timezone, now)

			if tt.expectedErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.True(t, rng.From.Equal(tt.expectedFrom), "from: %s", rng.From)
			assert.True(t, rng.To.Equal(tt.expectedTo), "to: %s", rng.To)
			assert.Equal(t, time.UTC, rng.From.Location())
			assert.Equal(t, time.UTC, rng.To.Location())
		})
	}
}

func TestResolvePeriod_TimezonesDiverge(t *testing.T) {
	// 01h UTC já é o dia seguinte em Tóquio, mas ainda o dia anterior em
	// São Paulo; o mesmo instante resolve dias-calendário diferentes
	now := time.Date(2024, 3, 10, 1, 0, 0, 0, time.UTC)

	saoPauloRange, err := ResolvePeriod(PeriodLastDay, "America/Sao_Paulo", now)
	assert.NoError(t, err)

	tokyoRange, err := ResolvePeriod(PeriodLastDay, "Asia/Tokyo", now)
	assert.NoError(t, err)

	assert.False(t, saoPauloRange.From.Equal(tokyoRange.From))
}

func TestResolveRange(t *testing.T) {
	saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
	assert.NoError(t, err)

	t.Run("Datas alinham aos limites do dia no fuso da operação", func(t *testing.T) {
		from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)

		rng, err := ResolveRange(from, to, "America/Sao_Paulo")
		assert.NoError(t, err)
		assert.True(t, rng.From.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, saoPaulo)))
		assert.True(t, rng.To.Equal(time.Date(2024, 3, 7, 23, 59, 59, 0, saoPaulo)))
	})

	t.Run("Início depois do fim retorna erro", func(t *testing.T) {
		from := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

		_, err := ResolveRange(from, to, "America/Sao_Paulo")
		assert.Error(t, err)
	})

	t.Run("Um único dia é um intervalo válido", func(t *testing.T) {
		day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

		rng, err := ResolveRange(day, day, "America/Sao_Paulo")
		assert.NoError(t, err)
		assert.Equal(t, 1, rng.Days())
	})
}

func TestDateRange_Previous(t *testing.T) {
	rng, err := ResolvePeriod(PeriodLast7Days, "America/Sao_Paulo", time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC))
	assert.NoError(t, err)

	previous := rng.Previous()

	// Mesma duração, imediatamente anterior e sem sobreposição
	assert.Equal(t, rng.To.Sub(rng.From), previous.To.Sub(previous.From))
	assert.True(t, previous.To.Before(rng.From))
	assert.Equal(t, time.Second, rng.From.Sub(previous.To))
	assert.Equal(t, 7, previous.Days())
}

func TestValidPeriodTag(t *testing.T) {
	for _, tag := range []string{PeriodLastDay, PeriodLast7Days, PeriodLast30Days, PeriodLast90Days, PeriodCurrentMonth} {
		assert.True(t, ValidPeriodTag(tag), tag)
	}
	assert.False(t, ValidPeriodTag("last_fortnight"))
	assert.False(t, ValidPeriodTag(""))
}
