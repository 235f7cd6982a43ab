package currency

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	exchangemocks "github.com/vfg2006/operation-metrics-api/infrastructure/integrator/exchange/mocks"
	"github.com/vfg2006/operation-metrics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/operation-metrics-api/internal/config"
	"github.com/vfg2006/operation-metrics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Metrics: config.Metrics{
			ReferenceCurrency: "BRL",
		},
	}
}

func rateSetFor(date time.Time) *domain.RateSet {
	return &domain.RateSet{
		Date:      date,
		Reference: "BRL",
		Rates: map[string]decimal.Decimal{
			"USD": decimal.NewFromFloat(5.1),
			"EUR": decimal.NewFromFloat(5.6),
		},
	}
}

func TestService_CurrentRates(t *testing.T) {
	t.Run("Provedor saudável - conjunto fica cacheado em memória", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		provider := exchangemocks.NewMockRateProvider(ctrl)
		rateRepo := mocks.NewMockExchangeRateRepository(ctrl)

		current := rateSetFor(time.Now().UTC())
		provider.EXPECT().CurrentRates().Return(current, nil) // uma única chamada

		service := NewService(testConfig(), provider, rateRepo)

		first, err := service.CurrentRates()
		assert.NoError(t, err)
		second, err := service.CurrentRates()
		assert.NoError(t, err)
		assert.Same(t, first, second)
	})

	t.Run("Provedor fora do ar sem conjunto em memória - cai no último conjunto do banco", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		provider := exchangemocks.NewMockRateProvider(ctrl)
		rateRepo := mocks.NewMockExchangeRateRepository(ctrl)

		provider.EXPECT().CurrentRates().Return(nil, errors.New("upstream indisponível"))
		stored := rateSetFor(time.Now().UTC().AddDate(0, 0, -1))
		rateRepo.EXPECT().GetLatest().Return(stored, nil)

		service := NewService(testConfig(), provider, rateRepo)

		rateSet, err := service.CurrentRates()
		assert.NoError(t, err)
		assert.Same(t, stored, rateSet)
	})

	t.Run("Provedor e banco fora do ar - erro explícito", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		provider := exchangemocks.NewMockRateProvider(ctrl)
		rateRepo := mocks.NewMockExchangeRateRepository(ctrl)

		provider.EXPECT().CurrentRates().Return(nil, errors.New("upstream indisponível"))
		rateRepo.EXPECT().GetLatest().Return(nil, errors.New("connection refused"))

		service := NewService(testConfig(), provider, rateRepo)

		rateSet, err := service.CurrentRates()
		assert.Nil(t, rateSet)
		assert.Error(t, err)
	})
}

func TestService_RatesFor(t *testing.T) {
	t.Run("Datas históricas - no máximo uma chamada em lote ao provedor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		provider := exchangemocks.NewMockRateProvider(ctrl)
		rateRepo := mocks.NewMockExchangeRateRepository(ctrl)

		day1 := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
		day2 := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

		// Banco não tem nenhuma das datas
		rateRepo.EXPECT().GetByDates(gomock.Len(2)).Return(map[string]*domain.RateSet{}, nil)

		// Uma única chamada em lote resolve as duas datas
		provider.EXPECT().
			HistoricalRates(gomock.Len(2)).
			Return(map[string]*domain.RateSet{
				"2024-03-04": rateSetFor(day1),
				"2024-03-05": rateSetFor(day2),
			}, nil)

		// Cada conjunto buscado é persistido para as próximas consultas
		rateRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil).Times(2)

		service := NewService(testConfig(), provider, rateRepo)

		// Datas repetidas não geram buscas extras
		rateSets, err := service.RatesFor([]time.Time{day1, day2, day1})
		assert.NoError(t, err)
		assert.Len(t, rateSets, 2)
		assert.NotNil(t, rateSets["2024-03-04"])
		assert.NotNil(t, rateSets["2024-03-05"])

		// Segunda consulta sai da memória, sem tocar banco nem provedor
		rateSets, err = service.RatesFor([]time.Time{day1, day2})
		assert.NoError(t, err)
		assert.Len(t, rateSets, 2)
	})

	t.Run("Datas já persistidas - não consulta o provedor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		provider := exchangemocks.NewMockRateProvider(ctrl)
		rateRepo := mocks.NewMockExchangeRateRepository(ctrl)

		day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
		rateRepo.EXPECT().
			GetByDates(gomock.Len(1)).
			Return(map[string]*domain.RateSet{"2024-03-04": rateSetFor(day)}, nil)

		service := NewService(testConfig(), provider, rateRepo)

		rateSets, err := service.RatesFor([]time.Time{day})
		assert.NoError(t, err)
		assert.NotNil(t, rateSets["2024-03-04"])
	})

	t.Run("Data de hoje - usa o conjunto corrente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		provider := exchangemocks.NewMockRateProvider(ctrl)
		rateRepo := mocks.NewMockExchangeRateRepository(ctrl)

		today := time.Now().UTC()
		current := rateSetFor(today)
		provider.EXPECT().CurrentRates().Return(current, nil)

		service := NewService(testConfig(), provider, rateRepo)

		rateSets, err := service.RatesFor([]time.Time{today})
		assert.NoError(t, err)
		assert.Same(t, current, rateSets[today.Format(time.DateOnly)])
	})

	t.Run("Provedor histórico fora do ar - datas faltantes usam o conjunto corrente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		provider := exchangemocks.NewMockRateProvider(ctrl)
		rateRepo := mocks.NewMockExchangeRateRepository(ctrl)

		day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
		rateRepo.EXPECT().GetByDates(gomock.Any()).Return(map[string]*domain.RateSet{}, nil)
		provider.EXPECT().HistoricalRates(gomock.Any()).Return(nil, errors.New("upstream indisponível"))

		current := rateSetFor(time.Now().UTC())
		provider.EXPECT().CurrentRates().Return(current, nil)

		service := NewService(testConfig(), provider, rateRepo)

		rateSets, err := service.RatesFor([]time.Time{day})
		assert.NoError(t, err)
		assert.Same(t, current, rateSets["2024-03-04"])
	})
}

func TestService_RefreshCurrentRates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := exchangemocks.NewMockRateProvider(ctrl)
	rateRepo := mocks.NewMockExchangeRateRepository(ctrl)

	current := rateSetFor(time.Now().UTC())
	provider.EXPECT().CurrentRates().Return(current, nil)
	rateRepo.EXPECT().SaveOrUpdate(current).Return(nil)

	service := NewService(testConfig(), provider, rateRepo)

	assert.NoError(t, service.RefreshCurrentRates())

	// O conjunto atualizado passa a responder CurrentRates sem nova chamada
	rateSet, err := service.CurrentRates()
	assert.NoError(t, err)
	assert.Same(t, current, rateSet)
}
