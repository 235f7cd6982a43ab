package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	currencymocks "github.com/vfg2006/operation-metrics-api/internal/usecases/currency/mocks"
	"go.uber.org/mock/gomock"
)

func TestRatesRefreshService_RefreshRates(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(normalizer *currencymocks.MockNormalizer)
		validate func(t *testing.T, err error)
	}{
		{
			name: "Atualização delega ao normalizador de moedas",
			setup: func(normalizer *currencymocks.MockNormalizer) {
				normalizer.EXPECT().RefreshCurrentRates().Return(nil)
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Falha do provedor de taxas é propagada",
			setup: func(normalizer *currencymocks.MockNormalizer) {
				normalizer.EXPECT().RefreshCurrentRates().Return(errors.New("upstream indisponível"))
			},
			validate: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			normalizer := currencymocks.NewMockNormalizer(ctrl)
			tt.setup(normalizer)

			service := &RatesRefreshService{
				normalizer: normalizer,
				config: RatesRefreshConfig{
					CronSchedule: "0 */6 * * *",
					Enabled:      true,
				},
			}

			err := service.RefreshRates()
			tt.validate(t, err)
		})
	}
}

func TestRatesRefreshService_SkipsWhenAlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	normalizer := currencymocks.NewMockNormalizer(ctrl)
	// Nenhuma chamada ao normalizador é esperada

	service := &RatesRefreshService{
		normalizer: normalizer,
		config:     RatesRefreshConfig{Enabled: true},
	}
	service.syncRunning = true

	assert.NoError(t, service.RefreshRates())
}
