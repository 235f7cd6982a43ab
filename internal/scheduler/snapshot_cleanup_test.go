package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/operation-metrics-api/infrastructure/repository/mocks"
	"go.uber.org/mock/gomock"
)

func TestSnapshotCleanupService_CleanupExpiredSnapshots(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(snapshotRepo *mocks.MockMetricsSnapshotRepository)
		validate func(t *testing.T, err error)
	}{
		{
			name: "Limpeza remove snapshots fora da janela de retenção",
			setup: func(snapshotRepo *mocks.MockMetricsSnapshotRepository) {
				snapshotRepo.EXPECT().DeleteExpiredOlderThan(30).Return(int64(12), nil)
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Falha no repositório é propagada",
			setup: func(snapshotRepo *mocks.MockMetricsSnapshotRepository) {
				snapshotRepo.EXPECT().DeleteExpiredOlderThan(30).Return(int64(0), errors.New("connection refused"))
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

			snapshotRepo := mocks.NewMockMetricsSnapshotRepository(ctrl)
			tt.setup(snapshotRepo)

			service := &SnapshotCleanupService{
				snapshotRepo: snapshotRepo,
				config: SnapshotCleanupConfig{
					CronSchedule:  "0 4 * * *",
					RetentionDays: 30,
					Enabled:       true,
				},
			}

			err := service.CleanupExpiredSnapshots()
			tt.validate(t, err)
		})
	}
}

func TestSnapshotCleanupService_SkipsWhenAlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snapshotRepo := mocks.NewMockMetricsSnapshotRepository(ctrl)
	// Nenhuma chamada ao repositório é esperada

	service := &SnapshotCleanupService{
		snapshotRepo: snapshotRepo,
		config:       SnapshotCleanupConfig{RetentionDays: 30, Enabled: true},
	}
	service.syncRunning = true

	assert.NoError(t, service.CleanupExpiredSnapshots())
}

func TestSnapshotCleanupService_GetStatus(t *testing.T) {
	service := &SnapshotCleanupService{
		config: SnapshotCleanupConfig{
			CronSchedule:  "0 4 * * *",
			RetentionDays: 30,
			Enabled:       true,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 4 * * *", status["sync_cron"])
	assert.Equal(t, 30, status["retention_days"])
}
