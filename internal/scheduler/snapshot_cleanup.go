// Package scheduler contém os serviços de agendamento de manutenção
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/operation-metrics-api/infrastructure/repository"
	"github.com/vfg2006/operation-metrics-api/internal/config"
)

type SnapshotCleanupConfig struct {
	CronSchedule  string
	RetentionDays int
	Enabled       bool
}

// SnapshotCleanupService remove periodicamente os snapshots vencidos há
// mais tempo que a janela de retenção
type SnapshotCleanupService struct {
	scheduler           *gocron.Scheduler
	snapshotRepo        repository.MetricsSnapshotRepository
	config              SnapshotCleanupConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewSnapshotCleanupService(
	snapshotRepo repository.MetricsSnapshotRepository,
	cfg *config.Config,
) *SnapshotCleanupService {
	cleanupConfig := SnapshotCleanupConfig{
		CronSchedule:  cfg.SnapshotCleanup.CronSchedule,  // Default: 4h da manhã todos os dias
		RetentionDays: cfg.SnapshotCleanup.RetentionDays, // Default: 30 dias
		Enabled:       cfg.SnapshotCleanup.Enabled,       // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  cleanupConfig.CronSchedule,
		"retention_days": cleanupConfig.RetentionDays,
	}).Info("Configuração do agendador de limpeza de snapshots carregada")

	return &SnapshotCleanupService{
		scheduler:    scheduler,
		snapshotRepo: snapshotRepo,
		config:       cleanupConfig,
	}
}

func (s *SnapshotCleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de limpeza de snapshots desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de limpeza de snapshots")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.CleanupExpiredSnapshots(); err != nil {
			logrus.WithError(err).Error("Erro na limpeza de snapshots vencidos")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de snapshots: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de limpeza de snapshots")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *SnapshotCleanupService) CleanupExpiredSnapshots() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Limpeza de snapshots já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.WithField("retention_days", s.config.RetentionDays).Info("Iniciando limpeza de snapshots vencidos")

	removed, err := s.snapshotRepo.DeleteExpiredOlderThan(s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover snapshots vencidos")
		return err
	}

	logrus.WithField("removed", removed).Info("Limpeza de snapshots concluída")

	return nil
}

// TriggerManualSync inicia manualmente uma limpeza de snapshots
func (s *SnapshotCleanupService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Limpeza de snapshots já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando limpeza manual de snapshots")
	go s.CleanupExpiredSnapshots()
}

// GetStatus retorna o status atual do agendador
func (s *SnapshotCleanupService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"retention_days":         s.config.RetentionDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
