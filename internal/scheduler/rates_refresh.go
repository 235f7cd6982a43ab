package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/operation-metrics-api/internal/config"
	"github.com/vfg2006/operation-metrics-api/internal/usecases/currency"
)

type RatesRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// RatesRefreshService atualiza periodicamente o conjunto corrente de taxas
// de câmbio e o persiste, mantendo um fallback recente para quando o
// provedor estiver fora do ar
type RatesRefreshService struct {
	scheduler           *gocron.Scheduler
	normalizer          currency.Normalizer
	config              RatesRefreshConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewRatesRefreshService(
	normalizer currency.Normalizer,
	cfg *config.Config,
) *RatesRefreshService {
	refreshConfig := RatesRefreshConfig{
		CronSchedule: cfg.RatesSync.CronSchedule, // Default: a cada 6 horas
		Enabled:      cfg.RatesSync.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
	}).Info("Configuração do agendador de atualização de taxas carregada")

	return &RatesRefreshService{
		scheduler:  scheduler,
		normalizer: normalizer,
		config:     refreshConfig,
	}
}

func (s *RatesRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de atualização de taxas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de atualização de taxas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RefreshRates(); err != nil {
			logrus.WithError(err).Error("Erro na atualização de taxas de câmbio")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de taxas: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de atualização de taxas")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *RatesRefreshService) RefreshRates() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Atualização de taxas já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando atualização do conjunto corrente de taxas")

	if err := s.normalizer.RefreshCurrentRates(); err != nil {
		logrus.WithError(err).Error("Erro ao atualizar o conjunto corrente de taxas")
		return err
	}

	logrus.Info("Atualização de taxas concluída")

	return nil
}

// TriggerManualSync inicia manualmente uma atualização de taxas
func (s *RatesRefreshService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização de taxas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual de taxas")
	go s.RefreshRates()
}

// GetStatus retorna o status atual do agendador
func (s *RatesRefreshService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
