package currency

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/operation-metrics-api/infrastructure/integrator/exchange"
	"github.com/vfg2006/operation-metrics-api/infrastructure/repository"
	"github.com/vfg2006/operation-metrics-api/internal/config"
	"github.com/vfg2006/operation-metrics-api/internal/domain"
)

// currentRatesMaxAge define por quanto tempo o conjunto corrente fica em
// memória antes de uma nova consulta ao provedor
const currentRatesMaxAge = 1 * time.Hour

// Normalizer resolve conjuntos de taxas por dia-calendário. Conversões em
// lote sobre N datas distintas fazem no máximo uma busca de taxas por
// data distinta (na prática, uma única chamada em lote ao provedor).
type Normalizer interface {
	CurrentRates() (*domain.RateSet, error)
	RatesFor(dates []time.Time) (map[string]*domain.RateSet, error)
	RefreshCurrentRates() error
}

type Service struct {
	cfg      *config.Config
	provider exchange.RateProvider
	rateRepo repository.ExchangeRateRepository

	mutex     sync.RWMutex
	byDate    map[string]*domain.RateSet
	current   *domain.RateSet
	currentAt time.Time
}

func NewService(cfg *config.Config, provider exchange.RateProvider, rateRepo repository.ExchangeRateRepository) *Service {
	return &Service{
		cfg:      cfg,
		provider: provider,
		rateRepo: rateRepo,
		byDate:   make(map[string]*domain.RateSet),
	}
}

// CurrentRates retorna o conjunto de taxas corrente, cacheado em memória
// por processo. Falha do provedor cai no último conjunto conhecido
// (memória, depois banco) em vez de abortar o cálculo.
func (s *Service) CurrentRates() (*domain.RateSet, error) {
	s.mutex.RLock()
	if s.current != nil && time.Since(s.currentAt) < currentRatesMaxAge {
		current := s.current
		s.mutex.RUnlock()
		return current, nil
	}
	s.mutex.RUnlock()

	rateSet, err := s.provider.CurrentRates()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao buscar taxas correntes do provedor, usando último conjunto conhecido")

		s.mutex.RLock()
		current := s.current
		s.mutex.RUnlock()
		if current != nil {
			return current, nil
		}

		latest, repoErr := s.rateRepo.GetLatest()
		if repoErr != nil || latest == nil {
			return nil, fmt.Errorf("nenhum conjunto de taxas disponível: %w", err)
		}
		return latest, nil
	}

	s.mutex.Lock()
	s.current = rateSet
	s.currentAt = time.Now()
	s.mutex.Unlock()

	return rateSet, nil
}

// RatesFor resolve o conjunto de taxas histórico de cada data pedida.
// Datas de hoje (ou futuras) usam o conjunto corrente; para as demais, a
// ordem é memória, banco e por fim uma única chamada em lote ao provedor.
func (s *Service) RatesFor(dates []time.Time) (map[string]*domain.RateSet, error) {
	result := make(map[string]*domain.RateSet, len(dates))
	today := time.Now().UTC().Format(time.DateOnly)

	var currentNeeded bool
	missing := make([]time.Time, 0)
	seen := make(map[string]bool, len(dates))

	s.mutex.RLock()
	for _, date := range dates {
		key := date.Format(time.DateOnly)
		if seen[key] {
			continue
		}
		seen[key] = true

		if key >= today {
			currentNeeded = true
			continue
		}

		if cached, ok := s.byDate[key]; ok {
			result[key] = cached
			continue
		}

		missing = append(missing, date)
	}
	s.mutex.RUnlock()

	if len(missing) > 0 {
		stored, err := s.rateRepo.GetByDates(missing)
		if err != nil {
			logrus.WithError(err).Warn("Erro ao buscar taxas históricas no banco de dados")
			stored = map[string]*domain.RateSet{}
		}

		notStored := make([]time.Time, 0)
		for _, date := range missing {
			key := date.Format(time.DateOnly)
			if rateSet, ok := stored[key]; ok {
				result[key] = rateSet
				continue
			}
			notStored = append(notStored, date)
		}

		if len(notStored) > 0 {
			fetched, err := s.provider.HistoricalRates(notStored)
			if err != nil {
				// Degradação: datas sem taxa histórica usam o conjunto
				// corrente em vez de derrubar a agregação inteira
				logrus.WithError(err).WithField("dates", len(notStored)).
					Warn("Erro ao buscar taxas históricas do provedor, usando taxas correntes para as datas faltantes")
				currentNeeded = true
			} else {
				for key, rateSet := range fetched {
					result[key] = rateSet
					if err := s.rateRepo.SaveOrUpdate(rateSet); err != nil {
						logrus.WithError(err).WithField("date", key).
							Warn("Erro ao persistir conjunto de taxas histórico")
					}
				}
			}
		}

		s.mutex.Lock()
		for key, rateSet := range result {
			s.byDate[key] = rateSet
		}
		s.mutex.Unlock()
	}

	if currentNeeded || len(result) < len(seen) {
		current, err := s.CurrentRates()
		if err != nil {
			return nil, err
		}
		for key := range seen {
			if _, ok := result[key]; !ok {
				result[key] = current
			}
		}
	}

	return result, nil
}

// RefreshCurrentRates força a atualização do conjunto corrente e o
// persiste para servir de fallback. Chamado pelo agendador de câmbio.
func (s *Service) RefreshCurrentRates() error {
	rateSet, err := s.provider.CurrentRates()
	if err != nil {
		return fmt.Errorf("erro ao atualizar taxas correntes: %w", err)
	}

	s.mutex.Lock()
	s.current = rateSet
	s.currentAt = time.Now()
	s.mutex.Unlock()

	if err := s.rateRepo.SaveOrUpdate(rateSet); err != nil {
		return fmt.Errorf("erro ao persistir taxas correntes: %w", err)
	}

	return nil
}
