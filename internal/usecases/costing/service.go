package costing

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/operation-metrics-api/infrastructure/integrator/adnetwork"
	"github.com/vfg2006/operation-metrics-api/infrastructure/repository"
	"github.com/vfg2006/operation-metrics-api/internal/config"
	"github.com/vfg2006/operation-metrics-api/internal/domain"
	"github.com/vfg2006/operation-metrics-api/internal/usecases/currency"
)

// CostCalculator calcula o detalhamento de custos de uma operação em um
// período, sempre na moeda base da operação
type CostCalculator interface {
	CalculateCosts(ctx context.Context, operation *domain.Operation, rng domain.DateRange, filter repository.OrderFilter) (*domain.CostBreakdown, error)
}

type Service struct {
	cfg          *config.Config
	aggregation  CostAggregation
	fallback     CostAggregation
	adSpendRepo  repository.AdSpendRepository
	adIntegrator adnetwork.AdNetworkIntegrator
	normalizer   currency.Normalizer
}

func NewService(
	cfg *config.Config,
	aggregation CostAggregation,
	fallback CostAggregation,
	adSpendRepo repository.AdSpendRepository,
	adIntegrator adnetwork.AdNetworkIntegrator,
	normalizer currency.Normalizer,
) *Service {
	return &Service{
		cfg:          cfg,
		aggregation:  aggregation,
		fallback:     fallback,
		adSpendRepo:  adSpendRepo,
		adIntegrator: adIntegrator,
		normalizer:   normalizer,
	}
}

// CalculateCosts resolve os dois ramos de custo em paralelo: os custos da
// loja (produto, frete e devoluções) e os custos de marketing. Falha do
// ramo da loja aborta o cálculo; o ramo de marketing degrada por conta,
// nunca derruba o resultado inteiro.
func (s *Service) CalculateCosts(ctx context.Context, operation *domain.Operation, rng domain.DateRange, filter repository.OrderFilter) (*domain.CostBreakdown, error) {
	breakdown := &domain.CostBreakdown{
		ProductCosts:        decimal.Zero,
		ShippingCosts:       decimal.Zero,
		CombinedCosts:       decimal.Zero,
		MarketingCosts:      decimal.Zero,
		ReturnHandlingCosts: decimal.Zero,
	}

	var wg sync.WaitGroup
	var storeErr error

	wg.Add(1)
	go func() {
		defer wg.Done()

		delivered, err := s.aggregateWithFallback(operation.ID, rng, domain.OrderStatusDelivered, filter)
		if err != nil {
			storeErr = err
			return
		}

		returned, err := s.aggregateWithFallback(operation.ID, rng, domain.OrderStatusReturned, filter)
		if err != nil {
			storeErr = err
			return
		}

		breakdown.ProductCosts = delivered.ProductCosts
		breakdown.ShippingCosts = delivered.ShippingCosts
		breakdown.CombinedCosts = delivered.ProductCosts.Add(delivered.ShippingCosts)
		breakdown.ReturnHandlingCosts = returned.ShippingCosts
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		breakdown.MarketingCosts = s.marketingCosts(ctx, operation, rng)
	}()

	wg.Wait()

	if storeErr != nil {
		return nil, storeErr
	}

	return breakdown, nil
}

// aggregateWithFallback tenta a agregação rápida e, se ela falhar, refaz o
// cálculo linha a linha registrando o modo degradado
func (s *Service) aggregateWithFallback(operationID string, rng domain.DateRange, status string, filter repository.OrderFilter) (*repository.AggregatedCosts, error) {
	costs, err := s.aggregation.AggregateCosts(operationID, rng, status, filter)
	if err == nil {
		return costs, nil
	}

	logrus.WithError(err).WithFields(logrus.Fields{
		"operation_id": operationID,
		"status":       status,
		"strategy":     s.aggregation.Name(),
	}).Warn("Agregação de custos falhou, recalculando linha a linha")

	costs, fallbackErr := s.fallback.AggregateCosts(operationID, rng, status, filter)
	if fallbackErr != nil {
		return nil, fallbackErr
	}

	return costs, nil
}

// marketingCosts soma os lançamentos manuais de gasto e o gasto das contas
// de anúncio vinculadas, tudo convertido para a moeda base da operação.
// Cada fonte degrada para zero individualmente em caso de falha.
func (s *Service) marketingCosts(ctx context.Context, operation *domain.Operation, rng domain.DateRange) decimal.Decimal {
	total := s.manualSpend(operation, rng)
	return total.Add(s.adAccountsSpend(ctx, operation, rng))
}

// manualSpend converte cada lançamento manual na taxa vigente na data do
// lançamento, com no máximo uma busca de taxas por data distinta
func (s *Service) manualSpend(operation *domain.Operation, rng domain.DateRange) decimal.Decimal {
	entries, err := s.adSpendRepo.GetByDateRange(operation.ID, rng.From, rng.To)
	if err != nil {
		logrus.WithError(err).WithField("operation_id", operation.ID).
			Warn("Erro ao buscar lançamentos manuais de gasto, assumindo zero")
		return decimal.Zero
	}

	if len(entries) == 0 {
		return decimal.Zero
	}

	dates := make([]time.Time, 0, len(entries))
	for _, entry := range entries {
		dates = append(dates, entry.Date)
	}

	rateSets, err := s.normalizer.RatesFor(dates)
	if err != nil {
		logrus.WithError(err).WithField("operation_id", operation.ID).
			Warn("Erro ao resolver taxas históricas dos lançamentos manuais, assumindo zero")
		return decimal.Zero
	}

	total := decimal.Zero
	for _, entry := range entries {
		rateSet := rateSets[entry.Date.Format(time.DateOnly)]
		converted, err := domain.Convert(entry.Amount, entry.Currency, operation.BaseCurrency, rateSet)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"operation_id": operation.ID,
				"entry_id":     entry.ID,
				"currency":     entry.Currency,
			}).Warn("Erro ao converter lançamento manual de gasto, ignorando")
			continue
		}
		total = total.Add(converted)
	}

	return total
}

// adAccountsSpend consulta cada conta de anúncios selecionada em paralelo,
// limitado pela concorrência máxima configurada. Contas não selecionadas
// ficam fora do fanout; conta que falha ou estoura o timeout contribui
// com zero.
func (s *Service) adAccountsSpend(ctx context.Context, operation *domain.Operation, rng domain.DateRange) decimal.Decimal {
	if len(operation.AdAccounts) == 0 {
		return decimal.Zero
	}

	maxConcurrent := s.cfg.AdNetwork.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	var wg sync.WaitGroup
	var mutex sync.Mutex
	semaphore := make(chan struct{}, maxConcurrent)
	total := decimal.Zero

	for _, account := range operation.AdAccounts {
		if !account.Selected {
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(account *domain.AdAccountRef) {
			defer wg.Done()
			defer func() { <-semaphore }()

			spend, err := s.adIntegrator.FetchSelectedCampaignSpend(ctx, account.ExternalID, rng)
			if err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"operation_id": operation.ID,
					"account_id":   account.ExternalID,
				}).Warn("Erro ao consultar gasto da conta de anúncios, assumindo zero para a conta")
				return
			}

			converted := spend.Amount
			if !spend.Amount.IsZero() && spend.Currency != operation.BaseCurrency {
				current, err := s.normalizer.CurrentRates()
				if err == nil {
					converted, err = domain.Convert(spend.Amount, spend.Currency, operation.BaseCurrency, current)
				}
				if err != nil {
					logrus.WithError(err).WithFields(logrus.Fields{
						"operation_id": operation.ID,
						"account_id":   account.ExternalID,
						"currency":     spend.Currency,
					}).Warn("Erro ao converter gasto da conta de anúncios, assumindo zero para a conta")
					return
				}
			}

			mutex.Lock()
			total = total.Add(converted)
			mutex.Unlock()
		}(account)
	}

	wg.Wait()

	return total
}
