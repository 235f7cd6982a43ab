package adnetwork

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/operation-metrics-api/internal/config"
	"github.com/vfg2006/operation-metrics-api/internal/domain"
)

// AdNetworkIntegrator expõe a consulta de gasto de campanhas selecionadas
// de uma conta de anúncios externa para um período
type AdNetworkIntegrator interface {
	FetchSelectedCampaignSpend(ctx context.Context, accountExternalID string, rng domain.DateRange) (*domain.CampaignSpend, error)
}

type AdNetworkService struct {
	cfg    *config.Config
	Client Client
}

func New(cfg *config.Config, client Client) AdNetworkIntegrator {
	return &AdNetworkService{
		cfg:    cfg,
		Client: client,
	}
}

// FetchSelectedCampaignSpend soma o gasto das campanhas marcadas como
// selecionadas de uma conta no período. Cada chamada é limitada pelo
// timeout configurado; falhas são capturáveis por conta.
func (s *AdNetworkService) FetchSelectedCampaignSpend(ctx context.Context, accountExternalID string, rng domain.DateRange) (*domain.CampaignSpend, error) {
	timeout := time.Duration(s.cfg.AdNetwork.TimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	response, err := s.Client.GetCampaignSpend(ctx, accountExternalID, rng.From, rng.To)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	currency := ""

	for _, entry := range response.Data {
		if !entry.Selected {
			continue
		}

		amount, err := decimal.NewFromString(entry.Spend)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id":  accountExternalID,
				"campaign_id": entry.CampaignID,
				"spend":       entry.Spend,
			}).Warn("Gasto de campanha com valor inválido, ignorando")
			continue
		}

		total = total.Add(amount)
		if currency == "" {
			currency = entry.Currency
		}
	}

	return &domain.CampaignSpend{
		AccountID: accountExternalID,
		Amount:    total,
		Currency:  currency,
	}, nil
}
