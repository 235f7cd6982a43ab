package adnetwork

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/operation-metrics-api/internal/config"
)

// ResponseCampaignSpend é a resposta crua da API da rede de anúncios para
// a consulta de gasto de campanhas de uma conta
type ResponseCampaignSpend struct {
	Data []CampaignSpendEntry `json:"data"`
}

type CampaignSpendEntry struct {
	CampaignID string `json:"campaign_id"`
	Name       string `json:"name"`
	Spend      string `json:"spend"`
	Currency   string `json:"currency"`
	Selected   bool   `json:"selected"`
}

type Client interface {
	GetCampaignSpend(ctx context.Context, accountExternalID string, startDate, endDate time.Time) (*ResponseCampaignSpend, error)
}

type AdNetworkClient struct {
	httpClient *http.Client
	cfg        *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &AdNetworkClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cfg: cfg,
	}
}

// GetCampaignSpend consulta o gasto de campanhas de uma conta no período.
// O contexto limita a chamada: estouro de prazo é tratado pelo chamador
// como degradação, não como falha da requisição inteira.
func (c *AdNetworkClient) GetCampaignSpend(ctx context.Context, accountExternalID string, startDate, endDate time.Time) (*ResponseCampaignSpend, error) {
	params := url.Values{}
	params.Add("start_date", startDate.Format(time.DateOnly))
	params.Add("end_date", endDate.Format(time.DateOnly))
	params.Add("access_token", c.cfg.AdNetwork.AccessToken)

	requestURL := fmt.Sprintf("%s/accounts/%s/campaigns/spend?%s", c.cfg.AdNetwork.BaseURL, accountExternalID, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição para a rede de anúncios")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar gasto de campanhas: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("resposta inesperada da rede de anúncios: %s", resp.Status)
	}

	var response ResponseCampaignSpend
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON da rede de anúncios")
		return nil, err
	}

	return &response, nil
}
