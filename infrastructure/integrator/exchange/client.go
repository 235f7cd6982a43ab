package exchange

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/operation-metrics-api/internal/config"
	"github.com/vfg2006/operation-metrics-api/internal/domain"
)

// ResponseRates é a resposta crua do provedor de câmbio para um dia
type ResponseRates struct {
	Date  string                     `json:"date"`
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// RateProvider expõe as consultas ao provedor externo de câmbio: taxas
// correntes e taxas históricas em lote (uma chamada para N datas
// distintas, nunca uma chamada por linha agregada).
type RateProvider interface {
	CurrentRates() (*domain.RateSet, error)
	HistoricalRates(dates []time.Time) (map[string]*domain.RateSet, error)
}

type ExchangeClient struct {
	httpClient *http.Client
	cfg        *config.Config
}

func NewClient(cfg *config.Config) RateProvider {
	return &ExchangeClient{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		cfg: cfg,
	}
}

func (c *ExchangeClient) CurrentRates() (*domain.RateSet, error) {
	requestURL := fmt.Sprintf("%s/latest?base=%s", c.cfg.Exchange.BaseURL, c.cfg.Metrics.ReferenceCurrency)

	response, err := c.fetch(requestURL)
	if err != nil {
		return nil, err
	}

	return c.toRateSet(response)
}

func (c *ExchangeClient) HistoricalRates(dates []time.Time) (map[string]*domain.RateSet, error) {
	if len(dates) == 0 {
		return map[string]*domain.RateSet{}, nil
	}

	dateStrs := make([]string, 0, len(dates))
	for _, date := range dates {
		dateStrs = append(dateStrs, date.Format(time.DateOnly))
	}

	params := url.Values{}
	params.Add("base", c.cfg.Metrics.ReferenceCurrency)
	params.Add("dates", strings.Join(dateStrs, ","))

	requestURL := fmt.Sprintf("%s/historical?%s", c.cfg.Exchange.BaseURL, params.Encode())

	resp, err := c.httpClient.Get(requestURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar taxas históricas: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("resposta inesperada do provedor de câmbio: %s", resp.Status)
	}

	var responses []ResponseRates
	if err := json.NewDecoder(resp.Body).Decode(&responses); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON do provedor de câmbio")
		return nil, err
	}

	rateSets := make(map[string]*domain.RateSet, len(responses))
	for i := range responses {
		rateSet, err := c.toRateSet(&responses[i])
		if err != nil {
			return nil, err
		}
		rateSets[responses[i].Date] = rateSet
	}

	return rateSets, nil
}

func (c *ExchangeClient) fetch(requestURL string) (*ResponseRates, error) {
	resp, err := c.httpClient.Get(requestURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar o provedor de câmbio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("resposta inesperada do provedor de câmbio: %s", resp.Status)
	}

	var response ResponseRates
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON do provedor de câmbio")
		return nil, err
	}

	return &response, nil
}

func (c *ExchangeClient) toRateSet(response *ResponseRates) (*domain.RateSet, error) {
	date, err := time.Parse(time.DateOnly, response.Date)
	if err != nil {
		return nil, fmt.Errorf("erro ao converter data do provedor de câmbio: %w", err)
	}

	return &domain.RateSet{
		Date:      date,
		Reference: response.Base,
		Rates:     response.Rates,
	}, nil
}
