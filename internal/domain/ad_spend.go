package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdSpendEntry representa um gasto de marketing lançado manualmente,
// com moeda e data próprias. Escrito por um fluxo administrativo
// separado; somente leitura aqui.
type AdSpendEntry struct {
	ID          string          `json:"id"`
	OperationID string          `json:"operation_id"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CampaignSpend é o gasto de campanhas selecionadas de uma conta de
// anúncios externa em um período, na moeda reportada pela rede.
type CampaignSpend struct {
	AccountID string          `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
}
