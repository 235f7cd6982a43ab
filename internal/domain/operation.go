package domain

import "time"

// OperationStatus representa o estado de uma operação no sistema
type OperationStatus string

const (
	OperationStatusActive   OperationStatus = "ACTIVE"
	OperationStatusInactive OperationStatus = "INACTIVE"
)

// Operation representa o contexto de vendas de um lojista: moeda base,
// fuso horário e contas de anúncio vinculadas. Todas as métricas são
// calculadas no escopo de uma operação.
type Operation struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	StoreID      string          `json:"store_id"`
	BaseCurrency string          `json:"base_currency"`
	Timezone     string          `json:"timezone"`
	Status       OperationStatus `json:"status"`
	AdAccounts   []*AdAccountRef `json:"ad_accounts,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// AdAccountRef referencia uma conta de anúncios externa vinculada à operação.
// Apenas contas selecionadas são consultadas, e dentro delas apenas as
// campanhas selecionadas entram no custo de marketing.
type AdAccountRef struct {
	ID         string `json:"id"`
	ExternalID string `json:"external_id"`
	Network    string `json:"network"`
	Selected   bool   `json:"selected"`
}
