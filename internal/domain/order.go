package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status brutos de pedidos como chegam do processo de ingestão.
// A transportadora pode gravar códigos próprios de confirmação, por isso
// o conjunto não é fechado do lado da ingestão.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPacked    = "packed"
	OrderStatusShipped   = "shipped"
	OrderStatusInTransit = "in_transit"
	OrderStatusDelivered = "delivered"
	OrderStatusReturned  = "returned"
	OrderStatusCancelled = "cancelled"
)

// Buckets normalizados exibidos no dashboard
const (
	BucketPending   = "pending"
	BucketConfirmed = "confirmed"
	BucketShipped   = "shipped"
	BucketDelivered = "delivered"
	BucketReturned  = "returned"
	BucketCancelled = "cancelled"
)

// StatusBuckets lista os buckets na ordem de exibição do dashboard
var StatusBuckets = []string{
	BucketPending,
	BucketConfirmed,
	BucketShipped,
	BucketDelivered,
	BucketReturned,
	BucketCancelled,
}

// statusToBucket mapeia status brutos para buckets do dashboard.
// "confirmed" de canal NÃO entra aqui: a confirmação só conta quando a
// transportadora reconheceu o pedido (ver Order.IsCarrierConfirmed).
var statusToBucket = map[string]string{
	OrderStatusPending:   BucketPending,
	OrderStatusConfirmed: BucketPending,
	OrderStatusPacked:    BucketShipped,
	OrderStatusShipped:   BucketShipped,
	OrderStatusInTransit: BucketShipped,
	OrderStatusDelivered: BucketDelivered,
	OrderStatusReturned:  BucketReturned,
	OrderStatusCancelled: BucketCancelled,
}

// NormalizeStatus converte um status bruto em um bucket do dashboard.
// Status desconhecidos caem em "pending" para que a soma dos buckets
// sempre feche com o total de pedidos.
func NormalizeStatus(raw string) string {
	if bucket, ok := statusToBucket[raw]; ok {
		return bucket
	}
	return BucketPending
}

// OrderItem representa um item de linha de um pedido, referenciando o SKU
// usado para atribuir custo de produto e frete.
type OrderItem struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

// Order representa um pedido de uma operação. Pedidos são criados por um
// processo de ingestão externo e alterados apenas por eventos de status.
type Order struct {
	ID                  string          `json:"id"`
	OperationID         string          `json:"operation_id"`
	Status              string          `json:"status"`
	Total               decimal.Decimal `json:"total"`
	Paid                bool            `json:"paid"`
	Provider            string          `json:"provider"`
	CustomerID          string          `json:"customer_id"`
	OrderDate           time.Time       `json:"order_date"`
	LastStatusUpdate    time.Time       `json:"last_status_update"`
	CarrierImported     bool            `json:"carrier_imported"`
	CarrierConfirmation *string         `json:"carrier_confirmation,omitempty"`
	Items               []OrderItem     `json:"items,omitempty"`
}

// IsCarrierConfirmed indica se a transportadora reconheceu o pedido.
// Regra de negócio: um pedido só conta como confirmado após o aceite da
// transportadora; o status "confirmed" do canal de vendas sozinho não basta.
func (o *Order) IsCarrierConfirmed() bool {
	return o.CarrierImported && o.CarrierConfirmation != nil && *o.CarrierConfirmation != ""
}

// Bucket retorna o bucket do dashboard para o pedido, aplicando a regra
// de confirmação por transportadora sobre o status bruto.
func (o *Order) Bucket() string {
	bucket := NormalizeStatus(o.Status)
	if bucket == BucketPending && o.IsCarrierConfirmed() {
		return BucketConfirmed
	}
	return bucket
}
