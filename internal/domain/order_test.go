package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func stringRef(s string) *string {
	return &s
}

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{OrderStatusPending, BucketPending},
		{OrderStatusConfirmed, BucketPending}, // confirmação exige a transportadora
		{OrderStatusPacked, BucketShipped},
		{OrderStatusShipped, BucketShipped},
		{OrderStatusInTransit, BucketShipped},
		{OrderStatusDelivered, BucketDelivered},
		{OrderStatusReturned, BucketReturned},
		{OrderStatusCancelled, BucketCancelled},
		{"awaiting_warehouse", BucketPending}, // status desconhecido não some da soma
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeStatus(tt.raw), tt.raw)
	}
}

func TestOrder_Bucket(t *testing.T) {
	tests := []struct {
		name     string
		order    Order
		expected string
	}{
		{
			name:     "Status confirmado do canal sem transportadora continua pendente",
			order:    Order{Status: OrderStatusConfirmed},
			expected: BucketPending,
		},
		{
			name: "Reconhecimento da transportadora move o pedido para confirmado",
			order: Order{
				Status:              OrderStatusConfirmed,
				CarrierImported:     true,
				CarrierConfirmation: stringRef("CONF-123"),
			},
			expected: BucketConfirmed,
		},
		{
			name: "Importado pela transportadora sem código de confirmação não basta",
			order: Order{
				Status:              OrderStatusPending,
				CarrierImported:     true,
				CarrierConfirmation: stringRef(""),
			},
			expected: BucketPending,
		},
		{
			name: "Status terminal prevalece sobre a confirmação da transportadora",
			order: Order{
				Status:              OrderStatusDelivered,
				CarrierImported:     true,
				CarrierConfirmation: stringRef("CONF-123"),
			},
			expected: BucketDelivered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.order.Bucket())
		})
	}
}
