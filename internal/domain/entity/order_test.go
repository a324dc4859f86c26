package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abastece/abastece-api/internal/domain/entity"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		allowed  bool
	}{
		{entity.OrderStatusPending, entity.OrderStatusShipped, true},
		{entity.OrderStatusPending, entity.OrderStatusCancelled, true},
		{entity.OrderStatusShipped, entity.OrderStatusDelivered, true},
		{entity.OrderStatusPending, entity.OrderStatusDelivered, false},
		{entity.OrderStatusShipped, entity.OrderStatusCancelled, false},
		{entity.OrderStatusShipped, entity.OrderStatusPending, false},
		{entity.OrderStatusDelivered, entity.OrderStatusPending, false},
		{entity.OrderStatusDelivered, entity.OrderStatusShipped, false},
		{entity.OrderStatusCancelled, entity.OrderStatusPending, false},
		{entity.OrderStatusCancelled, entity.OrderStatusShipped, false},
		{"unknown", entity.OrderStatusShipped, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, entity.CanTransition(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestIsTerminalOrderStatus(t *testing.T) {
	assert.False(t, entity.IsTerminalOrderStatus(entity.OrderStatusPending))
	assert.False(t, entity.IsTerminalOrderStatus(entity.OrderStatusShipped))
	assert.True(t, entity.IsTerminalOrderStatus(entity.OrderStatusDelivered))
	assert.True(t, entity.IsTerminalOrderStatus(entity.OrderStatusCancelled))
	assert.False(t, entity.IsTerminalOrderStatus("unknown"))
}

func TestIsValidPaymentMethod(t *testing.T) {
	for _, m := range []string{entity.PaymentPix, entity.PaymentBoleto, entity.PaymentCreditCard, entity.PaymentBankTransfer} {
		assert.True(t, entity.IsValidPaymentMethod(m))
	}
	assert.False(t, entity.IsValidPaymentMethod("cheque"))
	assert.False(t, entity.IsValidPaymentMethod(""))
}
