package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status válidos para Order. delivered e cancelled são terminais.
const (
	OrderStatusPending   = "pending"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Métodos de pagamento aceitos (conjunto fechado).
const (
	PaymentPix          = "pix"
	PaymentBoleto       = "boleto"
	PaymentCreditCard   = "credit_card"
	PaymentBankTransfer = "bank_transfer"
)

// IsValidPaymentMethod verifica o método de pagamento contra o conjunto fechado.
func IsValidPaymentMethod(m string) bool {
	switch m {
	case PaymentPix, PaymentBoleto, PaymentCreditCard, PaymentBankTransfer:
		return true
	}
	return false
}

// orderTransitions tabela de transições permitidas do ciclo de vida.
var orderTransitions = map[string][]string{
	OrderStatusPending:   {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusDelivered},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
}

// IsValidOrderStatus verifica se o status pertence ao conjunto conhecido.
func IsValidOrderStatus(s string) bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransition indica se a mudança from -> to é permitida pela máquina de estados.
func CanTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminalOrderStatus indica se o status não admite mais transições.
func IsTerminalOrderStatus(s string) bool {
	return len(orderTransitions[s]) == 0 && IsValidOrderStatus(s)
}

// Order representa um pedido de uma loja a um fornecedor.
// Total é sempre calculado no servidor a partir dos itens; nunca vem do cliente.
type Order struct {
	ID               string
	StoreID          string
	UserID           string // comprador (dono da loja no momento da criação)
	SupplierID       string // fornecedor único resolvido a partir dos itens
	Total            decimal.Decimal
	Description      string
	Status           string
	PaymentMethod    string
	DeliveryTermDays int
	CampaignID       *string // campanha aplicada ao total, se houver
	ShippedAt        *time.Time
	DeliveredAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time // soft delete é ortogonal ao status
}

// OrderItem representa uma linha do pedido. UnitPrice é congelado na criação
// para que pedidos históricos não mudem quando o catálogo mudar.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int // >= 1
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal // Quantity * UnitPrice
	CreatedAt time.Time
}
