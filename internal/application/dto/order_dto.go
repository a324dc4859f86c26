package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest linha de um pedido. UnitPrice zero significa "usar o preço
// vigente do catálogo"; valores negativos são rejeitados.
type OrderItemRequest struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest entrada para criar um pedido. O total NUNCA vem do cliente.
type CreateOrderRequest struct {
	StoreID       string             `json:"store_id" validate:"required,uuid"`
	Description   string             `json:"description"`
	PaymentMethod string             `json:"payment_method" validate:"required,oneof=pix boleto credit_card bank_transfer"`
	Items         []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateOrderStatusRequest transição de status do ciclo de vida.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending shipped delivered cancelled"`
}

// OrderItemResponse saída de uma linha do pedido.
type OrderItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderResponse saída de um pedido com itens.
type OrderResponse struct {
	ID               string              `json:"id"`
	StoreID          string              `json:"store_id"`
	SupplierID       string              `json:"supplier_id"`
	UserID           string              `json:"user_id"`
	Total            decimal.Decimal     `json:"total"`
	Description      string              `json:"description"`
	Status           string              `json:"status"`
	PaymentMethod    string              `json:"payment_method"`
	DeliveryTermDays int                 `json:"delivery_term_days"`
	CampaignID       *string             `json:"campaign_id,omitempty"`
	ShippedAt        *time.Time          `json:"shipped_at,omitempty"`
	DeliveredAt      *time.Time          `json:"delivered_at,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
	Items            []OrderItemResponse `json:"items"`
}

// OrderListResponse lista paginada de pedidos (sem itens).
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
