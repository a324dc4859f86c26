package broker

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/abastece/abastece-api/internal/application/order"
	"github.com/abastece/abastece-api/internal/domain/entity"
)

// Tipos de evento publicados no tópico de pedidos.
const (
	EventTypeOrderCreated       = "order.created"
	EventTypeOrderStatusChanged = "order.status_changed"
)

// OrderEvent é o envelope de todos os eventos de pedido.
type OrderEvent struct {
	EventID        string          `json:"event_id"`
	EventType      string          `json:"event_type"`
	OccurredAt     time.Time       `json:"occurred_at"`
	OrderID        string          `json:"order_id"`
	StoreID        string          `json:"store_id"`
	SupplierID     string          `json:"supplier_id"`
	Total          decimal.Decimal `json:"total"`
	Status         string          `json:"status"`
	PreviousStatus string          `json:"previous_status,omitempty"`
	CampaignID     *string         `json:"campaign_id,omitempty"`
}

var _ order.EventPublisher = (*OrderEventPublisher)(nil)

// OrderEventPublisher implementa o porto de eventos do caso de uso de pedidos.
type OrderEventPublisher struct {
	producer *Producer
}

// NewOrderEventPublisher constrói o publicador sobre um Producer.
func NewOrderEventPublisher(producer *Producer) *OrderEventPublisher {
	return &OrderEventPublisher{producer: producer}
}

// PublishOrderCreated publica o evento de criação de pedido.
func (ep *OrderEventPublisher) PublishOrderCreated(ctx context.Context, o *entity.Order) error {
	return ep.producer.Publish(ctx, o.ID, buildEvent(EventTypeOrderCreated, o, ""))
}

// PublishOrderStatusChanged publica a transição de status de um pedido.
func (ep *OrderEventPublisher) PublishOrderStatusChanged(ctx context.Context, o *entity.Order, previousStatus string) error {
	return ep.producer.Publish(ctx, o.ID, buildEvent(EventTypeOrderStatusChanged, o, previousStatus))
}

func buildEvent(eventType string, o *entity.Order, previousStatus string) *OrderEvent {
	return &OrderEvent{
		EventID:        uuid.New().String(),
		EventType:      eventType,
		OccurredAt:     time.Now(),
		OrderID:        o.ID,
		StoreID:        o.StoreID,
		SupplierID:     o.SupplierID,
		Total:          o.Total,
		Status:         o.Status,
		PreviousStatus: previousStatus,
		CampaignID:     o.CampaignID,
	}
}
