package order

import (
	"context"

	"github.com/abastece/abastece-api/internal/domain/entity"
	"github.com/abastece/abastece-api/internal/domain/repository"
)

// TxRunner executa uma função com um OrderRepository atado a uma transação.
// Cabeça do pedido e itens são gravados juntos: qualquer erro desfaz tudo.
type TxRunner interface {
	RunOrder(ctx context.Context, fn func(orderRepo repository.OrderRepository) error) error
}

// EventPublisher publica eventos de pedido (best effort; falha não derruba a requisição).
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, o *entity.Order) error
	PublishOrderStatusChanged(ctx context.Context, o *entity.Order, previousStatus string) error
}
