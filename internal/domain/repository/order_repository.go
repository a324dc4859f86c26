package repository

import "github.com/abastece/abastece-api/internal/domain/entity"

// OrderRepository define a porta de persistência para Order e seus itens.
// Create grava apenas a cabeça do pedido; os itens vão por CreateItem dentro
// da mesma transação (ver order.TxRunner).
type OrderRepository interface {
	Create(order *entity.Order) error
	CreateItem(item *entity.OrderItem) error
	GetByID(id string) (*entity.Order, error)
	GetItemsByOrder(orderID string) ([]*entity.OrderItem, error)
	List(limit, offset int) ([]*entity.Order, error)
	ListByBuyer(userID string, limit, offset int) ([]*entity.Order, error)
	ListBySupplierOwner(userID string, limit, offset int) ([]*entity.Order, error)
	Update(order *entity.Order) error
	SoftDelete(id string) error
}
