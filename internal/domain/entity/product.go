package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um produto do catálogo de um fornecedor.
// Price é o preço de venda vigente; pedidos congelam o preço no item (OrderItem.UnitPrice).
type Product struct {
	ID          string
	SupplierID  string
	Name        string
	Description string
	Price       decimal.Decimal // > 0, 2 casas decimais
	Stock       int             // >= 0
	Category    string
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}
