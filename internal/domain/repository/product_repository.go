package repository

import "github.com/abastece/abastece-api/internal/domain/entity"

// ProductRepository define a porta de persistência para Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	ListBySupplier(supplierID string, limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	SoftDelete(id string) error
}
