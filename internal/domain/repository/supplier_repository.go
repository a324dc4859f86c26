package repository

import "github.com/abastece/abastece-api/internal/domain/entity"

// SupplierRepository define a porta de persistência para Supplier.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	GetByCNPJ(cnpj string) (*entity.Supplier, error)
	List(limit, offset int) ([]*entity.Supplier, error)
	ListByUser(userID string) ([]*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	SoftDelete(id string) error
}
