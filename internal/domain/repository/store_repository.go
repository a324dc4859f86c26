package repository

import "github.com/abastece/abastece-api/internal/domain/entity"

// StoreRepository define a porta de persistência para Store.
type StoreRepository interface {
	Create(store *entity.Store) error
	GetByID(id string) (*entity.Store, error)
	GetByCNPJ(cnpj string) (*entity.Store, error)
	List(limit, offset int) ([]*entity.Store, error)
	ListByUser(userID string) ([]*entity.Store, error)
	Update(store *entity.Store) error
	SoftDelete(id string) error
}

// StoreSupplierRepository define a porta do vínculo loja↔fornecedor.
// GetActive devolve (nil, nil) quando não há vínculo ativo para o par.
type StoreSupplierRepository interface {
	Create(link *entity.StoreSupplier) error
	GetActive(storeID, supplierID string) (*entity.StoreSupplier, error)
	ListByStore(storeID string) ([]*entity.StoreSupplier, error)
	SoftDelete(id string) error
}
