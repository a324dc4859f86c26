package repository

import "github.com/abastece/abastece-api/internal/domain/entity"

// ConditionRepository define a porta de persistência para CommercialCondition.
// GetBySupplierAndUF devolve (nil, nil) quando não há condição ativa para o par —
// ausência é válida e significa "usar os padrões".
type ConditionRepository interface {
	Create(condition *entity.CommercialCondition) error
	GetByID(id string) (*entity.CommercialCondition, error)
	GetBySupplierAndUF(supplierID, uf string) (*entity.CommercialCondition, error)
	ListBySupplier(supplierID string) ([]*entity.CommercialCondition, error)
	Update(condition *entity.CommercialCondition) error
	SoftDelete(id string) error
}
