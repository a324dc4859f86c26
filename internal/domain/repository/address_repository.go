package repository

import "github.com/abastece/abastece-api/internal/domain/entity"

// AddressRepository define a porta de persistência para Address.
type AddressRepository interface {
	Create(address *entity.Address) error
	GetByID(id string) (*entity.Address, error)
	ListByUser(userID string) ([]*entity.Address, error)
	Update(address *entity.Address) error
	SoftDelete(id string) error
}

// AddressExistenceChecker é o colaborador mínimo para checar existência de
// endereço em outros casos de uso (evita acoplamento oculto entre módulos).
type AddressExistenceChecker interface {
	Exists(id string) (bool, error)
}
