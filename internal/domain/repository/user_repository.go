package repository

import "github.com/abastece/abastece-api/internal/domain/entity"

// UserRepository define a porta de persistência para User (DIP).
// Leituras devolvem (nil, nil) quando o registro não existe ou foi removido (soft delete).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	SoftDelete(id string) error
}
