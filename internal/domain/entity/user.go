package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleSupplier = "supplier"
	RoleStore    = "store"
)

// User representa um usuário do sistema (dono de lojas e/ou fornecedores).
type User struct {
	ID           string
	Email        string
	PasswordHash string // hash bcrypt, nunca plano no domínio após persistir
	Name         string
	Role         string // admin, supplier, store
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // soft delete: nil = ativo
}
