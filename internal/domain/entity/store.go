package entity

import "time"

// Store representa uma loja compradora (mercado).
type Store struct {
	ID        string
	UserID    string // dono
	Name      string
	CNPJ      string // 14 dígitos numéricos, único entre lojas ativas
	AddressID *string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// StoreSupplier é o vínculo loja↔fornecedor. No máximo um vínculo ativo por par.
type StoreSupplier struct {
	ID         string
	StoreID    string
	SupplierID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}
