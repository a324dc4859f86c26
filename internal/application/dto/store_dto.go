package dto

import "time"

// CreateStoreRequest entrada para criar uma loja.
type CreateStoreRequest struct {
	Name      string  `json:"name" validate:"required,min=1,max=200"`
	CNPJ      string  `json:"cnpj" validate:"required,len=14,numeric"`
	AddressID *string `json:"address_id" validate:"omitempty,uuid"`
}

// UpdateStoreRequest entrada para atualizar uma loja.
type UpdateStoreRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=200"`
	AddressID *string `json:"address_id" validate:"omitempty,uuid"`
}

// StoreResponse saída de uma loja.
type StoreResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	CNPJ      string    `json:"cnpj"`
	AddressID *string   `json:"address_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StoreListResponse lista paginada de lojas.
type StoreListResponse struct {
	Items []StoreResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// LinkSupplierRequest entrada para vincular um fornecedor a uma loja.
type LinkSupplierRequest struct {
	SupplierID string `json:"supplier_id" validate:"required,uuid"`
}

// StoreSupplierResponse saída de um vínculo loja↔fornecedor.
type StoreSupplierResponse struct {
	ID         string    `json:"id"`
	StoreID    string    `json:"store_id"`
	SupplierID string    `json:"supplier_id"`
	CreatedAt  time.Time `json:"created_at"`
}
