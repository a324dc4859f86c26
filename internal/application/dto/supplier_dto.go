package dto

import "time"

// CreateSupplierRequest entrada para criar um fornecedor.
type CreateSupplierRequest struct {
	CNPJ        string `json:"cnpj" validate:"required,len=14,numeric"`
	LegalName   string `json:"legal_name" validate:"required,min=1,max=200"`
	TradeName   string `json:"trade_name" validate:"omitempty,max=200"`
	Description string `json:"description"`
}

// UpdateSupplierRequest entrada para atualizar um fornecedor (CNPJ é imutável).
type UpdateSupplierRequest struct {
	LegalName   *string `json:"legal_name" validate:"omitempty,min=1,max=200"`
	TradeName   *string `json:"trade_name" validate:"omitempty,max=200"`
	Description *string `json:"description"`
}

// SupplierResponse saída de um fornecedor.
type SupplierResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	CNPJ        string    `json:"cnpj"`
	LegalName   string    `json:"legal_name"`
	TradeName   string    `json:"trade_name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SupplierListResponse lista paginada de fornecedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
