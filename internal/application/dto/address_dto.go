package dto

import "time"

// CreateAddressRequest entrada para criar um endereço.
type CreateAddressRequest struct {
	Street     string `json:"street" validate:"required,min=1,max=200"`
	Number     string `json:"number" validate:"required,max=20"`
	Complement string `json:"complement" validate:"omitempty,max=100"`
	District   string `json:"district" validate:"omitempty,max=100"`
	City       string `json:"city" validate:"required,min=1,max=100"`
	UF         string `json:"uf" validate:"required,len=2"`
	ZipCode    string `json:"zip_code" validate:"required,max=9"`
}

// UpdateAddressRequest entrada para atualizar um endereço.
type UpdateAddressRequest struct {
	Street     *string `json:"street" validate:"omitempty,min=1,max=200"`
	Number     *string `json:"number" validate:"omitempty,max=20"`
	Complement *string `json:"complement" validate:"omitempty,max=100"`
	District   *string `json:"district" validate:"omitempty,max=100"`
	City       *string `json:"city" validate:"omitempty,min=1,max=100"`
	UF         *string `json:"uf" validate:"omitempty,len=2"`
	ZipCode    *string `json:"zip_code" validate:"omitempty,max=9"`
}

// AddressResponse saída de um endereço.
type AddressResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Street     string    `json:"street"`
	Number     string    `json:"number"`
	Complement string    `json:"complement,omitempty"`
	District   string    `json:"district,omitempty"`
	City       string    `json:"city"`
	UF         string    `json:"uf"`
	ZipCode    string    `json:"zip_code"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
