package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCampaignRequest entrada para criar uma campanha promocional.
// MinValue/MinQuantity nulos significam "sem piso".
type CreateCampaignRequest struct {
	SupplierID      string           `json:"supplier_id" validate:"required,uuid"`
	Name            string           `json:"name" validate:"required,min=1,max=200"`
	Description     string           `json:"description"`
	MinValue        *decimal.Decimal `json:"min_value"`
	MinQuantity     *int             `json:"min_quantity" validate:"omitempty,min=1"`
	DiscountPercent decimal.Decimal  `json:"discount_percent"`
}

// UpdateCampaignRequest entrada para atualizar uma campanha.
type UpdateCampaignRequest struct {
	Name            *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description     *string          `json:"description"`
	MinValue        *decimal.Decimal `json:"min_value"`
	MinQuantity     *int             `json:"min_quantity" validate:"omitempty,min=1"`
	DiscountPercent *decimal.Decimal `json:"discount_percent"`
}

// UpdateCampaignStatusRequest mutação administrativa de status.
type UpdateCampaignStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive expired"`
}

// CampaignResponse saída de uma campanha.
type CampaignResponse struct {
	ID              string           `json:"id"`
	SupplierID      string           `json:"supplier_id"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	MinValue        *decimal.Decimal `json:"min_value,omitempty"`
	MinQuantity     *int             `json:"min_quantity,omitempty"`
	DiscountPercent decimal.Decimal  `json:"discount_percent"`
	Status          string           `json:"status"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}
