package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateConditionRequest entrada para criar uma condição comercial.
type CreateConditionRequest struct {
	SupplierID      string          `json:"supplier_id" validate:"required,uuid"`
	UF              string          `json:"uf" validate:"required,len=2"`
	CashbackPercent decimal.Decimal `json:"cashback_percent"`
	ExtraTermDays   int             `json:"extra_term_days" validate:"min=0"`
	PriceVariance   decimal.Decimal `json:"price_variance"`
}

// UpdateConditionRequest entrada para atualizar uma condição (UF é imutável).
type UpdateConditionRequest struct {
	CashbackPercent *decimal.Decimal `json:"cashback_percent"`
	ExtraTermDays   *int             `json:"extra_term_days" validate:"omitempty,min=0"`
	PriceVariance   *decimal.Decimal `json:"price_variance"`
}

// ConditionResponse saída de uma condição comercial.
type ConditionResponse struct {
	ID              string          `json:"id"`
	SupplierID      string          `json:"supplier_id"`
	UF              string          `json:"uf"`
	CashbackPercent decimal.Decimal `json:"cashback_percent"`
	ExtraTermDays   int             `json:"extra_term_days"`
	PriceVariance   decimal.Decimal `json:"price_variance"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
