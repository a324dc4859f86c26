package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status válidos para Campaign.
const (
	CampaignStatusActive   = "active"
	CampaignStatusInactive = "inactive"
	CampaignStatusExpired  = "expired"
)

// Campaign representa uma campanha promocional de um fornecedor.
// MinValue/MinQuantity nulos significam "sem piso". Nome único entre campanhas ativas.
type Campaign struct {
	ID              string
	SupplierID      string
	Name            string
	Description     string
	MinValue        *decimal.Decimal // valor mínimo qualificador, >= 0
	MinQuantity     *int             // quantidade mínima qualificadora, >= 1
	DiscountPercent decimal.Decimal  // [0,100]
	Status          string           // active, inactive, expired
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time
}

// IsActive indica se a campanha pode conceder desconto (status ativo e não removida).
func (c *Campaign) IsActive() bool {
	return c != nil && c.Status == CampaignStatusActive && c.DeletedAt == nil
}

// Eligible verifica se um par (valor, quantidade) candidato atinge os pisos da campanha.
func (c *Campaign) Eligible(candidateValue decimal.Decimal, candidateQuantity int) bool {
	if !c.IsActive() {
		return false
	}
	if c.MinValue != nil && candidateValue.LessThan(*c.MinValue) {
		return false
	}
	if c.MinQuantity != nil && candidateQuantity < *c.MinQuantity {
		return false
	}
	return true
}
