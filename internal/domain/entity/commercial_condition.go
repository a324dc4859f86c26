package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommercialCondition representa as condições comerciais de um fornecedor para uma UF.
// No máximo uma condição ativa por par (fornecedor, UF); a ausência de condição é
// válida e significa "usar os padrões".
type CommercialCondition struct {
	ID              string
	SupplierID      string
	UF              string          // código de estado do conjunto fechado
	CashbackPercent decimal.Decimal // [0,100]
	ExtraTermDays   int             // dias adicionais de prazo, >= 0
	PriceVariance   decimal.Decimal // variação de preço unitário, pode ser negativa
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time
}
