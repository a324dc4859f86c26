package entity

import "time"

// Supplier representa um fornecedor (vende produtos para lojas).
// CNPJ é único entre fornecedores ativos; a unicidade final fica no índice parcial do banco.
type Supplier struct {
	ID          string
	UserID      string // dono
	CNPJ        string // 14 dígitos numéricos
	LegalName   string // razão social
	TradeName   string // nome fantasia
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}
