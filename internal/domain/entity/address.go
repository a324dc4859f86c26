package entity

import "time"

// Address representa um endereço de entrega de um usuário.
type Address struct {
	ID         string
	UserID     string // dono
	Street     string
	Number     string
	Complement string
	District   string
	City       string
	UF         string // código de estado validado contra o conjunto fechado
	ZipCode    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}
