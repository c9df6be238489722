package entity

import "time"

// Customer representa um cliente da loja. Apenas Name é obrigatório.
type Customer struct {
	ID           int64
	Name         string
	Phone        string
	Email        string
	Address      string
	RegisteredAt time.Time // data_cadastro (somente data)
}
