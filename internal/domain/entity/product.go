package entity

import "github.com/shopspring/decimal"

// Product representa um produto do catálogo da loja.
// Stock é o último valor conhecido do backend; o terminal nunca o decrementa
// localmente — o backend é a fonte autoritativa.
type Product struct {
	ID          int64
	Name        string
	Description string
	SalePrice   decimal.Decimal // preco_venda
	Stock       int             // estoque
	Category    string
	Active      bool
}
