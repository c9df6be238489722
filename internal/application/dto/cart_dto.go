package dto

import "github.com/shopspring/decimal"

// AddItemRequest entrada para adicionar um produto ao carrinho.
type AddItemRequest struct {
	ProductID int64 `json:"produto_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantidade" validate:"required,gt=0"`
}

// CartLineResponse uma linha do carrinho com o snapshot de preço.
type CartLineResponse struct {
	ProductID   int64           `json:"produto_id"`
	ProductName string          `json:"produto"`
	UnitPrice   decimal.Decimal `json:"preco_unitario"`
	Quantity    int             `json:"quantidade"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// CartResponse estado atual do carrinho do terminal.
type CartResponse struct {
	Items          []CartLineResponse `json:"itens"`
	Total          decimal.Decimal    `json:"total"`
	TotalFormatted string             `json:"total_formatado"`
}

// ReferenceDataResponse dados de referência da tela de venda: clientes e
// produtos carregados juntos, como a tela sempre fez.
type ReferenceDataResponse struct {
	Customers []CustomerResponse `json:"clientes"`
	Products  []ProductResponse  `json:"produtos"`
}
