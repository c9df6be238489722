package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para criar um produto.
type CreateProductRequest struct {
	Name        string          `json:"nome" validate:"required,min=1,max=255"`
	Description string          `json:"descricao"`
	SalePrice   decimal.Decimal `json:"preco_venda"`
	Stock       int             `json:"estoque" validate:"min=0"`
	Category    string          `json:"categoria" validate:"max=100"`
}

// UpdateProductRequest entrada para atualizar um produto (campos opcionais).
type UpdateProductRequest struct {
	Name        *string          `json:"nome" validate:"omitempty,min=1,max=255"`
	Description *string          `json:"descricao"`
	SalePrice   *decimal.Decimal `json:"preco_venda"`
	Stock       *int             `json:"estoque" validate:"omitempty,min=0"`
	Category    *string          `json:"categoria" validate:"omitempty,max=100"`
	Active      *bool            `json:"ativo"`
}

// ProductResponse saída de um produto.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"nome"`
	Description string          `json:"descricao"`
	SalePrice   decimal.Decimal `json:"preco_venda"`
	Stock       int             `json:"estoque"`
	Category    string          `json:"categoria"`
	Active      bool            `json:"ativo"`
}
