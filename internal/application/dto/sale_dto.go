package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutRequest entrada para finalizar a venda do carrinho.
type CheckoutRequest struct {
	CustomerID    int64  `json:"cliente_id"`
	PaymentMethod string `json:"forma_pagamento" validate:"required"`
	Notes         string `json:"observacoes"`
}

// CheckoutLineResponse linha registrada na finalização.
type CheckoutLineResponse struct {
	ProductID   int64           `json:"produto_id"`
	ProductName string          `json:"produto"`
	Quantity    int             `json:"quantidade"`
	UnitPrice   decimal.Decimal `json:"preco_unitario"`
	Total       decimal.Decimal `json:"total"`
}

// CheckoutResponse resultado da finalização de uma venda.
type CheckoutResponse struct {
	Reference      string                 `json:"referencia"` // identificador local do cupom
	Date           time.Time              `json:"data"`
	CustomerID     int64                  `json:"cliente_id"`
	CustomerName   string                 `json:"cliente"`
	PaymentMethod  string                 `json:"forma_pagamento"`
	Lines          []CheckoutLineResponse `json:"linhas"`
	Total          decimal.Decimal        `json:"total"`
	TotalFormatted string                 `json:"total_formatado"`
}

// SaleResponse linha do histórico de vendas.
type SaleResponse struct {
	ID            int64           `json:"id"`
	Date          time.Time       `json:"data_venda"`
	CustomerID    int64           `json:"cliente_id"`
	CustomerName  string          `json:"cliente"`
	ProductID     int64           `json:"produto_id"`
	ProductName   string          `json:"produto"`
	Quantity      int             `json:"quantidade"`
	UnitPrice     decimal.Decimal `json:"valor_unitario"`
	Total         decimal.Decimal `json:"valor_total"`
	PaymentMethod string          `json:"forma_pagamento"`
	Status        string          `json:"status"` // hoje | recente | antiga
}

// PaymentShareResponse participação de uma forma de pagamento na receita.
type PaymentShareResponse struct {
	PaymentMethod string          `json:"forma_pagamento"`
	Value         decimal.Decimal `json:"valor"`
	Percent       decimal.Decimal `json:"porcentagem"`
}

// HistorySummaryResponse resumo do histórico filtrado.
type HistorySummaryResponse struct {
	Count           int                    `json:"total_vendas"`
	TotalValue      decimal.Decimal        `json:"valor_total"`
	TotalFormatted  string                 `json:"valor_total_formatado"`
	TodayCount      int                    `json:"vendas_hoje"`
	ByPaymentMethod []PaymentShareResponse `json:"por_forma_pagamento"`
}

// HistoryResponse histórico de vendas com o resumo calculado.
type HistoryResponse struct {
	Sales   []SaleResponse         `json:"vendas"`
	Summary HistorySummaryResponse `json:"resumo"`
}
