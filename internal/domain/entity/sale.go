package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Formas de pagamento aceitas no balcão.
const (
	PaymentDinheiro      = "Dinheiro"
	PaymentCartaoDebito  = "Cartão Débito"
	PaymentCartaoCredito = "Cartão Crédito"
	PaymentPix           = "PIX"
)

// ValidPaymentMethod informa se a forma de pagamento pertence ao conjunto fixo.
func ValidPaymentMethod(s string) bool {
	switch s {
	case PaymentDinheiro, PaymentCartaoDebito, PaymentCartaoCredito, PaymentPix:
		return true
	}
	return false
}

// Sale é o modelo de leitura de uma venda já registrada no backend
// (uma linha de venda; o backend grava uma venda por item do carrinho).
type Sale struct {
	ID            int64
	Date          time.Time
	Customer      Customer
	Product       Product
	Quantity      int
	UnitPrice     decimal.Decimal // valor_unitario
	Total         decimal.Decimal // valor_total
	PaymentMethod string          // forma_pagamento
	Notes         string          // observacoes
}

// SaleLineRequest é a representação de envio de uma linha do carrinho.
// Os valores vêm do snapshot da linha, nunca do preço atual do servidor.
type SaleLineRequest struct {
	CustomerID    int64
	ProductID     int64
	Quantity      int
	PaymentMethod string
	UnitPrice     decimal.Decimal
	Total         decimal.Decimal
	Notes         string
}
