package checkout

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pacoca/pacoca-pos/internal/domain/cart"
)

// Receipt dados do cupom de uma venda finalizada, prontos para renderização.
type Receipt struct {
	Reference     string // identificador local gerado na finalização
	Date          time.Time
	StoreName     string
	Footer        string
	CustomerName  string
	PaymentMethod string
	Lines         []cart.Line
	Total         decimal.Decimal
}

// ReceiptPDFGenerator porto de saída para a renderização do cupom em PDF.
// A implementação concreta usa Maroto; para testes se injeta um mock.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, r *Receipt) ([]byte, error)
}
