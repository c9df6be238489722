package checkout

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/pacoca/pacoca-pos/internal/application/dto"
	"github.com/pacoca/pacoca-pos/internal/domain"
	"github.com/pacoca/pacoca-pos/internal/domain/cart"
	"github.com/pacoca/pacoca-pos/internal/domain/entity"
	"github.com/pacoca/pacoca-pos/internal/domain/repository"
	"github.com/pacoca/pacoca-pos/pkg/logger"
	"github.com/pacoca/pacoca-pos/pkg/money"
)

// ReceiptInfo dados fixos da loja impressos no cupom.
type ReceiptInfo struct {
	StoreName string
	Footer    string
}

// FinalizeSaleUseCase valida e submete o carrinho como uma venda concluída.
//
// Toda a validação acontece antes de qualquer chamada de rede. O envio é um
// único POST em lote com todas as linhas; o backend garante tudo-ou-nada.
// Em caso de falha o carrinho permanece intacto para nova tentativa.
type FinalizeSaleUseCase struct {
	cart      *cart.Cart
	sales     repository.SaleRepository
	customers repository.CustomerRepository
	receipt   ReceiptInfo
	pdf       ReceiptPDFGenerator
	log       *logger.Logger

	inFlight atomic.Bool
}

// NewFinalizeSaleUseCase constrói o caso de uso.
func NewFinalizeSaleUseCase(
	c *cart.Cart,
	sales repository.SaleRepository,
	customers repository.CustomerRepository,
	receipt ReceiptInfo,
	pdf ReceiptPDFGenerator,
	log *logger.Logger,
) *FinalizeSaleUseCase {
	return &FinalizeSaleUseCase{
		cart:      c,
		sales:     sales,
		customers: customers,
		receipt:   receipt,
		pdf:       pdf,
		log:       log,
	}
}

// Finalize submete o carrinho. Pré-condições, na ordem e cada uma com sua
// razão distinta: cliente selecionado, carrinho não vazio, forma de
// pagamento válida. Uma segunda finalização concorrente é rejeitada de
// imediato, nunca disparada em paralelo.
//
// No sucesso o carrinho é esvaziado. O estoque não é decrementado aqui:
// quem exibe estoque relê os produtos do backend.
func (uc *FinalizeSaleUseCase) Finalize(ctx context.Context, in dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if !uc.inFlight.CompareAndSwap(false, true) {
		return nil, domain.ErrVendaEmAndamento
	}
	defer uc.inFlight.Store(false)

	if in.CustomerID <= 0 {
		return nil, domain.ErrClienteNaoSelecionado
	}

	items := uc.cart.Items()
	if len(items) == 0 {
		return nil, domain.ErrCarrinhoVazio
	}

	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrFormaPagamentoInvalida
	}

	lines := make([]entity.SaleLineRequest, 0, len(items))
	for _, item := range items {
		lines = append(lines, entity.SaleLineRequest{
			CustomerID:    in.CustomerID,
			ProductID:     item.ProductID,
			Quantity:      item.Quantity,
			PaymentMethod: in.PaymentMethod,
			UnitPrice:     item.UnitPrice,
			Total:         item.Subtotal,
			Notes:         in.Notes,
		})
	}

	if _, err := uc.sales.CreateBatch(ctx, lines); err != nil {
		// Carrinho intacto; o operador decide se tenta de novo.
		uc.log.Warn().Err(err).Int("linhas", len(lines)).Msg("finalização de venda falhou")
		return nil, err
	}

	total := uc.cart.Total()
	uc.cart.Clear()

	out := &dto.CheckoutResponse{
		Reference:      uuid.New().String(),
		Date:           time.Now(),
		CustomerID:     in.CustomerID,
		PaymentMethod:  in.PaymentMethod,
		Total:          total,
		TotalFormatted: money.FormatBRL(total),
	}
	for _, item := range items {
		out.Lines = append(out.Lines, dto.CheckoutLineResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Subtotal,
		})
	}

	// Nome do cliente só para o cupom; falha aqui não desfaz a venda.
	if customer, err := uc.customers.GetByID(ctx, in.CustomerID); err == nil {
		out.CustomerName = customer.Name
	}

	uc.log.Info().
		Str("referencia", out.Reference).
		Int64("cliente", in.CustomerID).
		Str("forma_pagamento", in.PaymentMethod).
		Int("linhas", len(items)).
		Str("total", total.String()).
		Msg("venda finalizada")

	return out, nil
}

// ReceiptPDF renderiza o cupom de uma finalização já concluída.
func (uc *FinalizeSaleUseCase) ReceiptPDF(ctx context.Context, res *dto.CheckoutResponse) ([]byte, error) {
	lines := make([]cart.Line, 0, len(res.Lines))
	for _, l := range res.Lines {
		lines = append(lines, cart.Line{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			UnitPrice:   l.UnitPrice,
			Quantity:    l.Quantity,
			Subtotal:    l.Total,
		})
	}
	return uc.pdf.GenerateReceiptPDF(ctx, &Receipt{
		Reference:     res.Reference,
		Date:          res.Date,
		StoreName:     uc.receipt.StoreName,
		Footer:        uc.receipt.Footer,
		CustomerName:  res.CustomerName,
		PaymentMethod: res.PaymentMethod,
		Lines:         lines,
		Total:         res.Total,
	})
}
