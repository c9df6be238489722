// Package checkout orquestra o fluxo de venda do balcão: montagem do
// carrinho com checagem de estoque, finalização em lote contra o backend e
// emissão do cupom.
package checkout

import (
	"context"
	"fmt"

	"github.com/pacoca/pacoca-pos/internal/application/dto"
	"github.com/pacoca/pacoca-pos/internal/domain"
	"github.com/pacoca/pacoca-pos/internal/domain/cart"
	"github.com/pacoca/pacoca-pos/internal/domain/repository"
	"github.com/pacoca/pacoca-pos/pkg/money"
)

// CartUseCase operações sobre o carrinho ativo do terminal. O carrinho é
// injetado e compartilhado com o fluxo de finalização.
type CartUseCase struct {
	cart     *cart.Cart
	products repository.ProductRepository
}

// NewCartUseCase constrói o caso de uso.
func NewCartUseCase(c *cart.Cart, products repository.ProductRepository) *CartUseCase {
	return &CartUseCase{cart: c, products: products}
}

// AddItem valida e adiciona um produto ao carrinho.
//
// A checagem de estoque usa o valor mais recente do backend e é consultiva:
// o backend revalida na finalização. Quantidade acima do estoque conhecido é
// rejeitada aqui mesmo, antes de tocar o carrinho.
func (uc *CartUseCase) AddItem(ctx context.Context, in dto.AddItemRequest) (*dto.CartResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrQuantidadeInvalida
	}

	product, err := uc.products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.Active {
		return nil, domain.ErrNotFound
	}
	if in.Quantity > product.Stock {
		return nil, fmt.Errorf("%w: disponível %d", domain.ErrEstoqueInsuficiente, product.Stock)
	}

	if err := uc.cart.AddItem(product, in.Quantity); err != nil {
		return nil, err
	}
	return uc.Get(), nil
}

// RemoveItem tira o produto do carrinho; ausência não é erro.
func (uc *CartUseCase) RemoveItem(productID int64) *dto.CartResponse {
	uc.cart.RemoveItem(productID)
	return uc.Get()
}

// Clear esvazia o carrinho.
func (uc *CartUseCase) Clear() *dto.CartResponse {
	uc.cart.Clear()
	return uc.Get()
}

// Get devolve o estado atual do carrinho.
func (uc *CartUseCase) Get() *dto.CartResponse {
	items := uc.cart.Items()
	lines := make([]dto.CartLineResponse, 0, len(items))
	for _, l := range items {
		lines = append(lines, dto.CartLineResponse{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			UnitPrice:   l.UnitPrice,
			Quantity:    l.Quantity,
			Subtotal:    l.Subtotal,
		})
	}
	total := uc.cart.Total()
	return &dto.CartResponse{
		Items:          lines,
		Total:          total,
		TotalFormatted: money.FormatBRL(total),
	}
}
