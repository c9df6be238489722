// Package cart mantém o rascunho de venda do terminal: as linhas adicionadas
// no balcão antes da finalização. Estado puramente em memória, sem I/O.
package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/pacoca/pacoca-pos/internal/domain"
	"github.com/pacoca/pacoca-pos/internal/domain/entity"
)

// Line é uma linha do carrinho: snapshot do produto no momento do "adicionar".
// Uma alteração de preço no backend depois do add não afeta a linha.
type Line struct {
	ProductID   int64
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
	Subtotal    decimal.Decimal // UnitPrice × Quantity, calculado no add
}

// Cart é o carrinho ativo do terminal. Um único carrinho por processo,
// injetado em quem precisar (sem singleton). O mutex serializa as mutações
// porque os handlers HTTP rodam concorrentes.
type Cart struct {
	mu    sync.Mutex
	lines []Line
}

// New cria um carrinho vazio.
func New() *Cart {
	return &Cart{}
}

// AddItem acrescenta uma linha para o produto. Rejeita quantidade não
// positiva e produto repetido (não soma quantidades — comportamento do
// balcão: a linha existente precisa ser removida primeiro).
// A checagem de estoque é responsabilidade do chamador.
func (c *Cart) AddItem(p *entity.Product, quantity int) error {
	if quantity <= 0 {
		return domain.ErrQuantidadeInvalida
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, l := range c.lines {
		if l.ProductID == p.ID {
			return domain.ErrProdutoJaNoCarrinho
		}
	}

	qty := decimal.NewFromInt(int64(quantity))
	c.lines = append(c.lines, Line{
		ProductID:   p.ID,
		ProductName: p.Name,
		UnitPrice:   p.SalePrice,
		Quantity:    quantity,
		Subtotal:    p.SalePrice.Mul(qty),
	})
	return nil
}

// RemoveItem remove a linha do produto. Ausência não é erro.
func (c *Cart) RemoveItem(productID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, l := range c.lines {
		if l.ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear esvazia o carrinho incondicionalmente.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Total soma os subtotais na ordem de inserção. Sempre recalculado,
// nunca cacheado entre mutações.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal)
	}
	return total
}

// Items devolve uma cópia das linhas na ordem de inserção.
func (c *Cart) Items() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len devolve o número de linhas.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}
