package cart_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pacoca/pacoca-pos/internal/domain"
	"github.com/pacoca/pacoca-pos/internal/domain/cart"
	"github.com/pacoca/pacoca-pos/internal/domain/entity"
)

func produto(id int64, nome string, preco string) *entity.Product {
	p, _ := decimal.NewFromString(preco)
	return &entity.Product{ID: id, Name: nome, SalePrice: p, Stock: 100, Active: true}
}

func TestAddItem_AcumulaSubtotais(t *testing.T) {
	c := cart.New()

	require.NoError(t, c.AddItem(produto(1, "Paçoca rolha", "5.00"), 3))
	assert.Equal(t, "15", c.Total().String())

	require.NoError(t, c.AddItem(produto(2, "Pé de moleque", "2.50"), 2))
	assert.Equal(t, "20", c.Total().String())
	assert.Equal(t, 2, c.Len())

	itens := c.Items()
	require.Len(t, itens, 2)
	assert.Equal(t, "15", itens[0].Subtotal.String())
	assert.Equal(t, "5", itens[1].Subtotal.String())
}

func TestAddItem_ProdutoRepetidoRejeitado(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.AddItem(produto(1, "Paçoca rolha", "5.00"), 1))

	err := c.AddItem(produto(1, "Paçoca rolha", "5.00"), 4)
	assert.ErrorIs(t, err, domain.ErrProdutoJaNoCarrinho)

	// Nada mudou: mesma linha, mesmo total
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, "5", c.Total().String())
}

func TestAddItem_QuantidadeInvalida(t *testing.T) {
	c := cart.New()
	assert.ErrorIs(t, c.AddItem(produto(1, "Paçoca", "5.00"), 0), domain.ErrQuantidadeInvalida)
	assert.ErrorIs(t, c.AddItem(produto(1, "Paçoca", "5.00"), -2), domain.ErrQuantidadeInvalida)
	assert.Equal(t, 0, c.Len())
}

func TestRemoveItem_AusenteNaoEhErro(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.AddItem(produto(1, "Paçoca", "5.00"), 1))

	c.RemoveItem(99) // não existe
	assert.Equal(t, 1, c.Len())

	c.RemoveItem(1)
	assert.Equal(t, 0, c.Len())
	assert.True(t, c.Total().IsZero())
}

func TestClear_TotalVoltaAZero(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.AddItem(produto(1, "Paçoca", "5.00"), 3))
	require.NoError(t, c.AddItem(produto(2, "Doce de leite", "12.90"), 1))

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.True(t, c.Total().IsZero())

	// Clear em carrinho vazio também é válido
	c.Clear()
	assert.True(t, c.Total().IsZero())
}

func TestAddItem_SnapshotDePreco(t *testing.T) {
	c := cart.New()
	p := produto(1, "Paçoca", "5.00")
	require.NoError(t, c.AddItem(p, 2))

	// Mudança de preço depois do add não afeta a linha
	p.SalePrice = decimal.NewFromInt(99)
	itens := c.Items()
	assert.Equal(t, "5", itens[0].UnitPrice.String())
	assert.Equal(t, "10", c.Total().String())
}
