package api

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pacoca/pacoca-pos/internal/domain/entity"
)

const produtosPath = "/produtos/"

// produtoWire espelha o serializer de produto do backend. O backend envia
// decimais como string ("5.00"); decimal.Decimal aceita as duas formas.
type produtoWire struct {
	ID         int64           `json:"id"`
	Nome       string          `json:"nome"`
	Descricao  string          `json:"descricao"`
	PrecoVenda decimal.Decimal `json:"preco_venda"`
	Estoque    int             `json:"estoque"`
	Categoria  string          `json:"categoria"`
	Ativo      bool            `json:"ativo"`
}

// produtoPayload corpo de criação/atualização (sem id).
type produtoPayload struct {
	Nome       string          `json:"nome"`
	Descricao  string          `json:"descricao"`
	PrecoVenda decimal.Decimal `json:"preco_venda"`
	Estoque    int             `json:"estoque"`
	Categoria  string          `json:"categoria"`
	Ativo      bool            `json:"ativo"`
}

func (w produtoWire) toEntity() *entity.Product {
	return &entity.Product{
		ID:          w.ID,
		Name:        w.Nome,
		Description: w.Descricao,
		SalePrice:   w.PrecoVenda,
		Stock:       w.Estoque,
		Category:    w.Categoria,
		Active:      w.Ativo,
	}
}

func produtoBody(p *entity.Product) produtoPayload {
	return produtoPayload{
		Nome:       p.Name,
		Descricao:  p.Description,
		PrecoVenda: p.SalePrice,
		Estoque:    p.Stock,
		Categoria:  p.Category,
		Ativo:      p.Active,
	}
}

// ProductClient implementa repository.ProductRepository sobre o backend.
type ProductClient struct {
	c *Client
}

// NewProductClient constrói o cliente de produtos.
func NewProductClient(c *Client) *ProductClient {
	return &ProductClient{c: c}
}

// List busca o catálogo. O backend já filtra produtos inativos.
func (pc *ProductClient) List(ctx context.Context) ([]*entity.Product, error) {
	wires, err := getList[produtoWire](ctx, pc.c, produtosPath)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Product, 0, len(wires))
	for _, w := range wires {
		out = append(out, w.toEntity())
	}
	return out, nil
}

// GetByID busca um produto; 404 vira domain.ErrNotFound.
func (pc *ProductClient) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	var w produtoWire
	if err := pc.c.getJSON(ctx, fmt.Sprintf("%s%d/", produtosPath, id), &w); err != nil {
		return nil, notFoundOr(err)
	}
	return w.toEntity(), nil
}

// Create registra um novo produto.
func (pc *ProductClient) Create(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	var w produtoWire
	if err := pc.c.postJSON(ctx, produtosPath, produtoBody(p), &w); err != nil {
		return nil, err
	}
	return w.toEntity(), nil
}

// Update substitui os dados do produto.
func (pc *ProductClient) Update(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	var w produtoWire
	if err := pc.c.putJSON(ctx, fmt.Sprintf("%s%d/", produtosPath, p.ID), produtoBody(p), &w); err != nil {
		return nil, notFoundOr(err)
	}
	return w.toEntity(), nil
}

// Delete remove o produto.
func (pc *ProductClient) Delete(ctx context.Context, id int64) error {
	if err := pc.c.delete(ctx, fmt.Sprintf("%s%d/", produtosPath, id)); err != nil {
		return notFoundOr(err)
	}
	return nil
}
