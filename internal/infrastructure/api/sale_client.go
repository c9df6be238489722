package api

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pacoca/pacoca-pos/internal/domain/entity"
)

const vendasPath = "/vendas/"

// vendaWire modelo de leitura de uma venda: o backend devolve cliente e
// produto como objetos aninhados.
type vendaWire struct {
	ID             int64           `json:"id"`
	DataVenda      string          `json:"data_venda"`
	Cliente        clienteWire     `json:"cliente"`
	Produto        produtoWire     `json:"produto"`
	Quantidade     int             `json:"quantidade"`
	ValorUnitario  decimal.Decimal `json:"valor_unitario"`
	ValorTotal     decimal.Decimal `json:"valor_total"`
	FormaPagamento string          `json:"forma_pagamento"`
	Observacoes    string          `json:"observacoes"`
}

// vendaLinhaWire corpo de envio de uma linha do carrinho. preco_unitario e
// total vêm do snapshot do carrinho, calculados no terminal.
type vendaLinhaWire struct {
	Cliente        int64           `json:"cliente"`
	Produto        int64           `json:"produto"`
	Quantidade     int             `json:"quantidade"`
	FormaPagamento string          `json:"forma_pagamento"`
	PrecoUnitario  decimal.Decimal `json:"preco_unitario"`
	Total          decimal.Decimal `json:"total"`
	Observacoes    string          `json:"observacoes,omitempty"`
}

// parseDataVenda aceita o timestamp com ou sem offset de fuso.
func parseDataVenda(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func (w vendaWire) toEntity() *entity.Sale {
	return &entity.Sale{
		ID:            w.ID,
		Date:          parseDataVenda(w.DataVenda),
		Customer:      *w.Cliente.toEntity(),
		Product:       *w.Produto.toEntity(),
		Quantity:      w.Quantidade,
		UnitPrice:     w.ValorUnitario,
		Total:         w.ValorTotal,
		PaymentMethod: w.FormaPagamento,
		Notes:         w.Observacoes,
	}
}

// SaleClient implementa repository.SaleRepository sobre o backend.
type SaleClient struct {
	c *Client
}

// NewSaleClient constrói o cliente de vendas.
func NewSaleClient(c *Client) *SaleClient {
	return &SaleClient{c: c}
}

// List devolve o histórico completo (o backend ordena por -data_venda).
func (sc *SaleClient) List(ctx context.Context) ([]*entity.Sale, error) {
	wires, err := getList[vendaWire](ctx, sc.c, vendasPath)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Sale, 0, len(wires))
	for _, w := range wires {
		out = append(out, w.toEntity())
	}
	return out, nil
}

// CreateBatch envia a lista ordenada de linhas em um único POST. Em caso de
// falha nada é criado (o backend processa a lista em transação) e o erro
// carrega a mensagem do backend quando houver.
func (sc *SaleClient) CreateBatch(ctx context.Context, lines []entity.SaleLineRequest) ([]*entity.Sale, error) {
	body := make([]vendaLinhaWire, 0, len(lines))
	for _, l := range lines {
		body = append(body, vendaLinhaWire{
			Cliente:        l.CustomerID,
			Produto:        l.ProductID,
			Quantidade:     l.Quantity,
			FormaPagamento: l.PaymentMethod,
			PrecoUnitario:  l.UnitPrice,
			Total:          l.Total,
			Observacoes:    l.Notes,
		})
	}

	var created []vendaWire
	if err := sc.c.postJSON(ctx, vendasPath, body, &created); err != nil {
		return nil, err
	}
	out := make([]*entity.Sale, 0, len(created))
	for _, w := range created {
		out = append(out, w.toEntity())
	}
	return out, nil
}
