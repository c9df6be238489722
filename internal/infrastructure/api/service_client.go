package api

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pacoca/pacoca-pos/internal/domain/entity"
)

const (
	servicosPath     = "/servicos/"
	estatisticasPath = "/servicos/estatisticas/"
)

type servicoWire struct {
	ID      int64           `json:"id"`
	Servico string          `json:"servico"`
	Valor   decimal.Decimal `json:"valor"`
}

type servicoPayload struct {
	Servico string          `json:"servico"`
	Valor   decimal.Decimal `json:"valor"`
}

// estatisticasWire envelope do endpoint opcional de estatísticas.
type estatisticasWire struct {
	Dados []struct {
		ID          int64           `json:"id"`
		Servico     string          `json:"servico"`
		Valor       decimal.Decimal `json:"valor"`
		Porcentagem decimal.Decimal `json:"porcentagem"`
	} `json:"dados"`
	TotalServicos int             `json:"total_servicos"`
	ValorTotal    decimal.Decimal `json:"valor_total"`
}

func (w servicoWire) toEntity() *entity.Service {
	return &entity.Service{ID: w.ID, Name: w.Servico, Price: w.Valor}
}

// ServiceClient implementa repository.ServiceRepository sobre o backend.
type ServiceClient struct {
	c *Client
}

// NewServiceClient constrói o cliente de serviços.
func NewServiceClient(c *Client) *ServiceClient {
	return &ServiceClient{c: c}
}

func (sc *ServiceClient) List(ctx context.Context) ([]*entity.Service, error) {
	wires, err := getList[servicoWire](ctx, sc.c, servicosPath)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Service, 0, len(wires))
	for _, w := range wires {
		out = append(out, w.toEntity())
	}
	return out, nil
}

func (sc *ServiceClient) Create(ctx context.Context, in *entity.Service) (*entity.Service, error) {
	var w servicoWire
	if err := sc.c.postJSON(ctx, servicosPath, servicoPayload{Servico: in.Name, Valor: in.Price}, &w); err != nil {
		return nil, err
	}
	return w.toEntity(), nil
}

func (sc *ServiceClient) Update(ctx context.Context, in *entity.Service) (*entity.Service, error) {
	var w servicoWire
	path := fmt.Sprintf("%s%d/", servicosPath, in.ID)
	if err := sc.c.putJSON(ctx, path, servicoPayload{Servico: in.Name, Valor: in.Price}, &w); err != nil {
		return nil, notFoundOr(err)
	}
	return w.toEntity(), nil
}

func (sc *ServiceClient) Delete(ctx context.Context, id int64) error {
	if err := sc.c.delete(ctx, fmt.Sprintf("%s%d/", servicosPath, id)); err != nil {
		return notFoundOr(err)
	}
	return nil
}

// Statistics consulta o endpoint opcional. Se o backend não o expõe, o erro
// (404 ou outro) sobe para o caso de uso degradar para estatísticas vazias.
func (sc *ServiceClient) Statistics(ctx context.Context) (*entity.ServiceStatistics, error) {
	var w estatisticasWire
	if err := sc.c.getJSON(ctx, estatisticasPath, &w); err != nil {
		return nil, err
	}

	items := make([]entity.ServiceShare, 0, len(w.Dados))
	for _, d := range w.Dados {
		items = append(items, entity.ServiceShare{
			ID:      d.ID,
			Name:    d.Servico,
			Value:   d.Valor,
			Percent: d.Porcentagem,
		})
	}
	return &entity.ServiceStatistics{
		Items: items,
		Count: w.TotalServicos,
		Total: w.ValorTotal,
	}, nil
}
