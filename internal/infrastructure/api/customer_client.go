package api

import (
	"context"
	"fmt"
	"time"

	"github.com/pacoca/pacoca-pos/internal/domain/entity"
)

const clientesPath = "/clientes/"

// clienteWire espelha o serializer de cliente. data_cadastro é somente data
// ("2024-05-01"), fora do formato RFC3339 do time.Time.
type clienteWire struct {
	ID           int64  `json:"id"`
	Nome         string `json:"nome"`
	Telefone     string `json:"telefone"`
	Email        string `json:"email"`
	Endereco     string `json:"endereco"`
	DataCadastro string `json:"data_cadastro"`
}

type clientePayload struct {
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
	Email    string `json:"email"`
	Endereco string `json:"endereco"`
}

func (w clienteWire) toEntity() *entity.Customer {
	registered, _ := time.Parse("2006-01-02", w.DataCadastro)
	return &entity.Customer{
		ID:           w.ID,
		Name:         w.Nome,
		Phone:        w.Telefone,
		Email:        w.Email,
		Address:      w.Endereco,
		RegisteredAt: registered,
	}
}

// CustomerClient implementa repository.CustomerRepository sobre o backend.
type CustomerClient struct {
	c *Client
}

// NewCustomerClient constrói o cliente de clientes.
func NewCustomerClient(c *Client) *CustomerClient {
	return &CustomerClient{c: c}
}

func (cc *CustomerClient) List(ctx context.Context) ([]*entity.Customer, error) {
	wires, err := getList[clienteWire](ctx, cc.c, clientesPath)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Customer, 0, len(wires))
	for _, w := range wires {
		out = append(out, w.toEntity())
	}
	return out, nil
}

func (cc *CustomerClient) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	var w clienteWire
	if err := cc.c.getJSON(ctx, fmt.Sprintf("%s%d/", clientesPath, id), &w); err != nil {
		return nil, notFoundOr(err)
	}
	return w.toEntity(), nil
}

func (cc *CustomerClient) Create(ctx context.Context, in *entity.Customer) (*entity.Customer, error) {
	body := clientePayload{Nome: in.Name, Telefone: in.Phone, Email: in.Email, Endereco: in.Address}
	var w clienteWire
	if err := cc.c.postJSON(ctx, clientesPath, body, &w); err != nil {
		return nil, err
	}
	return w.toEntity(), nil
}

func (cc *CustomerClient) Update(ctx context.Context, in *entity.Customer) (*entity.Customer, error) {
	body := clientePayload{Nome: in.Name, Telefone: in.Phone, Email: in.Email, Endereco: in.Address}
	var w clienteWire
	if err := cc.c.putJSON(ctx, fmt.Sprintf("%s%d/", clientesPath, in.ID), body, &w); err != nil {
		return nil, notFoundOr(err)
	}
	return w.toEntity(), nil
}

func (cc *CustomerClient) Delete(ctx context.Context, id int64) error {
	if err := cc.c.delete(ctx, fmt.Sprintf("%s%d/", clientesPath, id)); err != nil {
		return notFoundOr(err)
	}
	return nil
}
