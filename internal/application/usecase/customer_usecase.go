package usecase

import (
	"context"
	"time"

	"github.com/pacoca/pacoca-pos/internal/application/dto"
	"github.com/pacoca/pacoca-pos/internal/domain/entity"
	"github.com/pacoca/pacoca-pos/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase constrói o caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// List lista os clientes cadastrados.
func (uc *CustomerUseCase) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Create cadastra um cliente; o backend preenche a data de cadastro.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	created, err := uc.repo.Create(ctx, &entity.Customer{
		Name:    in.Name,
		Phone:   in.Phone,
		Email:   in.Email,
		Address: in.Address,
	})
	if err != nil {
		return nil, err
	}
	resp := toCustomerResponse(created)
	return &resp, nil
}

// Update aplica só os campos presentes.
func (uc *CustomerUseCase) Update(ctx context.Context, id int64, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Phone != nil {
		c.Phone = *in.Phone
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.Address != nil {
		c.Address = *in.Address
	}
	updated, err := uc.repo.Update(ctx, c)
	if err != nil {
		return nil, err
	}
	resp := toCustomerResponse(updated)
	return &resp, nil
}

// Delete remove o cliente.
func (uc *CustomerUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	registered := ""
	if !c.RegisteredAt.IsZero() {
		registered = c.RegisteredAt.Format(time.DateOnly)
	}
	return dto.CustomerResponse{
		ID:           c.ID,
		Name:         c.Name,
		Phone:        c.Phone,
		Email:        c.Email,
		Address:      c.Address,
		RegisteredAt: registered,
	}
}
