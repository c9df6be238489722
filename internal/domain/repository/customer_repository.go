package repository

import (
	"context"

	"github.com/pacoca/pacoca-pos/internal/domain/entity"
)

// CustomerRepository define o porto de acesso a clientes.
type CustomerRepository interface {
	List(ctx context.Context) ([]*entity.Customer, error)
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	Create(ctx context.Context, c *entity.Customer) (*entity.Customer, error)
	Update(ctx context.Context, c *entity.Customer) (*entity.Customer, error)
	Delete(ctx context.Context, id int64) error
}
