package repository

import (
	"context"

	"github.com/pacoca/pacoca-pos/internal/domain/entity"
)

// ProductRepository define o porto de acesso a produtos (DIP).
// A implementação concreta é o cliente REST do backend da loja.
type ProductRepository interface {
	List(ctx context.Context) ([]*entity.Product, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	Create(ctx context.Context, p *entity.Product) (*entity.Product, error)
	Update(ctx context.Context, p *entity.Product) (*entity.Product, error)
	Delete(ctx context.Context, id int64) error
}
