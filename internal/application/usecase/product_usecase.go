package usecase

import (
	"context"

	"github.com/pacoca/pacoca-pos/internal/application/dto"
	"github.com/pacoca/pacoca-pos/internal/domain/entity"
	"github.com/pacoca/pacoca-pos/internal/domain/repository"
)

// Categoria padrão do catálogo; o mesmo default que o backend aplica.
const defaultCategory = "Paçoca"

// ProductUseCase casos de uso CRUD para produtos. Estoque e preço são do
// backend; o terminal nunca os ajusta por conta própria.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List lista o catálogo ativo.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// GetByID busca um produto.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(p)
	return &resp, nil
}

// Create cria um produto novo, ativo por padrão.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Category == "" {
		in.Category = defaultCategory
	}
	created, err := uc.repo.Create(ctx, &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		SalePrice:   in.SalePrice,
		Stock:       in.Stock,
		Category:    in.Category,
		Active:      true,
	})
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(created)
	return &resp, nil
}

// Update aplica só os campos presentes.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.SalePrice != nil {
		p.SalePrice = *in.SalePrice
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Active != nil {
		p.Active = *in.Active
	}
	updated, err := uc.repo.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(updated)
	return &resp, nil
}

// Delete remove o produto.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		SalePrice:   p.SalePrice,
		Stock:       p.Stock,
		Category:    p.Category,
		Active:      p.Active,
	}
}
