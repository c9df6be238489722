package checkout

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pacoca/pacoca-pos/internal/application/dto"
	"github.com/pacoca/pacoca-pos/internal/domain/entity"
	"github.com/pacoca/pacoca-pos/internal/domain/repository"
)

// ReferenceDataUseCase carrega os dados de referência da tela de venda:
// clientes e produtos, buscados em paralelo no backend.
type ReferenceDataUseCase struct {
	products  repository.ProductRepository
	customers repository.CustomerRepository
}

// NewReferenceDataUseCase constrói o caso de uso.
func NewReferenceDataUseCase(products repository.ProductRepository, customers repository.CustomerRepository) *ReferenceDataUseCase {
	return &ReferenceDataUseCase{products: products, customers: customers}
}

// Load busca clientes e produtos em paralelo. Qualquer falha cancela a
// outra busca e sobe para o chamador.
func (uc *ReferenceDataUseCase) Load(ctx context.Context) (*dto.ReferenceDataResponse, error) {
	var (
		products  []*entity.Product
		customers []*entity.Customer
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = uc.products.List(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		customers, err = uc.customers.List(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &dto.ReferenceDataResponse{
		Customers: make([]dto.CustomerResponse, 0, len(customers)),
		Products:  make([]dto.ProductResponse, 0, len(products)),
	}
	for _, c := range customers {
		out.Customers = append(out.Customers, dto.CustomerResponse{
			ID:           c.ID,
			Name:         c.Name,
			Phone:        c.Phone,
			Email:        c.Email,
			Address:      c.Address,
			RegisteredAt: formatDate(c.RegisteredAt),
		})
	}
	for _, p := range products {
		out.Products = append(out.Products, dto.ProductResponse{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			SalePrice:   p.SalePrice,
			Stock:       p.Stock,
			Category:    p.Category,
			Active:      p.Active,
		})
	}
	return out, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
