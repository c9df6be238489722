package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/pacoca/pacoca-pos/internal/application/dto"
	"github.com/pacoca/pacoca-pos/internal/domain"
	"github.com/pacoca/pacoca-pos/internal/domain/entity"
	"github.com/pacoca/pacoca-pos/internal/domain/repository"
	"github.com/pacoca/pacoca-pos/pkg/logger"
)

// ServiceUseCase casos de uso para serviços e suas estatísticas.
type ServiceUseCase struct {
	repo repository.ServiceRepository
	log  *logger.Logger
}

// NewServiceUseCase constrói o caso de uso.
func NewServiceUseCase(repo repository.ServiceRepository, log *logger.Logger) *ServiceUseCase {
	return &ServiceUseCase{repo: repo, log: log}
}

// List lista os serviços.
func (uc *ServiceUseCase) List(ctx context.Context) ([]dto.ServiceResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ServiceResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.ServiceResponse{ID: s.ID, Name: s.Name, Price: s.Price})
	}
	return out, nil
}

// Create cria um serviço.
func (uc *ServiceUseCase) Create(ctx context.Context, in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	created, err := uc.repo.Create(ctx, &entity.Service{Name: in.Name, Price: in.Price})
	if err != nil {
		return nil, err
	}
	return &dto.ServiceResponse{ID: created.ID, Name: created.Name, Price: created.Price}, nil
}

// Update atualiza um serviço.
func (uc *ServiceUseCase) Update(ctx context.Context, id int64, in dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var current *entity.Service
	for _, s := range list {
		if s.ID == id {
			current = s
			break
		}
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		current.Name = *in.Name
	}
	if in.Price != nil {
		current.Price = *in.Price
	}
	updated, err := uc.repo.Update(ctx, current)
	if err != nil {
		return nil, err
	}
	return &dto.ServiceResponse{ID: updated.ID, Name: updated.Name, Price: updated.Price}, nil
}

// Delete remove um serviço.
func (uc *ServiceUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// Statistics consulta o endpoint opcional de estatísticas. Qualquer falha é
// degradada para o envelope vazio: registrada no log, nunca exposta como
// erro ao operador.
func (uc *ServiceUseCase) Statistics(ctx context.Context) *dto.ServiceStatisticsResponse {
	empty := &dto.ServiceStatisticsResponse{
		Items: []dto.ServiceShareResponse{},
		Count: 0,
		Total: decimal.Zero,
	}

	st, err := uc.repo.Statistics(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("estatísticas de serviços indisponíveis, usando vazio")
		return empty
	}

	out := &dto.ServiceStatisticsResponse{
		Items: make([]dto.ServiceShareResponse, 0, len(st.Items)),
		Count: st.Count,
		Total: st.Total,
	}
	for _, it := range st.Items {
		out.Items = append(out.Items, dto.ServiceShareResponse{
			ID:      it.ID,
			Name:    it.Name,
			Value:   it.Value,
			Percent: it.Percent,
		})
	}
	return out
}
