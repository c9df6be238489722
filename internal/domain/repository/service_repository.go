package repository

import (
	"context"

	"github.com/pacoca/pacoca-pos/internal/domain/entity"
)

// ServiceRepository define o porto de acesso a serviços.
type ServiceRepository interface {
	List(ctx context.Context) ([]*entity.Service, error)
	Create(ctx context.Context, s *entity.Service) (*entity.Service, error)
	Update(ctx context.Context, s *entity.Service) (*entity.Service, error)
	Delete(ctx context.Context, id int64) error
	// Statistics consulta o endpoint opcional /servicos/estatisticas/.
	// A ausência do endpoint chega como erro e deve ser degradada pelo
	// chamador para estatísticas vazias.
	Statistics(ctx context.Context) (*entity.ServiceStatistics, error)
}
