package repository

import (
	"context"

	"github.com/pacoca/pacoca-pos/internal/domain/entity"
)

// SaleRepository define o porto de acesso a vendas.
type SaleRepository interface {
	// List devolve o histórico completo, mais recente primeiro.
	List(ctx context.Context) ([]*entity.Sale, error)
	// CreateBatch envia todas as linhas de uma venda finalizada em uma única
	// chamada; o backend é responsável pela semântica tudo-ou-nada.
	CreateBatch(ctx context.Context, lines []entity.SaleLineRequest) ([]*entity.Sale, error)
}
