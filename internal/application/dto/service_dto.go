package dto

import "github.com/shopspring/decimal"

// CreateServiceRequest entrada para criar um serviço.
type CreateServiceRequest struct {
	Name  string          `json:"servico" validate:"required,min=1,max=255"`
	Price decimal.Decimal `json:"valor"`
}

// UpdateServiceRequest entrada para atualizar um serviço.
type UpdateServiceRequest struct {
	Name  *string          `json:"servico" validate:"omitempty,min=1,max=255"`
	Price *decimal.Decimal `json:"valor"`
}

// ServiceResponse saída de um serviço.
type ServiceResponse struct {
	ID    int64           `json:"id"`
	Name  string          `json:"servico"`
	Price decimal.Decimal `json:"valor"`
}

// ServiceShareResponse participação de um serviço na receita.
type ServiceShareResponse struct {
	ID      int64           `json:"id"`
	Name    string          `json:"servico"`
	Value   decimal.Decimal `json:"valor"`
	Percent decimal.Decimal `json:"porcentagem"`
}

// ServiceStatisticsResponse envelope de estatísticas, no mesmo formato do
// endpoint do backend. Quando o endpoint não existe a resposta degrada para
// dados vazios e totais zero.
type ServiceStatisticsResponse struct {
	Items []ServiceShareResponse `json:"dados"`
	Count int                    `json:"total_servicos"`
	Total decimal.Decimal        `json:"valor_total"`
}
