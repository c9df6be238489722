package entity

import "github.com/shopspring/decimal"

// Service representa um serviço precificado da loja. Independe do fluxo de
// venda; alimenta apenas as estatísticas de participação na receita.
type Service struct {
	ID    int64
	Name  string          // servico
	Price decimal.Decimal // valor
}

// ServiceShare participação de um serviço na receita total.
type ServiceShare struct {
	ID      int64
	Name    string
	Value   decimal.Decimal
	Percent decimal.Decimal // 0–100, uma casa decimal
}

// ServiceStatistics agregado devolvido pelo endpoint opcional
// /servicos/estatisticas/ do backend.
type ServiceStatistics struct {
	Items []ServiceShare
	Count int
	Total decimal.Decimal
}
