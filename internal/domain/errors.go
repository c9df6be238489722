package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound               = errors.New("recurso não encontrado")
	ErrInvalidInput           = errors.New("entrada inválida")
	ErrClienteNaoSelecionado  = errors.New("nenhum cliente selecionado")
	ErrCarrinhoVazio          = errors.New("carrinho vazio")
	ErrProdutoJaNoCarrinho    = errors.New("produto já está no carrinho")
	ErrQuantidadeInvalida     = errors.New("quantidade inválida")
	ErrEstoqueInsuficiente    = errors.New("estoque insuficiente")
	ErrFormaPagamentoInvalida = errors.New("forma de pagamento inválida")
	ErrVendaEmAndamento       = errors.New("já existe uma venda em andamento")
)
