package checkout_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pacoca/pacoca-pos/internal/application/checkout"
	"github.com/pacoca/pacoca-pos/internal/application/dto"
	"github.com/pacoca/pacoca-pos/internal/domain"
	"github.com/pacoca/pacoca-pos/internal/domain/cart"
	"github.com/pacoca/pacoca-pos/internal/domain/entity"
	"github.com/pacoca/pacoca-pos/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes dos portos de repositório
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	byID map[int64]*entity.Product
}

func (f *fakeProductRepo) List(context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(f.byID))
	for _, p := range f.byID {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) (*entity.Product, error) {
	return p, nil
}
func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) (*entity.Product, error) {
	return p, nil
}
func (f *fakeProductRepo) Delete(context.Context, int64) error { return nil }

type fakeCustomerRepo struct {
	byID map[int64]*entity.Customer
}

func (f *fakeCustomerRepo) List(context.Context) ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(f.byID))
	for _, c := range f.byID {
		out = append(out, c)
	}
	return out, nil
}
func (f *fakeCustomerRepo) GetByID(_ context.Context, id int64) (*entity.Customer, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}
func (f *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) (*entity.Customer, error) {
	return c, nil
}
func (f *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) (*entity.Customer, error) {
	return c, nil
}
func (f *fakeCustomerRepo) Delete(context.Context, int64) error { return nil }

// fakeSaleRepo grava cada lote recebido; err simula falha do backend.
// block, quando não-nil, segura a chamada até o canal fechar e entered
// sinaliza que a chamada começou (testes de concorrência).
type fakeSaleRepo struct {
	mu        sync.Mutex
	batches   [][]entity.SaleLineRequest
	err       error
	block     chan struct{}
	entered   chan struct{}
	enterOnce sync.Once
}

func (f *fakeSaleRepo) List(context.Context) ([]*entity.Sale, error) { return nil, nil }

func (f *fakeSaleRepo) CreateBatch(_ context.Context, lines []entity.SaleLineRequest) ([]*entity.Sale, error) {
	if f.entered != nil {
		f.enterOnce.Do(func() { close(f.entered) })
	}
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	cp := make([]entity.SaleLineRequest, len(lines))
	copy(cp, lines)
	f.batches = append(f.batches, cp)
	return nil, nil
}

func (f *fakeSaleRepo) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.batches)
}

type fakePDF struct{}

func (fakePDF) GenerateReceiptPDF(context.Context, *checkout.Receipt) ([]byte, error) {
	return []byte("%PDF-fake"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func catalogo() *fakeProductRepo {
	return &fakeProductRepo{byID: map[int64]*entity.Product{
		1: {ID: 1, Name: "Paçoca rolha", SalePrice: dec("5.00"), Stock: 10, Active: true},
		2: {ID: 2, Name: "Pé de moleque", SalePrice: dec("2.50"), Stock: 5, Active: true},
		3: {ID: 3, Name: "Produto desativado", SalePrice: dec("1.00"), Stock: 3, Active: false},
	}}
}

func clientes() *fakeCustomerRepo {
	return &fakeCustomerRepo{byID: map[int64]*entity.Customer{
		7: {ID: 7, Name: "Maria"},
	}}
}

func setup(sales *fakeSaleRepo) (*checkout.CartUseCase, *checkout.FinalizeSaleUseCase, *cart.Cart) {
	c := cart.New()
	cartUC := checkout.NewCartUseCase(c, catalogo())
	finalizeUC := checkout.NewFinalizeSaleUseCase(
		c, sales, clientes(),
		checkout.ReceiptInfo{StoreName: "Paçoca da Vovó", Footer: "Obrigado!"},
		fakePDF{}, testLogger(),
	)
	return cartUC, finalizeUC, c
}

// ──────────────────────────────────────────────────────────────────────────────
// AddItem: porteira de estoque
// ──────────────────────────────────────────────────────────────────────────────

func TestAddItem_RespeitaEstoqueConhecido(t *testing.T) {
	cartUC, _, _ := setup(&fakeSaleRepo{})
	ctx := context.Background()

	_, err := cartUC.AddItem(ctx, dto.AddItemRequest{ProductID: 2, Quantity: 6})
	assert.ErrorIs(t, err, domain.ErrEstoqueInsuficiente)
	assert.ErrorContains(t, err, "disponível 5")

	// No limite exato passa
	out, err := cartUC.AddItem(ctx, dto.AddItemRequest{ProductID: 2, Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, "12.5", out.Total.String())
	assert.Equal(t, "R$ 12,50", out.TotalFormatted)
}

func TestAddItem_ProdutoInexistenteOuInativo(t *testing.T) {
	cartUC, _, _ := setup(&fakeSaleRepo{})
	ctx := context.Background()

	_, err := cartUC.AddItem(ctx, dto.AddItemRequest{ProductID: 99, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = cartUC.AddItem(ctx, dto.AddItemRequest{ProductID: 3, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddItem_DuplicadoNaoMutaCarrinho(t *testing.T) {
	cartUC, _, _ := setup(&fakeSaleRepo{})
	ctx := context.Background()

	_, err := cartUC.AddItem(ctx, dto.AddItemRequest{ProductID: 1, Quantity: 2})
	require.NoError(t, err)

	_, err = cartUC.AddItem(ctx, dto.AddItemRequest{ProductID: 1, Quantity: 3})
	assert.ErrorIs(t, err, domain.ErrProdutoJaNoCarrinho)

	estado := cartUC.Get()
	require.Len(t, estado.Items, 1)
	assert.Equal(t, 2, estado.Items[0].Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Finalize: pré-condições e envio em lote
// ──────────────────────────────────────────────────────────────────────────────

func TestFinalize_SemClienteNaoChamaRede(t *testing.T) {
	sales := &fakeSaleRepo{}
	cartUC, finalizeUC, _ := setup(sales)
	ctx := context.Background()

	_, err := cartUC.AddItem(ctx, dto.AddItemRequest{ProductID: 1, Quantity: 1})
	require.NoError(t, err)

	_, err = finalizeUC.Finalize(ctx, dto.CheckoutRequest{PaymentMethod: entity.PaymentDinheiro})
	assert.ErrorIs(t, err, domain.ErrClienteNaoSelecionado)
	assert.Zero(t, sales.calls(), "nenhuma chamada de rede deve acontecer sem cliente")

	// Carrinho preservado
	assert.Len(t, cartUC.Get().Items, 1)
}

func TestFinalize_CarrinhoVazio(t *testing.T) {
	sales := &fakeSaleRepo{}
	_, finalizeUC, _ := setup(sales)

	_, err := finalizeUC.Finalize(context.Background(), dto.CheckoutRequest{
		CustomerID:    7,
		PaymentMethod: entity.PaymentDinheiro,
	})
	assert.ErrorIs(t, err, domain.ErrCarrinhoVazio)
	assert.Zero(t, sales.calls())
}

func TestFinalize_FormaPagamentoInvalida(t *testing.T) {
	sales := &fakeSaleRepo{}
	cartUC, finalizeUC, _ := setup(sales)
	ctx := context.Background()

	_, err := cartUC.AddItem(ctx, dto.AddItemRequest{ProductID: 1, Quantity: 1})
	require.NoError(t, err)

	_, err = finalizeUC.Finalize(ctx, dto.CheckoutRequest{CustomerID: 7, PaymentMethod: "Cheque"})
	assert.ErrorIs(t, err, domain.ErrFormaPagamentoInvalida)
	assert.Zero(t, sales.calls())
}

// Cenário completo: 5.00×3 + 2.50×2 = 20.00, pagamento em dinheiro, um único
// lote com duas linhas e totais do snapshot; no sucesso o carrinho zera.
func TestFinalize_CenarioCompleto(t *testing.T) {
	sales := &fakeSaleRepo{}
	cartUC, finalizeUC, _ := setup(sales)
	ctx := context.Background()

	_, err := cartUC.AddItem(ctx, dto.AddItemRequest{ProductID: 1, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, "15", cartUC.Get().Total.String())

	_, err = cartUC.AddItem(ctx, dto.AddItemRequest{ProductID: 2, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, "20", cartUC.Get().Total.String())

	out, err := finalizeUC.Finalize(ctx, dto.CheckoutRequest{
		CustomerID:    7,
		PaymentMethod: entity.PaymentDinheiro,
	})
	require.NoError(t, err)

	// Exatamente um lote, uma linha por item, na ordem de inserção
	require.Equal(t, 1, sales.calls())
	lote := sales.batches[0]
	require.Len(t, lote, 2)

	assert.Equal(t, int64(7), lote[0].CustomerID)
	assert.Equal(t, int64(1), lote[0].ProductID)
	assert.Equal(t, 3, lote[0].Quantity)
	assert.Equal(t, "15", lote[0].Total.String())
	assert.Equal(t, entity.PaymentDinheiro, lote[0].PaymentMethod)

	assert.Equal(t, int64(2), lote[1].ProductID)
	assert.Equal(t, "5", lote[1].Total.String())
	assert.Equal(t, entity.PaymentDinheiro, lote[1].PaymentMethod)

	// Resposta e pós-condições
	assert.NotEmpty(t, out.Reference)
	assert.Equal(t, "Maria", out.CustomerName)
	assert.Equal(t, "20", out.Total.String())
	assert.Equal(t, "R$ 20,00", out.TotalFormatted)
	assert.True(t, cartUC.Get().Total.IsZero(), "carrinho deve zerar após o sucesso")
}

func TestFinalize_FalhaDoBackendPreservaCarrinho(t *testing.T) {
	sales := &fakeSaleRepo{err: assert.AnError}
	cartUC, finalizeUC, _ := setup(sales)
	ctx := context.Background()

	_, err := cartUC.AddItem(ctx, dto.AddItemRequest{ProductID: 1, Quantity: 3})
	require.NoError(t, err)

	_, err = finalizeUC.Finalize(ctx, dto.CheckoutRequest{
		CustomerID:    7,
		PaymentMethod: entity.PaymentPix,
	})
	require.Error(t, err)

	// Carrinho intacto para nova tentativa
	estado := cartUC.Get()
	require.Len(t, estado.Items, 1)
	assert.Equal(t, "15", estado.Total.String())
}

// O snapshot do carrinho manda: mudança de preço no backend depois do add
// não altera a linha enviada.
func TestFinalize_UsaSnapshotDePreco(t *testing.T) {
	sales := &fakeSaleRepo{}
	produtos := catalogo()
	c := cart.New()
	cartUC := checkout.NewCartUseCase(c, produtos)
	finalizeUC := checkout.NewFinalizeSaleUseCase(
		c, sales, clientes(), checkout.ReceiptInfo{}, fakePDF{}, testLogger(),
	)
	ctx := context.Background()

	_, err := cartUC.AddItem(ctx, dto.AddItemRequest{ProductID: 1, Quantity: 2})
	require.NoError(t, err)

	// Preço sobe no backend
	produtos.byID[1].SalePrice = dec("9.99")

	_, err = finalizeUC.Finalize(ctx, dto.CheckoutRequest{CustomerID: 7, PaymentMethod: entity.PaymentDinheiro})
	require.NoError(t, err)

	lote := sales.batches[0]
	assert.Equal(t, "5", lote[0].UnitPrice.String())
	assert.Equal(t, "10", lote[0].Total.String())
}

// Segunda finalização enquanto a primeira está em voo é rejeitada na hora.
func TestFinalize_RejeitaSubmissaoConcorrente(t *testing.T) {
	sales := &fakeSaleRepo{block: make(chan struct{}), entered: make(chan struct{})}
	cartUC, finalizeUC, _ := setup(sales)
	ctx := context.Background()

	_, err := cartUC.AddItem(ctx, dto.AddItemRequest{ProductID: 1, Quantity: 1})
	require.NoError(t, err)

	primeira := make(chan error, 1)
	go func() {
		_, err := finalizeUC.Finalize(ctx, dto.CheckoutRequest{CustomerID: 7, PaymentMethod: entity.PaymentDinheiro})
		primeira <- err
	}()

	// Espera a primeira entrar na chamada bloqueada
	select {
	case <-sales.entered:
	case <-time.After(time.Second):
		t.Fatal("a primeira finalização não chegou ao backend")
	}

	_, err = finalizeUC.Finalize(ctx, dto.CheckoutRequest{CustomerID: 7, PaymentMethod: entity.PaymentDinheiro})
	assert.ErrorIs(t, err, domain.ErrVendaEmAndamento)

	close(sales.block)
	require.NoError(t, <-primeira)
	assert.Equal(t, 1, sales.calls(), "apenas uma submissão deve chegar ao backend")
}

// ──────────────────────────────────────────────────────────────────────────────
// Dados de referência e cupom
// ──────────────────────────────────────────────────────────────────────────────

func TestReferenceData_CarregaClientesEProdutos(t *testing.T) {
	uc := checkout.NewReferenceDataUseCase(catalogo(), clientes())

	out, err := uc.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, out.Customers, 1)
	assert.Len(t, out.Products, 3)
}

func TestReceiptPDF(t *testing.T) {
	sales := &fakeSaleRepo{}
	cartUC, finalizeUC, _ := setup(sales)
	ctx := context.Background()

	_, err := cartUC.AddItem(ctx, dto.AddItemRequest{ProductID: 1, Quantity: 1})
	require.NoError(t, err)

	out, err := finalizeUC.Finalize(ctx, dto.CheckoutRequest{CustomerID: 7, PaymentMethod: entity.PaymentPix})
	require.NoError(t, err)

	pdf, err := finalizeUC.ReceiptPDF(ctx, out)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}
