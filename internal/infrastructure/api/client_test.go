package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pacoca/pacoca-pos/internal/domain"
	"github.com/pacoca/pacoca-pos/internal/domain/entity"
	"github.com/pacoca/pacoca-pos/internal/infrastructure/api"
	"github.com/pacoca/pacoca-pos/pkg/logger"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func newClient(t *testing.T, handler http.Handler) (*api.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return api.NewClient(srv.URL, 5*time.Second, testLogger()), srv
}

const produtosJSON = `[
	{"id": 1, "nome": "Paçoca rolha", "descricao": "", "preco_venda": "5.00", "estoque": 10, "categoria": "Paçoca", "ativo": true},
	{"id": 2, "nome": "Pé de moleque", "descricao": "com amendoim", "preco_venda": "2.50", "estoque": 5, "categoria": "Doce", "ativo": true}
]`

func TestProductList_ArrayPuro(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/produtos/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(produtosJSON))
	}))

	produtos, err := api.NewProductClient(c).List(context.Background())
	require.NoError(t, err)
	require.Len(t, produtos, 2)
	assert.Equal(t, int64(1), produtos[0].ID)
	assert.Equal(t, "Paçoca rolha", produtos[0].Name)
	assert.Equal(t, "5", produtos[0].SalePrice.String())
	assert.Equal(t, 10, produtos[0].Stock)
}

func TestProductList_EnvelopeResults(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count": 2, "next": null, "previous": null, "results": ` + produtosJSON + `}`))
	}))

	produtos, err := api.NewProductClient(c).List(context.Background())
	require.NoError(t, err)
	require.Len(t, produtos, 2)
	assert.Equal(t, "Pé de moleque", produtos[1].Name)
}

func TestProductGetByID_NaoEncontrado(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail": "não encontrado"}`, http.StatusNotFound)
	}))

	_, err := api.NewProductClient(c).GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateBatch_CorpoEOrdem(t *testing.T) {
	var recebido []map[string]any
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/vendas/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&recebido))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`[]`))
	}))

	lines := []entity.SaleLineRequest{
		{CustomerID: 7, ProductID: 1, Quantity: 3, PaymentMethod: entity.PaymentDinheiro, UnitPrice: dec("5.00"), Total: dec("15.00")},
		{CustomerID: 7, ProductID: 2, Quantity: 2, PaymentMethod: entity.PaymentDinheiro, UnitPrice: dec("2.50"), Total: dec("5.00")},
	}
	_, err := api.NewSaleClient(c).CreateBatch(context.Background(), lines)
	require.NoError(t, err)

	require.Len(t, recebido, 2)
	assert.Equal(t, float64(1), recebido[0]["produto"])
	assert.Equal(t, float64(2), recebido[1]["produto"])
	assert.Equal(t, "Dinheiro", recebido[0]["forma_pagamento"])
	// decimal serializa como string com as casas preservadas
	assert.Equal(t, "15", recebido[0]["total"])
	assert.Equal(t, "5", recebido[1]["total"])
}

func TestCreateBatch_ErroDoBackendTextual(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "Estoque insuficiente para Paçoca rolha. Disponível: 2"}`))
	}))

	_, err := api.NewSaleClient(c).CreateBatch(context.Background(), []entity.SaleLineRequest{
		{CustomerID: 7, ProductID: 1, Quantity: 3, PaymentMethod: entity.PaymentDinheiro},
	})
	require.Error(t, err)

	var ue *api.UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, http.StatusBadRequest, ue.Status)
	// Mensagem do backend repassada textualmente
	assert.Equal(t, "Estoque insuficiente para Paçoca rolha. Disponível: 2", ue.Message)
	assert.Equal(t, ue.Message, ue.Error())
}

func TestCreateBatch_ErroSemMensagem(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := api.NewSaleClient(c).CreateBatch(context.Background(), []entity.SaleLineRequest{{CustomerID: 1, ProductID: 1, Quantity: 1}})
	var ue *api.UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Empty(t, ue.Message)
	assert.Contains(t, ue.Error(), "500")
}

func TestSaleList_ObjetosAninhados(t *testing.T) {
	body := `{"results": [{
		"id": 3,
		"data_venda": "2026-08-27T15:30:00-03:00",
		"cliente": {"id": 7, "nome": "Maria", "telefone": "", "email": "", "endereco": "", "data_cadastro": "2026-01-10"},
		"produto": {"id": 1, "nome": "Paçoca rolha", "descricao": "", "preco_venda": "5.00", "estoque": 7, "categoria": "Paçoca", "ativo": true},
		"quantidade": 3,
		"valor_unitario": "5.00",
		"valor_total": "15.00",
		"forma_pagamento": "PIX",
		"observacoes": null
	}]}`
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))

	vendas, err := api.NewSaleClient(c).List(context.Background())
	require.NoError(t, err)
	require.Len(t, vendas, 1)

	v := vendas[0]
	assert.Equal(t, "Maria", v.Customer.Name)
	assert.Equal(t, "Paçoca rolha", v.Product.Name)
	assert.Equal(t, "15", v.Total.String())
	assert.Equal(t, "PIX", v.PaymentMethod)
	assert.Equal(t, 2026, v.Date.Year())
	assert.Equal(t, time.August, v.Date.Month())
}

func TestServiceStatistics_Envelope(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/servicos/estatisticas/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"dados": [{"id": 1, "servico": "Entrega", "valor": 30.0, "porcentagem": 60.0}], "total_servicos": 2, "valor_total": 50.0}`))
	}))

	st, err := api.NewServiceClient(c).Statistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, st.Count)
	assert.Equal(t, "50", st.Total.String())
	require.Len(t, st.Items, 1)
	assert.Equal(t, "Entrega", st.Items[0].Name)
	assert.Equal(t, "60", st.Items[0].Percent.String())
}

func TestServiceStatistics_EndpointAusente(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	_, err := api.NewServiceClient(c).Statistics(context.Background())
	require.Error(t, err) // a degradação para vazio é responsabilidade do caso de uso
}
