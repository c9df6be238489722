// Package api implementa os portos de repositório sobre a API REST do
// backend da loja. O terminal não persiste nada localmente: todo dado de
// referência (produtos, clientes, serviços) e todo registro de venda vivem
// no backend; aqui só há transporte HTTP/JSON.
//
// Convenções do backend preservadas: caminhos com barra final
// ("/produtos/", "/vendas/") e listas que podem vir como array puro ou como
// envelope paginado {"results": [...]}.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pacoca/pacoca-pos/internal/domain"
	"github.com/pacoca/pacoca-pos/pkg/logger"
)

// Client é o cliente HTTP base compartilhado pelos clientes de recurso.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logger.Logger
}

// NewClient constrói o cliente. baseURL aponta para a raiz da API
// (ex: http://localhost:8000/api), sem barra final.
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// UpstreamError transporta uma resposta não-2xx do backend. Message carrega
// o campo "error" do corpo quando presente, textual e sem tradução, para
// ser exibido ao operador exatamente como o backend o produziu.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend respondeu status %d", e.Status)
}

// errorBody é o envelope de erro do backend: {"error": "...", "details": ...}.
type errorBody struct {
	Error string `json:"error"`
}

// do executa a requisição e devolve o corpo. Não-2xx vira *UpstreamError.
func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("serializar corpo: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("montar requisição: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chamada ao backend: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ler resposta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		ue := &UpstreamError{Status: resp.StatusCode}
		var eb errorBody
		if json.Unmarshal(data, &eb) == nil {
			ue.Message = eb.Error
		}
		c.log.Debug().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Msg("backend devolveu erro")
		return nil, ue
	}
	return data, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	data, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decodificar resposta de %s: %w", path, err)
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	data, err := c.do(ctx, http.MethodPost, path, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decodificar resposta de %s: %w", path, err)
	}
	return nil
}

func (c *Client) putJSON(ctx context.Context, path string, body, out any) error {
	data, err := c.do(ctx, http.MethodPut, path, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decodificar resposta de %s: %w", path, err)
	}
	return nil
}

func (c *Client) delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil)
	return err
}

// getList busca uma lista aceitando as duas formas de resposta do backend:
// array puro ou envelope com "results". A normalização acontece aqui, antes
// de qualquer outro componente ver os dados.
func getList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	data, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	raw := normalizeList(data)
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decodificar lista de %s: %w", path, err)
	}
	return out, nil
}

// normalizeList devolve o array de itens, esteja ele na raiz ou em "results".
func normalizeList(data []byte) json.RawMessage {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return trimmed
	}
	var envelope struct {
		Results json.RawMessage `json:"results"`
	}
	if json.Unmarshal(data, &envelope) == nil && envelope.Results != nil {
		return envelope.Results
	}
	return data
}

// notFoundOr converte 404 do backend no sentinela de domínio.
func notFoundOr(err error) error {
	var ue *UpstreamError
	if errors.As(err, &ue) && ue.Status == http.StatusNotFound {
		return domain.ErrNotFound
	}
	return err
}
