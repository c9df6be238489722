package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/pacoca/pacoca-pos/internal/application/dto"
	"github.com/pacoca/pacoca-pos/internal/domain"
	"github.com/pacoca/pacoca-pos/internal/infrastructure/api"
)

// writeError mapeia um erro para a resposta HTTP. Erros de validação local
// nunca chegaram ao backend; erros do backend passam com o status e a
// mensagem textual originais, sem tradução.
func writeError(c *fiber.Ctx, err error) error {
	var ue *api.UpstreamError
	if errors.As(err, &ue) {
		return c.Status(ue.Status).JSON(dto.ErrorResponse{Code: "BACKEND", Message: ue.Error()})
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrProdutoJaNoCarrinho),
		errors.Is(err, domain.ErrVendaEmAndamento):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrClienteNaoSelecionado),
		errors.Is(err, domain.ErrCarrinhoVazio),
		errors.Is(err, domain.ErrQuantidadeInvalida),
		errors.Is(err, domain.ErrEstoqueInsuficiente),
		errors.Is(err, domain.ErrFormaPagamentoInvalida),
		errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// invalidBody resposta padrão para corpo JSON malformado.
func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
}

// validationError resposta para falha do validator sobre o DTO.
func validationError(c *fiber.Ctx, err error) error {
	msg := "dados inválidos"
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		msg = "campo inválido: " + verrs[0].Field()
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
}
