package http

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/pacoca/pacoca-pos/internal/application/checkout"
	"github.com/pacoca/pacoca-pos/internal/application/dto"
)

// CartHandler atende o carrinho do terminal: estado, itens, dados de
// referência da tela de venda e a finalização.
type CartHandler struct {
	cartUC     *checkout.CartUseCase
	finalizeUC *checkout.FinalizeSaleUseCase
	refUC      *checkout.ReferenceDataUseCase
	validate   *validator.Validate
}

// NewCartHandler constrói o handler.
func NewCartHandler(
	cartUC *checkout.CartUseCase,
	finalizeUC *checkout.FinalizeSaleUseCase,
	refUC *checkout.ReferenceDataUseCase,
	v *validator.Validate,
) *CartHandler {
	return &CartHandler{cartUC: cartUC, finalizeUC: finalizeUC, refUC: refUC, validate: v}
}

// Get godoc
// @Summary      Estado do carrinho
// @Tags         carrinho
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/carrinho [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.cartUC.Get())
}

// Context godoc
// @Summary      Dados de referência da tela de venda
// @Description  Clientes e produtos carregados em paralelo.
// @Tags         carrinho
// @Produce      json
// @Success      200  {object}  dto.ReferenceDataResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/carrinho/contexto [get]
func (h *CartHandler) Context(c *fiber.Ctx) error {
	out, err := h.refUC.Load(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Adicionar item ao carrinho
// @Description  Rejeita produto repetido (conflito, sem mesclar) e valida a
// @Description  quantidade contra o estoque mais recente do backend.
// @Tags         carrinho
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddItemRequest  true  "Produto e quantidade"
// @Success      201   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/carrinho/itens [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.validate.Struct(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.cartUC.AddItem(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RemoveItem godoc
// @Summary      Remover item do carrinho
// @Description  Remover um produto ausente não é erro; devolve o carrinho
// @Description  como está.
// @Tags         carrinho
// @Produce      json
// @Param        produtoId  path  int  true  "ID do produto"
// @Success      200  {object}  dto.CartResponse
// @Router       /api/carrinho/itens/{produtoId} [delete]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("produtoId"), 10, 64)
	if err != nil || id <= 0 {
		return missingID(c)
	}
	return c.JSON(h.cartUC.RemoveItem(id))
}

// Clear godoc
// @Summary      Esvaziar o carrinho
// @Tags         carrinho
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/carrinho [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	return c.JSON(h.cartUC.Clear())
}

// Finalize godoc
// @Summary      Finalizar a venda
// @Description  Submete todas as linhas do carrinho em um único lote. Com
// @Description  formato=pdf devolve o cupom em PDF em vez do JSON.
// @Tags         carrinho
// @Accept       json
// @Produce      json
// @Produce      application/pdf
// @Param        formato  query  string  false  "json (padrão) ou pdf"
// @Param        body     body   dto.CheckoutRequest  true  "Cliente, forma de pagamento e observações"
// @Success      201  {object}  dto.CheckoutResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/carrinho/finalizar [post]
func (h *CartHandler) Finalize(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.validate.Struct(in); err != nil {
		return validationError(c, err)
	}

	out, err := h.finalizeUC.Finalize(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}

	if c.Query("formato") == "pdf" {
		pdfBytes, err := h.finalizeUC.ReceiptPDF(c.UserContext(), out)
		if err != nil {
			// A venda já está registrada; falha do cupom não a desfaz.
			return writeError(c, err)
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="cupom-`+out.Reference+`.pdf"`)
		return c.Status(fiber.StatusCreated).Send(pdfBytes)
	}

	return c.Status(fiber.StatusCreated).JSON(out)
}
