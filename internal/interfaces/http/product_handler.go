package http

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/pacoca/pacoca-pos/internal/application/dto"
	"github.com/pacoca/pacoca-pos/internal/application/usecase"
)

// ProductHandler atende as rotas do catálogo de produtos.
type ProductHandler struct {
	uc       *usecase.ProductUseCase
	validate *validator.Validate
}

// NewProductHandler constrói o handler.
func NewProductHandler(uc *usecase.ProductUseCase, v *validator.Validate) *ProductHandler {
	return &ProductHandler{uc: uc, validate: v}
}

// parseID lê o :id numérico da rota. 0 e negativo são inválidos.
func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func missingID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico é requerido"})
}

// List godoc
// @Summary      Listar produtos
// @Tags         produtos
// @Produce      json
// @Success      200  {array}   dto.ProductResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/produtos [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter produto por ID
// @Tags         produtos
// @Produce      json
// @Param        id   path  int  true  "ID do produto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return missingID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Criar produto
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Dados do produto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/produtos [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.validate.Struct(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Atualizar produto
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID do produto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return missingID(c)
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.validate.Struct(in); err != nil {
		return validationError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover produto
// @Tags         produtos
// @Param        id  path  int  true  "ID do produto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return missingID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
