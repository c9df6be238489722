package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/pacoca/pacoca-pos/internal/application/dto"
	"github.com/pacoca/pacoca-pos/internal/application/usecase"
)

// CustomerHandler atende as rotas de clientes.
type CustomerHandler struct {
	uc       *usecase.CustomerUseCase
	validate *validator.Validate
}

// NewCustomerHandler constrói o handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase, v *validator.Validate) *CustomerHandler {
	return &CustomerHandler{uc: uc, validate: v}
}

// List godoc
// @Summary      Listar clientes
// @Tags         clientes
// @Produce      json
// @Success      200  {array}   dto.CustomerResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/clientes [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Cadastrar cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "Dados do cliente"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/clientes [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
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
// @Summary      Atualizar cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID do cliente"
// @Param        body  body  dto.UpdateCustomerRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.CustomerResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return missingID(c)
	}
	var in dto.UpdateCustomerRequest
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
// @Summary      Remover cliente
// @Tags         clientes
// @Param        id  path  int  true  "ID do cliente"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return missingID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
