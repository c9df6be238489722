package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/pacoca/pacoca-pos/internal/application/dto"
	"github.com/pacoca/pacoca-pos/internal/application/usecase"
)

// ServiceHandler atende as rotas de serviços e estatísticas.
type ServiceHandler struct {
	uc       *usecase.ServiceUseCase
	validate *validator.Validate
}

// NewServiceHandler constrói o handler.
func NewServiceHandler(uc *usecase.ServiceUseCase, v *validator.Validate) *ServiceHandler {
	return &ServiceHandler{uc: uc, validate: v}
}

// List godoc
// @Summary      Listar serviços
// @Tags         servicos
// @Produce      json
// @Success      200  {array}   dto.ServiceResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/servicos [get]
func (h *ServiceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Criar serviço
// @Tags         servicos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateServiceRequest  true  "Dados do serviço"
// @Success      201   {object}  dto.ServiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/servicos [post]
func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateServiceRequest
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
// @Summary      Atualizar serviço
// @Tags         servicos
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID do serviço"
// @Param        body  body  dto.UpdateServiceRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.ServiceResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/servicos/{id} [put]
func (h *ServiceHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return missingID(c)
	}
	var in dto.UpdateServiceRequest
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
// @Summary      Remover serviço
// @Tags         servicos
// @Param        id  path  int  true  "ID do serviço"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/servicos/{id} [delete]
func (h *ServiceHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return missingID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Statistics godoc
// @Summary      Estatísticas de serviços
// @Description  Envelope de participação na receita. Quando o backend não
// @Description  expõe o endpoint, devolve o envelope vazio (nunca erro).
// @Tags         servicos
// @Produce      json
// @Success      200  {object}  dto.ServiceStatisticsResponse
// @Router       /api/servicos/estatisticas [get]
func (h *ServiceHandler) Statistics(c *fiber.Ctx) error {
	return c.JSON(h.uc.Statistics(c.UserContext()))
}
