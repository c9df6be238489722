package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pacoca/pacoca-pos/internal/application/usecase"
)

// SalesHandler atende o histórico de vendas e seu resumo.
type SalesHandler struct {
	uc *usecase.HistoryUseCase
}

// NewSalesHandler constrói o handler.
func NewSalesHandler(uc *usecase.HistoryUseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

func historyFilter(c *fiber.Ctx) usecase.HistoryFilter {
	return usecase.HistoryFilter{
		Date:          c.Query("data"),
		PaymentMethod: c.Query("forma_pagamento"),
	}
}

// List godoc
// @Summary      Histórico de vendas
// @Description  Lista com status de recência por linha e resumo calculado
// @Description  sobre o conjunto filtrado.
// @Tags         vendas
// @Produce      json
// @Param        data             query  string  false  "Prefixo da data dd/mm/aaaa"
// @Param        forma_pagamento  query  string  false  "Forma de pagamento exata"
// @Success      200  {object}  dto.HistoryResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/vendas [get]
func (h *SalesHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), historyFilter(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumo do histórico
// @Tags         vendas
// @Produce      json
// @Param        data             query  string  false  "Prefixo da data dd/mm/aaaa"
// @Param        forma_pagamento  query  string  false  "Forma de pagamento exata"
// @Success      200  {object}  dto.HistorySummaryResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/vendas/resumo [get]
func (h *SalesHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), historyFilter(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out.Summary)
}
