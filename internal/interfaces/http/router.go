package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/pacoca/pacoca-pos/internal/application/checkout"
	"github.com/pacoca/pacoca-pos/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	CustomerUC *usecase.CustomerUseCase
	ServiceUC  *usecase.ServiceUseCase
	HistoryUC  *usecase.HistoryUseCase
	CartUC     *checkout.CartUseCase
	FinalizeUC *checkout.FinalizeSaleUseCase
	RefDataUC  *checkout.ReferenceDataUseCase
	Validate   *validator.Validate
}

// Router registra as rotas da API do terminal.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Produtos
	products := api.Group("/produtos")
	productHandler := NewProductHandler(deps.ProductUC, deps.Validate)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Clientes
	customers := api.Group("/clientes")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.Validate)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Serviços (rota fixa antes da rota com :id)
	services := api.Group("/servicos")
	serviceHandler := NewServiceHandler(deps.ServiceUC, deps.Validate)
	services.Get("/estatisticas", serviceHandler.Statistics)
	services.Get("/", serviceHandler.List)
	services.Post("/", serviceHandler.Create)
	services.Put("/:id", serviceHandler.Update)
	services.Delete("/:id", serviceHandler.Delete)

	// Histórico de vendas
	sales := api.Group("/vendas")
	salesHandler := NewSalesHandler(deps.HistoryUC)
	sales.Get("/resumo", salesHandler.Summary)
	sales.Get("/", salesHandler.List)

	// Carrinho do terminal
	carts := api.Group("/carrinho")
	cartHandler := NewCartHandler(deps.CartUC, deps.FinalizeUC, deps.RefDataUC, deps.Validate)
	carts.Get("/contexto", cartHandler.Context)
	carts.Get("/", cartHandler.Get)
	carts.Delete("/", cartHandler.Clear)
	carts.Post("/itens", cartHandler.AddItem)
	carts.Delete("/itens/:produtoId", cartHandler.RemoveItem)
	carts.Post("/finalizar", cartHandler.Finalize)
}
