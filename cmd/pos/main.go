package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/pacoca/pacoca-pos/internal/application/checkout"
	"github.com/pacoca/pacoca-pos/internal/application/usecase"
	"github.com/pacoca/pacoca-pos/internal/domain/cart"
	"github.com/pacoca/pacoca-pos/internal/infrastructure/api"
	infrapdf "github.com/pacoca/pacoca-pos/internal/infrastructure/pdf"
	httpRouter "github.com/pacoca/pacoca-pos/internal/interfaces/http"
	"github.com/pacoca/pacoca-pos/pkg/config"
	"github.com/pacoca/pacoca-pos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando terminal de vendas")

	base := api.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout(), log)
	productRepo := api.NewProductClient(base)
	customerRepo := api.NewCustomerClient(base)
	saleRepo := api.NewSaleClient(base)
	serviceRepo := api.NewServiceClient(base)

	// Um carrinho por processo: o terminal é o dono do rascunho da venda.
	terminalCart := cart.New()

	receiptInfo := checkout.ReceiptInfo{
		StoreName: cfg.Receipt.StoreName,
		Footer:    cfg.Receipt.Footer,
	}
	pdfGenerator := infrapdf.NewMarotoReceiptGenerator()

	cartUC := checkout.NewCartUseCase(terminalCart, productRepo)
	finalizeUC := checkout.NewFinalizeSaleUseCase(
		terminalCart, saleRepo, customerRepo, receiptInfo, pdfGenerator, log,
	)
	refDataUC := checkout.NewReferenceDataUseCase(productRepo, customerRepo)

	productUC := usecase.NewProductUseCase(productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	serviceUC := usecase.NewServiceUseCase(serviceRepo, log)
	historyUC := usecase.NewHistoryUseCase(saleRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Paçoca POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  productUC,
		CustomerUC: customerUC,
		ServiceUC:  serviceUC,
		HistoryUC:  historyUC,
		CartUC:     cartUC,
		FinalizeUC: finalizeUC,
		RefDataUC:  refDataUC,
		Validate:   validator.New(),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("terminal encerrado")
}
