package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/abastece/abastece-api/internal/application/auth"
	apporder "github.com/abastece/abastece-api/internal/application/order"
	"github.com/abastece/abastece-api/internal/application/usecase"
	"github.com/abastece/abastece-api/internal/infrastructure/broker"
	infrapdf "github.com/abastece/abastece-api/internal/infrastructure/pdf"
	"github.com/abastece/abastece-api/internal/infrastructure/postgres"
	httpRouter "github.com/abastece/abastece-api/internal/interfaces/http"
	"github.com/abastece/abastece-api/pkg/config"
	"github.com/abastece/abastece-api/pkg/logger"
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
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	linkRepo := postgres.NewStoreSupplierRepository(pool)
	addressRepo := postgres.NewAddressRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	conditionRepo := postgres.NewConditionRepository(pool)
	campaignRepo := postgres.NewCampaignRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Publicação de eventos de pedido é opcional: sem brokers configurados
	// os casos de uso seguem sem publisher.
	var publisher apporder.EventPublisher
	if cfg.Kafka.Enabled() {
		producer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
		defer producer.Close()
		publisher = broker.NewOrderEventPublisher(producer)
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.Topic).Msg("eventos de pedido ativados")
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	storeUC := usecase.NewStoreUseCase(storeRepo, linkRepo, supplierRepo, addressRepo)
	addressUC := usecase.NewAddressUseCase(addressRepo)
	productUC := usecase.NewProductUseCase(productRepo, supplierRepo)
	conditionUC := usecase.NewConditionUseCase(conditionRepo, supplierRepo)
	campaignUC := usecase.NewCampaignUseCase(campaignRepo, supplierRepo)

	createOrderUC := apporder.NewCreateOrderUseCase(
		txRunner, storeRepo, supplierRepo, productRepo,
		campaignRepo, conditionRepo, addressRepo, linkRepo,
		publisher, log,
	)
	lifecycleUC := apporder.NewLifecycleUseCase(orderRepo, supplierRepo, publisher, log)

	// PDF: recibo do pedido para download
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator()
	receiptUC := apporder.NewReceiptUseCase(orderRepo, storeRepo, supplierRepo, productRepo, receiptGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Abastece API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	if cfg.Metrics.Enabled {
		app.Get(cfg.Metrics.Path, adaptor.HTTPHandler(promhttp.Handler()))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		SupplierUC:  supplierUC,
		StoreUC:     storeUC,
		AddressUC:   addressUC,
		ProductUC:   productUC,
		ConditionUC: conditionUC,
		CampaignUC:  campaignUC,
		CreateOrder: createOrderUC,
		LifecycleUC: lifecycleUC,
		ReceiptUC:   receiptUC,
		JWTSecret:   cfg.JWT.Secret,
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
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
