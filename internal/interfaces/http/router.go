package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/abastece/abastece-api/internal/application/auth"
	"github.com/abastece/abastece-api/internal/application/order"
	"github.com/abastece/abastece-api/internal/application/usecase"
	"github.com/abastece/abastece-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	SupplierUC  *usecase.SupplierUseCase
	StoreUC     *usecase.StoreUseCase
	AddressUC   *usecase.AddressUseCase
	ProductUC   *usecase.ProductUseCase
	ConditionUC *usecase.ConditionUseCase
	CampaignUC  *usecase.CampaignUseCase
	CreateOrder *order.CreateOrderUseCase
	LifecycleUC *order.LifecycleUseCase
	ReceiptUC   *order.ReceiptUseCase
	JWTSecret   string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", RequireRole(entity.RoleSupplier), supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Condições comerciais e campanhas aninhadas no fornecedor
	conditionHandler := NewConditionHandler(deps.ConditionUC)
	suppliers.Get("/:id/conditions", conditionHandler.ListBySupplier)
	suppliers.Get("/:id/conditions/:uf", conditionHandler.Resolve)
	campaignHandler := NewCampaignHandler(deps.CampaignUC)
	suppliers.Get("/:id/campaigns", campaignHandler.ListBySupplier)

	// Conditions
	conditions := protected.Group("/conditions")
	conditions.Post("/", conditionHandler.Create)
	conditions.Put("/:id", conditionHandler.Update)
	conditions.Delete("/:id", conditionHandler.Delete)

	// Campaigns
	campaigns := protected.Group("/campaigns")
	campaigns.Post("/", campaignHandler.Create)
	campaigns.Get("/:id", campaignHandler.GetByID)
	campaigns.Put("/:id", campaignHandler.Update)
	campaigns.Patch("/:id/status", campaignHandler.UpdateStatus)
	campaigns.Delete("/:id", campaignHandler.Delete)

	// Stores e vínculos com fornecedores
	stores := protected.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC)
	stores.Post("/", RequireRole(entity.RoleStore), storeHandler.Create)
	stores.Get("/", storeHandler.List)
	stores.Get("/:id", storeHandler.GetByID)
	stores.Put("/:id", storeHandler.Update)
	stores.Delete("/:id", storeHandler.Delete)
	stores.Post("/:id/suppliers", storeHandler.LinkSupplier)
	stores.Get("/:id/suppliers", storeHandler.ListSuppliers)
	stores.Delete("/:id/suppliers/:supplierId", storeHandler.UnlinkSupplier)

	// Addresses
	addresses := protected.Group("/addresses")
	addressHandler := NewAddressHandler(deps.AddressUC)
	addresses.Post("/", addressHandler.Create)
	addresses.Get("/", addressHandler.List)
	addresses.Get("/:id", addressHandler.GetByID)
	addresses.Put("/:id", addressHandler.Update)
	addresses.Delete("/:id", addressHandler.Delete)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Orders
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.CreateOrder, deps.LifecycleUC, deps.ReceiptUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Get("/:id/pdf", orderHandler.Receipt)
	orders.Patch("/:id/status", orderHandler.UpdateStatus)
	orders.Delete("/:id", orderHandler.Delete)
}
