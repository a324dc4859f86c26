package order

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/abastece/abastece-api/internal/domain"
	"github.com/abastece/abastece-api/internal/domain/authz"
	"github.com/abastece/abastece-api/internal/domain/entity"
	"github.com/abastece/abastece-api/internal/domain/repository"
)

// ReceiptLine é uma linha do recibo com o nome do produto resolvido.
type ReceiptLine struct {
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// ReceiptGenerator gera o recibo do pedido em PDF.
type ReceiptGenerator interface {
	GenerateOrderReceipt(ctx context.Context, o *entity.Order, store *entity.Store, supplier *entity.Supplier, lines []ReceiptLine) ([]byte, error)
}

// ReceiptUseCase monta os dados do recibo e delega a renderização ao gerador.
// Mesma regra de visibilidade da consulta: comprador, dono do fornecedor ou admin.
type ReceiptUseCase struct {
	orderRepo    repository.OrderRepository
	storeRepo    repository.StoreRepository
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
	generator    ReceiptGenerator
}

// NewReceiptUseCase constrói o caso de uso.
func NewReceiptUseCase(
	orderRepo repository.OrderRepository,
	storeRepo repository.StoreRepository,
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
	generator ReceiptGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		orderRepo:    orderRepo,
		storeRepo:    storeRepo,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
		generator:    generator,
	}
}

// Generate devolve os bytes do PDF do recibo do pedido.
func (uc *ReceiptUseCase) Generate(ctx context.Context, caller authz.Identity, orderID string) ([]byte, error) {
	o, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}

	supplier, err := uc.supplierRepo.GetByID(o.SupplierID)
	if err != nil {
		return nil, err
	}
	supplierOwner := ""
	if supplier != nil {
		supplierOwner = supplier.UserID
	}
	if err := authz.AssertAnyOwner(caller, o.UserID, supplierOwner); err != nil {
		return nil, err
	}

	store, err := uc.storeRepo.GetByID(o.StoreID)
	if err != nil {
		return nil, err
	}
	items, err := uc.orderRepo.GetItemsByOrder(o.ID)
	if err != nil {
		return nil, err
	}

	lines := make([]ReceiptLine, 0, len(items))
	for _, it := range items {
		name := it.ProductID
		// Produto removido depois do pedido: o recibo mostra o ID.
		if product, err := uc.productRepo.GetByID(it.ProductID); err == nil && product != nil {
			name = product.Name
		}
		lines = append(lines, ReceiptLine{
			ProductName: name,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}

	return uc.generator.GenerateOrderReceipt(ctx, o, store, supplier, lines)
}
