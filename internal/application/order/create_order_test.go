package order_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abastece/abastece-api/internal/application/dto"
	"github.com/abastece/abastece-api/internal/application/order"
	"github.com/abastece/abastece-api/internal/domain"
	"github.com/abastece/abastece-api/internal/domain/authz"
	"github.com/abastece/abastece-api/internal/domain/entity"
)

// Cenário base: loja em SP vinculada a um fornecedor com condição comercial
// (3 dias extras de prazo) e campanha de 10% para pedidos >= 100.

type createFixture struct {
	uc        *order.CreateOrderUseCase
	orderRepo *fakeOrderRepo
	txRunner  *fakeTxRunner
	publisher *fakePublisher
	campaigns *fakeCampaignRepo
	condition *fakeConditionRepo
	links     *fakeLinkRepo
	products  *fakeProductRepo
}

func newCreateFixture() *createFixture {
	now := time.Now()
	addrID := "addr-1"

	stores := &fakeStoreRepo{stores: map[string]*entity.Store{
		"store-1": {ID: "store-1", UserID: "user-store", Name: "Mercado Central", CNPJ: "11222333000181", AddressID: &addrID},
	}}
	suppliers := &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{
		"sup-1": {ID: "sup-1", UserID: "user-sup", CNPJ: "00000000000191", LegalName: "Distribuidora Alfa"},
		"sup-2": {ID: "sup-2", UserID: "user-sup-2", CNPJ: "11444777000161", LegalName: "Distribuidora Beta"},
	}}
	products := &fakeProductRepo{products: map[string]*entity.Product{
		"prod-1": {ID: "prod-1", SupplierID: "sup-1", Name: "Arroz 5kg", Price: decimal.NewFromInt(40), Stock: 100},
		"prod-2": {ID: "prod-2", SupplierID: "sup-1", Name: "Feijão 1kg", Price: decimal.NewFromInt(10), Stock: 100},
		"prod-x": {ID: "prod-x", SupplierID: "sup-2", Name: "Óleo 900ml", Price: decimal.NewFromInt(8), Stock: 100},
	}}
	addresses := &fakeAddressRepo{addresses: map[string]*entity.Address{
		addrID: {ID: addrID, UserID: "user-store", UF: "SP"},
	}}
	links := &fakeLinkRepo{links: map[string]*entity.StoreSupplier{
		"store-1/sup-1": {ID: "link-1", StoreID: "store-1", SupplierID: "sup-1"},
	}}

	minValue := decimal.NewFromInt(100)
	campaigns := &fakeCampaignRepo{active: []*entity.Campaign{
		{
			ID:              "camp-1",
			SupplierID:      "sup-1",
			Name:            "Volta às aulas",
			MinValue:        &minValue,
			DiscountPercent: decimal.NewFromInt(10),
			Status:          entity.CampaignStatusActive,
			CreatedAt:       now,
		},
	}}
	condition := &fakeConditionRepo{condition: &entity.CommercialCondition{
		ID:            "cond-1",
		SupplierID:    "sup-1",
		UF:            "SP",
		ExtraTermDays: 3,
	}}

	orderRepo := newFakeOrderRepo()
	txRunner := &fakeTxRunner{repo: orderRepo}
	publisher := &fakePublisher{}

	uc := order.NewCreateOrderUseCase(
		txRunner, stores, suppliers, products, campaigns, condition, addresses, links,
		publisher, testLogger(),
	)
	return &createFixture{
		uc:        uc,
		orderRepo: orderRepo,
		txRunner:  txRunner,
		publisher: publisher,
		campaigns: campaigns,
		condition: condition,
		links:     links,
		products:  products,
	}
}

func buyer() authz.Identity {
	return authz.Identity{UserID: "user-store", Role: entity.RoleStore}
}

func TestCreateOrder_AplicaCampanhaNoTotal(t *testing.T) {
	f := newCreateFixture()

	resp, err := f.uc.Create(context.Background(), buyer(), dto.CreateOrderRequest{
		StoreID:       "store-1",
		PaymentMethod: entity.PaymentPix,
		Items: []dto.OrderItemRequest{
			{ProductID: "prod-1", Quantity: 3, UnitPrice: decimal.NewFromInt(40)},
		},
	})

	require.NoError(t, err)
	// 3 x 40 = 120 >= 100 -> 10% de desconto sobre o total
	assert.Equal(t, "108.00", resp.Total.StringFixed(2))
	require.NotNil(t, resp.CampaignID)
	assert.Equal(t, "camp-1", *resp.CampaignID)
	assert.Equal(t, entity.OrderStatusPending, resp.Status)
	// itens preservam o subtotal sem desconto
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "120.00", resp.Items[0].Subtotal.StringFixed(2))
	// prazo base 7 + 3 dias da condição comercial
	assert.Equal(t, 10, resp.DeliveryTermDays)
	assert.Equal(t, 1, f.publisher.created)
}

func TestCreateOrder_AbaixoDoMinimoNaoAplicaCampanha(t *testing.T) {
	f := newCreateFixture()

	resp, err := f.uc.Create(context.Background(), buyer(), dto.CreateOrderRequest{
		StoreID:       "store-1",
		PaymentMethod: entity.PaymentBoleto,
		Items: []dto.OrderItemRequest{
			{ProductID: "prod-2", Quantity: 9, UnitPrice: decimal.NewFromInt(10)},
		},
	})

	require.NoError(t, err)
	// 9 x 10 = 90 < 100 -> sem desconto
	assert.Equal(t, "90.00", resp.Total.StringFixed(2))
	assert.Nil(t, resp.CampaignID)
}

func TestCreateOrder_PrecoZeroUsaCatalogo(t *testing.T) {
	f := newCreateFixture()
	// variação de preço da condição: catálogo 10 - 2 = 8 por unidade
	f.condition.condition.PriceVariance = decimal.NewFromInt(-2)

	resp, err := f.uc.Create(context.Background(), buyer(), dto.CreateOrderRequest{
		StoreID:       "store-1",
		PaymentMethod: entity.PaymentPix,
		Items: []dto.OrderItemRequest{
			{ProductID: "prod-2", Quantity: 2}, // UnitPrice zero
		},
	})

	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "8.00", resp.Items[0].UnitPrice.StringFixed(2))
	assert.Equal(t, "16.00", resp.Total.StringFixed(2))
}

func TestCreateOrder_SemItens(t *testing.T) {
	f := newCreateFixture()

	_, err := f.uc.Create(context.Background(), buyer(), dto.CreateOrderRequest{
		StoreID:       "store-1",
		PaymentMethod: entity.PaymentPix,
	})

	assert.ErrorIs(t, err, domain.ErrEmptyOrder)
}

func TestCreateOrder_PagamentoInvalido(t *testing.T) {
	f := newCreateFixture()

	_, err := f.uc.Create(context.Background(), buyer(), dto.CreateOrderRequest{
		StoreID:       "store-1",
		PaymentMethod: "cheque",
		Items: []dto.OrderItemRequest{
			{ProductID: "prod-1", Quantity: 1, UnitPrice: decimal.NewFromInt(40)},
		},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateOrder_LojaDeOutroUsuario(t *testing.T) {
	f := newCreateFixture()
	intruso := authz.Identity{UserID: "user-outro", Role: entity.RoleStore}

	_, err := f.uc.Create(context.Background(), intruso, dto.CreateOrderRequest{
		StoreID:       "store-1",
		PaymentMethod: entity.PaymentPix,
		Items: []dto.OrderItemRequest{
			{ProductID: "prod-1", Quantity: 1, UnitPrice: decimal.NewFromInt(40)},
		},
	})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreateOrder_FornecedoresDistintos(t *testing.T) {
	f := newCreateFixture()

	_, err := f.uc.Create(context.Background(), buyer(), dto.CreateOrderRequest{
		StoreID:       "store-1",
		PaymentMethod: entity.PaymentPix,
		Items: []dto.OrderItemRequest{
			{ProductID: "prod-1", Quantity: 1, UnitPrice: decimal.NewFromInt(40)},
			{ProductID: "prod-x", Quantity: 1, UnitPrice: decimal.NewFromInt(8)},
		},
	})

	assert.ErrorIs(t, err, domain.ErrMultiSupplier)
}

func TestCreateOrder_LinhaDuplicada(t *testing.T) {
	f := newCreateFixture()

	_, err := f.uc.Create(context.Background(), buyer(), dto.CreateOrderRequest{
		StoreID:       "store-1",
		PaymentMethod: entity.PaymentPix,
		Items: []dto.OrderItemRequest{
			{ProductID: "prod-1", Quantity: 1, UnitPrice: decimal.NewFromInt(40)},
			{ProductID: "prod-1", Quantity: 2, UnitPrice: decimal.NewFromInt(40)},
		},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateOrder_FornecedorNaoVinculado(t *testing.T) {
	f := newCreateFixture()
	delete(f.links.links, "store-1/sup-1")

	_, err := f.uc.Create(context.Background(), buyer(), dto.CreateOrderRequest{
		StoreID:       "store-1",
		PaymentMethod: entity.PaymentPix,
		Items: []dto.OrderItemRequest{
			{ProductID: "prod-1", Quantity: 1, UnitPrice: decimal.NewFromInt(40)},
		},
	})

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreateOrder_FalhaNaTransacaoNaoPersisteNada(t *testing.T) {
	f := newCreateFixture()
	f.txRunner.fail = true

	_, err := f.uc.Create(context.Background(), buyer(), dto.CreateOrderRequest{
		StoreID:       "store-1",
		PaymentMethod: entity.PaymentPix,
		Items: []dto.OrderItemRequest{
			{ProductID: "prod-1", Quantity: 1, UnitPrice: decimal.NewFromInt(40)},
		},
	})

	require.Error(t, err)
	assert.Empty(t, f.orderRepo.orders)
	assert.Zero(t, f.publisher.created)
}

func TestCreateOrder_EmpatePegaMaiorDesconto(t *testing.T) {
	f := newCreateFixture()
	minValue := decimal.NewFromInt(50)
	f.campaigns.active = append(f.campaigns.active, &entity.Campaign{
		ID:              "camp-2",
		SupplierID:      "sup-1",
		Name:            "Queima de estoque",
		MinValue:        &minValue,
		DiscountPercent: decimal.NewFromInt(20),
		Status:          entity.CampaignStatusActive,
		CreatedAt:       time.Now(),
	})

	resp, err := f.uc.Create(context.Background(), buyer(), dto.CreateOrderRequest{
		StoreID:       "store-1",
		PaymentMethod: entity.PaymentPix,
		Items: []dto.OrderItemRequest{
			{ProductID: "prod-1", Quantity: 3, UnitPrice: decimal.NewFromInt(40)},
		},
	})

	require.NoError(t, err)
	require.NotNil(t, resp.CampaignID)
	assert.Equal(t, "camp-2", *resp.CampaignID)
	assert.Equal(t, "96.00", resp.Total.StringFixed(2))
}
