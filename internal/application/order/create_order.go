package order

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/abastece/abastece-api/internal/application/dto"
	"github.com/abastece/abastece-api/internal/domain"
	"github.com/abastece/abastece-api/internal/domain/authz"
	"github.com/abastece/abastece-api/internal/domain/entity"
	"github.com/abastece/abastece-api/internal/domain/pricing"
	"github.com/abastece/abastece-api/internal/domain/repository"
	"github.com/abastece/abastece-api/internal/observability"
	"github.com/abastece/abastece-api/pkg/logger"
)

// Prazo de entrega base em dias; condições comerciais podem estendê-lo.
const baseDeliveryTermDays = 7

// CreateOrderUseCase cria um pedido: valida itens, resolve o fornecedor único,
// aplica condição comercial da UF da loja e campanha elegível, e grava cabeça
// e itens em uma única transação. O total nunca vem do cliente.
type CreateOrderUseCase struct {
	txRunner      TxRunner
	storeRepo     repository.StoreRepository
	supplierRepo  repository.SupplierRepository
	productRepo   repository.ProductRepository
	campaignRepo  repository.CampaignRepository
	conditionRepo repository.ConditionRepository
	addressRepo   repository.AddressRepository
	linkRepo      repository.StoreSupplierRepository
	publisher     EventPublisher
	log           *logger.Logger
}

// NewCreateOrderUseCase constrói o caso de uso.
func NewCreateOrderUseCase(
	txRunner TxRunner,
	storeRepo repository.StoreRepository,
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
	campaignRepo repository.CampaignRepository,
	conditionRepo repository.ConditionRepository,
	addressRepo repository.AddressRepository,
	linkRepo repository.StoreSupplierRepository,
	publisher EventPublisher,
	log *logger.Logger,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		txRunner:      txRunner,
		storeRepo:     storeRepo,
		supplierRepo:  supplierRepo,
		productRepo:   productRepo,
		campaignRepo:  campaignRepo,
		conditionRepo: conditionRepo,
		addressRepo:   addressRepo,
		linkRepo:      linkRepo,
		publisher:     publisher,
		log:           log,
	}
}

// Create executa o fluxo de criação descrito acima.
func (uc *CreateOrderUseCase) Create(ctx context.Context, caller authz.Identity, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Items) == 0 {
		observability.OrdersFailedTotal.WithLabelValues("empty_order").Inc()
		return nil, domain.ErrEmptyOrder
	}
	if !entity.IsValidPaymentMethod(in.PaymentMethod) {
		observability.OrdersFailedTotal.WithLabelValues("invalid_payment").Inc()
		return nil, domain.ErrInvalidInput
	}

	store, err := uc.storeRepo.GetByID(in.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	if err := authz.AssertOwner(caller, store.UserID); err != nil {
		observability.OrdersFailedTotal.WithLabelValues("forbidden").Inc()
		return nil, err
	}

	// UF da loja para resolver a condição comercial depois que o fornecedor
	// for conhecido. Loja sem endereço fica sem condição (usa padrões).
	storeUF, err := uc.storeUF(store)
	if err != nil {
		return nil, err
	}

	// Resolução de produtos: fornecedor único, sem linha duplicada,
	// preço unitário congelado (zero = preço vigente do catálogo, já com
	// a variação da condição comercial quando houver).
	supplierID := ""
	seen := make(map[string]bool, len(in.Items))
	productsByID := make(map[string]*entity.Product, len(in.Items))
	for _, item := range in.Items {
		if item.Quantity < 1 || item.UnitPrice.IsNegative() {
			observability.OrdersFailedTotal.WithLabelValues("invalid_item").Inc()
			return nil, domain.ErrInvalidInput
		}
		if seen[item.ProductID] {
			observability.OrdersFailedTotal.WithLabelValues("duplicate_item").Inc()
			return nil, domain.ErrInvalidInput
		}
		seen[item.ProductID] = true
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		if supplierID == "" {
			supplierID = product.SupplierID
		} else if product.SupplierID != supplierID {
			observability.OrdersFailedTotal.WithLabelValues("multi_supplier").Inc()
			return nil, domain.ErrMultiSupplier
		}
		productsByID[item.ProductID] = product
	}

	// Pedido só para fornecedor vinculado à loja.
	link, err := uc.linkRepo.GetActive(store.ID, supplierID)
	if err != nil {
		return nil, err
	}
	if link == nil {
		observability.OrdersFailedTotal.WithLabelValues("unlinked_supplier").Inc()
		return nil, domain.ErrConflict
	}

	// Condição comercial do par (fornecedor, UF da loja); nil = usar padrões.
	var condition *entity.CommercialCondition
	if storeUF != "" {
		condition, err = uc.conditionRepo.GetBySupplierAndUF(supplierID, storeUF)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now()
	orderID := uuid.New().String()
	candidateValue := decimal.Zero
	candidateQuantity := 0
	items := make([]*entity.OrderItem, 0, len(in.Items))
	for _, item := range in.Items {
		unitPrice := item.UnitPrice
		if unitPrice.IsZero() {
			unitPrice = catalogPrice(productsByID[item.ProductID], condition)
		}
		subtotal := pricing.LineSubtotal(item.Quantity, unitPrice)
		candidateValue = candidateValue.Add(subtotal)
		candidateQuantity += item.Quantity
		items = append(items, &entity.OrderItem{
			ID:        uuid.New().String(),
			OrderID:   orderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: unitPrice,
			Subtotal:  subtotal,
			CreatedAt: now,
		})
	}

	// Campanha elegível: desconto só no total do pedido, itens preservados.
	campaigns, err := uc.campaignRepo.ListActiveBySupplier(supplierID)
	if err != nil {
		return nil, err
	}
	selected := pricing.SelectCampaign(campaigns, candidateValue, candidateQuantity)
	total := pricing.ApplyDiscount(selected, candidateValue).Round(2)

	deliveryTerm := baseDeliveryTermDays
	if condition != nil {
		deliveryTerm += condition.ExtraTermDays
	}

	o := &entity.Order{
		ID:               orderID,
		StoreID:          store.ID,
		UserID:           caller.UserID,
		SupplierID:       supplierID,
		Total:            total,
		Description:      in.Description,
		Status:           entity.OrderStatusPending,
		PaymentMethod:    in.PaymentMethod,
		DeliveryTermDays: deliveryTerm,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if selected != nil {
		o.CampaignID = &selected.ID
	}

	// Cabeça e itens na mesma transação: falha em qualquer item desfaz tudo.
	err = uc.txRunner.RunOrder(ctx, func(orderRepo repository.OrderRepository) error {
		if err := orderRepo.Create(o); err != nil {
			return err
		}
		for _, it := range items {
			if err := orderRepo.CreateItem(it); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		observability.OrdersFailedTotal.WithLabelValues("persistence").Inc()
		return nil, err
	}

	observability.OrdersCreatedTotal.Inc()
	if selected != nil {
		observability.CampaignDiscountsAppliedTotal.Inc()
	}
	uc.log.Info().
		Str("order_id", o.ID).
		Str("store_id", o.StoreID).
		Str("supplier_id", o.SupplierID).
		Str("total", o.Total.StringFixed(2)).
		Msg("pedido criado")

	if uc.publisher != nil {
		if err := uc.publisher.PublishOrderCreated(ctx, o); err != nil {
			uc.log.Warn().Err(err).Str("order_id", o.ID).Msg("falha ao publicar evento de pedido")
		}
	}

	return toOrderResponse(o, items), nil
}

// storeUF devolve a UF do endereço da loja, ou vazio quando a loja não tem
// endereço cadastrado.
func (uc *CreateOrderUseCase) storeUF(store *entity.Store) (string, error) {
	if store.AddressID == nil {
		return "", nil
	}
	address, err := uc.addressRepo.GetByID(*store.AddressID)
	if err != nil {
		return "", err
	}
	if address == nil {
		return "", nil
	}
	return address.UF, nil
}

// catalogPrice devolve o preço vigente do catálogo ajustado pela variação da
// condição comercial, nunca negativo.
func catalogPrice(product *entity.Product, condition *entity.CommercialCondition) decimal.Decimal {
	price := product.Price
	if condition != nil {
		price = price.Add(condition.PriceVariance)
		if price.IsNegative() {
			price = decimal.Zero
		}
	}
	return price
}

func toOrderResponse(o *entity.Order, items []*entity.OrderItem) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:               o.ID,
		StoreID:          o.StoreID,
		SupplierID:       o.SupplierID,
		UserID:           o.UserID,
		Total:            o.Total,
		Description:      o.Description,
		Status:           o.Status,
		PaymentMethod:    o.PaymentMethod,
		DeliveryTermDays: o.DeliveryTermDays,
		CampaignID:       o.CampaignID,
		ShippedAt:        o.ShippedAt,
		DeliveredAt:      o.DeliveredAt,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
		Items:            make([]dto.OrderItemResponse, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal,
		})
	}
	return resp
}
