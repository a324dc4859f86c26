package order

import (
	"context"
	"time"

	"github.com/abastece/abastece-api/internal/application/dto"
	"github.com/abastece/abastece-api/internal/domain"
	"github.com/abastece/abastece-api/internal/domain/authz"
	"github.com/abastece/abastece-api/internal/domain/entity"
	"github.com/abastece/abastece-api/internal/domain/repository"
	"github.com/abastece/abastece-api/internal/observability"
	"github.com/abastece/abastece-api/pkg/logger"
)

// LifecycleUseCase cobre o pós-criação do pedido: consulta, listagem por papel,
// transições de status e remoção lógica. Pedido removido = não encontrado.
type LifecycleUseCase struct {
	orderRepo    repository.OrderRepository
	supplierRepo repository.SupplierRepository
	publisher    EventPublisher
	log          *logger.Logger
}

// NewLifecycleUseCase constrói o caso de uso.
func NewLifecycleUseCase(
	orderRepo repository.OrderRepository,
	supplierRepo repository.SupplierRepository,
	publisher EventPublisher,
	log *logger.Logger,
) *LifecycleUseCase {
	return &LifecycleUseCase{
		orderRepo:    orderRepo,
		supplierRepo: supplierRepo,
		publisher:    publisher,
		log:          log,
	}
}

// GetByID devolve o pedido com itens. Visível para o comprador, o dono do
// fornecedor do pedido e administradores.
func (uc *LifecycleUseCase) GetByID(caller authz.Identity, id string) (*dto.OrderResponse, error) {
	o, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.assertParticipant(caller, o); err != nil {
		return nil, err
	}
	items, err := uc.orderRepo.GetItemsByOrder(o.ID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(o, items), nil
}

// List devolve os pedidos visíveis ao chamador: admin vê todos, loja vê os
// pedidos que comprou, fornecedor vê os pedidos recebidos.
func (uc *LifecycleUseCase) List(caller authz.Identity, page dto.PageRequest) (*dto.OrderListResponse, error) {
	page.DefaultPage()
	var (
		orders []*entity.Order
		err    error
	)
	switch {
	case caller.IsAdmin():
		orders, err = uc.orderRepo.List(page.Limit, page.Offset)
	case caller.Role == entity.RoleSupplier:
		orders, err = uc.orderRepo.ListBySupplierOwner(caller.UserID, page.Limit, page.Offset)
	default:
		orders, err = uc.orderRepo.ListByBuyer(caller.UserID, page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	out := &dto.OrderListResponse{
		Items: make([]dto.OrderResponse, 0, len(orders)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, o := range orders {
		out.Items = append(out.Items, *toOrderResponse(o, nil))
	}
	return out, nil
}

// UpdateStatus aplica uma transição da máquina de estados do pedido.
// Loja e fornecedor do pedido (e admin) podem transicionar; status desconhecido
// -> ErrInvalidInput; transição fora da tabela -> ErrInvalidTransition.
func (uc *LifecycleUseCase) UpdateStatus(ctx context.Context, caller authz.Identity, id string, in dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	if !entity.IsValidOrderStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	o, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.assertParticipant(caller, o); err != nil {
		return nil, err
	}
	if !entity.CanTransition(o.Status, in.Status) {
		return nil, domain.ErrInvalidTransition
	}

	previous := o.Status
	now := time.Now()
	o.Status = in.Status
	o.UpdatedAt = now
	switch in.Status {
	case entity.OrderStatusShipped:
		o.ShippedAt = &now
	case entity.OrderStatusDelivered:
		o.DeliveredAt = &now
	}
	if err := uc.orderRepo.Update(o); err != nil {
		return nil, err
	}

	observability.OrdersStatusTransitionsTotal.WithLabelValues(o.Status).Inc()
	uc.log.Info().
		Str("order_id", o.ID).
		Str("from", previous).
		Str("to", o.Status).
		Msg("status do pedido alterado")

	if uc.publisher != nil {
		if err := uc.publisher.PublishOrderStatusChanged(ctx, o, previous); err != nil {
			uc.log.Warn().Err(err).Str("order_id", o.ID).Msg("falha ao publicar evento de status")
		}
	}

	items, err := uc.orderRepo.GetItemsByOrder(o.ID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(o, items), nil
}

// Delete remove logicamente um pedido. Só o comprador (ou admin) pode remover,
// e só enquanto o pedido não atingir um status terminal. O status não muda:
// remoção lógica é ortogonal ao ciclo de vida.
func (uc *LifecycleUseCase) Delete(caller authz.Identity, id string) error {
	o, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if o == nil {
		return domain.ErrNotFound
	}
	if err := authz.AssertOwner(caller, o.UserID); err != nil {
		return err
	}
	if entity.IsTerminalOrderStatus(o.Status) {
		return domain.ErrConflict
	}
	return uc.orderRepo.SoftDelete(id)
}

// assertParticipant autoriza o comprador, o dono do fornecedor do pedido ou admin.
func (uc *LifecycleUseCase) assertParticipant(caller authz.Identity, o *entity.Order) error {
	if caller.IsAdmin() || caller.UserID == o.UserID {
		return nil
	}
	supplier, err := uc.supplierRepo.GetByID(o.SupplierID)
	if err != nil {
		return err
	}
	supplierOwner := ""
	if supplier != nil {
		supplierOwner = supplier.UserID
	}
	return authz.AssertAnyOwner(caller, o.UserID, supplierOwner)
}
