package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/abastece/abastece-api/internal/application/dto"
	"github.com/abastece/abastece-api/internal/application/order"
)

// OrderHandler trata as requisições HTTP para Order (protegido).
type OrderHandler struct {
	createUC    *order.CreateOrderUseCase
	lifecycleUC *order.LifecycleUseCase
	receiptUC   *order.ReceiptUseCase
}

// NewOrderHandler constrói o handler.
func NewOrderHandler(createUC *order.CreateOrderUseCase, lifecycleUC *order.LifecycleUseCase, receiptUC *order.ReceiptUseCase) *OrderHandler {
	return &OrderHandler{createUC: createUC, lifecycleUC: lifecycleUC, receiptUC: receiptUC}
}

// Create godoc
// @Summary      Criar pedido (total calculado no servidor)
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Dados do pedido"
// @Success      201   {object}  dto.Response{data=dto.OrderResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.StoreID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "store_id é obrigatório"))
	}
	out, err := h.createUC.Create(c.UserContext(), GetIdentity(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("pedido criado", out))
}

// GetByID godoc
// @Summary      Obter pedido com itens (comprador, fornecedor ou admin)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do pedido"
// @Success      200  {object}  dto.Response{data=dto.OrderResponse}
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.lifecycleUC.GetByID(GetIdentity(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("pedido", out))
}

// List godoc
// @Summary      Listar pedidos visíveis ao chamador
// @Description  Admin vê todos; loja vê os que comprou; fornecedor vê os recebidos.
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.Response{data=dto.OrderListResponse}
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.lifecycleUC.List(GetIdentity(c), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("pedidos", out))
}

// UpdateStatus godoc
// @Summary      Transicionar status do pedido
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do pedido"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "pending, shipped, delivered ou cancelled"
// @Success      200   {object}  dto.Response{data=dto.OrderResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.lifecycleUC.UpdateStatus(c.UserContext(), GetIdentity(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("status do pedido atualizado", out))
}

// Delete godoc
// @Summary      Remover pedido (remoção lógica; só fora de status terminal)
// @Tags         orders
// @Security     Bearer
// @Param        id  path  string  true  "ID do pedido"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.lifecycleUC.Delete(GetIdentity(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Receipt godoc
// @Summary      Baixar recibo do pedido em PDF
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID do pedido"
// @Success      200  {file}  binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/pdf [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	pdfBytes, err := h.receiptUC.Generate(c.UserContext(), GetIdentity(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="pedido-`+c.Params("id")+`.pdf"`)
	return c.Send(pdfBytes)
}
