package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/abastece/abastece-api/internal/application/dto"
	"github.com/abastece/abastece-api/internal/application/usecase"
)

// ConditionHandler trata as requisições HTTP para CommercialCondition (protegido).
type ConditionHandler struct {
	uc *usecase.ConditionUseCase
}

// NewConditionHandler constrói o handler.
func NewConditionHandler(uc *usecase.ConditionUseCase) *ConditionHandler {
	return &ConditionHandler{uc: uc}
}

// Create godoc
// @Summary      Criar condição comercial para um par (fornecedor, UF)
// @Tags         conditions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateConditionRequest  true  "Dados da condição"
// @Success      201   {object}  dto.Response{data=dto.ConditionResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/conditions [post]
func (h *ConditionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateConditionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.SupplierID == "" || in.UF == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "supplier_id e uf são obrigatórios"))
	}
	out, err := h.uc.Create(GetIdentity(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("condição criada", out))
}

// Resolve godoc
// @Summary      Resolver a condição comercial de um fornecedor para uma UF
// @Description  Ausência de condição é válida: devolve data nula e os padrões se aplicam.
// @Tags         conditions
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do fornecedor"
// @Param        uf  path  string  true  "Código da UF"
// @Success      200  {object}  dto.Response{data=dto.ConditionResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id}/conditions/{uf} [get]
func (h *ConditionHandler) Resolve(c *fiber.Ctx) error {
	out, err := h.uc.Resolve(c.Params("id"), c.Params("uf"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.JSON(dto.OK("sem condição específica; padrões aplicados", nil))
	}
	return c.JSON(dto.OK("condição comercial", out))
}

// ListBySupplier godoc
// @Summary      Listar condições comerciais de um fornecedor
// @Tags         conditions
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do fornecedor"
// @Success      200  {object}  dto.Response{data=[]dto.ConditionResponse}
// @Router       /api/suppliers/{id}/conditions [get]
func (h *ConditionHandler) ListBySupplier(c *fiber.Ctx) error {
	out, err := h.uc.ListBySupplier(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("condições do fornecedor", out))
}

// Update godoc
// @Summary      Atualizar condição comercial (fornecedor e UF são imutáveis)
// @Tags         conditions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da condição"
// @Param        body  body  dto.UpdateConditionRequest  true  "Dados a atualizar"
// @Success      200   {object}  dto.Response{data=dto.ConditionResponse}
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/conditions/{id} [put]
func (h *ConditionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateConditionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(GetIdentity(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("condição atualizada", out))
}

// Delete godoc
// @Summary      Remover condição comercial (o par volta aos padrões)
// @Tags         conditions
// @Security     Bearer
// @Param        id  path  string  true  "ID da condição"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/conditions/{id} [delete]
func (h *ConditionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetIdentity(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
