package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/abastece/abastece-api/internal/application/dto"
	"github.com/abastece/abastece-api/internal/application/usecase"
)

// StoreHandler trata as requisições HTTP para Store e seus vínculos (protegido).
type StoreHandler struct {
	uc *usecase.StoreUseCase
}

// NewStoreHandler constrói o handler.
func NewStoreHandler(uc *usecase.StoreUseCase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

// Create godoc
// @Summary      Criar loja
// @Tags         stores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStoreRequest  true  "Dados da loja"
// @Success      201   {object}  dto.Response{data=dto.StoreResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stores [post]
func (h *StoreHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStoreRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Name == "" || in.CNPJ == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "name e cnpj são obrigatórios"))
	}
	out, err := h.uc.Create(GetIdentity(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("loja criada", out))
}

// GetByID godoc
// @Summary      Obter loja por ID
// @Tags         stores
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da loja"
// @Success      200  {object}  dto.Response{data=dto.StoreResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stores/{id} [get]
func (h *StoreHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("loja", out))
}

// List godoc
// @Summary      Listar lojas
// @Tags         stores
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.Response{data=dto.StoreListResponse}
// @Router       /api/stores [get]
func (h *StoreHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("lojas", out))
}

// Update godoc
// @Summary      Atualizar loja (CNPJ é imutável)
// @Tags         stores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da loja"
// @Param        body  body  dto.UpdateStoreRequest  true  "Dados a atualizar"
// @Success      200   {object}  dto.Response{data=dto.StoreResponse}
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stores/{id} [put]
func (h *StoreHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStoreRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(GetIdentity(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("loja atualizada", out))
}

// Delete godoc
// @Summary      Remover loja (remoção lógica)
// @Tags         stores
// @Security     Bearer
// @Param        id  path  string  true  "ID da loja"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stores/{id} [delete]
func (h *StoreHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetIdentity(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// LinkSupplier godoc
// @Summary      Vincular fornecedor à loja
// @Tags         stores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da loja"
// @Param        body  body  dto.LinkSupplierRequest  true  "supplier_id"
// @Success      201   {object}  dto.Response{data=dto.StoreSupplierResponse}
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stores/{id}/suppliers [post]
func (h *StoreHandler) LinkSupplier(c *fiber.Ctx) error {
	var in dto.LinkSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.SupplierID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "supplier_id é obrigatório"))
	}
	out, err := h.uc.LinkSupplier(GetIdentity(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("fornecedor vinculado", out))
}

// ListSuppliers godoc
// @Summary      Listar fornecedores vinculados à loja
// @Tags         stores
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID da loja"
// @Success      200  {object}  dto.Response{data=[]dto.StoreSupplierResponse}
// @Router       /api/stores/{id}/suppliers [get]
func (h *StoreHandler) ListSuppliers(c *fiber.Ctx) error {
	out, err := h.uc.ListSuppliers(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("vínculos da loja", out))
}

// UnlinkSupplier godoc
// @Summary      Desvincular fornecedor da loja
// @Tags         stores
// @Security     Bearer
// @Param        id          path  string  true  "ID da loja"
// @Param        supplierId  path  string  true  "ID do fornecedor"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stores/{id}/suppliers/{supplierId} [delete]
func (h *StoreHandler) UnlinkSupplier(c *fiber.Ctx) error {
	if err := h.uc.UnlinkSupplier(GetIdentity(c), c.Params("id"), c.Params("supplierId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
