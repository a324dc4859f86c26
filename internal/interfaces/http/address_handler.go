package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/abastece/abastece-api/internal/application/dto"
	"github.com/abastece/abastece-api/internal/application/usecase"
)

// AddressHandler trata as requisições HTTP para Address (protegido, escopo do dono).
type AddressHandler struct {
	uc *usecase.AddressUseCase
}

// NewAddressHandler constrói o handler.
func NewAddressHandler(uc *usecase.AddressUseCase) *AddressHandler {
	return &AddressHandler{uc: uc}
}

// Create godoc
// @Summary      Criar endereço
// @Tags         addresses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAddressRequest  true  "Dados do endereço"
// @Success      201   {object}  dto.Response{data=dto.AddressResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/addresses [post]
func (h *AddressHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAddressRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Street == "" || in.City == "" || in.UF == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "street, city e uf são obrigatórios"))
	}
	out, err := h.uc.Create(GetIdentity(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("endereço criado", out))
}

// GetByID godoc
// @Summary      Obter endereço por ID (apenas do próprio usuário)
// @Tags         addresses
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do endereço"
// @Success      200  {object}  dto.Response{data=dto.AddressResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/addresses/{id} [get]
func (h *AddressHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetIdentity(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("endereço", out))
}

// List godoc
// @Summary      Listar endereços do usuário autenticado
// @Tags         addresses
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.AddressResponse}
// @Router       /api/addresses [get]
func (h *AddressHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListMine(GetIdentity(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("endereços", out))
}

// Update godoc
// @Summary      Atualizar endereço
// @Tags         addresses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do endereço"
// @Param        body  body  dto.UpdateAddressRequest  true  "Dados a atualizar"
// @Success      200   {object}  dto.Response{data=dto.AddressResponse}
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/addresses/{id} [put]
func (h *AddressHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAddressRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(GetIdentity(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("endereço atualizado", out))
}

// Delete godoc
// @Summary      Remover endereço (remoção lógica)
// @Tags         addresses
// @Security     Bearer
// @Param        id  path  string  true  "ID do endereço"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/addresses/{id} [delete]
func (h *AddressHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetIdentity(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
