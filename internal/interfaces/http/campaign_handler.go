package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/abastece/abastece-api/internal/application/dto"
	"github.com/abastece/abastece-api/internal/application/usecase"
)

// CampaignHandler trata as requisições HTTP para Campaign (protegido).
type CampaignHandler struct {
	uc *usecase.CampaignUseCase
}

// NewCampaignHandler constrói o handler.
func NewCampaignHandler(uc *usecase.CampaignUseCase) *CampaignHandler {
	return &CampaignHandler{uc: uc}
}

// Create godoc
// @Summary      Criar campanha promocional
// @Tags         campaigns
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCampaignRequest  true  "Dados da campanha"
// @Success      201   {object}  dto.Response{data=dto.CampaignResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/campaigns [post]
func (h *CampaignHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCampaignRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.SupplierID == "" || in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "supplier_id e name são obrigatórios"))
	}
	out, err := h.uc.Create(GetIdentity(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("campanha criada", out))
}

// GetByID godoc
// @Summary      Obter campanha por ID
// @Tags         campaigns
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da campanha"
// @Success      200  {object}  dto.Response{data=dto.CampaignResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/campaigns/{id} [get]
func (h *CampaignHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("campanha", out))
}

// ListBySupplier godoc
// @Summary      Listar campanhas de um fornecedor
// @Tags         campaigns
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do fornecedor"
// @Success      200  {object}  dto.Response{data=[]dto.CampaignResponse}
// @Router       /api/suppliers/{id}/campaigns [get]
func (h *CampaignHandler) ListBySupplier(c *fiber.Ctx) error {
	out, err := h.uc.ListBySupplier(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("campanhas do fornecedor", out))
}

// Update godoc
// @Summary      Atualizar campanha
// @Tags         campaigns
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da campanha"
// @Param        body  body  dto.UpdateCampaignRequest  true  "Dados a atualizar"
// @Success      200   {object}  dto.Response{data=dto.CampaignResponse}
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/campaigns/{id} [put]
func (h *CampaignHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCampaignRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(GetIdentity(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("campanha atualizada", out))
}

// UpdateStatus godoc
// @Summary      Mudar status da campanha (dono ou admin)
// @Tags         campaigns
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da campanha"
// @Param        body  body  dto.UpdateCampaignStatusRequest  true  "active, inactive ou expired"
// @Success      200   {object}  dto.Response{data=dto.CampaignResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/campaigns/{id}/status [patch]
func (h *CampaignHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateCampaignStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateStatus(GetIdentity(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("status da campanha atualizado", out))
}

// Delete godoc
// @Summary      Remover campanha (remoção lógica)
// @Tags         campaigns
// @Security     Bearer
// @Param        id  path  string  true  "ID da campanha"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/campaigns/{id} [delete]
func (h *CampaignHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetIdentity(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
