package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/abastece/abastece-api/internal/application/dto"
	"github.com/abastece/abastece-api/internal/domain"
	"github.com/abastece/abastece-api/internal/domain/authz"
	"github.com/abastece/abastece-api/internal/domain/entity"
	"github.com/abastece/abastece-api/internal/domain/pricing"
	"github.com/abastece/abastece-api/internal/domain/repository"
)

// CampaignUseCase administra campanhas promocionais de fornecedores.
// A seleção/aplicação de desconto fica no pacote pricing; aqui só CRUD e status.
type CampaignUseCase struct {
	repo         repository.CampaignRepository
	supplierRepo repository.SupplierRepository
}

// NewCampaignUseCase constrói o caso de uso.
func NewCampaignUseCase(repo repository.CampaignRepository, supplierRepo repository.SupplierRepository) *CampaignUseCase {
	return &CampaignUseCase{repo: repo, supplierRepo: supplierRepo}
}

// Create cria uma campanha para um fornecedor do chamador.
// Nome já usado por campanha ativa -> ErrDuplicate. Campanha nasce ativa.
func (uc *CampaignUseCase) Create(caller authz.Identity, in dto.CreateCampaignRequest) (*dto.CampaignResponse, error) {
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if err := authz.AssertOwner(caller, supplier.UserID); err != nil {
		return nil, err
	}
	if err := validateCampaignFields(in.Name, in.MinValue, in.MinQuantity, in.DiscountPercent); err != nil {
		return nil, err
	}
	existing, _ := uc.repo.GetByName(in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	campaign := &entity.Campaign{
		ID:              uuid.New().String(),
		SupplierID:      in.SupplierID,
		Name:            in.Name,
		Description:     in.Description,
		MinValue:        in.MinValue,
		MinQuantity:     in.MinQuantity,
		DiscountPercent: in.DiscountPercent,
		Status:          entity.CampaignStatusActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(campaign); err != nil {
		return nil, err
	}
	return toCampaignResponse(campaign), nil
}

// GetByID obtém uma campanha por ID. Removida = não encontrada.
func (uc *CampaignUseCase) GetByID(id string) (*dto.CampaignResponse, error) {
	campaign, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, domain.ErrNotFound
	}
	return toCampaignResponse(campaign), nil
}

// ListBySupplier lista as campanhas de um fornecedor (todas as não removidas).
func (uc *CampaignUseCase) ListBySupplier(supplierID string) ([]dto.CampaignResponse, error) {
	list, err := uc.repo.ListBySupplier(supplierID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CampaignResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCampaignResponse(c))
	}
	return out, nil
}

// Update atualiza os campos de uma campanha de um fornecedor do chamador.
func (uc *CampaignUseCase) Update(caller authz.Identity, id string, in dto.UpdateCampaignRequest) (*dto.CampaignResponse, error) {
	campaign, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.assertCampaignOwner(caller, campaign); err != nil {
		return nil, err
	}
	if in.Name != nil && *in.Name != campaign.Name {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		existing, _ := uc.repo.GetByName(*in.Name)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		campaign.Name = *in.Name
	}
	if in.Description != nil {
		campaign.Description = *in.Description
	}
	if in.MinValue != nil {
		if in.MinValue.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		campaign.MinValue = in.MinValue
	}
	if in.MinQuantity != nil {
		if *in.MinQuantity < 1 {
			return nil, domain.ErrInvalidInput
		}
		campaign.MinQuantity = in.MinQuantity
	}
	if in.DiscountPercent != nil {
		if !pricing.ValidPercent(*in.DiscountPercent) {
			return nil, domain.ErrInvalidInput
		}
		campaign.DiscountPercent = *in.DiscountPercent
	}
	campaign.UpdatedAt = time.Now()
	if err := uc.repo.Update(campaign); err != nil {
		return nil, err
	}
	return toCampaignResponse(campaign), nil
}

// UpdateStatus muda o status da campanha (mutação administrativa: dono ou admin).
func (uc *CampaignUseCase) UpdateStatus(caller authz.Identity, id string, in dto.UpdateCampaignStatusRequest) (*dto.CampaignResponse, error) {
	switch in.Status {
	case entity.CampaignStatusActive, entity.CampaignStatusInactive, entity.CampaignStatusExpired:
	default:
		return nil, domain.ErrInvalidInput
	}
	campaign, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.assertCampaignOwner(caller, campaign); err != nil {
		return nil, err
	}
	campaign.Status = in.Status
	campaign.UpdatedAt = time.Now()
	if err := uc.repo.Update(campaign); err != nil {
		return nil, err
	}
	return toCampaignResponse(campaign), nil
}

// Delete remove logicamente uma campanha (nunca apaga fisicamente).
func (uc *CampaignUseCase) Delete(caller authz.Identity, id string) error {
	campaign, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if campaign == nil {
		return domain.ErrNotFound
	}
	if err := uc.assertCampaignOwner(caller, campaign); err != nil {
		return err
	}
	return uc.repo.SoftDelete(id)
}

func (uc *CampaignUseCase) assertCampaignOwner(caller authz.Identity, campaign *entity.Campaign) error {
	supplier, err := uc.supplierRepo.GetByID(campaign.SupplierID)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	return authz.AssertOwner(caller, supplier.UserID)
}

func validateCampaignFields(name string, minValue *decimal.Decimal, minQuantity *int, discount decimal.Decimal) error {
	if name == "" {
		return domain.ErrInvalidInput
	}
	if minValue != nil && minValue.IsNegative() {
		return domain.ErrInvalidInput
	}
	if minQuantity != nil && *minQuantity < 1 {
		return domain.ErrInvalidInput
	}
	if !pricing.ValidPercent(discount) {
		return domain.ErrInvalidInput
	}
	return nil
}

func toCampaignResponse(c *entity.Campaign) *dto.CampaignResponse {
	if c == nil {
		return nil
	}
	return &dto.CampaignResponse{
		ID:              c.ID,
		SupplierID:      c.SupplierID,
		Name:            c.Name,
		Description:     c.Description,
		MinValue:        c.MinValue,
		MinQuantity:     c.MinQuantity,
		DiscountPercent: c.DiscountPercent,
		Status:          c.Status,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}
