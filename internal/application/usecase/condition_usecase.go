package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/abastece/abastece-api/internal/application/dto"
	"github.com/abastece/abastece-api/internal/domain"
	"github.com/abastece/abastece-api/internal/domain/authz"
	"github.com/abastece/abastece-api/internal/domain/entity"
	"github.com/abastece/abastece-api/internal/domain/pricing"
	"github.com/abastece/abastece-api/internal/domain/repository"
	"github.com/abastece/abastece-api/pkg/brdoc"
)

// ConditionUseCase resolve e administra condições comerciais por (fornecedor, UF).
type ConditionUseCase struct {
	repo         repository.ConditionRepository
	supplierRepo repository.SupplierRepository
}

// NewConditionUseCase constrói o caso de uso.
func NewConditionUseCase(repo repository.ConditionRepository, supplierRepo repository.SupplierRepository) *ConditionUseCase {
	return &ConditionUseCase{repo: repo, supplierRepo: supplierRepo}
}

// Resolve devolve a condição ativa do par (fornecedor, UF) ou nil — ausência
// é válida e o chamador usa os padrões. UF fora do conjunto -> ErrInvalidInput.
func (uc *ConditionUseCase) Resolve(supplierID, uf string) (*dto.ConditionResponse, error) {
	if !brdoc.IsValidUF(uf) {
		return nil, domain.ErrInvalidInput
	}
	condition, err := uc.repo.GetBySupplierAndUF(supplierID, brdoc.NormalizeUF(uf))
	if err != nil {
		return nil, err
	}
	if condition == nil {
		return nil, nil
	}
	return toConditionResponse(condition), nil
}

// Create cria uma condição comercial para um fornecedor do chamador.
// Par (fornecedor, UF) já coberto por condição ativa -> ErrDuplicate.
// O índice único do banco fecha a corrida entre criações concorrentes;
// a checagem aqui só antecipa o erro.
func (uc *ConditionUseCase) Create(caller authz.Identity, in dto.CreateConditionRequest) (*dto.ConditionResponse, error) {
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
	if !brdoc.IsValidUF(in.UF) {
		return nil, domain.ErrInvalidInput
	}
	if !pricing.ValidPercent(in.CashbackPercent) || in.ExtraTermDays < 0 {
		return nil, domain.ErrInvalidInput
	}
	uf := brdoc.NormalizeUF(in.UF)
	existing, err := uc.repo.GetBySupplierAndUF(in.SupplierID, uf)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	condition := &entity.CommercialCondition{
		ID:              uuid.New().String(),
		SupplierID:      in.SupplierID,
		UF:              uf,
		CashbackPercent: in.CashbackPercent,
		ExtraTermDays:   in.ExtraTermDays,
		PriceVariance:   in.PriceVariance,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(condition); err != nil {
		return nil, err
	}
	return toConditionResponse(condition), nil
}

// GetByID obtém uma condição por ID.
func (uc *ConditionUseCase) GetByID(id string) (*dto.ConditionResponse, error) {
	condition, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if condition == nil {
		return nil, domain.ErrNotFound
	}
	return toConditionResponse(condition), nil
}

// ListBySupplier lista as condições ativas de um fornecedor.
func (uc *ConditionUseCase) ListBySupplier(supplierID string) ([]dto.ConditionResponse, error) {
	list, err := uc.repo.ListBySupplier(supplierID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ConditionResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toConditionResponse(c))
	}
	return out, nil
}

// Update atualiza uma condição de um fornecedor do chamador. UF é imutável.
func (uc *ConditionUseCase) Update(caller authz.Identity, id string, in dto.UpdateConditionRequest) (*dto.ConditionResponse, error) {
	condition, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if condition == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.assertConditionOwner(caller, condition); err != nil {
		return nil, err
	}
	if in.CashbackPercent != nil {
		if !pricing.ValidPercent(*in.CashbackPercent) {
			return nil, domain.ErrInvalidInput
		}
		condition.CashbackPercent = *in.CashbackPercent
	}
	if in.ExtraTermDays != nil {
		if *in.ExtraTermDays < 0 {
			return nil, domain.ErrInvalidInput
		}
		condition.ExtraTermDays = *in.ExtraTermDays
	}
	if in.PriceVariance != nil {
		condition.PriceVariance = *in.PriceVariance
	}
	condition.UpdatedAt = time.Now()
	if err := uc.repo.Update(condition); err != nil {
		return nil, err
	}
	return toConditionResponse(condition), nil
}

// Delete remove logicamente uma condição de um fornecedor do chamador.
func (uc *ConditionUseCase) Delete(caller authz.Identity, id string) error {
	condition, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if condition == nil {
		return domain.ErrNotFound
	}
	if err := uc.assertConditionOwner(caller, condition); err != nil {
		return err
	}
	return uc.repo.SoftDelete(id)
}

func (uc *ConditionUseCase) assertConditionOwner(caller authz.Identity, condition *entity.CommercialCondition) error {
	supplier, err := uc.supplierRepo.GetByID(condition.SupplierID)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	return authz.AssertOwner(caller, supplier.UserID)
}

func toConditionResponse(c *entity.CommercialCondition) *dto.ConditionResponse {
	if c == nil {
		return nil
	}
	return &dto.ConditionResponse{
		ID:              c.ID,
		SupplierID:      c.SupplierID,
		UF:              c.UF,
		CashbackPercent: c.CashbackPercent,
		ExtraTermDays:   c.ExtraTermDays,
		PriceVariance:   c.PriceVariance,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}
