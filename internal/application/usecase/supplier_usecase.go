package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/abastece/abastece-api/internal/application/dto"
	"github.com/abastece/abastece-api/internal/domain"
	"github.com/abastece/abastece-api/internal/domain/authz"
	"github.com/abastece/abastece-api/internal/domain/entity"
	"github.com/abastece/abastece-api/internal/domain/repository"
	"github.com/abastece/abastece-api/pkg/brdoc"
)

// SupplierUseCase casos de uso CRUD para fornecedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase constrói o caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create cria um fornecedor pertencente ao chamador.
// CNPJ inválido -> ErrInvalidInput; CNPJ já usado por fornecedor ativo -> ErrDuplicate.
func (uc *SupplierUseCase) Create(caller authz.Identity, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if err := authz.AssertRole(caller, entity.RoleSupplier); err != nil {
		return nil, err
	}
	if !brdoc.IsValidCNPJ(in.CNPJ) {
		return nil, domain.ErrInvalidInput
	}
	if in.LegalName == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCNPJ(in.CNPJ)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:          uuid.New().String(),
		UserID:      caller.UserID,
		CNPJ:        in.CNPJ,
		LegalName:   in.LegalName,
		TradeName:   in.TradeName,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID obtém um fornecedor por ID. Removido = não encontrado.
func (uc *SupplierUseCase) GetByID(id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	return toSupplierResponse(supplier), nil
}

// List lista fornecedores ativos com paginação.
func (uc *SupplierUseCase) List(limit, offset int) (*dto.SupplierListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update atualiza um fornecedor do chamador. CNPJ não muda após a criação.
func (uc *SupplierUseCase) Update(caller authz.Identity, id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if err := authz.AssertOwner(caller, supplier.UserID); err != nil {
		return nil, err
	}
	if in.LegalName != nil {
		if *in.LegalName == "" {
			return nil, domain.ErrInvalidInput
		}
		supplier.LegalName = *in.LegalName
	}
	if in.TradeName != nil {
		supplier.TradeName = *in.TradeName
	}
	if in.Description != nil {
		supplier.Description = *in.Description
	}
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Delete remove logicamente um fornecedor do chamador.
func (uc *SupplierUseCase) Delete(caller authz.Identity, id string) error {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	if err := authz.AssertOwner(caller, supplier.UserID); err != nil {
		return err
	}
	return uc.repo.SoftDelete(id)
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:          s.ID,
		UserID:      s.UserID,
		CNPJ:        s.CNPJ,
		LegalName:   s.LegalName,
		TradeName:   s.TradeName,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
