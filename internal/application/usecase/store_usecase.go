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

// StoreUseCase casos de uso CRUD para lojas e vínculos loja↔fornecedor.
// A checagem de existência de endereço entra como colaborador explícito,
// não como consulta escondida dentro do método.
type StoreUseCase struct {
	repo         repository.StoreRepository
	linkRepo     repository.StoreSupplierRepository
	supplierRepo repository.SupplierRepository
	addressCheck repository.AddressExistenceChecker
}

// NewStoreUseCase constrói o caso de uso.
func NewStoreUseCase(
	repo repository.StoreRepository,
	linkRepo repository.StoreSupplierRepository,
	supplierRepo repository.SupplierRepository,
	addressCheck repository.AddressExistenceChecker,
) *StoreUseCase {
	return &StoreUseCase{repo: repo, linkRepo: linkRepo, supplierRepo: supplierRepo, addressCheck: addressCheck}
}

// Create cria uma loja pertencente ao chamador.
func (uc *StoreUseCase) Create(caller authz.Identity, in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	if err := authz.AssertRole(caller, entity.RoleStore); err != nil {
		return nil, err
	}
	if in.Name == "" || !brdoc.IsValidCNPJ(in.CNPJ) {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCNPJ(in.CNPJ)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.AddressID != nil {
		ok, err := uc.addressCheck.Exists(*in.AddressID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	store := &entity.Store{
		ID:        uuid.New().String(),
		UserID:    caller.UserID,
		Name:      in.Name,
		CNPJ:      in.CNPJ,
		AddressID: in.AddressID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// GetByID obtém uma loja por ID. Removida = não encontrada.
func (uc *StoreUseCase) GetByID(id string) (*dto.StoreResponse, error) {
	store, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	return toStoreResponse(store), nil
}

// List lista lojas ativas com paginação.
func (uc *StoreUseCase) List(limit, offset int) (*dto.StoreListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StoreResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStoreResponse(s))
	}
	return &dto.StoreListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update atualiza uma loja do chamador.
func (uc *StoreUseCase) Update(caller authz.Identity, id string, in dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	store, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	if err := authz.AssertOwner(caller, store.UserID); err != nil {
		return nil, err
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		store.Name = *in.Name
	}
	if in.AddressID != nil {
		ok, err := uc.addressCheck.Exists(*in.AddressID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrNotFound
		}
		store.AddressID = in.AddressID
	}
	store.UpdatedAt = time.Now()
	if err := uc.repo.Update(store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// Delete remove logicamente uma loja do chamador.
func (uc *StoreUseCase) Delete(caller authz.Identity, id string) error {
	store, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if store == nil {
		return domain.ErrNotFound
	}
	if err := authz.AssertOwner(caller, store.UserID); err != nil {
		return err
	}
	return uc.repo.SoftDelete(id)
}

// LinkSupplier vincula um fornecedor a uma loja do chamador.
// No máximo um vínculo ativo por par (loja, fornecedor) -> ErrDuplicate.
func (uc *StoreUseCase) LinkSupplier(caller authz.Identity, storeID string, in dto.LinkSupplierRequest) (*dto.StoreSupplierResponse, error) {
	store, err := uc.repo.GetByID(storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	// A posse é checada antes da existência do fornecedor: loja de terceiro
	// falha com ErrForbidden mesmo quando ambos os IDs existem.
	if err := authz.AssertOwner(caller, store.UserID); err != nil {
		return nil, err
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.linkRepo.GetActive(storeID, in.SupplierID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	link := &entity.StoreSupplier{
		ID:         uuid.New().String(),
		StoreID:    storeID,
		SupplierID: in.SupplierID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.linkRepo.Create(link); err != nil {
		return nil, err
	}
	return toLinkResponse(link), nil
}

// ListSuppliers lista os vínculos ativos de uma loja.
func (uc *StoreUseCase) ListSuppliers(storeID string) ([]dto.StoreSupplierResponse, error) {
	store, err := uc.repo.GetByID(storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	links, err := uc.linkRepo.ListByStore(storeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StoreSupplierResponse, 0, len(links))
	for _, l := range links {
		out = append(out, *toLinkResponse(l))
	}
	return out, nil
}

// UnlinkSupplier remove logicamente o vínculo de uma loja do chamador.
func (uc *StoreUseCase) UnlinkSupplier(caller authz.Identity, storeID, supplierID string) error {
	store, err := uc.repo.GetByID(storeID)
	if err != nil {
		return err
	}
	if store == nil {
		return domain.ErrNotFound
	}
	if err := authz.AssertOwner(caller, store.UserID); err != nil {
		return err
	}
	link, err := uc.linkRepo.GetActive(storeID, supplierID)
	if err != nil {
		return err
	}
	if link == nil {
		return domain.ErrNotFound
	}
	return uc.linkRepo.SoftDelete(link.ID)
}

func toStoreResponse(s *entity.Store) *dto.StoreResponse {
	if s == nil {
		return nil
	}
	return &dto.StoreResponse{
		ID:        s.ID,
		UserID:    s.UserID,
		Name:      s.Name,
		CNPJ:      s.CNPJ,
		AddressID: s.AddressID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toLinkResponse(l *entity.StoreSupplier) *dto.StoreSupplierResponse {
	if l == nil {
		return nil
	}
	return &dto.StoreSupplierResponse{
		ID:         l.ID,
		StoreID:    l.StoreID,
		SupplierID: l.SupplierID,
		CreatedAt:  l.CreatedAt,
	}
}
