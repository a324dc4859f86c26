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

// AddressUseCase casos de uso CRUD para endereços do usuário.
type AddressUseCase struct {
	repo repository.AddressRepository
}

// NewAddressUseCase constrói o caso de uso.
func NewAddressUseCase(repo repository.AddressRepository) *AddressUseCase {
	return &AddressUseCase{repo: repo}
}

// Create cria um endereço pertencente ao chamador. UF fora do conjunto -> ErrInvalidInput.
func (uc *AddressUseCase) Create(caller authz.Identity, in dto.CreateAddressRequest) (*dto.AddressResponse, error) {
	if in.Street == "" || in.Number == "" || in.City == "" || in.ZipCode == "" {
		return nil, domain.ErrInvalidInput
	}
	if !brdoc.IsValidUF(in.UF) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	address := &entity.Address{
		ID:         uuid.New().String(),
		UserID:     caller.UserID,
		Street:     in.Street,
		Number:     in.Number,
		Complement: in.Complement,
		District:   in.District,
		City:       in.City,
		UF:         brdoc.NormalizeUF(in.UF),
		ZipCode:    in.ZipCode,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(address); err != nil {
		return nil, err
	}
	return toAddressResponse(address), nil
}

// GetByID obtém um endereço do chamador.
func (uc *AddressUseCase) GetByID(caller authz.Identity, id string) (*dto.AddressResponse, error) {
	address, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, domain.ErrNotFound
	}
	if err := authz.AssertOwner(caller, address.UserID); err != nil {
		return nil, err
	}
	return toAddressResponse(address), nil
}

// ListMine lista os endereços ativos do chamador.
func (uc *AddressUseCase) ListMine(caller authz.Identity) ([]dto.AddressResponse, error) {
	list, err := uc.repo.ListByUser(caller.UserID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AddressResponse, 0, len(list))
	for _, a := range list {
		out = append(out, *toAddressResponse(a))
	}
	return out, nil
}

// Update atualiza um endereço do chamador.
func (uc *AddressUseCase) Update(caller authz.Identity, id string, in dto.UpdateAddressRequest) (*dto.AddressResponse, error) {
	address, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, domain.ErrNotFound
	}
	if err := authz.AssertOwner(caller, address.UserID); err != nil {
		return nil, err
	}
	if in.Street != nil {
		address.Street = *in.Street
	}
	if in.Number != nil {
		address.Number = *in.Number
	}
	if in.Complement != nil {
		address.Complement = *in.Complement
	}
	if in.District != nil {
		address.District = *in.District
	}
	if in.City != nil {
		address.City = *in.City
	}
	if in.UF != nil {
		if !brdoc.IsValidUF(*in.UF) {
			return nil, domain.ErrInvalidInput
		}
		address.UF = brdoc.NormalizeUF(*in.UF)
	}
	if in.ZipCode != nil {
		address.ZipCode = *in.ZipCode
	}
	address.UpdatedAt = time.Now()
	if err := uc.repo.Update(address); err != nil {
		return nil, err
	}
	return toAddressResponse(address), nil
}

// Delete remove logicamente um endereço do chamador.
func (uc *AddressUseCase) Delete(caller authz.Identity, id string) error {
	address, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if address == nil {
		return domain.ErrNotFound
	}
	if err := authz.AssertOwner(caller, address.UserID); err != nil {
		return err
	}
	return uc.repo.SoftDelete(id)
}

func toAddressResponse(a *entity.Address) *dto.AddressResponse {
	if a == nil {
		return nil
	}
	return &dto.AddressResponse{
		ID:         a.ID,
		UserID:     a.UserID,
		Street:     a.Street,
		Number:     a.Number,
		Complement: a.Complement,
		District:   a.District,
		City:       a.City,
		UF:         a.UF,
		ZipCode:    a.ZipCode,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}
