package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abastece/abastece-api/internal/application/dto"
	"github.com/abastece/abastece-api/internal/application/usecase"
	"github.com/abastece/abastece-api/internal/domain"
	"github.com/abastece/abastece-api/internal/domain/authz"
	"github.com/abastece/abastece-api/internal/domain/entity"
)

func storeFixture() (*usecase.StoreUseCase, *fakeStoreRepo, *fakeLinkRepo) {
	stores := newFakeStoreRepo()
	links := newFakeLinkRepo()
	suppliers := newFakeSupplierRepo()
	addresses := &fakeAddressCheck{existing: map[string]bool{"addr-1": true}}

	_ = suppliers.Create(&entity.Supplier{
		ID: "sup-1", UserID: "user-sup", CNPJ: "11222333000181", LegalName: "Distribuidora Alfa LTDA",
	})
	_ = stores.Create(&entity.Store{
		ID: "store-1", UserID: "user-store", Name: "Mercado Bom Preço", CNPJ: "11222333000181",
	})
	return usecase.NewStoreUseCase(stores, links, suppliers, addresses), stores, links
}

func storeOwner() authz.Identity {
	return authz.Identity{UserID: "user-store", Role: entity.RoleStore}
}

func TestStoreCreate_CNPJInvalido(t *testing.T) {
	uc, _, _ := storeFixture()

	_, err := uc.Create(storeOwner(), dto.CreateStoreRequest{
		Name: "Loja Nova",
		CNPJ: "11111111111111",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStoreCreate_PapelSupplierBloqueado(t *testing.T) {
	uc, _, _ := storeFixture()

	_, err := uc.Create(supplierOwner(), dto.CreateStoreRequest{
		Name: "Loja do Fornecedor",
		CNPJ: "11222333000181",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestStoreCreate_EnderecoInexistente(t *testing.T) {
	uc, _, _ := storeFixture()
	addr := "addr-fantasma"

	_, err := uc.Create(storeOwner(), dto.CreateStoreRequest{
		Name:      "Loja Nova",
		CNPJ:      "58787651000153",
		AddressID: &addr,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStoreLinkSupplier_CriaVinculo(t *testing.T) {
	uc, _, links := storeFixture()

	out, err := uc.LinkSupplier(storeOwner(), "store-1", dto.LinkSupplierRequest{SupplierID: "sup-1"})
	require.NoError(t, err)

	assert.Equal(t, "store-1", out.StoreID)
	assert.Equal(t, "sup-1", out.SupplierID)

	active, err := links.GetActive("store-1", "sup-1")
	require.NoError(t, err)
	assert.NotNil(t, active)
}

func TestStoreLinkSupplier_ParJaVinculado(t *testing.T) {
	uc, _, _ := storeFixture()

	_, err := uc.LinkSupplier(storeOwner(), "store-1", dto.LinkSupplierRequest{SupplierID: "sup-1"})
	require.NoError(t, err)

	_, err = uc.LinkSupplier(storeOwner(), "store-1", dto.LinkSupplierRequest{SupplierID: "sup-1"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestStoreLinkSupplier_LojaDeTerceiro(t *testing.T) {
	uc, _, _ := storeFixture()

	_, err := uc.LinkSupplier(supplierOwner(), "store-1", dto.LinkSupplierRequest{SupplierID: "sup-1"})
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"posse é checada antes da existência do fornecedor")
}

func TestStoreUnlinkSupplier_DepoisGetActiveDevolveNil(t *testing.T) {
	uc, _, links := storeFixture()

	_, err := uc.LinkSupplier(storeOwner(), "store-1", dto.LinkSupplierRequest{SupplierID: "sup-1"})
	require.NoError(t, err)

	require.NoError(t, uc.UnlinkSupplier(storeOwner(), "store-1", "sup-1"))

	active, err := links.GetActive("store-1", "sup-1")
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestStoreUnlinkSupplier_VinculoInexistente(t *testing.T) {
	uc, _, _ := storeFixture()

	err := uc.UnlinkSupplier(storeOwner(), "store-1", "sup-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStoreRelink_AposDesvinculoEhPermitido(t *testing.T) {
	uc, _, _ := storeFixture()

	_, err := uc.LinkSupplier(storeOwner(), "store-1", dto.LinkSupplierRequest{SupplierID: "sup-1"})
	require.NoError(t, err)
	require.NoError(t, uc.UnlinkSupplier(storeOwner(), "store-1", "sup-1"))

	_, err = uc.LinkSupplier(storeOwner(), "store-1", dto.LinkSupplierRequest{SupplierID: "sup-1"})
	assert.NoError(t, err, "novo vínculo após remoção lógica do anterior")
}
