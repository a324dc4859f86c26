package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abastece/abastece-api/internal/application/dto"
	"github.com/abastece/abastece-api/internal/application/usecase"
	"github.com/abastece/abastece-api/internal/domain"
	"github.com/abastece/abastece-api/internal/domain/authz"
	"github.com/abastece/abastece-api/internal/domain/entity"
)

func conditionFixture() (*usecase.ConditionUseCase, *fakeConditionRepo, *fakeSupplierRepo) {
	suppliers := newFakeSupplierRepo()
	conditions := newFakeConditionRepo()
	_ = suppliers.Create(&entity.Supplier{
		ID: "sup-1", UserID: "user-sup", CNPJ: "11222333000181", LegalName: "Distribuidora Alfa LTDA",
	})
	_ = conditions.Create(&entity.CommercialCondition{
		ID: "cond-sp", SupplierID: "sup-1", UF: "SP",
		CashbackPercent: decimal.NewFromInt(2),
		ExtraTermDays:   3,
		PriceVariance:   decimal.NewFromInt(-1),
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	})
	return usecase.NewConditionUseCase(conditions, suppliers), conditions, suppliers
}

func supplierOwner() authz.Identity {
	return authz.Identity{UserID: "user-sup", Role: entity.RoleSupplier}
}

func TestConditionResolve_ParCoberto(t *testing.T) {
	uc, _, _ := conditionFixture()

	out, err := uc.Resolve("sup-1", "sp")
	require.NoError(t, err)
	require.NotNil(t, out, "UF em minúsculas deve resolver a mesma condição")

	assert.Equal(t, "cond-sp", out.ID)
	assert.Equal(t, "SP", out.UF)
	assert.Equal(t, 3, out.ExtraTermDays)
}

func TestConditionResolve_AusenciaNaoEhErro(t *testing.T) {
	uc, _, _ := conditionFixture()

	out, err := uc.Resolve("sup-1", "RJ")
	require.NoError(t, err)
	assert.Nil(t, out, "par sem condição devolve nil para o chamador usar os padrões")
}

func TestConditionResolve_UFInvalida(t *testing.T) {
	uc, _, _ := conditionFixture()

	_, err := uc.Resolve("sup-1", "XX")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConditionCreate_ParDuplicado(t *testing.T) {
	uc, _, _ := conditionFixture()

	_, err := uc.Create(supplierOwner(), dto.CreateConditionRequest{
		SupplierID:      "sup-1",
		UF:              "SP",
		CashbackPercent: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestConditionCreate_DonoDeOutroFornecedor(t *testing.T) {
	uc, _, _ := conditionFixture()
	intruso := authz.Identity{UserID: "user-outro", Role: entity.RoleSupplier}

	_, err := uc.Create(intruso, dto.CreateConditionRequest{
		SupplierID: "sup-1",
		UF:         "RJ",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestConditionCreate_NormalizaUF(t *testing.T) {
	uc, _, _ := conditionFixture()

	out, err := uc.Create(supplierOwner(), dto.CreateConditionRequest{
		SupplierID:      "sup-1",
		UF:              " mg ",
		CashbackPercent: decimal.NewFromInt(5),
		ExtraTermDays:   2,
	})
	require.NoError(t, err)
	assert.Equal(t, "MG", out.UF)
}

func TestConditionCreate_CashbackForaDoIntervalo(t *testing.T) {
	uc, _, _ := conditionFixture()

	_, err := uc.Create(supplierOwner(), dto.CreateConditionRequest{
		SupplierID:      "sup-1",
		UF:              "RJ",
		CashbackPercent: decimal.NewFromInt(101),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConditionDelete_DepoisResolveDevolveNil(t *testing.T) {
	uc, _, _ := conditionFixture()

	require.NoError(t, uc.Delete(supplierOwner(), "cond-sp"))

	out, err := uc.Resolve("sup-1", "SP")
	require.NoError(t, err)
	assert.Nil(t, out, "condição removida não participa mais da resolução")
}

func TestConditionUpdate_UFImutavel(t *testing.T) {
	uc, _, _ := conditionFixture()
	newCashback := decimal.NewFromInt(4)

	out, err := uc.Update(supplierOwner(), "cond-sp", dto.UpdateConditionRequest{
		CashbackPercent: &newCashback,
	})
	require.NoError(t, err)

	assert.Equal(t, "SP", out.UF)
	assert.True(t, out.CashbackPercent.Equal(newCashback))
}
