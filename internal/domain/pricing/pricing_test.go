package pricing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abastece/abastece-api/internal/domain/entity"
	"github.com/abastece/abastece-api/internal/domain/pricing"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func campaign(name string, minValue *decimal.Decimal, minQty *int, discount string, status string, createdAt time.Time) *entity.Campaign {
	return &entity.Campaign{
		ID:              name,
		SupplierID:      "sup-1",
		Name:            name,
		MinValue:        minValue,
		MinQuantity:     minQty,
		DiscountPercent: dec(discount),
		Status:          status,
		CreatedAt:       createdAt,
	}
}

func ptrDec(s string) *decimal.Decimal { d := dec(s); return &d }
func ptrInt(n int) *int                { return &n }

func TestLineSubtotal(t *testing.T) {
	assert.True(t, pricing.LineSubtotal(3, dec("40")).Equal(dec("120")))
	assert.True(t, pricing.LineSubtotal(1, dec("0")).Equal(decimal.Zero))
	assert.True(t, pricing.LineSubtotal(2, dec("10.55")).Equal(dec("21.10")))
}

// Cenário da regra "10% acima de 100": 3 itens de 40 -> 120 -> desconto aplica -> 108.00.
func TestApplyDiscount_CampanhaElegivel(t *testing.T) {
	c := campaign("10off", ptrDec("100"), nil, "10", entity.CampaignStatusActive, time.Now())

	candidate := pricing.LineSubtotal(3, dec("40"))
	require.True(t, candidate.Equal(dec("120")))

	selected := pricing.SelectCampaign([]*entity.Campaign{c}, candidate, 3)
	require.NotNil(t, selected)

	total := pricing.ApplyDiscount(selected, candidate)
	assert.Equal(t, "108.00", total.StringFixed(2))
}

// Mesmo desconto, valor candidato 90 (abaixo do piso) -> campanha não selecionada -> 90.00.
func TestSelectCampaign_AbaixoDoPiso(t *testing.T) {
	c := campaign("10off", ptrDec("100"), nil, "10", entity.CampaignStatusActive, time.Now())

	selected := pricing.SelectCampaign([]*entity.Campaign{c}, dec("90"), 3)
	assert.Nil(t, selected)
	assert.Equal(t, "90.00", pricing.ApplyDiscount(selected, dec("90")).Round(2).StringFixed(2))
}

func TestSelectCampaign_PisoDeQuantidade(t *testing.T) {
	c := campaign("qty5", nil, ptrInt(5), "15", entity.CampaignStatusActive, time.Now())

	assert.Nil(t, pricing.SelectCampaign([]*entity.Campaign{c}, dec("1000"), 4))
	assert.NotNil(t, pricing.SelectCampaign([]*entity.Campaign{c}, dec("1000"), 5))
}

// Campanha inativa, expirada ou soft-deleted nunca altera o valor.
func TestApplyDiscount_CampanhaNaoAtiva(t *testing.T) {
	now := time.Now()
	inactive := campaign("off", nil, nil, "50", entity.CampaignStatusInactive, now)
	expired := campaign("exp", nil, nil, "50", entity.CampaignStatusExpired, now)
	deleted := campaign("del", nil, nil, "50", entity.CampaignStatusActive, now)
	deleted.DeletedAt = &now

	for _, c := range []*entity.Campaign{inactive, expired, deleted, nil} {
		got := pricing.ApplyDiscount(c, dec("200"))
		assert.True(t, got.Equal(dec("200")), "valor deve ficar inalterado")
	}
}

func TestSelectCampaign_IgnoraNaoAtivas(t *testing.T) {
	now := time.Now()
	inactive := campaign("off", nil, nil, "90", entity.CampaignStatusInactive, now)
	active := campaign("on", nil, nil, "5", entity.CampaignStatusActive, now)

	selected := pricing.SelectCampaign([]*entity.Campaign{inactive, active}, dec("100"), 1)
	require.NotNil(t, selected)
	assert.Equal(t, "on", selected.Name, "campanha inativa não concorre mesmo com desconto maior")
}

// Desempate: maior desconto vence; empate vai para a criação mais antiga.
func TestSelectCampaign_Desempate(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	small := campaign("small", nil, nil, "5", entity.CampaignStatusActive, base)
	bigNew := campaign("big-new", nil, nil, "20", entity.CampaignStatusActive, base.Add(48*time.Hour))
	bigOld := campaign("big-old", nil, nil, "20", entity.CampaignStatusActive, base.Add(24*time.Hour))

	selected := pricing.SelectCampaign([]*entity.Campaign{small, bigNew, bigOld}, dec("100"), 1)
	require.NotNil(t, selected)
	assert.Equal(t, "big-old", selected.Name)

	// Ordem de entrada não muda o resultado
	selected = pricing.SelectCampaign([]*entity.Campaign{bigOld, small, bigNew}, dec("100"), 1)
	require.NotNil(t, selected)
	assert.Equal(t, "big-old", selected.Name)
}

// Arredondamento: metade para cima, 2 casas.
func TestApplyDiscount_Arredondamento(t *testing.T) {
	c := campaign("10off", nil, nil, "10", entity.CampaignStatusActive, time.Now())

	// 100.05 - 10.005 = 90.045 -> 90.05
	assert.Equal(t, "90.05", pricing.ApplyDiscount(c, dec("100.05")).StringFixed(2))

	full := campaign("100off", nil, nil, "100", entity.CampaignStatusActive, time.Now())
	got := pricing.ApplyDiscount(full, dec("59.90"))
	assert.True(t, got.Equal(decimal.Zero), "desconto total zera, nunca negativa")
}

func TestValidPercent(t *testing.T) {
	assert.True(t, pricing.ValidPercent(dec("0")))
	assert.True(t, pricing.ValidPercent(dec("100")))
	assert.True(t, pricing.ValidPercent(dec("12.5")))
	assert.False(t, pricing.ValidPercent(dec("-0.01")))
	assert.False(t, pricing.ValidPercent(dec("100.01")))
}
