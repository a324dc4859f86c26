// Package pricing implementa os serviços de domínio de precificação de pedidos:
// subtotais de linha, seleção determinística de campanha e aplicação de desconto.
// Todas as funções são puras; persistência e autorização ficam nos casos de uso.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/abastece/abastece-api/internal/domain/entity"
)

var oneHundred = decimal.NewFromInt(100)

// LineSubtotal calcula o subtotal de uma linha: quantidade * preço unitário.
func LineSubtotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// SelectCampaign escolhe a campanha aplicável entre as do fornecedor para um
// par (valor, quantidade) candidato. Regra de desempate (determinística):
// maior percentual de desconto vence; empate é resolvido pela criação mais antiga.
// Devolve nil quando nenhuma campanha é elegível — ausência não é erro.
func SelectCampaign(campaigns []*entity.Campaign, candidateValue decimal.Decimal, candidateQuantity int) *entity.Campaign {
	var best *entity.Campaign
	for _, c := range campaigns {
		if !c.Eligible(candidateValue, candidateQuantity) {
			continue
		}
		if best == nil {
			best = c
			continue
		}
		switch {
		case c.DiscountPercent.GreaterThan(best.DiscountPercent):
			best = c
		case c.DiscountPercent.Equal(best.DiscountPercent) && c.CreatedAt.Before(best.CreatedAt):
			best = c
		}
	}
	return best
}

// ApplyDiscount aplica o desconto da campanha sobre o valor original:
// valor - valor * desconto / 100, arredondado para 2 casas (metade para cima),
// nunca negativo. Campanha nula ou inativa devolve o valor inalterado.
func ApplyDiscount(c *entity.Campaign, originalValue decimal.Decimal) decimal.Decimal {
	if !c.IsActive() {
		return originalValue
	}
	discount := originalValue.Mul(c.DiscountPercent).Div(oneHundred)
	result := originalValue.Sub(discount).Round(2)
	if result.IsNegative() {
		return decimal.Zero
	}
	return result
}

// ValidPercent verifica se um percentual está no intervalo [0,100].
func ValidPercent(p decimal.Decimal) bool {
	return !p.IsNegative() && p.LessThanOrEqual(oneHundred)
}
