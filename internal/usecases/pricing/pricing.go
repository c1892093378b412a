package pricing

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/marketplace-manager-api/internal/domain"
)

var oneHundred = decimal.NewFromInt(100)

// CalculatePrice deriva o preço de venda a partir dos componentes de custo.
// A cadeia é determinística e a ordem importa: soma dos custos, comissão,
// imposto e margem aplicados nessa sequência, cada fator só quando a taxa é
// maior que zero. O arredondamento para duas casas acontece uma única vez,
// no resultado final.
func CalculatePrice(record *domain.CostRecord) float64 {
	price := decimal.NewFromFloat(record.SupplierCost).
		Add(decimal.NewFromFloat(record.ShippingCost)).
		Add(decimal.NewFromFloat(record.PackagingCost)).
		Add(decimal.NewFromFloat(record.OtherCosts))

	price = applyRate(price, record.CommissionRate)
	price = applyRate(price, record.TaxRate)
	price = applyRate(price, record.MarkupRate)

	result, _ := price.Round(2).Float64()
	return result
}

func applyRate(price decimal.Decimal, rate float64) decimal.Decimal {
	if rate <= 0 {
		return price
	}
	factor := decimal.NewFromFloat(rate).Div(oneHundred).Add(decimal.NewFromInt(1))
	return price.Mul(factor)
}
