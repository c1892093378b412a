package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/marketplace-manager-api/internal/domain"
)

func TestCalculatePrice(t *testing.T) {
	tests := []struct {
		name     string
		record   *domain.CostRecord
		expected float64
	}{
		{
			name: "Cadeia completa - custos somados e taxas aplicadas em sequência",
			record: &domain.CostRecord{
				SupplierCost:   100.0,
				ShippingCost:   10.0,
				PackagingCost:  5.0,
				OtherCosts:     5.0,
				CommissionRate: 15.0,
				TaxRate:        20.0,
				MarkupRate:     25.0,
			},
			// (100+10+5+5) * 1.15 * 1.20 * 1.25 = 207.00
			expected: 207.00,
		},
		{
			name: "Comissão, imposto e margem encadeados sobre a base de custo",
			record: &domain.CostRecord{
				SupplierCost:   100.0,
				ShippingCost:   10.0,
				PackagingCost:  5.0,
				OtherCosts:     2.0,
				CommissionRate: 15.0,
				TaxRate:        18.0,
				MarkupRate:     30.0,
			},
			// 117 * 1.15 * 1.18 * 1.30 = 206.3997 -> 206.40
			expected: 206.40,
		},
		{
			name: "Taxas zeradas não entram na cadeia",
			record: &domain.CostRecord{
				SupplierCost:  80.0,
				ShippingCost:  20.0,
				PackagingCost: 0.0,
				OtherCosts:    0.0,
			},
			expected: 100.00,
		},
		{
			name: "Taxa negativa é tratada como ausente",
			record: &domain.CostRecord{
				SupplierCost:   50.0,
				CommissionRate: -10.0,
				MarkupRate:     10.0,
			},
			expected: 55.00,
		},
		{
			name: "Apenas margem sobre a soma dos custos",
			record: &domain.CostRecord{
				SupplierCost:  30.0,
				ShippingCost:  7.5,
				PackagingCost: 2.5,
				MarkupRate:    50.0,
			},
			expected: 60.00,
		},
		{
			name: "Arredondamento único no resultado final",
			record: &domain.CostRecord{
				SupplierCost:   33.33,
				CommissionRate: 7.5,
				TaxRate:        18.0,
			},
			// 33.33 * 1.075 * 1.18 = 42.2787... -> 42.28
			expected: 42.28,
		},
		{
			name:     "Registro vazio resulta em preço zero",
			record:   &domain.CostRecord{},
			expected: 0.00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculatePrice(tt.record))
		})
	}
}

func TestCalculatePrice_Deterministico(t *testing.T) {
	record := &domain.CostRecord{
		SupplierCost:   19.99,
		ShippingCost:   4.01,
		CommissionRate: 12.0,
		TaxRate:        20.0,
		MarkupRate:     35.0,
	}

	first := CalculatePrice(record)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, CalculatePrice(record))
	}
}
