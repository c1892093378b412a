package domain

import (
	"time"
)

// CostRecord guarda os componentes de custo de um produto e o preço
// calculado a partir deles. Existe no máximo um registro por produto e ele
// é sempre sobrescrito em cada recálculo. CalculatedPrice é um cache:
// sempre derivável dos demais campos pela fórmula do motor de preços.
type CostRecord struct {
	ProductID       string    `json:"product_id"`
	SupplierCost    float64   `json:"supplier_cost"`
	ShippingCost    float64   `json:"shipping_cost"`
	PackagingCost   float64   `json:"packaging_cost"`
	CommissionRate  float64   `json:"commission_rate"`
	TaxRate         float64   `json:"tax_rate"`
	OtherCosts      float64   `json:"other_costs"`
	MarkupRate      float64   `json:"markup_rate"`
	CalculatedPrice float64   `json:"calculated_price"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type UpdateProductCostsRequest struct {
	ProductID      string  `json:"product_id"`
	SupplierCost   float64 `json:"supplier_cost"`
	ShippingCost   float64 `json:"shipping_cost"`
	PackagingCost  float64 `json:"packaging_cost"`
	CommissionRate float64 `json:"commission_rate"`
	TaxRate        float64 `json:"tax_rate"`
	OtherCosts     float64 `json:"other_costs"`
	MarkupRate     float64 `json:"markup_rate"`
}
