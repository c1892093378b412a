package domain

import (
	"time"
)

// OrderItem é um item persistido de um pedido local. ProductID é nulo
// quando o SKU do marketplace não existia no catálogo na criação.
type OrderItem struct {
	OrderID   string  `json:"order_id"`
	ProductID *string `json:"product_id"`
	SKU       string  `json:"sku"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

// OrderProfit é a linha do relatório de lucro para um pedido
type OrderProfit struct {
	OrderID       string  `json:"order_id"`
	Marketplace   string  `json:"marketplace"`
	Revenue       float64 `json:"revenue"`
	Cost          float64 `json:"cost"`
	Commission    float64 `json:"commission"`
	Profit        float64 `json:"profit"`
	MarginPercent float64 `json:"margin_percent"`
}

// ProfitReport consolida receita, custo e lucro dos pedidos sincronizados
// em um período
type ProfitReport struct {
	Since           time.Time     `json:"since"`
	Until           time.Time     `json:"until"`
	Orders          []OrderProfit `json:"orders"`
	TotalRevenue    float64       `json:"total_revenue"`
	TotalCost       float64       `json:"total_cost"`
	TotalCommission float64       `json:"total_commission"`
	TotalProfit     float64       `json:"total_profit"`
	MarginPercent   float64       `json:"margin_percent"`
}
