package domain

import (
	"time"
)

// StoreProduct é um produto do catálogo local. Marketplaces lista os
// marketplaces para os quais o produto deve ser publicado.
type StoreProduct struct {
	ID            string            `json:"id"`
	SKU           string            `json:"sku"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Price         float64           `json:"price"`
	StockQuantity int               `json:"stock_quantity"`
	VATRate       float64           `json:"vat_rate"`
	Active        bool              `json:"active"`
	Marketplaces  []MarketplaceKind `json:"marketplaces"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// PublishedOn informa se o produto está marcado para o marketplace
func (p *StoreProduct) PublishedOn(kind MarketplaceKind) bool {
	for _, m := range p.Marketplaces {
		if m == kind {
			return true
		}
	}
	return false
}
