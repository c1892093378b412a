package domain

import (
	"time"
)

// MarketplaceKind identifica cada integração de marketplace suportada.
// Novas integrações são adicionadas como novas variantes deste enum.
type MarketplaceKind string

const (
	MarketplaceKindTrendyol    MarketplaceKind = "trendyol"
	MarketplaceKindHepsiburada MarketplaceKind = "hepsiburada"
	MarketplaceKindN11         MarketplaceKind = "n11"
)

// SupportedMarketplaceKinds contém o conjunto fechado de integrações suportadas
var SupportedMarketplaceKinds = []MarketplaceKind{
	MarketplaceKindTrendyol,
	MarketplaceKindHepsiburada,
	MarketplaceKindN11,
}

func (k MarketplaceKind) Valid() bool {
	for _, kind := range SupportedMarketplaceKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// MarketplaceAccount representa uma conexão configurada com um marketplace
type MarketplaceAccount struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Kind        MarketplaceKind   `json:"kind"`
	Credentials map[string]string `json:"-"`
	Active      bool              `json:"active"`
	LastSyncAt  *time.Time        `json:"last_sync_at"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type MarketplaceAccountResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Kind       MarketplaceKind `json:"kind"`
	Active     bool            `json:"active"`
	LastSyncAt *time.Time      `json:"last_sync_at"`
}

func (a *MarketplaceAccount) ToResponse() *MarketplaceAccountResponse {
	return &MarketplaceAccountResponse{
		ID:         a.ID,
		Name:       a.Name,
		Kind:       a.Kind,
		Active:     a.Active,
		LastSyncAt: a.LastSyncAt,
	}
}

type SaveMarketplaceAccountRequest struct {
	ID          string            `json:"id,omitempty"`
	Name        string            `json:"name"`
	Kind        MarketplaceKind   `json:"kind"`
	Credentials map[string]string `json:"credentials"`
	Active      *bool             `json:"active"`
}
