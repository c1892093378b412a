package hepsiburadaclient

import (
	"github.com/pkg/errors"
	"github.com/vfg2006/marketplace-manager-api/infrastructure/integrator/marketplace/restclient"
	"github.com/vfg2006/marketplace-manager-api/internal/config"
	"github.com/vfg2006/marketplace-manager-api/internal/domain"
)

const marketplaceName = "hepsiburada"

// Credentials é o pacote de credenciais tipado da integração Hepsiburada:
// par chave/segredo mais o identificador do lojista
type Credentials struct {
	APIKey     string
	APISecret  string
	MerchantID string
}

func ParseCredentials(bundle map[string]string) (Credentials, error) {
	creds := Credentials{
		APIKey:     bundle["api_key"],
		APISecret:  bundle["api_secret"],
		MerchantID: bundle["merchant_id"],
	}

	if creds.APIKey == "" || creds.APISecret == "" {
		return Credentials{}, errors.New("api_key e api_secret são obrigatórios para o Hepsiburada")
	}

	if creds.MerchantID == "" {
		return Credentials{}, errors.New("merchant_id é obrigatório para o Hepsiburada")
	}

	return creds, nil
}

type Client struct {
	creds  Credentials
	caller *restclient.Caller
}

func NewClient(cfg *config.Config, creds Credentials) *Client {
	return &Client{
		creds:  creds,
		caller: restclient.New(marketplaceName, cfg.Hepsiburada.URL, creds.APIKey, creds.APISecret),
	}
}

func (c *Client) Kind() domain.MarketplaceKind {
	return domain.MarketplaceKindHepsiburada
}

var remoteToCanonical = map[string]domain.OrderStatus{
	"Open":            domain.OrderStatusProcessing,
	"Approved":        domain.OrderStatusProcessing,
	"Packaged":        domain.OrderStatusProcessing,
	"ReadyToShip":     domain.OrderStatusProcessing,
	"InTransit":       domain.OrderStatusShipped,
	"Shipped":         domain.OrderStatusShipped,
	"Delivered":       domain.OrderStatusCompleted,
	"CancelledByUser": domain.OrderStatusCancelled,
	"CancelledBySap":  domain.OrderStatusCancelled,
	"ClaimCreated":    domain.OrderStatusRefunded,
	"Returned":        domain.OrderStatusRefunded,
}

var canonicalToRemote = map[domain.OrderStatus]string{
	domain.OrderStatusPending:    "Open",
	domain.OrderStatusProcessing: "Packaged",
	domain.OrderStatusShipped:    "Shipped",
	domain.OrderStatusCompleted:  "Delivered",
	domain.OrderStatusCancelled:  "CancelledByMerchant",
	domain.OrderStatusRefunded:   "Returned",
}

func (c *Client) TranslateRemoteStatus(remoteStatus string) (domain.OrderStatus, bool) {
	status, ok := remoteToCanonical[remoteStatus]
	return status, ok
}
