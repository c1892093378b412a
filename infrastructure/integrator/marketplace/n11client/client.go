package n11client

import (
	"github.com/pkg/errors"
	"github.com/vfg2006/marketplace-manager-api/infrastructure/integrator/marketplace/restclient"
	"github.com/vfg2006/marketplace-manager-api/internal/config"
	"github.com/vfg2006/marketplace-manager-api/internal/domain"
)

const marketplaceName = "n11"

// Credentials é o pacote de credenciais tipado da integração n11: apenas o
// par chave/segredo, sem identificadores adicionais de path
type Credentials struct {
	APIKey    string
	APISecret string
}

func ParseCredentials(bundle map[string]string) (Credentials, error) {
	creds := Credentials{
		APIKey:    bundle["api_key"],
		APISecret: bundle["api_secret"],
	}

	if creds.APIKey == "" || creds.APISecret == "" {
		return Credentials{}, errors.New("api_key e api_secret são obrigatórios para o n11")
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
		caller: restclient.New(marketplaceName, cfg.N11.URL, creds.APIKey, creds.APISecret),
	}
}

func (c *Client) Kind() domain.MarketplaceKind {
	return domain.MarketplaceKindN11
}

var remoteToCanonical = map[string]domain.OrderStatus{
	"Created":       domain.OrderStatusProcessing,
	"Approved":      domain.OrderStatusProcessing,
	"Preparing":     domain.OrderStatusProcessing,
	"Shipped":       domain.OrderStatusShipped,
	"Delivered":     domain.OrderStatusCompleted,
	"Completed":     domain.OrderStatusCompleted,
	"Rejected":      domain.OrderStatusCancelled,
	"Cancelled":     domain.OrderStatusCancelled,
	"ClaimedReturn": domain.OrderStatusRefunded,
	"Returned":      domain.OrderStatusRefunded,
}

var canonicalToRemote = map[domain.OrderStatus]string{
	domain.OrderStatusPending:    "Created",
	domain.OrderStatusProcessing: "Preparing",
	domain.OrderStatusShipped:    "Shipped",
	domain.OrderStatusCompleted:  "Delivered",
	domain.OrderStatusCancelled:  "Cancelled",
	domain.OrderStatusRefunded:   "Returned",
}

func (c *Client) TranslateRemoteStatus(remoteStatus string) (domain.OrderStatus, bool) {
	status, ok := remoteToCanonical[remoteStatus]
	return status, ok
}
