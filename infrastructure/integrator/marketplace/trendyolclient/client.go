package trendyolclient

import (
	"github.com/pkg/errors"
	"github.com/vfg2006/marketplace-manager-api/infrastructure/integrator/marketplace/restclient"
	"github.com/vfg2006/marketplace-manager-api/internal/config"
	"github.com/vfg2006/marketplace-manager-api/internal/domain"
)

const marketplaceName = "trendyol"

// Credentials é o pacote de credenciais tipado da integração Trendyol. Além
// do par chave/segredo, o Trendyol exige o identificador do fornecedor
// (usado nos paths da API) e o do vendedor.
type Credentials struct {
	APIKey     string
	APISecret  string
	SupplierID string
	SellerID   string
}

// ParseCredentials valida o pacote opaco de credenciais da conta e o
// converte na struct tipada da variante
func ParseCredentials(bundle map[string]string) (Credentials, error) {
	creds := Credentials{
		APIKey:     bundle["api_key"],
		APISecret:  bundle["api_secret"],
		SupplierID: bundle["supplier_id"],
		SellerID:   bundle["seller_id"],
	}

	if creds.APIKey == "" || creds.APISecret == "" {
		return Credentials{}, errors.New("api_key e api_secret são obrigatórios para o Trendyol")
	}

	if creds.SupplierID == "" {
		return Credentials{}, errors.New("supplier_id é obrigatório para o Trendyol")
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
		caller: restclient.New(marketplaceName, cfg.Trendyol.URL, creds.APIKey, creds.APISecret),
	}
}

func (c *Client) Kind() domain.MarketplaceKind {
	return domain.MarketplaceKindTrendyol
}

// remoteToCanonical é a tabela fixa de tradução do vocabulário de status do
// Trendyol para o ciclo de vida canônico
var remoteToCanonical = map[string]domain.OrderStatus{
	"Created":   domain.OrderStatusProcessing,
	"Approved":  domain.OrderStatusProcessing,
	"Picking":   domain.OrderStatusProcessing,
	"Packed":    domain.OrderStatusProcessing,
	"Invoiced":  domain.OrderStatusProcessing,
	"Shipped":   domain.OrderStatusShipped,
	"Delivered": domain.OrderStatusCompleted,
	"Cancelled": domain.OrderStatusCancelled,
	"Returned":  domain.OrderStatusRefunded,
}

// canonicalToRemote é a tabela inversa usada na notificação de mudanças de
// status locais para o Trendyol
var canonicalToRemote = map[domain.OrderStatus]string{
	domain.OrderStatusPending:    "Created",
	domain.OrderStatusProcessing: "Approved",
	domain.OrderStatusShipped:    "Shipped",
	domain.OrderStatusCompleted:  "Delivered",
	domain.OrderStatusCancelled:  "Cancelled",
	domain.OrderStatusRefunded:   "Returned",
}

func (c *Client) TranslateRemoteStatus(remoteStatus string) (domain.OrderStatus, bool) {
	status, ok := remoteToCanonical[remoteStatus]
	return status, ok
}
