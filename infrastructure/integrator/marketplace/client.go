package marketplace

import (
	"context"

	"github.com/pkg/errors"
	mkdomain "github.com/vfg2006/marketplace-manager-api/infrastructure/integrator/marketplace/domain"
	"github.com/vfg2006/marketplace-manager-api/infrastructure/integrator/marketplace/hepsiburadaclient"
	"github.com/vfg2006/marketplace-manager-api/infrastructure/integrator/marketplace/n11client"
	"github.com/vfg2006/marketplace-manager-api/infrastructure/integrator/marketplace/trendyolclient"
	"github.com/vfg2006/marketplace-manager-api/internal/config"
	"github.com/vfg2006/marketplace-manager-api/internal/domain"
)

// Client é o conjunto uniforme de capacidades que toda integração de
// marketplace expõe. Cada variante fala o dialeto do seu marketplace mas o
// motor de reconciliação só conhece este contrato.
//
// Nenhuma operação faz retry: toda chamada tem timeout próprio e a política
// de repetição é do chamador.
type Client interface {
	Kind() domain.MarketplaceKind

	// ListOrders busca uma página de pedidos. O filtro de status é expresso
	// no vocabulário do próprio marketplace.
	ListOrders(ctx context.Context, params mkdomain.ListOrdersParams) (mkdomain.OrdersPage, error)

	// ListProducts busca uma página dos produtos publicados no marketplace
	ListProducts(ctx context.Context, page, size int) (mkdomain.ProductsPage, error)

	// PushProductBatch envia um lote de produtos. Rejeições por item fazem
	// parte do resultado e não são erro.
	PushProductBatch(ctx context.Context, products []mkdomain.RemoteProduct) (mkdomain.BatchResult, error)

	// UpdateOrderStatus notifica o marketplace de uma mudança de status. A
	// variante traduz o status canônico para o vocabulário dela antes da
	// chamada.
	UpdateOrderStatus(ctx context.Context, externalOrderID string, status domain.OrderStatus) error

	// UpdateTracking envia código de rastreio e transportadora
	UpdateTracking(ctx context.Context, externalOrderID, trackingNumber, shippingCompany string) error

	// TranslateRemoteStatus traduz um status do vocabulário do marketplace
	// para o ciclo de vida canônico. Retorna false quando o valor não está
	// na tabela da variante (o chamador decide o fallback).
	TranslateRemoteStatus(remoteStatus string) (domain.OrderStatus, bool)
}

// Cada variante precisa implementar o contrato completo
var (
	_ Client = (*trendyolclient.Client)(nil)
	_ Client = (*hepsiburadaclient.Client)(nil)
	_ Client = (*n11client.Client)(nil)
)

// Factory resolve o Client adequado para uma conta de marketplace
type Factory interface {
	ClientFor(account *domain.MarketplaceAccount) (Client, error)
}

type clientFactory struct {
	cfg *config.Config
}

func NewFactory(cfg *config.Config) Factory {
	return &clientFactory{cfg: cfg}
}

// ClientFor constrói o cliente da variante correspondente ao tipo da conta.
// O despacho é um enum fechado: marketplaces novos entram como nova variante
// aqui, nunca por reflexão ou chave de string arbitrária.
func (f *clientFactory) ClientFor(account *domain.MarketplaceAccount) (Client, error) {
	switch account.Kind {
	case domain.MarketplaceKindTrendyol:
		creds, err := trendyolclient.ParseCredentials(account.Credentials)
		if err != nil {
			return nil, errors.Wrapf(err, "credenciais inválidas para a conta %s", account.ID)
		}
		return trendyolclient.NewClient(f.cfg, creds), nil

	case domain.MarketplaceKindHepsiburada:
		creds, err := hepsiburadaclient.ParseCredentials(account.Credentials)
		if err != nil {
			return nil, errors.Wrapf(err, "credenciais inválidas para a conta %s", account.ID)
		}
		return hepsiburadaclient.NewClient(f.cfg, creds), nil

	case domain.MarketplaceKindN11:
		creds, err := n11client.ParseCredentials(account.Credentials)
		if err != nil {
			return nil, errors.Wrapf(err, "credenciais inválidas para a conta %s", account.ID)
		}
		return n11client.NewClient(f.cfg, creds), nil
	}

	return nil, errors.Errorf("integração de marketplace desconhecida: %s", account.Kind)
}
