// Package catalogsync publica o catálogo local nos marketplaces: coleta os
// produtos marcados para cada marketplace, precifica pelo motor de preços e
// envia em lotes.
package catalogsync

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-manager-api/infrastructure/integrator/marketplace"
	mkdomain "github.com/vfg2006/marketplace-manager-api/infrastructure/integrator/marketplace/domain"
	"github.com/vfg2006/marketplace-manager-api/infrastructure/repository"
	"github.com/vfg2006/marketplace-manager-api/infrastructure/storefront"
	"github.com/vfg2006/marketplace-manager-api/internal/config"
	"github.com/vfg2006/marketplace-manager-api/internal/domain"
	"github.com/vfg2006/marketplace-manager-api/internal/usecases/pricing"
)

var (
	ErrAccountNotFound = errors.New("conta de marketplace não encontrada")
	ErrAccountInactive = errors.New("conta de marketplace inativa")
)

type Publisher interface {
	// PushCatalog envia os produtos marcados para o marketplace da conta.
	// Rejeições por item fazem parte do resultado, não são erro.
	PushCatalog(ctx context.Context, accountID string) (*domain.BatchPushResult, error)

	// PushAllActiveCatalogs publica o catálogo em todas as contas ativas,
	// sequencialmente. A falha de uma conta não afeta as demais.
	PushAllActiveCatalogs(ctx context.Context) (map[string]*domain.BatchPushResult, error)
}

type Service struct {
	cfg               *config.Config
	clientFactory     marketplace.Factory
	accountRepository repository.AccountRepository
	orderSystem       storefront.OrderSystem
	pricer            pricing.Pricer
}

func NewService(
	cfg *config.Config,
	clientFactory marketplace.Factory,
	accountRepository repository.AccountRepository,
	orderSystem storefront.OrderSystem,
	pricer pricing.Pricer,
) Publisher {
	return &Service{
		cfg:               cfg,
		clientFactory:     clientFactory,
		accountRepository: accountRepository,
		orderSystem:       orderSystem,
		pricer:            pricer,
	}
}

func (s *Service) PushCatalog(ctx context.Context, accountID string) (*domain.BatchPushResult, error) {
	account, err := s.accountRepository.GetAccountByID(accountID)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar a conta %s", accountID)
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	if !account.Active {
		return nil, ErrAccountInactive
	}

	client, err := s.clientFactory.ClientFor(account)
	if err != nil {
		return nil, err
	}

	products, err := s.orderSystem.ListProductsForMarketplace(account.Kind)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar os produtos do catálogo")
	}

	result := &domain.BatchPushResult{}
	batchSize := s.cfg.CatalogSync.BatchSize
	if batchSize < 1 {
		batchSize = len(products)
	}

	for start := 0; start < len(products); start += batchSize {
		end := start + batchSize
		if end > len(products) {
			end = len(products)
		}

		batch := make([]mkdomain.RemoteProduct, 0, end-start)
		for _, product := range products[start:end] {
			batch = append(batch, s.toRemoteProduct(product))
		}

		batchResult, err := client.PushProductBatch(ctx, batch)
		if err != nil {
			// Falha de transporte derruba o lote inteiro, mas os lotes já
			// enviados permanecem contabilizados
			result.Sent += len(batch)
			result.Failed += len(batch)
			result.PerItemErrors = append(result.PerItemErrors,
				fmt.Sprintf("lote a partir de %s: %v", batch[0].StockCode, err))

			logrus.WithError(err).WithFields(logrus.Fields{
				"account_id":  account.ID,
				"marketplace": account.Kind,
				"batch_size":  len(batch),
			}).Error("Erro ao enviar lote de produtos")
			continue
		}

		result.Sent += len(batch)
		result.Succeeded += batchResult.SuccessCount
		result.Failed += batchResult.FailedCount
		for _, itemErr := range batchResult.PerItemErrors {
			result.PerItemErrors = append(result.PerItemErrors,
				fmt.Sprintf("%s: %s", itemErr.StockCode, itemErr.Message))
		}
	}

	if err := s.accountRepository.UpdateLastSync(account.ID, time.Now()); err != nil {
		logrus.WithError(err).WithField("account_id", account.ID).
			Error("Erro ao atualizar o last_sync da conta")
	}

	logrus.WithFields(logrus.Fields{
		"account_id":  account.ID,
		"marketplace": account.Kind,
		"sent":        result.Sent,
		"succeeded":   result.Succeeded,
		"failed":      result.Failed,
	}).Info("Publicação de catálogo finalizada")

	return result, nil
}

// toRemoteProduct monta o payload de produto. O preço vem do motor de
// preços quando o produto tem custos cadastrados; sem custos, vale o preço
// de tabela do catálogo.
func (s *Service) toRemoteProduct(product *domain.StoreProduct) mkdomain.RemoteProduct {
	salePrice := product.Price

	price, err := s.pricer.PriceFor(product.ID)
	if err == nil {
		salePrice = price
	} else if !errors.Is(err, pricing.ErrCostsNotFound) {
		logrus.WithError(err).WithField("product_id", product.ID).
			Warn("Erro ao precificar o produto, usando o preço de tabela")
	}

	return mkdomain.RemoteProduct{
		Barcode:       product.SKU,
		Title:         product.Name,
		ProductMainID: product.ID,
		Description:   product.Description,
		StockCode:     product.SKU,
		Quantity:      product.StockQuantity,
		ListPrice:     product.Price,
		SalePrice:     salePrice,
		CurrencyType:  "TRY",
		VatRate:       product.VATRate,
	}
}

func (s *Service) PushAllActiveCatalogs(ctx context.Context) (map[string]*domain.BatchPushResult, error) {
	accounts, err := s.accountRepository.ListAccounts(true)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar as contas ativas")
	}

	results := make(map[string]*domain.BatchPushResult, len(accounts))
	for _, account := range accounts {
		result, err := s.PushCatalog(ctx, account.ID)
		if err != nil {
			logrus.WithError(err).WithField("account_id", account.ID).
				Error("Publicação de catálogo da conta falhou")
			continue
		}
		results[account.ID] = result
	}

	return results, nil
}
