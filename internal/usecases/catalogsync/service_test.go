package catalogsync

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	mkdomain "github.com/vfg2006/marketplace-manager-api/infrastructure/integrator/marketplace/domain"
	mkmocks "github.com/vfg2006/marketplace-manager-api/infrastructure/integrator/marketplace/mocks"
	"github.com/vfg2006/marketplace-manager-api/infrastructure/repository/mocks"
	sfmocks "github.com/vfg2006/marketplace-manager-api/infrastructure/storefront/mocks"
	"github.com/vfg2006/marketplace-manager-api/internal/config"
	"github.com/vfg2006/marketplace-manager-api/internal/domain"
	"github.com/vfg2006/marketplace-manager-api/internal/usecases/pricing"
	"go.uber.org/mock/gomock"
)

func catalogTestConfig(batchSize int) *config.Config {
	return &config.Config{
		CatalogSync: config.CatalogSync{
			BatchSize: batchSize,
		},
	}
}

func trendyolAccount() *domain.MarketplaceAccount {
	return &domain.MarketplaceAccount{
		ID:     "ACC001",
		Name:   "Loja Trendyol",
		Kind:   domain.MarketplaceKindTrendyol,
		Active: true,
	}
}

func storeProduct(id, sku string, price float64) *domain.StoreProduct {
	return &domain.StoreProduct{
		ID:            id,
		SKU:           sku,
		Name:          "Produto " + sku,
		Price:         price,
		StockQuantity: 10,
		VATRate:       20.0,
		Active:        true,
	}
}

func TestService_PushCatalog(t *testing.T) {
	t.Run("Produtos sem custos saem com o preço de tabela", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		accountRepo := mocks.NewMockAccountRepository(ctrl)
		costRepo := mocks.NewMockCostRepository(ctrl)
		orderSystem := sfmocks.NewMockOrderSystem(ctrl)
		factory := mkmocks.NewMockFactory(ctrl)
		client := mkmocks.NewMockClient(ctrl)

		accountRepo.EXPECT().GetAccountByID("ACC001").Return(trendyolAccount(), nil)
		factory.EXPECT().ClientFor(gomock.Any()).Return(client, nil)

		orderSystem.EXPECT().
			ListProductsForMarketplace(domain.MarketplaceKindTrendyol).
			Return([]*domain.StoreProduct{storeProduct("PRD001", "GZL-AVT-001", 349.90)}, nil)

		// Sem registro de custos: o preço de tabela vale
		costRepo.EXPECT().GetCostRecord("PRD001").Return(nil, nil)

		client.EXPECT().PushProductBatch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, batch []mkdomain.RemoteProduct) (mkdomain.BatchResult, error) {
				assert.Len(t, batch, 1)
				assert.Equal(t, "GZL-AVT-001", batch[0].StockCode)
				assert.Equal(t, 349.90, batch[0].SalePrice)
				assert.Equal(t, "TRY", batch[0].CurrencyType)
				return mkdomain.BatchResult{SuccessCount: 1}, nil
			})

		accountRepo.EXPECT().UpdateLastSync("ACC001", gomock.Any()).Return(nil)

		service := NewService(
			catalogTestConfig(100), factory, accountRepo, orderSystem,
			pricing.NewService(costRepo),
		)

		result, err := service.PushCatalog(context.Background(), "ACC001")
		assert.NoError(t, err)
		assert.Equal(t, 1, result.Sent)
		assert.Equal(t, 1, result.Succeeded)
		assert.Equal(t, 0, result.Failed)
	})

	t.Run("Produto com custos cadastrados usa o preço do motor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		accountRepo := mocks.NewMockAccountRepository(ctrl)
		costRepo := mocks.NewMockCostRepository(ctrl)
		orderSystem := sfmocks.NewMockOrderSystem(ctrl)
		factory := mkmocks.NewMockFactory(ctrl)
		client := mkmocks.NewMockClient(ctrl)

		accountRepo.EXPECT().GetAccountByID("ACC001").Return(trendyolAccount(), nil)
		factory.EXPECT().ClientFor(gomock.Any()).Return(client, nil)

		orderSystem.EXPECT().
			ListProductsForMarketplace(domain.MarketplaceKindTrendyol).
			Return([]*domain.StoreProduct{storeProduct("PRD001", "GZL-AVT-001", 349.90)}, nil)

		costRepo.EXPECT().GetCostRecord("PRD001").Return(&domain.CostRecord{
			ProductID:    "PRD001",
			SupplierCost: 100.0,
			MarkupRate:   50.0,
		}, nil)

		client.EXPECT().PushProductBatch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, batch []mkdomain.RemoteProduct) (mkdomain.BatchResult, error) {
				assert.Equal(t, 150.00, batch[0].SalePrice)
				assert.Equal(t, 349.90, batch[0].ListPrice)
				return mkdomain.BatchResult{SuccessCount: 1}, nil
			})

		accountRepo.EXPECT().UpdateLastSync("ACC001", gomock.Any()).Return(nil)

		service := NewService(
			catalogTestConfig(100), factory, accountRepo, orderSystem,
			pricing.NewService(costRepo),
		)

		result, err := service.PushCatalog(context.Background(), "ACC001")
		assert.NoError(t, err)
		assert.Equal(t, 1, result.Succeeded)
	})

	t.Run("Catálogo é dividido em lotes e rejeições por item são contabilizadas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		accountRepo := mocks.NewMockAccountRepository(ctrl)
		costRepo := mocks.NewMockCostRepository(ctrl)
		orderSystem := sfmocks.NewMockOrderSystem(ctrl)
		factory := mkmocks.NewMockFactory(ctrl)
		client := mkmocks.NewMockClient(ctrl)

		accountRepo.EXPECT().GetAccountByID("ACC001").Return(trendyolAccount(), nil)
		factory.EXPECT().ClientFor(gomock.Any()).Return(client, nil)

		products := []*domain.StoreProduct{
			storeProduct("PRD001", "SKU-001", 10.0),
			storeProduct("PRD002", "SKU-002", 20.0),
			storeProduct("PRD003", "SKU-003", 30.0),
		}
		orderSystem.EXPECT().
			ListProductsForMarketplace(domain.MarketplaceKindTrendyol).
			Return(products, nil)

		costRepo.EXPECT().GetCostRecord(gomock.Any()).Return(nil, nil).Times(3)

		gomock.InOrder(
			client.EXPECT().PushProductBatch(gomock.Any(), gomock.Len(2)).
				Return(mkdomain.BatchResult{
					SuccessCount: 1,
					FailedCount:  1,
					PerItemErrors: []mkdomain.BatchItemError{
						{StockCode: "SKU-002", Message: "barcode já cadastrado"},
					},
				}, nil),
			client.EXPECT().PushProductBatch(gomock.Any(), gomock.Len(1)).
				Return(mkdomain.BatchResult{SuccessCount: 1}, nil),
		)

		accountRepo.EXPECT().UpdateLastSync("ACC001", gomock.Any()).Return(nil)

		service := NewService(
			catalogTestConfig(2), factory, accountRepo, orderSystem,
			pricing.NewService(costRepo),
		)

		result, err := service.PushCatalog(context.Background(), "ACC001")
		assert.NoError(t, err)
		assert.Equal(t, 3, result.Sent)
		assert.Equal(t, 2, result.Succeeded)
		assert.Equal(t, 1, result.Failed)
		assert.Contains(t, result.PerItemErrors[0], "SKU-002")
	})

	t.Run("Falha de transporte derruba só o lote, os demais seguem", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		accountRepo := mocks.NewMockAccountRepository(ctrl)
		costRepo := mocks.NewMockCostRepository(ctrl)
		orderSystem := sfmocks.NewMockOrderSystem(ctrl)
		factory := mkmocks.NewMockFactory(ctrl)
		client := mkmocks.NewMockClient(ctrl)

		accountRepo.EXPECT().GetAccountByID("ACC001").Return(trendyolAccount(), nil)
		factory.EXPECT().ClientFor(gomock.Any()).Return(client, nil)

		products := []*domain.StoreProduct{
			storeProduct("PRD001", "SKU-001", 10.0),
			storeProduct("PRD002", "SKU-002", 20.0),
		}
		orderSystem.EXPECT().
			ListProductsForMarketplace(domain.MarketplaceKindTrendyol).
			Return(products, nil)

		costRepo.EXPECT().GetCostRecord(gomock.Any()).Return(nil, nil).Times(2)

		gomock.InOrder(
			client.EXPECT().PushProductBatch(gomock.Any(), gomock.Any()).
				Return(mkdomain.BatchResult{}, mkdomain.NewRemoteError(
					mkdomain.RemoteUnavailable, "trendyol", "timeout")),
			client.EXPECT().PushProductBatch(gomock.Any(), gomock.Any()).
				Return(mkdomain.BatchResult{SuccessCount: 1}, nil),
		)

		accountRepo.EXPECT().UpdateLastSync("ACC001", gomock.Any()).Return(nil)

		service := NewService(
			catalogTestConfig(1), factory, accountRepo, orderSystem,
			pricing.NewService(costRepo),
		)

		result, err := service.PushCatalog(context.Background(), "ACC001")
		assert.NoError(t, err)
		assert.Equal(t, 2, result.Sent)
		assert.Equal(t, 1, result.Succeeded)
		assert.Equal(t, 1, result.Failed)
	})

	t.Run("Conta inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		accountRepo := mocks.NewMockAccountRepository(ctrl)
		accountRepo.EXPECT().GetAccountByID("ACC404").Return(nil, nil)

		service := NewService(
			catalogTestConfig(100),
			mkmocks.NewMockFactory(ctrl),
			accountRepo,
			sfmocks.NewMockOrderSystem(ctrl),
			pricing.NewService(mocks.NewMockCostRepository(ctrl)),
		)

		_, err := service.PushCatalog(context.Background(), "ACC404")
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})

	t.Run("Conta inativa", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		inactive := trendyolAccount()
		inactive.Active = false

		accountRepo := mocks.NewMockAccountRepository(ctrl)
		accountRepo.EXPECT().GetAccountByID("ACC001").Return(inactive, nil)

		service := NewService(
			catalogTestConfig(100),
			mkmocks.NewMockFactory(ctrl),
			accountRepo,
			sfmocks.NewMockOrderSystem(ctrl),
			pricing.NewService(mocks.NewMockCostRepository(ctrl)),
		)

		_, err := service.PushCatalog(context.Background(), "ACC001")
		assert.ErrorIs(t, err, ErrAccountInactive)
	})
}

func TestService_PushAllActiveCatalogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	costRepo := mocks.NewMockCostRepository(ctrl)
	orderSystem := sfmocks.NewMockOrderSystem(ctrl)
	factory := mkmocks.NewMockFactory(ctrl)
	client := mkmocks.NewMockClient(ctrl)

	accounts := []*domain.MarketplaceAccount{
		{ID: "ACC001", Kind: domain.MarketplaceKindTrendyol, Active: true},
		{ID: "ACC002", Kind: domain.MarketplaceKindN11, Active: true},
	}

	accountRepo.EXPECT().ListAccounts(true).Return(accounts, nil)

	// ACC001 publica, ACC002 falha na construção do cliente e fica de fora
	accountRepo.EXPECT().GetAccountByID("ACC001").Return(accounts[0], nil)
	accountRepo.EXPECT().GetAccountByID("ACC002").Return(accounts[1], nil)

	factory.EXPECT().ClientFor(accounts[0]).Return(client, nil)
	factory.EXPECT().ClientFor(accounts[1]).
		Return(nil, errors.New("credenciais inválidas"))

	orderSystem.EXPECT().
		ListProductsForMarketplace(domain.MarketplaceKindTrendyol).
		Return([]*domain.StoreProduct{storeProduct("PRD001", "SKU-001", 10.0)}, nil)
	costRepo.EXPECT().GetCostRecord("PRD001").Return(nil, nil)
	client.EXPECT().PushProductBatch(gomock.Any(), gomock.Any()).
		Return(mkdomain.BatchResult{SuccessCount: 1}, nil)
	accountRepo.EXPECT().UpdateLastSync("ACC001", gomock.Any()).Return(nil)

	service := NewService(
		catalogTestConfig(100), factory, accountRepo, orderSystem,
		pricing.NewService(costRepo),
	)

	results, err := service.PushAllActiveCatalogs(context.Background())
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Contains(t, results, "ACC001")
	assert.NotContains(t, results, "ACC002")
}
