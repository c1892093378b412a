package account

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/marketplace-manager-api/infrastructure/integrator/marketplace"
	mkmocks "github.com/vfg2006/marketplace-manager-api/infrastructure/integrator/marketplace/mocks"
	"github.com/vfg2006/marketplace-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketplace-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func trendyolCredentials() map[string]string {
	return map[string]string{
		"api_key":     "key",
		"api_secret":  "secret",
		"supplier_id": "1234",
	}
}

func TestService_SaveAccount(t *testing.T) {
	t.Run("Conta nova com credenciais válidas é salva ativa por padrão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		accountRepo := mocks.NewMockAccountRepository(ctrl)
		factory := mkmocks.NewMockFactory(ctrl)
		client := mkmocks.NewMockClient(ctrl)

		factory.EXPECT().ClientFor(gomock.Any()).Return(client, nil)

		accountRepo.EXPECT().SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(account *domain.MarketplaceAccount) (*domain.MarketplaceAccount, error) {
				assert.True(t, account.Active)
				assert.Equal(t, domain.MarketplaceKindTrendyol, account.Kind)

				saved := *account
				saved.ID = "ACC001"
				return &saved, nil
			})

		service := NewService(accountRepo, factory)

		response, err := service.SaveAccount(&domain.SaveMarketplaceAccountRequest{
			Name:        "Loja Trendyol",
			Kind:        domain.MarketplaceKindTrendyol,
			Credentials: trendyolCredentials(),
		})

		assert.NoError(t, err)
		assert.Equal(t, "ACC001", response.ID)
		assert.True(t, response.Active)
	})

	t.Run("Marketplace desconhecido é rejeitado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewService(
			mocks.NewMockAccountRepository(ctrl),
			mkmocks.NewMockFactory(ctrl),
		)

		_, err := service.SaveAccount(&domain.SaveMarketplaceAccountRequest{
			Name: "Loja",
			Kind: domain.MarketplaceKind("amazon"),
		})

		var accountErr *AccountError
		assert.ErrorAs(t, err, &accountErr)
		assert.ErrorIs(t, err, ErrUnsupportedKind)
	})

	t.Run("Credenciais rejeitadas pela variante não são persistidas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		accountRepo := mocks.NewMockAccountRepository(ctrl)
		factory := mkmocks.NewMockFactory(ctrl)

		factory.EXPECT().ClientFor(gomock.Any()).
			Return(nil, errors.New("credenciais inválidas para a conta"))

		service := NewService(accountRepo, factory)

		_, err := service.SaveAccount(&domain.SaveMarketplaceAccountRequest{
			Name:        "Loja Trendyol",
			Kind:        domain.MarketplaceKindTrendyol,
			Credentials: map[string]string{"api_key": "só a chave"},
		})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Atualização sem credenciais novas mantém as gravadas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		accountRepo := mocks.NewMockAccountRepository(ctrl)
		factory := mkmocks.NewMockFactory(ctrl)
		client := mkmocks.NewMockClient(ctrl)

		existing := &domain.MarketplaceAccount{
			ID:          "ACC001",
			Name:        "Loja Trendyol",
			Kind:        domain.MarketplaceKindTrendyol,
			Credentials: trendyolCredentials(),
			Active:      true,
		}
		accountRepo.EXPECT().GetAccountByID("ACC001").Return(existing, nil)

		factory.EXPECT().ClientFor(gomock.Any()).
			DoAndReturn(func(account *domain.MarketplaceAccount) (marketplace.Client, error) {
				assert.Equal(t, trendyolCredentials(), account.Credentials)
				return client, nil
			})

		accountRepo.EXPECT().SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(account *domain.MarketplaceAccount) (*domain.MarketplaceAccount, error) {
				assert.Equal(t, trendyolCredentials(), account.Credentials)
				return account, nil
			})

		service := NewService(accountRepo, factory)

		_, err := service.SaveAccount(&domain.SaveMarketplaceAccountRequest{
			ID:   "ACC001",
			Name: "Loja Trendyol Renomeada",
			Kind: domain.MarketplaceKindTrendyol,
		})

		assert.NoError(t, err)
	})

	t.Run("Atualização de conta inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		accountRepo := mocks.NewMockAccountRepository(ctrl)
		accountRepo.EXPECT().GetAccountByID("ACC404").Return(nil, nil)

		service := NewService(accountRepo, mkmocks.NewMockFactory(ctrl))

		_, err := service.SaveAccount(&domain.SaveMarketplaceAccountRequest{
			ID:   "ACC404",
			Name: "Loja",
			Kind: domain.MarketplaceKindTrendyol,
		})

		assert.ErrorIs(t, err, ErrAccountNotFound)
	})
}

func TestService_GetAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	service := NewService(accountRepo, mkmocks.NewMockFactory(ctrl))

	t.Run("Resposta não expõe credenciais", func(t *testing.T) {
		accountRepo.EXPECT().GetAccountByID("ACC001").Return(&domain.MarketplaceAccount{
			ID:          "ACC001",
			Name:        "Loja Trendyol",
			Kind:        domain.MarketplaceKindTrendyol,
			Credentials: trendyolCredentials(),
			Active:      true,
		}, nil)

		response, err := service.GetAccount("ACC001")
		assert.NoError(t, err)
		assert.Equal(t, "ACC001", response.ID)
	})

	t.Run("Id vazio é rejeitado", func(t *testing.T) {
		_, err := service.GetAccount("")
		assert.ErrorIs(t, err, ErrAccountIDRequired)
	})

	t.Run("Conta inexistente", func(t *testing.T) {
		accountRepo.EXPECT().GetAccountByID("ACC404").Return(nil, nil)

		_, err := service.GetAccount("ACC404")
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})
}

func TestService_ListAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	service := NewService(accountRepo, mkmocks.NewMockFactory(ctrl))

	accountRepo.EXPECT().ListAccounts(true).Return([]*domain.MarketplaceAccount{
		{ID: "ACC001", Kind: domain.MarketplaceKindTrendyol, Active: true},
		{ID: "ACC002", Kind: domain.MarketplaceKindN11, Active: true},
	}, nil)

	responses, err := service.ListAccounts(true)
	assert.NoError(t, err)
	assert.Len(t, responses, 2)
}
