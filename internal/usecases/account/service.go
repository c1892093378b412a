package account

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-manager-api/infrastructure/integrator/marketplace"
	"github.com/vfg2006/marketplace-manager-api/infrastructure/repository"
	"github.com/vfg2006/marketplace-manager-api/internal/domain"
	"github.com/vfg2006/marketplace-manager-api/pkg/apiErrors"
)

type AccountService interface {
	SaveAccount(request *domain.SaveMarketplaceAccountRequest) (*domain.MarketplaceAccountResponse, error)
	GetAccount(accountID string) (*domain.MarketplaceAccountResponse, error)
	ListAccounts(onlyActive bool) ([]*domain.MarketplaceAccountResponse, error)
}

type Service struct {
	accountRepository repository.AccountRepository
	clientFactory     marketplace.Factory
}

func NewService(
	accountRepository repository.AccountRepository,
	clientFactory marketplace.Factory,
) AccountService {
	return &Service{
		accountRepository: accountRepository,
		clientFactory:     clientFactory,
	}
}

// SaveAccount cria ou atualiza uma conexão com marketplace. As credenciais
// são validadas construindo o cliente da variante antes de persistir: conta
// gravada é conta que o motor de sincronização consegue usar.
func (s *Service) SaveAccount(request *domain.SaveMarketplaceAccountRequest) (*domain.MarketplaceAccountResponse, error) {
	if !request.Kind.Valid() {
		return nil, NewAccountError(ErrUnsupportedKind, apiErrors.ErrInvalidRequest, "Marketplace não suportado: "+string(request.Kind))
	}

	active := true
	if request.Active != nil {
		active = *request.Active
	}

	account := &domain.MarketplaceAccount{
		ID:          request.ID,
		Name:        request.Name,
		Kind:        request.Kind,
		Credentials: request.Credentials,
		Active:      active,
	}

	if request.ID != "" {
		existing, err := s.accountRepository.GetAccountByID(request.ID)
		if err != nil {
			return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar conta no banco de dados")
		}
		if existing == nil {
			return nil, NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrInvalidRequest, request.ID, "Conta não encontrada")
		}

		// Atualização sem credenciais novas mantém as já gravadas
		if len(account.Credentials) == 0 {
			account.Credentials = existing.Credentials
		}
	}

	if _, err := s.clientFactory.ClientFor(account); err != nil {
		logrus.WithError(err).WithField("kind", account.Kind).
			Warn("Credenciais rejeitadas ao salvar conta de marketplace")
		return nil, NewAccountError(ErrInvalidCredentials, apiErrors.ErrInvalidRequest, err.Error())
	}

	saved, err := s.accountRepository.SaveOrUpdate(account)
	if err != nil {
		return nil, NewAccountError(ErrSaveAccount, apiErrors.ErrDatabaseOperation, "Falha ao salvar conta no banco de dados")
	}

	logrus.WithFields(logrus.Fields{
		"account_id":  saved.ID,
		"marketplace": saved.Kind,
		"active":      saved.Active,
	}).Info("Conta de marketplace salva")

	return saved.ToResponse(), nil
}

func (s *Service) GetAccount(accountID string) (*domain.MarketplaceAccountResponse, error) {
	if accountID == "" {
		return nil, ErrAccountIDRequired
	}

	account, err := s.accountRepository.GetAccountByID(accountID)
	if err != nil {
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar conta no banco de dados")
	}
	if account == nil {
		return nil, NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrInvalidRequest, accountID, "Conta não encontrada")
	}

	return account.ToResponse(), nil
}

func (s *Service) ListAccounts(onlyActive bool) ([]*domain.MarketplaceAccountResponse, error) {
	accounts, err := s.accountRepository.ListAccounts(onlyActive)
	if err != nil {
		return nil, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao listar contas no banco de dados")
	}

	// Transforma as contas para o formato de resposta da API, sem expor
	// credenciais
	responses := make([]*domain.MarketplaceAccountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, account.ToResponse())
	}

	return responses, nil
}
