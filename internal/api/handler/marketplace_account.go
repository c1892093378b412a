package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-manager-api/internal/domain"
	"github.com/vfg2006/marketplace-manager-api/internal/usecases/account"
	"github.com/vfg2006/marketplace-manager-api/pkg/apiErrors"
)

func MarketplaceAccountList(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		onlyActive := r.URL.Query().Get("active") == "true"

		accounts, err := service.ListAccounts(onlyActive)
		if err != nil {
			logrus.Error("Error listing accounts:", err)
			handleAccountError(w, err, "Erro ao listar contas")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(accounts); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetMarketplaceAccount(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		accountResponse, err := service.GetAccount(id)
		if err != nil {
			logrus.Error("Error getting account:", err)
			handleAccountError(w, err, "Erro ao buscar conta")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(accountResponse); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func CreateMarketplaceAccount(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateMarketplaceAccount")

		w.Header().Set("Content-Type", "application/json")

		var saveRequest domain.SaveMarketplaceAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&saveRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// Criação nunca herda um id do corpo
		saveRequest.ID = ""

		resp, err := service.SaveAccount(&saveRequest)
		if err != nil {
			logrus.Error("Error creating account:", err)
			handleAccountError(w, err, "Erro ao criar conta")
			return
		}

		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func UpdateMarketplaceAccount(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateMarketplaceAccount")

		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		var saveRequest domain.SaveMarketplaceAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&saveRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// Garante que o ID da URL seja usado
		saveRequest.ID = id

		resp, err := service.SaveAccount(&saveRequest)
		if err != nil {
			logrus.Error("Error updating account:", err)
			handleAccountError(w, err, "Erro ao atualizar conta")
			return
		}

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// handleAccountError traduz os erros do serviço de contas para a resposta da API
func handleAccountError(w http.ResponseWriter, err error, fallbackMessage string) {
	// Verificar se é um AccountError para obter detalhes específicos do erro
	var accountErr *account.AccountError
	if errors.As(err, &accountErr) {
		apiErrors.WriteError(w, accountErr.Code, accountErr.Error(), map[string]interface{}{
			"account_id": accountErr.AccountID,
		})
		return
	}

	switch {
	case errors.Is(err, account.ErrAccountIDRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)

	case errors.Is(err, account.ErrAccountNotFound):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Conta não encontrada", nil)

	case errors.Is(err, account.ErrUnsupportedKind):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Marketplace não suportado", nil)

	case errors.Is(err, account.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Credenciais inválidas para o marketplace", nil)

	case errors.Is(err, account.ErrFetchAccounts) || errors.Is(err, account.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar contas no banco de dados", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallbackMessage, nil)
	}
}
