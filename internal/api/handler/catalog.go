package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-manager-api/internal/usecases/catalogsync"
	"github.com/vfg2006/marketplace-manager-api/pkg/apiErrors"
)

// PushCatalog publica o catálogo local no marketplace da conta e devolve o
// resultado do envio, incluindo rejeições por item
func PushCatalog(service catalogsync.Publisher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - PushCatalog")

		w.Header().Set("Content-Type", "application/json")

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		result, err := service.PushCatalog(r.Context(), accountID)
		if err != nil {
			logrus.Error("Error pushing catalog:", err)

			switch {
			case errors.Is(err, catalogsync.ErrAccountNotFound):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Conta não encontrada", nil)

			case errors.Is(err, catalogsync.ErrAccountInactive):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Conta inativa", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao publicar catálogo", nil)
			}
			return
		}

		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
