package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-manager-api/internal/domain"
	"github.com/vfg2006/marketplace-manager-api/internal/usecases/pricing"
	"github.com/vfg2006/marketplace-manager-api/pkg/apiErrors"
)

// GetProductCosts devolve o registro de custos e o preço calculado do produto
func GetProductCosts(service pricing.Pricer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		productID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if productID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do produto é obrigatório", nil)
			return
		}

		record, err := service.GetProductCosts(productID)
		if err != nil {
			if errors.Is(err, pricing.ErrCostsNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Custos não cadastrados para o produto", nil)
				return
			}

			logrus.Error("Error fetching product costs:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar custos no banco de dados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(record); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// UpdateProductCosts sobrescreve os custos do produto e devolve o registro
// com o preço recalculado
func UpdateProductCosts(service pricing.Pricer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateProductCosts")

		w.Header().Set("Content-Type", "application/json")

		productID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if productID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do produto é obrigatório", nil)
			return
		}

		var req domain.UpdateProductCostsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// Garante que o ID da URL seja usado
		req.ProductID = productID

		record, err := service.UpdateProductCosts(&req)
		if err != nil {
			logrus.Error("Error updating product costs:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar custos do produto", nil)
			return
		}

		if err := json.NewEncoder(w).Encode(record); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
