package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-manager-api/infrastructure/repository"
	"github.com/vfg2006/marketplace-manager-api/infrastructure/storefront"
	"github.com/vfg2006/marketplace-manager-api/internal/domain"
	"github.com/vfg2006/marketplace-manager-api/internal/usecases/ordersync"
	"github.com/vfg2006/marketplace-manager-api/pkg/apiErrors"
	"github.com/vfg2006/marketplace-manager-api/pkg/utils"
)

// defaultOrderListDays é a janela padrão da listagem de pedidos quando o
// período não é informado
const defaultOrderListDays = 30

type UpdateOrderStatusRequest struct {
	Status domain.OrderStatus `json:"status"`
}

// OrderList lista os pedidos sincronizados no período informado
func OrderList(orderRepository repository.OrderRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		since, until, err := parsePeriod(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Período inválido: use datas no formato AAAA-MM-DD", nil)
			return
		}

		orders, err := orderRepository.ListOrders(since, until)
		if err != nil {
			logrus.Error("Error listing orders:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar pedidos no banco de dados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(orders); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// UpdateOrderStatus atualiza o status de um pedido local e notifica o
// marketplace de origem. A atualização local vale mesmo quando a
// notificação falha: o marketplace pode ser notificado de novo depois.
func UpdateOrderStatus(
	syncer ordersync.Syncer,
	orderSystem storefront.OrderSystem,
	orderRepository repository.OrderRepository,
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateOrderStatus")

		w.Header().Set("Content-Type", "application/json")

		localOrderID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if localOrderID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do pedido é obrigatório", nil)
			return
		}

		var req UpdateOrderStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		if !req.Status.Valid() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Status inválido: "+string(req.Status), nil)
			return
		}

		order, err := orderRepository.GetByLocalOrderID(localOrderID)
		if err != nil {
			logrus.Error("Error fetching order linkage:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar pedido no banco de dados", nil)
			return
		}
		if order == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Pedido não encontrado ou sem vínculo com marketplace", nil)
			return
		}

		if err := orderSystem.SetOrderStatus(r.Context(), localOrderID, req.Status); err != nil {
			logrus.Error("Error updating local order status:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar o status do pedido local", nil)
			return
		}

		if err := syncer.NotifyStatusChange(r.Context(), localOrderID, req.Status); err != nil {
			logrus.WithError(err).WithField("local_order_id", localOrderID).
				Error("Erro ao notificar o marketplace da mudança de status")

			apiErrors.WriteError(w, apiErrors.ErrExternalService,
				"Status local atualizado, mas a notificação ao marketplace falhou", map[string]any{
					"local_order_id": localOrderID,
					"push_error":     err.Error(),
				})
			return
		}

		json.NewEncoder(w).Encode(map[string]any{
			"local_order_id": localOrderID,
			"status":         req.Status,
		})
	})
}

// UpdateOrderTracking grava o rastreio do pedido local e envia para o
// marketplace de origem
func UpdateOrderTracking(
	syncer ordersync.Syncer,
	orderSystem storefront.OrderSystem,
	orderRepository repository.OrderRepository,
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateOrderTracking")

		w.Header().Set("Content-Type", "application/json")

		localOrderID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if localOrderID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do pedido é obrigatório", nil)
			return
		}

		var req domain.UpdateTrackingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		if req.TrackingNumber == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Código de rastreio é obrigatório", nil)
			return
		}

		order, err := orderRepository.GetByLocalOrderID(localOrderID)
		if err != nil {
			logrus.Error("Error fetching order linkage:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar pedido no banco de dados", nil)
			return
		}
		if order == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Pedido não encontrado ou sem vínculo com marketplace", nil)
			return
		}

		if err := orderSystem.SetTracking(r.Context(), localOrderID, req.TrackingNumber, req.ShippingCompany); err != nil {
			logrus.Error("Error updating local order tracking:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar o rastreio do pedido local", nil)
			return
		}

		if err := orderRepository.SetTracking(order.ID, req.TrackingNumber, req.ShippingCompany); err != nil {
			logrus.Error("Error updating order linkage tracking:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar o rastreio do pedido", nil)
			return
		}

		if err := syncer.NotifyTracking(r.Context(), localOrderID, req.TrackingNumber, req.ShippingCompany); err != nil {
			logrus.WithError(err).WithField("local_order_id", localOrderID).
				Error("Erro ao enviar o rastreio para o marketplace")

			apiErrors.WriteError(w, apiErrors.ErrExternalService,
				"Rastreio gravado localmente, mas o envio ao marketplace falhou", map[string]any{
					"local_order_id": localOrderID,
					"push_error":     err.Error(),
				})
			return
		}

		json.NewEncoder(w).Encode(map[string]any{
			"local_order_id":   localOrderID,
			"tracking_number":  req.TrackingNumber,
			"shipping_company": req.ShippingCompany,
		})
	})
}

// SyncAccountOrders executa um ciclo de sincronização imediato para a conta
// e devolve o resumo do ciclo
func SyncAccountOrders(syncer ordersync.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SyncAccountOrders")

		w.Header().Set("Content-Type", "application/json")

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		summary, err := syncer.RunSyncCycle(r.Context(), accountID)
		if err != nil {
			logrus.Error("Error running sync cycle:", err)

			switch {
			case errors.Is(err, ordersync.ErrAccountNotFound):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Conta não encontrada", nil)

			case errors.Is(err, ordersync.ErrAccountInactive):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Conta inativa", nil)

			case errors.Is(err, ordersync.ErrSyncAlreadyRunning):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Já existe um ciclo em execução para a conta", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao executar o ciclo de sincronização", nil)
			}
			return
		}

		if err := json.NewEncoder(w).Encode(summary); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// parsePeriod lê start_date e end_date da query. Sem parâmetros, vale a
// janela padrão terminando agora.
func parsePeriod(r *http.Request) (time.Time, time.Time, error) {
	until := time.Now()
	since := until.AddDate(0, 0, -defaultOrderListDays)

	if raw := r.URL.Query().Get("start_date"); raw != "" {
		parsed, err := utils.ParseDate(raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		since = *parsed
	}

	if raw := r.URL.Query().Get("end_date"); raw != "" {
		parsed, err := utils.ParseDate(raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		// Fim do período inclui o dia inteiro
		until = parsed.AddDate(0, 0, 1).Add(-time.Second)
	}

	return since, until, nil
}
