package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-manager-api/internal/domain"
	"github.com/vfg2006/marketplace-manager-api/internal/scheduler"
	"github.com/vfg2006/marketplace-manager-api/pkg/apiErrors"
	"github.com/vfg2006/marketplace-manager-api/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeOrders  = "orders"
	CronJobTypeCatalog = "catalog"
	CronJobTypeAll     = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	OrderSyncService   *scheduler.OrderSyncService
	CatalogSyncService *scheduler.CatalogSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Verificar permissões - apenas administradores podem executar cron jobs
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		// Validar o tipo de cron job
		switch cronType {
		case CronJobTypeOrders:
			// Executar sincronização de pedidos
			if services.OrderSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de pedidos não disponível", nil)
				return
			}
			services.OrderSyncService.TriggerManualSync()

		case CronJobTypeCatalog:
			// Executar publicação de catálogo
			if services.CatalogSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de publicação de catálogo não disponível", nil)
				return
			}
			services.CatalogSyncService.TriggerManualSync()

		case CronJobTypeAll:
			// Executar ambas as sincronizações
			if services.OrderSyncService != nil {
				services.OrderSyncService.TriggerManualSync()
			}
			if services.CatalogSyncService != nil {
				services.CatalogSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: orders, catalog, all", nil)
			return
		}

		// Responder com sucesso
		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		// Verificar permissões - apenas administradores podem ver status das crons
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{
			"orders":  services.OrderSyncService.GetStatus(),
			"catalog": services.CatalogSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
