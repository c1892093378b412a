package handler

import (
	"net/http"

	"github.com/vfg2006/marketplace-manager-api/infrastructure/repository"
	"github.com/vfg2006/marketplace-manager-api/infrastructure/storefront"
	"github.com/vfg2006/marketplace-manager-api/internal/api/handler/router"
	"github.com/vfg2006/marketplace-manager-api/internal/usecases/account"
	"github.com/vfg2006/marketplace-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketplace-manager-api/internal/usecases/catalogsync"
	"github.com/vfg2006/marketplace-manager-api/internal/usecases/ordersync"
	"github.com/vfg2006/marketplace-manager-api/internal/usecases/pricing"
	"github.com/vfg2006/marketplace-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/marketplace-manager-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func MarketplaceAccounts(service account.AccountService, syncer ordersync.Syncer, publisher catalogsync.Publisher) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts",
			Method:      http.MethodGet,
			Handler:     MarketplaceAccountList(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts",
			Method:      http.MethodPost,
			Handler:     CreateMarketplaceAccount(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/accounts/:id",
			Method:      http.MethodGet,
			Handler:     GetMarketplaceAccount(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id",
			Method:      http.MethodPut,
			Handler:     UpdateMarketplaceAccount(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/accounts/:id/sync",
			Method:      http.MethodPost,
			Handler:     SyncAccountOrders(syncer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/accounts/:id/catalog/push",
			Method:      http.MethodPost,
			Handler:     PushCatalog(publisher),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Orders(
	syncer ordersync.Syncer,
	orderSystem storefront.OrderSystem,
	orderRepository repository.OrderRepository,
) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/orders",
			Method:      http.MethodGet,
			Handler:     OrderList(orderRepository),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/orders/:id/status",
			Method:      http.MethodPut,
			Handler:     UpdateOrderStatus(syncer, orderSystem, orderRepository),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/orders/:id/tracking",
			Method:      http.MethodPut,
			Handler:     UpdateOrderTracking(syncer, orderSystem, orderRepository),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func ProductCosts(service pricing.Pricer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/products/:id/costs",
			Method:      http.MethodGet,
			Handler:     GetProductCosts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products/:id/costs",
			Method:      http.MethodPut,
			Handler:     UpdateProductCosts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/profit",
			Method:      http.MethodGet,
			Handler:     GetProfitReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
