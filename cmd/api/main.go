package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketplace-manager-api/infrastructure/integrator/marketplace"
	"github.com/vfg2006/marketplace-manager-api/infrastructure/repository"
	"github.com/vfg2006/marketplace-manager-api/infrastructure/storefront"
	"github.com/vfg2006/marketplace-manager-api/internal/api"
	"github.com/vfg2006/marketplace-manager-api/internal/config"
	"github.com/vfg2006/marketplace-manager-api/internal/scheduler"
	"github.com/vfg2006/marketplace-manager-api/internal/usecases/account"
	"github.com/vfg2006/marketplace-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketplace-manager-api/internal/usecases/catalogsync"
	"github.com/vfg2006/marketplace-manager-api/internal/usecases/ordersync"
	"github.com/vfg2006/marketplace-manager-api/internal/usecases/pricing"
	"github.com/vfg2006/marketplace-manager-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	accountRepo := repository.NewAccountRepository(pgConn)
	orderRepo := repository.NewOrderRepository(pgConn)
	costRepo := repository.NewCostRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	orderSystem := storefront.NewOrderSystem(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	clientFactory := marketplace.NewFactory(cfg)

	accountService := account.NewService(accountRepo, clientFactory)
	pricer := pricing.NewService(costRepo)
	syncer := ordersync.NewService(cfg, clientFactory, accountRepo, orderRepo, orderSystem)
	publisher := catalogsync.NewService(cfg, clientFactory, accountRepo, orderSystem, pricer)
	reporter := reporting.NewService(orderRepo, costRepo, orderSystem)

	// Inicializa os agendadores de sincronização
	orderSyncService := scheduler.NewOrderSyncService(syncer, cfg)
	catalogSyncService := scheduler.NewCatalogSyncService(publisher, cfg)

	// Inicia os agendadores em background
	if err := orderSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de pedidos")
	} else {
		logrus.Info("Agendador de sincronização de pedidos iniciado com sucesso")
	}

	if err := catalogSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de publicação de catálogo")
	} else {
		logrus.Info("Agendador de publicação de catálogo iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		accountService,
		authenticator,
		syncer,
		publisher,
		pricer,
		reporter,
		orderSystem,
		orderRepo,
		orderSyncService,
		catalogSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
