package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-manager-api/internal/config"
	"github.com/vfg2006/marketplace-manager-api/internal/usecases/ordersync"
)

// OrderSyncConfig representa a configuração do agendador de pedidos
type OrderSyncConfig struct {
	CronSchedule      string
	PageSize          int
	MaxPages          int
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// OrderSyncService gerencia o agendamento e execução da sincronização de
// pedidos dos marketplaces
type OrderSyncService struct {
	scheduler           *gocron.Scheduler
	config              OrderSyncConfig
	syncer              ordersync.Syncer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewOrderSyncService cria uma nova instância do serviço de sincronização de pedidos
func NewOrderSyncService(
	syncer ordersync.Syncer,
	appConfig *config.Config,
) *OrderSyncService {
	// Criar a configuração com base na config global
	syncConfig := OrderSyncConfig{
		CronSchedule:      appConfig.OrderSync.CronSchedule,
		PageSize:          appConfig.OrderSync.PageSize,
		MaxPages:          appConfig.OrderSync.MaxPages,
		MaxConcurrentJobs: appConfig.OrderSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.OrderSync.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"page_size":           syncConfig.PageSize,
		"max_pages":           syncConfig.MaxPages,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de pedidos carregada")

	return &OrderSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		syncer:      syncer,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *OrderSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de pedidos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de pedidos")

	// Agendar a sincronização de pedidos
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllAccounts(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de pedidos: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de pedidos")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllAccounts executa o ciclo de sincronização de todas as contas ativas
func (s *OrderSyncService) syncAllAccounts(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de pedidos já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de pedidos para todas as contas ativas")

	summaries, err := s.syncer.RunAllActiveSyncCycles(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao executar ciclos de sincronização de pedidos")
		return
	}

	var created, updated, failed int
	for _, summary := range summaries {
		created += summary.Created
		updated += summary.Updated
		failed += summary.Failed
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"accounts": len(summaries),
		"created":  created,
		"updated":  updated,
		"failed":   failed,
	}).Info("Sincronização de pedidos concluída")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma sincronização de pedidos
func (s *OrderSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de pedidos já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de pedidos")
	go s.syncAllAccounts(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *OrderSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_page_size":         s.config.PageSize,
		"sync_max_pages":         s.config.MaxPages,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
