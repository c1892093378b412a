package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-manager-api/internal/config"
	"github.com/vfg2006/marketplace-manager-api/internal/usecases/catalogsync"
)

// CatalogSyncConfig representa a configuração do agendador de catálogo
type CatalogSyncConfig struct {
	CronSchedule string
	BatchSize    int
	SyncEnabled  bool
}

// CatalogSyncService gerencia o agendamento da publicação de catálogo nos
// marketplaces
type CatalogSyncService struct {
	scheduler           *gocron.Scheduler
	config              CatalogSyncConfig
	publisher           catalogsync.Publisher
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewCatalogSyncService cria uma nova instância do serviço de publicação de catálogo
func NewCatalogSyncService(
	publisher catalogsync.Publisher,
	appConfig *config.Config,
) *CatalogSyncService {
	syncConfig := CatalogSyncConfig{
		CronSchedule: appConfig.CatalogSync.CronSchedule,
		BatchSize:    appConfig.CatalogSync.BatchSize,
		SyncEnabled:  appConfig.CatalogSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"batch_size":    syncConfig.BatchSize,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de catálogo carregada")

	return &CatalogSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		publisher:   publisher,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *CatalogSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Publicação de catálogo desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de publicação de catálogo")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.pushAllCatalogs(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar publicação de catálogo: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de publicação de catálogo")
		s.scheduler.Stop()
	}()

	return nil
}

// pushAllCatalogs publica o catálogo em todas as contas ativas
func (s *CatalogSyncService) pushAllCatalogs(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Publicação de catálogo já em andamento, ignorando")
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

	logrus.Info("Iniciando publicação de catálogo para todas as contas ativas")

	results, err := s.publisher.PushAllActiveCatalogs(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao publicar catálogo")
		return
	}

	var sent, succeeded, failed int
	for _, result := range results {
		sent += result.Sent
		succeeded += result.Succeeded
		failed += result.Failed
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"accounts":  len(results),
		"sent":      sent,
		"succeeded": succeeded,
		"failed":    failed,
	}).Info("Publicação de catálogo concluída")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma publicação de catálogo
func (s *CatalogSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Publicação de catálogo já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando publicação manual de catálogo")
	go s.pushAllCatalogs(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *CatalogSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_batch_size":        s.config.BatchSize,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
