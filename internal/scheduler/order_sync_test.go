package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/marketplace-manager-api/internal/config"
	"github.com/vfg2006/marketplace-manager-api/internal/domain"
	mock_ordersync "github.com/vfg2006/marketplace-manager-api/internal/usecases/ordersync/mocks"
	"go.uber.org/mock/gomock"
)

func TestOrderSyncService_syncAllAccounts(t *testing.T) {
	t.Run("executa os ciclos e registra o horário da conclusão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSyncer := mock_ordersync.NewMockSyncer(ctrl)
		mockSyncer.EXPECT().
			RunAllActiveSyncCycles(gomock.Any()).
			Return([]*domain.SyncSummary{
				{AccountID: "ACC001", Created: 2, Updated: 1},
				{AccountID: "ACC002", Failed: 1, Aborted: true},
			}, nil)

		service := &OrderSyncService{
			config: OrderSyncConfig{SyncEnabled: true},
			syncer: mockSyncer,
		}

		service.syncAllAccounts(context.Background())

		assert.False(t, service.syncRunning)
		assert.False(t, service.lastSyncStartedAt.IsZero())
		assert.False(t, service.lastSyncCompletedAt.IsZero())
	})

	t.Run("não registra conclusão quando o ciclo falha", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSyncer := mock_ordersync.NewMockSyncer(ctrl)
		mockSyncer.EXPECT().
			RunAllActiveSyncCycles(gomock.Any()).
			Return(nil, errors.New("banco indisponível"))

		service := &OrderSyncService{
			config: OrderSyncConfig{SyncEnabled: true},
			syncer: mockSyncer,
		}

		service.syncAllAccounts(context.Background())

		assert.False(t, service.syncRunning)
		assert.True(t, service.lastSyncCompletedAt.IsZero())
	})

	t.Run("ignora execução quando já existe sincronização em andamento", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// Nenhuma chamada esperada no mock
		mockSyncer := mock_ordersync.NewMockSyncer(ctrl)

		service := &OrderSyncService{
			config:      OrderSyncConfig{SyncEnabled: true},
			syncer:      mockSyncer,
			syncRunning: true,
		}

		service.syncAllAccounts(context.Background())

		assert.True(t, service.syncRunning)
	})
}

func TestOrderSyncService_Start(t *testing.T) {
	t.Run("não agenda nada quando a sincronização está desabilitada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cfg := &config.Config{}
		cfg.OrderSync.Enabled = false

		service := NewOrderSyncService(mock_ordersync.NewMockSyncer(ctrl), cfg)

		err := service.Start(context.Background())
		assert.NoError(t, err)
	})
}

func TestOrderSyncService_GetStatus(t *testing.T) {
	service := &OrderSyncService{
		config: OrderSyncConfig{
			CronSchedule:      "*/15 * * * *",
			PageSize:          50,
			MaxPages:          10,
			MaxConcurrentJobs: 4,
			SyncEnabled:       true,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "*/15 * * * *", status["sync_cron"])
	assert.Equal(t, 50, status["sync_page_size"])
	assert.Equal(t, 10, status["sync_max_pages"])
	assert.Equal(t, 4, status["sync_max_concurrent"])
}
