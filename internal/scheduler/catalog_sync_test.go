package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/marketplace-manager-api/internal/config"
	"github.com/vfg2006/marketplace-manager-api/internal/domain"
	mock_catalogsync "github.com/vfg2006/marketplace-manager-api/internal/usecases/catalogsync/mocks"
	"go.uber.org/mock/gomock"
)

func TestCatalogSyncService_pushAllCatalogs(t *testing.T) {
	t.Run("publica o catálogo e registra o horário da conclusão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockPublisher := mock_catalogsync.NewMockPublisher(ctrl)
		mockPublisher.EXPECT().
			PushAllActiveCatalogs(gomock.Any()).
			Return(map[string]*domain.BatchPushResult{
				"ACC001": {Sent: 10, Succeeded: 9, Failed: 1},
				"ACC002": {Sent: 5, Succeeded: 5},
			}, nil)

		service := &CatalogSyncService{
			config:    CatalogSyncConfig{SyncEnabled: true},
			publisher: mockPublisher,
		}

		service.pushAllCatalogs(context.Background())

		assert.False(t, service.syncRunning)
		assert.False(t, service.lastSyncCompletedAt.IsZero())
	})

	t.Run("não registra conclusão quando a publicação falha", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockPublisher := mock_catalogsync.NewMockPublisher(ctrl)
		mockPublisher.EXPECT().
			PushAllActiveCatalogs(gomock.Any()).
			Return(nil, errors.New("banco indisponível"))

		service := &CatalogSyncService{
			config:    CatalogSyncConfig{SyncEnabled: true},
			publisher: mockPublisher,
		}

		service.pushAllCatalogs(context.Background())

		assert.False(t, service.syncRunning)
		assert.True(t, service.lastSyncCompletedAt.IsZero())
	})

	t.Run("ignora execução quando já existe publicação em andamento", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// Nenhuma chamada esperada no mock
		mockPublisher := mock_catalogsync.NewMockPublisher(ctrl)

		service := &CatalogSyncService{
			config:      CatalogSyncConfig{SyncEnabled: true},
			publisher:   mockPublisher,
			syncRunning: true,
		}

		service.pushAllCatalogs(context.Background())

		assert.True(t, service.syncRunning)
	})
}

func TestCatalogSyncService_Start(t *testing.T) {
	t.Run("não agenda nada quando a publicação está desabilitada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cfg := &config.Config{}
		cfg.CatalogSync.Enabled = false

		service := NewCatalogSyncService(mock_catalogsync.NewMockPublisher(ctrl), cfg)

		err := service.Start(context.Background())
		assert.NoError(t, err)
	})
}
