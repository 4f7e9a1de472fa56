package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/adsync/spend-collector-api/infrastructure/repository/mocks"
	"github.com/adsync/spend-collector-api/internal/config"
	"github.com/adsync/spend-collector-api/internal/usecases/collecting"
	collectingmocks "github.com/adsync/spend-collector-api/internal/usecases/collecting/mocks"
	"go.uber.org/mock/gomock"
)

func newCollectorForTest(ctrl *gomock.Controller) *collecting.Service {
	cfg := &config.Config{
		Collector: config.Collector{
			DaysBack: 1,
		},
	}

	// Nenhuma chamada é esperada nesses mocks: os testes abaixo cobrem
	// os caminhos que terminam antes da coleta começar
	sessions := collectingmocks.NewMockSessionProvider(ctrl)
	metrics := collectingmocks.NewMockMetricsFetcher(ctrl)
	store := collectingmocks.NewMockSpendStore(ctrl)

	return collecting.NewService(cfg, sessions, metrics, store)
}

func TestCollectionSyncService_runCollection_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProfileRepo := mocks.NewMockProfileRepository(ctrl)
	mockProfileRepo.EXPECT().ListActive().Return(nil, errors.New("connection reset"))

	service := &CollectionSyncService{
		profileRepo: mockProfileRepo,
		collector:   newCollectorForTest(ctrl),
	}

	service.runCollection()

	assert.Equal(t, "connection reset", service.lastSyncError)
	assert.False(t, service.syncRunning)
	assert.True(t, service.lastSyncCompletedAt.IsZero())
}

func TestCollectionSyncService_runCollection_NoActiveProfiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProfileRepo := mocks.NewMockProfileRepository(ctrl)
	mockProfileRepo.EXPECT().ListActive().Return(nil, nil)

	service := &CollectionSyncService{
		profileRepo: mockProfileRepo,
		collector:   newCollectorForTest(ctrl),
	}

	service.runCollection()

	assert.Empty(t, service.lastSyncError)
	assert.False(t, service.lastSyncStartedAt.IsZero())
}

func TestCollectionSyncService_runCollection_AlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma chamada ao repositório é esperada quando já há coleta em andamento
	mockProfileRepo := mocks.NewMockProfileRepository(ctrl)

	service := &CollectionSyncService{
		profileRepo: mockProfileRepo,
		collector:   newCollectorForTest(ctrl),
		syncRunning: true,
	}

	service.runCollection()

	assert.True(t, service.lastSyncStartedAt.IsZero())
}

func TestCollectionSyncService_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := &CollectionSyncService{
		config: CollectionSyncConfig{
			CronSchedule: "0 */6 * * *",
			SyncEnabled:  true,
		},
		collector: newCollectorForTest(ctrl),
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 */6 * * *", status["sync_cron"])
	assert.Equal(t, false, status["sync_running"])
}
