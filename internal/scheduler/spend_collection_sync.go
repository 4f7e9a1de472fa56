package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/adsync/spend-collector-api/infrastructure/repository"
	"github.com/adsync/spend-collector-api/internal/config"
	"github.com/adsync/spend-collector-api/internal/usecases/collecting"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// CollectionSyncConfig representa a configuração do agendador de coletas
type CollectionSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// CollectionSyncService gerencia o agendamento e execução das coletas
// automáticas de gastos
type CollectionSyncService struct {
	scheduler           *gocron.Scheduler
	config              CollectionSyncConfig
	profileRepo         repository.ProfileRepository
	collector           *collecting.Service
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

// NewCollectionSyncService cria uma nova instância do serviço de coletas agendadas
func NewCollectionSyncService(
	profileRepo repository.ProfileRepository,
	collector *collecting.Service,
	appConfig *config.Config,
) *CollectionSyncService {
	syncConfig := CollectionSyncConfig{
		CronSchedule: appConfig.CollectionSync.CronSchedule,
		SyncEnabled:  appConfig.CollectionSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.UTC)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de coletas carregada")

	return &CollectionSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		profileRepo: profileRepo,
		collector:   collector,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *CollectionSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Coleta automática de gastos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de coletas de gastos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runCollection()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar coleta de gastos: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de coletas de gastos")
		s.scheduler.Stop()
	}()

	return nil
}

// runCollection executa uma coleta completa sobre os perfis ativos.
// Execuções concorrentes não são permitidas: uma coleta já em andamento
// faz a nova solicitação ser ignorada.
func (s *CollectionSyncService) runCollection() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Coleta de gastos já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.lastSyncError = ""

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando coleta de gastos para todos os perfis ativos")

	profiles, err := s.profileRepo.ListActive()
	if err != nil {
		s.lastSyncError = err.Error()
		logrus.WithError(err).Error("Erro ao buscar perfis ativos para coleta de gastos")
		return
	}

	if len(profiles) == 0 {
		logrus.Info("Nenhum perfil ativo encontrado para coleta de gastos")
		return
	}

	result, err := s.collector.Run(profiles)
	if err != nil {
		s.lastSyncError = err.Error()
		logrus.WithError(err).Error("Coleta de gastos abortada")
		return
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":           duration.String(),
		"profiles_attempted": result.ProfilesAttempted,
		"profiles_succeeded": result.ProfilesSucceeded,
		"records_saved":      result.RecordsSaved,
	}).Info("Coleta de gastos concluída")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma coleta de gastos
func (s *CollectionSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Coleta de gastos já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando coleta manual de gastos")
	go s.runCollection()
}

// GetStatus retorna o status atual do agendador
func (s *CollectionSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           running,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
