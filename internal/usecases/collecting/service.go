package collecting

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/adsync/spend-collector-api/infrastructure/integrator/meta/domain"
	"github.com/adsync/spend-collector-api/internal/config"
	"github.com/adsync/spend-collector-api/internal/domain"
)

// Pausa após iniciar o navegador, para a sessão terminar de subir
const sessionSettleDelay = 5 * time.Second

// CollectorConfig representa a configuração de uma execução de coleta
type CollectorConfig struct {
	DaysBack             int
	DailyBreakdown       bool
	DelayBetweenProfiles int
	AdsFetchLimit        int
}

// Service é o orquestrador da coleta de gastos: para cada perfil, em
// sequência, adquire a sessão isolada, busca as métricas do período,
// normaliza e persiste, e sempre libera a sessão ao final. Falhas de um
// perfil não interrompem os demais; apenas a verificação de
// conectividade inicial aborta a execução inteira.
type Service struct {
	config   CollectorConfig
	sessions SessionProvider
	metrics  MetricsFetcher
	store    SpendStore

	// Injetáveis para teste
	sleep func(time.Duration)
	now   func() time.Time
}

func NewService(
	appConfig *config.Config,
	sessions SessionProvider,
	metrics MetricsFetcher,
	store SpendStore,
) *Service {
	collectorConfig := CollectorConfig{
		DaysBack:             appConfig.Collector.DaysBack,
		DailyBreakdown:       appConfig.Collector.DailyBreakdown,
		DelayBetweenProfiles: appConfig.Collector.DelayBetweenProfiles,
		AdsFetchLimit:        appConfig.Collector.AdsFetchLimit,
	}

	return &Service{
		config:   collectorConfig,
		sessions: sessions,
		metrics:  metrics,
		store:    store,
		sleep:    time.Sleep,
		now:      time.Now,
	}
}

// Run executa uma coleta completa sobre os perfis informados, na ordem
// recebida, e devolve o resumo da execução. Retorna erro somente quando
// a verificação de conectividade inicial falha.
func (s *Service) Run(profiles []*domain.Profile) (*domain.CollectionResult, error) {
	logrus.Info("Iniciando coleta de gastos de anúncios")

	if err := s.metrics.TestConnection(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectivity, err)
	}

	window := s.reportingWindow()
	logrus.WithFields(logrus.Fields{
		"start_date": window.StartDate.Format(time.DateOnly),
		"end_date":   window.EndDate.Format(time.DateOnly),
		"profiles":   len(profiles),
	}).Info("Período de coleta resolvido")

	result := &domain.CollectionResult{
		ProfilesAttempted: len(profiles),
	}

	for i, profile := range profiles {
		logrus.WithFields(logrus.Fields{
			"profile_id": profile.ProfileID,
			"position":   fmt.Sprintf("%d/%d", i+1, len(profiles)),
		}).Info("Processando perfil")

		saved, err := s.processProfile(profile, window)
		result.RecordsSaved += saved
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"profile_id": profile.ProfileID,
				"error":      err.Error(),
			}).Error("Erro ao processar perfil")
		} else {
			result.ProfilesSucceeded++
		}

		// Pausa entre perfis para reduzir carga; não pausa após o último
		if i < len(profiles)-1 && s.config.DelayBetweenProfiles > 0 {
			logrus.WithField("delay_seconds", s.config.DelayBetweenProfiles).Info("Pausa antes do próximo perfil")
			s.sleep(time.Duration(s.config.DelayBetweenProfiles) * time.Second)
		}
	}

	logrus.WithFields(logrus.Fields{
		"succeeded": result.ProfilesSucceeded,
		"attempted": result.ProfilesAttempted,
		"records":   result.RecordsSaved,
	}).Info("Coleta concluída")

	return result, nil
}

// reportingWindow resolve o intervalo de datas da coleta: termina ontem
// e começa days_back dias antes de hoje. days_back menor que 1 é tratado
// como 1 para que o início nunca ultrapasse o fim.
func (s *Service) reportingWindow() domain.ReportingWindow {
	now := s.now()

	daysBack := s.config.DaysBack
	if daysBack < 1 {
		daysBack = 1
	}

	return domain.ReportingWindow{
		StartDate: truncateToDate(now.AddDate(0, 0, -daysBack)),
		EndDate:   truncateToDate(now.AddDate(0, 0, -1)),
	}
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// processProfile executa a coleta de um único perfil e devolve quantos
// registros foram persistidos. A sessão é sempre liberada ao final,
// inclusive quando a aquisição falhou; erros de liberação são apenas
// registrados e não alteram o desfecho do perfil.
func (s *Service) processProfile(profile *domain.Profile, window domain.ReportingWindow) (saved int, err error) {
	defer func() {
		if releaseErr := s.sessions.Release(profile.ProfileID); releaseErr != nil {
			logrus.WithFields(logrus.Fields{
				"profile_id": profile.ProfileID,
				"error":      releaseErr.Error(),
			}).Error("Erro ao liberar sessão do navegador")
		}
	}()

	session, err := s.sessions.Acquire(profile.ProfileID)
	if err != nil {
		return 0, NewProfileError(fmt.Errorf("%w: %v", ErrSessionAcquire, err), profile.ProfileID)
	}

	// Aguarda a inicialização completa do navegador
	s.sleep(sessionSettleDelay)

	proxyURL := resolveProxy(profile, session)

	adIDs := profile.AdIDs
	if len(adIDs) == 0 {
		adIDs, err = s.metrics.ListAdIDs(profile.AdAccountID, s.config.AdsFetchLimit)
		if err != nil {
			return 0, NewProfileError(fmt.Errorf("%w: %v", ErrAdListFetch, err), profile.ProfileID)
		}

		logrus.WithFields(logrus.Fields{
			"profile_id":    profile.ProfileID,
			"ad_account_id": profile.AdAccountID,
			"ads":           len(adIDs),
		}).Info("Anúncios resolvidos para a conta")
	}

	var rows []metadomain.AdInsightRow
	if s.config.DailyBreakdown {
		rows, err = s.metrics.FetchDailyInsights(profile.AdAccountID, window, adIDs, proxyURL)
	} else {
		rows, err = s.metrics.FetchInsights(profile.AdAccountID, window, adIDs, proxyURL)
	}
	if err != nil {
		return 0, NewProfileError(fmt.Errorf("%w: %v", ErrInsightsFetch, err), profile.ProfileID)
	}

	// Falha ao persistir um registro não derruba o lote: o registro é
	// registrado em log e os demais continuam
	for _, row := range rows {
		record := s.normalizeRecord(profile, row, window)
		if saveErr := s.store.SaveOrUpdate(record); saveErr != nil {
			logrus.WithFields(logrus.Fields{
				"profile_id": profile.ProfileID,
				"ad_id":      record.AdID,
				"error":      saveErr.Error(),
			}).Error("Erro ao salvar registro de gasto")
			continue
		}
		saved++
	}

	logrus.WithFields(logrus.Fields{
		"profile_id": profile.ProfileID,
		"saved":      saved,
		"fetched":    len(rows),
	}).Info("Registros salvos para o perfil")

	return saved, nil
}

// resolveProxy define o roteamento das chamadas de métricas: o proxy
// explícito do perfil tem precedência; na ausência dele, a porta local
// exposta pela sessão vira um proxy socks5 local; senão, sem proxy
func resolveProxy(profile *domain.Profile, session *domain.SessionInfo) string {
	if profile.ProxyURL != "" {
		return profile.ProxyURL
	}

	if session != nil && session.Port > 0 {
		return fmt.Sprintf("socks5://127.0.0.1:%d", session.Port)
	}

	return ""
}

// normalizeRecord converte uma linha do provedor em um SpendRecord,
// preenchendo datas ausentes com os limites do período e numéricos
// ausentes com zero
func (s *Service) normalizeRecord(profile *domain.Profile, row metadomain.AdInsightRow, window domain.ReportingWindow) *domain.SpendRecord {
	return &domain.SpendRecord{
		ProfileID:   profile.ProfileID,
		AdAccountID: profile.AdAccountID,
		AdID:        row.AdID,
		AdName:      row.AdName,
		DateStart:   parseDateOrDefault(row.DateStart, window.StartDate),
		DateEnd:     parseDateOrDefault(row.DateStop, window.EndDate),
		Spend:       parseFloatOrZero(row.Spend, "spend", row.AdID),
		Currency:    profile.Currency,
		Impressions: parseIntOrZero(row.Impressions, "impressions", row.AdID),
		Clicks:      parseIntOrZero(row.Clicks, "clicks", row.AdID),
		CTR:         parseFloatOrZero(row.CTR, "ctr", row.AdID),
		CPC:         parseFloatOrZero(row.CPC, "cpc", row.AdID),
		CPM:         parseFloatOrZero(row.CPM, "cpm", row.AdID),
	}
}

func parseDateOrDefault(value string, fallback time.Time) time.Time {
	if value == "" {
		return fallback
	}

	date, err := time.Parse(time.DateOnly, value)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"value": value,
			"error": err.Error(),
		}).Warn("Data inválida na resposta de insights, usando limite do período")
		return fallback
	}

	return date
}

func parseFloatOrZero(value, field, adID string) float64 {
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
			"ad_id": adID,
		}).Warn("Valor numérico inválido na resposta de insights")
		return 0
	}

	return parsed
}

func parseIntOrZero(value, field, adID string) int {
	if value == "" {
		return 0
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
			"ad_id": adID,
		}).Warn("Valor inteiro inválido na resposta de insights")
		return 0
	}

	return parsed
}
