package collecting

import (
	metadomain "github.com/adsync/spend-collector-api/infrastructure/integrator/meta/domain"
	"github.com/adsync/spend-collector-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// SessionProvider gerencia sessões isoladas de navegador por perfil.
// Acquire duas vezes sem Release intermediário é comportamento
// indefinido, delegado ao provedor externo.
type SessionProvider interface {
	Acquire(profileID string) (*domain.SessionInfo, error)
	Release(profileID string) error
}

// MetricsFetcher expõe as operações de leitura do provedor de métricas
// usadas por uma coleta
type MetricsFetcher interface {
	// TestConnection valida a conectividade antes de iterar os perfis
	TestConnection() error

	// ListAdIDs resolve todos os anúncios de uma conta, limitado a limit
	ListAdIDs(accountID string, limit int) ([]string, error)

	// FetchInsights busca métricas agregadas do período
	FetchInsights(accountID string, window domain.ReportingWindow, adIDs []string, proxyURL string) ([]metadomain.AdInsightRow, error)

	// FetchDailyInsights busca métricas com uma linha por dia do período
	FetchDailyInsights(accountID string, window domain.ReportingWindow, adIDs []string, proxyURL string) ([]metadomain.AdInsightRow, error)
}

// SpendStore persiste registros normalizados de gasto
type SpendStore interface {
	SaveOrUpdate(record *domain.SpendRecord) error
}
