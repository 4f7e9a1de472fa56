package meta

import (
	"github.com/sirupsen/logrus"
	metadomain "github.com/adsync/spend-collector-api/infrastructure/integrator/meta/domain"
	"github.com/adsync/spend-collector-api/infrastructure/integrator/meta/metaclient"
	"github.com/adsync/spend-collector-api/internal/config"
	"github.com/adsync/spend-collector-api/internal/domain"
)

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// TestConnection valida a conectividade com a Graph API
func (s *MetaIntegrator) TestConnection() error {
	return s.Client.TestConnection()
}

// ListAdIDs resolve os identificadores de todos os anúncios de uma conta,
// limitado a limit resultados
func (s *MetaIntegrator) ListAdIDs(accountID string, limit int) ([]string, error) {
	ads, err := s.Client.GetAds(accountID, limit)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_account_id": accountID,
			"error":         err.Error(),
		}).Error("Erro ao listar anúncios da conta")
		return nil, err
	}

	adIDs := make([]string, 0, len(ads))
	for _, ad := range ads {
		adIDs = append(adIDs, ad.ID)
	}

	return adIDs, nil
}

// FetchInsights busca métricas agregadas do período para os anúncios informados
func (s *MetaIntegrator) FetchInsights(accountID string, window domain.ReportingWindow, adIDs []string, proxyURL string) ([]metadomain.AdInsightRow, error) {
	return s.Client.GetAdInsights(accountID, window, adIDs, proxyURL)
}

// FetchDailyInsights busca métricas com uma linha por dia do período
func (s *MetaIntegrator) FetchDailyInsights(accountID string, window domain.ReportingWindow, adIDs []string, proxyURL string) ([]metadomain.AdInsightRow, error) {
	return s.Client.GetDailyInsights(accountID, window, adIDs, proxyURL)
}

// GetAdAccounts lista as contas de anúncio visíveis para o token configurado
func (s *MetaIntegrator) GetAdAccounts() ([]metadomain.AdAccount, error) {
	return s.Client.GetAdAccounts("me")
}
