package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/adsync/spend-collector-api/internal/domain"
	metadomain "github.com/adsync/spend-collector-api/infrastructure/integrator/meta/domain"
)

type ResponseAdInsights struct {
	Data []metadomain.AdInsightRow `json:"data"`
}

type insightsFilter struct {
	Field    string   `json:"field"`
	Operator string   `json:"operator"`
	Value    []string `json:"value"`
}

// GetAdInsights busca métricas agregadas por anúncio para o período
func (c *MetaClient) GetAdInsights(accountID string, window domain.ReportingWindow, adIDs []string, proxyURL string) ([]metadomain.AdInsightRow, error) {
	return c.fetchInsights(accountID, window, adIDs, proxyURL, false)
}

// GetDailyInsights busca métricas por anúncio com uma linha por dia do período
func (c *MetaClient) GetDailyInsights(accountID string, window domain.ReportingWindow, adIDs []string, proxyURL string) ([]metadomain.AdInsightRow, error) {
	return c.fetchInsights(accountID, window, adIDs, proxyURL, true)
}

func (c *MetaClient) fetchInsights(accountID string, window domain.ReportingWindow, adIDs []string, proxyURL string, daily bool) ([]metadomain.AdInsightRow, error) {
	params := url.Values{}

	if daily {
		params.Add("fields", "ad_id,ad_name,spend,impressions,clicks,date_start,date_stop")
		params.Add("time_increment", "1")
	} else {
		params.Add("fields", "ad_id,ad_name,spend,impressions,clicks,ctr,cpc,cpm")
	}

	timeRange := fmt.Sprintf(
		"{\"since\":\"%s\",\"until\":\"%s\"}",
		window.StartDate.Format(time.DateOnly),
		window.EndDate.Format(time.DateOnly),
	)
	params.Add("time_range", timeRange)
	params.Add("level", "ad")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	// Quando um conjunto explícito de anúncios é informado, restringe a
	// consulta via filtering ad.id IN (...)
	if len(adIDs) > 0 {
		filtering, err := json.Marshal([]insightsFilter{{
			Field:    "ad.id",
			Operator: "IN",
			Value:    adIDs,
		}})
		if err != nil {
			return nil, fmt.Errorf("erro ao serializar filtro de anúncios: %w", err)
		}
		params.Add("filtering", string(filtering))
	}

	requestURL := fmt.Sprintf("%s/act_%s/insights?%s", c.Cfg.Meta.URL, accountID, params.Encode())

	body, err := c.doGet(requestURL, proxyURL)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_account_id": accountID,
			"daily":         daily,
			"error":         err.Error(),
		}).Error("Erro ao obter insights da conta")
		return nil, err
	}

	var response ResponseAdInsights
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"ad_account_id": accountID,
		"daily":         daily,
		"rows":          len(response.Data),
	}).Info("Insights obtidos para a conta")

	return response.Data, nil
}
