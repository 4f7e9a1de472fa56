package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"
	metadomain "github.com/adsync/spend-collector-api/infrastructure/integrator/meta/domain"
)

type ResponseAds struct {
	Data []metadomain.Ad `json:"data"`
}

// GetAds lista os anúncios de uma conta, limitado a limit resultados
func (c *MetaClient) GetAds(accountID string, limit int) ([]metadomain.Ad, error) {
	params := url.Values{}
	params.Add("fields", "id,name,status,created_time")
	params.Add("limit", strconv.Itoa(limit))
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	requestURL := fmt.Sprintf("%s/act_%s/ads?%s", c.Cfg.Meta.URL, accountID, params.Encode())

	body, err := c.doGet(requestURL, "")
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_account_id": accountID,
			"error":         err.Error(),
		}).Error("Erro ao obter anúncios da conta")
		return nil, err
	}

	var response ResponseAds
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"ad_account_id": accountID,
		"ads":           len(response.Data),
	}).Info("Anúncios obtidos para a conta")

	return response.Data, nil
}
