package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/adsync/spend-collector-api/infrastructure/integrator/meta/domain"
)

type ResponseAdAccounts struct {
	Data []metadomain.AdAccount `json:"data"`
}

// GetAdAccounts lista as contas de anúncio visíveis para o usuário do token
func (c *MetaClient) GetAdAccounts(userID string) ([]metadomain.AdAccount, error) {
	if userID == "" {
		userID = "me"
	}

	params := url.Values{}
	params.Add("fields", "id,name,account_status,currency")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	requestURL := fmt.Sprintf("%s/%s/adaccounts?%s", c.Cfg.Meta.URL, userID, params.Encode())

	body, err := c.doGet(requestURL, "")
	if err != nil {
		logrus.WithError(err).Error("Erro ao obter contas de anúncio")
		return nil, err
	}

	var response ResponseAdAccounts
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	logrus.WithField("accounts", len(response.Data)).Info("Contas de anúncio obtidas")
	return response.Data, nil
}
