package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/adsync/spend-collector-api/infrastructure/integrator/meta/domain"
)

// TestConnection faz uma chamada leve de identidade (/me) para validar
// o token e a conectividade com a Graph API antes de uma coleta
func (c *MetaClient) TestConnection() error {
	params := url.Values{}
	params.Add("fields", "id,name")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	requestURL := fmt.Sprintf("%s/me?%s", c.Cfg.Meta.URL, params.Encode())

	body, err := c.doGet(requestURL, "")
	if err != nil {
		logrus.WithError(err).Error("Erro ao testar conexão com a Graph API")
		return err
	}

	var me metadomain.MeProfile
	if err := json.Unmarshal(body, &me); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return err
	}

	logrus.WithField("user", me.Name).Info("Conexão com a Graph API verificada com sucesso")
	return nil
}
