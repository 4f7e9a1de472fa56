package dolphinclient

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
)

type responseProfileList struct {
	Data []BrowserProfile `json:"data"`
}

// StartProfile inicia a sessão isolada do perfil informado
func (c *DolphinClient) StartProfile(profileID string) (*StartProfileResponse, error) {
	body, err := c.do(http.MethodGet, fmt.Sprintf("/browser_profiles/%s/start", profileID), nil)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"profile_id": profileID,
			"error":      err.Error(),
		}).Error("Erro ao iniciar perfil do navegador")
		return nil, err
	}

	var resp StartProfileResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta de start: %w", err)
	}

	logrus.WithField("profile_id", profileID).Info("Perfil do navegador iniciado")
	return &resp, nil
}

// StopProfile encerra a sessão isolada do perfil informado
func (c *DolphinClient) StopProfile(profileID string) error {
	_, err := c.do(http.MethodDelete, fmt.Sprintf("/browser_profiles/%s/stop", profileID), nil)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"profile_id": profileID,
			"error":      err.Error(),
		}).Error("Erro ao encerrar perfil do navegador")
		return err
	}

	logrus.WithField("profile_id", profileID).Info("Perfil do navegador encerrado")
	return nil
}

func (c *DolphinClient) ListProfiles() ([]BrowserProfile, error) {
	body, err := c.do(http.MethodGet, "/browser_profiles", nil)
	if err != nil {
		return nil, err
	}

	var resp responseProfileList
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("erro ao decodificar lista de perfis: %w", err)
	}

	return resp.Data, nil
}

func (c *DolphinClient) GetProfile(profileID string) (*BrowserProfile, error) {
	body, err := c.do(http.MethodGet, fmt.Sprintf("/browser_profiles/%s", profileID), nil)
	if err != nil {
		return nil, err
	}

	var profile BrowserProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, fmt.Errorf("erro ao decodificar perfil: %w", err)
	}

	return &profile, nil
}

func (c *DolphinClient) CreateProfile(req *CreateProfileRequest) (*BrowserProfile, error) {
	body, err := c.do(http.MethodPost, "/browser_profiles", req)
	if err != nil {
		return nil, err
	}

	var profile BrowserProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, fmt.Errorf("erro ao decodificar perfil criado: %w", err)
	}

	logrus.WithField("browser_profile_id", profile.ID).Info("Perfil do navegador criado")
	return &profile, nil
}

func (c *DolphinClient) DeleteProfile(profileID string) error {
	_, err := c.do(http.MethodDelete, fmt.Sprintf("/browser_profiles/%s", profileID), nil)
	if err != nil {
		return err
	}

	logrus.WithField("profile_id", profileID).Info("Perfil do navegador removido")
	return nil
}
