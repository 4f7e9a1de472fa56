package dolphin

import (
	"github.com/adsync/spend-collector-api/infrastructure/integrator/dolphin/dolphinclient"
	"github.com/adsync/spend-collector-api/internal/config"
	"github.com/adsync/spend-collector-api/internal/domain"
)

// BrowserIntegrator adapta a API do navegador antidetecção ao contrato
// de sessões isoladas usado pela coleta
type BrowserIntegrator struct {
	cfg    *config.Config
	Client dolphinclient.Client
}

func New(cfg *config.Config, client dolphinclient.Client) *BrowserIntegrator {
	return &BrowserIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *BrowserIntegrator) Acquire(profileID string) (*domain.SessionInfo, error) {
	resp, err := s.Client.StartProfile(profileID)
	if err != nil {
		return nil, err
	}

	return &domain.SessionInfo{
		ProfileID:  profileID,
		WSEndpoint: resp.WSEndpoint,
		Port:       resp.Port,
	}, nil
}

func (s *BrowserIntegrator) Release(profileID string) error {
	return s.Client.StopProfile(profileID)
}

// ListBrowserProfiles lista os perfis cadastrados no navegador antidetecção
func (s *BrowserIntegrator) ListBrowserProfiles() ([]dolphinclient.BrowserProfile, error) {
	return s.Client.ListProfiles()
}

// GetBrowserProfile busca um perfil do navegador pelo seu identificador
func (s *BrowserIntegrator) GetBrowserProfile(profileID string) (*dolphinclient.BrowserProfile, error) {
	return s.Client.GetProfile(profileID)
}

// CreateBrowserProfile cria um novo perfil no navegador antidetecção
func (s *BrowserIntegrator) CreateBrowserProfile(name string) (*dolphinclient.BrowserProfile, error) {
	return s.Client.CreateProfile(&dolphinclient.CreateProfileRequest{Name: name})
}

// DeleteBrowserProfile remove um perfil do navegador antidetecção
func (s *BrowserIntegrator) DeleteBrowserProfile(profileID string) error {
	return s.Client.DeleteProfile(profileID)
}
