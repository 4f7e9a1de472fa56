package dolphinclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/adsync/spend-collector-api/internal/config"
)

// Client encapsula a API local do navegador antidetecção (compatível
// com Dolphin Anty). Uma sessão é iniciada e parada por profile_id;
// iniciar duas vezes sem parar é comportamento indefinido do provedor.
type Client interface {
	StartProfile(profileID string) (*StartProfileResponse, error)
	StopProfile(profileID string) error
	ListProfiles() ([]BrowserProfile, error)
	GetProfile(profileID string) (*BrowserProfile, error)
	CreateProfile(req *CreateProfileRequest) (*BrowserProfile, error)
	DeleteProfile(profileID string) error
}

type BrowserProfile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreateProfileRequest struct {
	Name string `json:"name"`
}

// StartProfileResponse carrega os metadados da sessão iniciada; Port é
// a porta local de automação exposta pelo navegador, quando houver
type StartProfileResponse struct {
	WSEndpoint string `json:"ws"`
	Port       int    `json:"port"`
}

type DolphinClient struct {
	apiURL     string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &DolphinClient{
		apiURL:     strings.TrimRight(cfg.Browser.APIURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *DolphinClient) do(method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.apiURL+path, body)
	if err != nil {
		return nil, err
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("API do navegador retornou status inesperado: %s", resp.Status)
	}

	return data, nil
}
