package metaclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/adsync/spend-collector-api/internal/config"
	"github.com/adsync/spend-collector-api/internal/domain"
	metadomain "github.com/adsync/spend-collector-api/infrastructure/integrator/meta/domain"
)

type Client interface {
	TestConnection() error
	GetAdAccounts(userID string) ([]metadomain.AdAccount, error)
	GetAds(accountID string, limit int) ([]metadomain.Ad, error)
	GetAdInsights(accountID string, window domain.ReportingWindow, adIDs []string, proxyURL string) ([]metadomain.AdInsightRow, error)
	GetDailyInsights(accountID string, window domain.ReportingWindow, adIDs []string, proxyURL string) ([]metadomain.AdInsightRow, error)
}

type MetaClient struct {
	Cfg *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg: cfg,
	}
}

// graphError é o envelope de erro retornado pela Graph API
type graphError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// httpClient monta um cliente HTTP roteado pelo proxy informado.
// Um proxyURL vazio resulta em conexão direta.
func (c *MetaClient) httpClient(proxyURL string) (*http.Client, error) {
	client := &http.Client{Timeout: 60 * time.Second}

	if proxyURL == "" {
		return client, nil
	}

	parsed, err := url.Parse(proxyURL)
	if err != nil {
		return nil, fmt.Errorf("proxy inválido %q: %w", proxyURL, err)
	}

	client.Transport = &http.Transport{
		Proxy: http.ProxyURL(parsed),
	}

	return client, nil
}

// doGet executa um GET e devolve o corpo da resposta, traduzindo o
// envelope de erro da Graph API quando o status não for 200
func (c *MetaClient) doGet(requestURL string, proxyURL string) ([]byte, error) {
	client, err := c.httpClient(proxyURL)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		var ge graphError
		if err := json.Unmarshal(body, &ge); err == nil && ge.Error.Message != "" {
			return nil, fmt.Errorf("graph API retornou erro (status %d, código %d): %s", resp.StatusCode, ge.Error.Code, ge.Error.Message)
		}
		return nil, fmt.Errorf("graph API retornou status inesperado: %s", resp.Status)
	}

	return body, nil
}
