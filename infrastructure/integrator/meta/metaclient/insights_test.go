package metaclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/adsync/spend-collector-api/internal/config"
	"github.com/adsync/spend-collector-api/internal/domain"
)

func testConfig(serverURL string) *config.Config {
	return &config.Config{
		Meta: config.Meta{
			URL:         serverURL,
			AccessToken: "test-token",
		},
	}
}

func testWindow() domain.ReportingWindow {
	return domain.ReportingWindow{
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
	}
}

func TestMetaClient_GetAdInsights(t *testing.T) {
	var gotQuery map[string][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/act_123/insights", r.URL.Path)
		gotQuery = r.URL.Query()

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"ad_id":"111","ad_name":"Ad 1","spend":"10.50","impressions":"100","clicks":"5","ctr":"5.0","cpc":"2.1","cpm":"105.0"}]}`))
	}))
	defer server.Close()

	client := &MetaClient{Cfg: testConfig(server.URL)}

	rows, err := client.GetAdInsights("123", testWindow(), []string{"111", "222"}, "")

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "111", rows[0].AdID)
	assert.Equal(t, "10.50", rows[0].Spend)

	// Parâmetros agregados: sem time_increment e com métricas derivadas
	assert.Equal(t, "ad_id,ad_name,spend,impressions,clicks,ctr,cpc,cpm", gotQuery["fields"][0])
	assert.Empty(t, gotQuery["time_increment"])
	assert.Equal(t, "ad", gotQuery["level"][0])
	assert.Equal(t, "test-token", gotQuery["access_token"][0])
	assert.Equal(t, `{"since":"2024-01-01","until":"2024-01-03"}`, gotQuery["time_range"][0])
	assert.Equal(t, `[{"field":"ad.id","operator":"IN","value":["111","222"]}]`, gotQuery["filtering"][0])
}

func TestMetaClient_GetDailyInsights(t *testing.T) {
	var gotQuery map[string][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[
			{"ad_id":"111","spend":"1.00","date_start":"2024-01-01","date_stop":"2024-01-01"},
			{"ad_id":"111","spend":"2.00","date_start":"2024-01-02","date_stop":"2024-01-02"}
		]}`))
	}))
	defer server.Close()

	client := &MetaClient{Cfg: testConfig(server.URL)}

	rows, err := client.GetDailyInsights("123", testWindow(), nil, "")

	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "2024-01-02", rows[1].DateStart)

	// Quebra diária: time_increment=1 e datas nos campos retornados
	assert.Equal(t, "1", gotQuery["time_increment"][0])
	assert.Equal(t, "ad_id,ad_name,spend,impressions,clicks,date_start,date_stop", gotQuery["fields"][0])

	// Sem filtro explícito de anúncios não há parâmetro filtering
	assert.Empty(t, gotQuery["filtering"])
}

func TestMetaClient_GetAdInsights_GraphError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Invalid OAuth access token","type":"OAuthException","code":190}}`))
	}))
	defer server.Close()

	client := &MetaClient{Cfg: testConfig(server.URL)}

	rows, err := client.GetAdInsights("123", testWindow(), nil, "")

	assert.Nil(t, rows)
	assert.ErrorContains(t, err, "Invalid OAuth access token")
	assert.ErrorContains(t, err, "190")
}

func TestMetaClient_GetAds(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/act_123/ads", r.URL.Path)
		assert.Equal(t, "500", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"id":"111","name":"Ad 1","status":"ACTIVE"},{"id":"222","name":"Ad 2","status":"PAUSED"}]}`))
	}))
	defer server.Close()

	client := &MetaClient{Cfg: testConfig(server.URL)}

	ads, err := client.GetAds("123", 500)

	assert.NoError(t, err)
	assert.Len(t, ads, 2)
	assert.Equal(t, "111", ads[0].ID)
}

func TestMetaClient_TestConnection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/me", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"1","name":"Test User"}`))
	}))
	defer server.Close()

	client := &MetaClient{Cfg: testConfig(server.URL)}

	assert.NoError(t, client.TestConnection())
}

func TestMetaClient_TestConnection_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := &MetaClient{Cfg: testConfig(server.URL)}

	assert.Error(t, client.TestConnection())
}

func TestMetaClient_httpClient_InvalidProxy(t *testing.T) {
	client := &MetaClient{Cfg: testConfig("http://unused")}

	_, err := client.httpClient("://porta-sem-esquema")

	assert.Error(t, err)
}
