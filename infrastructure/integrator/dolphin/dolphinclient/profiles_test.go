package dolphinclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestClient(serverURL string) *DolphinClient {
	return &DolphinClient{
		apiURL:     serverURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestDolphinClient_StartProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/browser_profiles/prof1/start", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ws":"ws://127.0.0.1:9222/devtools","port":9222}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	session, err := client.StartProfile("prof1")

	assert.NoError(t, err)
	assert.Equal(t, "ws://127.0.0.1:9222/devtools", session.WSEndpoint)
	assert.Equal(t, 9222, session.Port)
}

func TestDolphinClient_StartProfile_Failure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	session, err := client.StartProfile("prof1")

	assert.Nil(t, session)
	assert.Error(t, err)
}

func TestDolphinClient_StopProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/browser_profiles/prof1/stop", r.URL.Path)

		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	assert.NoError(t, client.StopProfile("prof1"))
}

func TestDolphinClient_ListProfiles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/browser_profiles", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"id":"prof1","name":"Conta 1"},{"id":"prof2","name":"Conta 2"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	profiles, err := client.ListProfiles()

	assert.NoError(t, err)
	assert.Len(t, profiles, 2)
	assert.Equal(t, "prof1", profiles[0].ID)
}

func TestDolphinClient_CreateProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"prof9","name":"Nova Conta"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	profile, err := client.CreateProfile(&CreateProfileRequest{Name: "Nova Conta"})

	assert.NoError(t, err)
	assert.Equal(t, "prof9", profile.ID)
}

func TestDolphinClient_DeleteProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/browser_profiles/prof1", r.URL.Path)

		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	assert.NoError(t, client.DeleteProfile("prof1"))
}
