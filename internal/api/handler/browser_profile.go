package handler

import (
	"net/http"

	"github.com/adsync/spend-collector-api/infrastructure/integrator/dolphin"
	"github.com/adsync/spend-collector-api/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

type CreateBrowserProfileRequest struct {
	Name string `json:"name"`
}

// ListBrowserProfiles lista os perfis disponíveis no navegador
// antidetecção, para apoiar o cadastro de perfis de coleta
func ListBrowserProfiles(service *dolphin.BrowserIntegrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profiles, err := service.ListBrowserProfiles()
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar perfis do navegador")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao listar perfis do navegador", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(profiles)
	}
}

// GetBrowserProfile busca um perfil do navegador pelo seu identificador
func GetBrowserProfile(service *dolphin.BrowserIntegrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do perfil não fornecido", nil)
			return
		}

		profile, err := service.GetBrowserProfile(id)
		if err != nil {
			logrus.WithError(err).WithField("browser_profile_id", id).Error("Erro ao buscar perfil do navegador")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao buscar perfil do navegador", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(profile)
	}
}

// CreateBrowserProfile cria um novo perfil no navegador antidetecção
func CreateBrowserProfile(service *dolphin.BrowserIntegrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateBrowserProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.Name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "name é obrigatório", nil)
			return
		}

		profile, err := service.CreateBrowserProfile(req.Name)
		if err != nil {
			logrus.WithError(err).Error("Erro ao criar perfil do navegador")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao criar perfil do navegador", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(profile)
	}
}

// DeleteBrowserProfile remove um perfil do navegador antidetecção
func DeleteBrowserProfile(service *dolphin.BrowserIntegrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do perfil não fornecido", nil)
			return
		}

		if err := service.DeleteBrowserProfile(id); err != nil {
			logrus.WithError(err).WithField("browser_profile_id", id).Error("Erro ao remover perfil do navegador")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao remover perfil do navegador", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
