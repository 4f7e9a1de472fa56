package handler

import (
	"net/http"

	"github.com/adsync/spend-collector-api/infrastructure/repository"
	"github.com/adsync/spend-collector-api/internal/domain"
	"github.com/adsync/spend-collector-api/pkg/apiErrors"
	"github.com/adsync/spend-collector-api/pkg/utils"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ListProfiles retorna todos os perfis cadastrados
func ListProfiles(repo repository.ProfileRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profiles, err := repo.ListProfiles()
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar perfis")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar perfis", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(profiles)
	}
}

// GetProfile retorna um perfil pelo seu ID
func GetProfile(repo repository.ProfileRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do perfil não fornecido", nil)
			return
		}

		profile, err := repo.GetByID(id)
		if err != nil {
			logrus.WithError(err).WithField("profile_id", id).Error("Erro ao buscar perfil")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar perfil", nil)
			return
		}

		if profile == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Perfil não encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(profile)
	}
}

// CreateProfile cadastra um novo perfil de coleta
func CreateProfile(repo repository.ProfileRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.ProfileID == "" || req.AdAccountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "profile_id e ad_account_id são obrigatórios", nil)
			return
		}

		id, err := utils.GenerateID()
		if err != nil {
			logrus.WithError(err).Error("Erro ao gerar ID do perfil")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao criar perfil", nil)
			return
		}

		active := true
		if req.Active != nil {
			active = *req.Active
		}

		if req.Currency == "" {
			req.Currency = "USD"
		}

		profile := &domain.Profile{
			ID:          id,
			ProfileID:   req.ProfileID,
			AdAccountID: req.AdAccountID,
			Currency:    req.Currency,
			ProxyURL:    req.ProxyURL,
			AdIDs:       req.AdIDs,
			Active:      active,
		}

		profile, err = repo.Create(profile)
		if err != nil {
			if errors.Is(err, repository.ErrDuplicateProfile) {
				apiErrors.WriteError(w, apiErrors.ErrDuplicateProfile, "Perfil já cadastrado para essa conta", nil)
				return
			}

			logrus.WithError(err).Error("Erro ao criar perfil")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar perfil", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(profile)
	}
}

// UpdateProfile atualiza parcialmente um perfil existente
func UpdateProfile(repo repository.ProfileRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do perfil não fornecido", nil)
			return
		}

		var req domain.UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		profile, err := repo.GetByID(id)
		if err != nil {
			logrus.WithError(err).WithField("profile_id", id).Error("Erro ao buscar perfil")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar perfil", nil)
			return
		}

		if profile == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Perfil não encontrado", nil)
			return
		}

		if req.AdAccountID != nil {
			profile.AdAccountID = *req.AdAccountID
		}

		if req.Currency != nil {
			profile.Currency = *req.Currency
		}

		if req.ProxyURL != nil {
			profile.ProxyURL = *req.ProxyURL
		}

		if req.AdIDs != nil {
			profile.AdIDs = *req.AdIDs
		}

		if req.Active != nil {
			profile.Active = *req.Active
		}

		if err := repo.Update(profile); err != nil {
			logrus.WithError(err).WithField("profile_id", id).Error("Erro ao atualizar perfil")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar perfil", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(profile)
	}
}

// DeleteProfile remove um perfil do cadastro. Os gastos já coletados
// permanecem no banco.
func DeleteProfile(repo repository.ProfileRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do perfil não fornecido", nil)
			return
		}

		if err := repo.Delete(id); err != nil {
			logrus.WithError(err).WithField("profile_id", id).Error("Erro ao remover perfil")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover perfil", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
