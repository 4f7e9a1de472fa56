package handler

import (
	"net/http"

	"github.com/adsync/spend-collector-api/infrastructure/integrator/meta"
	"github.com/adsync/spend-collector-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// ListAdAccounts retorna as contas de anúncio visíveis para o token
// configurado, para apoiar o cadastro de perfis no console
func ListAdAccounts(service *meta.MetaIntegrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accounts, err := service.GetAdAccounts()
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar contas de anúncio")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao listar contas de anúncio", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(accounts)
	}
}
