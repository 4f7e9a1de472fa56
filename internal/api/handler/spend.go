package handler

import (
	"net/http"

	"github.com/adsync/spend-collector-api/infrastructure/repository"
	"github.com/adsync/spend-collector-api/internal/domain"
	"github.com/adsync/spend-collector-api/pkg/apiErrors"
	"github.com/adsync/spend-collector-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// spendFiltersFromRequest monta os filtros de consulta a partir da query string
func spendFiltersFromRequest(r *http.Request) (*domain.SpendFilters, error) {
	filters := &domain.SpendFilters{
		ProfileID:   r.URL.Query().Get("profile_id"),
		AdAccountID: r.URL.Query().Get("ad_account_id"),
	}

	if startDate := r.URL.Query().Get("start_date"); startDate != "" {
		parsed, err := utils.ParseDate(startDate)
		if err != nil {
			return nil, err
		}
		filters.StartDate = parsed
	}

	if endDate := r.URL.Query().Get("end_date"); endDate != "" {
		parsed, err := utils.ParseDate(endDate)
		if err != nil {
			return nil, err
		}
		filters.EndDate = parsed
	}

	return filters, nil
}

// ListSpends retorna os registros de gastos persistidos, com filtros
// opcionais de perfil, conta e período
func ListSpends(repo repository.AdSpendRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := spendFiltersFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida: use o formato YYYY-MM-DD", nil)
			return
		}

		records, err := repo.List(filters)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar gastos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar gastos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(records)
	}
}

// GetSpendTotals retorna os gastos agregados por perfil e conta
func GetSpendTotals(repo repository.AdSpendRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := spendFiltersFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida: use o formato YYYY-MM-DD", nil)
			return
		}

		totals, err := repo.TotalsByProfile(filters)
		if err != nil {
			logrus.WithError(err).Error("Erro ao calcular totais de gastos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular totais de gastos", nil)
			return
		}

		for _, total := range totals {
			total.TotalSpend = utils.RoundWithTwoDecimalPlace(total.TotalSpend)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(totals)
	}
}
