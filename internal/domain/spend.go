package domain

import (
	"time"
)

// SpendRecord é uma observação normalizada de gasto de um anúncio em um
// intervalo de datas. A tupla (profile_id, ad_account_id, ad_id,
// date_start, date_end) identifica unicamente um registro.
type SpendRecord struct {
	ID          int64     `json:"id,omitempty"`
	ProfileID   string    `json:"profile_id"`
	AdAccountID string    `json:"ad_account_id"`
	AdID        string    `json:"ad_id"`
	AdName      string    `json:"ad_name,omitempty"`
	DateStart   time.Time `json:"date_start"`
	DateEnd     time.Time `json:"date_end"`
	Spend       float64   `json:"spend"`
	Currency    string    `json:"currency"`
	Impressions int       `json:"impressions"`
	Clicks      int       `json:"clicks"`
	CTR         float64   `json:"ctr"`
	CPC         float64   `json:"cpc"`
	CPM         float64   `json:"cpm"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

// SpendFilters restringe consultas de gastos persistidos
type SpendFilters struct {
	ProfileID   string
	AdAccountID string
	StartDate   *time.Time
	EndDate     *time.Time
}

// SpendTotal agrega os gastos de um perfil/conta em uma moeda
type SpendTotal struct {
	ProfileID        string  `json:"profile_id"`
	AdAccountID      string  `json:"ad_account_id"`
	Currency         string  `json:"currency"`
	TotalAds         int     `json:"total_ads"`
	TotalSpend       float64 `json:"total_spend"`
	TotalImpressions int64   `json:"total_impressions"`
	TotalClicks      int64   `json:"total_clicks"`
}
