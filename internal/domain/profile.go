package domain

import (
	"time"
)

// Profile representa um perfil de navegador antidetecção vinculado
// a uma conta de anúncios. É a unidade de trabalho de uma coleta.
type Profile struct {
	ID          string    `json:"id"`
	ProfileID   string    `json:"profile_id"`
	AdAccountID string    `json:"ad_account_id"`
	Currency    string    `json:"currency"`
	ProxyURL    string    `json:"proxy_url,omitempty"`
	AdIDs       []string  `json:"ad_ids"`
	Active      bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateProfileRequest struct {
	ProfileID   string   `json:"profile_id"`
	AdAccountID string   `json:"ad_account_id"`
	Currency    string   `json:"currency"`
	ProxyURL    string   `json:"proxy_url"`
	AdIDs       []string `json:"ad_ids"`
	Active      *bool    `json:"is_active"`
}

type UpdateProfileRequest struct {
	ID          string    `json:"id"`
	AdAccountID *string   `json:"ad_account_id,omitempty"`
	Currency    *string   `json:"currency,omitempty"`
	ProxyURL    *string   `json:"proxy_url,omitempty"`
	AdIDs       *[]string `json:"ad_ids,omitempty"`
	Active      *bool     `json:"is_active,omitempty"`
}
