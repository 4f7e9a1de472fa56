package domain

import (
	"time"
)

// ReportingWindow é o intervalo de datas (inclusivo) de uma coleta
type ReportingWindow struct {
	StartDate time.Time
	EndDate   time.Time
}

// CollectionResult resume o desfecho de uma execução de coleta.
// Não é persistido.
type CollectionResult struct {
	ProfilesAttempted int `json:"profiles_attempted"`
	ProfilesSucceeded int `json:"profiles_succeeded"`
	RecordsSaved      int `json:"records_saved"`
}

// SessionInfo carrega os metadados de uma sessão isolada de navegador
type SessionInfo struct {
	ProfileID  string `json:"profile_id"`
	WSEndpoint string `json:"ws,omitempty"`
	Port       int    `json:"port,omitempty"`
}
