package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/adsync/spend-collector-api/infrastructure/database/postgres"
	"github.com/adsync/spend-collector-api/internal/domain"
	"github.com/lib/pq"
)

const (
	profilesTable = "profiles"

	// Código de erro do Postgres para violação de constraint de unicidade
	uniqueViolationCode = "23505"
)

// Os ad_ids de um perfil são persistidos como string separada por vírgula
type ProfileRepository interface {
	ListProfiles() ([]*domain.Profile, error)
	ListActive() ([]*domain.Profile, error)
	GetByID(id string) (*domain.Profile, error)
	Create(profile *domain.Profile) (*domain.Profile, error)
	Update(profile *domain.Profile) error
	Delete(id string) error
}

var ErrDuplicateProfile = fmt.Errorf("profile already exists")

type profileRepository struct {
	conn *postgres.Connection
}

func NewProfileRepository(conn *postgres.Connection) ProfileRepository {
	return &profileRepository{
		conn: conn,
	}
}

func (r *profileRepository) ListProfiles() ([]*domain.Profile, error) {
	return r.list(nil)
}

// ListActive retorna os perfis habilitados para coleta, na ordem de criação
func (r *profileRepository) ListActive() ([]*domain.Profile, error) {
	return r.list(squirrel.Eq{"is_active": true})
}

func (r *profileRepository) list(where interface{}) ([]*domain.Profile, error) {
	builder := squirrel.
		Select("id", "profile_id", "ad_account_id", "currency", "proxy_url", "ad_ids", "is_active", "created_at", "updated_at").
		From(profilesTable).
		OrderBy("created_at")

	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	profiles := make([]*domain.Profile, 0)
	for rows.Next() {
		profile, err := r.scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear perfil: %w", err)
		}
		profiles = append(profiles, profile)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return profiles, nil
}

func (r *profileRepository) GetByID(id string) (*domain.Profile, error) {
	query, args, err := squirrel.
		Select("id", "profile_id", "ad_account_id", "currency", "proxy_url", "ad_ids", "is_active", "created_at", "updated_at").
		From(profilesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	profile := &domain.Profile{}
	var proxyURL, adIDs sql.NullString

	err = row.Scan(
		&profile.ID,
		&profile.ProfileID,
		&profile.AdAccountID,
		&profile.Currency,
		&proxyURL,
		&adIDs,
		&profile.Active,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear perfil: %w", err)
	}

	profile.ProxyURL = proxyURL.String
	profile.AdIDs = splitAdIDs(adIDs.String)

	return profile, nil
}

func (r *profileRepository) Create(profile *domain.Profile) (*domain.Profile, error) {
	query, args, err := squirrel.
		Insert(profilesTable).
		Columns("id", "profile_id", "ad_account_id", "currency", "proxy_url", "ad_ids", "is_active").
		Values(
			profile.ID,
			profile.ProfileID,
			profile.AdAccountID,
			profile.Currency,
			profile.ProxyURL,
			joinAdIDs(profile.AdIDs),
			profile.Active,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolationCode {
			return nil, ErrDuplicateProfile
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return profile, nil
}

func (r *profileRepository) Update(profile *domain.Profile) error {
	query, args, err := squirrel.
		Update(profilesTable).
		Set("ad_account_id", profile.AdAccountID).
		Set("currency", profile.Currency).
		Set("proxy_url", profile.ProxyURL).
		Set("ad_ids", joinAdIDs(profile.AdIDs)).
		Set("is_active", profile.Active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": profile.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *profileRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete(profilesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *profileRepository) scanProfile(rows *sql.Rows) (*domain.Profile, error) {
	profile := &domain.Profile{}
	var proxyURL, adIDs sql.NullString

	err := rows.Scan(
		&profile.ID,
		&profile.ProfileID,
		&profile.AdAccountID,
		&profile.Currency,
		&proxyURL,
		&adIDs,
		&profile.Active,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	profile.ProxyURL = proxyURL.String
	profile.AdIDs = splitAdIDs(adIDs.String)

	return profile, nil
}

func joinAdIDs(adIDs []string) string {
	return strings.Join(adIDs, ",")
}

func splitAdIDs(raw string) []string {
	if raw == "" {
		return []string{}
	}

	parts := strings.Split(raw, ",")
	adIDs := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			adIDs = append(adIDs, trimmed)
		}
	}

	return adIDs
}
