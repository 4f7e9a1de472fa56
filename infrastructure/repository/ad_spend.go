package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/adsync/spend-collector-api/infrastructure/database/postgres"
	"github.com/adsync/spend-collector-api/internal/domain"
	"github.com/lib/pq"
)

const (
	adSpendTable = "ad_spend"
)

type AdSpendRepository interface {
	SaveOrUpdate(record *domain.SpendRecord) error
	List(filters *domain.SpendFilters) ([]*domain.SpendRecord, error)
	TotalsByProfile(filters *domain.SpendFilters) ([]*domain.SpendTotal, error)
}

type adSpendRepository struct {
	conn *postgres.Connection
}

func NewAdSpendRepository(conn *postgres.Connection) AdSpendRepository {
	return &adSpendRepository{
		conn: conn,
	}
}

// saveOrUpdateQuery monta o upsert de gasto: a chave
// (profile_id, ad_account_id, ad_id, date_start, date_end) é única e um
// conflito substitui as métricas pelo valor mais recente
func saveOrUpdateQuery(record *domain.SpendRecord) (string, []interface{}, error) {
	return squirrel.StatementBuilder.
		Insert(adSpendTable).
		Columns(
			"profile_id", "ad_account_id", "ad_id", "ad_name",
			"date_start", "date_end", "spend", "currency",
			"impressions", "clicks", "ctr", "cpc", "cpm",
		).
		Values(
			record.ProfileID,
			record.AdAccountID,
			record.AdID,
			record.AdName,
			record.DateStart.Format(time.DateOnly),
			record.DateEnd.Format(time.DateOnly),
			record.Spend,
			record.Currency,
			record.Impressions,
			record.Clicks,
			record.CTR,
			record.CPC,
			record.CPM,
		).
		Suffix(`
			ON CONFLICT (profile_id, ad_account_id, ad_id, date_start, date_end) DO UPDATE SET
				ad_name = EXCLUDED.ad_name,
				spend = EXCLUDED.spend,
				currency = EXCLUDED.currency,
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				ctr = EXCLUDED.ctr,
				cpc = EXCLUDED.cpc,
				cpm = EXCLUDED.cpm,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// SaveOrUpdate insere um registro de gasto ou substitui o existente com a
// mesma chave (profile_id, ad_account_id, ad_id, date_start, date_end)
func (r *adSpendRepository) SaveOrUpdate(record *domain.SpendRecord) error {
	sqlQuery, args, err := saveOrUpdateQuery(record)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *adSpendRepository) List(filters *domain.SpendFilters) ([]*domain.SpendRecord, error) {
	builder := squirrel.
		Select(
			"id", "profile_id", "ad_account_id", "ad_id", "ad_name",
			"date_start", "date_end", "spend", "currency",
			"impressions", "clicks", "ctr", "cpc", "cpm",
			"created_at", "updated_at",
		).
		From(adSpendTable)

	builder = applySpendFilters(builder, filters)

	query, args, err := builder.
		OrderBy("date_start DESC", "ad_account_id", "ad_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.SpendRecord, 0)
	for rows.Next() {
		record, err := r.scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de gasto: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

// TotalsByProfile agrega gastos, impressões e cliques por perfil, conta e
// moeda, contando anúncios distintos
func (r *adSpendRepository) TotalsByProfile(filters *domain.SpendFilters) ([]*domain.SpendTotal, error) {
	builder := squirrel.
		Select(
			"profile_id",
			"ad_account_id",
			"currency",
			"COUNT(DISTINCT ad_id) AS total_ads",
			"COALESCE(SUM(spend), 0) AS total_spend",
			"COALESCE(SUM(impressions), 0) AS total_impressions",
			"COALESCE(SUM(clicks), 0) AS total_clicks",
		).
		From(adSpendTable)

	builder = applySpendFilters(builder, filters)

	query, args, err := builder.
		GroupBy("profile_id", "ad_account_id", "currency").
		OrderBy("total_spend DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	totals := make([]*domain.SpendTotal, 0)
	for rows.Next() {
		total := &domain.SpendTotal{}
		err := rows.Scan(
			&total.ProfileID,
			&total.AdAccountID,
			&total.Currency,
			&total.TotalAds,
			&total.TotalSpend,
			&total.TotalImpressions,
			&total.TotalClicks,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear totais de gasto: %w", err)
		}
		totals = append(totals, total)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return totals, nil
}

func applySpendFilters(builder squirrel.SelectBuilder, filters *domain.SpendFilters) squirrel.SelectBuilder {
	if filters == nil {
		return builder
	}

	if filters.ProfileID != "" {
		builder = builder.Where(squirrel.Eq{"profile_id": filters.ProfileID})
	}

	if filters.AdAccountID != "" {
		builder = builder.Where(squirrel.Eq{"ad_account_id": filters.AdAccountID})
	}

	if filters.StartDate != nil && !filters.StartDate.IsZero() {
		builder = builder.Where(squirrel.GtOrEq{"date_start": filters.StartDate.Format(time.DateOnly)})
	}

	if filters.EndDate != nil && !filters.EndDate.IsZero() {
		builder = builder.Where(squirrel.LtOrEq{"date_end": filters.EndDate.Format(time.DateOnly)})
	}

	return builder
}

func (r *adSpendRepository) scanRecord(rows *sql.Rows) (*domain.SpendRecord, error) {
	record := &domain.SpendRecord{}
	var adName sql.NullString

	err := rows.Scan(
		&record.ID,
		&record.ProfileID,
		&record.AdAccountID,
		&record.AdID,
		&adName,
		&record.DateStart,
		&record.DateEnd,
		&record.Spend,
		&record.Currency,
		&record.Impressions,
		&record.Clicks,
		&record.CTR,
		&record.CPC,
		&record.CPM,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.AdName = adName.String

	return record, nil
}
