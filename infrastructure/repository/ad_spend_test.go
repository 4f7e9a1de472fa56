package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/adsync/spend-collector-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func spendRecordForTest() *domain.SpendRecord {
	return &domain.SpendRecord{
		ProfileID:   "abc123",
		AdAccountID: "act_999",
		AdID:        "111",
		AdName:      "Campanha Verão",
		DateStart:   time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		DateEnd:     time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Spend:       12.34,
		Currency:    "BRL",
		Impressions: 1000,
		Clicks:      50,
		CTR:         5.0,
		CPC:         0.25,
		CPM:         12.34,
	}
}

func TestSaveOrUpdateQuery_ConflictKey(t *testing.T) {
	query, args, err := saveOrUpdateQuery(spendRecordForTest())
	assert.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO ad_spend")
	assert.Contains(t, query, "ON CONFLICT (profile_id, ad_account_id, ad_id, date_start, date_end) DO UPDATE SET")

	// todas as métricas devem ser substituídas pelo valor mais recente
	for _, column := range []string{"ad_name", "spend", "currency", "impressions", "clicks", "ctr", "cpc", "cpm"} {
		assert.Contains(t, query, column+" = EXCLUDED."+column)
	}
	assert.Contains(t, query, "updated_at = NOW()")

	assert.Len(t, args, 13)
	assert.Equal(t, "abc123", args[0])
	assert.Equal(t, "act_999", args[1])
	assert.Equal(t, "111", args[2])
	assert.Equal(t, "2024-01-05", args[4])
	assert.Equal(t, "2024-01-05", args[5])
	assert.Equal(t, 12.34, args[6])
}

func TestSaveOrUpdateQuery_SameKeyCarriesLatestValues(t *testing.T) {
	first := spendRecordForTest()

	second := spendRecordForTest()
	second.Spend = 99.99
	second.Impressions = 2000
	second.AdName = "Campanha Verão v2"

	firstQuery, firstArgs, err := saveOrUpdateQuery(first)
	assert.NoError(t, err)

	secondQuery, secondArgs, err := saveOrUpdateQuery(second)
	assert.NoError(t, err)

	// a mesma chave gera o mesmo comando; só os valores mudam, e o
	// conflito no banco substitui a linha existente pelos mais recentes
	assert.Equal(t, firstQuery, secondQuery)
	assert.Equal(t, firstArgs[0], secondArgs[0])
	assert.Equal(t, firstArgs[1], secondArgs[1])
	assert.Equal(t, firstArgs[2], secondArgs[2])
	assert.Equal(t, firstArgs[4], secondArgs[4])
	assert.Equal(t, firstArgs[5], secondArgs[5])
	assert.Equal(t, 99.99, secondArgs[6])
	assert.Equal(t, 2000, secondArgs[8])
}

func TestSaveOrUpdateQuery_Placeholders(t *testing.T) {
	query, _, err := saveOrUpdateQuery(spendRecordForTest())
	assert.NoError(t, err)

	assert.Contains(t, query, "$13")
	assert.False(t, strings.Contains(query, "?"), "placeholders devem usar o formato do Postgres")
}
