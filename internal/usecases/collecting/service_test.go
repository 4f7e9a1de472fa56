package collecting

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	metadomain "github.com/adsync/spend-collector-api/infrastructure/integrator/meta/domain"
	"github.com/adsync/spend-collector-api/internal/domain"
	"github.com/adsync/spend-collector-api/internal/usecases/collecting/mocks"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	sessions *mocks.MockSessionProvider
	metrics  *mocks.MockMetricsFetcher
	store    *mocks.MockSpendStore
}

func newTestService(ctrl *gomock.Controller, cfg CollectorConfig, now time.Time) (*Service, *serviceMocks, *[]time.Duration) {
	m := &serviceMocks{
		sessions: mocks.NewMockSessionProvider(ctrl),
		metrics:  mocks.NewMockMetricsFetcher(ctrl),
		store:    mocks.NewMockSpendStore(ctrl),
	}

	sleeps := &[]time.Duration{}

	service := &Service{
		config:   cfg,
		sessions: m.sessions,
		metrics:  m.metrics,
		store:    m.store,
		sleep: func(d time.Duration) {
			*sleeps = append(*sleeps, d)
		},
		now: func() time.Time { return now },
	}

	return service, m, sleeps
}

func testProfile(profileID, accountID string, adIDs ...string) *domain.Profile {
	return &domain.Profile{
		ID:          "p-" + profileID,
		ProfileID:   profileID,
		AdAccountID: accountID,
		Currency:    "USD",
		AdIDs:       adIDs,
		Active:      true,
	}
}

func TestService_Run_ConnectivityFailureAbortsRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m, _ := newTestService(ctrl, CollectorConfig{DaysBack: 1}, time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC))

	m.metrics.EXPECT().TestConnection().Return(errors.New("connection refused"))

	result, err := service.Run([]*domain.Profile{testProfile("prof1", "act1")})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrConnectivity)
}

func TestService_Run_ReportingWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// days_back=1 em 2024-02-10 deve resultar em start=end=2024-02-09
	service, _, _ := newTestService(ctrl, CollectorConfig{DaysBack: 1}, time.Date(2024, 2, 10, 15, 30, 0, 0, time.UTC))

	window := service.reportingWindow()

	assert.Equal(t, time.Date(2024, 2, 9, 0, 0, 0, 0, time.UTC), window.StartDate)
	assert.Equal(t, time.Date(2024, 2, 9, 0, 0, 0, 0, time.UTC), window.EndDate)
	assert.False(t, window.StartDate.After(window.EndDate))
}

func TestService_Run_ReportingWindowClampsDaysBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// days_back=0 é tratado como 1: o início nunca ultrapassa o fim
	service, _, _ := newTestService(ctrl, CollectorConfig{DaysBack: 0}, time.Date(2024, 2, 10, 15, 30, 0, 0, time.UTC))

	window := service.reportingWindow()

	assert.Equal(t, time.Date(2024, 2, 9, 0, 0, 0, 0, time.UTC), window.StartDate)
	assert.Equal(t, time.Date(2024, 2, 9, 0, 0, 0, 0, time.UTC), window.EndDate)
	assert.False(t, window.StartDate.After(window.EndDate))
}

func TestService_Run_SessionFailureIsContainedAndSessionReleased(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := CollectorConfig{DaysBack: 1, AdsFetchLimit: 1000}
	service, m, _ := newTestService(ctrl, cfg, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))

	profiles := []*domain.Profile{
		testProfile("prof1", "act1", "111"),
		testProfile("prof2", "act2", "222"),
		testProfile("prof3", "act3", "333"),
	}

	m.metrics.EXPECT().TestConnection().Return(nil)

	// prof1 e prof3 completam; a aquisição de sessão do prof2 falha
	m.sessions.EXPECT().Acquire("prof1").Return(&domain.SessionInfo{ProfileID: "prof1"}, nil)
	m.sessions.EXPECT().Acquire("prof2").Return(nil, errors.New("browser api unavailable"))
	m.sessions.EXPECT().Acquire("prof3").Return(&domain.SessionInfo{ProfileID: "prof3"}, nil)

	// A liberação é tentada para todos, inclusive o perfil que falhou
	m.sessions.EXPECT().Release("prof1").Return(nil)
	m.sessions.EXPECT().Release("prof2").Return(nil)
	m.sessions.EXPECT().Release("prof3").Return(errors.New("already stopped"))

	m.metrics.EXPECT().FetchInsights("act1", gomock.Any(), []string{"111"}, "").Return([]metadomain.AdInsightRow{}, nil)
	m.metrics.EXPECT().FetchInsights("act3", gomock.Any(), []string{"333"}, "").Return([]metadomain.AdInsightRow{}, nil)

	result, err := service.Run(profiles)

	assert.NoError(t, err)
	assert.Equal(t, 3, result.ProfilesAttempted)
	// A falha de release do prof3 não muda o veredito já registrado
	assert.Equal(t, 2, result.ProfilesSucceeded)
}

func TestService_Run_DelayBetweenProfiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := CollectorConfig{DaysBack: 1, DelayBetweenProfiles: 10}
	service, m, sleeps := newTestService(ctrl, cfg, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))

	profiles := []*domain.Profile{
		testProfile("prof1", "act1", "111"),
		testProfile("prof2", "act2", "222"),
		testProfile("prof3", "act3", "333"),
	}

	m.metrics.EXPECT().TestConnection().Return(nil)
	m.sessions.EXPECT().Acquire(gomock.Any()).Return(&domain.SessionInfo{}, nil).Times(3)
	m.sessions.EXPECT().Release(gomock.Any()).Return(nil).Times(3)
	m.metrics.EXPECT().FetchInsights(gomock.Any(), gomock.Any(), gomock.Any(), "").Return([]metadomain.AdInsightRow{}, nil).Times(3)

	_, err := service.Run(profiles)
	assert.NoError(t, err)

	// Exatamente 2 pausas de 10s: nenhuma após o último perfil
	var delays int
	for _, d := range *sleeps {
		if d == 10*time.Second {
			delays++
		}
	}
	assert.Equal(t, 2, delays)
}

func TestService_Run_ExplicitAdFilterSkipsListing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := CollectorConfig{DaysBack: 1, AdsFetchLimit: 1000}
	service, m, _ := newTestService(ctrl, cfg, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))

	profile := testProfile("prof1", "act1", "111", "222")

	m.metrics.EXPECT().TestConnection().Return(nil)
	m.sessions.EXPECT().Acquire("prof1").Return(&domain.SessionInfo{}, nil)
	m.sessions.EXPECT().Release("prof1").Return(nil)

	// Nenhuma chamada a ListAdIDs é esperada: o filtro explícito do
	// perfil deve restringir a busca exatamente a esses anúncios
	m.metrics.EXPECT().
		FetchInsights("act1", gomock.Any(), []string{"111", "222"}, "").
		Return([]metadomain.AdInsightRow{}, nil)

	result, err := service.Run([]*domain.Profile{profile})

	assert.NoError(t, err)
	assert.Equal(t, 1, result.ProfilesSucceeded)
}

func TestService_Run_EmptyFilterResolvesAllAds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := CollectorConfig{DaysBack: 1, AdsFetchLimit: 1000}
	service, m, _ := newTestService(ctrl, cfg, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))

	profile := testProfile("prof1", "act1")

	m.metrics.EXPECT().TestConnection().Return(nil)
	m.sessions.EXPECT().Acquire("prof1").Return(&domain.SessionInfo{}, nil)
	m.sessions.EXPECT().Release("prof1").Return(nil)
	m.metrics.EXPECT().ListAdIDs("act1", 1000).Return([]string{"999"}, nil)
	m.metrics.EXPECT().
		FetchInsights("act1", gomock.Any(), []string{"999"}, "").
		Return([]metadomain.AdInsightRow{}, nil)

	result, err := service.Run([]*domain.Profile{profile})

	assert.NoError(t, err)
	assert.Equal(t, 1, result.ProfilesSucceeded)
}

func TestService_Run_DailyBreakdownPersistsOneRecordPerDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Janela de 2024-01-01 a 2024-01-03
	cfg := CollectorConfig{DaysBack: 3, DailyBreakdown: true}
	service, m, _ := newTestService(ctrl, cfg, time.Date(2024, 1, 4, 8, 0, 0, 0, time.UTC))

	profile := testProfile("prof1", "act1", "111")

	rows := []metadomain.AdInsightRow{
		{AdID: "111", AdName: "Ad 1", Spend: "10.50", Impressions: "100", Clicks: "5", DateStart: "2024-01-01", DateStop: "2024-01-01"},
		{AdID: "111", AdName: "Ad 1", Spend: "7.25", Impressions: "80", Clicks: "2", DateStart: "2024-01-02", DateStop: "2024-01-02"},
		{AdID: "111", AdName: "Ad 1", Spend: "0", Impressions: "0", Clicks: "0", DateStart: "2024-01-03", DateStop: "2024-01-03"},
	}

	m.metrics.EXPECT().TestConnection().Return(nil)
	m.sessions.EXPECT().Acquire("prof1").Return(&domain.SessionInfo{}, nil)
	m.sessions.EXPECT().Release("prof1").Return(nil)
	m.metrics.EXPECT().
		FetchDailyInsights("act1", gomock.Any(), []string{"111"}, "").
		Return(rows, nil)

	persisted := make([]*domain.SpendRecord, 0)
	m.store.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(record *domain.SpendRecord) error {
			persisted = append(persisted, record)
			return nil
		}).
		Times(3)

	result, err := service.Run([]*domain.Profile{profile})

	assert.NoError(t, err)
	assert.Equal(t, 3, result.RecordsSaved)
	assert.Len(t, persisted, 3)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), persisted[0].DateStart)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), persisted[1].DateStart)
	assert.Equal(t, 10.50, persisted[0].Spend)
	assert.Equal(t, 100, persisted[0].Impressions)
	assert.Equal(t, "USD", persisted[0].Currency)
}

func TestService_Run_RecordFailureDoesNotFailProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := CollectorConfig{DaysBack: 1}
	service, m, _ := newTestService(ctrl, cfg, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))

	profile := testProfile("prof1", "act1", "111")

	rows := make([]metadomain.AdInsightRow, 5)
	for i := range rows {
		rows[i] = metadomain.AdInsightRow{AdID: "111", Spend: "1.00"}
	}

	m.metrics.EXPECT().TestConnection().Return(nil)
	m.sessions.EXPECT().Acquire("prof1").Return(&domain.SessionInfo{}, nil)
	m.sessions.EXPECT().Release("prof1").Return(nil)
	m.metrics.EXPECT().
		FetchInsights("act1", gomock.Any(), []string{"111"}, "").
		Return(rows, nil)

	// O segundo registro falha; os outros quatro continuam sendo salvos
	saveCalls := 0
	m.store.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(record *domain.SpendRecord) error {
			saveCalls++
			if saveCalls == 2 {
				return errors.New("constraint violation")
			}
			return nil
		}).
		Times(5)

	result, err := service.Run([]*domain.Profile{profile})

	assert.NoError(t, err)
	assert.Equal(t, 1, result.ProfilesSucceeded)
	assert.Equal(t, 4, result.RecordsSaved)
}

func TestService_Run_FetchFailureCountsProfileAsFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := CollectorConfig{DaysBack: 1}
	service, m, _ := newTestService(ctrl, cfg, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))

	profile := testProfile("prof1", "act1", "111")

	m.metrics.EXPECT().TestConnection().Return(nil)
	m.sessions.EXPECT().Acquire("prof1").Return(&domain.SessionInfo{}, nil)
	m.sessions.EXPECT().Release("prof1").Return(nil)
	m.metrics.EXPECT().
		FetchInsights("act1", gomock.Any(), []string{"111"}, "").
		Return(nil, errors.New("rate limited"))

	result, err := service.Run([]*domain.Profile{profile})

	assert.NoError(t, err)
	assert.Equal(t, 1, result.ProfilesAttempted)
	assert.Equal(t, 0, result.ProfilesSucceeded)
}

func TestResolveProxy(t *testing.T) {
	tests := []struct {
		name     string
		profile  *domain.Profile
		session  *domain.SessionInfo
		expected string
	}{
		{
			name:     "Proxy explícito do perfil tem precedência",
			profile:  &domain.Profile{ProxyURL: "http://proxy.example:8080"},
			session:  &domain.SessionInfo{Port: 9222},
			expected: "http://proxy.example:8080",
		},
		{
			name:     "Porta local da sessão vira proxy socks5",
			profile:  &domain.Profile{},
			session:  &domain.SessionInfo{Port: 9222},
			expected: "socks5://127.0.0.1:9222",
		},
		{
			name:     "Sem proxy quando não há porta nem override",
			profile:  &domain.Profile{},
			session:  &domain.SessionInfo{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolveProxy(tt.profile, tt.session))
		})
	}
}

func TestNormalizeRecord_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _ := newTestService(ctrl, CollectorConfig{DaysBack: 1}, time.Now())

	window := domain.ReportingWindow{
		StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
	}
	profile := testProfile("prof1", "act1")

	// Linha sem datas e sem numéricos: datas caem nos limites da janela
	// e numéricos em zero
	record := service.normalizeRecord(profile, metadomain.AdInsightRow{AdID: "42"}, window)

	assert.Equal(t, "prof1", record.ProfileID)
	assert.Equal(t, "act1", record.AdAccountID)
	assert.Equal(t, window.StartDate, record.DateStart)
	assert.Equal(t, window.EndDate, record.DateEnd)
	assert.Zero(t, record.Spend)
	assert.Zero(t, record.Impressions)
	assert.Zero(t, record.Clicks)
	assert.Zero(t, record.CTR)
	assert.Equal(t, "USD", record.Currency)
}
