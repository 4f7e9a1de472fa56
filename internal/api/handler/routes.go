package handler

import (
	"net/http"

	"github.com/adsync/spend-collector-api/infrastructure/integrator/dolphin"
	"github.com/adsync/spend-collector-api/infrastructure/integrator/meta"
	"github.com/adsync/spend-collector-api/infrastructure/repository"
	"github.com/adsync/spend-collector-api/internal/api/handler/router"
	"github.com/adsync/spend-collector-api/internal/usecases/authenticating"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
		{
			Path:    "/v1/users",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
	}
}

func Profiles(repo repository.ProfileRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/profiles",
			Method:  http.MethodGet,
			Handler: ListProfiles(repo),
		},
		{
			Path:    "/v1/profiles",
			Method:  http.MethodPost,
			Handler: CreateProfile(repo),
		},
		{
			Path:    "/v1/profiles/:id",
			Method:  http.MethodGet,
			Handler: GetProfile(repo),
		},
		{
			Path:    "/v1/profiles/:id",
			Method:  http.MethodPut,
			Handler: UpdateProfile(repo),
		},
		{
			Path:    "/v1/profiles/:id",
			Method:  http.MethodDelete,
			Handler: DeleteProfile(repo),
		},
	}
}

func Spends(repo repository.AdSpendRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/spends",
			Method:  http.MethodGet,
			Handler: ListSpends(repo),
		},
		{
			Path:    "/v1/spends/totals",
			Method:  http.MethodGet,
			Handler: GetSpendTotals(repo),
		},
	}
}

func AdAccounts(service *meta.MetaIntegrator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts",
			Method:  http.MethodGet,
			Handler: ListAdAccounts(service),
		},
	}
}

func BrowserProfiles(service *dolphin.BrowserIntegrator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/browser-profiles",
			Method:  http.MethodGet,
			Handler: ListBrowserProfiles(service),
		},
		{
			Path:    "/v1/browser-profiles",
			Method:  http.MethodPost,
			Handler: CreateBrowserProfile(service),
		},
		{
			Path:    "/v1/browser-profiles/:id",
			Method:  http.MethodGet,
			Handler: GetBrowserProfile(service),
		},
		{
			Path:    "/v1/browser-profiles/:id",
			Method:  http.MethodDelete,
			Handler: DeleteBrowserProfile(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
