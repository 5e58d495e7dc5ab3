package handler

import (
	"net/http"

	"github.com/vfg2006/painel-faturamento-api/infrastructure/database/postgres"
	"github.com/vfg2006/painel-faturamento-api/internal/api/handler/router"
	"github.com/vfg2006/painel-faturamento-api/internal/scheduler"
	"github.com/vfg2006/painel-faturamento-api/internal/usecases/authenticating"
	"github.com/vfg2006/painel-faturamento-api/internal/usecases/reporting"
	"github.com/vfg2006/painel-faturamento-api/pkg/currency"
)

func Healthcheck(conn postgres.Conn) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(conn),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/auth/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/auth/session",
			Method:  http.MethodGet,
			Handler: GetSession(service),
		},
	}
}

func Reports(
	service reporting.Reporter,
	refresher *scheduler.DailyReportRefreshService,
	formatter *currency.Formatter,
) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/daily",
			Method:  http.MethodGet,
			Handler: GetDailyReport(service, refresher, formatter),
		},
	}
}

func ReportRefresh(service *scheduler.DailyReportRefreshService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/refresh",
			Method:  http.MethodPost,
			Handler: RunReportRefresh(service),
		},
		{
			Path:    "/v1/reports/refresh/status",
			Method:  http.MethodGet,
			Handler: GetRefreshStatus(service),
		},
	}
}
