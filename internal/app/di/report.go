// Package di provides dependency injection factories for creating application components.
package di

import (
	"io"

	"volatility_report/internal/feature/report/transport/console"
	"volatility_report/internal/feature/report/usecase"
	"volatility_report/internal/platform/config"
	"volatility_report/internal/platform/externalapi/tdameritrade"
	infrahttp "volatility_report/internal/platform/http"
)

// NewBrokerage creates a fully configured TDAmeritradeBrokerage with HTTP client.
func NewBrokerage(cfg tdameritrade.Config) *tdameritrade.TDAmeritradeBrokerage {
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return tdameritrade.NewTDAmeritradeBrokerage(cfg, httpClient)
}

// NewReport creates a ReportUsecase that writes its report to w.
func NewReport(cfg *config.AppConfig, w io.Writer) *usecase.ReportUsecase {
	return usecase.NewReportUsecase(cfg.Report, NewBrokerage(cfg.TDAmeritrade), console.NewReporter(w))
}
