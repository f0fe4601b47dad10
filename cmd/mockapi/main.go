// Command mockapi serves a local fake of the brokerage API for trying the report without credentials.
package main

import (
	"log/slog"
	"os"

	"github.com/kelseyhightower/envconfig"

	"volatility_report/internal/platform/mockapi"
)

type settings struct {
	Addr    string `envconfig:"MOCKAPI_ADDR" default:":18080"`
	Fixture string `envconfig:"MOCKAPI_FIXTURE"`
}

func main() {
	var s settings
	if err := envconfig.Process("", &s); err != nil {
		slog.Error("invalid mockapi settings", "error", err)
		os.Exit(2)
	}

	fixture := mockapi.DemoFixture()
	if s.Fixture != "" {
		f, err := mockapi.LoadFixture(s.Fixture)
		if err != nil {
			slog.Error("failed to load fixture", "path", s.Fixture, "error", err)
			os.Exit(1)
		}
		fixture = f
	}

	router := mockapi.NewRouter(mockapi.NewServer(fixture))

	slog.Info("mock brokerage API listening", "addr", s.Addr, "account", fixture.AccountID)
	if err := router.Run(s.Addr); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
