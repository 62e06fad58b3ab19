package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	"github.com/ericfisherdev/certpanel/internal/adapter/driven/console"
	graphadapter "github.com/ericfisherdev/certpanel/internal/adapter/driven/graph"
	"github.com/ericfisherdev/certpanel/internal/application"
	"github.com/ericfisherdev/certpanel/internal/bootstrap"
	"github.com/ericfisherdev/certpanel/internal/config"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Logs go to stderr so stdout carries only the report.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	// 1. Load configuration (fail fast on malformed values).
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.Info("config loaded",
		"top_n", cfg.TopN,
		"include_secrets", cfg.IncludeSecrets,
		"strict", cfg.Strict,
		"client_secret_credential", cfg.HasClientSecretCredentials(),
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Environment bootstrap: verify the directory API endpoints are
	// reachable. In best-effort mode a failed probe is logged and the run
	// continues, matching how this report has always behaved.
	dialer := &net.Dialer{Timeout: 5 * time.Second}
	res := bootstrap.EnsureEndpoints(ctx, dialer, bootstrap.DefaultEndpoints())
	switch res.Status {
	case bootstrap.StatusFailed:
		if cfg.Strict {
			return res.Err
		}
		slog.Error("endpoint check failed, continuing anyway", "error", res.Err)
	default:
		slog.Info("endpoints verified", "status", res.Status.String())
	}

	// 4. Establish the credential source. A failure here leaves the Graph
	// client without a session; the fetch step then fails and best-effort
	// mode reports zero records.
	cred, err := graphadapter.NewTokenCredential(cfg.TenantID, cfg.ClientID, cfg.ClientSecret)
	if err != nil {
		if cfg.Strict {
			return err
		}
		slog.Error("credential setup failed, continuing without a session", "error", err)
	}

	// 5. Wire adapters and the report service.
	client := graphadapter.NewClient(cred, cfg.GraphBaseURL, cfg.HTTPTimeout)
	reporter := console.NewReporter(os.Stdout)
	svc := application.NewReportService(client, reporter, cfg.TopN, cfg.IncludeSecrets, cfg.Strict)

	// 6. One fetch-rank-report pass, then exit.
	return svc.Run(ctx)
}
