// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/workspace-service/internal/config"
	"github.com/canonical/workspace-service/internal/db"
	"github.com/canonical/workspace-service/internal/kubeconfig"
	"github.com/canonical/workspace-service/internal/ledger"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring/prometheus"
	"github.com/canonical/workspace-service/internal/registrar"
	"github.com/canonical/workspace-service/internal/token"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/pkg/authentication"
	"github.com/canonical/workspace-service/pkg/provisioner"
	"github.com/canonical/workspace-service/pkg/web"
	"github.com/canonical/workspace-service/pkg/webhooks"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("workspace-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	globalClient, err := db.NewDBClient(db.Config{
		Name:            "global",
		DSN:             specs.GlobalDSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create global store client: %v", err)
	}
	defer globalClient.Close()

	regionalClient, err := db.NewDBClient(db.Config{
		Name:            "regional",
		DSN:             specs.RegionalDSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create regional store client: %v", err)
	}
	defer regionalClient.Close()

	usageLedger := ledger.NewLedger(globalClient, tracer, monitor, logger)
	identityRegistrar := registrar.NewRegistrar(regionalClient, specs.RegionUID, tracer, monitor, logger)

	issuer := token.NewIssuer(token.Config{
		AccessSecret: specs.AccessTokenSecret,
		AppSecret:    specs.AppTokenSecret,
		AccessTTL:    specs.AccessTokenTTL,
		AppTTL:       specs.AppTokenTTL,
	})
	kubeClient := kubeconfig.NewClient(specs.APIServerURL, issuer, tracer, monitor, logger)

	service := provisioner.NewService(
		usageLedger,
		identityRegistrar,
		kubeClient,
		issuer,
		provisioner.Config{
			RegionUID:            specs.RegionUID,
			MaxAttempts:          specs.MaxProvisionAttempts,
			ReservationStaleness: specs.ReservationStaleness,
		},
		tracer,
		monitor,
		logger,
	)

	webhookService := webhooks.NewService(usageLedger, tracer, monitor, logger)

	var verifier authentication.TokenVerifierInterface = authentication.NewAppTokenVerifier(issuer, tracer, monitor, logger)
	if specs.Debug {
		logger.Warnf("running in debug mode, app token verification is disabled")
		verifier = authentication.NewNoopVerifier()
	}

	router := web.NewRouter(
		service,
		webhookService,
		verifier,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
