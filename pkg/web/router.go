// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/canonical/workspace-service/internal/identity"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/pkg/authentication"
	"github.com/canonical/workspace-service/pkg/metrics"
	"github.com/canonical/workspace-service/pkg/provisioner"
	"github.com/canonical/workspace-service/pkg/status"
	"github.com/canonical/workspace-service/pkg/webhooks"
)

func NewRouter(
	service provisioner.ServiceInterface,
	webhookService webhooks.ServiceInterface,
	verifier authentication.TokenVerifierInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
		}),
		identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware,
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	// Lifecycle webhooks are called by the identity platform, which
	// authenticates at the network layer, not with app tokens.
	webhooks.NewAPI(webhookService).RegisterEndpoints(router)

	// Credential endpoints sit behind the app token check.
	router.Group(func(r chi.Router) {
		r.Use(authentication.NewMiddleware(verifier, tracer, monitor, logger).Authenticate())
		provisioner.NewAPI(service, tracer, monitor, logger).RegisterEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
