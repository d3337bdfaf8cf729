// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/token"
	"github.com/canonical/workspace-service/internal/tracing"
)

var _ TokenVerifierInterface = (*AppTokenVerifier)(nil)

// AppTokenVerifier validates the app tokens this service itself issues,
// using the issuer's signing key.
type AppTokenVerifier struct {
	issuer token.IssuerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *AppTokenVerifier) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	_, span := v.tracer.Start(ctx, "authentication.AppTokenVerifier.VerifyToken")
	defer span.End()

	claims, err := v.issuer.ParseAppToken(rawToken)
	if err != nil {
		return "", err
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("token carries no subject")
	}

	return claims.Subject, nil
}

func NewAppTokenVerifier(issuer token.IssuerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *AppTokenVerifier {
	return &AppTokenVerifier{
		issuer:  issuer,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
