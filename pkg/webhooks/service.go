// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"fmt"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
)

var _ ServiceInterface = (*Service)(nil)

// Service applies account lifecycle events from the identity platform to
// the global ledger. Deliveries are at-least-once, so every handler has to
// tolerate replays.
type Service struct {
	ledger LedgerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	ledger LedgerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		ledger:  ledger,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HandleRegistration creates the (not yet onboarded) account row that the
// provisioning endpoints later check.
func (s *Service) HandleRegistration(ctx context.Context, userUID string) error {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	if userUID == "" {
		return fmt.Errorf("user UID is empty")
	}

	if err := s.ledger.CreateAccount(ctx, userUID); err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.Infof("registered account %s", userUID)
	return nil
}

// HandleMerge records that sourceUserUID was folded into userUID. The marker
// is what authorizes the provisioner to realign ledger rows when the
// regional store disagrees about the user's workspace.
func (s *Service) HandleMerge(ctx context.Context, userUID, sourceUserUID string) error {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleMerge")
	defer span.End()

	if userUID == "" || sourceUserUID == "" {
		return fmt.Errorf("user UID or source user UID is empty")
	}

	if err := s.ledger.RecordMerge(ctx, userUID, sourceUserUID); err != nil {
		return fmt.Errorf("failed to record merge: %w", err)
	}

	s.logger.Infof("recorded merge of account %s into %s", sourceUserUID, userUID)
	return nil
}
