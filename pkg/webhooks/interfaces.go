// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
)

// LedgerInterface is the subset of the global ledger the webhook service
// writes to.
type LedgerInterface interface {
	CreateAccount(ctx context.Context, userUID string) error
	RecordMerge(ctx context.Context, userUID, sourceUserUID string) error
}

// ServiceInterface defines the webhook service operations.
type ServiceInterface interface {
	HandleRegistration(ctx context.Context, userUID string) error
	HandleMerge(ctx context.Context, userUID, sourceUserUID string) error
}
