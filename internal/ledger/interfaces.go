// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ledger

import (
	"context"

	"github.com/canonical/workspace-service/internal/types"
)

type LedgerInterface interface {
	CreateAccount(ctx context.Context, userUID string) error
	GetAccount(ctx context.Context, userUID string) (*types.Account, error)
	RecordMerge(ctx context.Context, userUID, sourceUserUID string) error
	MarkInited(ctx context.Context, userUID string) error
	ReadUsage(ctx context.Context, userUID, regionUID string) ([]*types.WorkspaceUsage, error)
	ReadUsageAllRegions(ctx context.Context, userUID string) ([]*types.WorkspaceUsage, error)
	Reserve(ctx context.Context, workspaceUID, userUID, regionUID string, seat int32) error
	RollbackReserve(ctx context.Context, regionUID, userUID, workspaceUID string) error
	RepairMismatch(ctx context.Context, regionUID, userUID, oldWorkspaceUID, correctWorkspaceUID string) (int64, error)
	HasMergeMarker(ctx context.Context, userUID string) (bool, error)
}
