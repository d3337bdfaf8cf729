// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioner

import (
	"context"

	"github.com/canonical/workspace-service/internal/types"
)

type ServiceInterface interface {
	Provision(ctx context.Context, userID, userUID string, opts ProvisionOptions) (*types.Credentials, error)
	Initialize(ctx context.Context, userID, userUID, workspaceName string) (*types.Credentials, error)
}

type LedgerInterface interface {
	GetAccount(ctx context.Context, userUID string) (*types.Account, error)
	MarkInited(ctx context.Context, userUID string) error
	ReadUsage(ctx context.Context, userUID, regionUID string) ([]*types.WorkspaceUsage, error)
	ReadUsageAllRegions(ctx context.Context, userUID string) ([]*types.WorkspaceUsage, error)
	Reserve(ctx context.Context, workspaceUID, userUID, regionUID string, seat int32) error
	RollbackReserve(ctx context.Context, regionUID, userUID, workspaceUID string) error
	RepairMismatch(ctx context.Context, regionUID, userUID, oldWorkspaceUID, correctWorkspaceUID string) (int64, error)
	HasMergeMarker(ctx context.Context, userUID string) (bool, error)
}

type RegistrarInterface interface {
	RegisterOrBind(ctx context.Context, userID, userUID, candidateWorkspaceUID, displayName string) (*types.IdentityPayload, error)
	GetPrivateIdentity(ctx context.Context, userUID string) (*types.IdentityPayload, error)
	FindMembership(ctx context.Context, userCrUID, workspaceUID string) (*types.Workspace, error)
}

type KubeconfigInterface interface {
	Generate(ctx context.Context, userCrUID, userCrName string) (string, error)
}

type IssuerInterface interface {
	SignAccessToken(p *types.IdentityPayload) (string, error)
	SignAppToken(p *types.IdentityPayload) (string, error)
}
