// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registrar

import (
	"context"

	"github.com/canonical/workspace-service/internal/types"
)

type RegistrarInterface interface {
	// RegisterOrBind either binds the candidate workspace UID to the
	// user's existing private workspace or creates the user control
	// record, workspace and membership in one regional transaction.
	// Returns *MismatchError when the regional store disagrees with the
	// candidate UID.
	RegisterOrBind(ctx context.Context, userID, userUID, candidateWorkspaceUID, displayName string) (*types.IdentityPayload, error)

	// GetPrivateIdentity returns the payload for the user's existing
	// private workspace without creating anything.
	GetPrivateIdentity(ctx context.Context, userUID string) (*types.IdentityPayload, error)

	// FindMembership looks up a joined membership of the user in the
	// given workspace, used to honor last-used workspace hints.
	FindMembership(ctx context.Context, userCrUID, workspaceUID string) (*types.Workspace, error)
}
