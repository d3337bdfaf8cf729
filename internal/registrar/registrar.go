// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registrar

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/workspace-service/internal/db"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
)

const (
	crNameRetries      = 5
	defaultDisplayName = "private team"
)

var _ RegistrarInterface = (*Registrar)(nil)

// Registrar owns the regional store. The existence check and the
// create-if-absent run inside one transaction, so two concurrent first-time
// calls for the same user cannot both create a control record; the loser
// hits the user_uid unique constraint and retries into the bind branch.
type Registrar struct {
	db        db.DBClientInterface
	regionUID string

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewRegistrar(c db.DBClientInterface, regionUID string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Registrar {
	r := new(Registrar)

	r.db = c
	r.regionUID = regionUID

	r.logger = logger
	r.tracer = tracer
	r.monitor = monitor

	return r
}

func (r *Registrar) RegisterOrBind(ctx context.Context, userID, userUID, candidateWorkspaceUID, displayName string) (*types.IdentityPayload, error) {
	ctx, span := r.tracer.Start(ctx, "registrar.RegisterOrBind")
	defer span.End()

	var payload *types.IdentityPayload

	err := r.db.WithTx(ctx, func(txCtx context.Context) error {
		cr, err := r.getUserCr(txCtx, userUID)
		if err == nil {
			payload, err = r.bindExisting(txCtx, cr, userID, candidateWorkspaceUID)
			return err
		}
		if !errors.Is(err, ErrNotFound) {
			return err
		}

		payload, err = r.createIdentity(txCtx, userID, userUID, candidateWorkspaceUID, displayName)
		return err
	})

	if err != nil {
		if db.IsDuplicateKeyError(err) {
			// A concurrent call created the control record first; the
			// next attempt falls into the bind branch.
			return nil, ErrDuplicateKey
		}
		return nil, err
	}

	return payload, nil
}

func (r *Registrar) GetPrivateIdentity(ctx context.Context, userUID string) (*types.IdentityPayload, error) {
	ctx, span := r.tracer.Start(ctx, "registrar.GetPrivateIdentity")
	defer span.End()

	cr, err := r.getUserCr(ctx, userUID)
	if err != nil {
		return nil, err
	}

	ws, err := r.getPrivateWorkspace(ctx, cr.UID)
	if err != nil {
		return nil, err
	}

	return r.payloadFor(cr, ws), nil
}

func (r *Registrar) FindMembership(ctx context.Context, userCrUID, workspaceUID string) (*types.Workspace, error) {
	ctx, span := r.tracer.Start(ctx, "registrar.FindMembership")
	defer span.End()

	var ws types.Workspace
	err := r.db.Statement(ctx).
		Select("w.uid", "w.id", "w.display_name", "w.created_at").
		From("workspaces w").
		Join("memberships m ON w.uid = m.workspace_uid").
		Where(sq.Eq{
			"m.user_cr_uid":   userCrUID,
			"m.workspace_uid": workspaceUID,
			"m.status":        types.StatusInWorkspace,
		}).
		QueryRowContext(ctx).
		Scan(&ws.UID, &ws.ID, &ws.DisplayName, &ws.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find membership: %w", err)
	}

	return &ws, nil
}

// bindExisting resolves the existing control record against the candidate
// workspace UID reserved in the ledger.
func (r *Registrar) bindExisting(ctx context.Context, cr *types.UserControlRecord, userID, candidateWorkspaceUID string) (*types.IdentityPayload, error) {
	ws, err := r.getPrivateWorkspace(ctx, cr.UID)
	if err != nil {
		return nil, err
	}

	if ws.UID != candidateWorkspaceUID {
		return nil, &MismatchError{
			LedgerWorkspaceUID:   candidateWorkspaceUID,
			RegionalWorkspaceUID: ws.UID,
		}
	}

	p := r.payloadFor(cr, ws)
	p.UserID = userID
	return p, nil
}

// createIdentity creates the control record, the private workspace and the
// OWNER membership. Runs inside the caller's transaction.
func (r *Registrar) createIdentity(ctx context.Context, userID, userUID, candidateWorkspaceUID, displayName string) (*types.IdentityPayload, error) {
	crName, err := r.uniqueCrName(ctx)
	if err != nil {
		return nil, err
	}

	crUID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate control record UID: %w", err)
	}

	if displayName == "" {
		displayName = defaultDisplayName
	}

	workspaceID := workspaceIDFor(crName)

	_, err = r.db.Statement(ctx).
		Insert("user_cr").
		Columns("uid", "cr_name", "user_id", "user_uid").
		Values(crUID.String(), crName, userID, userUID).
		ExecContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to insert control record: %w", err)
	}

	_, err = r.db.Statement(ctx).
		Insert("workspaces").
		Columns("uid", "id", "display_name").
		Values(candidateWorkspaceUID, workspaceID, displayName).
		ExecContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to insert workspace: %w", err)
	}

	_, err = r.db.Statement(ctx).
		Insert("memberships").
		Columns("user_cr_uid", "workspace_uid", "role", "status", "is_private").
		Values(crUID.String(), candidateWorkspaceUID, types.RoleOwner, types.StatusInWorkspace, true).
		ExecContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to insert membership: %w", err)
	}

	return &types.IdentityPayload{
		UserID:       userID,
		UserUID:      userUID,
		UserCrUID:    crUID.String(),
		UserCrName:   crName,
		RegionUID:    r.regionUID,
		WorkspaceID:  workspaceID,
		WorkspaceUID: candidateWorkspaceUID,
	}, nil
}

func (r *Registrar) getUserCr(ctx context.Context, userUID string) (*types.UserControlRecord, error) {
	var cr types.UserControlRecord
	err := r.db.Statement(ctx).
		Select("uid", "cr_name", "user_id", "user_uid", "created_at").
		From("user_cr").
		Where(sq.Eq{"user_uid": userUID}).
		QueryRowContext(ctx).
		Scan(&cr.UID, &cr.CrName, &cr.UserID, &cr.UserUID, &cr.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get control record: %w", err)
	}

	return &cr, nil
}

func (r *Registrar) getPrivateWorkspace(ctx context.Context, userCrUID string) (*types.Workspace, error) {
	var ws types.Workspace
	err := r.db.Statement(ctx).
		Select("w.uid", "w.id", "w.display_name", "w.created_at").
		From("workspaces w").
		Join("memberships m ON w.uid = m.workspace_uid").
		Where(sq.Eq{
			"m.user_cr_uid": userCrUID,
			"m.is_private":  true,
			"m.role":        types.RoleOwner,
			"m.status":      types.StatusInWorkspace,
		}).
		QueryRowContext(ctx).
		Scan(&ws.UID, &ws.ID, &ws.DisplayName, &ws.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoPrivateWorkspace
		}
		return nil, fmt.Errorf("failed to get private workspace: %w", err)
	}

	return &ws, nil
}

func (r *Registrar) uniqueCrName(ctx context.Context) (string, error) {
	for i := 0; i < crNameRetries; i++ {
		name, err := newCrName()
		if err != nil {
			return "", err
		}

		var count int64
		err = r.db.Statement(ctx).
			Select("COUNT(*)").
			From("user_cr").
			Where(sq.Eq{"cr_name": name}).
			QueryRowContext(ctx).
			Scan(&count)
		if err != nil {
			return "", fmt.Errorf("failed to check cr name collision: %w", err)
		}

		if count == 0 {
			return name, nil
		}

		r.logger.Warnf("cr name collision on %q, retrying", name)
	}

	return "", ErrNameExhausted
}

func (r *Registrar) payloadFor(cr *types.UserControlRecord, ws *types.Workspace) *types.IdentityPayload {
	return &types.IdentityPayload{
		UserID:       cr.UserID,
		UserUID:      cr.UserUID,
		UserCrUID:    cr.UID,
		UserCrName:   cr.CrName,
		RegionUID:    r.regionUID,
		WorkspaceID:  ws.ID,
		WorkspaceUID: ws.UID,
	}
}
