// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ledger

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

var _ LedgerInterface = (*Ledger)(nil)

// Ledger gates first-time provisioning through the global store. A
// reservation here is written before the regional transaction runs, so
// duplicate calls converge instead of double-creating workspaces. The
// reservation is deliberately not atomic with the regional write; the
// registrar's uniqueness constraints and the repair path cover the gap.
type Ledger struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewLedger(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Ledger {
	l := new(Ledger)

	l.db = c

	l.logger = logger
	l.tracer = tracer
	l.monitor = monitor

	return l
}

// CreateAccount records a new platform account, not yet onboarded. Repeated
// deliveries of the same registration event are absorbed silently.
func (l *Ledger) CreateAccount(ctx context.Context, userUID string) error {
	ctx, span := l.tracer.Start(ctx, "ledger.CreateAccount")
	defer span.End()

	_, err := l.db.Statement(ctx).
		Insert("accounts").
		Columns("user_uid", "is_inited").
		Values(userUID, false).
		ExecContext(ctx)

	if err != nil {
		if db.IsDuplicateKeyError(err) {
			return nil
		}
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

func (l *Ledger) GetAccount(ctx context.Context, userUID string) (*types.Account, error) {
	ctx, span := l.tracer.Start(ctx, "ledger.GetAccount")
	defer span.End()

	var a types.Account
	err := l.db.Statement(ctx).
		Select("user_uid", "is_inited", "created_at").
		From("accounts").
		Where(sq.Eq{"user_uid": userUID}).
		QueryRowContext(ctx).
		Scan(&a.UserUID, &a.Inited, &a.CreatedAt)

	if err != nil {
		// The pool is bridged through database/sql, so no-rows surfaces
		// as sql.ErrNoRows here, never pgx.ErrNoRows.
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &a, nil
}

// MarkInited flips the global onboarding flag. It must be the last write of
// a successful initialization so a crash never leaves an inited account
// without a usable regional identity.
func (l *Ledger) MarkInited(ctx context.Context, userUID string) error {
	ctx, span := l.tracer.Start(ctx, "ledger.MarkInited")
	defer span.End()

	res, err := l.db.Statement(ctx).
		Update("accounts").
		Set("is_inited", true).
		Where(sq.Eq{"user_uid": userUID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to mark account inited: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (l *Ledger) ReadUsage(ctx context.Context, userUID, regionUID string) ([]*types.WorkspaceUsage, error) {
	ctx, span := l.tracer.Start(ctx, "ledger.ReadUsage")
	defer span.End()

	return l.readUsage(ctx, sq.Eq{"user_uid": userUID, "region_uid": regionUID})
}

func (l *Ledger) ReadUsageAllRegions(ctx context.Context, userUID string) ([]*types.WorkspaceUsage, error) {
	ctx, span := l.tracer.Start(ctx, "ledger.ReadUsageAllRegions")
	defer span.End()

	return l.readUsage(ctx, sq.Eq{"user_uid": userUID})
}

func (l *Ledger) readUsage(ctx context.Context, pred sq.Eq) ([]*types.WorkspaceUsage, error) {
	rows, err := l.db.Statement(ctx).
		Select("id", "region_uid", "user_uid", "workspace_uid", "seat", "created_at").
		From("workspace_usage").
		Where(pred).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read workspace usage: %w", err)
	}
	defer rows.Close()

	var usages []*types.WorkspaceUsage
	for rows.Next() {
		var u types.WorkspaceUsage
		if err := rows.Scan(&u.ID, &u.RegionUID, &u.UserUID, &u.WorkspaceUID, &u.Seat, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan workspace usage: %w", err)
		}
		usages = append(usages, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return usages, nil
}

// Reserve inserts a ledger row for the given region and user. Callers only
// invoke this after ReadUsage came back empty; a concurrent reservation
// loses on the (region_uid, user_uid) unique constraint and surfaces as
// ErrDuplicateKey, which the orchestrator treats as retryable.
func (l *Ledger) Reserve(ctx context.Context, workspaceUID, userUID, regionUID string, seat int32) error {
	ctx, span := l.tracer.Start(ctx, "ledger.Reserve")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate usage ID: %w", err)
	}

	_, err = l.db.Statement(ctx).
		Insert("workspace_usage").
		Columns("id", "region_uid", "user_uid", "workspace_uid", "seat").
		Values(id.String(), regionUID, userUID, workspaceUID, seat).
		ExecContext(ctx)

	if err != nil {
		if db.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to reserve workspace usage: %w", err)
	}

	return nil
}

// RollbackReserve removes a reservation after the regional transaction
// failed outright on a first-time attempt. It is also used to clear a stale
// foreign-region reservation during initialization.
func (l *Ledger) RollbackReserve(ctx context.Context, regionUID, userUID, workspaceUID string) error {
	ctx, span := l.tracer.Start(ctx, "ledger.RollbackReserve")
	defer span.End()

	_, err := l.db.Statement(ctx).
		Delete("workspace_usage").
		Where(sq.Eq{
			"region_uid":    regionUID,
			"user_uid":      userUID,
			"workspace_uid": workspaceUID,
		}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to rollback reservation: %w", err)
	}

	return nil
}

// RepairMismatch realigns ledger rows whose workspace UID drifted from the
// authoritative regional workspace, after an account merge. Returns the
// number of rows corrected.
func (l *Ledger) RepairMismatch(ctx context.Context, regionUID, userUID, oldWorkspaceUID, correctWorkspaceUID string) (int64, error) {
	ctx, span := l.tracer.Start(ctx, "ledger.RepairMismatch")
	defer span.End()

	res, err := l.db.Statement(ctx).
		Update("workspace_usage").
		Set("workspace_uid", correctWorkspaceUID).
		Where(sq.Eq{
			"region_uid":    regionUID,
			"user_uid":      userUID,
			"workspace_uid": oldWorkspaceUID,
		}).
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to repair ledger mismatch: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows, nil
}

// RecordMerge drops a merge marker for the surviving account. The marker is
// what later authorizes RepairMismatch to realign ledger rows; without it a
// workspace mismatch stays a terminal fault.
func (l *Ledger) RecordMerge(ctx context.Context, userUID, sourceUserUID string) error {
	ctx, span := l.tracer.Start(ctx, "ledger.RecordMerge")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate merge ID: %w", err)
	}

	_, err = l.db.Statement(ctx).
		Insert("account_merges").
		Columns("id", "user_uid", "source_user_uid").
		Values(id.String(), userUID, sourceUserUID).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to record account merge: %w", err)
	}

	return nil
}

func (l *Ledger) HasMergeMarker(ctx context.Context, userUID string) (bool, error) {
	ctx, span := l.tracer.Start(ctx, "ledger.HasMergeMarker")
	defer span.End()

	var count int64
	err := l.db.Statement(ctx).
		Select("COUNT(*)").
		From("account_merges").
		Where(sq.Eq{"user_uid": userUID}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return false, fmt.Errorf("failed to look up merge marker: %w", err)
	}

	return count > 0, nil
}
