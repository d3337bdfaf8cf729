// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registrar

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/workspace-service/internal/db"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
)

// stubDBClient runs statements against a sqlmock-backed *sql.DB, the same
// database/sql seam the real pool is bridged through.
type stubDBClient struct {
	db *sql.DB
}

func (c *stubDBClient) Name() string { return "regional-test" }

func (c *stubDBClient) Statement(ctx context.Context) sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).RunWith(c.db)
}

func (c *stubDBClient) BeginTx(ctx context.Context) (context.Context, db.TxInterface, error) {
	return ctx, nil, nil
}

func (c *stubDBClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func (c *stubDBClient) Close() {}

func newRegistrarFixture(t *testing.T) (*Registrar, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	r := NewRegistrar(
		&stubDBClient{db: sqlDB},
		"region-1",
		tracing.NewTracer(tracing.NewNoopConfig()),
		monitoring.NewNoopMonitor(""),
		logging.NewNoopLogger(),
	)

	return r, mock
}

var userCrColumns = []string{"uid", "cr_name", "user_id", "user_uid", "created_at"}
var workspaceColumns = []string{"uid", "id", "display_name", "created_at"}

func TestRegisterOrBind_FirstTimeCreatesIdentity(t *testing.T) {
	r, mock := newRegistrarFixture(t)

	// No control record yet, surfaced as sql.ErrNoRows by the bridge.
	mock.ExpectQuery("FROM user_cr").
		WithArgs("uid-1").
		WillReturnRows(sqlmock.NewRows(userCrColumns))
	// cr name collision check.
	mock.ExpectQuery("FROM user_cr").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("INSERT INTO user_cr").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO workspaces").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO memberships").
		WillReturnResult(sqlmock.NewResult(0, 1))

	payload, err := r.RegisterOrBind(context.Background(), "user@example.com", "uid-1", "ws-candidate", "")
	if err != nil {
		t.Fatalf("expected identity to be created, got %v", err)
	}

	if payload.WorkspaceUID != "ws-candidate" {
		t.Errorf("expected candidate workspace UID to be adopted, got %q", payload.WorkspaceUID)
	}
	if payload.RegionUID != "region-1" {
		t.Errorf("unexpected region UID %q", payload.RegionUID)
	}
	if len(payload.UserCrName) != crNameLength {
		t.Errorf("unexpected cr name %q", payload.UserCrName)
	}
	if payload.WorkspaceID != workspaceIDFor(payload.UserCrName) {
		t.Errorf("unexpected workspace id %q", payload.WorkspaceID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRegisterOrBind_ExistingIdentityBinds(t *testing.T) {
	r, mock := newRegistrarFixture(t)

	created := time.Now()
	mock.ExpectQuery("FROM user_cr").
		WithArgs("uid-1").
		WillReturnRows(sqlmock.NewRows(userCrColumns).
			AddRow("cr-uid-1", "abcd1234", "user@example.com", "uid-1", created))
	mock.ExpectQuery("FROM workspaces w JOIN memberships m").
		WillReturnRows(sqlmock.NewRows(workspaceColumns).
			AddRow("ws-existing", "ns-abcd1234", "private team", created))

	payload, err := r.RegisterOrBind(context.Background(), "user@example.com", "uid-1", "ws-existing", "")
	if err != nil {
		t.Fatalf("expected bind to succeed, got %v", err)
	}
	if payload.WorkspaceUID != "ws-existing" || payload.UserCrUID != "cr-uid-1" {
		t.Errorf("unexpected payload: %+v", payload)
	}
}

func TestRegisterOrBind_DivergedWorkspaceIsMismatch(t *testing.T) {
	r, mock := newRegistrarFixture(t)

	created := time.Now()
	mock.ExpectQuery("FROM user_cr").
		WithArgs("uid-1").
		WillReturnRows(sqlmock.NewRows(userCrColumns).
			AddRow("cr-uid-1", "abcd1234", "user@example.com", "uid-1", created))
	mock.ExpectQuery("FROM workspaces w JOIN memberships m").
		WillReturnRows(sqlmock.NewRows(workspaceColumns).
			AddRow("ws-regional", "ns-abcd1234", "private team", created))

	_, err := r.RegisterOrBind(context.Background(), "user@example.com", "uid-1", "ws-ledger", "")

	var mismatch *MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected MismatchError, got %v", err)
	}
	if mismatch.LedgerWorkspaceUID != "ws-ledger" || mismatch.RegionalWorkspaceUID != "ws-regional" {
		t.Errorf("unexpected mismatch: %+v", mismatch)
	}
}

func TestRegisterOrBind_MissingPrivateWorkspace(t *testing.T) {
	r, mock := newRegistrarFixture(t)

	created := time.Now()
	mock.ExpectQuery("FROM user_cr").
		WithArgs("uid-1").
		WillReturnRows(sqlmock.NewRows(userCrColumns).
			AddRow("cr-uid-1", "abcd1234", "user@example.com", "uid-1", created))
	mock.ExpectQuery("FROM workspaces w JOIN memberships m").
		WillReturnRows(sqlmock.NewRows(workspaceColumns))

	_, err := r.RegisterOrBind(context.Background(), "user@example.com", "uid-1", "ws-candidate", "")
	if !errors.Is(err, ErrNoPrivateWorkspace) {
		t.Fatalf("expected ErrNoPrivateWorkspace, got %v", err)
	}
}

func TestGetPrivateIdentity_MissingUserIsNotFound(t *testing.T) {
	r, mock := newRegistrarFixture(t)

	mock.ExpectQuery("FROM user_cr").
		WithArgs("uid-missing").
		WillReturnRows(sqlmock.NewRows(userCrColumns))

	_, err := r.GetPrivateIdentity(context.Background(), "uid-missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFindMembership_MissingIsNotFound(t *testing.T) {
	r, mock := newRegistrarFixture(t)

	mock.ExpectQuery("FROM workspaces w JOIN memberships m").
		WillReturnRows(sqlmock.NewRows(workspaceColumns))

	_, err := r.FindMembership(context.Background(), "cr-uid-1", "ws-1")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
