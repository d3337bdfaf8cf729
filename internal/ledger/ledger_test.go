// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ledger

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"

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

func (c *stubDBClient) Name() string { return "global-test" }

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

func newLedgerFixture(t *testing.T) (*Ledger, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	l := NewLedger(
		&stubDBClient{db: sqlDB},
		tracing.NewTracer(tracing.NewNoopConfig()),
		monitoring.NewNoopMonitor(""),
		logging.NewNoopLogger(),
	)

	return l, mock
}

func TestGetAccount_MissingIsNotFound(t *testing.T) {
	l, mock := newLedgerFixture(t)

	// Zero rows through database/sql surface as sql.ErrNoRows on Scan.
	mock.ExpectQuery("FROM accounts").
		WithArgs("uid-missing").
		WillReturnRows(sqlmock.NewRows([]string{"user_uid", "is_inited", "created_at"}))

	_, err := l.GetAccount(context.Background(), "uid-missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetAccount_Found(t *testing.T) {
	l, mock := newLedgerFixture(t)

	created := time.Now()
	mock.ExpectQuery("FROM accounts").
		WithArgs("uid-1").
		WillReturnRows(sqlmock.NewRows([]string{"user_uid", "is_inited", "created_at"}).
			AddRow("uid-1", true, created))

	account, err := l.GetAccount(context.Background(), "uid-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if account.UserUID != "uid-1" || !account.Inited {
		t.Errorf("unexpected account: %+v", account)
	}
}

func TestCreateAccount_DuplicateIsIdempotent(t *testing.T) {
	l, mock := newLedgerFixture(t)

	mock.ExpectExec("INSERT INTO accounts").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	if err := l.CreateAccount(context.Background(), "uid-1"); err != nil {
		t.Fatalf("expected duplicate insert to be absorbed, got %v", err)
	}
}

func TestMarkInited_MissingAccountIsNotFound(t *testing.T) {
	l, mock := newLedgerFixture(t)

	mock.ExpectExec("UPDATE accounts").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := l.MarkInited(context.Background(), "uid-missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReserve_LosingTheRaceIsDuplicateKey(t *testing.T) {
	l, mock := newLedgerFixture(t)

	mock.ExpectExec("INSERT INTO workspace_usage").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := l.Reserve(context.Background(), "ws-1", "uid-1", "region-1", 1)
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestHasMergeMarker(t *testing.T) {
	l, mock := newLedgerFixture(t)

	mock.ExpectQuery("FROM account_merges").
		WithArgs("uid-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	merged, err := l.HasMergeMarker(context.Background(), "uid-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !merged {
		t.Error("expected merge marker to be found")
	}
}
