// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go

func newTestService(t *testing.T, ctrl *gomock.Controller) (*MockLedgerInterface, *Service) {
	t.Helper()

	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()

	mockLedger := NewMockLedgerInterface(ctrl)
	return mockLedger, NewService(mockLedger, mockTracer, mockMonitor, mockLogger)
}

func TestService_HandleRegistration(t *testing.T) {
	tests := []struct {
		name        string
		userUID     string
		setupMocks  func(*MockLedgerInterface)
		expectError bool
	}{
		{
			name:    "creates the account",
			userUID: "uid-123",
			setupMocks: func(l *MockLedgerInterface) {
				l.EXPECT().CreateAccount(gomock.Any(), "uid-123").Return(nil)
			},
		},
		{
			name:        "empty user UID is rejected",
			userUID:     "",
			setupMocks:  func(l *MockLedgerInterface) {},
			expectError: true,
		},
		{
			name:    "store failure propagates",
			userUID: "uid-123",
			setupMocks: func(l *MockLedgerInterface) {
				l.EXPECT().CreateAccount(gomock.Any(), "uid-123").Return(errors.New("connection refused"))
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLedger, service := newTestService(t, ctrl)
			tt.setupMocks(mockLedger)

			err := service.HandleRegistration(context.Background(), tt.userUID)
			if tt.expectError && err == nil {
				t.Fatal("expected an error")
			}
			if !tt.expectError && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_HandleMerge(t *testing.T) {
	tests := []struct {
		name        string
		userUID     string
		sourceUID   string
		setupMocks  func(*MockLedgerInterface)
		expectError bool
	}{
		{
			name:      "records the merge marker",
			userUID:   "uid-surviving",
			sourceUID: "uid-folded",
			setupMocks: func(l *MockLedgerInterface) {
				l.EXPECT().RecordMerge(gomock.Any(), "uid-surviving", "uid-folded").Return(nil)
			},
		},
		{
			name:        "empty source UID is rejected",
			userUID:     "uid-surviving",
			sourceUID:   "",
			setupMocks:  func(l *MockLedgerInterface) {},
			expectError: true,
		},
		{
			name:      "store failure propagates",
			userUID:   "uid-surviving",
			sourceUID: "uid-folded",
			setupMocks: func(l *MockLedgerInterface) {
				l.EXPECT().RecordMerge(gomock.Any(), "uid-surviving", "uid-folded").Return(errors.New("connection refused"))
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLedger, service := newTestService(t, ctrl)
			tt.setupMocks(mockLedger)

			err := service.HandleMerge(context.Background(), tt.userUID, tt.sourceUID)
			if tt.expectError && err == nil {
				t.Fatal("expected an error")
			}
			if !tt.expectError && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
