// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioner

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/workspace-service/internal/registrar"
	"github.com/canonical/workspace-service/internal/types"
	"github.com/canonical/workspace-service/pkg/authentication"
)

func newHandlerFixture(t *testing.T, ctrl *gomock.Controller) (*MockServiceInterface, http.Handler) {
	t.Helper()

	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()

	service := NewMockServiceInterface(ctrl)

	mux := chi.NewMux()
	NewAPI(service, mockTracer, mockMonitor, mockLogger).RegisterEndpoints(mux)

	return service, mux
}

func TestAPI_Provision(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupService   func(*MockServiceInterface)
		expectedStatus int
		expectedField  string
		expectedValue  string
	}{
		{
			name: "success returns credentials",
			body: `{"userId": "user@example.com", "userUid": "uid-123"}`,
			setupService: func(s *MockServiceInterface) {
				s.EXPECT().Provision(gomock.Any(), "user@example.com", "uid-123", ProvisionOptions{}).
					Return(&types.Credentials{Kubeconfig: "kc", AccessToken: "at", AppToken: "apt"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedField:  "token",
			expectedValue:  "at",
		},
		{
			name: "last workspace hint is forwarded",
			body: `{"userId": "user@example.com", "userUid": "uid-123", "lastWorkspaceUid": "ws-hint"}`,
			setupService: func(s *MockServiceInterface) {
				s.EXPECT().Provision(gomock.Any(), "user@example.com", "uid-123", ProvisionOptions{LastWorkspaceUID: "ws-hint"}).
					Return(&types.Credentials{Kubeconfig: "kc", AccessToken: "at", AppToken: "apt"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing userUid is a bad request",
			body:           `{"userId": "user@example.com"}`,
			setupService:   func(s *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body is a bad request",
			body:           `{"userId": `,
			setupService:   func(s *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "not-ready maps to 401 with reason",
			body: `{"userId": "user@example.com", "userUid": "uid-123"}`,
			setupService: func(s *MockServiceInterface) {
				s.EXPECT().Provision(gomock.Any(), "user@example.com", "uid-123", ProvisionOptions{}).
					Return(nil, &NotReadyError{Reason: ReasonNotOnboarded})
			},
			expectedStatus: http.StatusUnauthorized,
			expectedField:  "reason",
			expectedValue:  string(ReasonNotOnboarded),
		},
		{
			name: "mismatch maps to 409",
			body: `{"userId": "user@example.com", "userUid": "uid-123"}`,
			setupService: func(s *MockServiceInterface) {
				s.EXPECT().Provision(gomock.Any(), "user@example.com", "uid-123", ProvisionOptions{}).
					Return(nil, &registrar.MismatchError{LedgerWorkspaceUID: "a", RegionalWorkspaceUID: "b"})
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "store failure maps to 500",
			body: `{"userId": "user@example.com", "userUid": "uid-123"}`,
			setupService: func(s *MockServiceInterface) {
				s.EXPECT().Provision(gomock.Any(), "user@example.com", "uid-123", ProvisionOptions{}).
					Return(nil, fmt.Errorf("connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, mux := newHandlerFixture(t, ctrl)
			tt.setupService(service)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/provision", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d (body %s)", tt.expectedStatus, rr.Code, rr.Body.String())
			}

			if tt.expectedField != "" {
				var body map[string]interface{}
				if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if got := body[tt.expectedField]; got != tt.expectedValue {
					t.Errorf("expected %s=%q, got %v", tt.expectedField, tt.expectedValue, got)
				}
			}
		})
	}
}

func TestAPI_Provision_SubjectMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, mux := newHandlerFixture(t, ctrl)

	body := `{"userId": "user@example.com", "userUid": "uid-123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v0/provision", strings.NewReader(body))
	req = req.WithContext(authentication.WithUserID(req.Context(), "other@example.com"))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d (body %s)", http.StatusUnauthorized, rr.Code, rr.Body.String())
	}
}

func TestAPI_Initialize(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupService   func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "success returns credentials",
			body: `{"userId": "user@example.com", "userUid": "uid-123", "workspaceName": "my team"}`,
			setupService: func(s *MockServiceInterface) {
				s.EXPECT().Initialize(gomock.Any(), "user@example.com", "uid-123", "my team").
					Return(&types.Credentials{Kubeconfig: "kc", AccessToken: "at", AppToken: "apt"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "workspace name is optional",
			body: `{"userId": "user@example.com", "userUid": "uid-123"}`,
			setupService: func(s *MockServiceInterface) {
				s.EXPECT().Initialize(gomock.Any(), "user@example.com", "uid-123", "").
					Return(&types.Credentials{Kubeconfig: "kc", AccessToken: "at", AppToken: "apt"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "already initialized maps to 401",
			body: `{"userId": "user@example.com", "userUid": "uid-123"}`,
			setupService: func(s *MockServiceInterface) {
				s.EXPECT().Initialize(gomock.Any(), "user@example.com", "uid-123", "").
					Return(nil, &NotReadyError{Reason: ReasonAlreadyInitialized})
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing userId is a bad request",
			body:           `{"userUid": "uid-123"}`,
			setupService:   func(s *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, mux := newHandlerFixture(t, ctrl)
			tt.setupService(service)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/init", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d (body %s)", tt.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}
