// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"
)

func TestAPI_Registration(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "success",
			body: `{"userUid": "uid-123"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().HandleRegistration(gomock.Any(), "uid-123").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing user UID is a bad request",
			body:           `{}`,
			setupMocks:     func(s *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body is a bad request",
			body:           `{"userUid": `,
			setupMocks:     func(s *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "service failure maps to 500",
			body: `{"userUid": "uid-123"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().HandleRegistration(gomock.Any(), "uid-123").Return(errors.New("connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockService)

			mux := chi.NewMux()
			NewAPI(mockService).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/webhooks/registration", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d (body %s)", tt.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestAPI_AccountMerge(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "success",
			body: `{"userUid": "uid-surviving", "sourceUserUid": "uid-folded"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().HandleMerge(gomock.Any(), "uid-surviving", "uid-folded").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing source UID is a bad request",
			body:           `{"userUid": "uid-surviving"}`,
			setupMocks:     func(s *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "service failure maps to 500",
			body: `{"userUid": "uid-surviving", "sourceUserUid": "uid-folded"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().HandleMerge(gomock.Any(), "uid-surviving", "uid-folded").Return(errors.New("connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockService)

			mux := chi.NewMux()
			NewAPI(mockService).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/webhooks/account-merge", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d (body %s)", tt.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}
