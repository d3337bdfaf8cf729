// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioner

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/registrar"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/pkg/authentication"
)

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		validate: validator.New(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/v0/provision", a.provision)
	mux.Post("/api/v0/init", a.initialize)
}

type provisionRequest struct {
	UserID           string `json:"userId" validate:"required"`
	UserUID          string `json:"userUid" validate:"required"`
	LastWorkspaceUID string `json:"lastWorkspaceUid"`
}

type initializeRequest struct {
	UserID        string `json:"userId" validate:"required"`
	UserUID       string `json:"userUid" validate:"required"`
	WorkspaceName string `json:"workspaceName"`
}

func (a *API) provision(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "provisioner.API.provision")
	defer span.End()

	var req provisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.badRequest(w, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.badRequest(w, err.Error())
		return
	}
	if !a.subjectMatches(ctx, req.UserID) {
		a.subjectMismatch(w, req.UserID)
		return
	}

	creds, err := a.service.Provision(ctx, req.UserID, req.UserUID, ProvisionOptions{
		LastWorkspaceUID: req.LastWorkspaceUID,
	})
	if err != nil {
		a.writeError(w, req.UserUID, err)
		return
	}

	a.writeJSON(w, http.StatusOK, creds)
}

func (a *API) initialize(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "provisioner.API.initialize")
	defer span.End()

	var req initializeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.badRequest(w, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.badRequest(w, err.Error())
		return
	}
	if !a.subjectMatches(ctx, req.UserID) {
		a.subjectMismatch(w, req.UserID)
		return
	}

	creds, err := a.service.Initialize(ctx, req.UserID, req.UserUID, req.WorkspaceName)
	if err != nil {
		a.writeError(w, req.UserUID, err)
		return
	}

	a.writeJSON(w, http.StatusOK, creds)
}

// writeError maps the orchestrator's taxonomy onto status codes: not-ready
// conditions are 401 with a machine-readable reason, unrepairable
// mismatches 409, everything else a generic 500. A caller never sees a
// partially populated credential set.
func (a *API) writeError(w http.ResponseWriter, userUID string, err error) {
	if reason, notReady := NotReady(err); notReady {
		a.writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
			"status": http.StatusUnauthorized,
			"reason": string(reason),
		})
		return
	}

	var mismatch *registrar.MismatchError
	if errors.As(err, &mismatch) {
		a.logger.Errorf("provisioning conflict for user %s: %v", userUID, err)
		a.writeJSON(w, http.StatusConflict, map[string]interface{}{
			"status":  http.StatusConflict,
			"message": "workspace records are inconsistent, contact support",
		})
		return
	}

	a.logger.Errorf("provisioning failed for user %s: %v", userUID, err)
	a.writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
		"status":  http.StatusInternalServerError,
		"message": "provisioning failed",
	})
}

// subjectMatches checks the request body against the authenticated token
// subject. Requests arriving without an authenticated subject (noop verifier
// in debug mode) pass through.
func (a *API) subjectMatches(ctx context.Context, userID string) bool {
	subject, ok := authentication.GetUserID(ctx)
	return !ok || subject == userID
}

func (a *API) subjectMismatch(w http.ResponseWriter, userID string) {
	a.logger.Warnf("token subject does not match requested user %s", userID)
	a.writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
		"status":  http.StatusUnauthorized,
		"message": "token subject mismatch",
	})
}

func (a *API) badRequest(w http.ResponseWriter, message string) {
	a.writeJSON(w, http.StatusBadRequest, map[string]interface{}{
		"status":  http.StatusBadRequest,
		"message": message,
	})
}

func (a *API) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}
