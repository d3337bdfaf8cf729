// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioner

import (
	"errors"
	"fmt"
)

// NotReadyReason tags the conditions a caller may want to branch on instead
// of re-deriving them from a bare nil result.
type NotReadyReason string

const (
	// ReasonAccountMissing: no account exists in the global store.
	ReasonAccountMissing NotReadyReason = "account_missing"
	// ReasonNotOnboarded: the account exists but has not completed
	// first-time initialization anywhere.
	ReasonNotOnboarded NotReadyReason = "not_onboarded"
	// ReasonForeignInit: another region holds a fresh reservation for
	// this user's first workspace.
	ReasonForeignInit NotReadyReason = "foreign_region_initializing"
	// ReasonAlreadyInitialized: initialize mode was re-invoked after the
	// global flag was already set.
	ReasonAlreadyInitialized NotReadyReason = "already_initialized"
)

// NotReadyError signals "not ready, retry later" to callers. It is distinct
// from a fatal fault; HTTP handlers map it to an authentication redirect.
type NotReadyError struct {
	Reason NotReadyReason
}

func (e *NotReadyError) Error() string {
	return fmt.Sprintf("provisioning not ready: %s", e.Reason)
}

// NotReady extracts the reason from an error chain, if present.
func NotReady(err error) (NotReadyReason, bool) {
	var nr *NotReadyError
	if errors.As(err, &nr) {
		return nr.Reason, true
	}
	return "", false
}
