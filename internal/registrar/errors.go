// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registrar

import (
	"errors"
	"fmt"
)

// Sentinel errors for registrar operations.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrDuplicateKey = errors.New("duplicate key violation")

	// ErrNoPrivateWorkspace means the user control record exists but no
	// private OWNER membership does. This indicates an interrupted prior
	// run and is retryable at the orchestrator level.
	ErrNoPrivateWorkspace = errors.New("user has no private workspace membership")

	// ErrNameExhausted means crName generation ran out of collision
	// retries.
	ErrNameExhausted = errors.New("failed to generate a unique cr name")
)

// MismatchError reports that the ledger's reserved workspace UID and the
// regional store's private workspace UID diverged. The registrar never picks
// a winner; the orchestrator decides whether a merge marker allows repair.
type MismatchError struct {
	LedgerWorkspaceUID   string
	RegionalWorkspaceUID string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("workspace mismatch: ledger has %s, regional store has %s",
		e.LedgerWorkspaceUID, e.RegionalWorkspaceUID)
}
