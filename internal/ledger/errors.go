// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ledger

import (
	"errors"
)

// Sentinel errors for ledger operations.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrDuplicateKey = errors.New("duplicate key violation")
)
