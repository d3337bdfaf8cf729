// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registrar

import (
	"crypto/rand"
	"fmt"
)

const (
	crNameAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	crNameLength   = 8

	// workspaceIDPrefix makes the display id double as the user's
	// namespace name in the regional cluster.
	workspaceIDPrefix = "ns-"
)

// newCrName draws an 8-character lowercase alphanumeric name. Uniqueness is
// checked against the store by the caller; this only guarantees alphabet
// and length.
func newCrName() (string, error) {
	buf := make([]byte, crNameLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	for i, b := range buf {
		buf[i] = crNameAlphabet[int(b)%len(crNameAlphabet)]
	}

	return string(buf), nil
}

// workspaceIDFor derives the region-unique workspace display id from a
// crName. The mapping is deterministic so retries converge on the same id.
func workspaceIDFor(crName string) string {
	return workspaceIDPrefix + crName
}
