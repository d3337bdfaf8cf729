// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registrar

import (
	"strings"
	"testing"
)

func TestNewCrName(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		name, err := newCrName()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(name) != crNameLength {
			t.Fatalf("expected length %d, got %q", crNameLength, name)
		}
		for _, c := range name {
			if !strings.ContainsRune(crNameAlphabet, c) {
				t.Fatalf("name %q contains %q outside the alphabet", name, c)
			}
		}

		seen[name] = true
	}

	// 100 draws from a 36^8 space colliding would point at a broken source
	if len(seen) < 100 {
		t.Errorf("expected 100 distinct names, got %d", len(seen))
	}
}

func TestWorkspaceIDFor(t *testing.T) {
	if got := workspaceIDFor("abcd1234"); got != "ns-abcd1234" {
		t.Errorf("expected ns-abcd1234, got %q", got)
	}
}
