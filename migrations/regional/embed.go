// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package regional holds the migrations for the per-region identity store.
package regional

import "embed"

//go:embed *.sql
var EmbedMigrations embed.FS
