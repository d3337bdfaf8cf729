// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package global holds the migrations for the platform-wide ledger store.
package global

import "embed"

//go:embed *.sql
var EmbedMigrations embed.FS
