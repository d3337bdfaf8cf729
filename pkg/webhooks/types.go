// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

// RegistrationEvent is the payload the identity platform delivers when a
// new account is created.
type RegistrationEvent struct {
	UserUID string `json:"userUid" validate:"required"`
}

// MergeEvent is delivered when two accounts are merged; SourceUserUID is the
// account that was folded into UserUID.
type MergeEvent struct {
	UserUID       string `json:"userUid" validate:"required"`
	SourceUserUID string `json:"sourceUserUid" validate:"required"`
}
