// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Account is the platform-wide identity record in the global store. This
// service only ever reads it, except for flipping Inited at the end of a
// successful first-time initialization.
type Account struct {
	UserUID   string    `db:"user_uid"`
	Inited    bool      `db:"is_inited"`
	CreatedAt time.Time `db:"created_at"`
}

// WorkspaceUsage is the global ledger row reserving a workspace seat for a
// user in a region. At most one active row exists per (region, user).
type WorkspaceUsage struct {
	ID           string    `db:"id"`
	RegionUID    string    `db:"region_uid"`
	UserUID      string    `db:"user_uid"`
	WorkspaceUID string    `db:"workspace_uid"`
	Seat         int32     `db:"seat"`
	CreatedAt    time.Time `db:"created_at"`
}

// UserControlRecord is the region-local representation of a user. There is
// at most one per user in a regional store; it is never deleted by this
// service.
type UserControlRecord struct {
	UID       string    `db:"uid"`
	CrName    string    `db:"cr_name"`
	UserID    string    `db:"user_id"`
	UserUID   string    `db:"user_uid"`
	CreatedAt time.Time `db:"created_at"`
}

// Workspace is a regional workspace. For private workspaces UID must equal
// the workspace UID reserved in the ledger; ID is derived from the owner's
// crName.
type Workspace struct {
	UID         string    `db:"uid"`
	ID          string    `db:"id"`
	DisplayName string    `db:"display_name"`
	CreatedAt   time.Time `db:"created_at"`
}

// Membership roles and statuses.
const (
	RoleOwner  = "OWNER"
	RoleMember = "MEMBER"

	StatusInWorkspace = "IN_WORKSPACE"
	StatusInvited     = "INVITED"
)

// Membership relates a UserControlRecord to a Workspace. A user has at most
// one membership with IsPrivate && OWNER && IN_WORKSPACE per region.
type Membership struct {
	UserCrUID    string    `db:"user_cr_uid"`
	WorkspaceUID string    `db:"workspace_uid"`
	Role         string    `db:"role"`
	Status       string    `db:"status"`
	IsPrivate    bool      `db:"is_private"`
	CreatedAt    time.Time `db:"created_at"`
}

// IdentityPayload carries every identifier needed to mint tokens and fetch a
// kubeconfig. It is built fresh per call and never persisted.
type IdentityPayload struct {
	UserID       string `json:"userId"`
	UserUID      string `json:"userUid"`
	UserCrUID    string `json:"userCrUid"`
	UserCrName   string `json:"userCrName"`
	RegionUID    string `json:"regionUid"`
	WorkspaceID  string `json:"workspaceId"`
	WorkspaceUID string `json:"workspaceUid"`
}

// Credentials is the caller-facing result of a successful provisioning run.
type Credentials struct {
	Kubeconfig  string `json:"kubeconfig"`
	AccessToken string `json:"token"`
	AppToken    string `json:"appToken"`
}
