// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/canonical/workspace-service/internal/types"
)

func testConfig() Config {
	return Config{
		AccessSecret: "access-secret",
		AppSecret:    "app-secret",
		AccessTTL:    time.Hour,
		AppTTL:       24 * time.Hour,
	}
}

func payload() *types.IdentityPayload {
	return &types.IdentityPayload{
		UserID:       "user@example.com",
		UserUID:      "uid-123",
		UserCrUID:    "cr-uid-1",
		UserCrName:   "abcd1234",
		RegionUID:    "region-1",
		WorkspaceID:  "ns-abcd1234",
		WorkspaceUID: "ws-uid-1",
	}
}

func TestIssuer_AppTokenRoundTrip(t *testing.T) {
	issuer := NewIssuer(testConfig())

	signed, err := issuer.SignAppToken(payload())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := issuer.ParseAppToken(signed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if claims.Subject != "user@example.com" {
		t.Errorf("expected subject user@example.com, got %q", claims.Subject)
	}
	if claims.UserUID != "uid-123" || claims.UserCrName != "abcd1234" {
		t.Errorf("identity claims lost in transit: %+v", claims)
	}
	if claims.WorkspaceUID != "ws-uid-1" {
		t.Errorf("expected workspace uid ws-uid-1, got %q", claims.WorkspaceUID)
	}
}

func TestIssuer_AccessTokenNotValidAsAppToken(t *testing.T) {
	issuer := NewIssuer(testConfig())

	signed, err := issuer.SignAccessToken(payload())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// the two token kinds use separate keys
	if _, err := issuer.ParseAppToken(signed); err == nil {
		t.Fatal("expected verification to fail across key boundaries")
	}
}

func TestIssuer_ParseAppToken_RejectsTampering(t *testing.T) {
	issuer := NewIssuer(testConfig())

	signed, err := issuer.SignAppToken(payload())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := issuer.ParseAppToken(signed + "x"); err == nil {
		t.Fatal("expected a tampered token to be rejected")
	}
}

func TestIssuer_ParseAppToken_RejectsUnsignedToken(t *testing.T) {
	issuer := NewIssuer(testConfig())

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, IdentityClaims{
		UserUID: "uid-123",
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := issuer.ParseAppToken(raw); err == nil {
		t.Fatal("expected an unsigned token to be rejected")
	}
}

func TestIssuer_SignKubeToken(t *testing.T) {
	issuer := NewIssuer(testConfig())

	signed, err := issuer.SignKubeToken("cr-uid-1", "abcd1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims := new(IdentityClaims)
	_, err = jwt.ParseWithClaims(signed, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("access-secret"), nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if claims.Subject != "abcd1234" || claims.UserCrUID != "cr-uid-1" {
		t.Errorf("unexpected kube token claims: %+v", claims)
	}
	if claims.WorkspaceUID != "" {
		t.Errorf("kube token should not carry workspace scoping, got %q", claims.WorkspaceUID)
	}
}
