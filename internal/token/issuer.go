// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/canonical/workspace-service/internal/types"
)

type IssuerInterface interface {
	SignAccessToken(p *types.IdentityPayload) (string, error)
	SignAppToken(p *types.IdentityPayload) (string, error)
	SignKubeToken(userCrUID, userCrName string) (string, error)
	ParseAppToken(raw string) (*IdentityClaims, error)
}

// IdentityClaims carries the identity payload inside access and app tokens.
type IdentityClaims struct {
	UserUID      string `json:"userUid,omitempty"`
	UserCrUID    string `json:"userCrUid,omitempty"`
	UserCrName   string `json:"userCrName,omitempty"`
	RegionUID    string `json:"regionUid,omitempty"`
	WorkspaceID  string `json:"workspaceId,omitempty"`
	WorkspaceUID string `json:"workspaceUid,omitempty"`
	jwt.RegisteredClaims
}

type Config struct {
	AccessSecret string
	AppSecret    string
	AccessTTL    time.Duration
	AppTTL       time.Duration
}

var _ IssuerInterface = (*Issuer)(nil)

// Issuer signs identity payloads into bearer tokens. It is pure; given the
// same payload, key and clock, output is deterministic.
type Issuer struct {
	config Config
}

func NewIssuer(config Config) *Issuer {
	return &Issuer{config: config}
}

// SignAccessToken mints the token embedded in kubeconfigs and used against
// regional APIs; it carries the full identity payload.
func (i *Issuer) SignAccessToken(p *types.IdentityPayload) (string, error) {
	return i.sign(claimsFor(p, i.config.AccessTTL), i.config.AccessSecret)
}

// SignAppToken mints the token handed to in-cluster applications; it
// carries the same payload but is verified with a separate key.
func (i *Issuer) SignAppToken(p *types.IdentityPayload) (string, error) {
	return i.sign(claimsFor(p, i.config.AppTTL), i.config.AppSecret)
}

// SignKubeToken mints the minimal token the kubeconfig generator embeds,
// bound to the regional identity only.
func (i *Issuer) SignKubeToken(userCrUID, userCrName string) (string, error) {
	now := time.Now()
	claims := IdentityClaims{
		UserCrUID:  userCrUID,
		UserCrName: userCrName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userCrName,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.config.AccessTTL)),
		},
	}

	return i.sign(claims, i.config.AccessSecret)
}

func (i *Issuer) ParseAppToken(raw string) (*IdentityClaims, error) {
	claims := new(IdentityClaims)

	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(i.config.AppSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse app token: %w", err)
	}

	return claims, nil
}

func (i *Issuer) sign(claims IdentityClaims, secret string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

func claimsFor(p *types.IdentityPayload, ttl time.Duration) IdentityClaims {
	now := time.Now()
	return IdentityClaims{
		UserUID:      p.UserUID,
		UserCrUID:    p.UserCrUID,
		UserCrName:   p.UserCrName,
		RegionUID:    p.RegionUID,
		WorkspaceID:  p.WorkspaceID,
		WorkspaceUID: p.WorkspaceUID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}
