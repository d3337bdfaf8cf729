// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/workspace-service/internal/token"
	"github.com/canonical/workspace-service/internal/types"
)

var (
	tokenUserID  string
	tokenUserUID string
	tokenSecret  string
	tokenTTL     time.Duration
)

// tokenCmd mints an app token locally, mainly for smoke testing the API
// without going through a full provisioning round trip.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an app token for the given user",
	Run: func(cmd *cobra.Command, args []string) {
		issuer := token.NewIssuer(token.Config{
			AppSecret: tokenSecret,
			AppTTL:    tokenTTL,
		})

		signed, err := issuer.SignAppToken(&types.IdentityPayload{
			UserID:  tokenUserID,
			UserUID: tokenUserUID,
		})
		if err != nil {
			log.Fatalf("Failed to sign token: %v", err)
		}

		fmt.Println(signed)
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVar(&tokenUserID, "user-id", "", "User ID (token subject)")
	tokenCmd.Flags().StringVar(&tokenUserUID, "user-uid", "", "User UID")
	tokenCmd.Flags().StringVar(&tokenSecret, "secret", "", "App token signing secret")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "Token lifetime")

	_ = tokenCmd.MarkFlagRequired("user-id")
	_ = tokenCmd.MarkFlagRequired("secret")
}
