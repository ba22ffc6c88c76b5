package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/moodjournal-backend/internal/auth"
)

var (
	tokenUser string
	tokenTTL  time.Duration
)

func newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token for local development",
		Args:  cobra.NoArgs,
		RunE:  runTokenCmd,
	}
	cmd.Flags().StringVar(&tokenUser, "user", "", "user ID (required)")
	cmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "token lifetime (default: auth.access_token_ttl)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func runTokenCmd(cmd *cobra.Command, _ []string) error {
	userID, err := parseUserFlag(tokenUser)
	if err != nil {
		return err
	}
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.JWTAudience, cfg.Auth.AccessTokenTTL)
	token, err := jwt.GenerateAccessToken(userID, tokenTTL)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
