package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"gascompare/internal/config"
	"gascompare/internal/service"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an API access token",
	Long:  "Signs an access token for the given user with the configured JWT secret. Offers created with it are owned by that user.",
	RunE:  runToken,
}

var (
	tokenUserID string
	tokenEmail  string
)

func init() {
	tokenCmd.Flags().StringVar(&tokenUserID, "user-id", "", "User UUID (a random one is generated when empty)")
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "Email address carried in the token")

	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	userID := uuid.New()
	if tokenUserID != "" {
		userID, err = uuid.Parse(tokenUserID)
		if err != nil {
			return fmt.Errorf("invalid --user-id: %w", err)
		}
	}

	token, err := service.NewAuthService(cfg.JWT).IssueToken(userID, tokenEmail)
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}

	return writeJSON(cmd.OutOrStdout(), map[string]any{
		"user_id":      userID,
		"access_token": token.AccessToken,
		"expires_at":   token.ExpiresAt,
	})
}
