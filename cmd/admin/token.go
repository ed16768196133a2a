package main

import (
	"doccare-service/internal/app/config"
	"doccare-service/internal/app/models"
	"doccare-service/internal/app/services/shared/identity"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token signed with the service secret",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, _ := cmd.Flags().GetString("user-id")
			email, _ := cmd.Flags().GetString("email")
			name, _ := cmd.Flags().GetString("name")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			if userID == "" {
				return errors.New("--user-id is required")
			}

			internalConfig := config.NewInternalConfig()
			token, err := identity.IssueToken(internalConfig.JWT.Secret, internalConfig.JWT.Issuer, &models.User{
				ID:          userID,
				Email:       email,
				DisplayName: name,
			}, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().String("user-id", "", "Subject of the token")
	cmd.Flags().String("email", "", "Email claim")
	cmd.Flags().String("name", "", "Display name claim")
	cmd.Flags().Duration("ttl", time.Hour, "Token lifetime")
	return cmd
}
