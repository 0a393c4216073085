package main

import (
	"fmt"

	"github.com/nikolayk812/partsdepot/internal/domain"
	"github.com/nikolayk812/partsdepot/internal/httpapi"
	"github.com/spf13/cobra"
)

var (
	tokenSubject string
	tokenRole    string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a signed API token",
	Long: `Issue a signed API token for a subject and role.

Admin tokens unlock the back office endpoints; customer tokens keep a cart
across devices.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		role, err := domain.ParseRole(tokenRole)
		if err != nil {
			return err
		}

		token, err := httpapi.NewToken([]byte(cfg.Auth.JWTSecret), tokenSubject, role, cfg.Auth.TokenTTL)
		if err != nil {
			return fmt.Errorf("httpapi.NewToken: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "", "Token subject, usually an email")
	tokenCmd.Flags().StringVar(&tokenRole, "role", string(domain.RoleAdmin), "customer, partner or admin")
	_ = tokenCmd.MarkFlagRequired("subject")
}
