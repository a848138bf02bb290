package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/stpnv0/TableBooker/internal/auth"
	"github.com/stpnv0/TableBooker/internal/config"
)

// NewTokenCmd mints a bearer token for an operator or a test client.
func NewTokenCmd() *cobra.Command {
	var (
		userID string
		admin  bool
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a signed bearer token",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if ttl <= 0 {
				ttl = cfg.Auth.TokenTTL
			}

			token, err := auth.Issue([]byte(cfg.Auth.JWTSecret), userID, admin, ttl)
			if err != nil {
				return fmt.Errorf("issue token: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "user id placed in the token subject")
	cmd.Flags().BoolVar(&admin, "admin", false, "grant the admin role")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (defaults to JWT_TTL)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
