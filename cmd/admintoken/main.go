// Command admintoken issues bearer tokens for the /v1 admin routes.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/collections-admin-api/internal/auth"
	"github.com/collections-admin-api/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "admintoken <user-id>",
	Short: "Issue an admin bearer token",
	Long: `Sign a token for the collections admin API using AUTH_JWT_SECRET.

Examples:
  admintoken admin-1
  admintoken admin-1 --ttl 1h
  admintoken viewer-7 --role user`,
	Args: cobra.ExactArgs(1),
	RunE: runIssue,
}

func init() {
	rootCmd.Flags().Duration("ttl", 24*time.Hour, "token lifetime")
	rootCmd.Flags().String("role", "", "role claim (defaults to AUTH_ADMIN_ROLE)")
}

func runIssue(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if !cfg.Auth.Enabled() {
		return fmt.Errorf("AUTH_JWT_SECRET is not set")
	}

	ttl, _ := cmd.Flags().GetDuration("ttl")
	role, _ := cmd.Flags().GetString("role")
	if role == "" {
		role = cfg.Auth.AdminRole
	}

	token, exp, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer).Issue(args[0], role, ttl)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "expires %s\n", exp.Format(time.RFC3339))
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
