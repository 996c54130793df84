package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ivanpetrovic/brio/internal/xslog"
)

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx, os.Stderr)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			// Server-side invalidation is best effort; the local
			// session is cleared either way.
			if a.session.SessionToken() != "" {
				if err := a.client.Account.Logout(ctx); err != nil {
					a.logger.WarnContext(ctx, "server-side logout failed", xslog.Error(err))
				}
			}

			if err := a.session.Clear(ctx); err != nil {
				return err
			}

			fmt.Println("Logged out.")
			return nil
		},
	}
}
