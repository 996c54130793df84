package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ivanpetrovic/brio/internal/client/wellness"
)

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the account behind the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx, os.Stderr)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			if a.session.SessionToken() == "" {
				fmt.Println("Not logged in. Run `brio login` first.")
				return nil
			}

			account, err := a.client.Account.Get(ctx)
			if err != nil {
				if wellness.IsUnauthorized(err) {
					return errors.New("stored session is no longer valid; run `brio login` again")
				}
				return err
			}

			fmt.Printf("%s <%s>\n", account.FullName, account.Email)
			fmt.Printf("username: %s\n", account.Username)
			return nil
		},
	}
}
