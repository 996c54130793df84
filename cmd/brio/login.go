package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ivanpetrovic/brio/internal/client/wellness"
)

func loginCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store a session locally",
		Long:  "Authenticates against the wellness API and stores the session cookie in the local database.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx, os.Stderr)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			if email == "" {
				fmt.Print("Email: ")
				line, err := bufio.NewReader(os.Stdin).ReadString('\n')
				if err != nil {
					return fmt.Errorf("reading email: %w", err)
				}
				email = strings.TrimSpace(line)
			}
			if email == "" {
				return errors.New("email is required")
			}

			fmt.Print("Password: ")
			raw, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Println()
			if err != nil {
				return fmt.Errorf("reading password: %w", err)
			}

			account, token, err := a.client.Account.Login(ctx, email, wellness.HashPassword(string(raw)))
			if err != nil {
				if wellness.IsUnauthorized(err) {
					return errors.New("invalid email or password")
				}
				return err
			}

			if err := a.session.Set(ctx, token, account.Email); err != nil {
				return err
			}

			fmt.Printf("Logged in as %s (%s)\n", account.Username, account.Email)
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")

	return cmd
}
