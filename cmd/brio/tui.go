package main

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/ivanpetrovic/brio/internal/dashboard"
	"github.com/ivanpetrovic/brio/internal/tui"
)

func runTUI(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx, logFile())
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	loader := dashboard.NewLoader(a.client, dashboard.WithLogger(a.logger))

	model := tui.New(tui.Deps{
		Ctx:    ctx,
		Loader: loader,
	})

	p := tea.NewProgram(&model)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	return nil
}
