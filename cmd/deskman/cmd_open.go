package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deskman/deskman/adapters/proc"
	"github.com/deskman/deskman/domain/model"
)

// newCmdOpen launches a browser (or any executable) with a list of URLs
// or arguments, without saving anything.
func newCmdOpen() *cobra.Command {
	return &cobra.Command{
		Use:                "open <executable> [arg]...",
		Short:              "Launch an executable with arguments (e.g. a browser with tabs)",
		Args:               cobra.MinimumNArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx, cleanup := withCmdRunLogger(cmd.Context(), "proc.open", args[0])
			defer func() { cleanup(err) }()

			app := model.App{Name: args[0], Path: args[0], Args: args[1:]}
			handle, err := proc.NewPort().Launch(ctx, app)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "launched %s (pid %d)\n", app.Path, handle.PID)
			return nil
		},
	}
}
