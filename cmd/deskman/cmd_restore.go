package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/deskman/deskman/usecase/workspace"
)

func newCmdRestore() *cobra.Command {
	var delay time.Duration
	c := &cobra.Command{
		Use:                "restore <name>",
		Short:              "Restore a workspace by launching its apps in order",
		Args:               cobra.ExactArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			uc, err := buildWorkspaceUseCase(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("delay") {
				uc.LaunchDelay = delay
			}
			// No store timeout here: restore legitimately takes
			// len(apps) * delay.
			ctx, cleanup := withCmdRunLogger(cmd.Context(), "workspace.restore", args[0])
			defer func() { cleanup(err) }()

			out, err := uc.Restore(ctx, &workspace.RestoreInput{Name: args[0]})
			if err != nil {
				return err
			}
			for _, res := range out.Results {
				if res.Err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "failed  %s: %v\n", res.App.Name, res.Err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "launched %s (pid %d)\n", res.App.Name, res.Handle.PID)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "restored %s: %d launched, %d failed\n", out.Workspace.Name, out.Launched, out.Failed)
			// Per-app launch failures do not fail the command; the
			// restore itself completed.
			return nil
		},
	}
	c.Flags().DurationVar(&delay, "delay", workspace.DefaultLaunchDelay, "Pause between app launches")
	return c
}
