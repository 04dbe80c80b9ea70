package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/deskman/deskman/usecase/proc"
)

func newCmdPS() *cobra.Command {
	return &cobra.Command{
		Use:                "ps",
		Short:              "List running process image names",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := buildProcUseCase()
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()
			out, err := uc.Snapshot(ctx, &proc.SnapshotInput{})
			if err != nil {
				return err
			}
			for _, img := range out.Images {
				fmt.Fprintln(cmd.OutOrStdout(), img)
			}
			return nil
		},
	}
}

func newCmdStatus() *cobra.Command {
	return &cobra.Command{
		Use:                "status <name>",
		Short:              "Check whether an app is currently running",
		Args:               cobra.ExactArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := buildProcUseCase()
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()
			out, err := uc.Status(ctx, &proc.StatusInput{Name: args[0]})
			if err != nil {
				return err
			}
			if out.Running {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is running\n", out.Name)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is not running\n", out.Name)
			}
			return nil
		},
	}
}

func newCmdKill() *cobra.Command {
	return &cobra.Command{
		Use:                "kill <name>",
		Short:              "Forcefully terminate all processes matching an image name",
		Args:               cobra.ExactArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			uc := buildProcUseCase()
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()
			ctx, cleanup := withCmdRunLogger(ctx, "proc.kill", args[0])
			defer func() { cleanup(err) }()
			if _, err = uc.Kill(ctx, &proc.KillInput{Name: args[0]}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "killed %s\n", args[0])
			return nil
		},
	}
}
