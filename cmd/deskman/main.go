package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/deskman/deskman/config/deskmanenv"
	"github.com/deskman/deskman/internal/logging"
	"github.com/deskman/deskman/internal/naming"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "deskman",
		Short:   "Deskman workspace CLI",
		Long:    "Deskman captures named workspaces (apps with launch arguments) and restores them later by relaunching each app.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help by default when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("store-url", "", "Store URL (env DESKMAN_STORE_URL) (dir:/path/to/workspaces | sqlite:/path/to.db | memory:)")
	cmd.PersistentFlags().String("log-format", "human", "Log format (human|text|json) (env DESKMAN_LOG_FORMAT)")
	cmd.PersistentFlags().String("log-level", "INFO", "Log level (DEBUG|INFO|WARN|ERROR)")
	cmd.PersistentFlags().StringP("chdir", "C", "", "Change working directory before running")

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		// init handles -C itself so it can create the directory first.
		if c.Name() != "init" {
			if dir, _ := c.Flags().GetString("chdir"); dir != "" {
				if err := os.Chdir(dir); err != nil {
					return fmt.Errorf("changing directory to %q: %w", dir, err)
				}
			}
		}
		format, _ := c.Flags().GetString("log-format")
		level, _ := c.Flags().GetString("log-level")
		var out io.Writer = os.Stderr

		// A logging: section in .deskman/config.yml redirects command
		// logs to files under LogDir() and supplies format/level
		// defaults for flags left unset.
		if env, err := resolveProjectEnv(); err == nil && env.Logging != (deskmanenv.Logging{}) {
			if !c.Flags().Changed("log-format") && env.Logging.Format != "" {
				format = env.Logging.Format
			}
			if !c.Flags().Changed("log-level") && env.Logging.Level != "" {
				level = env.Logging.Level
			}
			retention := env.Logging.RetentionDays
			if retention == 0 {
				retention = 7
			}
			_ = logging.SweepLogDir(env.LogDir(), time.Duration(retention)*24*time.Hour)
			if sink, err := logging.OpenFileSink(env.LogDir(), ""); err == nil {
				out = sink.Writer()
			}
		}

		if env := os.Getenv("DESKMAN_LOG_FORMAT"); env != "" { // env overrides flag and config
			format = env
		}
		l, err := logging.NewWithWriter(format, logging.ParseLevel(level), out)
		if err != nil {
			return err
		}
		if runID, err := naming.NewCompactID(); err == nil {
			l = l.With("runId", runID)
		}
		ctx := logging.WithLogger(c.Context(), l)
		c.SetContext(ctx)
		return nil
	}

	cmd.AddCommand(newCmdVersion())
	cmd.AddCommand(newCmdInit())
	cmd.AddCommand(newCmdSave())
	cmd.AddCommand(newCmdShow())
	cmd.AddCommand(newCmdList())
	cmd.AddCommand(newCmdUpdate())
	cmd.AddCommand(newCmdDelete())
	cmd.AddCommand(newCmdRestore())
	cmd.AddCommand(newCmdPS())
	cmd.AddCommand(newCmdStatus())
	cmd.AddCommand(newCmdKill())
	cmd.AddCommand(newCmdOpen())
	return cmd
}

func main() {
	root := newRootCmd()
	root.SetContext(context.Background())
	executed, err := root.ExecuteC()
	if err != nil {
		ctx := root.Context()
		if executed != nil {
			ctx = executed.Context()
		}
		logging.FromContext(ctx).Error(ctx, "failed", "error", err)
		os.Exit(1)
	}
}
