package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/deskman/deskman/domain/model"
	"github.com/deskman/deskman/usecase/workspace"
)

// workspaceSpec is the YAML/JSON on-disk representation for save/update.
type workspaceSpec struct {
	Apps []appSpec `yaml:"apps" json:"apps"`
}

type appSpec struct {
	Name string   `yaml:"name" json:"name"`
	Path string   `yaml:"path" json:"path"`
	Args []string `yaml:"args,omitempty" json:"args,omitempty"`
}

func (s *workspaceSpec) toApps() []model.App {
	apps := make([]model.App, 0, len(s.Apps))
	for _, a := range s.Apps {
		apps = append(apps, model.App{Name: a.Name, Path: a.Path, Args: a.Args})
	}
	return apps
}

func readWorkspaceSpec(cmd *cobra.Command, path string) (*workspaceSpec, error) {
	if path == "" {
		return nil, errors.New("spec file required (-f)")
	}
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var spec workspaceSpec
	if err := yaml.Unmarshal(b, &spec); err != nil {
		return nil, err
	}
	return &spec, nil
}

func newCmdSave() *cobra.Command {
	var file string
	c := &cobra.Command{
		Use:                "save <name>",
		Short:              "Save a workspace (apps from spec file)",
		Args:               cobra.ExactArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			uc, err := buildWorkspaceUseCase(cmd)
			if err != nil {
				return err
			}
			spec, err := readWorkspaceSpec(cmd, file)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			ctx, cleanup := withCmdRunLogger(ctx, "workspace.save", args[0])
			defer func() { cleanup(err) }()
			out, err := uc.Save(ctx, &workspace.SaveInput{Name: args[0], Apps: spec.toApps()})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out.Workspace)
		},
	}
	c.Flags().StringVarP(&file, "file", "f", "", "Path to workspace spec (YAML), or '-' for stdin")
	_ = c.MarkFlagRequired("file")
	return c
}

func newCmdShow() *cobra.Command {
	return &cobra.Command{
		Use:                "show <name>",
		Short:              "Show a saved workspace",
		Args:               cobra.ExactArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := buildWorkspaceUseCase(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			out, err := uc.Get(ctx, &workspace.GetInput{Name: args[0]})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out.Workspace)
		},
	}
}

func newCmdList() *cobra.Command {
	var quiet bool
	c := &cobra.Command{
		Use:                "list",
		Short:              "List saved workspaces",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := buildWorkspaceUseCase(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			out, err := uc.List(ctx, &workspace.ListInput{})
			if err != nil {
				return err
			}
			if quiet {
				for _, it := range out.Workspaces {
					fmt.Fprintln(cmd.OutOrStdout(), it.Name)
				}
				return nil
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, it := range out.Workspaces {
				if err := enc.Encode(it); err != nil {
					return err
				}
			}
			return nil
		},
	}
	c.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print workspace names only")
	return c
}

func newCmdUpdate() *cobra.Command {
	var file string
	c := &cobra.Command{
		Use:                "update <name>",
		Short:              "Update a workspace (apps from spec file)",
		Args:               cobra.ExactArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			uc, err := buildWorkspaceUseCase(cmd)
			if err != nil {
				return err
			}
			spec, err := readWorkspaceSpec(cmd, file)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			ctx, cleanup := withCmdRunLogger(ctx, "workspace.update", args[0])
			defer func() { cleanup(err) }()
			out, err := uc.Update(ctx, &workspace.UpdateInput{Name: args[0], Apps: spec.toApps()})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out.Workspace)
		},
	}
	c.Flags().StringVarP(&file, "file", "f", "", "Path to workspace spec (YAML), or '-' for stdin")
	_ = c.MarkFlagRequired("file")
	return c
}

func newCmdDelete() *cobra.Command {
	return &cobra.Command{
		Use:                "delete <name>",
		Short:              "Delete a saved workspace",
		Args:               cobra.ExactArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			uc, err := buildWorkspaceUseCase(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			ctx, cleanup := withCmdRunLogger(ctx, "workspace.delete", args[0])
			defer func() { cleanup(err) }()
			if _, err = uc.Delete(ctx, &workspace.DeleteInput{Name: args[0]}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}
