package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/deskman/deskman/adapters/store/dirstore"
	"github.com/deskman/deskman/config/deskmanenv"
	"github.com/deskman/deskman/domain/model"
	"github.com/deskman/deskman/usecase/workspace"
)

func newCmdInit() *cobra.Command {
	var forceFlag bool
	var examplesFlag bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a deskman project directory",
		Long: `Initialize a deskman project: create the .deskman/ directory, write a
default config.yml into it, and create the workspaces/ store directory.

Unlike other commands, init creates the -C target directory (parents
included) when it does not exist yet.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, args, forceFlag, examplesFlag)
		},
	}

	cmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite existing .deskman/config.yml")
	cmd.Flags().BoolVar(&examplesFlag, "examples", false, "Seed example workspaces (homework, gaming)")
	return cmd
}

func runInit(cmd *cobra.Command, args []string, forceFlag, examplesFlag bool) error {
	// -C is handled here rather than in PersistentPreRunE: the target
	// directory may not exist yet for init.
	if f := findFlag(cmd, "chdir"); f != nil && f.Value.String() != "" {
		dir := f.Value.String()
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating project directory %q: %w", dir, err)
		}
		if err := os.Chdir(dir); err != nil {
			return fmt.Errorf("entering project directory %q: %w", dir, err)
		}
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	deskmanDir := filepath.Join(workDir, deskmanenv.DeskmanDirName)
	configPath := filepath.Join(deskmanDir, deskmanenv.ConfigFileName)
	workspacesDir := filepath.Join(deskmanDir, "workspaces")

	if !forceFlag {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("%s already exists, re-run with -f to overwrite", configPath)
		}
	}

	if err := os.MkdirAll(deskmanDir, 0755); err != nil {
		return fmt.Errorf("creating %s directory: %w", deskmanDir, err)
	}

	if err := os.MkdirAll(workspacesDir, 0755); err != nil {
		return fmt.Errorf("creating %s directory: %w", workspacesDir, err)
	}

	data, err := deskmanenv.InitialConfigYAML()
	if err != nil {
		return fmt.Errorf("generating default config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", configPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized deskman project in %s\n", deskmanDir)
	fmt.Fprintf(cmd.OutOrStdout(), "Created:\n")
	fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", configPath)
	fmt.Fprintf(cmd.OutOrStdout(), "  - %s/\n", workspacesDir)

	if examplesFlag {
		if err := seedExampleWorkspaces(cmd, workspacesDir); err != nil {
			return err
		}
	}

	return nil
}

// seedExampleWorkspaces stores two sample workspaces in the fresh
// project so the save/restore flow can be tried immediately.
func seedExampleWorkspaces(cmd *cobra.Command, workspacesDir string) error {
	uc, err := buildSeedUseCase(workspacesDir)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	for _, in := range exampleWorkspaces() {
		if _, err := uc.Save(ctx, in); err != nil {
			return fmt.Errorf("seeding example workspace %q: %w", in.Name, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  - workspace %q (%d apps)\n", in.Name, len(in.Apps))
	}
	return nil
}

func buildSeedUseCase(workspacesDir string) (*workspace.UseCase, error) {
	repo := dirstore.NewWorkspaceRepository(workspacesDir)
	return &workspace.UseCase{
		Repos: &workspace.Repos{Workspace: repo},
	}, nil
}

func exampleWorkspaces() []*workspace.SaveInput {
	switch runtime.GOOS {
	case "windows":
		return []*workspace.SaveInput{
			{
				Name: "homework",
				Apps: []model.App{
					{Name: "notepad.exe", Path: `C:\Windows\System32\notepad.exe`},
					{Name: "chrome.exe", Path: `C:\Program Files\Google\Chrome\Application\chrome.exe`, Args: []string{"https://en.wikipedia.org"}},
				},
			},
			{
				Name: "gaming",
				Apps: []model.App{
					{Name: "chrome.exe", Path: `C:\Program Files\Google\Chrome\Application\chrome.exe`, Args: []string{"--incognito", "https://store.steampowered.com"}},
				},
			},
		}
	default:
		return []*workspace.SaveInput{
			{
				Name: "homework",
				Apps: []model.App{
					{Name: "gedit", Path: "/usr/bin/gedit"},
					{Name: "firefox", Path: "/usr/bin/firefox", Args: []string{"https://en.wikipedia.org"}},
				},
			},
			{
				Name: "gaming",
				Apps: []model.App{
					{Name: "firefox", Path: "/usr/bin/firefox", Args: []string{"--private-window", "https://store.steampowered.com"}},
				},
			},
		}
	}
}
