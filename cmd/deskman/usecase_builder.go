package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/deskman/deskman/adapters/proc"
	procuc "github.com/deskman/deskman/usecase/proc"
	"github.com/deskman/deskman/usecase/workspace"
)

// buildWorkspaceUseCase creates the workspace use case with the
// repository selected by the store URL and the OS process port.
func buildWorkspaceUseCase(cmd *cobra.Command) (*workspace.UseCase, error) {
	repo, err := buildWorkspaceRepository(cmd)
	if err != nil {
		return nil, err
	}
	return &workspace.UseCase{
		Repos:       &workspace.Repos{Workspace: repo},
		Process:     proc.NewPort(),
		LaunchDelay: configuredLaunchDelay(),
	}, nil
}

// buildProcUseCase creates the process use case with the OS process port.
func buildProcUseCase() *procuc.UseCase {
	return &procuc.UseCase{Process: proc.NewPort()}
}

// configuredLaunchDelay reads restore.delayMs from the enclosing
// project's .deskman/config.yml; zero means "use the built-in default".
func configuredLaunchDelay() time.Duration {
	env, err := resolveProjectEnv()
	if err != nil {
		return 0
	}
	if env.Restore.DelayMs <= 0 {
		return 0
	}
	return time.Duration(env.Restore.DelayMs) * time.Millisecond
}
