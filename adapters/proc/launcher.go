package proc

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/deskman/deskman/domain/model"
	"github.com/deskman/deskman/internal/logging"
)

// Launch starts app.Path with app.Args as a detached OS process. The
// child is released immediately: no wait, no output capture, no lifecycle
// tracking. The returned handle carries the PID only.
//
// exec.Command is used instead of exec.CommandContext on purpose: the
// spawned application must outlive the CLI invocation that started it.
func (p *Port) Launch(ctx context.Context, app model.App) (*model.ProcessHandle, error) {
	logger := logging.FromContext(ctx)

	if app.Path == "" {
		return nil, fmt.Errorf("launch %q: empty executable path", app.Name)
	}

	cmd := exec.Command(app.Path, app.Args...)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("launch %q: %w", app.Name, err)
	}

	handle := &model.ProcessHandle{PID: cmd.Process.Pid}

	// Detach: drop the process handle so the child is not reaped by us.
	if err := cmd.Process.Release(); err != nil {
		logger.Warn(ctx, "releasing process handle", "app", app.Name, "pid", handle.PID, "error", err)
	}

	logger.Debug(ctx, "spawned process", "app", app.Name, "path", app.Path, "pid", handle.PID)
	return handle, nil
}
