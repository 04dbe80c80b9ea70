package workspace

import (
	"context"
	"time"

	"github.com/deskman/deskman/domain/model"
	"github.com/deskman/deskman/internal/logging"
)

// RestoreInput identifies the workspace to restore.
type RestoreInput struct {
	// Name is the workspace name (storage key).
	Name string `json:"name"`
	// Workspace, when set, is restored directly without loading from the
	// repository. Name is ignored in that case.
	Workspace *model.Workspace `json:"-"`
}

// RestoreResult records the outcome of one app launch.
type RestoreResult struct {
	App    model.App            `json:"app"`
	Handle *model.ProcessHandle `json:"handle,omitempty"`
	Err    error                `json:"-"`
}

// RestoreOutput aggregates per-app launch outcomes.
type RestoreOutput struct {
	Workspace *model.Workspace `json:"workspace"`
	Results   []RestoreResult  `json:"results"`
	Launched  int              `json:"launched"`
	Failed    int              `json:"failed"`
}

// Restore launches every app of a workspace in order, pausing between
// launches. A failed launch is recorded and logged but never aborts the
// remaining launches; this best-effort policy is deliberate so a restore
// progresses past unavailable applications. Context cancellation stops
// the sequence between launches.
func (u *UseCase) Restore(ctx context.Context, in *RestoreInput) (*RestoreOutput, error) {
	logger := logging.FromContext(ctx)

	if in == nil {
		return nil, model.ErrWorkspaceInvalid
	}
	w := in.Workspace
	if w == nil {
		if in.Name == "" {
			return nil, model.ErrWorkspaceInvalid
		}
		var err error
		w, err = u.Repos.Workspace.Get(ctx, in.Name)
		if err != nil {
			return nil, err
		}
	}

	delay := u.LaunchDelay
	if delay <= 0 {
		delay = DefaultLaunchDelay
	}

	logger.Info(ctx, "restoring workspace", "workspace", w.Name, "apps", len(w.Apps))

	out := &RestoreOutput{Workspace: w}
	for i, app := range w.Apps {
		if i > 0 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return out, ctx.Err()
			}
		}
		handle, err := u.Process.Launch(ctx, app)
		if err != nil {
			logger.Error(ctx, "launch failed", "app", app.Name, "path", app.Path, "error", err)
			out.Results = append(out.Results, RestoreResult{App: app, Err: err})
			out.Failed++
			continue
		}
		logger.Info(ctx, "launched", "app", app.Name, "pid", handle.PID)
		out.Results = append(out.Results, RestoreResult{App: app, Handle: handle})
		out.Launched++
	}

	logger.Info(ctx, "workspace restored", "workspace", w.Name, "launched", out.Launched, "failed", out.Failed)
	return out, nil
}
