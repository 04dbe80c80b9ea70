package model

import "context"

// ProcessHandle is an opaque reference to a spawned process. The core
// never waits on it; callers may retain it for future management.
type ProcessHandle struct {
	PID int
}

// ProcessPort is an interface (domain port) for OS process operations.
type ProcessPort interface {
	// Launch starts app detached and returns immediately. The spawned
	// process is not waited on and its output is not captured.
	Launch(ctx context.Context, app App) (*ProcessHandle, error)
	// ListImages returns the executable image names of currently running
	// processes. The query is fresh on every call.
	ListImages(ctx context.Context) ([]string, error)
	// Kill issues a forceful termination for all processes whose image
	// name matches name. Returns ErrProcessNotFound when nothing matched.
	Kill(ctx context.Context, name string) error
}
