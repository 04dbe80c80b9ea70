package proc

import (
	"context"

	"github.com/deskman/deskman/internal/logging"
)

// SnapshotInput defines optional filters for the process snapshot.
type SnapshotInput struct{}

// SnapshotOutput carries the captured process image names.
type SnapshotOutput struct {
	// Images is the list of running executable image names.
	Images []string `json:"images"`
	// Degraded is true when enumeration failed and Images is empty
	// because of it, not because nothing is running.
	Degraded bool `json:"degraded,omitempty"`
}

// Snapshot queries the OS for currently running executable images. An
// enumeration failure never fails the caller: it yields an empty,
// degraded snapshot and a logged warning.
func (u *UseCase) Snapshot(ctx context.Context, _ *SnapshotInput) (*SnapshotOutput, error) {
	images, err := u.Process.ListImages(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn(ctx, "process enumeration failed", "error", err)
		return &SnapshotOutput{Images: []string{}, Degraded: true}, nil
	}
	return &SnapshotOutput{Images: images}, nil
}
