package proc

import (
	"context"

	"github.com/deskman/deskman/domain/model"
	"github.com/deskman/deskman/internal/logging"
)

// KillInput identifies the process image to terminate.
type KillInput struct {
	// Name is the executable image name.
	Name string `json:"name"`
}

// KillOutput is empty because kill has no return entity.
type KillOutput struct{}

// Kill forcefully terminates all processes matching the image name.
// Whether a matching process existed is platform-defined; the port maps
// a confirmed no-match to model.ErrProcessNotFound.
func (u *UseCase) Kill(ctx context.Context, in *KillInput) (*KillOutput, error) {
	if in == nil || in.Name == "" {
		return nil, model.ErrProcessNotFound
	}
	if err := u.Process.Kill(ctx, in.Name); err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info(ctx, "killed process", "name", in.Name)
	return &KillOutput{}, nil
}
