package proc

import (
	"context"
	"strings"

	"github.com/deskman/deskman/domain/model"
)

// StatusInput identifies the process image to look for.
type StatusInput struct {
	// Name is the executable image name, matched case-insensitively.
	Name string `json:"name"`
}

// StatusOutput reports whether the image is running.
type StatusOutput struct {
	Name    string `json:"name"`
	Running bool   `json:"running"`
}

// Status reports whether an app is currently running. The check takes a
// fresh snapshot on every call and matches case-insensitively.
func (u *UseCase) Status(ctx context.Context, in *StatusInput) (*StatusOutput, error) {
	if in == nil || in.Name == "" {
		return nil, model.ErrProcessNotFound
	}
	snap, err := u.Snapshot(ctx, &SnapshotInput{})
	if err != nil {
		return nil, err
	}
	for _, img := range snap.Images {
		if strings.EqualFold(img, in.Name) {
			return &StatusOutput{Name: in.Name, Running: true}, nil
		}
	}
	return &StatusOutput{Name: in.Name, Running: false}, nil
}
