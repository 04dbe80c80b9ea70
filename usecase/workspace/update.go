package workspace

import (
	"context"
	"time"

	"github.com/deskman/deskman/domain/model"
)

// UpdateInput specifies workspace fields that can be changed.
type UpdateInput struct {
	// Name identifies the workspace.
	Name string `json:"name"`
	// Apps optionally replaces the app list.
	Apps []model.App `json:"apps,omitempty"`
}

// UpdateOutput wraps the updated workspace.
type UpdateOutput struct {
	// Workspace is the updated entity.
	Workspace *model.Workspace `json:"workspace"`
}

// Update applies provided changes to a workspace. CreatedAt is preserved.
func (u *UseCase) Update(ctx context.Context, in *UpdateInput) (*UpdateOutput, error) {
	if in == nil || in.Name == "" {
		return nil, model.ErrWorkspaceInvalid
	}
	existing, err := u.Repos.Workspace.Get(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	changed := false
	if in.Apps != nil {
		existing.Apps = in.Apps
		existing.Normalize()
		changed = true
	}
	if changed {
		existing.UpdatedAt = time.Now().UTC()
		if err := u.Repos.Workspace.Update(ctx, existing); err != nil {
			return nil, err
		}
	}
	return &UpdateOutput{Workspace: existing}, nil
}
