package workspace

import (
	"context"

	"github.com/deskman/deskman/domain/model"
)

// DeleteInput identifies the workspace to delete.
type DeleteInput struct {
	// Name is the workspace name (storage key).
	Name string `json:"name"`
}

// DeleteOutput is empty because delete has no return entity.
type DeleteOutput struct{}

// Delete removes the persisted form of a workspace. Deleting a workspace
// that does not exist returns model.ErrWorkspaceNotFound.
func (u *UseCase) Delete(ctx context.Context, in *DeleteInput) (*DeleteOutput, error) {
	if in == nil || in.Name == "" {
		return nil, model.ErrWorkspaceInvalid
	}
	if err := u.Repos.Workspace.Delete(ctx, in.Name); err != nil {
		return nil, err
	}
	return &DeleteOutput{}, nil
}
