package workspace

import (
	"context"

	"github.com/deskman/deskman/domain/model"
)

// GetInput identifies the workspace to fetch.
type GetInput struct {
	// Name is the workspace name (storage key).
	Name string `json:"name"`
}

// GetOutput wraps the retrieved workspace.
type GetOutput struct {
	// Workspace is the fetched entity.
	Workspace *model.Workspace `json:"workspace"`
}

// Get retrieves a workspace by name.
func (u *UseCase) Get(ctx context.Context, in *GetInput) (*GetOutput, error) {
	if in == nil || in.Name == "" {
		return nil, model.ErrWorkspaceInvalid
	}
	w, err := u.Repos.Workspace.Get(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Workspace: w}, nil
}
