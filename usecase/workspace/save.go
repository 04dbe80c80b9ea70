package workspace

import (
	"context"
	"time"

	"github.com/deskman/deskman/domain/model"
)

// SaveInput contains data to persist a workspace.
type SaveInput struct {
	// Name is the workspace name (storage key).
	Name string `json:"name"`
	// Apps is the ordered list of applications to capture.
	Apps []model.App `json:"apps"`
}

// SaveOutput wraps the persisted workspace.
type SaveOutput struct {
	// Workspace is the newly persisted entity.
	Workspace *model.Workspace `json:"workspace"`
}

// Save persists a workspace under its name, overwriting any previous
// workspace with the same name. An empty app list is permitted.
func (u *UseCase) Save(ctx context.Context, in *SaveInput) (*SaveOutput, error) {
	if in == nil {
		return nil, model.ErrWorkspaceInvalid
	}
	if err := model.ValidateWorkspaceName(in.Name); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	w := &model.Workspace{Name: in.Name, Apps: in.Apps, CreatedAt: now, UpdatedAt: now}
	w.Normalize()
	if err := u.Repos.Workspace.Create(ctx, w); err != nil {
		return nil, err
	}
	return &SaveOutput{Workspace: w}, nil
}
