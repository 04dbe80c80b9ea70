package domain

import (
	"context"

	"github.com/deskman/deskman/domain/model"
)

// WorkspaceRepository stores and retrieves Workspace aggregates.
// The workspace name is the storage key: Create overwrites any existing
// workspace with the same name (no merge, no versioning).
type WorkspaceRepository interface {
	Create(ctx context.Context, w *model.Workspace) error
	Get(ctx context.Context, name string) (*model.Workspace, error)
	List(ctx context.Context) ([]*model.Workspace, error)
	Update(ctx context.Context, w *model.Workspace) error
	Delete(ctx context.Context, name string) error
}
