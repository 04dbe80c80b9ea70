package workspace

import (
	"context"
	"sort"

	"github.com/deskman/deskman/domain/model"
)

// ListInput defines optional filters for listing workspaces.
type ListInput struct{}

// ListOutput wraps listed workspaces.
type ListOutput struct {
	// Workspaces is the collection returned, sorted by name.
	Workspaces []*model.Workspace `json:"workspaces"`
}

// List returns all stored workspaces sorted by name.
func (u *UseCase) List(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	items, err := u.Repos.Workspace.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return &ListOutput{Workspaces: items}, nil
}
