// Package inmem provides map-backed repositories for tests and
// ephemeral runs (memory: store URLs).
package inmem

import (
	"context"
	"sync"

	"github.com/deskman/deskman/domain"
	"github.com/deskman/deskman/domain/model"
)

// WorkspaceRepository is a thread-safe in-memory implementation keyed by
// workspace name.
type WorkspaceRepository struct {
	mu         sync.RWMutex
	workspaces map[string]*model.Workspace
}

func NewWorkspaceRepository() *WorkspaceRepository {
	return &WorkspaceRepository{
		workspaces: make(map[string]*model.Workspace),
	}
}

func copyOf(w *model.Workspace) *model.Workspace {
	cp := *w
	cp.Apps = make([]model.App, len(w.Apps))
	copy(cp.Apps, w.Apps)
	return &cp
}

// Create stores a workspace, overwriting any existing entry of the same
// name (the name is the storage key).
func (r *WorkspaceRepository) Create(_ context.Context, w *model.Workspace) error {
	if err := model.ValidateWorkspaceName(w.Name); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.workspaces[w.Name] = copyOf(w)
	return nil
}

func (r *WorkspaceRepository) Get(_ context.Context, name string) (*model.Workspace, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.workspaces[name]
	if !ok {
		return nil, model.ErrWorkspaceNotFound
	}
	return copyOf(w), nil
}

func (r *WorkspaceRepository) List(_ context.Context) ([]*model.Workspace, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Workspace, 0, len(r.workspaces))
	for _, w := range r.workspaces {
		out = append(out, copyOf(w))
	}
	return out, nil
}

func (r *WorkspaceRepository) Update(_ context.Context, w *model.Workspace) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.workspaces[w.Name]
	if !ok {
		return model.ErrWorkspaceNotFound
	}
	cp := copyOf(w)
	// Preserve CreatedAt if caller accidentally changed it.
	cp.CreatedAt = existing.CreatedAt
	r.workspaces[w.Name] = cp
	return nil
}

func (r *WorkspaceRepository) Delete(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.workspaces[name]; !ok {
		return model.ErrWorkspaceNotFound
	}
	delete(r.workspaces, name)
	return nil
}

// Ensure interface satisfaction.
var _ domain.WorkspaceRepository = (*WorkspaceRepository)(nil)
