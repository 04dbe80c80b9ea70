// Package dirstore persists each workspace as one YAML file under a
// configured root directory. The workspace name is the filename stem, so
// the storage layout is visible and editable with ordinary tools.
package dirstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/deskman/deskman/domain"
	"github.com/deskman/deskman/domain/model"
)

// Ext is the filename suffix for stored workspaces.
const Ext = ".yaml"

// schemaVersion is bumped on incompatible changes to the file format.
const schemaVersion = 1

// WorkspaceRepository is a file-per-workspace implementation of
// domain.WorkspaceRepository rooted at a directory.
type WorkspaceRepository struct {
	dir string
}

// NewWorkspaceRepository returns a repository rooted at dir. The
// directory is created lazily on first save.
func NewWorkspaceRepository(dir string) *WorkspaceRepository {
	return &WorkspaceRepository{dir: dir}
}

// workspaceDoc is the on-disk YAML representation of a workspace.
type workspaceDoc struct {
	Version   int       `yaml:"version"`
	Name      string    `yaml:"name"`
	CreatedAt time.Time `yaml:"createdAt"`
	UpdatedAt time.Time `yaml:"updatedAt"`
	Apps      []appDoc  `yaml:"apps"`
}

type appDoc struct {
	Name string   `yaml:"name"`
	Path string   `yaml:"path"`
	Args []string `yaml:"args"`
}

func toDoc(w *model.Workspace) *workspaceDoc {
	doc := &workspaceDoc{
		Version:   schemaVersion,
		Name:      w.Name,
		CreatedAt: w.CreatedAt.UTC(),
		UpdatedAt: w.UpdatedAt.UTC(),
		Apps:      make([]appDoc, 0, len(w.Apps)),
	}
	for _, a := range w.Apps {
		args := a.Args
		if args == nil {
			args = []string{}
		}
		doc.Apps = append(doc.Apps, appDoc{Name: a.Name, Path: a.Path, Args: args})
	}
	return doc
}

func toModel(doc *workspaceDoc) *model.Workspace {
	w := &model.Workspace{
		Name:      doc.Name,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
		Apps:      make([]model.App, 0, len(doc.Apps)),
	}
	for _, a := range doc.Apps {
		w.Apps = append(w.Apps, model.App{Name: a.Name, Path: a.Path, Args: a.Args})
	}
	w.Normalize()
	return w
}

func (r *WorkspaceRepository) path(name string) string {
	return filepath.Join(r.dir, name+Ext)
}

// write marshals w and writes it atomically: temp file in the same
// directory, then rename over the final path.
func (r *WorkspaceRepository) write(w *model.Workspace) error {
	if err := model.ValidateWorkspaceName(w.Name); err != nil {
		return err
	}
	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return fmt.Errorf("creating workspace directory %q: %w", r.dir, err)
	}
	data, err := yaml.Marshal(toDoc(w))
	if err != nil {
		return fmt.Errorf("encoding workspace %q: %w", w.Name, err)
	}
	tmp, err := os.CreateTemp(r.dir, "."+w.Name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file for %q: %w", w.Name, err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing workspace %q: %w", w.Name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing workspace %q: %w", w.Name, err)
	}
	if err := os.Rename(tmpPath, r.path(w.Name)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("saving workspace %q: %w", w.Name, err)
	}
	return nil
}

// Create stores a workspace; an existing file with the same name is
// overwritten (the name is the storage key, no versioning).
func (r *WorkspaceRepository) Create(_ context.Context, w *model.Workspace) error {
	return r.write(w)
}

func (r *WorkspaceRepository) Get(_ context.Context, name string) (*model.Workspace, error) {
	if err := model.ValidateWorkspaceName(name); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(r.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, model.ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("reading workspace %q: %w", name, err)
	}
	var doc workspaceDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding workspace %q: %w", name, err)
	}
	if doc.Version != schemaVersion {
		return nil, fmt.Errorf("workspace %q: unsupported schema version %d: %w", name, doc.Version, model.ErrWorkspaceInvalid)
	}
	return toModel(&doc), nil
}

// List returns all readable workspaces in the directory. Files that are
// not workspace documents are skipped rather than failing the listing.
func (r *WorkspaceRepository) List(ctx context.Context) ([]*model.Workspace, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []*model.Workspace{}, nil
		}
		return nil, fmt.Errorf("reading workspace directory %q: %w", r.dir, err)
	}
	out := make([]*model.Workspace, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Ext) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), Ext)
		w, err := r.Get(ctx, name)
		if err != nil {
			continue
		}
		out = append(out, w)
	}
	return out, nil
}

func (r *WorkspaceRepository) Update(ctx context.Context, w *model.Workspace) error {
	if _, err := r.Get(ctx, w.Name); err != nil {
		return err
	}
	return r.write(w)
}

func (r *WorkspaceRepository) Delete(_ context.Context, name string) error {
	if err := model.ValidateWorkspaceName(name); err != nil {
		return err
	}
	if err := os.Remove(r.path(name)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.ErrWorkspaceNotFound
		}
		return fmt.Errorf("deleting workspace %q: %w", name, err)
	}
	return nil
}

// Ensure interface satisfaction.
var _ domain.WorkspaceRepository = (*WorkspaceRepository)(nil)
