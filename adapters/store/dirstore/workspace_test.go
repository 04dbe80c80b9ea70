package dirstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/deskman/deskman/domain/model"
)

func testWorkspace(name string) *model.Workspace {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return &model.Workspace{
		Name: name,
		Apps: []model.App{
			{Name: "Notepad", Path: "notepad", Args: []string{}},
			{Name: "Chrome", Path: "chrome", Args: []string{"https://a.com", "https://b.com"}},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		apps []model.App
	}{
		{name: "no_apps", apps: []model.App{}},
		{name: "empty_and_full_args", apps: []model.App{
			{Name: "Notepad", Path: "notepad", Args: []string{}},
			{Name: "Chrome", Path: "chrome", Args: []string{"https://a.com", "https://b.com"}},
		}},
		{name: "many_apps", apps: []model.App{
			{Name: "a", Path: "a", Args: []string{"1"}},
			{Name: "b", Path: "b", Args: []string{"2"}},
			{Name: "c", Path: "c", Args: []string{"3"}},
			{Name: "d", Path: "d", Args: []string{}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := NewWorkspaceRepository(t.TempDir())

			w := testWorkspace("rt")
			w.Apps = tt.apps

			if err := repo.Create(ctx, w); err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			got, err := repo.Get(ctx, "rt")
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if got.Name != w.Name {
				t.Errorf("Name = %q, want %q", got.Name, w.Name)
			}
			if !got.CreatedAt.Equal(w.CreatedAt) {
				t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, w.CreatedAt)
			}
			if !reflect.DeepEqual(got.Apps, w.Apps) {
				t.Errorf("Apps = %+v, want %+v", got.Apps, w.Apps)
			}
		})
	}
}

func TestRoundTrip_NilArgs(t *testing.T) {
	ctx := context.Background()
	repo := NewWorkspaceRepository(t.TempDir())

	w := testWorkspace("nilargs")
	w.Apps = []model.App{{Name: "x", Path: "x"}} // Args nil on purpose

	if err := repo.Create(ctx, w); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	got, err := repo.Get(ctx, "nilargs")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Apps[0].Args == nil {
		t.Errorf("Args should never be nil after load")
	}
}

func TestCreate_Overwrites(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	repo := NewWorkspaceRepository(dir)

	if err := repo.Create(ctx, testWorkspace("dup")); err != nil {
		t.Fatalf("first Create() error = %v", err)
	}
	second := testWorkspace("dup")
	second.Apps = second.Apps[:1]
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("second Create() error = %v", err)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("List() returned %d entries, want 1", len(list))
	}
	if len(list[0].Apps) != 1 {
		t.Errorf("overwrite not applied: %d apps, want 1", len(list[0].Apps))
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewWorkspaceRepository(t.TempDir())

	if err := repo.Create(ctx, testWorkspace("gone")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := repo.Delete(ctx, "gone"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := repo.Get(ctx, "gone"); !errors.Is(err, model.ErrWorkspaceNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrWorkspaceNotFound", err)
	}
	if err := repo.Delete(ctx, "gone"); !errors.Is(err, model.ErrWorkspaceNotFound) {
		t.Errorf("second Delete() error = %v, want ErrWorkspaceNotFound", err)
	}
	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 0 {
		t.Errorf("List() after delete = %d entries, want 0", len(list))
	}
}

func TestGet_NotFound(t *testing.T) {
	repo := NewWorkspaceRepository(t.TempDir())
	if _, err := repo.Get(context.Background(), "missing"); !errors.Is(err, model.ErrWorkspaceNotFound) {
		t.Errorf("Get() error = %v, want ErrWorkspaceNotFound", err)
	}
}

func TestGet_SchemaMismatch(t *testing.T) {
	dir := t.TempDir()
	repo := NewWorkspaceRepository(dir)

	data := []byte("version: 99\nname: old\napps: []\n")
	if err := os.WriteFile(filepath.Join(dir, "old"+Ext), data, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Get(context.Background(), "old"); !errors.Is(err, model.ErrWorkspaceInvalid) {
		t.Errorf("Get() error = %v, want ErrWorkspaceInvalid", err)
	}
}

func TestList_SkipsGarbage(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	repo := NewWorkspaceRepository(dir)

	if err := repo.Create(ctx, testWorkspace("good")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "junk.yaml"), []byte(":: not yaml ::"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "README.txt"), []byte("hi"), 0644); err != nil {
		t.Fatal(err)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 1 || list[0].Name != "good" {
		t.Errorf("List() = %+v, want only workspace %q", list, "good")
	}
}

func TestList_MissingDirectory(t *testing.T) {
	repo := NewWorkspaceRepository(filepath.Join(t.TempDir(), "nope"))
	list, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 0 {
		t.Errorf("List() = %d entries, want 0", len(list))
	}
}

func TestCreate_InvalidName(t *testing.T) {
	repo := NewWorkspaceRepository(t.TempDir())
	w := testWorkspace("x")
	w.Name = "../escape"
	if err := repo.Create(context.Background(), w); !errors.Is(err, model.ErrWorkspaceInvalid) {
		t.Errorf("Create() error = %v, want ErrWorkspaceInvalid", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo := NewWorkspaceRepository(t.TempDir())
	if err := repo.Update(context.Background(), testWorkspace("nope")); !errors.Is(err, model.ErrWorkspaceNotFound) {
		t.Errorf("Update() error = %v, want ErrWorkspaceNotFound", err)
	}
}
