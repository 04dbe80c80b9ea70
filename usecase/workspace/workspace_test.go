package workspace

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/deskman/deskman/adapters/store/inmem"
	"github.com/deskman/deskman/domain/model"
)

func newTestUseCase() *UseCase {
	return &UseCase{Repos: &Repos{Workspace: inmem.NewWorkspaceRepository()}}
}

func TestSaveGet(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()

	apps := []model.App{
		{Name: "Notepad", Path: "notepad"},
		{Name: "Chrome", Path: "chrome", Args: []string{"https://a.com", "https://b.com"}},
	}
	saved, err := uc.Save(ctx, &SaveInput{Name: "homework", Apps: apps})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if saved.Workspace.CreatedAt.IsZero() {
		t.Errorf("Save() did not set CreatedAt")
	}

	got, err := uc.Get(ctx, &GetInput{Name: "homework"})
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	want := []model.App{
		{Name: "Notepad", Path: "notepad", Args: []string{}},
		{Name: "Chrome", Path: "chrome", Args: []string{"https://a.com", "https://b.com"}},
	}
	if !reflect.DeepEqual(got.Workspace.Apps, want) {
		t.Errorf("Apps = %+v, want %+v", got.Workspace.Apps, want)
	}
}

func TestSave_InvalidName(t *testing.T) {
	uc := newTestUseCase()
	tests := []string{"", "../x", "a b", ".hidden"}
	for _, name := range tests {
		if _, err := uc.Save(context.Background(), &SaveInput{Name: name}); !errors.Is(err, model.ErrWorkspaceInvalid) {
			t.Errorf("Save(%q) error = %v, want ErrWorkspaceInvalid", name, err)
		}
	}
}

func TestSave_EmptyAppsPermitted(t *testing.T) {
	uc := newTestUseCase()
	if _, err := uc.Save(context.Background(), &SaveInput{Name: "empty"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := uc.Get(context.Background(), &GetInput{Name: "empty"})
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(got.Workspace.Apps) != 0 {
		t.Errorf("Apps = %+v, want empty", got.Workspace.Apps)
	}
}

func TestSave_OverwriteIsIdempotentInList(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()

	for i := 0; i < 2; i++ {
		if _, err := uc.Save(ctx, &SaveInput{Name: "dup"}); err != nil {
			t.Fatalf("Save() #%d error = %v", i, err)
		}
	}
	out, err := uc.List(ctx, &ListInput{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	count := 0
	for _, w := range out.Workspaces {
		if w.Name == "dup" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("List() contains %d entries named dup, want 1", count)
	}
}

func TestList_SortedByName(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if _, err := uc.Save(ctx, &SaveInput{Name: name}); err != nil {
			t.Fatalf("Save(%q) error = %v", name, err)
		}
	}
	out, err := uc.List(ctx, &ListInput{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	var names []string
	for _, w := range out.Workspaces {
		names = append(names, w.Name)
	}
	want := []string{"alpha", "mid", "zeta"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("List() order = %v, want %v", names, want)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()

	if _, err := uc.Save(ctx, &SaveInput{Name: "gone"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := uc.Delete(ctx, &DeleteInput{Name: "gone"}); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := uc.Get(ctx, &GetInput{Name: "gone"}); !errors.Is(err, model.ErrWorkspaceNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrWorkspaceNotFound", err)
	}
	if _, err := uc.Delete(ctx, &DeleteInput{Name: "gone"}); !errors.Is(err, model.ErrWorkspaceNotFound) {
		t.Errorf("second Delete() error = %v, want ErrWorkspaceNotFound", err)
	}
}

func TestUpdate_ReplacesAppsKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()

	saved, err := uc.Save(ctx, &SaveInput{Name: "w", Apps: []model.App{{Name: "a", Path: "a"}}})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	created := saved.Workspace.CreatedAt

	out, err := uc.Update(ctx, &UpdateInput{Name: "w", Apps: []model.App{{Name: "b", Path: "b"}}})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if !out.Workspace.CreatedAt.Equal(created) {
		t.Errorf("Update() changed CreatedAt: %v -> %v", created, out.Workspace.CreatedAt)
	}
	if len(out.Workspace.Apps) != 1 || out.Workspace.Apps[0].Name != "b" {
		t.Errorf("Update() apps = %+v, want [b]", out.Workspace.Apps)
	}
}
