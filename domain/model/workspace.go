package model

import (
	"regexp"
	"time"
)

// App represents a single application launch entry in a workspace:
// a display name, the executable or command to run, and its arguments.
type App struct {
	Name string
	Path string
	Args []string
}

// Workspace represents a named, ordered set of applications captured at a
// point in time. Name doubles as the storage key and must satisfy
// ValidateWorkspaceName. Apps order is launch order and is preserved
// exactly across persistence.
type Workspace struct {
	ID        string
	Name      string
	Apps      []App
	CreatedAt time.Time
	UpdatedAt time.Time
}

// workspaceNameRe restricts names to filesystem-safe keys.
var workspaceNameRe = regexp.MustCompile(`^[A-Za-z0-9_-][A-Za-z0-9._-]*$`)

// MaxWorkspaceNameLength bounds the storage key so it stays usable as a
// filename stem on every supported filesystem.
const MaxWorkspaceNameLength = 128

// ValidateWorkspaceName reports whether name is usable as a storage key.
// Allowed: letters, digits, ".", "_", "-"; no leading dot; max 128 chars.
func ValidateWorkspaceName(name string) error {
	if name == "" || len(name) > MaxWorkspaceNameLength {
		return ErrWorkspaceInvalid
	}
	if !workspaceNameRe.MatchString(name) {
		return ErrWorkspaceInvalid
	}
	return nil
}

// Normalize ensures invariants that serialization may not preserve:
// Args is never nil, even when empty.
func (w *Workspace) Normalize() {
	for i := range w.Apps {
		if w.Apps[i].Args == nil {
			w.Apps[i].Args = []string{}
		}
	}
}
