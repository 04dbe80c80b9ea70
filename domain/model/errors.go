package model

import "errors"

var (
	ErrWorkspaceNotFound = errors.New("workspace not found")
	ErrWorkspaceInvalid  = errors.New("workspace invalid")
	ErrProcessNotFound   = errors.New("process not found")
)
