// Package proc implements the OS process port: detached app launching,
// running-image enumeration, and kill-by-image-name. All three shell out
// to platform tools; there is no portable stdlib facility for the latter
// two.
package proc

import (
	"github.com/deskman/deskman/domain/model"
)

// Port is the OS-backed implementation of model.ProcessPort.
type Port struct {
	// goos overrides runtime.GOOS in tests; empty means runtime.GOOS.
	goos string
}

// NewPort returns a process port for the current platform.
func NewPort() *Port {
	return &Port{}
}

// Ensure interface satisfaction.
var _ model.ProcessPort = (*Port)(nil)
