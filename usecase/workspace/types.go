package workspace

import (
	"time"

	"github.com/deskman/deskman/domain"
	"github.com/deskman/deskman/domain/model"
)

// DefaultLaunchDelay is the pause inserted between app launches during
// restore so the OS is not hit with simultaneous process creation.
const DefaultLaunchDelay = 500 * time.Millisecond

// Repos holds repositories needed for workspace use cases.
type Repos struct {
	Workspace domain.WorkspaceRepository
}

// UseCase wires repositories and ports needed for workspace use cases.
type UseCase struct {
	Repos *Repos
	// Process is the OS process port used by Restore.
	Process model.ProcessPort
	// LaunchDelay overrides DefaultLaunchDelay when positive.
	LaunchDelay time.Duration
}
