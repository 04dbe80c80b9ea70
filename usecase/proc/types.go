package proc

import "github.com/deskman/deskman/domain/model"

// UseCase wires the OS process port for process use cases.
type UseCase struct {
	Process model.ProcessPort
}
