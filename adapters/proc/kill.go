package proc

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/deskman/deskman/domain/model"
)

// Kill forcefully terminates every process whose image name matches name.
// The underlying tools report "no match" distinctly and that is mapped to
// model.ErrProcessNotFound; any other failure is returned as-is.
func (p *Port) Kill(ctx context.Context, name string) error {
	switch p.os() {
	case "windows":
		cmd := exec.CommandContext(ctx, "taskkill", "/F", "/IM", name)
		if err := cmd.Run(); err != nil {
			var exitErr *exec.ExitError
			// taskkill exits 128 when no process matched the image name.
			if errors.As(err, &exitErr) && exitErr.ExitCode() == 128 {
				return model.ErrProcessNotFound
			}
			return fmt.Errorf("taskkill %q: %w", name, err)
		}
		return nil
	default:
		cmd := exec.CommandContext(ctx, "pkill", "-9", "-x", name)
		if err := cmd.Run(); err != nil {
			var exitErr *exec.ExitError
			// pkill exits 1 when no process matched.
			if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
				return model.ErrProcessNotFound
			}
			return fmt.Errorf("pkill %q: %w", name, err)
		}
		return nil
	}
}
