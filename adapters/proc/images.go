package proc

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// ListImages returns the executable image names of all running processes.
// Every call issues a fresh OS query; nothing is cached.
func (p *Port) ListImages(ctx context.Context) ([]string, error) {
	switch p.os() {
	case "windows":
		// Format: "Image Name    PID Session Name  Session#  Mem Usage"
		cmd := exec.CommandContext(ctx, "tasklist")
		output, err := cmd.Output()
		if err != nil {
			return nil, fmt.Errorf("tasklist: %w", err)
		}
		return parseTasklist(string(output)), nil
	default:
		cmd := exec.CommandContext(ctx, "ps", "-eo", "comm=")
		output, err := cmd.Output()
		if err != nil {
			return nil, fmt.Errorf("ps: %w", err)
		}
		return parsePSComm(string(output)), nil
	}
}

func (p *Port) os() string {
	if p.goos != "" {
		return p.goos
	}
	return runtime.GOOS
}

// parseTasklist extracts image names from tasklist output: the first
// whitespace-delimited token of each line, kept only when it names an
// executable.
func parseTasklist(out string) []string {
	var images []string
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		name := fields[0]
		if strings.HasSuffix(strings.ToLower(name), ".exe") {
			images = append(images, name)
		}
	}
	return images
}

// parsePSComm extracts image names from `ps -eo comm=` output. Kernel
// threads (bracketed) are skipped; paths are reduced to their basename.
func parsePSComm(out string) []string {
	var images []string
	for _, line := range strings.Split(out, "\n") {
		name := strings.TrimSpace(line)
		if name == "" || strings.HasPrefix(name, "[") {
			continue
		}
		images = append(images, filepath.Base(name))
	}
	return images
}
