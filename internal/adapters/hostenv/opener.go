package hostenv

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// SystemOpener implements the FileOpener port using a configured viewer
// or the OS default application
type SystemOpener struct {
	viewer string
	goos   string
	start  func(*exec.Cmd) error
}

// NewSystemOpener creates an opener. An empty viewer uses the OS default.
func NewSystemOpener(viewer string) *SystemOpener {
	return &SystemOpener{
		viewer: viewer,
		goos:   runtime.GOOS,
		start:  func(c *exec.Cmd) error { return c.Start() },
	}
}

// Open launches the viewer detached so folio can exit while it stays open
func (o *SystemOpener) Open(ctx context.Context, target string) error {
	if strings.TrimSpace(target) == "" {
		return fmt.Errorf("nothing to open")
	}

	cmd := o.command(target)
	if err := o.start(cmd); err != nil {
		if o.viewer != "" {
			return fmt.Errorf("failed to open '%s' with '%s': %w", target, o.viewer, err)
		}
		return fmt.Errorf("failed to open '%s': %w", target, err)
	}

	return nil
}

func (o *SystemOpener) command(target string) *exec.Cmd {
	if o.viewer != "" {
		return exec.Command(o.viewer, target)
	}

	switch o.goos {
	case "darwin":
		return exec.Command("open", target)
	case "windows":
		return exec.Command("cmd", "/c", "start", "", target)
	default:
		return exec.Command("xdg-open", target)
	}
}
