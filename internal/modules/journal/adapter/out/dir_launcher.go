package out

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	journalout "toobuff/internal/modules/journal/port/out"
)

type OSDirLauncher struct{}

func NewOSDirLauncher() journalout.DirLauncher {
	return &OSDirLauncher{}
}

func (l *OSDirLauncher) Open(_ context.Context, path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	case "windows":
		cmd = exec.Command("explorer", path)
	default:
		return fmt.Errorf("opening a file manager is not supported on %s", runtime.GOOS)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open data directory: %w", err)
	}
	return nil
}
