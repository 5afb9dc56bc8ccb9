// Package launcher opens a generated file in the platform's default viewer.
package launcher

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Open starts the platform viewer for path without waiting on it. The
// caller treats failure as cosmetic; the workbook is already on disk.
func Open(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	case "darwin":
		cmd = exec.Command("open", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	return nil
}
