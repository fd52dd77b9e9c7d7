package reports

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Opener shows a local file to the user
type Opener func(path string) error

// OpenInBrowser opens the file with the platform's default handler
func OpenInBrowser(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	// the viewer keeps running on its own
	go cmd.Wait()
	return nil
}
