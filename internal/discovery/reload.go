package discovery

import (
	"errors"
	"os/exec"
	"runtime"
)

// ErrReloadUnsupported means this platform has no way to make a running
// Ghostty re-read its config; the user reloads manually.
var ErrReloadUnsupported = errors.New("automatic reload not supported on this platform")

// reloadScript sends Ghostty its reload-config shortcut via System Events.
const reloadScript = `tell application "System Events"
    if (name of processes) contains "ghostty" then
        tell process "ghostty"
            keystroke "," using {command down, shift down}
        end tell
    end if
end tell`

// RequestReload asks the running Ghostty to re-read its configuration.
// Only macOS is supported; elsewhere callers surface the manual shortcut.
func RequestReload() error {
	if runtime.GOOS != "darwin" {
		return ErrReloadUnsupported
	}
	cmd := exec.Command("osascript", "-e", reloadScript)
	if out, err := cmd.CombinedOutput(); err != nil {
		return errors.New("osascript failed: " + string(out))
	}
	return nil
}
