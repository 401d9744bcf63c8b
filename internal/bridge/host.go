// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bridge

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// hostOpener implements HostActions with the platform's opener commands.
type hostOpener struct {
	goos string
	exec executor
}

// NewHostActions returns host actions for the running operating system.
func NewHostActions() HostActions {
	return &hostOpener{goos: runtime.GOOS, exec: defaultExec}
}

// OpenFile opens path with the OS default handler. Errors are returned, not
// swallowed, so the caller can surface them to the user.
func (h *hostOpener) OpenFile(path string) error {
	name, args := h.openCommand(path)
	return h.run("opening", path, name, args)
}

// RevealInFolder shows path inside the OS file browser.
func (h *hostOpener) RevealInFolder(path string) error {
	name, args := h.revealCommand(path)
	return h.run("revealing", path, name, args)
}

func (h *hostOpener) run(verb, path, name string, args []string) error {
	var stderr bytes.Buffer
	if err := h.exec.Run(context.Background(), &stderr, name, args...); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s %s: %s", verb, path, msg)
		}
		return fmt.Errorf("%s %s: %w", verb, path, err)
	}
	return nil
}

func (h *hostOpener) openCommand(path string) (string, []string) {
	switch h.goos {
	case "darwin":
		return "open", []string{path}
	case "windows":
		// The empty string is the window title slot of the start builtin.
		return "cmd", []string{"/c", "start", "", path}
	default:
		return "xdg-open", []string{path}
	}
}

func (h *hostOpener) revealCommand(path string) (string, []string) {
	switch h.goos {
	case "darwin":
		return "open", []string{"-R", path}
	case "windows":
		return "explorer", []string{"/select," + path}
	default:
		// xdg-open has no select flag; open the containing directory.
		return "xdg-open", []string{filepath.Dir(path)}
	}
}
