// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bridge is the boundary to the host environment: it invokes the
// external md2docx converter process and delegates open-file and
// reveal-in-folder actions to the operating system.
package bridge

import (
	"context"
	"io"
	"os/exec"

	"github.com/pdiddy/mdesk/pkg/types"
)

// Converter produces a page-formatted document from a Markdown source file.
type Converter interface {
	// Convert renders the file at inputPath with the given settings and
	// returns the absolute path of the produced document. On failure the
	// error text carries the converter's diagnostic output when there is any.
	Convert(ctx context.Context, inputPath string, settings types.DocumentSettings) (string, error)
}

// HostActions opens files and folders with the operating system's handlers.
type HostActions interface {
	// OpenFile opens path with the OS default handler for its type.
	OpenFile(path string) error

	// RevealInFolder shows path inside the OS file browser.
	RevealInFolder(path string) error
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(ctx context.Context, stderr io.Writer, name string, args ...string) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(ctx context.Context, stderr io.Writer, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = stderr
	return cmd.Run()
}

var defaultExec executor = &osExecutor{}
