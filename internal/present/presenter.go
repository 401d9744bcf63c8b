// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package present exposes the quick actions offered on a finished
// conversion's output file: copy the path, open the document, and reveal it
// in the file browser.
package present

import (
	"fmt"
	"sync"
	"time"

	"github.com/atotto/clipboard"

	"github.com/pdiddy/mdesk/internal/bridge"
)

// copiedWindow is how long the "copied" indicator stays on before reverting.
const copiedWindow = 2 * time.Second

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// systemClipboard is the production clipboard.
type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Presenter delegates the quick actions to the clipboard and the host
// environment. Host-action failures come back to the caller; nothing is
// swallowed.
type Presenter struct {
	clip Clipboard
	host bridge.HostActions
	now  func() time.Time

	mu       sync.Mutex
	copiedAt time.Time
}

// New returns a presenter backed by the system clipboard.
func New(host bridge.HostActions) *Presenter {
	return NewWithClipboard(host, systemClipboard{})
}

// NewWithClipboard returns a presenter with an explicit clipboard, mainly
// for tests and embedding hosts that own the clipboard themselves.
func NewWithClipboard(host bridge.HostActions, clip Clipboard) *Presenter {
	return &Presenter{clip: clip, host: host, now: time.Now}
}

// CopyPath places the literal output path string on the clipboard and starts
// the transient copied indicator.
func (p *Presenter) CopyPath(path string) error {
	if err := p.clip.WriteAll(path); err != nil {
		return fmt.Errorf("copying path to clipboard: %w", err)
	}

	p.mu.Lock()
	p.copiedAt = p.now()
	p.mu.Unlock()
	return nil
}

// CopiedRecently reports whether a copy happened within the indicator
// window. It reverts to false on its own once the window lapses.
func (p *Presenter) CopiedRecently() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.copiedAt.IsZero() && p.now().Sub(p.copiedAt) < copiedWindow
}

// OpenFile asks the host to open the document with its default handler.
func (p *Presenter) OpenFile(path string) error {
	return p.host.OpenFile(path)
}

// RevealInFolder asks the host to show the document in the file browser.
func (p *Presenter) RevealInFolder(path string) error {
	return p.host.RevealInFolder(path)
}
