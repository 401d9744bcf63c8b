// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package orchestrator owns the conversion lifecycle: the
// idle/converting/succeeded/failed state machine around the converter bridge.
package orchestrator

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/mdesk/internal/bridge"
	"github.com/pdiddy/mdesk/pkg/types"
)

// FallbackMessage is shown when a converter failure carries no diagnostic text.
const FallbackMessage = "Conversion failed. Check the converter installation and try again."

var (
	// ErrNoSelection is returned when convert is invoked without a selected file.
	ErrNoSelection = fmt.Errorf("no file selected")

	// ErrConversionInFlight is returned when a conversion is already running.
	// The guard is real admission control, not advisory UI state: a second
	// caller can never launch an overlapping converter process through one
	// orchestrator.
	ErrConversionInFlight = fmt.Errorf("a conversion is already in progress")
)

// Recorder persists finished conversion attempts. The history store
// implements it; a nil recorder disables persistence.
type Recorder interface {
	Record(rec types.ConversionRecord) error
}

// Orchestrator drives conversions one at a time. The lifecycle is cyclic:
// from succeeded or failed, the next convert re-enters converting and clears
// the prior output or error.
type Orchestrator struct {
	converter bridge.Converter
	recorder  Recorder

	mu    sync.Mutex
	state types.ConversionState
}

// New returns an orchestrator in the idle state.
func New(c bridge.Converter) *Orchestrator {
	return &Orchestrator{
		converter: c,
		state:     types.ConversionState{Phase: types.PhaseIdle},
	}
}

// WithRecorder attaches a history recorder and returns the orchestrator.
func (o *Orchestrator) WithRecorder(r Recorder) *Orchestrator {
	o.recorder = r
	return o
}

// State returns a copy of the current lifecycle state.
func (o *Orchestrator) State() types.ConversionState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Convert runs one conversion of file with a snapshot of settings.
//
// With no file the call is a no-op: the state does not change, the bridge is
// never invoked, and ErrNoSelection is returned. While a conversion is in
// flight, a second call returns ErrConversionInFlight. Otherwise the returned
// state is the terminal one for this attempt: succeeded with the output path,
// or failed with the converter's diagnostic text (or FallbackMessage when the
// failure carried none). A converter failure is a state, not a Go error.
func (o *Orchestrator) Convert(ctx context.Context, file *types.SelectedFile, settings types.DocumentSettings) (types.ConversionState, error) {
	if file == nil {
		return o.State(), ErrNoSelection
	}

	o.mu.Lock()
	if o.state.Phase == types.PhaseConverting {
		o.mu.Unlock()
		return types.ConversionState{Phase: types.PhaseConverting}, ErrConversionInFlight
	}
	// Entering converting clears any prior output or error.
	o.state = types.ConversionState{Phase: types.PhaseConverting}
	o.mu.Unlock()

	started := time.Now()
	outPath, err := o.converter.Convert(ctx, file.Path, settings)

	var next types.ConversionState
	if err != nil {
		msg := strings.TrimSpace(err.Error())
		if msg == "" {
			msg = FallbackMessage
		}
		next = types.ConversionState{Phase: types.PhaseFailed, Message: msg}
	} else {
		next = types.ConversionState{Phase: types.PhaseSucceeded, OutputPath: outPath}
	}

	o.mu.Lock()
	o.state = next
	o.mu.Unlock()

	o.record(file, settings, next, started)
	return next, nil
}

// record logs the finished attempt to the recorder. Recording problems must
// never fail a conversion; they are reported as warnings.
func (o *Orchestrator) record(file *types.SelectedFile, settings types.DocumentSettings, state types.ConversionState, started time.Time) {
	if o.recorder == nil {
		return
	}

	rec := types.ConversionRecord{
		ID:         uuid.NewString(),
		InputPath:  file.Path,
		OutputPath: state.OutputPath,
		Status:     state.Phase,
		Message:    state.Message,
		Settings:   settings,
		StartedAt:  started,
		Duration:   time.Since(started),
	}
	if err := o.recorder.Record(rec); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record conversion: %v\n", err)
	}
}
