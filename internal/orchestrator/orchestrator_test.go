// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package orchestrator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/pdiddy/mdesk/pkg/types"
)

// fakeConverter returns a canned output path or error and counts calls.
type fakeConverter struct {
	out   string
	err   error
	calls int

	// block, when non-nil, is closed by the test to release an in-flight call.
	block chan struct{}
}

func (f *fakeConverter) Convert(_ context.Context, _ string, _ types.DocumentSettings) (string, error) {
	f.calls++
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return "", f.err
	}
	return f.out, nil
}

// memRecorder collects records in memory.
type memRecorder struct {
	mu   sync.Mutex
	recs []types.ConversionRecord
}

func (m *memRecorder) Record(rec types.ConversionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recs = append(m.recs, rec)
	return nil
}

func selected() *types.SelectedFile {
	return &types.SelectedFile{Name: "report.md", Path: "/docs/report.md", Size: 42}
}

func TestConvert_NoSelectionIsNoOp(t *testing.T) {
	conv := &fakeConverter{out: "/docs/report.docx"}
	o := New(conv)

	state, err := o.Convert(context.Background(), nil, types.DefaultSettings())
	if !errors.Is(err, ErrNoSelection) {
		t.Fatalf("err = %v, want ErrNoSelection", err)
	}
	if state.Phase != types.PhaseIdle {
		t.Errorf("phase = %q, want idle", state.Phase)
	}
	if conv.calls != 0 {
		t.Errorf("bridge called %d times, want 0", conv.calls)
	}
	if o.State().Phase != types.PhaseIdle {
		t.Errorf("stored phase = %q, want idle", o.State().Phase)
	}
}

func TestConvert_Success(t *testing.T) {
	conv := &fakeConverter{out: "/docs/report.docx"}
	o := New(conv)

	state, err := o.Convert(context.Background(), selected(), types.DefaultSettings())
	if err != nil {
		t.Fatal(err)
	}
	if state.Phase != types.PhaseSucceeded {
		t.Fatalf("phase = %q, want succeeded", state.Phase)
	}
	if state.OutputPath != "/docs/report.docx" {
		t.Errorf("output = %q, want /docs/report.docx", state.OutputPath)
	}
	if state.Message != "" {
		t.Errorf("message = %q, want empty", state.Message)
	}
}

func TestConvert_FailureKeepsMessage(t *testing.T) {
	conv := &fakeConverter{err: errors.New("disk full")}
	o := New(conv)

	state, err := o.Convert(context.Background(), selected(), types.DefaultSettings())
	if err != nil {
		t.Fatal(err)
	}
	if state.Phase != types.PhaseFailed {
		t.Fatalf("phase = %q, want failed", state.Phase)
	}
	if state.Message != "disk full" {
		t.Errorf("message = %q, want %q", state.Message, "disk full")
	}
	if state.OutputPath != "" {
		t.Errorf("output = %q, want empty", state.OutputPath)
	}
}

func TestConvert_EmptyErrorFallsBack(t *testing.T) {
	conv := &fakeConverter{err: errors.New("  ")}
	o := New(conv)

	state, err := o.Convert(context.Background(), selected(), types.DefaultSettings())
	if err != nil {
		t.Fatal(err)
	}
	if state.Message != FallbackMessage {
		t.Errorf("message = %q, want the fallback message", state.Message)
	}
}

// A retry after a failure must clear the old error on entering converting,
// before the new attempt resolves.
func TestConvert_RetryClearsPriorError(t *testing.T) {
	conv := &fakeConverter{err: errors.New("disk full")}
	o := New(conv)

	if _, err := o.Convert(context.Background(), selected(), types.DefaultSettings()); err != nil {
		t.Fatal(err)
	}

	conv.err = nil
	conv.out = "/docs/report.docx"
	conv.block = make(chan struct{})

	done := make(chan struct{})
	go func() {
		defer close(done)
		o.Convert(context.Background(), selected(), types.DefaultSettings())
	}()

	// Wait for the machine to enter converting, then inspect it mid-flight.
	deadline := time.After(2 * time.Second)
	for o.State().Phase != types.PhaseConverting {
		select {
		case <-deadline:
			t.Fatal("never entered converting")
		case <-time.After(time.Millisecond):
		}
	}

	mid := o.State()
	if mid.Message != "" {
		t.Errorf("mid-flight message = %q, want cleared", mid.Message)
	}
	if mid.OutputPath != "" {
		t.Errorf("mid-flight output = %q, want cleared", mid.OutputPath)
	}

	close(conv.block)
	<-done

	if got := o.State(); got.Phase != types.PhaseSucceeded {
		t.Errorf("final phase = %q, want succeeded", got.Phase)
	}
}

func TestConvert_RejectsOverlap(t *testing.T) {
	conv := &fakeConverter{out: "/docs/report.docx", block: make(chan struct{})}
	o := New(conv)

	done := make(chan struct{})
	go func() {
		defer close(done)
		o.Convert(context.Background(), selected(), types.DefaultSettings())
	}()

	deadline := time.After(2 * time.Second)
	for o.State().Phase != types.PhaseConverting {
		select {
		case <-deadline:
			t.Fatal("never entered converting")
		case <-time.After(time.Millisecond):
		}
	}

	_, err := o.Convert(context.Background(), selected(), types.DefaultSettings())
	if !errors.Is(err, ErrConversionInFlight) {
		t.Fatalf("err = %v, want ErrConversionInFlight", err)
	}

	close(conv.block)
	<-done

	if conv.calls != 1 {
		t.Errorf("bridge called %d times, want 1", conv.calls)
	}
}

func TestConvert_RecordsHistory(t *testing.T) {
	conv := &fakeConverter{err: errors.New("disk full")}
	rec := &memRecorder{}
	o := New(conv).WithRecorder(rec)

	if _, err := o.Convert(context.Background(), selected(), types.DefaultSettings()); err != nil {
		t.Fatal(err)
	}

	conv.err = nil
	conv.out = "/docs/report.docx"
	if _, err := o.Convert(context.Background(), selected(), types.DefaultSettings()); err != nil {
		t.Fatal(err)
	}

	if len(rec.recs) != 2 {
		t.Fatalf("recorded %d attempts, want 2", len(rec.recs))
	}
	if rec.recs[0].Status != types.PhaseFailed || rec.recs[0].Message != "disk full" {
		t.Errorf("first record = %+v, want failed/disk full", rec.recs[0])
	}
	if rec.recs[1].Status != types.PhaseSucceeded || rec.recs[1].OutputPath != "/docs/report.docx" {
		t.Errorf("second record = %+v, want succeeded with output path", rec.recs[1])
	}
	if rec.recs[0].ID == "" || rec.recs[0].ID == rec.recs[1].ID {
		t.Error("records need distinct non-empty IDs")
	}
}
