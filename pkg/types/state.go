// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// SelectedFile references the single Markdown source file picked by the user.
type SelectedFile struct {
	// Name is the base file name shown in the UI.
	Name string `json:"name"`

	// Path is the absolute path handed to the converter.
	Path string `json:"path"`

	// Size is the file size in bytes at selection time.
	Size int64 `json:"size"`
}

// ConversionPhase identifies where the conversion lifecycle currently is.
type ConversionPhase string

const (
	PhaseIdle       ConversionPhase = "idle"
	PhaseConverting ConversionPhase = "converting"
	PhaseSucceeded  ConversionPhase = "succeeded"
	PhaseFailed     ConversionPhase = "failed"
)

// ConversionState is the orchestrator's lifecycle snapshot. OutputPath is
// set only when Phase is PhaseSucceeded; Message only when PhaseFailed.
// The orchestrator replaces the whole record on every transition.
type ConversionState struct {
	Phase      ConversionPhase `json:"phase"`
	OutputPath string          `json:"output_path,omitempty"`
	Message    string          `json:"message,omitempty"`
}

// ConversionRecord is one finished conversion attempt as persisted in the
// history store.
type ConversionRecord struct {
	ID         string           `json:"id"`
	InputPath  string           `json:"input_path"`
	OutputPath string           `json:"output_path,omitempty"`
	Status     ConversionPhase  `json:"status"`
	Message    string           `json:"message,omitempty"`
	Settings   DocumentSettings `json:"settings"`
	StartedAt  time.Time        `json:"started_at"`
	Duration   time.Duration    `json:"duration"`
}
