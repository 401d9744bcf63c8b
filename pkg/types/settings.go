// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the records shared between the selector, the
// conversion orchestrator, the converter bridge, and the CLI/server surfaces.
package types

import (
	"fmt"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Font family names the external converter understands.
const (
	FontTimesNewRoman = "Times New Roman"
	FontArial         = "Arial"
	FontCalibri       = "Calibri"
)

// Line spacing values the external converter understands.
const (
	SpacingSingle     = 1.0
	SpacingOneAndHalf = 1.5
	SpacingDouble     = 2.0
)

// DocumentSettings holds the formatting parameters passed opaquely to the
// external converter. The JSON tags are the converter's settings keys; the
// YAML tags match so presets round-trip with the same names.
type DocumentSettings struct {
	// FontSize is the body font size in points.
	FontSize float64 `json:"fontSize" yaml:"fontSize"`

	// FontFamily is the body font name (Times New Roman, Arial, or Calibri).
	FontFamily string `json:"fontFamily" yaml:"fontFamily"`

	// LineSpacing is the line spacing multiplier (1.0, 1.5, or 2.0).
	LineSpacing float64 `json:"lineSpacing" yaml:"lineSpacing"`

	// FirstLineIndent is the paragraph first-line indent in centimeters.
	FirstLineIndent float64 `json:"firstLineIndent" yaml:"firstLineIndent"`

	// Page margins in centimeters.
	MarginTop    float64 `json:"marginTop" yaml:"marginTop"`
	MarginBottom float64 `json:"marginBottom" yaml:"marginBottom"`
	MarginLeft   float64 `json:"marginLeft" yaml:"marginLeft"`
	MarginRight  float64 `json:"marginRight" yaml:"marginRight"`
}

// DefaultSettings returns the converter's built-in defaults.
func DefaultSettings() DocumentSettings {
	return DocumentSettings{
		FontSize:        14,
		FontFamily:      FontTimesNewRoman,
		LineSpacing:     SpacingOneAndHalf,
		FirstLineIndent: 1.27,
		MarginTop:       2,
		MarginBottom:    2,
		MarginLeft:      3,
		MarginRight:     1.5,
	}
}

// With returns a copy of s with exactly one field replaced. The field is
// named by its settings key (the JSON tag). fontFamily takes the value
// verbatim; every other field parses as a floating-point number. Values are
// not range-checked here; use Validate at the edge that needs it.
func (s DocumentSettings) With(field, value string) (DocumentSettings, error) {
	if field == "fontFamily" {
		s.FontFamily = value
		return s, nil
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return s, fmt.Errorf("parsing %s value %q: %w", field, value, err)
	}

	switch field {
	case "fontSize":
		s.FontSize = f
	case "lineSpacing":
		s.LineSpacing = f
	case "firstLineIndent":
		s.FirstLineIndent = f
	case "marginTop":
		s.MarginTop = f
	case "marginBottom":
		s.MarginBottom = f
	case "marginLeft":
		s.MarginLeft = f
	case "marginRight":
		s.MarginRight = f
	default:
		return s, fmt.Errorf("unknown settings field %q", field)
	}
	return s, nil
}

// Validate checks enum membership and non-negative dimensions. The settings
// layer itself accepts anything; callers that want human-readable rejection
// (CLI flags, the API edge) run this before handing settings out.
func (s DocumentSettings) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.FontSize, validation.Required, validation.Min(1.0)),
		validation.Field(&s.FontFamily,
			validation.Required,
			validation.In(FontTimesNewRoman, FontArial, FontCalibri),
		),
		validation.Field(&s.LineSpacing,
			validation.Required,
			validation.In(SpacingSingle, SpacingOneAndHalf, SpacingDouble),
		),
		validation.Field(&s.FirstLineIndent, validation.Min(0.0)),
		validation.Field(&s.MarginTop, validation.Min(0.0)),
		validation.Field(&s.MarginBottom, validation.Min(0.0)),
		validation.Field(&s.MarginLeft, validation.Min(0.0)),
		validation.Field(&s.MarginRight, validation.Min(0.0)),
	)
}
