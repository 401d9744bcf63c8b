// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pdiddy/mdesk/pkg/types"
)

const (
	binMd2docx    = "md2docx"
	moduleMd2docx = "md2docx"
	defaultPython = "python3"

	// docxExt is the target document extension.
	docxExt = ".docx"
)

// Md2docxConverter runs the external md2docx process. The command prefix is
// either the standalone binary or a python interpreter running the module.
type Md2docxConverter struct {
	argv []string
	exec executor
}

// DetectConverter locates the converter command. An explicit command from the
// configuration wins; otherwise an md2docx binary on PATH is preferred, with
// `python -m md2docx` as the fallback.
func DetectConverter(cfg types.ConverterConfig) (*Md2docxConverter, error) {
	return detectConverter(cfg, defaultExec)
}

func detectConverter(cfg types.ConverterConfig, ex executor) (*Md2docxConverter, error) {
	if cfg.Command != "" {
		if _, err := ex.LookPath(cfg.Command); err != nil {
			return nil, fmt.Errorf("configured converter %s not found: %w", cfg.Command, err)
		}
		return &Md2docxConverter{argv: []string{cfg.Command}, exec: ex}, nil
	}

	if _, err := ex.LookPath(binMd2docx); err == nil {
		return &Md2docxConverter{argv: []string{binMd2docx}, exec: ex}, nil
	}

	python := cfg.Python
	if python == "" {
		python = defaultPython
	}
	if _, err := ex.LookPath(python); err == nil {
		return &Md2docxConverter{argv: []string{python, "-m", moduleMd2docx}, exec: ex}, nil
	}

	return nil, fmt.Errorf(
		"no converter available: neither %s nor %s found on PATH",
		binMd2docx, python,
	)
}

// OutputPath derives the document path for a source file: the input's base
// name with the docx extension, in the same directory as the input.
func OutputPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + docxExt
}

// Convert invokes the md2docx process with the input path, the derived
// output path, and the settings encoded as JSON. Stderr is captured; on
// process failure its trimmed content becomes the error text so the user
// sees the converter's own diagnostics.
func (c *Md2docxConverter) Convert(ctx context.Context, inputPath string, settings types.DocumentSettings) (string, error) {
	payload, err := json.Marshal(settings)
	if err != nil {
		return "", fmt.Errorf("encoding settings: %w", err)
	}

	outPath := OutputPath(inputPath)

	args := make([]string, 0, len(c.argv)+3)
	args = append(args, c.argv[1:]...)
	args = append(args, inputPath, outPath, "--settings", string(payload))

	var stderr bytes.Buffer
	if err := c.exec.Run(ctx, &stderr, c.argv[0], args...); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", errors.New(msg)
		}
		return "", fmt.Errorf("converting %s: %w", filepath.Base(inputPath), err)
	}

	return outPath, nil
}
