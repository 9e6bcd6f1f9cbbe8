// Copyright Casefile Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"casefile/internal/document"
	"casefile/internal/formatters"
)

// Formatter implements YAML output formatting
type Formatter struct{}

// NewFormatter creates a new YAML formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "yaml"
}

func (f *Formatter) Description() string {
	return "YAML format output, structurally identical to the JSON export"
}

func (f *Formatter) FileExtension() string {
	return ".yaml"
}

type response struct {
	DocumentCount int                  `yaml:"document_count"`
	Documents     []*document.Document `yaml:"documents"`
}

func (f *Formatter) Format(docs []*document.Document, options formatters.FormatterOptions) (string, error) {
	filtered := formatters.FilterByBand(docs, options)
	if len(filtered) == 0 {
		return "documents: []\n", nil
	}

	out := response{
		DocumentCount: len(filtered),
		Documents:     filtered,
	}
	data, err := yaml.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("error formatting YAML: %w", err)
	}
	return string(data), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
