// Copyright Casefile Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"fmt"

	"casefile/internal/document"
	"casefile/internal/formatters"
)

// Formatter implements JSON output formatting
type Formatter struct{}

// NewFormatter creates a new JSON formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Structured JSON output for programmatic consumption"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

// response is the top-level JSON document.
type response struct {
	DocumentCount int                  `json:"document_count"`
	Documents     []*document.Document `json:"documents"`
}

func (f *Formatter) Format(docs []*document.Document, options formatters.FormatterOptions) (string, error) {
	filtered := formatters.FilterByBand(docs, options)
	if filtered == nil {
		filtered = []*document.Document{}
	}

	out := response{
		DocumentCount: len(filtered),
		Documents:     filtered,
	}
	if !options.Verbose {
		// Trim passages from the export; they dominate the payload.
		slim := make([]*document.Document, len(filtered))
		for i, doc := range filtered {
			cp := *doc
			cp.Passages = nil
			slim[i] = &cp
		}
		out.Documents = slim
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error formatting JSON: %w", err)
	}
	return string(data), nil
}

func init() {
	formatters.Register(NewFormatter())
}
