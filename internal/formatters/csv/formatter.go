// Copyright Casefile Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"fmt"
	"strings"

	"casefile/internal/document"
	"casefile/internal/formatters"
)

// Formatter implements CSV output formatting
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "Comma-separated values for spreadsheet import"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

func (f *Formatter) Format(docs []*document.Document, options formatters.FormatterOptions) (string, error) {
	filtered := formatters.FilterByBand(docs, options)

	headers := []string{"ID", "Title", "Type", "Risk Score", "Band", "Entities", "Confidentiality", "Source", "Path"}
	rows := []string{strings.Join(headers, ",")}

	for _, doc := range filtered {
		row := []string{
			doc.ID,
			f.escapeCSVField(doc.Title),
			doc.FileType,
			fmt.Sprintf("%d", doc.RiskScore),
			fmt.Sprintf("%d", doc.Rating.Band),
			fmt.Sprintf("%d", len(doc.Entities)),
			f.escapeCSVField(doc.Metadata.Confidentiality),
			f.escapeCSVField(doc.Metadata.Source),
			f.escapeCSVField(doc.Path),
		}
		rows = append(rows, strings.Join(row, ","))
	}

	return strings.Join(rows, "\n"), nil
}

// escapeCSVField quotes a field containing commas, quotes, or newlines.
func (f *Formatter) escapeCSVField(field string) string {
	if strings.ContainsAny(field, ",\"\n") {
		return "\"" + strings.ReplaceAll(field, "\"", "\"\"") + "\""
	}
	return field
}

func init() {
	formatters.Register(NewFormatter())
}
