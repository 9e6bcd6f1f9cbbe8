// Copyright Casefile Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"casefile/internal/document"
	"casefile/internal/formatters"
)

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":  color.New(color.FgGreen),
			"yellow": color.New(color.FgYellow),
			"red":    color.New(color.FgRed),
			"cyan":   color.New(color.FgCyan),
			"white":  color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(docs []*document.Document, options formatters.FormatterOptions) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}

	filtered := formatters.FilterByBand(docs, options)
	if len(filtered) == 0 {
		return "No documents found.", nil
	}

	var b strings.Builder
	header := f.colors["white"].SprintFunc()
	fmt.Fprintf(&b, "%s\n\n", header(fmt.Sprintf("%d document(s)", len(filtered))))

	for _, doc := range filtered {
		fmt.Fprintf(&b, "%s  %s\n", header(doc.Title), f.bandColor(doc.Rating.Band)(doc.Rating.Label))
		fmt.Fprintf(&b, "  id: %s  type: %s  risk: %d  size: %d\n",
			doc.ID, doc.FileType, doc.RiskScore, doc.Size)
		if doc.Metadata.Confidentiality != "" {
			fmt.Fprintf(&b, "  confidentiality: %s\n", f.colors["red"].Sprint(doc.Metadata.Confidentiality))
		}
		if len(doc.Metadata.Categories) > 0 {
			fmt.Fprintf(&b, "  categories: %s\n", strings.Join(doc.Metadata.Categories, ", "))
		}

		if options.ShowEntities && len(doc.Entities) > 0 {
			fmt.Fprintf(&b, "  entities:\n")
			for _, ent := range doc.Entities {
				line := fmt.Sprintf("    - %s (%s, %d mention(s), %s)",
					ent.Name, ent.Type, ent.Mentions, ent.Significance)
				if ent.Significance == document.SignificanceHigh {
					line = f.colors["red"].Sprint(line)
				}
				fmt.Fprintln(&b, line)
			}
		}

		if options.Verbose {
			for _, p := range doc.Passages {
				if p.Significance == document.SignificanceLow {
					continue
				}
				fmt.Fprintf(&b, "  passage [%s]: %s\n",
					f.significanceColor(p.Significance)(string(p.Significance)), p.Content)
			}
		}
		fmt.Fprintln(&b)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func (f *Formatter) bandColor(band int) func(a ...interface{}) string {
	switch {
	case band >= 4:
		return f.colors["red"].SprintFunc()
	case band >= 2:
		return f.colors["yellow"].SprintFunc()
	default:
		return f.colors["green"].SprintFunc()
	}
}

func (f *Formatter) significanceColor(s document.Significance) func(a ...interface{}) string {
	switch s {
	case document.SignificanceHigh:
		return f.colors["red"].SprintFunc()
	case document.SignificanceMedium:
		return f.colors["yellow"].SprintFunc()
	default:
		return f.colors["cyan"].SprintFunc()
	}
}

func init() {
	formatters.Register(NewFormatter())
}
