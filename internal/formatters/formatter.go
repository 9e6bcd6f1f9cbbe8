// Copyright Casefile Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package formatters renders engine output for the terminal and for export.
// Concrete formatters live in subpackages and register themselves through
// init, so importing a formatter package is what makes it available.
package formatters

import (
	"fmt"
	"sort"
	"strings"

	"casefile/internal/document"
)

// FormatterOptions defines configuration options for formatters
type FormatterOptions struct {
	RiskBands    map[int]bool // Which rating bands to display; empty means all
	Verbose      bool         // Whether to display passages and contexts
	NoColor      bool         // Whether to disable colored output
	ShowEntities bool         // Whether to display per-document entities
}

// Formatter interface defines methods that all output formatters must implement
type Formatter interface {
	// Format renders the documents according to the formatter's output format
	Format(docs []*document.Document, options FormatterOptions) (string, error)

	// Name returns the name of the formatter (e.g., "json", "text", "csv")
	Name() string

	// Description returns a brief description of what this formatter outputs
	Description() string

	// FileExtension returns the recommended file extension for this format
	FileExtension() string
}

// FilterByBand keeps only documents whose rating band is enabled in options.
func FilterByBand(docs []*document.Document, options FormatterOptions) []*document.Document {
	if len(options.RiskBands) == 0 {
		return docs
	}
	var filtered []*document.Document
	for _, doc := range docs {
		if options.RiskBands[doc.Rating.Band] {
			filtered = append(filtered, doc)
		}
	}
	return filtered
}

// Registry holds all registered formatters
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry creates a new formatter registry
func NewRegistry() *Registry {
	return &Registry{
		formatters: make(map[string]Formatter),
	}
}

// Register adds a formatter to the registry
func (r *Registry) Register(formatter Formatter) {
	r.formatters[formatter.Name()] = formatter
}

// Get retrieves a formatter by name
func (r *Registry) Get(name string) (Formatter, bool) {
	formatter, exists := r.formatters[name]
	return formatter, exists
}

// List returns all registered formatter names, sorted
func (r *Registry) List() []string {
	var names []string
	for name := range r.formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global formatter registry
var DefaultRegistry = NewRegistry()

// Register is a convenience function to register a formatter with the default registry
func Register(formatter Formatter) {
	DefaultRegistry.Register(formatter)
}

// Get is a convenience function to get a formatter from the default registry
func Get(name string) (Formatter, bool) {
	return DefaultRegistry.Get(name)
}

// List is a convenience function to list all formatters in the default registry
func List() []string {
	return DefaultRegistry.List()
}

// Export renders documents in the named format through the default registry.
func Export(format string, docs []*document.Document, options FormatterOptions) (string, error) {
	formatter, exists := Get(format)
	if !exists {
		return "", fmt.Errorf("unsupported format '%s'. Available formats: %s",
			format, strings.Join(List(), ", "))
	}
	return formatter.Format(docs, options)
}
