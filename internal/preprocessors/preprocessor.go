// Copyright Casefile Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package preprocessors turns archive source files into decoded text the
// engine can ingest. Each preprocessor handles one family of file formats;
// the manager picks the first one that claims a path.
package preprocessors

import (
	"path/filepath"

	"casefile/internal/observability"
)

// ProcessedContent is a decoded source file ready for ingestion.
type ProcessedContent struct {
	// Original file information
	OriginalPath string
	Filename     string

	// Extracted content
	Text string

	// Content metadata
	Format     string
	PageCount  int
	WordCount  int
	CharCount  int
	LineCount  int
	Paragraphs int

	// PDF document attributes when the source was a PDF.
	Producer  string
	Encrypted bool

	// EXIF tags when the source was a scanned image.
	ExifTags map[string]string

	// Processing information
	ProcessorType string
	Success       bool
	Error         error
}

// Preprocessor interface defines methods for preprocessing files
type Preprocessor interface {
	// CanProcess checks if this preprocessor can handle the given file
	CanProcess(filePath string) bool

	// Process extracts content from the file
	Process(filePath string) (*ProcessedContent, error)

	// GetName returns the name of this preprocessor
	GetName() string

	// GetSupportedExtensions returns the file extensions this preprocessor supports
	GetSupportedExtensions() []string

	// SetObserver sets the observability component
	SetObserver(observer *observability.StandardObserver)
}

// PreprocessorManager manages all available preprocessors
type PreprocessorManager struct {
	preprocessors []Preprocessor
}

// NewPreprocessorManager creates a new preprocessor manager
func NewPreprocessorManager() *PreprocessorManager {
	return &PreprocessorManager{
		preprocessors: make([]Preprocessor, 0),
	}
}

// RegisterPreprocessor adds a preprocessor to the manager
func (pm *PreprocessorManager) RegisterPreprocessor(p Preprocessor) {
	pm.preprocessors = append(pm.preprocessors, p)
}

// GetPreprocessor returns the appropriate preprocessor for a file, or nil if none found
func (pm *PreprocessorManager) GetPreprocessor(filePath string) Preprocessor {
	for _, p := range pm.preprocessors {
		if p.CanProcess(filePath) {
			return p
		}
	}
	return nil
}

// ProcessFile decodes a file with the first preprocessor that both claims
// and successfully processes it.
func (pm *PreprocessorManager) ProcessFile(filePath string) (*ProcessedContent, error) {
	var candidates []Preprocessor
	for _, p := range pm.preprocessors {
		if p.CanProcess(filePath) {
			candidates = append(candidates, p)
		}
	}

	if len(candidates) == 0 {
		return &ProcessedContent{
			OriginalPath:  filePath,
			Filename:      filepath.Base(filePath),
			ProcessorType: "none",
			Success:       true,
		}, nil
	}

	var lastError error
	for _, p := range candidates {
		result, err := p.Process(filePath)
		if err == nil && result != nil && result.Success {
			return result, nil
		}
		lastError = err
	}

	return &ProcessedContent{
		OriginalPath:  filePath,
		Filename:      filepath.Base(filePath),
		ProcessorType: "failed",
		Success:       false,
		Error:         lastError,
	}, lastError
}

// GetAvailablePreprocessors returns all registered preprocessors
func (pm *PreprocessorManager) GetAvailablePreprocessors() []Preprocessor {
	return pm.preprocessors
}

// NewDefaultManager returns a manager with every built-in preprocessor
// registered, sharing one observer.
func NewDefaultManager(observer *observability.StandardObserver) *PreprocessorManager {
	pm := NewPreprocessorManager()
	for _, p := range []Preprocessor{
		NewPDFPreprocessor(),
		NewImagePreprocessor(),
		NewPlainTextPreprocessor(),
	} {
		p.SetObserver(observer)
		pm.RegisterPreprocessor(p)
	}
	return pm
}
