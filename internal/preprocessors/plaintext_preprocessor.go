// Copyright Casefile Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"casefile/internal/observability"
)

// PlainTextPreprocessor passes text file content through unchanged so plain
// archive exports take the same pipeline as decoded PDFs and scans.
type PlainTextPreprocessor struct {
	observer *observability.StandardObserver
}

// NewPlainTextPreprocessor creates a new plain text preprocessor
func NewPlainTextPreprocessor() *PlainTextPreprocessor {
	return &PlainTextPreprocessor{}
}

// SetObserver sets the observability component
func (ptp *PlainTextPreprocessor) SetObserver(observer *observability.StandardObserver) {
	ptp.observer = observer
}

// GetName returns the name of this preprocessor
func (ptp *PlainTextPreprocessor) GetName() string {
	return "Plain Text Preprocessor"
}

// GetSupportedExtensions returns the file extensions this preprocessor supports
func (ptp *PlainTextPreprocessor) GetSupportedExtensions() []string {
	return []string{
		".txt", ".text", ".log", ".md", ".markdown",
		".csv", ".tsv",
		// OCR output and raw email exports arrive with these.
		".ocr", ".eml",
	}
}

// CanProcess checks if this preprocessor can handle the given file
func (ptp *PlainTextPreprocessor) CanProcess(filePath string) bool {
	ext := strings.ToLower(filepath.Ext(filePath))
	for _, supported := range ptp.GetSupportedExtensions() {
		if ext == supported {
			return true
		}
	}
	if ext == "" {
		return ptp.isTextFile(filePath)
	}
	return false
}

// Process extracts text content from the file
func (ptp *PlainTextPreprocessor) Process(filePath string) (*ProcessedContent, error) {
	var finishTiming func(bool, map[string]interface{})
	if ptp.observer != nil {
		finishTiming = ptp.observer.StartTiming("plaintext_preprocessor", "process_file", filePath)
	}

	content, err := ptp.readTextFile(filePath)
	if err != nil {
		if finishTiming != nil {
			finishTiming(false, map[string]interface{}{"error": err.Error()})
		}
		return &ProcessedContent{
			OriginalPath:  filePath,
			Filename:      filepath.Base(filePath),
			ProcessorType: "plaintext",
			Success:       false,
			Error:         err,
		}, err
	}

	result := &ProcessedContent{
		OriginalPath:  filePath,
		Filename:      filepath.Base(filePath),
		Text:          content,
		Format:        strings.TrimPrefix(strings.ToLower(filepath.Ext(filePath)), "."),
		WordCount:     len(strings.Fields(content)),
		CharCount:     len(content),
		LineCount:     strings.Count(content, "\n") + 1,
		Paragraphs:    countParagraphs(content),
		ProcessorType: "plaintext",
		Success:       true,
	}

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{
			"chars": result.CharCount,
			"words": result.WordCount,
		})
	}
	return result, nil
}

// readTextFile reads a file and verifies it decodes as UTF-8 text.
func (ptp *PlainTextPreprocessor) readTextFile(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("file is not valid UTF-8 text: %s", filePath)
	}
	return string(data), nil
}

// isTextFile sniffs the first bytes of an extensionless file.
func (ptp *PlainTextPreprocessor) isTextFile(filePath string) bool {
	f, err := os.Open(filePath)
	if err != nil {
		return false
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil || n == 0 {
		return false
	}
	buf = buf[:n]

	// Binary files almost always carry NUL bytes in the first block.
	for _, b := range buf {
		if b == 0 {
			return false
		}
	}
	return utf8.Valid(buf)
}

func countParagraphs(content string) int {
	count := 0
	for _, block := range strings.Split(content, "\n\n") {
		if strings.TrimSpace(block) != "" {
			count++
		}
	}
	return count
}
