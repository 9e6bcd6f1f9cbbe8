// Copyright Casefile Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"fmt"
	"path/filepath"
	"strings"

	"casefile/internal/observability"
	metaextractpdflib "casefile/internal/preprocessors/meta-extractors/meta-extract-pdflib"
	textextractpdftextlib "casefile/internal/preprocessors/text-extractors/text-extract-pdftextlib"
)

// PDFPreprocessor decodes PDF releases: page text through the text
// extractor, document attributes through the metadata extractor.
type PDFPreprocessor struct {
	observer *observability.StandardObserver
}

// NewPDFPreprocessor creates a new PDF preprocessor
func NewPDFPreprocessor() *PDFPreprocessor {
	return &PDFPreprocessor{}
}

// SetObserver sets the observability component
func (pp *PDFPreprocessor) SetObserver(observer *observability.StandardObserver) {
	pp.observer = observer
}

// GetName returns the name of this preprocessor
func (pp *PDFPreprocessor) GetName() string {
	return "PDF Preprocessor"
}

// GetSupportedExtensions returns the file extensions this preprocessor supports
func (pp *PDFPreprocessor) GetSupportedExtensions() []string {
	return []string{".pdf"}
}

// CanProcess checks if this preprocessor can handle the given file
func (pp *PDFPreprocessor) CanProcess(filePath string) bool {
	return strings.ToLower(filepath.Ext(filePath)) == ".pdf"
}

// Process extracts text and metadata from a PDF file
func (pp *PDFPreprocessor) Process(filePath string) (*ProcessedContent, error) {
	var finishTiming func(bool, map[string]interface{})
	if pp.observer != nil {
		finishTiming = pp.observer.StartTiming("pdf_preprocessor", "process_file", filePath)
	}

	text, err := textextractpdftextlib.ExtractText(filePath)
	if err != nil {
		if finishTiming != nil {
			finishTiming(false, map[string]interface{}{"error": err.Error()})
		}
		return &ProcessedContent{
			OriginalPath:  filePath,
			Filename:      filepath.Base(filePath),
			ProcessorType: "pdf",
			Success:       false,
			Error:         err,
		}, fmt.Errorf("pdf text extraction failed: %w", err)
	}

	result := &ProcessedContent{
		OriginalPath:  filePath,
		Filename:      filepath.Base(filePath),
		Text:          text.Text,
		Format:        "pdf",
		PageCount:     text.PageCount,
		WordCount:     text.WordCount,
		CharCount:     text.CharCount,
		LineCount:     text.LineCount,
		Paragraphs:    countParagraphs(text.Text),
		ProcessorType: "pdf",
		Success:       true,
	}

	// Metadata failures do not fail the document; the text already came out.
	if meta, err := metaextractpdflib.ExtractMetadata(filePath); err == nil {
		result.Producer = meta.Producer
		result.Encrypted = meta.Encrypted
		if meta.PageCount > 0 {
			result.PageCount = meta.PageCount
		}
	}

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{
			"pages": result.PageCount,
			"chars": result.CharCount,
		})
	}
	return result, nil
}
