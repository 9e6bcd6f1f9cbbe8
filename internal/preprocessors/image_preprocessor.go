// Copyright Casefile Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"casefile/internal/observability"
	metaextractexiflib "casefile/internal/preprocessors/meta-extractors/meta-extract-exiflib"
)

// ImagePreprocessor handles scanned evidence photos. There is no page text
// to decode, so the EXIF tags are rendered as key/value lines and become the
// document's content.
type ImagePreprocessor struct {
	observer *observability.StandardObserver
}

// NewImagePreprocessor creates a new image preprocessor
func NewImagePreprocessor() *ImagePreprocessor {
	return &ImagePreprocessor{}
}

// SetObserver sets the observability component
func (ip *ImagePreprocessor) SetObserver(observer *observability.StandardObserver) {
	ip.observer = observer
}

// GetName returns the name of this preprocessor
func (ip *ImagePreprocessor) GetName() string {
	return "Image Preprocessor"
}

// GetSupportedExtensions returns the file extensions this preprocessor supports
func (ip *ImagePreprocessor) GetSupportedExtensions() []string {
	return []string{".jpg", ".jpeg", ".tif", ".tiff", ".png"}
}

// CanProcess checks if this preprocessor can handle the given file
func (ip *ImagePreprocessor) CanProcess(filePath string) bool {
	ext := strings.ToLower(filepath.Ext(filePath))
	for _, supported := range ip.GetSupportedExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// Process extracts EXIF metadata from an image file
func (ip *ImagePreprocessor) Process(filePath string) (*ProcessedContent, error) {
	var finishTiming func(bool, map[string]interface{})
	if ip.observer != nil {
		finishTiming = ip.observer.StartTiming("image_preprocessor", "process_file", filePath)
	}

	exifData, err := metaextractexiflib.ExtractExif(filePath)
	if err != nil {
		if finishTiming != nil {
			finishTiming(false, map[string]interface{}{"error": err.Error()})
		}
		return &ProcessedContent{
			OriginalPath:  filePath,
			Filename:      filepath.Base(filePath),
			ProcessorType: "image",
			Success:       false,
			Error:         err,
		}, err
	}

	text := renderTags(exifData.Tags)
	result := &ProcessedContent{
		OriginalPath:  filePath,
		Filename:      filepath.Base(filePath),
		Text:          text,
		Format:        strings.TrimPrefix(strings.ToLower(filepath.Ext(filePath)), "."),
		CharCount:     len(text),
		LineCount:     strings.Count(text, "\n") + 1,
		ExifTags:      exifData.Tags,
		ProcessorType: "image",
		Success:       true,
	}

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{"tags": len(exifData.Tags)})
	}
	return result, nil
}

// renderTags flattens EXIF tags into stable key/value lines.
func renderTags(tags map[string]string) string {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %s\n", k, tags[k])
	}
	return b.String()
}
