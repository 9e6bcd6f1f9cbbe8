// Copyright Casefile Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package metaextractpdflib

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Metadata represents PDF document metadata
type Metadata struct {
	Filename  string
	FileSize  int64
	ModTime   time.Time
	Title     string
	Author    string
	Producer  string
	PageCount int
	Version   string
	Encrypted bool
	// Valid reports whether the file passed structural validation.
	Valid bool
}

var (
	versionPattern = regexp.MustCompile(`%PDF-(\d+\.\d+)`)
	encryptPattern = regexp.MustCompile(`/Encrypt\s+\d+\s+\d+\s+R`)
)

// ExtractMetadata reads structural facts through pdfcpu and the info
// dictionary fields from the raw bytes. Scanned DOJ releases are frequently
// malformed, so the raw scan is the fallback when pdfcpu refuses the file.
func ExtractMetadata(filePath string) (*Metadata, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("file error: %w", err)
	}

	metadata := &Metadata{
		Filename: filepath.Base(filePath),
		FileSize: fileInfo.Size(),
		ModTime:  fileInfo.ModTime(),
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return metadata, fmt.Errorf("error reading file: %w", err)
	}

	metadata.Version = extractVersion(data)
	metadata.Encrypted = encryptPattern.Match(data)
	metadata.Title = extractField(data, "Title")
	metadata.Author = extractField(data, "Author")
	metadata.Producer = extractField(data, "Producer")

	conf := model.NewDefaultConfiguration()
	metadata.Valid = api.ValidateFile(filePath, conf) == nil
	if ctx, err := api.ReadContextFile(filePath); err == nil {
		metadata.PageCount = ctx.PageCount
	} else {
		// pdfcpu could not parse the file; count page objects directly.
		metadata.PageCount = countPages(data)
	}

	return metadata, nil
}

// extractVersion reads the %PDF-1.x header from the first kilobyte.
func extractVersion(data []byte) string {
	size := len(data)
	if size > 1024 {
		size = 1024
	}
	if m := versionPattern.FindSubmatch(data[:size]); len(m) >= 2 {
		return string(m[1])
	}
	return "Unknown"
}

// extractField pulls a string field out of the info dictionary without
// parsing the full object graph.
func extractField(data []byte, fieldName string) string {
	patterns := []string{
		`/` + fieldName + `\s*\(([^)]+)\)`,
		`/` + fieldName + `\s*<([0-9A-Fa-f]+)>`,
		`/` + fieldName + `\s*/([^/\s<>()\[\]]+)`,
	}
	for _, p := range patterns {
		re := regexp.MustCompile(p)
		if m := re.FindSubmatch(data); len(m) >= 2 {
			value := string(m[1])
			if printable(value) {
				return value
			}
		}
	}
	return ""
}

func countPages(data []byte) int {
	pagePattern := regexp.MustCompile(`/Type\s*/Page[^s]`)
	if n := len(pagePattern.FindAll(data, -1)); n > 0 {
		return n
	}
	countPattern := regexp.MustCompile(`/Count\s+(\d+)`)
	if m := countPattern.FindSubmatch(data); len(m) >= 2 {
		n := 0
		fmt.Sscanf(string(m[1]), "%d", &n)
		return n
	}
	return 0
}

func printable(s string) bool {
	for _, r := range s {
		if r < 32 && r != '\t' {
			return false
		}
	}
	return true
}
