// Copyright Casefile Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"regexp"
	"strings"

	"casefile/internal/document"
)

// Recognized document file types.
const (
	FileTypeEmail       = "email"
	FileTypeFlightLog   = "flight-log"
	FileTypeCourtFiling = "court-filing"
	FileTypePDF         = "pdf"
	FileTypeImage       = "image"
	FileTypeText        = "text"
)

var (
	tailNumberPattern = regexp.MustCompile(`\bN\d{1,5}[A-Z]{0,2}\b`)
	caseNumberPattern = regexp.MustCompile(`(?i)Case\s+No\.?\s*:?\s*([0-9]{1,2}:[0-9]{2}-[a-z]{2}-[0-9]{3,6}|[A-Za-z0-9:\-]{4,20})`)
	courtPattern      = regexp.MustCompile(`(?im)^.*(DISTRICT COURT|SUPERIOR COURT|CIRCUIT COURT|COURT OF APPEALS).*$`)
	airportPattern    = regexp.MustCompile(`\b(TEB|PBI|JFK|LGA|CMH|SAF|TIST|MIA|VNY|LBG)\b`)
)

// confidentialityMarkers are checked in order; the first match wins.
var confidentialityMarkers = []struct {
	marker string
	level  string
}{
	{"FILED UNDER SEAL", "sealed"},
	{"UNDER SEAL", "sealed"},
	{"SEALED", "sealed"},
	{"CONFIDENTIAL", "confidential"},
	{"PRIVILEGED", "confidential"},
}

// detectMetadata classifies a document's file type from its path and content
// and assembles the metadata envelope with the matching variant record.
func detectMetadata(path, content string) (string, document.Metadata) {
	meta := document.Metadata{
		Source: sourceFromPath(path),
	}

	upper := strings.ToUpper(content)
	for _, m := range confidentialityMarkers {
		if strings.Contains(upper, m.marker) {
			meta.Confidentiality = m.level
			break
		}
	}

	fileType := classify(path, content)
	switch fileType {
	case FileTypeEmail:
		meta.Email = &document.EmailMeta{
			From:    headerValue(content, "From"),
			To:      headerValue(content, "To"),
			Subject: headerValue(content, "Subject"),
			Date:    headerValue(content, "Date"),
		}
		meta.Categories = append(meta.Categories, "correspondence")
	case FileTypeFlightLog:
		meta.Flight = flightMeta(content)
		meta.Categories = append(meta.Categories, "flight-log")
	case FileTypeCourtFiling:
		meta.Filing = filingMeta(content)
		meta.Categories = append(meta.Categories, "court-filing")
	default:
		meta.Categories = append(meta.Categories, "document")
	}
	if meta.Confidentiality != "" {
		meta.Categories = append(meta.Categories, "restricted")
	}
	return fileType, meta
}

// classify decides the file type. Content markers outrank the extension
// because most of the corpus arrives as OCR text regardless of origin.
func classify(path, content string) string {
	if headerValue(content, "From") != "" && headerValue(content, "Subject") != "" {
		return FileTypeEmail
	}

	lower := strings.ToLower(content)
	if strings.Contains(lower, "flight log") || strings.Contains(lower, "manifest") ||
		(tailNumberPattern.MatchString(content) && strings.Contains(lower, "flight")) {
		return FileTypeFlightLog
	}
	if courtPattern.MatchString(content) ||
		(caseNumberPattern.MatchString(content) && strings.Contains(content, " v. ")) {
		return FileTypeCourtFiling
	}

	switch strings.ToLower(extension(path)) {
	case "pdf":
		return FileTypePDF
	case "jpg", "jpeg", "png", "tif", "tiff":
		return FileTypeImage
	default:
		return FileTypeText
	}
}

func flightMeta(content string) *document.FlightMeta {
	fm := &document.FlightMeta{}
	if m := tailNumberPattern.FindString(content); m != "" {
		fm.TailNumber = m
	}
	seen := make(map[string]bool)
	for _, code := range airportPattern.FindAllString(content, -1) {
		if !seen[code] {
			seen[code] = true
			fm.Airports = append(fm.Airports, code)
		}
	}
	// Each "X -> Y" arrow in a log line is one leg.
	fm.Legs = strings.Count(content, "->")
	return fm
}

func filingMeta(content string) *document.FilingMeta {
	fm := &document.FilingMeta{}
	if m := caseNumberPattern.FindStringSubmatch(content); m != nil {
		fm.CaseNumber = m[1]
	}
	if m := courtPattern.FindString(content); m != "" {
		fm.Court = strings.TrimSpace(m)
	}
	if strings.Contains(strings.ToUpper(content), "UNDER SEAL") {
		fm.FiledUnder = "seal"
	}
	return fm
}

// headerValue returns the value of an RFC-822-style "Key: value" line in the
// first dozen lines of content, or "".
func headerValue(content, key string) string {
	prefix := key + ":"
	lines := strings.Split(content, "\n")
	if len(lines) > 12 {
		lines = lines[:12]
	}
	for _, line := range lines {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(line[len(prefix):])
		}
	}
	return ""
}

func sourceFromPath(path string) string {
	norm := strings.ReplaceAll(path, "\\", "/")
	parts := strings.Split(norm, "/")
	if len(parts) >= 2 {
		return parts[len(parts)-2]
	}
	return ""
}

func extension(path string) string {
	if i := strings.LastIndex(path, "."); i >= 0 && i < len(path)-1 {
		return path[i+1:]
	}
	return ""
}
