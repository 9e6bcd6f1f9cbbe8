// Copyright Casefile Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package metaextractexiflib

import (
	"fmt"
	"os"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
)

// ExifData represents the extracted EXIF metadata
type ExifData struct {
	FilePath string
	Tags     map[string]string
}

// exifWalker implements the Walker interface to extract all EXIF tags
type exifWalker struct {
	tags map[string]string
}

// Walk implements the Walker interface
func (w *exifWalker) Walk(name exif.FieldName, tag *tiff.Tag) error {
	if tag != nil {
		w.tags[string(name)] = tag.String()
	}
	return nil
}

// ExtractExif extracts EXIF data from an image file. Scanned evidence photos
// sometimes carry capture timestamps and GPS fixes the documents themselves
// do not mention.
func ExtractExif(filePath string) (*ExifData, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("no EXIF data found: %w", err)
	}

	result := &ExifData{
		FilePath: filePath,
		Tags:     make(map[string]string),
	}

	walker := &exifWalker{tags: result.Tags}
	x.Walk(walker)

	if stat, err := os.Stat(filePath); err == nil {
		result.Tags["FileSize"] = fmt.Sprintf("%d bytes", stat.Size())
		result.Tags["FileModTime"] = stat.ModTime().Format("2006:01:02 15:04:05")
	}

	// Decimal GPS coordinates when a fix is present.
	if lat, long, err := x.LatLong(); err == nil {
		result.Tags["GPSLatitudeDecimal"] = fmt.Sprintf("%.6f", lat)
		result.Tags["GPSLongitudeDecimal"] = fmt.Sprintf("%.6f", long)
		if ref, err := x.Get(exif.GPSLongitudeRef); err == nil && ref.String() == "W" {
			result.Tags["GPSLongitudeDecimal"] = fmt.Sprintf("%.6f", -long)
		}
	}

	return result, nil
}
