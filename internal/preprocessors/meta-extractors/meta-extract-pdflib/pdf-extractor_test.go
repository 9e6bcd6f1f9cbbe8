// Copyright Casefile Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package metaextractpdflib

import (
	"os"
	"path/filepath"
	"testing"
)

// A structurally broken PDF: a recognizable header and page objects but no
// xref table, so pdfcpu cannot parse or validate it.
const brokenPDF = `%PDF-1.4
1 0 obj
<< /Type /Page /Parent 3 0 R >>
endobj
2 0 obj
<< /Type /Page /Parent 3 0 R >>
endobj
<< /Producer (TestWriter) >>
`

func TestExtractMetadata_BrokenFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	if err := os.WriteFile(path, []byte(brokenPDF), 0600); err != nil {
		t.Fatal(err)
	}

	meta, err := ExtractMetadata(path)
	if err != nil {
		t.Fatalf("ExtractMetadata: %v", err)
	}
	if meta.Valid {
		t.Error("a file without an xref table must not validate")
	}
	if meta.PageCount != 2 {
		t.Errorf("PageCount = %d, want 2 from the raw page-object count", meta.PageCount)
	}
	if meta.Version != "1.4" {
		t.Errorf("Version = %q", meta.Version)
	}
	if meta.Producer != "TestWriter" {
		t.Errorf("Producer = %q", meta.Producer)
	}
	if meta.Encrypted {
		t.Error("no /Encrypt reference present")
	}
}

func TestCountPages(t *testing.T) {
	if n := countPages([]byte("<< /Type /Page >> << /Type /Page >> << /Type /Pages >>")); n != 2 {
		t.Errorf("page-object count = %d, want 2", n)
	}
	if n := countPages([]byte("<< /Type /Pages /Count 7 >>")); n != 7 {
		t.Errorf("count fallback = %d, want 7", n)
	}
	if n := countPages([]byte("no pdf structures here")); n != 0 {
		t.Errorf("empty fallback = %d, want 0", n)
	}
}
