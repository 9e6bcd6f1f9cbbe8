// Copyright Casefile Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package textextractpdftextlib

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// TextContent represents the extracted text content from a PDF document
type TextContent struct {
	Filename  string
	Text      string
	PageCount int
	WordCount int
	CharCount int
	LineCount int
}

// maxPages bounds how many pages are decoded from very large releases.
const maxPages = 200

// ExtractText extracts text from a PDF document using ledongthuc/pdf
func ExtractText(filePath string) (*TextContent, error) {
	content := &TextContent{
		Filename: filepath.Base(filePath),
	}

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return content, fmt.Errorf("error opening PDF: %w", err)
	}
	defer f.Close()

	content.PageCount = r.NumPage()
	pages := content.PageCount
	if pages > maxPages {
		pages = maxPages
	}

	type pageResult struct {
		pageNum int
		text    string
		err     error
	}
	resultChan := make(chan pageResult, pages)

	for i := 1; i <= pages; i++ {
		go func(pageNum int) {
			p := r.Page(pageNum)
			if p.V.IsNull() {
				resultChan <- pageResult{pageNum: pageNum, err: fmt.Errorf("null page")}
				return
			}
			text, err := p.GetPlainText(nil)
			resultChan <- pageResult{pageNum: pageNum, text: text, err: err}
		}(i)
	}

	pageTexts := make(map[int]string)
	for i := 0; i < pages; i++ {
		result := <-resultChan
		if result.err != nil {
			continue
		}
		pageTexts[result.pageNum] = result.text
	}

	var buf bytes.Buffer
	for i := 1; i <= pages; i++ {
		text, exists := pageTexts[i]
		if !exists {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString("\n\n")
		}
		buf.WriteString(text)
	}

	content.Text = cleanText(buf.String())
	content.WordCount = len(strings.Fields(content.Text))
	content.CharCount = len(content.Text)
	content.LineCount = strings.Count(content.Text, "\n") + 1
	return content, nil
}

// cleanText collapses runs of whitespace within lines while keeping line
// breaks, so downstream sentence splitting still sees document structure.
func cleanText(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	blank := 0
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			blank++
			// Keep a single blank line as a paragraph boundary.
			if blank == 1 && len(cleaned) > 0 {
				cleaned = append(cleaned, "")
			}
			continue
		}
		blank = 0
		cleaned = append(cleaned, line)
	}
	return strings.TrimRight(strings.Join(cleaned, "\n"), "\n")
}
