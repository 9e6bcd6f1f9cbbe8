// Copyright Casefile Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"strings"

	"casefile/internal/document"
	"casefile/internal/names"
	"casefile/internal/scoring"
)

// sentenceSpan is one sentence with its character offset in the document.
type sentenceSpan struct {
	text   string
	offset int
}

// passages segments content into sentence passages with derived signals.
// The per-passage entity pass is intentionally independent of the
// document-level extraction and is not deduplicated against it: the two
// views are computed separately.
func (x *Extractor) passages(content, docID string) []document.Passage {
	spans := splitSentences(content)

	var result []document.Passage
	for i, span := range spans {
		if len(strings.TrimSpace(span.text)) < x.MinPassageLength {
			continue
		}

		entities := passageEntities(span.text)
		keywords := scoring.Keywords(span.text)
		risk := scoring.KeywordHits(span.text)

		p := document.Passage{
			DocumentID:    docID,
			Content:       strings.TrimSpace(span.text),
			Offset:        span.offset,
			Entities:      entities,
			Keywords:      keywords,
			RiskScore:     risk,
			Significance:  passageSignificance(risk, len(entities)),
			ContextBefore: joinSpans(spans, i-2, i),
			ContextAfter:  joinSpans(spans, i+1, i+3),
		}
		result = append(result, p)
	}
	return result
}

// passageSignificance buckets a passage by its risk hits and entity count.
func passageSignificance(risk, entityCount int) document.Significance {
	switch {
	case risk >= 4 || entityCount >= 3:
		return document.SignificanceHigh
	case risk >= 2 || entityCount >= 1:
		return document.SignificanceMedium
	default:
		return document.SignificanceLow
	}
}

// passageEntities is the lighter per-sentence entity pass: person-shaped
// matches filtered only through name validity, plus email literals.
func passageEntities(sentence string) []string {
	var found []string
	seen := make(map[string]bool)
	for _, m := range personPattern.FindAllString(sentence, -1) {
		if !names.IsValidPersonName(m) {
			continue
		}
		key := strings.ToLower(m)
		if !seen[key] {
			seen[key] = true
			found = append(found, m)
		}
	}
	for _, m := range emailPattern.FindAllString(sentence, -1) {
		key := strings.ToLower(m)
		if !seen[key] {
			seen[key] = true
			found = append(found, key)
		}
	}
	return found
}

// splitSentences breaks content on sentence-ending punctuation, keeping each
// sentence's starting offset.
func splitSentences(content string) []sentenceSpan {
	var spans []sentenceSpan
	start := 0
	for i := 0; i < len(content); i++ {
		c := content[i]
		if c != '.' && c != '!' && c != '?' {
			continue
		}
		// Swallow runs of terminators ("?!", "...").
		end := i + 1
		for end < len(content) && (content[end] == '.' || content[end] == '!' || content[end] == '?') {
			end++
		}
		spans = append(spans, sentenceSpan{text: content[start:end], offset: start})
		i = end - 1
		start = end
	}
	if start < len(content) {
		tail := content[start:]
		if strings.TrimSpace(tail) != "" {
			spans = append(spans, sentenceSpan{text: tail, offset: start})
		}
	}

	// Trim leading whitespace from each span, adjusting offsets.
	for i := range spans {
		trimmed := strings.TrimLeft(spans[i].text, " \t\n\r")
		spans[i].offset += len(spans[i].text) - len(trimmed)
		spans[i].text = trimmed
	}
	return spans
}

// joinSpans joins the sentence window [from, to) clamped to bounds.
func joinSpans(spans []sentenceSpan, from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(spans) {
		to = len(spans)
	}
	if from >= to {
		return ""
	}
	parts := make([]string, 0, to-from)
	for _, s := range spans[from:to] {
		parts = append(parts, strings.TrimSpace(s.text))
	}
	return strings.Join(parts, " ")
}
