// Copyright Casefile Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"testing"

	"casefile/internal/document"
)

func TestSplitSentences_Offsets(t *testing.T) {
	content := "First sentence here. Second one follows! Third asks a question? Tail without end"
	spans := splitSentences(content)
	if len(spans) != 4 {
		t.Fatalf("got %d spans, want 4", len(spans))
	}
	for _, span := range spans {
		if content[span.offset:span.offset+len(span.text)] != span.text {
			t.Errorf("offset %d does not locate %q in content", span.offset, span.text)
		}
	}
}

func TestPassages_DropShortFragments(t *testing.T) {
	content := "Short. This sentence is comfortably longer than twenty characters."
	res := NewExtractor().Extract(content, "doc-1")
	if len(res.Passages) != 1 {
		t.Fatalf("got %d passages, want 1", len(res.Passages))
	}
	if res.Passages[0].Significance != document.SignificanceLow {
		t.Errorf("plain sentence should be low significance, got %q", res.Passages[0].Significance)
	}
}

func TestPassages_SignificanceBuckets(t *testing.T) {
	cases := []struct {
		risk     int
		entities int
		want     document.Significance
	}{
		{4, 0, document.SignificanceHigh},
		{0, 3, document.SignificanceHigh},
		{2, 0, document.SignificanceMedium},
		{0, 1, document.SignificanceMedium},
		{1, 0, document.SignificanceLow},
		{0, 0, document.SignificanceLow},
	}
	for _, tc := range cases {
		if got := passageSignificance(tc.risk, tc.entities); got != tc.want {
			t.Errorf("passageSignificance(%d, %d) = %q, want %q", tc.risk, tc.entities, got, tc.want)
		}
	}
}

func TestPassages_KeywordsAndContext(t *testing.T) {
	content := "The weather was unremarkable that week. Jeffrey Epstein arranged a flight to the island. " +
		"Nothing else of note happened afterward. The staff went home early that evening."
	res := NewExtractor().Extract(content, "doc-1")

	var target *document.Passage
	for i := range res.Passages {
		if len(res.Passages[i].Keywords) > 0 {
			target = &res.Passages[i]
			break
		}
	}
	if target == nil {
		t.Fatal("expected a passage with risk keywords")
	}

	wantKeywords := map[string]bool{"epstein": true, "flight": true, "island": true}
	for _, kw := range target.Keywords {
		if !wantKeywords[kw] {
			t.Errorf("unexpected keyword %q", kw)
		}
	}
	if target.RiskScore < 3 {
		t.Errorf("risk hits = %d, want >= 3", target.RiskScore)
	}
	if target.Significance != document.SignificanceMedium && target.Significance != document.SignificanceHigh {
		t.Errorf("keyword-dense passage should be at least medium, got %q", target.Significance)
	}
	if target.ContextBefore == "" || target.ContextAfter == "" {
		t.Error("expected sentence context either side")
	}

	found := false
	for _, e := range target.Entities {
		if e == "Jeffrey Epstein" {
			found = true
		}
	}
	if !found {
		t.Errorf("passage entities %v missing Jeffrey Epstein", target.Entities)
	}
}

func TestPassages_IndependentOfDocumentEntities(t *testing.T) {
	// The passage-level pass is lighter: it validates but does not
	// consolidate, so a variant spelling stays as written in the sentence.
	content := "Jeff Epstein arranged another flight from the island airport."
	res := NewExtractor().Extract(content, "doc-1")
	if len(res.Passages) != 1 {
		t.Fatalf("got %d passages, want 1", len(res.Passages))
	}
	var hasVariant bool
	for _, e := range res.Passages[0].Entities {
		if e == "Jeff Epstein" {
			hasVariant = true
		}
	}
	if !hasVariant {
		t.Errorf("passage entities %v should keep the surface form Jeff Epstein", res.Passages[0].Entities)
	}
}
