// Copyright Casefile Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casefile/internal/document"
)

func seedEngine(t *testing.T) *Engine {
	t.Helper()
	e := newTestEngine()

	docs := []IngestItem{
		{Path: "archive/flights/log1.txt", Content: "Flight log for tail N908JE.\n" +
			"Jeffrey Epstein boarded at Teterboro on January 7, 2002 with two passengers."},
		{Path: "archive/court/giuffre.txt", Content: "UNITED STATES DISTRICT COURT\nCase No. 15-cv-07433\n" +
			"Virginia Giuffre v. Ghislaine Maxwell. Deposition testimony filed under seal on March 15, 2015."},
		{Path: "archive/notes/island.txt", Content: "Notes on the island property.\n" +
			"Staff recall frequent visits by Ghislaine Maxwell during 2004."},
	}
	for _, item := range docs {
		_, err := e.Ingest(item.Path, item.Content)
		require.NoError(t, err)
	}
	return e
}

func TestSearch_EmptyAndUnknownQueries(t *testing.T) {
	e := seedEngine(t)

	assert.Empty(t, e.Search("", nil))
	assert.Empty(t, e.Search("a an to", nil), "tokens of length <= 2 are dropped")
	assert.Empty(t, e.Search("zyzzyva", nil), "absent token returns empty, not an error")
}

func TestSearch_InvertedIndexHit(t *testing.T) {
	e := seedEngine(t)

	results := e.Search("teterboro", nil)
	require.Len(t, results, 1)
	assert.Equal(t, document.DeriveID("archive/flights/log1.txt"), results[0].ID)
}

func TestSearch_EntityIndexHit(t *testing.T) {
	e := seedEngine(t)

	// Maxwell appears in two documents via the entity index.
	results := e.Search("maxwell", nil)
	assert.Len(t, results, 2)
}

func TestSearch_RankingPrefersTitleAndEntities(t *testing.T) {
	e := newTestEngine()
	_, err := e.Ingest("a.txt", "Epstein Flight Records\nA short summary of travel.")
	require.NoError(t, err)
	_, err = e.Ingest("b.txt", "Household inventory\nThe word epstein appears once here.")
	require.NoError(t, err)

	results := e.Search("epstein", nil)
	require.Len(t, results, 2)
	assert.Equal(t, document.DeriveID("a.txt"), results[0].ID,
		"title hit outranks a lone content hit")
}

func TestSearch_Filters(t *testing.T) {
	e := seedEngine(t)

	results := e.Search("maxwell", &Filters{Category: "court-filing"})
	require.Len(t, results, 1)
	assert.Equal(t, "court-filing", results[0].FileType)

	results = e.Search("maxwell", &Filters{Confidentiality: "sealed"})
	require.Len(t, results, 1)

	results = e.Search("epstein", &Filters{DateFrom: "2002-01-01", DateTo: "2002-12-31"})
	require.Len(t, results, 1)
	assert.Equal(t, document.DeriveID("archive/flights/log1.txt"), results[0].ID)

	results = e.Search("epstein", &Filters{DateFrom: "2010-01-01"})
	assert.Empty(t, results)

	results = e.Search("maxwell", &Filters{Source: "notes"})
	require.Len(t, results, 1)
	assert.Equal(t, document.DeriveID("archive/notes/island.txt"), results[0].ID)
}

func TestSearch_LinearFallback(t *testing.T) {
	e := newTestEngine()
	_, err := e.Ingest("a.txt", "Deposition transcript\nGhislaine Maxwell answered questions.")
	require.NoError(t, err)

	// "maxw" is not an indexed token or entity key, but a substring scan
	// over entity names finds it.
	results := e.Search("maxw", nil)
	require.Len(t, results, 1)
}

func TestSearch_CachedResultsReused(t *testing.T) {
	e := seedEngine(t)

	first := e.Search("maxwell", nil)
	second := e.Search("maxwell", nil)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Same(t, first[i], second[i])
	}
}

func TestBrowse_SortKeys(t *testing.T) {
	e := seedEngine(t)

	byRisk := e.Browse(nil, "risk", "desc")
	require.Len(t, byRisk, 3)
	for i := 1; i < len(byRisk); i++ {
		assert.GreaterOrEqual(t, byRisk[i-1].RiskScore, byRisk[i].RiskScore)
	}

	byRiskAsc := e.Browse(nil, "risk", "asc")
	require.Len(t, byRiskAsc, 3)
	assert.Equal(t, byRisk[0].ID, byRiskAsc[len(byRiskAsc)-1].ID)

	bySize := e.Browse(nil, "size", "desc")
	for i := 1; i < len(bySize); i++ {
		assert.GreaterOrEqual(t, bySize[i-1].Size, bySize[i].Size)
	}

	byDate := e.Browse(nil, "date", "desc")
	require.Len(t, byDate, 3)
	// Undated documents sort after dated ones in descending order.
	assert.Equal(t, document.DeriveID("archive/notes/island.txt"), byDate[2].ID)
}

func TestBrowse_Filtered(t *testing.T) {
	e := seedEngine(t)

	docs := e.Browse(&Filters{FileType: "flight-log"}, "", "")
	require.Len(t, docs, 1)
	assert.NotNil(t, docs[0].Metadata.Flight)

	docs = e.Browse(&Filters{Entity: "Ghislaine Maxwell"}, "", "")
	assert.Len(t, docs, 2)

	docs = e.Browse(&Filters{MinBand: 5}, "", "")
	assert.Empty(t, docs)
}

func TestRelated(t *testing.T) {
	e := seedEngine(t)

	base := document.DeriveID("archive/court/giuffre.txt")
	related := e.Related(base, 5)
	require.NotEmpty(t, related)
	// The island notes share Ghislaine Maxwell with the filing.
	found := false
	for _, doc := range related {
		if doc.ID == document.DeriveID("archive/notes/island.txt") {
			found = true
		}
	}
	assert.True(t, found)

	assert.Empty(t, e.Related("doc-ffffffffffffffff", 5))
}

func TestByEntityAndByDate(t *testing.T) {
	e := seedEngine(t)

	docs := e.ByEntity("Ghislaine Maxwell", document.EntityPerson)
	assert.Len(t, docs, 2)

	docs = e.ByEntity("Ghislaine Maxwell", "")
	assert.Len(t, docs, 2, "empty type matches across all entity types")

	docs = e.ByDate("2002-01-07")
	require.Len(t, docs, 1)
	assert.Equal(t, document.DeriveID("archive/flights/log1.txt"), docs[0].ID)

	assert.Empty(t, e.ByDate("1999-12-31"))
}

func TestEntityNetwork(t *testing.T) {
	e := seedEngine(t)

	links := e.EntityNetwork("Ghislaine Maxwell")
	require.NotEmpty(t, links)
	for i := 1; i < len(links); i++ {
		assert.GreaterOrEqual(t, links[i-1].Strength, links[i].Strength)
	}
	for _, link := range links {
		assert.NotEqual(t, "ghislaine maxwell", link.Name)
	}
}

func TestSearch_CategoryFilterThroughIndex(t *testing.T) {
	e := seedEngine(t)

	// The category filter resolves against the category index, which is
	// keyed lowercase, so filter casing must not matter.
	results := e.Search("maxwell", &Filters{Category: "COURT-FILING"})
	require.Len(t, results, 1)
	assert.Equal(t, document.DeriveID("archive/court/giuffre.txt"), results[0].ID)

	assert.Empty(t, e.Search("maxwell", &Filters{Category: "correspondence"}))
}

func TestSearch_RankingIgnoresUnindexedContentTerms(t *testing.T) {
	e := newTestEngine()

	_, err := e.Ingest("short.txt", "Report follows\nZanzibar appears once in this report.")
	require.NoError(t, err)

	// A document whose only occurrences of the token sit past the indexed
	// content-word cap gets no content contribution from it.
	var sb strings.Builder
	sb.WriteString("Filler words\n")
	for i := 0; i < 1100; i++ {
		fmt.Fprintf(&sb, "w%04d ", i)
	}
	sb.WriteString("zanzibar zanzibar zanzibar")
	_, err = e.Ingest("long.txt", sb.String())
	require.NoError(t, err)

	results := e.Search("zanzibar", nil)
	require.Len(t, results, 2)
	assert.Equal(t, document.DeriveID("short.txt"), results[0].ID,
		"one indexed occurrence outranks three past the cap")
}
