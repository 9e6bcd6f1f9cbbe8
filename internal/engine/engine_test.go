// Copyright Casefile Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casefile/internal/document"
)

const flightLogContent = `Flight Log Excerpt
Jeffrey Epstein boarded the jet at Teterboro on January 7, 2002.
Ghislaine Maxwell joined the flight to Palm Beach.
Jeffrey Epstein returned on the same aircraft. Jeffrey Epstein signed the manifest.`

func newTestEngine() *Engine {
	return New(Options{})
}

func TestIngest_DeterministicID(t *testing.T) {
	e := newTestEngine()

	first, err := e.Ingest("archive/vol1/log.txt", flightLogContent)
	require.NoError(t, err)
	second, err := e.Ingest("archive/vol1/log.txt", flightLogContent)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, document.DeriveID("archive/vol1/log.txt"), first.ID)

	stats := e.Stats()
	assert.Equal(t, 1, stats.DocumentCount, "re-ingesting the same path must not duplicate")
}

func TestIngest_EmptyPath(t *testing.T) {
	e := newTestEngine()
	_, err := e.Ingest("  ", "content")
	require.Error(t, err)
}

func TestIngest_RiskExample(t *testing.T) {
	// Three Epstein mentions and one flight keyword: non-zero score in a
	// low band, with at least one high-significance context.
	e := newTestEngine()
	doc, err := e.Ingest("archive/log.txt", flightLogContent)
	require.NoError(t, err)

	assert.Greater(t, doc.RiskScore, 0)
	assert.GreaterOrEqual(t, doc.Rating.Band, 1)
	assert.Less(t, doc.Rating.Band, 5)

	var epstein *document.Entity
	for _, ent := range doc.Entities {
		if ent.Name == "Jeffrey Epstein" {
			epstein = ent
		}
	}
	require.NotNil(t, epstein)
	assert.Equal(t, 3, epstein.Mentions)
	assert.Equal(t, document.SignificanceHigh, epstein.Significance)
}

func TestIngest_MergesEntitiesAcrossDocuments(t *testing.T) {
	e := newTestEngine()
	_, err := e.Ingest("a.txt", "Ghislaine Maxwell attended the meeting in Palm Beach.")
	require.NoError(t, err)
	_, err = e.Ingest("b.txt", "Ghislaine Maxwell signed the register at the mansion.")
	require.NoError(t, err)

	entities := e.AllEntities()
	var maxwell *document.Entity
	for _, ent := range entities {
		if ent.Name == "Ghislaine Maxwell" {
			maxwell = ent
		}
	}
	require.NotNil(t, maxwell)
	assert.Equal(t, 2, maxwell.Mentions)
	assert.Len(t, maxwell.Contexts, 2)
}

func TestIngest_MergeNeverLowersSignificance(t *testing.T) {
	findGiuffre := func(e *Engine) *document.Entity {
		for _, ent := range e.AllEntities() {
			if ent.Name == "Virginia Giuffre" {
				return ent
			}
		}
		return nil
	}

	// A trigger-term mention followed by a plain one.
	e := newTestEngine()
	_, err := e.Ingest("a.txt", "Virginia Giuffre boarded the flight to the island.")
	require.NoError(t, err)
	_, err = e.Ingest("b.txt", "Virginia Giuffre signed the statement.")
	require.NoError(t, err)

	ent := findGiuffre(e)
	require.NotNil(t, ent)
	assert.Equal(t, 2, ent.Mentions)
	assert.Equal(t, document.SignificanceMedium, ent.Significance,
		"a later low-significance mention must not lower the merged level")

	// Same mentions in the opposite order converge on the same level.
	e = newTestEngine()
	_, err = e.Ingest("b.txt", "Virginia Giuffre signed the statement.")
	require.NoError(t, err)
	_, err = e.Ingest("a.txt", "Virginia Giuffre boarded the flight to the island.")
	require.NoError(t, err)

	ent = findGiuffre(e)
	require.NotNil(t, ent)
	assert.Equal(t, document.SignificanceMedium, ent.Significance)
}

func TestIngest_ReingestRetractsOldMentions(t *testing.T) {
	e := newTestEngine()
	_, err := e.Ingest("a.txt", "Ghislaine Maxwell signed the register. Ghislaine Maxwell left early.")
	require.NoError(t, err)
	_, err = e.Ingest("a.txt", "Nobody of note appears in this revision of the page.")
	require.NoError(t, err)

	for _, ent := range e.AllEntities() {
		assert.NotEqual(t, "Ghislaine Maxwell", ent.Name,
			"mentions from the replaced revision must be retracted")
	}
}

func TestIngestBatch_PartialFailure(t *testing.T) {
	e := newTestEngine()
	items := []IngestItem{
		{Path: "a.txt", Content: "Jeffrey Epstein arrived by jet."},
		{Path: "", Content: "no path, fails"},
		{Path: "b.txt", Content: "Ghislaine Maxwell attended the dinner."},
	}
	docs, err := e.IngestBatch(context.Background(), items, 2)
	require.NoError(t, err)
	assert.Len(t, docs, 2, "the failing document is skipped, not fatal")
	assert.Equal(t, 2, e.Stats().DocumentCount)
}

func TestIngestBatch_GroupsAndCancellation(t *testing.T) {
	e := newTestEngine()
	var items []IngestItem
	for i := 0; i < 7; i++ {
		items = append(items, IngestItem{
			Path:    fmt.Sprintf("doc-%d.txt", i),
			Content: "Plain content with nothing sensitive inside it.",
		})
	}

	docs, err := e.IngestBatch(context.Background(), items, 3)
	require.NoError(t, err)
	assert.Len(t, docs, 7)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	docs, err = e.IngestBatch(ctx, items, 3)
	require.Error(t, err)
	assert.Empty(t, docs)
}

func TestGetByID(t *testing.T) {
	e := newTestEngine()
	doc, err := e.Ingest("a.txt", "Some readable content for the store.")
	require.NoError(t, err)

	got, ok := e.GetByID(doc.ID)
	require.True(t, ok)
	assert.Equal(t, doc.Path, got.Path)

	_, ok = e.GetByID("doc-ffffffffffffffff")
	assert.False(t, ok)
}

func TestStats(t *testing.T) {
	e := newTestEngine()
	_, err := e.Ingest("a.txt", "Jeffrey Epstein flew on January 7, 2002 to Palm Beach.")
	require.NoError(t, err)
	_, err = e.Ingest("b.txt", "Ghislaine Maxwell visited on March 15, 2005 for a deposition.")
	require.NoError(t, err)

	stats := e.Stats()
	assert.Equal(t, 2, stats.DocumentCount)
	assert.Greater(t, stats.EntityCount, 0)
	assert.Greater(t, stats.AvgRiskScore, 0.0)
	assert.Equal(t, "2002-01-07", stats.EarliestDate)
	assert.Equal(t, "2005-03-15", stats.LatestDate)
	assert.NotEmpty(t, stats.TopEntities)
	assert.Equal(t, 2, stats.ByFileType["text"])
}
