// Copyright Casefile Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"sort"
	"strings"

	"casefile/internal/document"
)

// GetByID returns the document with the given id, if held.
func (e *Engine) GetByID(id string) (*document.Document, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	doc, ok := e.docs[id]
	return doc, ok
}

// AllEntities returns every merged entity, sorted by mention count
// descending, name ascending on ties.
func (e *Engine) AllEntities() []*document.Entity {
	e.mu.RLock()
	out := make([]*document.Entity, 0, len(e.entities))
	for _, ent := range e.entities {
		out = append(out, ent)
	}
	e.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Mentions != out[j].Mentions {
			return out[i].Mentions > out[j].Mentions
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Related finds documents similar to the given one: 2 points per shared
// entity name, 1 per shared category, highest first, capped at limit.
func (e *Engine) Related(id string, limit int) []*document.Document {
	e.mu.RLock()
	base, ok := e.docs[id]
	if !ok {
		e.mu.RUnlock()
		return []*document.Document{}
	}

	baseEntities := make(map[string]bool, len(base.Entities))
	for _, ent := range base.Entities {
		baseEntities[strings.ToLower(ent.Name)] = true
	}
	baseCategories := make(map[string]bool, len(base.Metadata.Categories))
	for _, c := range base.Metadata.Categories {
		baseCategories[c] = true
	}

	type scoredDoc struct {
		doc   *document.Document
		score int
	}
	var scored []scoredDoc
	for otherID, other := range e.docs {
		if otherID == id {
			continue
		}
		s := 0
		for _, ent := range other.Entities {
			if baseEntities[strings.ToLower(ent.Name)] {
				s += 2
			}
		}
		for _, c := range other.Metadata.Categories {
			if baseCategories[c] {
				s++
			}
		}
		if s > 0 {
			scored = append(scored, scoredDoc{doc: other, score: s})
		}
	}
	e.mu.RUnlock()

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].doc.ID < scored[j].doc.ID
	})

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	out := make([]*document.Document, len(scored))
	for i, s := range scored {
		out[i] = s.doc
	}
	return out
}

// ByEntity returns the documents mentioning the named entity. An empty type
// matches the name across all entity types.
func (e *Engine) ByEntity(name string, entityType document.EntityType) []*document.Document {
	e.mu.RLock()
	defer e.mu.RUnlock()

	ids := make(map[string]bool)
	if entityType != "" {
		for _, id := range e.index.DocsForEntity(document.EntityKey(entityType, name)) {
			ids[id] = true
		}
	} else {
		lower := strings.ToLower(name)
		for _, key := range e.index.EntityKeys() {
			_, entName, ok := splitEntityKey(key)
			if !ok || entName != lower {
				continue
			}
			for _, id := range e.index.DocsForEntity(key) {
				ids[id] = true
			}
		}
	}

	out := make([]*document.Document, 0, len(ids))
	for id := range ids {
		if doc, ok := e.docs[id]; ok {
			out = append(out, doc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ByDate returns the documents whose content carries the ISO date.
func (e *Engine) ByDate(iso string) []*document.Document {
	e.mu.RLock()
	defer e.mu.RUnlock()

	ids := e.index.DocsForDate(iso)
	out := make([]*document.Document, 0, len(ids))
	for _, id := range ids {
		if doc, ok := e.docs[id]; ok {
			out = append(out, doc)
		}
	}
	return out
}

// NetworkLink is one co-mention edge from a queried entity.
type NetworkLink struct {
	Name     string              `json:"name"`
	Type     document.EntityType `json:"type"`
	Strength int                 `json:"strength"`
}

// EntityNetwork returns the entities co-mentioned with the named one,
// strongest first. Strength is the number of documents both appear in.
func (e *Engine) EntityNetwork(name string) []NetworkLink {
	e.mu.RLock()

	lower := strings.ToLower(name)
	inDocs := make(map[string]bool)
	for _, doc := range e.docs {
		for _, ent := range doc.Entities {
			if strings.ToLower(ent.Name) == lower {
				inDocs[doc.ID] = true
				break
			}
		}
	}

	type linkKey struct {
		name string
		typ  document.EntityType
	}
	strength := make(map[linkKey]int)
	display := make(map[linkKey]string)
	for id := range inDocs {
		doc := e.docs[id]
		for _, ent := range doc.Entities {
			if strings.ToLower(ent.Name) == lower {
				continue
			}
			k := linkKey{name: strings.ToLower(ent.Name), typ: ent.Type}
			strength[k]++
			display[k] = ent.Name
		}
	}
	e.mu.RUnlock()

	out := make([]NetworkLink, 0, len(strength))
	for k, s := range strength {
		out = append(out, NetworkLink{Name: display[k], Type: k.typ, Strength: s})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Strength != out[j].Strength {
			return out[i].Strength > out[j].Strength
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Statistics aggregates engine-wide counts.
type Statistics struct {
	DocumentCount int                `json:"document_count"`
	EntityCount   int                `json:"entity_count"`
	PassageCount  int                `json:"passage_count"`
	AvgRiskScore  float64            `json:"avg_risk_score"`
	TopEntities   []*document.Entity `json:"top_entities,omitempty"`
	EarliestDate  string             `json:"earliest_date,omitempty"`
	LatestDate    string             `json:"latest_date,omitempty"`
	ByFileType    map[string]int     `json:"by_file_type"`
}

const topEntityCount = 10

// Stats returns aggregate counts, the average risk score, the most
// mentioned entities, and the corpus date range.
func (e *Engine) Stats() Statistics {
	e.mu.RLock()
	stats := Statistics{
		DocumentCount: len(e.docs),
		EntityCount:   len(e.entities),
		ByFileType:    make(map[string]int),
	}
	riskTotal := 0
	for _, doc := range e.docs {
		stats.PassageCount += len(doc.Passages)
		riskTotal += doc.RiskScore
		stats.ByFileType[doc.FileType]++
	}
	dates := e.index.Dates()
	e.mu.RUnlock()

	if stats.DocumentCount > 0 {
		stats.AvgRiskScore = float64(riskTotal) / float64(stats.DocumentCount)
	}
	if len(dates) > 0 {
		stats.EarliestDate = dates[0]
		stats.LatestDate = dates[len(dates)-1]
	}

	top := e.AllEntities()
	if len(top) > topEntityCount {
		top = top[:topEntityCount]
	}
	stats.TopEntities = top
	return stats
}
