// Copyright Casefile Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"casefile/internal/document"
	"casefile/internal/index"
)

// Filters narrow a search or browse result set. Zero values mean "no
// constraint". Band bounds are inclusive; MaxBand zero means unbounded.
type Filters struct {
	FileType        string
	DateFrom        string // ISO calendar date, inclusive
	DateTo          string
	Entity          string
	Category        string
	MinBand         int
	MaxBand         int
	Confidentiality string
	Source          string
}

// fingerprint folds every filter field into the cache key.
func (f *Filters) fingerprint() string {
	if f == nil {
		return "-"
	}
	return strings.Join([]string{
		f.FileType, f.DateFrom, f.DateTo, f.Entity, f.Category,
		fmt.Sprint(f.MinBand), fmt.Sprint(f.MaxBand),
		f.Confidentiality, f.Source,
	}, "|")
}

// entitySearchTypes is the fixed set of entity types the search union
// consults.
var entitySearchTypes = map[document.EntityType]bool{
	document.EntityPerson:       true,
	document.EntityOrganization: true,
	document.EntityLocation:     true,
	document.EntityEmail:        true,
}

// Search answers a ranked query. Query tokens longer than two characters are
// unioned against the inverted index and the entity index; only when both
// unions come back empty does it fall back to a linear title and entity-name
// scan. Results pass the filter predicate and are ranked by the relevance
// score. An empty query returns an empty result set.
func (e *Engine) Search(query string, filters *Filters) []*document.Document {
	tokens := index.Tokenize(query)
	if len(tokens) == 0 {
		return []*document.Document{}
	}

	key := "search|" + strings.Join(tokens, " ") + "|" + filters.fingerprint()
	if ids, ok := e.cache.get(key); ok {
		return e.materialize(ids)
	}

	e.mu.RLock()

	candidates := make(map[string]bool)
	for _, tok := range tokens {
		for _, id := range e.index.DocsForToken(tok) {
			candidates[id] = true
		}
	}
	for _, tok := range tokens {
		for _, entKey := range e.index.EntityKeys() {
			entType, entName, ok := splitEntityKey(entKey)
			if !ok || !entitySearchTypes[entType] {
				continue
			}
			if containsToken(entName, tok) {
				for _, id := range e.index.DocsForEntity(entKey) {
					candidates[id] = true
				}
			}
		}
	}

	// Slow path: the indexes only hold whole tokens, so substring matches
	// need a direct scan.
	if len(candidates) == 0 {
		lowerQuery := strings.ToLower(query)
		for id, doc := range e.docs {
			if strings.Contains(strings.ToLower(doc.Title), lowerQuery) {
				candidates[id] = true
				continue
			}
			for _, ent := range doc.Entities {
				if strings.Contains(strings.ToLower(ent.Name), lowerQuery) {
					candidates[id] = true
					break
				}
			}
		}
	}

	var matched []*document.Document
	for id := range candidates {
		doc := e.docs[id]
		if doc != nil && e.matchesLocked(doc, filters) {
			matched = append(matched, doc)
		}
	}

	type ranked struct {
		doc   *document.Document
		score float64
	}
	scored := make([]ranked, 0, len(matched))
	for _, doc := range matched {
		scored = append(scored, ranked{doc: doc, score: e.relevance(doc, tokens)})
	}
	e.mu.RUnlock()

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].doc.ID < scored[j].doc.ID
	})

	out := make([]*document.Document, len(scored))
	ids := make([]string, len(scored))
	for i, r := range scored {
		out[i] = r.doc
		ids[i] = r.doc.ID
	}
	e.cache.put(key, ids)
	return out
}

// Browse returns filtered documents ordered by a sort key: "date", "risk",
// "type", "size", or the default "relevance" (entity count, then risk score,
// descending). sortOrder is "asc" or "desc"; desc is the default.
func (e *Engine) Browse(filters *Filters, sortBy, sortOrder string) []*document.Document {
	key := "browse|" + sortBy + "|" + sortOrder + "|" + filters.fingerprint()
	if ids, ok := e.cache.get(key); ok {
		return e.materialize(ids)
	}

	e.mu.RLock()
	var docs []*document.Document
	for _, doc := range e.docs {
		if e.matchesLocked(doc, filters) {
			docs = append(docs, doc)
		}
	}
	earliest := make(map[string]string, len(docs))
	for _, doc := range docs {
		if dates := e.docDates[doc.ID]; len(dates) > 0 {
			earliest[doc.ID] = dates[0]
		}
	}
	e.mu.RUnlock()

	less := browseLess(sortBy, earliest)
	sort.Slice(docs, func(i, j int) bool {
		a, b := docs[i], docs[j]
		if sortOrder == "asc" {
			a, b = b, a
		}
		return less(a, b)
	})

	if docs == nil {
		docs = []*document.Document{}
	}
	ids := make([]string, len(docs))
	for i, doc := range docs {
		ids[i] = doc.ID
	}
	e.cache.put(key, ids)
	return docs
}

// browseLess builds the descending comparison for a sort key. Ties fall back
// to document id so ordering is deterministic.
func browseLess(sortBy string, earliest map[string]string) func(a, b *document.Document) bool {
	switch sortBy {
	case "date":
		return func(a, b *document.Document) bool {
			da, db := earliest[a.ID], earliest[b.ID]
			if da != db {
				// Descending means most recent first; empty sorts last.
				if da == "" {
					return false
				}
				if db == "" {
					return true
				}
				return da > db
			}
			return a.ID < b.ID
		}
	case "risk":
		return func(a, b *document.Document) bool {
			if a.RiskScore != b.RiskScore {
				return a.RiskScore > b.RiskScore
			}
			return a.ID < b.ID
		}
	case "type":
		return func(a, b *document.Document) bool {
			if a.FileType != b.FileType {
				return a.FileType > b.FileType
			}
			return a.ID < b.ID
		}
	case "size":
		return func(a, b *document.Document) bool {
			if a.Size != b.Size {
				return a.Size > b.Size
			}
			return a.ID < b.ID
		}
	default: // relevance
		return func(a, b *document.Document) bool {
			if len(a.Entities) != len(b.Entities) {
				return len(a.Entities) > len(b.Entities)
			}
			if a.RiskScore != b.RiskScore {
				return a.RiskScore > b.RiskScore
			}
			return a.ID < b.ID
		}
	}
}

// matchesLocked applies the shared filter predicate. Caller holds at least
// the read lock.
func (e *Engine) matchesLocked(doc *document.Document, f *Filters) bool {
	if f == nil {
		return true
	}
	if f.FileType != "" && !strings.EqualFold(doc.FileType, f.FileType) {
		return false
	}
	if f.DateFrom != "" || f.DateTo != "" {
		if !dateInRange(e.docDates[doc.ID], f.DateFrom, f.DateTo) {
			return false
		}
	}
	if f.Entity != "" {
		found := false
		for _, ent := range doc.Entities {
			if strings.EqualFold(ent.Name, f.Entity) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.Category != "" && !e.index.InCategory(doc.ID, f.Category) {
		return false
	}
	if f.MinBand > 0 && doc.Rating.Band < f.MinBand {
		return false
	}
	if f.MaxBand > 0 && doc.Rating.Band > f.MaxBand {
		return false
	}
	if f.Confidentiality != "" && !strings.EqualFold(doc.Metadata.Confidentiality, f.Confidentiality) {
		return false
	}
	if f.Source != "" && !strings.EqualFold(doc.Metadata.Source, f.Source) {
		return false
	}
	return true
}

// dateInRange reports whether any of the document's ISO dates falls inside
// [from, to]. ISO dates compare correctly as strings.
func dateInRange(dates []string, from, to string) bool {
	for _, d := range dates {
		if from != "" && d < from {
			continue
		}
		if to != "" && d > to {
			continue
		}
		return true
	}
	return false
}

// relevance is the ranking score: 5 per query token found in the title, 3
// per token found in any entity name, the whole-word content occurrence
// count per token, and half the document's rating band. The search-term set
// gates the content count, so a token outside the document's indexed terms
// contributes nothing even when it appears deep in the text.
func (e *Engine) relevance(doc *document.Document, tokens []string) float64 {
	score := 0.5 * float64(doc.Rating.Band)
	titleLower := strings.ToLower(doc.Title)
	for _, tok := range tokens {
		if containsToken(titleLower, tok) {
			score += 5
		}
		for _, ent := range doc.Entities {
			if containsToken(strings.ToLower(ent.Name), tok) {
				score += 3
				break
			}
		}
		if e.index.SearchTerms(doc.ID, tok) {
			score += float64(countWholeWord(doc.Content, tok))
		}
	}
	return score
}

// containsToken reports whether lowered text contains tok as a whole word.
func containsToken(text, tok string) bool {
	for _, w := range index.Tokenize(text) {
		if w == tok {
			return true
		}
	}
	return false
}

func countWholeWord(content, token string) int {
	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(token) + `\b`)
	if err != nil {
		return 0
	}
	return len(re.FindAllStringIndex(content, -1))
}

// splitEntityKey undoes document.EntityKey.
func splitEntityKey(key string) (document.EntityType, string, bool) {
	i := strings.Index(key, ":")
	if i < 0 {
		return "", "", false
	}
	return document.EntityType(key[:i]), key[i+1:], true
}

// materialize resolves cached document ids back to live documents, dropping
// any id no longer held.
func (e *Engine) materialize(ids []string) []*document.Document {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]*document.Document, 0, len(ids))
	for _, id := range ids {
		if doc, ok := e.docs[id]; ok {
			out = append(out, doc)
		}
	}
	return out
}
