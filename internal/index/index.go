// Copyright Casefile Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package index maintains the five lookup structures that back search,
// browse, and entity queries. All of them change together through Add and
// Remove so no structure can drift from the others.
package index

import (
	"regexp"
	"sort"
	"strings"

	"casefile/internal/document"
)

// maxSearchContentWords caps how many unique content words feed the
// per-document search term set.
const maxSearchContentWords = 1000

var tokenPattern = regexp.MustCompile(`[a-zA-Z0-9']+`)

// Index owns the inverted, entity, date, category, and search structures.
// It is not safe for concurrent use; the engine serializes mutation.
type Index struct {
	inverted   map[string]map[string]bool // token -> doc IDs
	entities   map[string]map[string]bool // type:lowername -> doc IDs
	dates      map[string]map[string]bool // ISO date -> doc IDs
	categories map[string]map[string]bool // category -> doc IDs
	search     map[string]map[string]bool // doc ID -> search terms
}

// New returns an empty index.
func New() *Index {
	return &Index{
		inverted:   make(map[string]map[string]bool),
		entities:   make(map[string]map[string]bool),
		dates:      make(map[string]map[string]bool),
		categories: make(map[string]map[string]bool),
		search:     make(map[string]map[string]bool),
	}
}

// Add indexes a document into every structure. Calling Add again with the
// same document ID first removes the previous entries, so re-ingestion is an
// overwrite rather than an accumulation.
func (ix *Index) Add(doc *document.Document, dates []string) {
	if _, exists := ix.search[doc.ID]; exists {
		ix.Remove(doc.ID)
	}

	terms := make(map[string]bool)

	for _, tok := range Tokenize(doc.Content) {
		addMember(ix.inverted, tok, doc.ID)
	}

	for _, e := range doc.Entities {
		addMember(ix.entities, e.Key(), doc.ID)
		terms[strings.ToLower(e.Name)] = true
	}

	for _, d := range dates {
		addMember(ix.dates, d, doc.ID)
	}

	for _, c := range doc.Metadata.Categories {
		addMember(ix.categories, strings.ToLower(c), doc.ID)
	}

	for _, tok := range Tokenize(doc.Title) {
		terms[tok] = true
	}
	content := Tokenize(doc.Content)
	added := 0
	for _, tok := range content {
		if terms[tok] {
			continue
		}
		terms[tok] = true
		added++
		if added >= maxSearchContentWords {
			break
		}
	}
	for _, p := range doc.Passages {
		for _, kw := range p.Keywords {
			terms[kw] = true
		}
	}
	ix.search[doc.ID] = terms
}

// Remove purges a document ID from every structure.
func (ix *Index) Remove(docID string) {
	removeMember(ix.inverted, docID)
	removeMember(ix.entities, docID)
	removeMember(ix.dates, docID)
	removeMember(ix.categories, docID)
	delete(ix.search, docID)
}

// DocsForToken returns the document IDs whose content contains the token.
func (ix *Index) DocsForToken(token string) []string {
	return members(ix.inverted[strings.ToLower(token)])
}

// DocsForEntity returns the document IDs mentioning the entity key
// (type:lowername form).
func (ix *Index) DocsForEntity(key string) []string {
	return members(ix.entities[key])
}

// DocsForDate returns the document IDs whose content carries the ISO date.
func (ix *Index) DocsForDate(iso string) []string {
	return members(ix.dates[iso])
}

// DocsForCategory returns the document IDs tagged with the category.
func (ix *Index) DocsForCategory(category string) []string {
	return members(ix.categories[strings.ToLower(category)])
}

// InCategory reports whether the document carries the category. Categories
// are indexed lowercase.
func (ix *Index) InCategory(docID, category string) bool {
	return ix.categories[strings.ToLower(category)][docID]
}

// SearchTerms reports whether the document's search term set contains the
// term. Unknown document IDs report false.
func (ix *Index) SearchTerms(docID, term string) bool {
	return ix.search[docID][strings.ToLower(term)]
}

// EntityKeys returns every indexed entity key, sorted.
func (ix *Index) EntityKeys() []string {
	keys := make([]string, 0, len(ix.entities))
	for k := range ix.entities {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Dates returns every indexed ISO date, sorted ascending.
func (ix *Index) Dates() []string {
	out := make([]string, 0, len(ix.dates))
	for d := range ix.dates {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// Tokenize lowercases content and returns the word tokens longer than two
// characters, in order of appearance.
func Tokenize(content string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(content), -1)
	out := make([]string, 0, len(raw))
	for _, tok := range raw {
		if len(tok) > 2 {
			out = append(out, tok)
		}
	}
	return out
}

func addMember(m map[string]map[string]bool, key, docID string) {
	set, ok := m[key]
	if !ok {
		set = make(map[string]bool)
		m[key] = set
	}
	set[docID] = true
}

func removeMember(m map[string]map[string]bool, docID string) {
	for key, set := range m {
		delete(set, docID)
		if len(set) == 0 {
			delete(m, key)
		}
	}
}

func members(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
