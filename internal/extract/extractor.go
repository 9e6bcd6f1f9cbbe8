// Copyright Casefile Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package extract runs the per-document extraction passes: one regex pass
// per entity type over the raw text, name validation through the names and
// titles services, context windows with per-mention significance, and
// sentence-level passage segmentation.
package extract

import (
	"sort"
	"strings"

	"casefile/internal/document"
	"casefile/internal/names"
	"casefile/internal/titles"
)

// The two subjects whose presence in a context window marks a mention as
// high significance, and the secondary trigger terms that mark it medium.
var highValueSubjects = []string{"jeffrey epstein", "ghislaine maxwell"}

var mediumTriggers = []string{
	"flight", "island", "jet", "plane", "airport", "massage",
	"mansion", "ranch", "villa", "recruit", "deposition", "testimony",
}

// Extractor produces entities and passages for one document at a time. It
// holds no per-document state and is safe to share across goroutines.
type Extractor struct {
	// ContextWindow is the number of characters captured either side of a
	// mention.
	ContextWindow int
	// MinPassageLength drops sentence fragments below this many characters.
	MinPassageLength int
}

// Result carries everything one extraction pass derived from a document.
type Result struct {
	Entities []*document.Entity
	Passages []document.Passage
	// Dates are the ISO calendar dates recognized in content, sorted and
	// deduplicated. The date index is keyed on these.
	Dates []string
}

// NewExtractor returns an extractor with the default window sizes.
func NewExtractor() *Extractor {
	return &Extractor{
		ContextWindow:    100,
		MinPassageLength: 20,
	}
}

// Extract runs all extraction passes over content for the given document id.
func (x *Extractor) Extract(content, docID string) *Result {
	res := &Result{}
	if strings.TrimSpace(content) == "" {
		return res
	}

	// Accumulate accepted entities by canonical key; each keeps the surface
	// forms seen so occurrences can be re-located in the text.
	type candidate struct {
		entity   *document.Entity
		surfaces map[string]bool
		// positions recorded during the first pass, for pattern types
		// whose literals do not survive a whole-word rescan.
		positions []int
	}
	accepted := make(map[string]*candidate)

	add := func(typ document.EntityType, name, surface string, pos int) {
		key := document.EntityKey(typ, name)
		c, ok := accepted[key]
		if !ok {
			c = &candidate{
				entity:   &document.Entity{Name: name, Type: typ, Significance: document.SignificanceLow},
				surfaces: make(map[string]bool),
			}
			accepted[key] = c
		}
		if surface != "" {
			c.surfaces[surface] = true
		}
		if pos >= 0 {
			c.positions = append(c.positions, pos)
		}
	}

	// Person pass: generous shape match, precision filtering in the names
	// and titles services.
	for _, m := range personPattern.FindAllString(content, -1) {
		ext := titles.Extract(m)
		if ext == nil {
			continue
		}
		typ := document.EntityPerson
		if ext.Role == "organization" {
			typ = document.EntityOrganization
		}
		add(typ, ext.CleanName, m, -1)
	}

	// Organization and location passes scan the closed literal lists.
	for _, org := range names.Organizations() {
		pat := wholeWordPattern(org)
		if loc := pat.FindStringIndex(content); loc != nil {
			add(document.EntityOrganization, content[loc[0]:loc[1]], content[loc[0]:loc[1]], -1)
		}
	}
	for _, place := range knownLocations {
		if wholeWordPattern(place).MatchString(content) {
			add(document.EntityLocation, place, place, -1)
		}
	}

	// Literal-pattern passes keep their original match positions: emails,
	// phones, amounts, and dates do not rescan cleanly as whole words.
	for _, loc := range emailPattern.FindAllStringIndex(content, -1) {
		add(document.EntityEmail, strings.ToLower(content[loc[0]:loc[1]]), "", loc[0])
	}
	for _, loc := range phonePattern.FindAllStringIndex(content, -1) {
		add(document.EntityPhone, content[loc[0]:loc[1]], "", loc[0])
	}
	for _, loc := range amountPattern.FindAllStringIndex(content, -1) {
		add(document.EntityAmount, content[loc[0]:loc[1]], "", loc[0])
	}

	seenDates := make(map[string]bool)
	for _, pat := range datePatterns {
		for _, loc := range pat.FindAllStringIndex(content, -1) {
			literal := content[loc[0]:loc[1]]
			add(document.EntityDate, literal, "", loc[0])
			if iso := ParseDateISO(literal); iso != "" && !seenDates[iso] {
				seenDates[iso] = true
				res.Dates = append(res.Dates, iso)
			}
		}
	}
	sort.Strings(res.Dates)

	// Re-locate every occurrence of each accepted entity and attach context
	// windows with per-mention significance.
	for _, c := range accepted {
		positions := append([]int(nil), c.positions...)
		for surface := range c.surfaces {
			for _, loc := range wholeWordPattern(surface).FindAllStringIndex(content, -1) {
				positions = append(positions, loc[0])
			}
		}
		sort.Ints(positions)
		positions = dedupeInts(positions)
		if len(positions) == 0 {
			continue
		}

		for _, pos := range positions {
			window := contextWindow(content, pos, x.ContextWindow)
			sig := mentionSignificance(window)
			c.entity.Contexts = append(c.entity.Contexts, document.Context{
				Excerpt:      window,
				DocumentID:   docID,
				Position:     pos,
				Significance: sig,
			})
			c.entity.Significance = c.entity.Significance.Max(sig)
		}
		c.entity.Mentions = len(positions)
		res.Entities = append(res.Entities, c.entity)
	}

	sort.Slice(res.Entities, func(i, j int) bool {
		return res.Entities[i].Key() < res.Entities[j].Key()
	})

	res.Passages = x.passages(content, docID)
	return res
}

// mentionSignificance classifies one context window.
func mentionSignificance(window string) document.Significance {
	lower := strings.ToLower(window)
	for _, subject := range highValueSubjects {
		if strings.Contains(lower, subject) {
			return document.SignificanceHigh
		}
	}
	for _, trigger := range mediumTriggers {
		if strings.Contains(lower, trigger) {
			return document.SignificanceMedium
		}
	}
	return document.SignificanceLow
}

// contextWindow slices ±window characters around a position, clamped to the
// content bounds.
func contextWindow(content string, pos, window int) string {
	start := pos - window
	if start < 0 {
		start = 0
	}
	end := pos + window
	if end > len(content) {
		end = len(content)
	}
	return content[start:end]
}

func dedupeInts(sorted []int) []int {
	out := sorted[:0]
	for i, v := range sorted {
		if i == 0 || v != sorted[i-1] {
			out = append(out, v)
		}
	}
	return out
}
