// Copyright Casefile Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package names classifies candidate name strings pulled out of document
// text and folds known spelling variants to canonical identities.
//
// Named-entity extraction from legal and journalistic text produces abundant
// false positives: any two capitalized words mid-clause look like a name.
// The validator here is a precision-first filter built as a chain of
// rejection rules over hand-curated word tables (data.go); an ambiguous
// candidate is rejected rather than admitted into the entity graph.
package names

import (
	"sort"
	"strings"
	"unicode"
)

const maxNameLength = 50

// IsValidPersonName reports whether a capitalized phrase plausibly names a
// real person. The rules run cheapest-first; the first failing rule rejects.
func IsValidPersonName(candidate string) bool {
	name := strings.TrimSpace(candidate)
	if len(name) < 3 || len(name) > maxNameLength {
		return false
	}

	tokens := strings.Fields(name)
	if len(tokens) < 2 || len(tokens) > 5 {
		return false
	}

	lower := make([]string, len(tokens))
	for i, tok := range tokens {
		lower[i] = strings.ToLower(strings.Trim(tok, ".,"))
	}

	// Phrases containing "with" are clause fragments ("Dinner With Friends").
	for _, tok := range lower {
		if tok == "with" {
			return false
		}
	}

	// "New York", "New Mexico", "New Evidence" are never a person.
	if len(tokens) == 2 && lower[0] == "new" {
		return false
	}

	if articleSet[lower[0]] {
		return false
	}

	if politePhraseSet[strings.ToLower(name)] {
		return false
	}

	// Attribution fragment: "Epstein Said", "Maxwell Stated".
	if reportingVerbSet[lower[len(lower)-1]] {
		return false
	}

	// Modal followed by an infinitive reads as a clause ("May Choose").
	for i := 0; i+1 < len(lower); i++ {
		if modalVerbSet[lower[i]] && verbSet[lower[i+1]] {
			return false
		}
	}

	// Title tokens are allowed to lead a name but demand a genuine name
	// continuation: at least two more tokens, and the second of them must
	// not itself be filler ("President Of The", "Judge Said He").
	if titleTokenSet[lower[0]] {
		if len(tokens) < 3 {
			return false
		}
		second := lower[2]
		if prepositionSet[second] || pronounSet[second] || verbSet[second] || genericNounSet[second] {
			return false
		}
	} else if isBadToken(lower[0]) {
		return false
	}

	if isBadToken(lower[len(lower)-1]) {
		return false
	}

	// More than one conjunction means a list, not a name.
	conjunctions := 0
	for _, tok := range lower {
		if conjunctionSet[tok] {
			conjunctions++
		}
	}
	if conjunctions > 1 {
		return false
	}

	// Preposition straight into an article is prose ("Flight Of The ...").
	for i := 0; i+1 < len(lower); i++ {
		if prepositionSet[lower[i]] && articleSet[lower[i+1]] {
			return false
		}
	}

	// Longer candidates get one bad-category token of slack (a nobiliary
	// "van"/"de" or an ambiguous middle word); two or more rejects.
	if len(tokens) >= 3 {
		bad := 0
		for _, tok := range lower {
			if isBadToken(tok) {
				bad++
			}
		}
		if bad > 1 {
			return false
		}
	}

	for _, tok := range tokens {
		if !isNameShaped(tok) {
			return false
		}
	}

	return true
}

// IsValidOrganizationName reports whether the candidate exactly matches a
// known organization, optionally with a "The " prefix. No substring matching:
// the closed list is conservative on purpose.
func IsValidOrganizationName(candidate string) bool {
	name := strings.ToLower(strings.TrimSpace(candidate))
	if name == "" {
		return false
	}
	if organizationSet[name] {
		return true
	}
	trimmed := strings.TrimPrefix(name, "the ")
	return trimmed != name && organizationSet[trimmed]
}

// Organizations returns the closed organization list in sorted order, for
// callers that scan content against the known-organization literals.
func Organizations() []string {
	orgs := make([]string, 0, len(organizationSet))
	for org := range organizationSet {
		orgs = append(orgs, org)
	}
	sort.Strings(orgs)
	return orgs
}

// isBadToken reports whether a lowercase token falls in any rejection
// category for a leading or trailing position.
func isBadToken(tok string) bool {
	return verbSet[tok] || prepositionSet[tok] || pronounSet[tok] ||
		adverbSet[tok] || conjunctionSet[tok] || genericNounSet[tok]
}

// isNameShaped reports whether a token looks like a name component: a
// capitalized word (apostrophes, hyphens, and trailing periods included), a
// Roman-numeral generational suffix, or a lowercase nobiliary particle.
func isNameShaped(tok string) bool {
	if romanNumeralSet[tok] {
		return true
	}
	if nobiliaryParticleSet[tok] {
		return true
	}
	runes := []rune(tok)
	if !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if !unicode.IsLetter(r) && r != '\'' && r != '-' && r != '.' && r != ',' {
			return false
		}
	}
	return true
}
