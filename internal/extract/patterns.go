// Copyright Casefile Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"regexp"
	"strings"
	"time"
)

// Candidate person names: two to five capitalized tokens, allowing
// apostrophes, hyphens, initials, nobiliary particles, and generational
// suffixes. The names service does the real filtering; this pass only has to
// be generous enough not to miss anyone.
var personPattern = regexp.MustCompile(`\b(?:[A-Z][a-z]+\.?\s+)?[A-Z][a-zA-Z'\-]+(?:\s+(?:[A-Z]\.|[A-Z][a-zA-Z'\-]+|de|del|della|di|du|van|von|bin|al|II|III|IV))+\b`)

var emailPattern = regexp.MustCompile(`\b[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}\b`)

var phonePattern = regexp.MustCompile(`\b(?:\+?1[-.\s]?)?(?:\(\d{3}\)\s?|\d{3}[-.\s])\d{3}[-.\s]\d{4}\b`)

var amountPattern = regexp.MustCompile(`\$\d[\d,]*(?:\.\d{2})?(?:\s?(?:thousand|million|billion))?`)

// Date literals in the three shapes the corpus actually contains.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4}\b`),
	regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`),
	regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
}

var dateLayouts = []string{
	"January 2, 2006",
	"January 2 2006",
	"1/2/2006",
	"1/2/06",
	"2006-01-02",
}

// knownLocations is the closed location literal list scanned against content.
var knownLocations = []string{
	"Palm Beach",
	"New York",
	"Manhattan",
	"New Mexico",
	"Santa Fe",
	"Little St. James",
	"Great St. James",
	"St. Thomas",
	"Virgin Islands",
	"Paris",
	"London",
	"Palm Springs",
	"Teterboro",
	"Columbus",
	"Miami",
	"Washington",
	"Mar-a-Lago",
	"Zorro Ranch",
	"El Brillo Way",
}

// ParseDateISO normalizes a matched date literal to an ISO calendar date.
// Returns "" when no layout fits.
func ParseDateISO(literal string) string {
	cleaned := strings.TrimSpace(literal)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

// wholeWordPattern compiles a case-insensitive whole-word matcher for a
// literal, used to re-locate accepted entities and scan literal lists.
func wholeWordPattern(literal string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(literal) + `\b`)
}
