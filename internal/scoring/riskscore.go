// Copyright Casefile Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package scoring computes the keyword-weighted risk score that surfaces
// high-interest documents, the five-band rating it maps to, and the
// independent forensic sub-scores (readability, sentiment, network density).
package scoring

import (
	"regexp"
	"sort"
	"strings"
	"sync"

	"casefile/internal/document"
)

// riskWeights is the fixed keyword→weight table. Counting is whole-word and
// case-insensitive; multi-word subjects are matched as phrases.
var riskWeights = map[string]int{
	"trafficking":  10,
	"criminal":     8,
	"arrest":       8,
	"arrested":     8,
	"indictment":   8,
	"indicted":     8,
	"conspiracy":   7,
	"abuse":        7,
	"assault":      7,
	"charges":      6,
	"victim":       6,
	"victims":      6,
	"underage":     6,
	"minor":        5,
	"minors":       5,
	"epstein":      5,
	"maxwell":      5,
	"guilty":       5,
	"plea":         5,
	"fbi":          5,
	"subpoena":     5,
	"investigation": 5,
	"massage":      4,
	"deposition":   4,
	"testimony":    4,
	"lawsuit":      4,
	"prosecutor":   4,
	"grand jury":   4,
	"settlement":   3,
	"sealed":       3,
	"flight":       3,
	"island":       3,
	"prince":       3,
	"recruited":    3,
	"jet":          2,
	"president":    2,
	"senator":      2,
	"governor":     2,
	"billionaire":  2,
	"mansion":      2,
	"ranch":        2,
}

// ratingBands is ordered highest threshold first; the first band whose
// threshold the score meets applies. Thresholds are non-overlapping by
// construction.
var ratingBands = []document.Rating{
	{Band: 5, Label: "\U0001F6A9\U0001F6A9\U0001F6A9\U0001F6A9\U0001F6A9", Description: "Critical: dense criminal-activity indicators"},
	{Band: 4, Label: "\U0001F6A9\U0001F6A9\U0001F6A9\U0001F6A9", Description: "High: repeated investigative subject matter"},
	{Band: 3, Label: "\U0001F6A9\U0001F6A9\U0001F6A9", Description: "Elevated: multiple risk keywords present"},
	{Band: 2, Label: "\U0001F6A9\U0001F6A9", Description: "Moderate: several relevant references"},
	{Band: 1, Label: "\U0001F6A9", Description: "Minor mentions"},
}

var ratingThresholds = []int{50, 35, 20, 10, 0}

var (
	keywordPatterns map[string]*regexp.Regexp
	compileOnce     sync.Once
)

// compilePatterns builds one whole-word case-insensitive matcher per keyword.
func compilePatterns() {
	keywordPatterns = make(map[string]*regexp.Regexp, len(riskWeights))
	for keyword := range riskWeights {
		keywordPatterns[keyword] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
	}
}

// Score computes the 0-100 risk score for a block of text: weight times
// occurrence count summed over all keywords, a step bonus for breadth of
// distinct hits (+10 at 5, +20 at 10), capped at 100.
func Score(text string) int {
	compileOnce.Do(compilePatterns)
	if text == "" {
		return 0
	}

	total := 0
	distinct := 0
	for keyword, weight := range riskWeights {
		n := len(keywordPatterns[keyword].FindAllStringIndex(text, -1))
		if n == 0 {
			continue
		}
		distinct++
		total += weight * n
	}

	if distinct >= 10 {
		total += 20
	} else if distinct >= 5 {
		total += 10
	}

	if total > 100 {
		total = 100
	}
	return total
}

// Keywords returns the risk keywords present in text, sorted, whole-word
// matched. The passage extractor records these per sentence.
func Keywords(text string) []string {
	compileOnce.Do(compilePatterns)
	var found []string
	for keyword := range riskWeights {
		if keywordPatterns[keyword].MatchString(text) {
			found = append(found, keyword)
		}
	}
	sort.Strings(found)
	return found
}

// KeywordHits counts total risk-keyword occurrences in text, every keyword
// counted as many times as it appears. Passage significance bucketing runs
// on this count rather than on the weighted document score.
func KeywordHits(text string) int {
	compileOnce.Do(compilePatterns)
	hits := 0
	for keyword := range riskWeights {
		hits += len(keywordPatterns[keyword].FindAllStringIndex(text, -1))
	}
	return hits
}

// Weight exposes the configured weight for a keyword (0 when unknown).
func Weight(keyword string) int {
	return riskWeights[strings.ToLower(keyword)]
}

// RatingFor maps a risk score to its ordinal band.
func RatingFor(score int) document.Rating {
	for i, threshold := range ratingThresholds {
		if score >= threshold {
			return ratingBands[i]
		}
	}
	return ratingBands[len(ratingBands)-1]
}
