// Copyright Casefile Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package titles strips honorific and role prefixes from candidate names.
// The residual name is always re-validated through the names service: a
// title can describe a name, it can never rescue an invalid one.
package titles

import (
	"regexp"
	"strings"

	"casefile/internal/names"
)

// Extraction is the result of pulling a title off a candidate name.
type Extraction struct {
	CleanName  string
	Title      string
	Role       string
	Confidence float64
}

// TitlePattern pairs a compiled prefix regex with the role family it implies.
type TitlePattern struct {
	Pattern *regexp.Regexp
	Role    string
}

const (
	patternConfidence = 0.95
	directConfidence  = 1.0
)

// patterns are tried in order; first match wins. The ordering runs from the
// most specific multi-word titles to generic honorifics.
var patterns = []TitlePattern{
	{regexp.MustCompile(`^(?:Former\s+)?(President|Vice President|Senator|Governor|Congressman|Congresswoman|Secretary of State|Secretary|Ambassador|Attorney General|Representative)\s+`), "political"},
	{regexp.MustCompile(`^(Professor|Prof\.?|Dr\.?|Dean|Provost)\s+`), "academic"},
	{regexp.MustCompile(`^(Prince|Princess|King|Queen|Duke|Duchess|Lord|Lady|Sir|Dame|Baron|Baroness|Count|Countess)\s+`), "royal"},
	{regexp.MustCompile(`^(CEO|CFO|COO|Chairman|Chairwoman|Chair|Director|Executive|Founder|Partner)\s+`), "business"},
	{regexp.MustCompile(`^(General|Admiral|Colonel|Major|Captain|Commander|Lieutenant|Sergeant)\s+`), "military"},
	{regexp.MustCompile(`^(Judge|Justice|Chief Justice|Magistrate|Prosecutor|Detective|Sheriff|Deputy|Agent|Officer)\s+`), "legal"},
	{regexp.MustCompile(`^(Mr|Mrs|Ms|Miss|Mx)\.?\s+`), "honorific"},
}

// Extract pulls a recognized title off fullName and validates what remains.
// It returns nil when neither the residual nor the full candidate survives
// name validation.
func Extract(fullName string) *Extraction {
	candidate := strings.TrimSpace(fullName)
	if candidate == "" {
		return nil
	}

	for _, tp := range patterns {
		loc := tp.Pattern.FindStringSubmatchIndex(candidate)
		if loc == nil {
			continue
		}
		title := candidate[loc[2]:loc[3]]
		residual := strings.TrimSpace(candidate[loc[1]:])
		if !names.IsValidPersonName(residual) {
			// The title matched but what follows is not a name; the whole
			// candidate is a false positive, not a titled person.
			return nil
		}
		return &Extraction{
			CleanName:  names.Consolidate(residual),
			Title:      title,
			Role:       tp.Role,
			Confidence: patternConfidence,
		}
	}

	if names.IsValidPersonName(candidate) {
		return &Extraction{
			CleanName:  names.Consolidate(candidate),
			Confidence: directConfidence,
		}
	}
	if names.IsValidOrganizationName(candidate) {
		return &Extraction{
			CleanName:  candidate,
			Role:       "organization",
			Confidence: directConfidence,
		}
	}
	return nil
}
