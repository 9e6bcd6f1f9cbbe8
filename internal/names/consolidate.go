// Copyright Casefile Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package names

import (
	"sort"
	"strings"
)

// canonicalOrder is the deterministic scan order over the variant table.
var canonicalOrder = sortedCanonicals()

func sortedCanonicals() []string {
	keys := make([]string, 0, len(variantTable))
	for canonical := range variantTable {
		keys = append(keys, canonical)
	}
	sort.Strings(keys)
	return keys
}

// Consolidate folds a recognized name variant to its canonical spelling.
// Matching is case-insensitive containment in either direction, so both
// "Jeffrey E. Epstein" (candidate contains a variant) and "Epstein"
// (a variant contains the candidate) fold to "Jeffrey Epstein". Unrecognized
// names pass through unchanged. Consolidate is idempotent: every canonical
// name is among its own variants.
func Consolidate(candidate string) string {
	name := strings.TrimSpace(candidate)
	if name == "" {
		return candidate
	}
	lower := strings.ToLower(name)

	for _, canonical := range canonicalOrder {
		if strings.EqualFold(name, canonical) {
			return canonical
		}
	}

	for _, canonical := range canonicalOrder {
		for _, variant := range variantTable[canonical] {
			if strings.Contains(lower, variant) || strings.Contains(variant, lower) {
				return canonical
			}
		}
	}

	return name
}

// Variants returns the known lowercase variants for a canonical name, or nil
// when the name is not in the table. Exposed for tests and for callers that
// surface the variant table in diagnostics.
func Variants(canonical string) []string {
	vs, ok := variantTable[canonical]
	if !ok {
		return nil
	}
	out := make([]string, len(vs))
	copy(out, vs)
	return out
}
