// Copyright Casefile Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package titles

import "testing"

func TestExtract_TitledNames(t *testing.T) {
	cases := []struct {
		input     string
		cleanName string
		title     string
		role      string
	}{
		{"President Bill Clinton", "Bill Clinton", "President", "political"},
		{"Senator Marcus Delacroix", "Marcus Delacroix", "Senator", "political"},
		{"Professor Alan Dershowitz", "Alan Dershowitz", "Professor", "academic"},
		{"Dr. Abigail Hartwell", "Abigail Hartwell", "Dr.", "academic"},
		{"Judge Timothy Okafor", "Timothy Okafor", "Judge", "legal"},
		{"Mr. Jeffrey Epstein", "Jeffrey Epstein", "Mr", "honorific"},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got := Extract(tc.input)
			if got == nil {
				t.Fatalf("Extract(%q) returned nil", tc.input)
			}
			if got.CleanName != tc.cleanName {
				t.Errorf("CleanName = %q, want %q", got.CleanName, tc.cleanName)
			}
			if got.Title != tc.title {
				t.Errorf("Title = %q, want %q", got.Title, tc.title)
			}
			if got.Role != tc.role {
				t.Errorf("Role = %q, want %q", got.Role, tc.role)
			}
			if got.Confidence != patternConfidence {
				t.Errorf("Confidence = %v, want %v", got.Confidence, patternConfidence)
			}
		})
	}
}

func TestExtract_TitleCannotRescueInvalidName(t *testing.T) {
	cases := []string{
		"President Of The Board",
		"Dr. Said He",
		"Judge Flew To",
		"Senator And",
	}
	for _, input := range cases {
		if got := Extract(input); got != nil {
			t.Errorf("Extract(%q) = %+v, want nil", input, got)
		}
	}
}

func TestExtract_DirectValidation(t *testing.T) {
	got := Extract("Virginia Roberts")
	if got == nil {
		t.Fatal("expected direct person match")
	}
	if got.CleanName != "Virginia Giuffre" {
		t.Errorf("CleanName = %q, want consolidated %q", got.CleanName, "Virginia Giuffre")
	}
	if got.Title != "" || got.Confidence != directConfidence {
		t.Errorf("direct match should carry no title and confidence %v, got %+v", directConfidence, got)
	}

	org := Extract("The Department of Justice")
	if org == nil {
		t.Fatal("expected organization match")
	}
	if org.Role != "organization" || org.Confidence != directConfidence {
		t.Errorf("unexpected organization extraction: %+v", org)
	}
}

func TestExtract_Nothing(t *testing.T) {
	cases := []string{"", "   ", "Flight Manifest", "International Jet Services"}
	for _, input := range cases {
		if got := Extract(input); got != nil {
			t.Errorf("Extract(%q) = %+v, want nil", input, got)
		}
	}
}
