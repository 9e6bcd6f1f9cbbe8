// Copyright Casefile Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"strings"
	"testing"

	"casefile/internal/document"
)

const flightLogSample = `Jeffrey Epstein boarded the jet at Teterboro on January 7, 2002.
Ghislaine Maxwell arranged the flight manifest for the island trip.
Contact the pilot at pilot@hyperionair.example or 561-555-0142.
The settlement of $500,000.00 was wired on 3/15/2005.
Jeffrey Epstein returned to Palm Beach two days later.`

func findEntity(entities []*document.Entity, typ document.EntityType, name string) *document.Entity {
	for _, e := range entities {
		if e.Type == typ && strings.EqualFold(e.Name, name) {
			return e
		}
	}
	return nil
}

func TestExtract_EntityTypes(t *testing.T) {
	res := NewExtractor().Extract(flightLogSample, "doc-1")

	person := findEntity(res.Entities, document.EntityPerson, "Jeffrey Epstein")
	if person == nil {
		t.Fatal("expected person entity Jeffrey Epstein")
	}
	if person.Mentions != 2 {
		t.Errorf("Jeffrey Epstein mentions = %d, want 2", person.Mentions)
	}

	if findEntity(res.Entities, document.EntityPerson, "Ghislaine Maxwell") == nil {
		t.Error("expected person entity Ghislaine Maxwell")
	}
	if findEntity(res.Entities, document.EntityLocation, "Palm Beach") == nil {
		t.Error("expected location entity Palm Beach")
	}
	if findEntity(res.Entities, document.EntityEmail, "pilot@hyperionair.example") == nil {
		t.Error("expected email entity")
	}
	if findEntity(res.Entities, document.EntityPhone, "561-555-0142") == nil {
		t.Error("expected phone entity")
	}
	if findEntity(res.Entities, document.EntityAmount, "$500,000.00") == nil {
		t.Error("expected amount entity")
	}
}

func TestExtract_Dates(t *testing.T) {
	res := NewExtractor().Extract(flightLogSample, "doc-1")
	want := []string{"2002-01-07", "2005-03-15"}
	if len(res.Dates) != len(want) {
		t.Fatalf("Dates = %v, want %v", res.Dates, want)
	}
	for i := range want {
		if res.Dates[i] != want[i] {
			t.Errorf("Dates[%d] = %q, want %q", i, res.Dates[i], want[i])
		}
	}
}

func TestExtract_MentionSignificance(t *testing.T) {
	res := NewExtractor().Extract(flightLogSample, "doc-1")

	person := findEntity(res.Entities, document.EntityPerson, "Jeffrey Epstein")
	if person == nil {
		t.Fatal("expected person entity")
	}
	if person.Significance != document.SignificanceHigh {
		t.Errorf("significance = %q, want high (subject name in own window)", person.Significance)
	}
	if len(person.Contexts) != person.Mentions {
		t.Errorf("contexts = %d, mentions = %d; want equal", len(person.Contexts), person.Mentions)
	}
	for _, ctx := range person.Contexts {
		if ctx.DocumentID != "doc-1" {
			t.Errorf("context document id = %q, want doc-1", ctx.DocumentID)
		}
		if ctx.Excerpt == "" {
			t.Error("context excerpt must not be empty")
		}
	}
}

func TestExtract_RejectsInvalidNames(t *testing.T) {
	content := "Flight Manifest Pages were filed. The International Jet Services invoice arrived. Thank You."
	res := NewExtractor().Extract(content, "doc-2")
	for _, e := range res.Entities {
		if e.Type == document.EntityPerson {
			t.Errorf("no person entities expected, got %q", e.Name)
		}
	}
}

func TestExtract_ConsolidatesVariants(t *testing.T) {
	content := "Jeff Epstein visited Paris. Jeffrey Epstein later returned home to dinner."
	res := NewExtractor().Extract(content, "doc-3")

	person := findEntity(res.Entities, document.EntityPerson, "Jeffrey Epstein")
	if person == nil {
		t.Fatal("expected consolidated person entity")
	}
	if person.Mentions != 2 {
		t.Errorf("mentions = %d, want 2 (both variants folded)", person.Mentions)
	}
	if findEntity(res.Entities, document.EntityPerson, "Jeff Epstein") != nil {
		t.Error("variant surface must not appear as its own entity")
	}
}

func TestExtract_Empty(t *testing.T) {
	res := NewExtractor().Extract("   ", "doc-4")
	if len(res.Entities) != 0 || len(res.Passages) != 0 || len(res.Dates) != 0 {
		t.Errorf("expected empty result, got %+v", res)
	}
}

func TestParseDateISO(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"January 7, 2002", "2002-01-07"},
		{"March 15 2005", "2005-03-15"},
		{"3/15/2005", "2005-03-15"},
		{"2006-11-30", "2006-11-30"},
		{"not a date", ""},
	}
	for _, tc := range cases {
		if got := ParseDateISO(tc.in); got != tc.want {
			t.Errorf("ParseDateISO(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
