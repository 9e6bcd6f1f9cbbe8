// Copyright Casefile Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"strings"
	"testing"
)

func TestDeriveID_StableAndDistinct(t *testing.T) {
	a := DeriveID("/corpus/flights/log1.txt")
	b := DeriveID("/corpus/flights/log1.txt")
	c := DeriveID("/corpus/flights/log2.txt")

	if a != b {
		t.Errorf("same path produced different ids: %s vs %s", a, b)
	}
	if a == c {
		t.Errorf("different paths produced the same id: %s", a)
	}
	if !strings.HasPrefix(a, "doc-") {
		t.Errorf("id missing doc- prefix: %s", a)
	}
}

func TestEntityKey(t *testing.T) {
	ent := &Entity{Name: "Jeffrey Epstein", Type: EntityPerson}
	if got := ent.Key(); got != "person:jeffrey epstein" {
		t.Errorf("Key() = %q", got)
	}
	if EntityKey(EntityOrganization, "The Firm") != "organization:the firm" {
		t.Errorf("EntityKey lowercasing broken")
	}
}
