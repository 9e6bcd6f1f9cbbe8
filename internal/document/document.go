// Copyright Casefile Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

// EntityType classifies what kind of named thing an entity is.
type EntityType string

const (
	EntityPerson       EntityType = "person"
	EntityOrganization EntityType = "organization"
	EntityLocation     EntityType = "location"
	EntityEmail        EntityType = "email"
	EntityPhone        EntityType = "phone"
	EntityDate         EntityType = "date"
	EntityAmount       EntityType = "amount"
)

// Significance buckets an entity mention or passage by investigative interest.
// The ordering is total: SignificanceHigh dominates SignificanceMedium
// dominates SignificanceLow.
type Significance string

const (
	SignificanceLow    Significance = "low"
	SignificanceMedium Significance = "medium"
	SignificanceHigh   Significance = "high"
)

// rank returns the ordinal position used for merge comparisons.
func (s Significance) rank() int {
	switch s {
	case SignificanceHigh:
		return 2
	case SignificanceMedium:
		return 1
	default:
		return 0
	}
}

// Max returns the dominant of two significance values. Merging entity
// contexts across documents must never lower an entity's significance.
func (s Significance) Max(other Significance) Significance {
	if other.rank() > s.rank() {
		return other
	}
	return s
}

// Context records a single mention of an entity inside a document: the
// surrounding text window, where it was found, and how significant that
// particular mention looked.
type Context struct {
	Excerpt      string       `json:"excerpt"`
	DocumentID   string       `json:"document_id"`
	Position     int          `json:"position"`
	Significance Significance `json:"significance"`
}

// Entity is a named thing recognized in document text. An Entity accumulates
// state as the same canonical name is mentioned across documents: the mention
// count grows, contexts append, and significance only ever ratchets upward.
type Entity struct {
	Name         string       `json:"name"`
	Type         EntityType   `json:"type"`
	Mentions     int          `json:"mentions"`
	Contexts     []Context    `json:"contexts,omitempty"`
	Significance Significance `json:"significance"`

	// Related holds identifiers of associated entities. Reserved: the core
	// engine computes co-mentions on demand instead of populating this.
	Related []string `json:"related,omitempty"`
}

// Key returns the index key for an entity: type-qualified lowercase name.
func (e *Entity) Key() string {
	return EntityKey(e.Type, e.Name)
}

// EntityKey builds the canonical "type:lowercased name" index key.
func EntityKey(t EntityType, name string) string {
	return string(t) + ":" + strings.ToLower(name)
}

// Merge folds another observation of the same entity into this one.
func (e *Entity) Merge(other *Entity) {
	e.Mentions += other.Mentions
	e.Contexts = append(e.Contexts, other.Contexts...)
	e.Significance = e.Significance.Max(other.Significance)
}

// Passage is a sentence-level excerpt with its own derived signals. Passages
// are immutable once created and derive solely from their own document.
type Passage struct {
	DocumentID   string       `json:"document_id"`
	Content      string       `json:"content"`
	Offset       int          `json:"offset"`
	Entities     []string     `json:"entities,omitempty"`
	Keywords     []string     `json:"keywords,omitempty"`
	RiskScore    int          `json:"risk_score"`
	Significance Significance `json:"significance"`

	// Two sentences either side of the passage, for display context.
	ContextBefore string `json:"context_before,omitempty"`
	ContextAfter  string `json:"context_after,omitempty"`
}

// Rating is the five-band ordinal classification of a document risk score.
type Rating struct {
	Band        int    `json:"band"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Document is one ingested source document with everything derived from it.
type Document struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Content  string    `json:"-"`
	FileType string    `json:"file_type"`
	Size     int       `json:"size"`
	Path     string    `json:"path"`
	Metadata Metadata  `json:"metadata"`
	Entities []*Entity `json:"entities,omitempty"`
	Passages []Passage `json:"passages,omitempty"`

	RiskScore int    `json:"risk_score"`
	Rating    Rating `json:"rating"`
}

// DeriveID produces the stable document identifier for a source path.
// Re-ingesting the same path yields the same id, which is what makes
// re-processing idempotent at the document-store level.
func DeriveID(path string) string {
	sum := sha1.Sum([]byte(path))
	return "doc-" + hex.EncodeToString(sum[:8])
}
