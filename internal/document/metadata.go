// Copyright Casefile Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package document

// Metadata is the common envelope for per-document metadata. Exactly the
// variant record matching the detected file type is populated; the rest stay
// nil. Forensic sub-records are filled in by the scoring engine at ingestion.
type Metadata struct {
	Source          string   `json:"source,omitempty"`
	Confidentiality string   `json:"confidentiality,omitempty"`
	Categories      []string `json:"categories,omitempty"`

	Email  *EmailMeta  `json:"email,omitempty"`
	Flight *FlightMeta `json:"flight,omitempty"`
	Filing *FilingMeta `json:"filing,omitempty"`

	// PDF structural attributes when the source was a PDF.
	PageCount int    `json:"page_count,omitempty"`
	Producer  string `json:"producer,omitempty"`
	Encrypted bool   `json:"encrypted,omitempty"`

	// EXIF attributes when the source was a scanned image.
	Exif map[string]string `json:"exif,omitempty"`

	Forensics *Forensics `json:"forensics,omitempty"`
}

// EmailMeta holds fields specific to email correspondence documents.
type EmailMeta struct {
	From    string `json:"from,omitempty"`
	To      string `json:"to,omitempty"`
	Subject string `json:"subject,omitempty"`
	Date    string `json:"date,omitempty"`
}

// FlightMeta holds fields specific to flight-log documents.
type FlightMeta struct {
	TailNumber string   `json:"tail_number,omitempty"`
	Legs       int      `json:"legs,omitempty"`
	Airports   []string `json:"airports,omitempty"`
}

// FilingMeta holds fields specific to legal filings.
type FilingMeta struct {
	CaseNumber string `json:"case_number,omitempty"`
	Court      string `json:"court,omitempty"`
	FiledUnder string `json:"filed_under,omitempty"`
}

// Forensics groups the derived analytical sub-records. These are independent
// additive signals and are never blended into the primary risk score.
type Forensics struct {
	Structural StructuralSignals `json:"structural"`
	Linguistic LinguisticSignals `json:"linguistic"`
	Temporal   TemporalSignals   `json:"temporal"`
	Network    NetworkSignals    `json:"network"`
}

// StructuralSignals describe the shape of the text.
type StructuralSignals struct {
	WordCount         int     `json:"word_count"`
	SentenceCount     int     `json:"sentence_count"`
	ParagraphCount    int     `json:"paragraph_count"`
	AvgSentenceLength float64 `json:"avg_sentence_length"`
}

// LinguisticSignals carry readability and sentiment scores.
type LinguisticSignals struct {
	Readability    float64 `json:"readability"`
	Sentiment      float64 `json:"sentiment"`
	SentimentLabel string  `json:"sentiment_label"`
}

// TemporalSignals collect calendar references found in the text.
type TemporalSignals struct {
	Dates    []string `json:"dates,omitempty"`
	Earliest string   `json:"earliest,omitempty"`
	Latest   string   `json:"latest,omitempty"`
}

// NetworkSignals describe the entity graph footprint of one document.
type NetworkSignals struct {
	EntityCount      int     `json:"entity_count"`
	Density          float64 `json:"density"`
	HighSignificance int     `json:"high_significance"`
	CoOccurrenceRisk int     `json:"co_occurrence_risk"`
}
