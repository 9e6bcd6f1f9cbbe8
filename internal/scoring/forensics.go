// Copyright Casefile Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package scoring

import (
	"regexp"
	"strings"

	"casefile/internal/document"
)

// Forensic sub-scores are independent additive signals. None of them feed
// the primary risk score.

var sentenceEnd = regexp.MustCompile(`[.!?]+`)

var positiveWords = map[string]bool{
	"agreement": true, "approved": true, "assist": true, "cleared": true,
	"cooperation": true, "friendly": true, "generous": true, "good": true,
	"grateful": true, "great": true, "happy": true, "helpful": true,
	"honest": true, "lawful": true, "pleasant": true, "positive": true,
	"proper": true, "resolved": true, "respected": true, "safe": true,
	"support": true, "thank": true, "trusted": true, "welcome": true,
}

var negativeWords = map[string]bool{
	"abuse": true, "accused": true, "afraid": true, "arrested": true,
	"assault": true, "coerced": true, "concealed": true, "corrupt": true,
	"crime": true, "criminal": true, "danger": true, "dead": true,
	"denied": true, "destroyed": true, "exploited": true, "fear": true,
	"forced": true, "fraud": true, "guilty": true, "harm": true,
	"illegal": true, "lied": true, "threatened": true, "trafficking": true,
	"victim": true, "violated": true, "violence": true, "wrong": true,
}

const sentimentDeadband = 0.1

// Readability computes an approximate Flesch–Kincaid reading-ease score.
// The sentence count is floored at 1 so fragmentary documents cannot divide
// by zero.
func Readability(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}
	sentences := len(sentenceEnd.FindAllString(text, -1))
	if sentences < 1 {
		sentences = 1
	}

	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}

	wordCount := float64(len(words))
	score := 206.835 - 1.015*(wordCount/float64(sentences)) - 84.6*(float64(syllables)/wordCount)
	return score
}

// countSyllables approximates syllables as vowel groups, minimum one.
func countSyllables(word string) int {
	w := strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range w {
		isVowel := strings.ContainsRune("aeiouy", r)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}
	if strings.HasSuffix(w, "e") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

// Sentiment computes a bounded keyword-difference ratio in [-1, 1]. Scores
// inside the ±0.1 deadband are neutral.
func Sentiment(text string) (score float64, label string) {
	positives, negatives := 0, 0
	for _, raw := range strings.Fields(strings.ToLower(text)) {
		w := strings.Trim(raw, ".,;:!?\"'()[]")
		if positiveWords[w] {
			positives++
		}
		if negativeWords[w] {
			negatives++
		}
	}

	total := positives + negatives
	if total == 0 {
		return 0, "neutral"
	}

	score = float64(positives-negatives) / float64(total)
	switch {
	case score > sentimentDeadband:
		label = "positive"
	case score < -sentimentDeadband:
		label = "negative"
	default:
		label = "neutral"
	}
	return score, label
}

// NetworkDensity is the entity count normalized per 1,000 words of text.
func NetworkDensity(entityCount, wordCount int) float64 {
	if wordCount == 0 {
		return 0
	}
	return float64(entityCount) / float64(wordCount) * 1000
}

// CoOccurrenceRisk counts the unordered pairs among high-significance
// entities: n·(n−1)/2.
func CoOccurrenceRisk(highSignificance int) int {
	return highSignificance * (highSignificance - 1) / 2
}

// Forensics assembles the full forensic record for a document's content and
// its extracted entities.
func Forensics(content string, entities []*document.Entity, dates []string) *document.Forensics {
	words := strings.Fields(content)
	sentences := len(sentenceEnd.FindAllString(content, -1))
	if sentences < 1 {
		sentences = 1
	}
	paragraphs := countParagraphs(content)

	avgSentence := 0.0
	if len(words) > 0 {
		avgSentence = float64(len(words)) / float64(sentences)
	}

	sentiment, sentimentLabel := Sentiment(content)

	high := 0
	for _, e := range entities {
		if e.Significance == document.SignificanceHigh {
			high++
		}
	}

	f := &document.Forensics{
		Structural: document.StructuralSignals{
			WordCount:         len(words),
			SentenceCount:     sentences,
			ParagraphCount:    paragraphs,
			AvgSentenceLength: avgSentence,
		},
		Linguistic: document.LinguisticSignals{
			Readability:    Readability(content),
			Sentiment:      sentiment,
			SentimentLabel: sentimentLabel,
		},
		Temporal: document.TemporalSignals{
			Dates: dates,
		},
		Network: document.NetworkSignals{
			EntityCount:      len(entities),
			Density:          NetworkDensity(len(entities), len(words)),
			HighSignificance: high,
			CoOccurrenceRisk: CoOccurrenceRisk(high),
		},
	}
	if len(dates) > 0 {
		f.Temporal.Earliest = dates[0]
		f.Temporal.Latest = dates[len(dates)-1]
	}
	return f
}

func countParagraphs(content string) int {
	count := 0
	for _, block := range strings.Split(content, "\n\n") {
		if strings.TrimSpace(block) != "" {
			count++
		}
	}
	if count < 1 && strings.TrimSpace(content) != "" {
		count = 1
	}
	return count
}
