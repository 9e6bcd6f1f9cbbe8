// Copyright Casefile Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package engine is the in-memory document engine: it ingests decoded
// document text, runs entity and passage extraction, maintains the lookup
// indexes, and answers ranked search and browse queries. All state lives for
// the process lifetime; persistence is the caller's concern.
package engine

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"casefile/internal/document"
	"casefile/internal/extract"
	"casefile/internal/index"
	"casefile/internal/observability"
	"casefile/internal/scoring"
)

const componentName = "engine"

// Options tune the engine. Zero values fall back to the defaults below.
type Options struct {
	BatchSize        int
	CacheTTL         time.Duration
	CacheMaxEntries  int
	ContextWindow    int
	MinPassageLength int
	Observer         *observability.StandardObserver
}

const (
	defaultBatchSize       = 100
	defaultCacheTTL        = 5 * time.Minute
	defaultCacheMaxEntries = 100
)

// Engine holds the document store, the merged entity store, the indexes, and
// the query cache. Ingestion is serialized under the write lock; queries take
// the read lock and may run concurrently.
type Engine struct {
	mu        sync.RWMutex
	docs      map[string]*document.Document
	docDates  map[string][]string
	entities  map[string]*document.Entity
	index     *index.Index
	extractor *extract.Extractor
	cache     *queryCache
	batchSize int
	observer  *observability.StandardObserver
}

// New builds an engine from options.
func New(opts Options) *Engine {
	if opts.BatchSize <= 0 {
		opts.BatchSize = defaultBatchSize
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = defaultCacheTTL
	}
	if opts.CacheMaxEntries <= 0 {
		opts.CacheMaxEntries = defaultCacheMaxEntries
	}
	if opts.Observer == nil {
		opts.Observer = observability.NewStandardObserver(observability.ObservabilityOff, io.Discard)
	}

	x := extract.NewExtractor()
	if opts.ContextWindow > 0 {
		x.ContextWindow = opts.ContextWindow
	}
	if opts.MinPassageLength > 0 {
		x.MinPassageLength = opts.MinPassageLength
	}

	return &Engine{
		docs:      make(map[string]*document.Document),
		docDates:  make(map[string][]string),
		entities:  make(map[string]*document.Entity),
		index:     index.New(),
		extractor: x,
		cache:     newQueryCache(opts.CacheTTL, opts.CacheMaxEntries),
		batchSize: opts.BatchSize,
		observer:  opts.Observer,
	}
}

// prepared is the pure, per-document extraction output computed before any
// engine state is touched. Batch ingestion computes these concurrently and
// applies them sequentially.
type prepared struct {
	doc    *document.Document
	result *extract.Result
}

// Ingest processes one document and adds it to the engine. The document id
// derives deterministically from path, so re-ingesting the same path
// overwrites the previous document instead of duplicating it.
func (e *Engine) Ingest(path, content string) (*document.Document, error) {
	p, err := e.prepare(path, content)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.apply(p)
	e.mu.Unlock()
	return p.doc, nil
}

// IngestItem is one unit of batch ingestion: a source path and its
// already-decoded text content.
type IngestItem struct {
	Path    string
	Content string
}

// IngestBatch processes items in fixed-size groups. Extraction runs
// concurrently within a group; index mutation is applied sequentially per
// document. A failing document is logged and skipped, never aborts the batch.
func (e *Engine) IngestBatch(ctx context.Context, items []IngestItem, batchSize int) ([]*document.Document, error) {
	if batchSize <= 0 {
		batchSize = e.batchSize
	}

	done := e.observer.StartTiming(componentName, "ingest_batch", "")
	var out []*document.Document
	for start := 0; start < len(items); start += batchSize {
		if err := ctx.Err(); err != nil {
			done(false, map[string]interface{}{"ingested": len(out)})
			return out, err
		}

		end := start + batchSize
		if end > len(items) {
			end = len(items)
		}
		group := items[start:end]

		results := make([]*prepared, len(group))
		var wg sync.WaitGroup
		for i, item := range group {
			wg.Add(1)
			go func(i int, item IngestItem) {
				defer wg.Done()
				p, err := e.prepare(item.Path, item.Content)
				if err != nil {
					e.observer.LogOperation(observability.StandardObservabilityData{
						Component:    componentName,
						Operation:    "ingest",
						DocumentPath: item.Path,
						Success:      false,
						Error:        err.Error(),
					})
					return
				}
				results[i] = p
			}(i, item)
		}
		wg.Wait()

		e.mu.Lock()
		for _, p := range results {
			if p == nil {
				continue
			}
			e.apply(p)
			out = append(out, p.doc)
		}
		e.mu.Unlock()
	}
	done(true, map[string]interface{}{"ingested": len(out), "total": len(items)})
	return out, nil
}

// prepare runs the stateless part of ingestion: extraction, scoring, and
// metadata detection. It touches no engine state.
func (e *Engine) prepare(path, content string) (*prepared, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("ingest: empty document path")
	}

	id := document.DeriveID(path)
	res := e.extractor.Extract(content, id)

	fileType, meta := detectMetadata(path, content)
	meta.Forensics = scoring.Forensics(content, res.Entities, res.Dates)

	score := scoring.Score(content)
	doc := &document.Document{
		ID:        id,
		Title:     deriveTitle(path, content),
		Content:   content,
		FileType:  fileType,
		Size:      len(content),
		Path:      path,
		Metadata:  meta,
		Entities:  res.Entities,
		Passages:  res.Passages,
		RiskScore: score,
		Rating:    scoring.RatingFor(score),
	}
	return &prepared{doc: doc, result: res}, nil
}

// apply commits one prepared document to engine state. Caller holds the
// write lock.
func (e *Engine) apply(p *prepared) {
	id := p.doc.ID
	if _, exists := e.docs[id]; exists {
		e.retractEntityMentions(id)
	}

	e.docs[id] = p.doc
	e.docDates[id] = p.result.Dates
	e.index.Add(p.doc, p.result.Dates)

	for _, ent := range p.result.Entities {
		key := ent.Key()
		if existing, ok := e.entities[key]; ok {
			existing.Merge(ent)
		} else {
			cp := *ent
			cp.Contexts = append([]document.Context(nil), ent.Contexts...)
			e.entities[key] = &cp
		}
	}
	e.cache.clear()
}

// retractEntityMentions removes a document's contribution from the merged
// entity store ahead of a re-ingest. Significance is monotonic and is never
// lowered, even when the high-significance mention came from the retracted
// document.
func (e *Engine) retractEntityMentions(docID string) {
	for key, ent := range e.entities {
		kept := ent.Contexts[:0]
		removed := 0
		for _, c := range ent.Contexts {
			if c.DocumentID == docID {
				removed++
				continue
			}
			kept = append(kept, c)
		}
		if removed == 0 {
			continue
		}
		ent.Contexts = kept
		ent.Mentions -= removed
		if ent.Mentions <= 0 {
			delete(e.entities, key)
		}
	}
}

// deriveTitle prefers an email subject line, then the first content line,
// then the file name.
func deriveTitle(path, content string) string {
	if subject := headerValue(content, "Subject"); subject != "" {
		return subject
	}
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) > 80 {
			line = line[:80]
		}
		return line
	}
	base := path
	if i := strings.LastIndexAny(base, "/\\"); i >= 0 {
		base = base[i+1:]
	}
	return base
}
