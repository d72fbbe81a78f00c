// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

package extract

import (
	"sort"
	"strings"
)

// MaxDepth bounds recursion into nested objects and arrays.
const MaxDepth = 64

// Candidate is the best URL seen so far for one canonical key.
type Candidate struct {
	Key   string
	URL   string
	Score int
}

// Candidates maps canonical keys to their best URL, remembering the order in
// which keys were first seen.
type Candidates struct {
	order []string
	byKey map[string]Candidate
}

func newCandidates() *Candidates {
	return &Candidates{byKey: make(map[string]Candidate)}
}

// offer records url under its canonical key. A later URL with an equal or
// higher score replaces the stored one; the key keeps its first-seen position.
func (c *Candidates) offer(rawURL string) {
	key := CanonicalKey(rawURL)
	cand := Candidate{Key: key, URL: rawURL, Score: Score(rawURL)}

	existing, ok := c.byKey[key]
	if !ok {
		c.order = append(c.order, key)
		c.byKey[key] = cand
		return
	}
	if cand.Score >= existing.Score {
		c.byKey[key] = cand
	}
}

// Len returns the number of distinct canonical keys.
func (c *Candidates) Len() int {
	return len(c.order)
}

// Get returns the candidate stored under key.
func (c *Candidates) Get(key string) (Candidate, bool) {
	cand, ok := c.byKey[key]
	return cand, ok
}

// InOrder returns candidates in first-seen key order.
func (c *Candidates) InOrder() []Candidate {
	out := make([]Candidate, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.byKey[key])
	}
	return out
}

// Ranked returns candidates by descending score. Equal scores keep
// first-seen order.
func (c *Candidates) Ranked() []Candidate {
	out := c.InOrder()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// URLs returns the ranked URLs.
func (c *Candidates) URLs() []string {
	ranked := c.Ranked()
	out := make([]string, len(ranked))
	for i, cand := range ranked {
		out[i] = cand.URL
	}
	return out
}

// Extract walks record and collects every image URL it contains.
//
// record is expected to be a decoded JSON value (map[string]any, []any,
// string, numbers, bool or nil). Other types are ignored. Nesting deeper than
// MaxDepth is not visited.
func Extract(record any) *Candidates {
	c := newCandidates()
	walk(record, 0, func(s string) {
		s = strings.TrimSpace(s)
		if IsImageURL(s) {
			c.offer(s)
		}
	})
	return c
}

func walk(v any, depth int, visit func(string)) {
	if depth > MaxDepth {
		return
	}
	switch t := v.(type) {
	case map[string]any:
		for _, k := range sortedKeys(t) {
			walk(t[k], depth+1, visit)
		}
	case []any:
		for _, item := range t {
			walk(item, depth+1, visit)
		}
	case []map[string]any:
		for _, item := range t {
			walk(item, depth+1, visit)
		}
	case string:
		visit(t)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
