// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

package extract

import (
	"reflect"
	"testing"
)

func TestExtract_KeepsHighestScoringVariant(t *testing.T) {
	t.Parallel()

	record := map[string]any{
		"images": []any{
			map[string]any{"url": "https://cdn.example.com/listing/photo_thumb.jpg"},
			map[string]any{"url": "https://cdn.example.com/listing/photo_original.jpg"},
		},
	}

	c := Extract(record)
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}

	cand, ok := c.Get("cdn.example.com/listing/photo.jpg")
	if !ok {
		t.Fatal("expected candidate under canonical key")
	}
	if cand.URL != "https://cdn.example.com/listing/photo_original.jpg" {
		t.Errorf("URL = %q, want original rendition", cand.URL)
	}
	if cand.Score != 40 {
		t.Errorf("Score = %d, want 40", cand.Score)
	}
}

func TestExtract_LowerScoreDoesNotReplace(t *testing.T) {
	t.Parallel()

	record := []any{
		"https://cdn.example.com/listing/photo_original.jpg",
		"https://cdn.example.com/listing/photo_thumb.jpg",
	}

	c := Extract(record)
	cand, _ := c.Get("cdn.example.com/listing/photo.jpg")
	if cand.URL != "https://cdn.example.com/listing/photo_original.jpg" {
		t.Errorf("URL = %q, want original rendition", cand.URL)
	}
}

func TestExtract_EqualScoreLaterWins(t *testing.T) {
	t.Parallel()

	record := []any{
		"https://cdn.example.com/p/house-800x600.jpg",
		"https://cdn.example.com/p/house-1024x768.jpg",
	}

	c := Extract(record)
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
	cand, _ := c.Get("cdn.example.com/p/house.jpg")
	if cand.URL != "https://cdn.example.com/p/house-1024x768.jpg" {
		t.Errorf("URL = %q, want later equal-score URL", cand.URL)
	}
}

func TestExtract_RankedOrder(t *testing.T) {
	t.Parallel()

	record := map[string]any{
		"a": []any{
			"https://cdn.example.com/one_thumb.jpg",
			"https://cdn.example.com/two.jpg",
		},
		"b": "https://cdn.example.com/three_large.jpg",
		"c": map[string]any{
			"nested": "https://cdn.example.com/four.png",
		},
		"ignored": []any{42.0, true, nil, "https://cdn.example.com/video.mp4"},
	}

	got := Extract(record).URLs()
	want := []string{
		"https://cdn.example.com/three_large.jpg",
		"https://cdn.example.com/two.jpg",
		"https://cdn.example.com/four.png",
		"https://cdn.example.com/one_thumb.jpg",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("URLs() = %v, want %v", got, want)
	}
}

func TestExtract_Deterministic(t *testing.T) {
	t.Parallel()

	record := map[string]any{
		"z": "https://cdn.example.com/z.jpg",
		"m": "https://cdn.example.com/m.jpg",
		"a": "https://cdn.example.com/a.jpg",
		"k": map[string]any{"x": "https://cdn.example.com/k.jpg"},
	}

	first := Extract(record).URLs()
	for i := 0; i < 20; i++ {
		if got := Extract(record).URLs(); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d: URLs() = %v, want %v", i, got, first)
		}
	}
}

func TestExtract_DepthGuard(t *testing.T) {
	t.Parallel()

	nest := func(depth int) any {
		var v any = "https://cdn.example.com/deep.jpg"
		for i := 0; i < depth; i++ {
			v = map[string]any{"child": v}
		}
		return v
	}

	if got := Extract(nest(10)).Len(); got != 1 {
		t.Errorf("depth 10: Len() = %d, want 1", got)
	}
	if got := Extract(nest(MaxDepth)).Len(); got != 1 {
		t.Errorf("depth %d: Len() = %d, want 1", MaxDepth, got)
	}
	if got := Extract(nest(MaxDepth + 50)).Len(); got != 0 {
		t.Errorf("depth %d: Len() = %d, want 0", MaxDepth+50, got)
	}
}

func TestExtract_CyclicStructureTerminates(t *testing.T) {
	t.Parallel()

	loop := map[string]any{"photo": "https://cdn.example.com/loop.jpg"}
	loop["self"] = loop

	if got := Extract(loop).Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
}

func TestExtract_Empty(t *testing.T) {
	t.Parallel()

	for _, record := range []any{nil, map[string]any{}, []any{}, 12.5, "plain"} {
		if got := Extract(record).Len(); got != 0 {
			t.Errorf("Extract(%v).Len() = %d, want 0", record, got)
		}
	}
}
