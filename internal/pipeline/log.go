// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

package pipeline

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"

	"github.com/tomtom215/shootfolio/internal/metrics"
	"github.com/tomtom215/shootfolio/internal/models"
)

// Log is an append-only NDJSON file of pipeline events.
type Log struct {
	path string
	mu   sync.Mutex
}

// NewLog creates the data directory if needed and returns a log writing to
// dir/name.
func NewLog(dir, name string) (*Log, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create pipeline dir: %w", err)
	}
	return &Log{path: filepath.Join(dir, name)}, nil
}

// Path returns the log file location.
func (l *Log) Path() string {
	return l.path
}

// Append writes ev as one line.
func (l *Log) Append(ctx context.Context, ev models.PipelineEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	line, err := json.Marshal(ev)
	if err != nil {
		metrics.RecordPipelineAppend(ev.EventType, err)
		return fmt.Errorf("encode pipeline event: %w", err)
	}
	line = append(line, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()

	err = l.write(line)
	metrics.RecordPipelineAppend(ev.EventType, err)
	return err
}

func (l *Log) write(line []byte) error {
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		return fmt.Errorf("open pipeline log: %w", err)
	}
	if _, err := f.Write(line); err != nil {
		_ = f.Close()
		return fmt.Errorf("append pipeline event: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close pipeline log: %w", err)
	}
	return nil
}

// Read returns up to limit of the most recent entries, newest first. A
// missing log reads as empty. limit <= 0 returns nothing.
func (l *Log) Read(limit int) ([]models.PipelineEntry, error) {
	if limit <= 0 {
		return []models.PipelineEntry{}, nil
	}

	// Appends hold mu for the whole line, so a locked read never sees half of one.
	l.mu.Lock()
	lines, err := l.tailLocked(limit)
	l.mu.Unlock()
	if err != nil {
		return nil, err
	}

	entries := make([]models.PipelineEntry, 0, len(lines))
	parseErrors := 0
	for i := len(lines) - 1; i >= 0; i-- {
		entry := decodeLine(lines[i])
		if entry.ParseError {
			parseErrors++
		}
		entries = append(entries, entry)
	}
	metrics.RecordPipelineParseErrors(parseErrors)

	return entries, nil
}

func (l *Log) tailLocked(limit int) ([][]byte, error) {
	f, err := os.Open(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open pipeline log: %w", err)
	}
	defer f.Close()

	lines, err := tail(f, limit)
	if err != nil {
		return nil, fmt.Errorf("read pipeline log: %w", err)
	}
	return lines, nil
}

// tail keeps the last n non-blank lines of r in file order. Lines of any
// length are supported.
func tail(r io.Reader, n int) ([][]byte, error) {
	ring := make([][]byte, n)
	count := 0

	br := bufio.NewReaderSize(r, 64*1024)
	for {
		line, err := br.ReadBytes('\n')
		if trimmed := bytes.TrimSpace(line); len(trimmed) > 0 {
			ring[count%n] = trimmed
			count++
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	if count <= n {
		return ring[:count], nil
	}
	start := count % n
	out := make([][]byte, 0, n)
	out = append(out, ring[start:]...)
	out = append(out, ring[:start]...)
	return out, nil
}

func decodeLine(line []byte) models.PipelineEntry {
	var ev models.PipelineEvent
	if err := json.Unmarshal(line, &ev); err != nil {
		return models.PipelineEntry{ParseError: true, Line: string(line)}
	}
	return models.PipelineEntry{PipelineEvent: &ev}
}
