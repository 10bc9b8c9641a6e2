package event

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// DeadLetterSchemaVersion tags each line so older files stay readable after
// the entry layout changes.
const DeadLetterSchemaVersion = "1.0"

// DeadLetterEntry is one line of the dead-letter log.
type DeadLetterEntry struct {
	SchemaVersion string    `json:"schema_version"`
	Timestamp     time.Time `json:"timestamp"`
	Event         Event     `json:"event"`
	Attempts      int       `json:"attempts"`
	LastError     string    `json:"last_error,omitempty"`
}

// DeadLetterWriter appends events that could not be delivered to a JSON Lines
// file. Safe for concurrent use.
type DeadLetterWriter struct {
	mu      sync.Mutex
	file    *os.File
	enc     *json.Encoder
	now     func() time.Time
	written int
}

// NewDeadLetterWriter opens path for appending, creating parent directories.
func NewDeadLetterWriter(path string) (*DeadLetterWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), DeadLetterDirPermissions); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgDeadLetterDir, err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgDeadLetterOpen, err)
	}
	return &DeadLetterWriter{file: f, enc: json.NewEncoder(f), now: time.Now}, nil
}

// Write records evt with the number of delivery attempts and the last failure.
func (w *DeadLetterWriter) Write(evt Event, attempts int, lastErr error) error {
	entry := DeadLetterEntry{
		SchemaVersion: DeadLetterSchemaVersion,
		Event:         evt,
		Attempts:      attempts,
	}
	if lastErr != nil {
		entry.LastError = lastErr.Error()
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	entry.Timestamp = w.now().UTC()
	// Encoder terminates each value with a newline
	if err := w.enc.Encode(entry); err != nil {
		return err
	}
	w.written++
	return nil
}

// Written reports how many entries this writer has appended since opening.
func (w *DeadLetterWriter) Written() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.written
}

func (w *DeadLetterWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.Close()
}

// ReadDeadLetters parses a dead-letter log. Lines that are not valid entries
// are counted in skipped rather than failing the whole read, since a crash
// can leave a truncated final line.
func ReadDeadLetters(r io.Reader) (entries []DeadLetterEntry, skipped int, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), DeadLetterMaxLineBytes)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var e DeadLetterEntry
		if json.Unmarshal(line, &e) != nil || e.Event.Type == "" {
			skipped++
			continue
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return entries, skipped, fmt.Errorf("%s: %w", ErrMsgDeadLetterRead, err)
	}
	return entries, skipped, nil
}

// DeadLetterSummary groups dead-lettered events by type.
type DeadLetterSummary struct {
	Type   Type
	Count  int
	Oldest time.Time
	Newest time.Time
}

// SummarizeDeadLetters returns one row per event type, most frequent first.
func SummarizeDeadLetters(entries []DeadLetterEntry) []DeadLetterSummary {
	byType := make(map[Type]*DeadLetterSummary)
	for _, e := range entries {
		s, ok := byType[e.Event.Type]
		if !ok {
			s = &DeadLetterSummary{Type: e.Event.Type, Oldest: e.Timestamp, Newest: e.Timestamp}
			byType[e.Event.Type] = s
		}
		s.Count++
		if e.Timestamp.Before(s.Oldest) {
			s.Oldest = e.Timestamp
		}
		if e.Timestamp.After(s.Newest) {
			s.Newest = e.Timestamp
		}
	}

	out := make([]DeadLetterSummary, 0, len(byType))
	for _, s := range byType {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Type < out[j].Type
	})
	return out
}
