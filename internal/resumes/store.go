package resumes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"resume-editor/internal/shared/metrics"
	"resume-editor/internal/shared/storage/object"
	"resume-editor/internal/shared/telemetry"
	"resume-editor/internal/shared/util"
)

// SavedAtLayout is fixed-width so stored timestamps sort lexically.
const SavedAtLayout = "2006-01-02T15:04:05.000000Z07:00"

// Store holds records in a process-wide map mirrored to one JSON object per record.
// It is safe for concurrent use.
type Store struct {
	objects object.ObjectStore
	now     func() time.Time
	newID   func(time.Time) string

	mu      sync.RWMutex
	records map[string]Record
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for ids and saved_at.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides identifier generation.
func WithIDGenerator(fn func(time.Time) string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// NewStore constructs a Store backed by objects.
func NewStore(objects object.ObjectStore, opts ...Option) *Store {
	s := &Store{
		objects: objects,
		now:     time.Now,
		newID:   NewID,
		records: make(map[string]Record),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save assigns an id and saved_at, persists the record file and caches it.
// The file is written before the map is updated, so a failed write leaves memory untouched.
func (s *Store) Save(ctx context.Context, rec Record) (Record, error) {
	if s.objects == nil {
		return Record{}, errors.New("resume store has no object storage")
	}
	now := s.now().UTC()
	rec = rec.withDefaults()
	rec.ID = s.newID(now)
	rec.SavedAt = now.Format(SavedAtLayout)

	payload, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return Record{}, fmt.Errorf("encode resume %s: %w", rec.ID, err)
	}
	if _, err := s.objects.Put(ctx, keyFor(rec.ID), "application/json", bytes.NewReader(payload)); err != nil {
		return Record{}, fmt.Errorf("save resume %s: %w", rec.ID, err)
	}

	s.mu.Lock()
	s.records[rec.ID] = rec
	s.mu.Unlock()

	metrics.IncResumesSaved()
	telemetry.Info("resume.saved", map[string]any{
		"resume_id": rec.ID,
		"saved_at":  rec.SavedAt,
		"bytes":     len(payload),
	})
	return rec, nil
}

// List returns a summary of every record held in memory, oldest first.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	out := make([]Summary, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec.summary())
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		ti, tj := parseSavedAt(out[i].SavedAt), parseSavedAt(out[j].SavedAt)
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		if out[i].SavedAt != out[j].SavedAt {
			return out[i].SavedAt < out[j].SavedAt
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Count reports the number of records in memory.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Get returns a record from memory, falling back to its file in storage.
func (s *Store) Get(ctx context.Context, id string) (Record, error) {
	if !util.IsPlainName(id) {
		return Record{}, fmt.Errorf("get resume %q: %w", id, ErrNotFound)
	}

	s.mu.RLock()
	rec, ok := s.records[id]
	s.mu.RUnlock()
	if ok {
		return rec, nil
	}

	rec, err := s.load(ctx, keyFor(id))
	if err != nil {
		if errors.Is(err, object.ErrNotFound) {
			return Record{}, fmt.Errorf("get resume %s: %w", id, ErrNotFound)
		}
		return Record{}, fmt.Errorf("get resume %s: %w", id, err)
	}
	rec, _ = s.remember(rec)
	return rec, nil
}

// Load scans storage for record files and caches the ones not yet in memory.
// Unreadable files are logged and skipped.
func (s *Store) Load(ctx context.Context) (int, error) {
	keys, err := s.objects.List(ctx, filePattern)
	if err != nil {
		return 0, fmt.Errorf("list resume files: %w", err)
	}

	loaded := 0
	for _, key := range keys {
		if s.has(idFromKey(key)) {
			continue
		}
		rec, err := s.load(ctx, key)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return loaded, ctxErr
			}
			telemetry.Warn("resume.load.skip", map[string]any{
				"key":   key,
				"error": err,
			})
			continue
		}
		if _, added := s.remember(rec); added {
			loaded++
		}
	}

	metrics.AddResumesLoaded(loaded)
	telemetry.Info("resume.load.complete", map[string]any{
		"files":  len(keys),
		"loaded": loaded,
	})
	return loaded, nil
}

func (s *Store) load(ctx context.Context, key string) (Record, error) {
	rc, err := s.objects.Open(ctx, key)
	if err != nil {
		return Record{}, err
	}
	defer rc.Close()

	var rec Record
	dec := json.NewDecoder(rc)
	dec.UseNumber()
	if err := dec.Decode(&rec); err != nil {
		return Record{}, fmt.Errorf("decode %s: %w", key, err)
	}

	id := idFromKey(key)
	if rec.ID != "" && rec.ID != id {
		telemetry.Warn("resume.load.id_mismatch", map[string]any{
			"key":       key,
			"stored_id": rec.ID,
		})
	}
	rec.ID = id
	return rec.withDefaults(), nil
}

func (s *Store) has(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.records[id]
	return ok
}

// remember caches rec unless another caller stored the same id first.
func (s *Store) remember(rec Record) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.records[rec.ID]; ok {
		return existing, false
	}
	s.records[rec.ID] = rec
	return rec, true
}

var savedAtLayouts = []string{
	SavedAtLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

func parseSavedAt(raw string) time.Time {
	for _, layout := range savedAtLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
