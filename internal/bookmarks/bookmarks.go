// Package bookmarks is the user's saved-events list: an ordered,
// newest-first collection persisted as JSON under a single storage key.
package bookmarks

import (
	"encoding/json"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/user/hip/internal/storage"
)

// StorageKey is the single key under which the serialized list lives.
const StorageKey = "hip_bookmarks_v1"

// Record is one saved bookmark. Title and Date together identify a
// record for de-duplication; any other fields the caller supplies are
// carried in Extra and round-trip through storage untouched.
type Record struct {
	Title string
	Date  string
	Extra map[string]any
}

func (r Record) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(r.Extra)+2)
	for k, v := range r.Extra {
		m[k] = v
	}
	m["title"] = r.Title
	m["date"] = r.Date
	return json.Marshal(m)
}

func (r *Record) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	if t, ok := m["title"].(string); ok {
		r.Title = t
	}
	if d, ok := m["date"].(string); ok {
		r.Date = d
	}
	delete(m, "title")
	delete(m, "date")
	if len(m) > 0 {
		r.Extra = m
	} else {
		r.Extra = nil
	}
	return nil
}

// Store provides CRUD over the persisted bookmark list. The in-memory
// list has no cross-call identity: every operation reads the stored
// value fresh and writes it back whole.
type Store struct {
	kv     storage.KV
	key    string
	logger *log.Logger
}

func NewStore(kv storage.KV, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{kv: kv, key: StorageKey, logger: logger}
}

// List returns the stored bookmarks, newest first. An absent or
// undecodable stored value yields an empty list; parse failures are
// logged but never surfaced.
func (s *Store) List() []Record {
	raw, err := s.kv.Get(s.key)
	if err != nil || raw == "" {
		return []Record{}
	}

	var records []Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		s.logger.Warn("discarding malformed bookmark data", "err", err)
		return []Record{}
	}
	return records
}

// Add prepends a record to the list and persists it. A record whose
// (title, date) pair is already present is rejected with (false, nil)
// and the store is left unchanged. Records without an "id" field get
// an opaque one assigned.
func (s *Store) Add(r Record) (bool, error) {
	records := s.List()
	for _, existing := range records {
		if existing.Title == r.Title && existing.Date == r.Date {
			return false, nil
		}
	}

	if _, ok := r.Extra["id"]; !ok {
		if r.Extra == nil {
			r.Extra = make(map[string]any, 1)
		}
		r.Extra["id"] = uuid.NewString()
	}

	records = append([]Record{r}, records...)
	data, err := json.Marshal(records)
	if err != nil {
		return false, err
	}
	if err := s.kv.Set(s.key, string(data)); err != nil {
		return false, err
	}
	return true, nil
}

// Clear removes the persisted list entirely. Clearing an empty store is
// a no-op.
func (s *Store) Clear() error {
	return s.kv.Delete(s.key)
}
