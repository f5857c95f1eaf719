package reservation

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Entry is one active reservation as seen by the conflict index.
type Entry struct {
	ID       uuid.UUID
	Interval Interval
}

// Schedule is the in-memory conflict index for a single PC: the active
// intervals sorted by start time. It is warmed lazily from the ledger and
// kept in sync by the commands that mutate reservations. Readers may consult
// it without holding the PC admission lock; writers must hold it.
type Schedule struct {
	mu      sync.RWMutex
	warm    bool
	entries []Entry // sorted by Interval.Start
}

func NewSchedule() *Schedule {
	return &Schedule{}
}

func (s *Schedule) IsWarm() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.warm
}

// Warm replaces the index contents with the given active entries.
func (s *Schedule) Warm(entries []Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make([]Entry, len(entries))
	copy(s.entries, entries)
	sort.Slice(s.entries, func(i, j int) bool {
		return s.entries[i].Interval.Start.Before(s.entries[j].Interval.Start)
	})
	s.warm = true
}

// Reset discards the index contents so the next admission rewarm reloads
// from the ledger.
func (s *Schedule) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	s.warm = false
}

// Overlapping returns the entries whose interval overlaps the given one,
// in start order.
func (s *Schedule) Overlapping(iv Interval) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Entries are start-ordered, so once one starts at or after iv.End no
	// later entry can overlap. Per-PC entry counts are small.
	var out []Entry
	for _, e := range s.entries {
		if !e.Interval.Start.Before(iv.End) {
			break
		}
		if e.Interval.Overlaps(iv) {
			out = append(out, e)
		}
	}
	return out
}

func (s *Schedule) HasOverlap(iv Interval) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if !e.Interval.Start.Before(iv.End) {
			return false
		}
		if e.Interval.Overlaps(iv) {
			return true
		}
	}
	return false
}

// Insert adds an entry keeping start order.
func (s *Schedule) Insert(e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := sort.Search(len(s.entries), func(i int) bool {
		return s.entries[i].Interval.Start.After(e.Interval.Start)
	})
	s.entries = append(s.entries, Entry{})
	copy(s.entries[i+1:], s.entries[i:])
	s.entries[i] = e
}

// Remove drops the entry with the given reservation id, if present.
func (s *Schedule) Remove(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

// PruneEnded drops every entry whose interval has fully elapsed.
func (s *Schedule) PruneEnded(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.Interval.End.After(now) {
			kept = append(kept, e)
		}
	}
	s.entries = kept
}

// Covers reports whether any entry contains the given instant.
func (s *Schedule) Covers(now time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if e.Interval.Contains(now) {
			return true
		}
		if e.Interval.Start.After(now) {
			return false
		}
	}
	return false
}

func (s *Schedule) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// ScheduleMap holds one Schedule per PC.
type ScheduleMap struct {
	mu        sync.Mutex
	schedules map[uuid.UUID]*Schedule
}

func NewScheduleMap() *ScheduleMap {
	return &ScheduleMap{schedules: make(map[uuid.UUID]*Schedule)}
}

// Get returns the schedule for the PC, creating a cold one if needed.
func (m *ScheduleMap) Get(pcID uuid.UUID) *Schedule {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.schedules[pcID]
	if !ok {
		s = NewSchedule()
		m.schedules[pcID] = s
	}
	return s
}

// Warmed returns the schedules that have been warmed so far.
func (m *ScheduleMap) Warmed() map[uuid.UUID]*Schedule {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[uuid.UUID]*Schedule, len(m.schedules))
	for id, s := range m.schedules {
		if s.IsWarm() {
			out[id] = s
		}
	}
	return out
}
