package tennis

import (
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/courtside/courtcast/internal/events"
	"github.com/courtside/courtcast/internal/storage"
	"github.com/google/uuid"
)

type store struct {
	mu      sync.RWMutex
	matches []Match
	file    *storage.JSONFile
	events  events.Publisher
}

// New creates a MatchStore backed by the given file. Mutations publish
// change events to pub.
func New(file *storage.JSONFile, pub events.Publisher) Store {
	return &store{
		file:   file,
		events: pub,
	}
}

// Load reads the backing file. On a read or parse failure the store starts
// from an empty collection and persists it.
func (s *store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matches []Match
	if err := s.file.Load(&matches); err != nil {
		log.Info("No usable match file, starting empty", "file", s.file.Path(), "reason", err)
		s.matches = []Match{}
		s.persistLocked()
		return nil
	}
	s.matches = matches
	log.Info("Loaded tennis matches", "count", len(s.matches), "file", s.file.Path())
	return nil
}

func (s *store) FindAll() []Match {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Match, len(s.matches))
	copy(out, s.matches)
	return out
}

func (s *store) FindOne(id string) (Match, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.matches {
		if m.ID == id {
			return m, true
		}
	}
	return Match{}, false
}

// FindByScoreboard returns the first match attached to the scoreboard, in
// insertion order.
func (s *store) FindByScoreboard(scoreboardID string) (Match, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.matches {
		if m.ScoreboardID == scoreboardID {
			return m, true
		}
	}
	return Match{}, false
}

// CurrentMatch returns the match with the greatest updatedAt across the
// whole store, regardless of scoreboard. A timestamp tie goes to the
// earliest-inserted record.
func (s *store) CurrentMatch() (Match, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.matches) == 0 {
		return Match{}, false
	}
	current := s.matches[0]
	for _, m := range s.matches[1:] {
		if m.UpdatedAt.After(current.UpdatedAt) {
			current = m
		}
	}
	return current, true
}

// Create appends a new match for data's scoreboard. Existing matches for
// that scoreboard are pruned down to the most recent one before the insert,
// so right after Create the scoreboard can hold two matches (the survivor
// plus the new one) until the next create or update prunes again.
func (s *store) Create(data MatchData) (Match, error) {
	s.mu.Lock()
	if data.ScoreboardID != "" {
		s.pruneLocked(data.ScoreboardID)
	}

	now := time.Now()
	match := Match{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	match.apply(data)
	s.matches = append(s.matches, match)
	s.persistLocked()
	s.mu.Unlock()

	s.events.Publish(events.Event{Type: events.MatchCreated, Payload: match})
	return match, nil
}

// Update merges data over the record at id, bumps updatedAt and prunes the
// scoreboard's matches. The just-updated record carries the newest timestamp
// and survives the prune. Returns false for an unknown id.
func (s *store) Update(id string, data MatchData) (Match, bool) {
	s.mu.Lock()
	index := -1
	for i, m := range s.matches {
		if m.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		s.mu.Unlock()
		return Match{}, false
	}

	s.matches[index].apply(data)
	s.matches[index].UpdatedAt = time.Now()
	updated := s.matches[index]

	if data.ScoreboardID != "" {
		s.pruneLocked(data.ScoreboardID)
	}
	s.persistLocked()
	s.mu.Unlock()

	s.events.Publish(events.Event{Type: events.MatchUpdated, Payload: updated})
	return updated, true
}

func (s *store) Delete(id string) bool {
	s.mu.Lock()
	found := false
	for i, m := range s.matches {
		if m.ID == id {
			s.matches = append(s.matches[:i], s.matches[i+1:]...)
			found = true
			break
		}
	}
	if found {
		s.persistLocked()
	}
	s.mu.Unlock()

	if found {
		s.events.Publish(events.Event{Type: events.MatchDeleted, Payload: Ref{ID: id}})
	}
	return found
}

// pruneLocked keeps only the most recently updated match for the scoreboard
// and drops the rest. Ties keep the earliest-inserted record (stable sort).
func (s *store) pruneLocked(scoreboardID string) {
	var forScoreboard []Match
	for _, m := range s.matches {
		if m.ScoreboardID == scoreboardID {
			forScoreboard = append(forScoreboard, m)
		}
	}
	if len(forScoreboard) <= 1 {
		return
	}

	sort.SliceStable(forScoreboard, func(i, j int) bool {
		return forScoreboard[i].UpdatedAt.After(forScoreboard[j].UpdatedAt)
	})

	drop := make(map[string]bool, len(forScoreboard)-1)
	for _, m := range forScoreboard[1:] {
		drop[m.ID] = true
	}

	kept := s.matches[:0]
	for _, m := range s.matches {
		if !drop[m.ID] {
			kept = append(kept, m)
		}
	}
	s.matches = kept
}

// persistLocked rewrites the backing file in full. Failures are logged and
// swallowed; in-memory state stays authoritative.
func (s *store) persistLocked() {
	if err := s.file.Save(s.matches); err != nil {
		log.Error("Failed to save matches to file", "error", err)
	}
}

// apply overwrites the mutable fields of m with data.
func (m *Match) apply(data MatchData) {
	m.ScoreStringSide1 = data.ScoreStringSide1
	m.ScoreStringSide2 = data.ScoreStringSide2
	m.Side1PointScore = data.Side1PointScore
	m.Side2PointScore = data.Side2PointScore
	m.Sets = data.Sets
	m.Server = data.Server
	m.Player1Name = data.Player1Name
	m.Player2Name = data.Player2Name
	m.ScoreboardID = data.ScoreboardID
}
