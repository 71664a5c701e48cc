package scoreboard

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/courtside/courtcast/internal/events"
	"github.com/courtside/courtcast/internal/storage"
)

const idChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
const idLength = 8

type store struct {
	mu          sync.RWMutex
	scoreboards []Scoreboard
	file        *storage.JSONFile
	events      events.Publisher
}

// New creates a ScoreboardStore backed by the given file. Mutations publish
// change events to pub.
func New(file *storage.JSONFile, pub events.Publisher) Store {
	return &store{
		file:   file,
		events: pub,
	}
}

// Load reads the backing file, migrating records from the legacy on-disk
// shape. A read or parse failure is not fatal: the store seeds two default
// scoreboards and persists them.
func (s *store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var raw []legacyRecord
	if err := s.file.Load(&raw); err != nil {
		log.Info("No usable scoreboard file, seeding defaults", "file", s.file.Path(), "reason", err)
		s.scoreboards = []Scoreboard{
			{ID: s.newIDLocked(), Name: "Stadium Scoreboard"},
			{ID: s.newIDLocked(), Name: "Grandstand Scoreboard"},
		}
		s.persistLocked()
		return nil
	}

	s.scoreboards = make([]Scoreboard, 0, len(raw))
	for i, rec := range raw {
		s.scoreboards = append(s.scoreboards, migrate(rec, i))
	}
	log.Info("Loaded scoreboards", "count", len(s.scoreboards), "file", s.file.Path())
	return nil
}

// migrate normalizes one legacy record: "courtname" becomes "name" and a
// missing id falls back to the positional index as a string.
func migrate(rec legacyRecord, index int) Scoreboard {
	sb := Scoreboard{ID: rec.ID, Name: rec.Name}
	if sb.ID == "" {
		sb.ID = strconv.Itoa(index + 1)
	}
	if sb.Name == "" {
		sb.Name = rec.CourtName
	}
	if sb.Name == "" {
		sb.Name = fmt.Sprintf("Scoreboard %d", index+1)
	}
	return sb
}

func (s *store) FindAll() []Scoreboard {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Scoreboard, len(s.scoreboards))
	copy(out, s.scoreboards)
	return out
}

func (s *store) FindOne(id string) (Scoreboard, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sb := range s.scoreboards {
		if sb.ID == id {
			return sb, true
		}
	}
	return Scoreboard{}, false
}

// Create appends a new scoreboard with a generated id and persists
// synchronously. Name validation happens at the transport boundary.
func (s *store) Create(name string) (Scoreboard, error) {
	s.mu.Lock()
	sb := Scoreboard{
		ID:   s.newIDLocked(),
		Name: name,
	}
	s.scoreboards = append(s.scoreboards, sb)
	s.persistLocked()
	s.mu.Unlock()

	s.events.Publish(events.Event{Type: events.ScoreboardCreated, Payload: sb})
	return sb, nil
}

// Delete removes the matching scoreboard if present and reports whether one
// was found. The deletion event is published regardless, so every subscriber
// observes the same broadcast either way.
func (s *store) Delete(id string) bool {
	s.mu.Lock()
	found := false
	for i, sb := range s.scoreboards {
		if sb.ID == id {
			s.scoreboards = append(s.scoreboards[:i], s.scoreboards[i+1:]...)
			found = true
			break
		}
	}
	if found {
		s.persistLocked()
	}
	s.mu.Unlock()

	s.events.Publish(events.Event{Type: events.ScoreboardDeleted, Payload: Ref{ID: id}})
	return found
}

// UpdateAll replaces the entire collection. Every element must carry a
// non-empty id and name; any violation rejects the whole batch and leaves
// the stored collection untouched.
func (s *store) UpdateAll(scoreboards []Scoreboard) ([]Scoreboard, error) {
	for i, sb := range scoreboards {
		if sb.ID == "" {
			return nil, &ValidationError{Index: i, Field: "id"}
		}
		if sb.Name == "" {
			return nil, &ValidationError{Index: i, Field: "name"}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.scoreboards = make([]Scoreboard, len(scoreboards))
	copy(s.scoreboards, scoreboards)
	s.persistLocked()

	out := make([]Scoreboard, len(s.scoreboards))
	copy(out, s.scoreboards)
	return out, nil
}

// persistLocked rewrites the backing file in full. Failures are logged and
// swallowed: the in-memory collection stays authoritative for the rest of
// the process lifetime.
func (s *store) persistLocked() {
	if err := s.file.Save(s.scoreboards); err != nil {
		log.Error("Failed to save scoreboards to file", "error", err)
	}
}

// newIDLocked generates a random 8-character alphanumeric id, re-rolling on
// the unlikely collision with an existing record.
func (s *store) newIDLocked() string {
	for {
		buf := make([]byte, idLength)
		if _, err := rand.Read(buf); err != nil {
			// crypto/rand read failures are not recoverable at this layer
			panic(fmt.Sprintf("reading random bytes: %v", err))
		}
		for i, b := range buf {
			buf[i] = idChars[int(b)%len(idChars)]
		}
		id := string(buf)

		collision := false
		for _, sb := range s.scoreboards {
			if sb.ID == id {
				collision = true
				break
			}
		}
		if !collision {
			return id
		}
	}
}
