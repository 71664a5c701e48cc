package tennis_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/courtside/courtcast/internal/events"
	"github.com/courtside/courtcast/internal/storage"
	"github.com/courtside/courtcast/internal/tennis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) (tennis.Store, string, *[]events.Event) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tennis-matches-data.json")
	bus := events.NewBus()
	published := &[]events.Event{}
	bus.Subscribe(func(e events.Event) { *published = append(*published, e) })

	store := tennis.New(storage.NewJSONFile(path), bus)
	require.NoError(t, store.Load())
	return store, path, published
}

func sampleData(scoreboardID string) tennis.MatchData {
	return tennis.MatchData{
		ScoreStringSide1: "6 3",
		ScoreStringSide2: "4 2",
		Side1PointScore:  "40",
		Side2PointScore:  "30",
		Sets: []tennis.Set{
			{SetNumber: 1, Side1Score: 6, Side2Score: 4, WinningSide: 1},
		},
		Server: tennis.ServerPosition{
			SideNumber:    1,
			PlayerNumber:  1,
			ReturningSide: "deuce",
		},
		Player1Name:  "Player One",
		Player2Name:  "Player Two",
		ScoreboardID: scoreboardID,
	}
}

func TestCreateAssignsIDAndTimestamps(t *testing.T) {
	store, _, published := setupTestStore(t)

	match, err := store.Create(sampleData("S1"))
	require.NoError(t, err)
	assert.NotEmpty(t, match.ID)
	assert.False(t, match.CreatedAt.IsZero())
	assert.Equal(t, match.CreatedAt, match.UpdatedAt)
	assert.Equal(t, []tennis.Set{{SetNumber: 1, Side1Score: 6, Side2Score: 4, WinningSide: 1}}, match.Sets)

	got, found := store.FindOne(match.ID)
	require.True(t, found)
	assert.Equal(t, match, got)

	require.Len(t, *published, 1)
	assert.Equal(t, events.MatchCreated, (*published)[0].Type)
	assert.Equal(t, match, (*published)[0].Payload)
}

func TestCreateGeneratesUniqueIDs(t *testing.T) {
	store, _, _ := setupTestStore(t)

	first, err := store.Create(sampleData("S1"))
	require.NoError(t, err)
	second, err := store.Create(sampleData("S2"))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

// Create prunes before inserting, so a scoreboard that already had a match
// holds exactly two right after a second create. The next mutation for that
// scoreboard prunes back down to one.
func TestCreateKeepsPriorMatchUntilNextMutation(t *testing.T) {
	store, _, _ := setupTestStore(t)

	first, err := store.Create(sampleData("S1"))
	require.NoError(t, err)
	second, err := store.Create(sampleData("S1"))
	require.NoError(t, err)

	assert.Len(t, matchesFor(store, "S1"), 2)

	third, err := store.Create(sampleData("S1"))
	require.NoError(t, err)

	remaining := matchesFor(store, "S1")
	require.Len(t, remaining, 2)
	ids := []string{remaining[0].ID, remaining[1].ID}
	assert.Contains(t, ids, second.ID, "the most recently updated prior match survives the prune")
	assert.Contains(t, ids, third.ID)
	assert.NotContains(t, ids, first.ID)
}

func TestUpdateLeavesAtMostOneMatchPerScoreboard(t *testing.T) {
	store, _, published := setupTestStore(t)

	_, err := store.Create(sampleData("S1"))
	require.NoError(t, err)
	second, err := store.Create(sampleData("S1"))
	require.NoError(t, err)
	require.Len(t, matchesFor(store, "S1"), 2)

	data := sampleData("S1")
	data.Side1PointScore = "AD"
	updated, found := store.Update(second.ID, data)
	require.True(t, found)
	assert.Equal(t, "AD", updated.Side1PointScore)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt) || updated.UpdatedAt.Equal(updated.CreatedAt))

	remaining := matchesFor(store, "S1")
	require.Len(t, remaining, 1)
	assert.Equal(t, second.ID, remaining[0].ID)

	last := (*published)[len(*published)-1]
	assert.Equal(t, events.MatchUpdated, last.Type)
	assert.Equal(t, updated, last.Payload)
}

func TestUpdateUnknownID(t *testing.T) {
	store, _, published := setupTestStore(t)

	_, found := store.Update("missing", sampleData("S1"))
	assert.False(t, found)
	assert.Empty(t, *published)
	assert.Empty(t, store.FindAll())
}

func TestDelete(t *testing.T) {
	store, _, published := setupTestStore(t)

	match, err := store.Create(sampleData("S1"))
	require.NoError(t, err)

	assert.True(t, store.Delete(match.ID))
	_, found := store.FindOne(match.ID)
	assert.False(t, found)

	last := (*published)[len(*published)-1]
	assert.Equal(t, events.MatchDeleted, last.Type)
	assert.Equal(t, tennis.Ref{ID: match.ID}, last.Payload)
}

func TestDeleteUnknownIDWritesNothing(t *testing.T) {
	store, path, published := setupTestStore(t)

	_, err := store.Create(sampleData("S1"))
	require.NoError(t, err)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.False(t, store.Delete("missing"))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	require.Len(t, *published, 1, "no deletion event for an unknown match")
}

func TestCurrentMatch(t *testing.T) {
	store, _, _ := setupTestStore(t)

	_, ok := store.CurrentMatch()
	assert.False(t, ok, "empty store has no current match")

	older, err := store.Create(sampleData("S1"))
	require.NoError(t, err)
	newer, err := store.Create(sampleData("S2"))
	require.NoError(t, err)

	current, ok := store.CurrentMatch()
	require.True(t, ok)
	assert.Equal(t, newer.ID, current.ID)

	// Updating the older match makes it current again.
	updated, found := store.Update(older.ID, sampleData("S1"))
	require.True(t, found)
	current, ok = store.CurrentMatch()
	require.True(t, ok)
	assert.Equal(t, updated.ID, current.ID)
}

// A timestamp tie goes to the earliest-inserted record. Ties cannot be
// produced through the store API, so the fixture is loaded from disk.
func TestCurrentMatchTieBreaksByInsertionOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tennis-matches-data.json")
	stamp := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	fixture := []tennis.Match{
		{ID: "m1", ScoreboardID: "S1", CreatedAt: stamp, UpdatedAt: stamp},
		{ID: "m2", ScoreboardID: "S2", CreatedAt: stamp, UpdatedAt: stamp},
	}
	require.NoError(t, storage.NewJSONFile(path).Save(fixture))

	store := tennis.New(storage.NewJSONFile(path), events.Discard{})
	require.NoError(t, store.Load())

	current, ok := store.CurrentMatch()
	require.True(t, ok)
	assert.Equal(t, "m1", current.ID)
}

func TestLoadStartsEmptyOnMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tennis-matches-data.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	store := tennis.New(storage.NewJSONFile(path), events.Discard{})
	require.NoError(t, store.Load())
	assert.Empty(t, store.FindAll())

	// The empty collection is persisted so the next load succeeds cleanly.
	var onDisk []tennis.Match
	require.NoError(t, storage.NewJSONFile(path).Load(&onDisk))
	assert.Empty(t, onDisk)
}

// A write failure is logged and swallowed: the mutation still succeeds, the
// event still publishes, and the in-memory collection stays authoritative.
func TestCreateSurvivesPersistenceFailure(t *testing.T) {
	// A directory at the file path makes every save fail at the rename.
	path := filepath.Join(t.TempDir(), "tennis-matches-data.json")
	require.NoError(t, os.Mkdir(path, 0o755))

	bus := events.NewBus()
	var published []events.Event
	bus.Subscribe(func(e events.Event) { published = append(published, e) })
	store := tennis.New(storage.NewJSONFile(path), bus)

	match, err := store.Create(sampleData("S1"))
	require.NoError(t, err)
	assert.NotEmpty(t, match.ID)

	got, found := store.FindByScoreboard("S1")
	require.True(t, found)
	assert.Equal(t, match.ID, got.ID)

	require.Len(t, published, 1)
	assert.Equal(t, events.MatchCreated, published[0].Type)
}

func TestFindByScoreboard(t *testing.T) {
	store, _, _ := setupTestStore(t)

	match, err := store.Create(sampleData("S1"))
	require.NoError(t, err)

	got, found := store.FindByScoreboard("S1")
	require.True(t, found)
	assert.Equal(t, match.ID, got.ID)

	_, found = store.FindByScoreboard("S2")
	assert.False(t, found)
}

func matchesFor(store tennis.Store, scoreboardID string) []tennis.Match {
	var out []tennis.Match
	for _, m := range store.FindAll() {
		if m.ScoreboardID == scoreboardID {
			out = append(out, m)
		}
	}
	return out
}
