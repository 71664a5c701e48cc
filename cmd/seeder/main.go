// Seeder writes starter data files so a local server comes up with known
// scoreboards and one in-progress match.
package main

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/courtside/courtcast/internal/events"
	"github.com/courtside/courtcast/internal/scoreboard"
	"github.com/courtside/courtcast/internal/storage"
	"github.com/courtside/courtcast/internal/tennis"
)

func main() {
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}

	scoreboards := scoreboard.New(storage.NewJSONFile(filepath.Join(dataDir, "scoreboards-data.json")), events.Discard{})
	if err := scoreboards.Load(); err != nil {
		log.Fatalf("Failed to load scoreboards: %s", err)
	}
	sb, err := scoreboards.Create("Practice Court")
	if err != nil {
		log.Fatalf("Failed to seed scoreboard: %s", err)
	}

	matches := tennis.New(storage.NewJSONFile(filepath.Join(dataDir, "tennis-matches-data.json")), events.Discard{})
	if err := matches.Load(); err != nil {
		log.Fatalf("Failed to load matches: %s", err)
	}
	match, err := matches.Create(tennis.MatchData{
		ScoreStringSide1: "6 3",
		ScoreStringSide2: "4 2",
		Side1PointScore:  "30",
		Side2PointScore:  "15",
		Sets: []tennis.Set{
			{SetNumber: 1, Side1Score: 6, Side2Score: 4, WinningSide: 1},
			{SetNumber: 2, Side1Score: 3, Side2Score: 2},
		},
		Server:       tennis.ServerPosition{SideNumber: 1, PlayerNumber: 1, ReturningSide: "deuce"},
		Player1Name:  "Seed Player One",
		Player2Name:  "Seed Player Two",
		ScoreboardID: sb.ID,
	})
	if err != nil {
		log.Fatalf("Failed to seed match: %s", err)
	}

	log.Info("Seeded data", "dataDir", dataDir, "scoreboardID", sb.ID, "matchID", match.ID)
}
