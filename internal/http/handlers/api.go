package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/courtside/courtcast/internal/scoreboard"
	"github.com/courtside/courtcast/internal/tennis"
)

// createScoreboardRequest is the body of POST /scoreboards.
type createScoreboardRequest struct {
	Name string `json:"name"`
}

// matchRequest is the body of match create/update calls. It is validated
// here, once, and converted into the store's typed command value.
type matchRequest struct {
	ScoreStringSide1 string                `json:"scoreStringSide1"`
	ScoreStringSide2 string                `json:"scoreStringSide2"`
	Side1PointScore  string                `json:"side1PointScore"`
	Side2PointScore  string                `json:"side2PointScore"`
	Sets             []tennis.Set          `json:"sets"`
	Server           tennis.ServerPosition `json:"server"`
	Player1Name      string                `json:"player1Name"`
	Player2Name      string                `json:"player2Name"`
	ScoreboardID     string                `json:"scoreboardId"`
}

func (m matchRequest) toData(scoreboardID string) tennis.MatchData {
	sets := m.Sets
	if sets == nil {
		sets = []tennis.Set{}
	}
	return tennis.MatchData{
		ScoreStringSide1: m.ScoreStringSide1,
		ScoreStringSide2: m.ScoreStringSide2,
		Side1PointScore:  m.Side1PointScore,
		Side2PointScore:  m.Side2PointScore,
		Sets:             sets,
		Server:           m.Server,
		Player1Name:      m.Player1Name,
		Player2Name:      m.Player2Name,
		ScoreboardID:     scoreboardID,
	}
}

func ListScoreboardsHandler(store scoreboard.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, store.FindAll())
	}
}

func GetScoreboardHandler(store scoreboard.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sb, found := store.FindOne(r.PathValue("id"))
		if !found {
			writeError(w, http.StatusNotFound, "Scoreboard not found")
			return
		}
		writeJSON(w, http.StatusOK, sb)
	}
}

func CreateScoreboardHandler(store scoreboard.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createScoreboardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Name == "" {
			writeError(w, http.StatusBadRequest, "name is required")
			return
		}

		sb, err := store.Create(req.Name)
		if err != nil {
			log.Error("Failed to create scoreboard", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to create scoreboard")
			return
		}
		writeJSON(w, http.StatusCreated, sb)
	}
}

func DeleteScoreboardHandler(store scoreboard.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		found := store.Delete(r.PathValue("id"))
		message := "Scoreboard not found"
		if found {
			message = "Scoreboard deleted successfully"
		}
		writeJSON(w, http.StatusOK, deleteResult{Success: found, Message: message})
	}
}

func ReplaceScoreboardsHandler(store scoreboard.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var scoreboards []scoreboard.Scoreboard
		if err := json.NewDecoder(r.Body).Decode(&scoreboards); err != nil {
			writeError(w, http.StatusBadRequest, "Scoreboards data must be an array")
			return
		}

		replaced, err := store.UpdateAll(scoreboards)
		if err != nil {
			var verr *scoreboard.ValidationError
			if errors.As(err, &verr) {
				writeError(w, http.StatusBadRequest, verr.Error())
				return
			}
			log.Error("Failed to replace scoreboards", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to replace scoreboards")
			return
		}
		writeJSON(w, http.StatusOK, replaced)
	}
}

// GetScoreboardMatchHandler returns the match attached to a scoreboard, or
// null when the scoreboard has none. An unknown scoreboard is a 404.
func GetScoreboardMatchHandler(scoreboards scoreboard.Store, matches tennis.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scoreboardID := r.PathValue("id")
		if _, found := scoreboards.FindOne(scoreboardID); !found {
			writeError(w, http.StatusNotFound, "Scoreboard not found")
			return
		}

		match, found := matches.FindByScoreboard(scoreboardID)
		if !found {
			writeJSON(w, http.StatusOK, nil)
			return
		}
		writeJSON(w, http.StatusOK, match)
	}
}

// UpsertScoreboardMatchHandler updates the scoreboard's existing match or
// creates one when none exists. This deliberately differs from the
// websocket update operation, which refuses to create.
func UpsertScoreboardMatchHandler(scoreboards scoreboard.Store, matches tennis.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scoreboardID := r.PathValue("id")
		if _, found := scoreboards.FindOne(scoreboardID); !found {
			writeError(w, http.StatusNotFound, "Scoreboard not found")
			return
		}

		var req matchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		data := req.toData(scoreboardID)

		if existing, found := matches.FindByScoreboard(scoreboardID); found {
			updated, ok := matches.Update(existing.ID, data)
			if !ok {
				log.Error("Match disappeared during upsert", "matchID", existing.ID)
				writeError(w, http.StatusInternalServerError, "Failed to update tennis match")
				return
			}
			writeJSON(w, http.StatusOK, updated)
			return
		}

		match, err := matches.Create(data)
		if err != nil {
			log.Error("Failed to create tennis match", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to create tennis match")
			return
		}
		writeJSON(w, http.StatusCreated, match)
	}
}

func ListMatchesHandler(store tennis.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, store.FindAll())
	}
}

// CurrentMatchHandler returns the most recently updated match across all
// scoreboards, or null when the store is empty.
func CurrentMatchHandler(store tennis.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		match, found := store.CurrentMatch()
		if !found {
			writeJSON(w, http.StatusOK, nil)
			return
		}
		writeJSON(w, http.StatusOK, match)
	}
}

func GetMatchHandler(store tennis.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		match, found := store.FindOne(r.PathValue("id"))
		if !found {
			writeError(w, http.StatusNotFound, "Match not found")
			return
		}
		writeJSON(w, http.StatusOK, match)
	}
}

func CreateMatchHandler(store tennis.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req matchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.ScoreboardID == "" {
			writeError(w, http.StatusBadRequest, "scoreboardId is required")
			return
		}
		if req.Sets == nil {
			writeError(w, http.StatusBadRequest, "sets is required")
			return
		}

		match, err := store.Create(req.toData(req.ScoreboardID))
		if err != nil {
			log.Error("Failed to create tennis match", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to create tennis match")
			return
		}
		writeJSON(w, http.StatusCreated, match)
	}
}

func UpdateMatchHandler(store tennis.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req matchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.ScoreboardID == "" {
			writeError(w, http.StatusBadRequest, "scoreboardId is required")
			return
		}
		if req.Sets == nil {
			writeError(w, http.StatusBadRequest, "sets is required")
			return
		}

		match, found := store.Update(r.PathValue("id"), req.toData(req.ScoreboardID))
		if !found {
			writeError(w, http.StatusNotFound, "Match not found")
			return
		}
		writeJSON(w, http.StatusOK, match)
	}
}

func DeleteMatchHandler(store tennis.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		found := store.Delete(r.PathValue("id"))
		message := "Match not found"
		if found {
			message = "Match deleted successfully"
		}
		writeJSON(w, http.StatusOK, deleteResult{Success: found, Message: message})
	}
}
