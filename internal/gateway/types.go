package gateway

import (
	"encoding/json"
	"time"

	"github.com/courtside/courtcast/internal/tennis"
)

// EventName identifies a websocket protocol message type. Broadcast event
// names are the events.Type values and are not duplicated here.
type EventName string

const (
	// Request events
	EventGetScoreboards    EventName = "get:scoreboards"
	EventCreateScoreboard  EventName = "create:scoreboard"
	EventDeleteScoreboard  EventName = "delete:scoreboard"
	EventGetTennisMatch    EventName = "get:tennis:match"
	EventUpdateTennisMatch EventName = "update:tennis:match"

	// Response events
	EventScoreboardsResponse EventName = "scoreboards:response"
	EventTennisMatchResponse EventName = "tennis:match:response"
	EventErrorResponse       EventName = "error:response"
)

// Error codes carried in error responses.
const (
	CodeUnauthorized            = "UNAUTHORIZED"
	CodeGetScoreboardsFailed    = "GET_SCOREBOARDS_FAILED"
	CodeCreateScoreboardFailed  = "CREATE_SCOREBOARD_FAILED"
	CodeDeleteScoreboardFailed  = "DELETE_SCOREBOARD_FAILED"
	CodeGetTennisMatchFailed    = "GET_TENNIS_MATCH_FAILED"
	CodeUpdateTennisMatchFailed = "UPDATE_TENNIS_MATCH_FAILED"
)

// Request is the inbound message envelope. The API key rides on every
// guarded message; authorization is never cached per connection.
type Request struct {
	Event     EventName       `json:"event"`
	RequestID string          `json:"requestId,omitempty"`
	APIKey    string          `json:"apiKey,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// Message is the outbound envelope, covering both direct responses (success
// set, requestId echoing the caller's correlation id) and broadcasts
// (success absent). Error responses carry no data key at all; a successful
// lookup with no record carries an explicit data null.
type Message struct {
	Event     string     `json:"event"`
	Data      any        `json:"data,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
	RequestID string     `json:"requestId,omitempty"`
	Success   *bool      `json:"success,omitempty"`
	Error     *WireError `json:"error,omitempty"`
}

// WireError is the structured error payload of a failed response.
type WireError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// CreateScoreboardData is the payload of create:scoreboard.
type CreateScoreboardData struct {
	Name string `json:"name"`
}

// DeleteScoreboardData is the payload of delete:scoreboard.
type DeleteScoreboardData struct {
	ID string `json:"id"`
}

// GetTennisMatchData is the payload of get:tennis:match.
type GetTennisMatchData struct {
	ScoreboardID string `json:"scoreboardId"`
}

// UpdateTennisMatchData is the payload of update:tennis:match. MatchData is
// a partial patch; absent fields keep the existing record's values.
type UpdateTennisMatchData struct {
	ScoreboardID string     `json:"scoreboardId"`
	MatchData    MatchPatch `json:"matchData"`
}

// MatchPatch holds optional match fields. Nil pointers mean "keep existing".
type MatchPatch struct {
	ScoreStringSide1 *string                `json:"scoreStringSide1"`
	ScoreStringSide2 *string                `json:"scoreStringSide2"`
	Side1PointScore  *string                `json:"side1PointScore"`
	Side2PointScore  *string                `json:"side2PointScore"`
	Sets             *[]tennis.Set          `json:"sets"`
	Server           *tennis.ServerPosition `json:"server"`
	Player1Name      *string                `json:"player1Name"`
	Player2Name      *string                `json:"player2Name"`
}

// mergeOver applies the patch on top of an existing match, producing the
// full command value the store expects.
func (p MatchPatch) mergeOver(existing tennis.Match, scoreboardID string) tennis.MatchData {
	data := tennis.MatchData{
		ScoreStringSide1: existing.ScoreStringSide1,
		ScoreStringSide2: existing.ScoreStringSide2,
		Side1PointScore:  existing.Side1PointScore,
		Side2PointScore:  existing.Side2PointScore,
		Sets:             existing.Sets,
		Server:           existing.Server,
		Player1Name:      existing.Player1Name,
		Player2Name:      existing.Player2Name,
		ScoreboardID:     scoreboardID,
	}
	if p.ScoreStringSide1 != nil {
		data.ScoreStringSide1 = *p.ScoreStringSide1
	}
	if p.ScoreStringSide2 != nil {
		data.ScoreStringSide2 = *p.ScoreStringSide2
	}
	if p.Side1PointScore != nil {
		data.Side1PointScore = *p.Side1PointScore
	}
	if p.Side2PointScore != nil {
		data.Side2PointScore = *p.Side2PointScore
	}
	if p.Sets != nil {
		data.Sets = *p.Sets
	}
	if p.Server != nil {
		data.Server = *p.Server
	}
	if p.Player1Name != nil {
		data.Player1Name = *p.Player1Name
	}
	if p.Player2Name != nil {
		data.Player2Name = *p.Player2Name
	}
	return data
}
