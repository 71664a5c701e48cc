package tennis

import "time"

// Match is the live score state for one tennis match, attached to a single
// scoreboard by convention. Score strings and point scores are display
// values produced upstream; the store does not interpret them.
type Match struct {
	ID               string         `json:"id"`
	ScoreStringSide1 string         `json:"scoreStringSide1"`
	ScoreStringSide2 string         `json:"scoreStringSide2"`
	Side1PointScore  string         `json:"side1PointScore"`
	Side2PointScore  string         `json:"side2PointScore"`
	Sets             []Set          `json:"sets"`
	Server           ServerPosition `json:"server"`
	Player1Name      string         `json:"player1Name,omitempty"`
	Player2Name      string         `json:"player2Name,omitempty"`
	ScoreboardID     string         `json:"scoreboardId"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// Set records one completed scoring unit within a match.
type Set struct {
	SetNumber   int `json:"setNumber"`
	Side1Score  int `json:"side1Score"`
	Side2Score  int `json:"side2Score"`
	WinningSide int `json:"winningSide,omitempty"`
}

// ServerPosition names which side/player is serving and which side receives.
type ServerPosition struct {
	SideNumber    int    `json:"sideNumber"`
	PlayerNumber  int    `json:"playerNumber"`
	ReturningSide string `json:"returningSide"`
}

// MatchData is the typed command value for creating or updating a match.
// The transport layer validates and fills it before calling into the store;
// partial payloads are merged over the existing record at the boundary.
type MatchData struct {
	ScoreStringSide1 string         `json:"scoreStringSide1"`
	ScoreStringSide2 string         `json:"scoreStringSide2"`
	Side1PointScore  string         `json:"side1PointScore"`
	Side2PointScore  string         `json:"side2PointScore"`
	Sets             []Set          `json:"sets"`
	Server           ServerPosition `json:"server"`
	Player1Name      string         `json:"player1Name,omitempty"`
	Player2Name      string         `json:"player2Name,omitempty"`
	ScoreboardID     string         `json:"scoreboardId"`
}

// Ref identifies a match by id alone; payload of deletion events.
type Ref struct {
	ID string `json:"id"`
}
