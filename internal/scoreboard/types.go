package scoreboard

import "fmt"

// Scoreboard is one named display unit representing a physical or virtual
// court feed.
type Scoreboard struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Ref identifies a scoreboard by id alone. It is the payload of deletion
// events and broadcasts.
type Ref struct {
	ID string `json:"id"`
}

// ValidationError rejects a bulk replace whose elements are malformed. The
// store's collection is left untouched when one is returned.
type ValidationError struct {
	Index int
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("scoreboard at index %d must have a valid %s", e.Index, e.Field)
}

// legacyRecord mirrors the historical on-disk shape, where the display name
// lived under "courtname" and ids could be absent.
type legacyRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CourtName string `json:"courtname"`
}
