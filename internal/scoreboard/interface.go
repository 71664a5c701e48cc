package scoreboard

// Store defines the interface for managing the scoreboard collection.
type Store interface {
	Load() error
	FindAll() []Scoreboard
	FindOne(id string) (Scoreboard, bool)
	Create(name string) (Scoreboard, error)
	Delete(id string) bool
	UpdateAll(scoreboards []Scoreboard) ([]Scoreboard, error)
}
