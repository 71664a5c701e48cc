package tennis

// Store defines the interface for managing the match collection.
type Store interface {
	Load() error
	FindAll() []Match
	FindOne(id string) (Match, bool)
	FindByScoreboard(scoreboardID string) (Match, bool)
	CurrentMatch() (Match, bool)
	Create(data MatchData) (Match, error)
	Update(id string, data MatchData) (Match, bool)
	Delete(id string) bool
}
