package state

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	GetSession() (*Session, error)
	SaveSession(s Session) error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
