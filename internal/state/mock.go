package state

// Mock is a test double for Manager.
type Mock struct {
	session *Session
	saved   []Session
	closed  bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

// NewMockWithSession creates a mock that restores the given session.
func NewMockWithSession(s Session) *Mock {
	return &Mock{session: &s}
}

func (m *Mock) GetSession() (*Session, error) {
	return m.session, nil
}

func (m *Mock) SaveSession(s Session) error {
	m.session = &s
	m.saved = append(m.saved, s)
	return nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Saved returns every session handed to SaveSession, oldest first.
func (m *Mock) Saved() []Session {
	return m.saved
}

// Closed reports whether Close was called.
func (m *Mock) Closed() bool {
	return m.closed
}
