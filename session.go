package tableview

import (
	"sync"
	"sync/atomic"
)

// Session holds the Adapter a renderer currently displays
// together with the FormatPolicy new adapters are created with.
//
// Renderers call Adapter once per paint and use the returned
// instance for all queries of that paint. Every change builds
// a complete new Adapter first and then publishes it with a
// single atomic store, so readers see either the old or the
// new snapshot and never a mix of both.
type Session struct {
	current atomic.Pointer[Adapter]

	mu     sync.Mutex // serializes changes
	policy FormatPolicy
}

// NewSession returns an empty Session using policy.
func NewSession(policy FormatPolicy) (*Session, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return &Session{policy: policy}, nil
}

// Adapter returns the current Adapter or nil
// if no table is loaded.
func (s *Session) Adapter() *Adapter {
	return s.current.Load()
}

// Policy returns the policy new adapters are created with.
func (s *Session) Policy() FormatPolicy {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.policy
}

// Load replaces the displayed table.
func (s *Session) Load(table *Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := NewAdapter(table, s.policy)
	if err != nil {
		return err
	}
	s.current.Store(a)
	return nil
}

// LoadFrom calls source and displays the returned table.
// If source returns an error the session keeps its current state.
func (s *Session) LoadFrom(source func() (*Table, error)) error {
	table, err := source()
	if err != nil {
		return err
	}
	return s.Load(table)
}

// SetPolicy changes the policy and redisplays
// the current table with it.
func (s *Session) SetPolicy(policy FormatPolicy) error {
	if err := policy.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if cur := s.current.Load(); cur != nil {
		s.current.Store(&Adapter{table: cur.table, policy: policy})
	}
	s.policy = policy
	return nil
}

// DropMissingRows displays the current table without
// rows that have missing values and returns the number
// of removed rows.
func (s *Session) DropMissingRows() (removed int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current.Load()
	if cur == nil {
		return 0, ErrNoTable
	}
	table := cur.table.DropMissingRows()
	if table == cur.table {
		return 0, nil
	}
	s.current.Store(&Adapter{table: table, policy: s.policy})
	return cur.table.NumRows() - table.NumRows(), nil
}

// Close removes the displayed table.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.Store(nil)
}
