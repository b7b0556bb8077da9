package session

import "sync/atomic"

// State is the download session shared by reference between the UI and the
// worker. The zero value is not usable; call NewState.
type State struct {
	downloading atomic.Bool
	gate        *Gate
}

// NewState creates an idle session: not downloading, not paused
func NewState() *State {
	return &State{gate: NewGate()}
}

// Downloading reports whether a download attempt is running
func (s *State) Downloading() bool {
	return s.downloading.Load()
}

// TryBegin marks the session as downloading and resets the pause gate.
// It returns false if a download was already running.
func (s *State) TryBegin() bool {
	if !s.downloading.CompareAndSwap(false, true) {
		return false
	}
	s.gate.Reset()
	return true
}

// End returns the session to idle and releases a paused worker
func (s *State) End() {
	s.gate.Reset()
	s.downloading.Store(false)
}

// Gate returns the pause gate
func (s *State) Gate() *Gate {
	return s.gate
}

// Paused reports whether the pause gate is set
func (s *State) Paused() bool {
	return s.gate.Paused()
}

// TogglePause flips the pause gate and returns the new paused state.
// It does not touch the downloading flag.
func (s *State) TogglePause() bool {
	return s.gate.Toggle()
}
