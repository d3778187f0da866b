package engine

import "context"

// Session holds the last successful analysis result across interactive
// re-runs. A failed refresh leaves the previous result in place so the
// user keeps seeing it until a run succeeds.
type Session struct {
	engine *Engine
	last   *Result
}

// NewSession creates a session around an engine.
func NewSession(e *Engine) *Session {
	return &Session{engine: e}
}

// Refresh runs one analysis pass and, on success, replaces the session's
// result with the new one.
func (s *Session) Refresh(ctx context.Context, in Input) error {
	result, err := s.engine.Run(ctx, in)
	if err != nil {
		return err
	}
	s.last = &result
	return nil
}

// Last returns the most recent successful result, if any.
func (s *Session) Last() (*Result, bool) {
	if s.last == nil {
		return nil, false
	}
	return s.last, true
}
