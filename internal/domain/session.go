package domain

type SessionHandle struct {
	SessionID string
}

// SessionStatus is the closed classification of a polled session.
type SessionStatus int

const (
	SessionRunning SessionStatus = iota
	SessionCompleted
	SessionFailed
	SessionStuck
)

func (s SessionStatus) String() string {
	switch s {
	case SessionRunning:
		return "running"
	case SessionCompleted:
		return "completed"
	case SessionFailed:
		return "failed"
	case SessionStuck:
		return "stuck"
	default:
		return "unknown"
	}
}

func (s SessionStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s SessionStatus) IsTerminal() bool {
	return s != SessionRunning
}

// ClassifySessionFlags collapses the remote service's three booleans into a
// single status. When more than one flag is set the precedence is
// failed, then stuck, then complete, and conflict reports true.
func ClassifySessionFlags(isComplete, isFailed, isStuck bool) (status SessionStatus, conflict bool) {
	set := 0
	for _, flag := range []bool{isComplete, isFailed, isStuck} {
		if flag {
			set++
		}
	}
	conflict = set > 1

	switch {
	case isFailed:
		return SessionFailed, conflict
	case isStuck:
		return SessionStuck, conflict
	case isComplete:
		return SessionCompleted, conflict
	default:
		return SessionRunning, false
	}
}

type Evidence struct {
	Query   string `json:"query"`
	Snippet string `json:"snippet"`
}

// SessionSnapshot is the decoded state of a session as of one poll.
type SessionSnapshot struct {
	SessionID          string        `json:"sessionId"`
	Status             SessionStatus `json:"status"`
	Operations         []string      `json:"operations,omitempty"`
	ProblemShort       string        `json:"problemShort,omitempty"`
	WhatHappened       []string      `json:"whatHappened,omitempty"`
	EvidenceCollection []Evidence    `json:"evidenceCollection,omitempty"`
	Recommendation     string        `json:"recommendation,omitempty"`
}

// SeenOperations tracks operation descriptions already reported for a session.
type SeenOperations struct {
	seen map[string]struct{}
}

func NewSeenOperations() *SeenOperations {
	return &SeenOperations{seen: make(map[string]struct{})}
}

// Add records op and reports whether it was new.
func (s *SeenOperations) Add(op string) bool {
	if _, ok := s.seen[op]; ok {
		return false
	}
	s.seen[op] = struct{}{}
	return true
}

func (s *SeenOperations) Len() int {
	return len(s.seen)
}
