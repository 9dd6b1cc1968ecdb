package state

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CallStatus is the per-call lifecycle of a bundle submit.
type CallStatus string

const (
	CallIdle       CallStatus = "idle"
	CallAwaiting   CallStatus = "awaiting_model_response"
	CallResponding CallStatus = "responding"
	CallFailed     CallStatus = "failed"
)

var (
	ErrInvalidTransition = errors.New("invalid call transition")
	ErrCallInFlight      = errors.New("call already in flight")
)

// transitions is the allowed state machine:
// Idle -> Awaiting on submit; Awaiting -> Responding on success (then back to
// Idle); Awaiting -> Failed on unrecoverable upstream error. Failed is
// terminal for that call only; the session returns to Idle so the caller may
// attempt a fresh submit. No automatic retry, no model substitution.
var transitions = map[CallStatus][]CallStatus{
	CallIdle:       {CallAwaiting},
	CallAwaiting:   {CallResponding, CallFailed},
	CallResponding: {CallIdle},
	CallFailed:     {CallIdle},
}

func allowed(from, to CallStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// BundleSession is the mutable per-session record owned by exactly one
// bundle. It carries identity and the call state machine; conversation
// history is deliberately not stored here. Not safe for concurrent use;
// a bundle belongs to one logical session.
type BundleSession struct {
	SessionID string     `json:"session_id"`
	ModelID   string     `json:"model_id"`
	Status    CallStatus `json:"status"`

	// Introspection for callers and tests: last completed routing decision.
	LastRole    string    `json:"last_role,omitempty"`
	LastModelID string    `json:"last_model_id,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`

	now func() time.Time
}

// NewBundleSession mints a session record. An empty session id gets a fresh
// uuid, matching how transports that do not carry their own ids behave.
func NewBundleSession(sessionID, modelID string) *BundleSession {
	id := strings.TrimSpace(sessionID)
	if id == "" {
		id = uuid.NewString()
	}
	s := &BundleSession{
		SessionID: id,
		ModelID:   modelID,
		Status:    CallIdle,
		now:       time.Now,
	}
	s.UpdatedAt = s.now().UTC()
	return s
}

func (s *BundleSession) clock() func() time.Time {
	if s.now == nil {
		return time.Now
	}
	return s.now
}

// Begin moves Idle -> Awaiting. ErrCallInFlight when a call is pending.
func (s *BundleSession) Begin() error {
	if s.Status == CallAwaiting {
		return ErrCallInFlight
	}
	return s.transition(CallAwaiting)
}

// Complete moves Awaiting -> Responding -> Idle and records introspection.
func (s *BundleSession) Complete(role, modelID string) error {
	if err := s.transition(CallResponding); err != nil {
		return err
	}
	s.LastRole = role
	s.LastModelID = modelID
	return s.transition(CallIdle)
}

// Fail moves Awaiting -> Failed -> Idle. The failed call is terminal; the
// session is immediately reusable for a fresh submit.
func (s *BundleSession) Fail() error {
	if err := s.transition(CallFailed); err != nil {
		return err
	}
	return s.transition(CallIdle)
}

func (s *BundleSession) transition(to CallStatus) error {
	if !allowed(s.Status, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.Status, to)
	}
	s.Status = to
	s.UpdatedAt = s.clock()().UTC()
	return nil
}
