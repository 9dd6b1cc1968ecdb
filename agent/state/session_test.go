package state

import (
	"errors"
	"testing"
)

func TestNewBundleSessionMintsID(t *testing.T) {
	t.Parallel()

	s := NewBundleSession("", "model-a")
	if s.SessionID == "" {
		t.Fatal("expected minted session id")
	}
	if s.Status != CallIdle {
		t.Fatalf("new session status = %s, want idle", s.Status)
	}

	s2 := NewBundleSession("sess-1", "model-a")
	if s2.SessionID != "sess-1" {
		t.Fatalf("session id = %s, want sess-1", s2.SessionID)
	}
}

func TestCallLifecycleSuccess(t *testing.T) {
	t.Parallel()

	s := NewBundleSession("sess-1", "model-a")

	if err := s.Begin(); err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	if s.Status != CallAwaiting {
		t.Fatalf("status = %s, want awaiting", s.Status)
	}

	if err := s.Complete("coordinator", "model-a"); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if s.Status != CallIdle {
		t.Fatalf("status after complete = %s, want idle", s.Status)
	}
	if s.LastRole != "coordinator" || s.LastModelID != "model-a" {
		t.Fatalf("introspection = (%s, %s)", s.LastRole, s.LastModelID)
	}
}

func TestCallLifecycleFailureIsTerminalPerCall(t *testing.T) {
	t.Parallel()

	s := NewBundleSession("sess-1", "model-a")

	if err := s.Begin(); err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	if err := s.Fail(); err != nil {
		t.Fatalf("Fail() error = %v", err)
	}
	if s.Status != CallIdle {
		t.Fatalf("status after fail = %s, want idle", s.Status)
	}

	// A fresh submit may be attempted after a failed call.
	if err := s.Begin(); err != nil {
		t.Fatalf("Begin() after failure error = %v", err)
	}
}

func TestBeginWhileInFlight(t *testing.T) {
	t.Parallel()

	s := NewBundleSession("sess-1", "model-a")

	if err := s.Begin(); err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	err := s.Begin()
	if !errors.Is(err, ErrCallInFlight) {
		t.Fatalf("expected ErrCallInFlight, got %v", err)
	}
}

func TestInvalidTransitions(t *testing.T) {
	t.Parallel()

	s := NewBundleSession("sess-1", "model-a")

	if err := s.Complete("coordinator", "model-a"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("Complete() on idle: expected ErrInvalidTransition, got %v", err)
	}
	if err := s.Fail(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("Fail() on idle: expected ErrInvalidTransition, got %v", err)
	}
}
