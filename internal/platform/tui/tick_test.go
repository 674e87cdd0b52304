package tui

import (
	"testing"
	"time"
)

func TestTeaSchedulerArm(t *testing.T) {
	var s teaScheduler
	if s.Take() != nil {
		t.Fatal("fresh scheduler should have no pending command")
	}

	s.Arm(100 * time.Millisecond)
	if !s.armed || s.interval != 100*time.Millisecond {
		t.Fatalf("Arm did not record schedule: %+v", s)
	}
	if s.Take() == nil {
		t.Fatal("Arm should park a tick command")
	}
	if s.Take() != nil {
		t.Fatal("Take should clear the parked command")
	}
}

func TestTeaSchedulerConsume(t *testing.T) {
	var s teaScheduler
	s.Arm(50 * time.Millisecond)
	first := s.gen
	s.Take()

	if !s.Consume(TickMsg{Gen: first}) {
		t.Fatal("live tick should be consumed")
	}
	if s.Take() == nil {
		t.Fatal("consumed tick should queue the next one")
	}

	// Re-arming makes ticks of the earlier arm stale
	s.Arm(40 * time.Millisecond)
	if s.Consume(TickMsg{Gen: first}) {
		t.Error("stale tick should be dropped")
	}
	if !s.Consume(TickMsg{Gen: s.gen}) {
		t.Error("tick of the new arm should be consumed")
	}
}

func TestTeaSchedulerStop(t *testing.T) {
	var s teaScheduler
	s.Arm(50 * time.Millisecond)
	gen := s.gen

	s.Stop()
	if s.Take() != nil {
		t.Error("Stop should drop the parked command")
	}
	if s.Consume(TickMsg{Gen: gen}) {
		t.Error("tick after Stop should be dropped")
	}
	if s.Take() != nil {
		t.Error("dropped tick should not queue another")
	}
}
