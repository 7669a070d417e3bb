package anim

import (
	"reflect"
	"testing"
)

func TestRegistryOrderAndOverwrite(t *testing.T) {
	r := newRegistry()

	walk := NewAnimation(mustSequence(t, "walk", []int{0, 1}, 0.1, true))
	run := NewAnimation(mustSequence(t, "run", []int{2, 3}, 0.1, true))
	r.put("walk", walk)
	r.put("run", run)

	if !reflect.DeepEqual(r.names(), []string{"walk", "run"}) {
		t.Fatalf("expected insertion order, got %v", r.names())
	}

	// Overwriting keeps the slot, stops the replaced animation, and
	// reports it.
	walk.Play()
	walk2 := NewAnimation(mustSequence(t, "walk", []int{4, 5}, 0.1, false))
	replaced := r.put("walk", walk2)
	if replaced != walk {
		t.Fatalf("put should return the replaced animation")
	}
	if walk.State() != Stopped {
		t.Fatalf("replaced animation should be stopped, got %v", walk.State())
	}
	if got, _ := r.get("walk"); got != walk2 {
		t.Fatalf("get should serve the replacement")
	}
	if !reflect.DeepEqual(r.names(), []string{"walk", "run"}) {
		t.Fatalf("overwrite must not reorder, got %v", r.names())
	}
	if r.len() != 2 {
		t.Fatalf("expected 2 entries, got %d", r.len())
	}
}

func TestRegistryClear(t *testing.T) {
	r := newRegistry()
	a := NewAnimation(mustSequence(t, "walk", []int{0, 1}, 0.1, true))
	a.Play()
	r.put("walk", a)

	r.clear()
	if a.State() != Stopped {
		t.Fatalf("clear should stop held animations, got %v", a.State())
	}
	if r.len() != 0 || len(r.names()) != 0 {
		t.Fatalf("expected empty registry after clear")
	}
	if _, ok := r.get("walk"); ok {
		t.Fatalf("cleared registry must not serve entries")
	}
}
