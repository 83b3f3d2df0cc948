package state

import "testing"

func TestUndoRedo_Roundtrip(t *testing.T) {
	u := NewUndoRedo(10)

	if u.CanUndo() || u.CanRedo() {
		t.Fatal("fresh manager must have empty stacks")
	}

	u.Push(Action{Kind: "add_client", Payload: 1})
	u.Push(Action{Kind: "delete_pet", Payload: 2})

	a, ok := u.Undo()
	if !ok || a.Kind != "delete_pet" {
		t.Fatalf("unexpected undo %+v / %v", a, ok)
	}
	if !u.CanRedo() {
		t.Fatal("undo must feed the redo stack")
	}

	a, ok = u.Redo()
	if !ok || a.Kind != "delete_pet" {
		t.Fatalf("unexpected redo %+v / %v", a, ok)
	}
}

func TestUndoRedo_PushClearsRedo(t *testing.T) {
	u := NewUndoRedo(10)

	u.Push(Action{Kind: "a"})
	u.Undo()
	u.Push(Action{Kind: "b"})

	if u.CanRedo() {
		t.Fatal("a new action must clear the redo stack")
	}
}

func TestUndoRedo_BoundedHistory(t *testing.T) {
	u := NewUndoRedo(2)

	u.Push(Action{Kind: "a"})
	u.Push(Action{Kind: "b"})
	u.Push(Action{Kind: "c"})

	a, _ := u.Undo()
	if a.Kind != "c" {
		t.Fatalf("expected c, got %q", a.Kind)
	}
	a, _ = u.Undo()
	if a.Kind != "b" {
		t.Fatalf("expected b, got %q", a.Kind)
	}
	if _, ok := u.Undo(); ok {
		t.Fatal("oldest action must have been discarded")
	}
}

func TestUndoRedo_EmptyPops(t *testing.T) {
	u := NewUndoRedo(0)

	if _, ok := u.Undo(); ok {
		t.Fatal("undo on empty stack must report false")
	}
	if _, ok := u.Redo(); ok {
		t.Fatal("redo on empty stack must report false")
	}
}

func TestUndoRedo_Clear(t *testing.T) {
	u := NewUndoRedo(10)

	u.Push(Action{Kind: "a"})
	u.Undo()
	u.Push(Action{Kind: "b"})
	u.Clear()

	if u.CanUndo() || u.CanRedo() {
		t.Fatal("clear must empty both stacks")
	}
}
