package listview

import "testing"

func newDragController(t *testing.T) *Controller[row] {
	t.Helper()
	c := New(Config[row]{
		SearchFields: func(r row) []string { return []string{r.Name} },
		Category:     func(r row) string { return r.Status },
		AllValue:     "Todos",
	})
	c.Reload([]row{
		{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}, {Name: "E"},
	})
	return c
}

func TestDrag_PressOutOfRange(t *testing.T) {
	c := newDragController(t)

	if c.Press(-1, 100) {
		t.Fatal("negative index must not start a drag")
	}
	if c.Press(5, 100) {
		t.Fatal("index past the projection must not start a drag")
	}
	if c.Dragging() {
		t.Fatal("no drag should be active")
	}
}

func TestDrag_ReleaseBelowThresholdIsNoOp(t *testing.T) {
	c := newDragController(t)

	c.Press(1, 100)
	if _, ok := c.Release(140); ok {
		t.Fatal("40px displacement must not move anything")
	}
	assertNames(t, c, "A", "B", "C", "D", "E")
	if c.Dragging() {
		t.Fatal("release must end the gesture")
	}
}

func TestDrag_RowsMovedIsDeltaOverRowHeight(t *testing.T) {
	c := newDragController(t)

	// 150px hacia abajo son 2 filas (150/69 = 2).
	c.Press(0, 100)
	mv, ok := c.Release(250)
	if !ok {
		t.Fatal("expected a move")
	}
	if mv.From != 0 || mv.To != 2 || mv.Direction != DirectionDown {
		t.Fatalf("unexpected move %+v", mv)
	}
	assertNames(t, c, "B", "C", "A", "D", "E")
}

func TestDrag_UpwardTruncatesTowardZero(t *testing.T) {
	c := newDragController(t)

	// -130px es una sola fila hacia arriba (-130/69 trunca a -1).
	c.Press(3, 300)
	mv, ok := c.Release(170)
	if !ok {
		t.Fatal("expected a move")
	}
	if mv.From != 3 || mv.To != 2 || mv.Direction != DirectionUp {
		t.Fatalf("unexpected move %+v", mv)
	}
	assertNames(t, c, "A", "B", "D", "C", "E")
}

func TestDrag_AboveThresholdButUnderOneRowIsNoOp(t *testing.T) {
	c := newDragController(t)

	// 50px superan el umbral pero 50/69 trunca a 0 filas.
	c.Press(2, 100)
	if _, ok := c.Release(150); ok {
		t.Fatal("under one row height must not move anything")
	}
	assertNames(t, c, "A", "B", "C", "D", "E")
}

func TestDrag_TargetClampedToBounds(t *testing.T) {
	c := newDragController(t)

	c.Press(3, 1000)
	mv, ok := c.Release(0)
	if !ok {
		t.Fatal("expected a move")
	}
	if mv.To != 0 || mv.Direction != DirectionUp {
		t.Fatalf("expected clamp to index 0, got %+v", mv)
	}
	assertNames(t, c, "D", "A", "B", "C", "E")

	c.Press(1, 0)
	mv, ok = c.Release(1000)
	if !ok {
		t.Fatal("expected a move")
	}
	if mv.To != 4 {
		t.Fatalf("expected clamp to last index, got %+v", mv)
	}
	assertNames(t, c, "D", "B", "C", "E", "A")
}

func TestDrag_Hints(t *testing.T) {
	c := newDragController(t)

	if c.Hint(500) != DirectionNone {
		t.Fatal("hint without an active drag must be none")
	}

	c.Press(2, 100)
	if got := c.Hint(110); got != DirectionNone {
		t.Fatalf("within hint threshold expected none, got %v", got)
	}
	if got := c.Hint(130); got != DirectionDown {
		t.Fatalf("expected down hint, got %v", got)
	}
	if got := c.Hint(70); got != DirectionUp {
		t.Fatalf("expected up hint, got %v", got)
	}
}

func TestDrag_ReorderOnlyAffectsProjection(t *testing.T) {
	c := newDragController(t)

	c.Press(0, 0)
	if _, ok := c.Release(200); !ok {
		t.Fatal("expected a move")
	}

	// Reaplicar los filtros recalcula desde la copia completa y el orden
	// manual se pierde.
	c.SetSearch("")
	assertNames(t, c, "A", "B", "C", "D", "E")
}

func TestDrag_ReleaseWithoutPress(t *testing.T) {
	c := newDragController(t)

	if _, ok := c.Release(500); ok {
		t.Fatal("release without press must be a no-op")
	}
}
