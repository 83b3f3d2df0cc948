package listview

import "slices"

// Gesto de reordenamiento manual: presionar una fila, arrastrar en
// vertical y soltar. Solo muta la proyección filtrada local; no se emite
// por el bus ni se escribe en la lista canónica, así que se pierde con
// cualquier Refresh o Reload.

// DragConfig son los umbrales en píxeles del gesto.
type DragConfig struct {
	// RowHeight es la altura aproximada de una fila (65px más padding).
	RowHeight int
	// Threshold es el desplazamiento mínimo para que el soltado actúe.
	Threshold int
	// HintThreshold activa la pista visual de dirección durante el arrastre.
	HintThreshold int
}

func (d DragConfig) withDefaults() DragConfig {
	if d.RowHeight == 0 {
		d.RowHeight = 69
	}
	if d.Threshold == 0 {
		d.Threshold = 40
	}
	if d.HintThreshold == 0 {
		d.HintThreshold = 20
	}
	return d
}

// Direction es la pista visual durante el arrastre y la dirección del
// movimiento confirmado.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return "none"
	}
}

// Move describe un reordenamiento confirmado.
type Move struct {
	From      int
	To        int
	Direction Direction
}

type dragState struct {
	active     bool
	startIndex int
	originY    int
}

// Press inicia el arrastre sobre la fila index con el puntero en originY.
// Devuelve false si el índice queda fuera de la proyección actual.
func (c *Controller[T]) Press(index, originY int) bool {
	if index < 0 || index >= len(c.filtered) {
		return false
	}
	c.drag = dragState{active: true, startIndex: index, originY: originY}
	return true
}

// Dragging informa si hay un arrastre en curso.
func (c *Controller[T]) Dragging() bool {
	return c.drag.active
}

// Hint devuelve la pista de dirección para la posición actual del
// puntero. Es puramente cosmética: todavía no se reordena nada.
func (c *Controller[T]) Hint(y int) Direction {
	if !c.drag.active {
		return DirectionNone
	}
	delta := y - c.drag.originY
	switch {
	case delta < -c.cfg.Drag.HintThreshold:
		return DirectionUp
	case delta > c.cfg.Drag.HintThreshold:
		return DirectionDown
	default:
		return DirectionNone
	}
}

// Release termina el gesto. Solo actúa si el desplazamiento supera el
// umbral; las filas movidas son delta/RowHeight con truncamiento hacia
// cero y el destino se acota a los límites de la proyección. Devuelve
// false si no hubo movimiento.
func (c *Controller[T]) Release(y int) (Move, bool) {
	if !c.drag.active {
		return Move{}, false
	}
	st := c.drag
	c.drag = dragState{}

	delta := y - st.originY
	if abs(delta) <= c.cfg.Drag.Threshold {
		return Move{}, false
	}

	rows := delta / c.cfg.Drag.RowHeight
	target := clamp(st.startIndex+rows, 0, len(c.filtered)-1)
	if target == st.startIndex {
		return Move{}, false
	}

	item := c.filtered[st.startIndex]
	c.filtered = slices.Delete(c.filtered, st.startIndex, st.startIndex+1)
	c.filtered = slices.Insert(c.filtered, target, item)

	dir := DirectionDown
	if target < st.startIndex {
		dir = DirectionUp
	}
	return Move{From: st.startIndex, To: target, Direction: dir}, true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
