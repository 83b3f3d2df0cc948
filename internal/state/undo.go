package state

import "sync"

// Action es una entrada del historial de deshacer. Los handlers CRUD no
// registran acciones todavía: el gestor existe como infraestructura.
type Action struct {
	Kind    string
	Payload any
}

// UndoRedo mantiene pilas acotadas de deshacer y rehacer. Una acción
// nueva vacía la pila de rehacer; superado el máximo se descarta la
// acción más antigua.
type UndoRedo struct {
	mu   sync.Mutex
	max  int
	undo []Action
	redo []Action
}

func NewUndoRedo(maxHistory int) *UndoRedo {
	if maxHistory <= 0 {
		maxHistory = 50
	}
	return &UndoRedo{max: maxHistory}
}

func (u *UndoRedo) Push(a Action) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.undo = append(u.undo, a)
	if len(u.undo) > u.max {
		u.undo = u.undo[1:]
	}
	u.redo = nil
}

func (u *UndoRedo) Undo() (Action, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if len(u.undo) == 0 {
		return Action{}, false
	}
	a := u.undo[len(u.undo)-1]
	u.undo = u.undo[:len(u.undo)-1]
	u.redo = append(u.redo, a)
	return a, true
}

func (u *UndoRedo) Redo() (Action, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if len(u.redo) == 0 {
		return Action{}, false
	}
	a := u.redo[len(u.redo)-1]
	u.redo = u.redo[:len(u.redo)-1]
	u.undo = append(u.undo, a)
	return a, true
}

func (u *UndoRedo) CanUndo() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.undo) > 0
}

func (u *UndoRedo) CanRedo() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.redo) > 0
}

func (u *UndoRedo) Clear() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.undo = nil
	u.redo = nil
}
