package views

import (
	"vetclinic-reception/internal/domain/appointments"
	"vetclinic-reception/internal/events"
	"vetclinic-reception/internal/ui/listview"
	"vetclinic-reception/internal/ui/notify"
)

// Appointments es la vista de lista de citas. Búsqueda sobre el motivo;
// filtro por estado. Es la única vista con reordenamiento por arrastre.
type Appointments struct {
	List *listview.Controller[appointments.Appointment]

	bus    *events.Bus
	store  *appointments.Store
	notify *notify.Center
	subs   []events.Subscription
}

func NewAppointments(bus *events.Bus, store *appointments.Store, n *notify.Center, drag listview.DragConfig) *Appointments {
	v := &Appointments{
		bus:    bus,
		store:  store,
		notify: n,
		List: listview.New(listview.Config[appointments.Appointment]{
			SearchFields: func(a appointments.Appointment) []string {
				return []string{a.Motive}
			},
			Category: func(a appointments.Appointment) string { return string(a.Status) },
			AllValue: CategoryAll,
			Drag:     drag,
		}),
	}
	v.List.Reload(store.Snapshot())

	v.subs = append(v.subs,
		events.On(bus, func(appointments.Added) { v.reload() }),
		events.On(bus, func(appointments.Updated) { v.reload() }),
		events.On(bus, func(appointments.Deleted) { v.reload() }),
	)
	return v
}

func (v *Appointments) reload() {
	v.List.Reload(v.store.Snapshot())
}

func (v *Appointments) Refresh() {
	v.List.Reload(v.store.Snapshot())
	v.List.Refresh()
	v.notify.Success("✓ Datos actualizados")
}

func (v *Appointments) Delete(id int) {
	v.bus.Emit(appointments.Deleted{ID: id})
	v.notify.Success("✓ Cita eliminada")
}

// Press, Hint y Release delegan el gesto de arrastre en el controlador.
// El reorden resultante vive solo en la proyección filtrada de esta
// vista: no se emite por el bus ni sobrevive a un Refresh.
func (v *Appointments) Press(index, y int) bool { return v.List.Press(index, y) }

func (v *Appointments) Hint(y int) listview.Direction { return v.List.Hint(y) }

func (v *Appointments) Release(y int) (listview.Move, bool) {
	move, ok := v.List.Release(y)
	if !ok {
		return move, false
	}

	if move.Direction == listview.DirectionUp {
		v.notify.Success("✓ Cita movida hacia arriba")
	} else {
		v.notify.Success("✓ Cita movida hacia abajo")
	}
	return move, true
}

func (v *Appointments) Close() {
	for _, s := range v.subs {
		v.bus.Unsubscribe(s)
	}
}
