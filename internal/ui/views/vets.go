package views

import (
	"vetclinic-reception/internal/domain/vets"
	"vetclinic-reception/internal/events"
	"vetclinic-reception/internal/ui/listview"
	"vetclinic-reception/internal/ui/notify"
)

// Vets es la vista de lista de veterinarios. Búsqueda sobre nombres,
// apellidos y especialidad; filtro por estado.
type Vets struct {
	List *listview.Controller[vets.Veterinarian]

	bus    *events.Bus
	store  *vets.Store
	notify *notify.Center
	subs   []events.Subscription
}

func NewVets(bus *events.Bus, store *vets.Store, n *notify.Center) *Vets {
	v := &Vets{
		bus:    bus,
		store:  store,
		notify: n,
		List: listview.New(listview.Config[vets.Veterinarian]{
			SearchFields: func(vt vets.Veterinarian) []string {
				return []string{vt.FirstName, vt.LastName, vt.Specialty}
			},
			Category: func(vt vets.Veterinarian) string { return string(vt.Status) },
			AllValue: CategoryAll,
		}),
	}
	v.List.Reload(store.Snapshot())

	v.subs = append(v.subs,
		events.On(bus, func(vets.Added) { v.reload() }),
		events.On(bus, func(vets.Updated) { v.reload() }),
		events.On(bus, func(vets.Deleted) { v.reload() }),
	)
	return v
}

func (v *Vets) reload() {
	v.List.Reload(v.store.Snapshot())
}

func (v *Vets) Refresh() {
	v.List.Reload(v.store.Snapshot())
	v.List.Refresh()
	v.notify.Success("✓ Datos actualizados")
}

func (v *Vets) Delete(id int) {
	v.bus.Emit(vets.Deleted{ID: id})
	v.notify.Success("✓ Veterinario eliminado")
}

func (v *Vets) Close() {
	for _, s := range v.subs {
		v.bus.Unsubscribe(s)
	}
}
