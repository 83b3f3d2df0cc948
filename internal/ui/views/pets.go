package views

import (
	"vetclinic-reception/internal/domain/pets"
	"vetclinic-reception/internal/events"
	"vetclinic-reception/internal/ui/listview"
	"vetclinic-reception/internal/ui/notify"
)

// Pets es la vista de lista de mascotas. Búsqueda sobre nombre y raza;
// filtro por estado.
type Pets struct {
	List *listview.Controller[pets.Pet]

	bus    *events.Bus
	store  *pets.Store
	notify *notify.Center
	subs   []events.Subscription
}

func NewPets(bus *events.Bus, store *pets.Store, n *notify.Center) *Pets {
	v := &Pets{
		bus:    bus,
		store:  store,
		notify: n,
		List: listview.New(listview.Config[pets.Pet]{
			SearchFields: func(p pets.Pet) []string {
				return []string{p.Name, p.Breed}
			},
			Category: func(p pets.Pet) string { return string(p.Status) },
			AllValue: CategoryAll,
		}),
	}
	v.List.Reload(store.Snapshot())

	v.subs = append(v.subs,
		events.On(bus, func(pets.Added) { v.reload() }),
		events.On(bus, func(pets.Updated) { v.reload() }),
		events.On(bus, func(pets.Deleted) { v.reload() }),
	)
	return v
}

func (v *Pets) reload() {
	v.List.Reload(v.store.Snapshot())
}

func (v *Pets) Refresh() {
	v.List.Reload(v.store.Snapshot())
	v.List.Refresh()
	v.notify.Success("✓ Datos actualizados")
}

func (v *Pets) Delete(id int) {
	v.bus.Emit(pets.Deleted{ID: id})
	v.notify.Success("✓ Mascota eliminada")
}

func (v *Pets) Close() {
	for _, s := range v.subs {
		v.bus.Unsubscribe(s)
	}
}
