// Package views implementa los controladores de las vistas de lista:
// cada uno posee su proyección filtrada, se suscribe a los eventos de su
// dominio y re-deriva la proyección desde el store ante cada mutación.
package views

import (
	"vetclinic-reception/internal/domain/clients"
	"vetclinic-reception/internal/events"
	"vetclinic-reception/internal/ui/listview"
	"vetclinic-reception/internal/ui/notify"
)

// CategoryAll es el centinela del combo que desactiva el filtro.
const CategoryAll = "Todos"

// Clients es la vista de lista de clientes. Búsqueda sobre DNI, nombres
// y apellidos; filtro por estado.
type Clients struct {
	List *listview.Controller[clients.Client]

	bus    *events.Bus
	store  *clients.Store
	notify *notify.Center
	subs   []events.Subscription
}

func NewClients(bus *events.Bus, store *clients.Store, n *notify.Center) *Clients {
	v := &Clients{
		bus:    bus,
		store:  store,
		notify: n,
		List: listview.New(listview.Config[clients.Client]{
			SearchFields: func(c clients.Client) []string {
				return []string{c.DNI, c.FirstName, c.LastName}
			},
			Category: func(c clients.Client) string { return string(c.Status) },
			AllValue: CategoryAll,
		}),
	}
	v.List.Reload(store.Snapshot())

	v.subs = append(v.subs,
		events.On(bus, func(clients.Added) { v.reload() }),
		events.On(bus, func(clients.Updated) { v.reload() }),
		events.On(bus, func(clients.Deleted) { v.reload() }),
	)
	return v
}

func (v *Clients) reload() {
	v.List.Reload(v.store.Snapshot())
}

// Refresh restablece la proyección completa y confirma con un toast.
func (v *Clients) Refresh() {
	v.List.Reload(v.store.Snapshot())
	v.List.Refresh()
	v.notify.Success("✓ Datos actualizados")
}

// Delete emite el borrado. La confirmación sí/no es responsabilidad del
// shell; una confirmación rechazada simplemente no llega hasta aquí.
func (v *Clients) Delete(id int) {
	v.bus.Emit(clients.Deleted{ID: id})
	v.notify.Success("✓ Cliente eliminado")
}

// Close retira las suscripciones de la vista del bus.
func (v *Clients) Close() {
	for _, s := range v.subs {
		v.bus.Unsubscribe(s)
	}
}
