// Package app construye el contexto de la aplicación: un objeto armado
// explícitamente al arrancar y pasado a cada vista, en lugar del clásico
// singleton global. La semántica se conserva: un solo bus compartido por
// aplicación en ejecución.
package app

import (
	"vetclinic-reception/internal/config"
	"vetclinic-reception/internal/domain/appointments"
	"vetclinic-reception/internal/domain/clients"
	"vetclinic-reception/internal/domain/pets"
	"vetclinic-reception/internal/domain/vets"
	"vetclinic-reception/internal/events"
	"vetclinic-reception/internal/platform/logger"
	"vetclinic-reception/internal/seed"
	"vetclinic-reception/internal/state"
	"vetclinic-reception/internal/ui/listview"
	"vetclinic-reception/internal/ui/notify"
	"vetclinic-reception/internal/ui/views"
)

// Context agrupa las dependencias compartidas de la aplicación.
type Context struct {
	Config *config.Config
	Log    logger.Logger

	Bus    *events.Bus
	State  *state.Manager
	Data   *state.Data
	Undo   *state.UndoRedo
	Notify *notify.Center

	Clients      *clients.Store
	Pets         *pets.Store
	Vets         *vets.Store
	Appointments *appointments.Store

	ClientsView      *views.Clients
	PetsView         *views.Pets
	VetsView         *views.Vets
	AppointmentsView *views.Appointments
	Dashboard        *views.Dashboard
}

// New arma el contexto completo con el dataset inicial. Los stores se
// suscriben antes que las vistas, de modo que cuando una vista re-deriva
// su proyección el store ya aplicó la mutación.
func New(cfg *config.Config, log logger.Logger) (*Context, error) {
	if log == nil {
		log = logger.Nop()
	}

	bus := events.NewBus(log)
	data, err := state.NewData(bus, cfg.Cache.Size)
	if err != nil {
		return nil, err
	}

	ds := seed.Data()
	ctx := &Context{
		Config: cfg,
		Log:    log,
		Bus:    bus,
		State:  state.NewManager(bus),
		Data:   data,
		Undo:   state.NewUndoRedo(cfg.Undo.MaxHistory),
		Notify: notify.NewCenter(bus, cfg.ToastDuration()),

		Clients:      clients.NewStore(bus, ds.Clients, log),
		Pets:         pets.NewStore(bus, ds.Pets, log),
		Vets:         vets.NewStore(bus, ds.Vets, log),
		Appointments: appointments.NewStore(bus, ds.Appointments, log),
	}

	drag := listview.DragConfig{
		RowHeight:     cfg.UI.RowHeightPX,
		Threshold:     cfg.UI.DragThresholdPX,
		HintThreshold: cfg.UI.DragHintPX,
	}

	ctx.ClientsView = views.NewClients(bus, ctx.Clients, ctx.Notify)
	ctx.PetsView = views.NewPets(bus, ctx.Pets, ctx.Notify)
	ctx.VetsView = views.NewVets(bus, ctx.Vets, ctx.Notify)
	ctx.AppointmentsView = views.NewAppointments(bus, ctx.Appointments, ctx.Notify, drag)
	ctx.Dashboard = views.NewDashboard(bus, ctx.Clients, ctx.Pets, ctx.Vets, ctx.Appointments)

	return ctx, nil
}

// Reset vuelve todo al estado de arranque: dataset inicial, historial de
// eventos vacío, estado de interfaz por defecto y andamiaje limpio.
func (c *Context) Reset() {
	ds := seed.Data()
	c.Clients.Reset(ds.Clients)
	c.Pets.Reset(ds.Pets)
	c.Vets.Reset(ds.Vets)
	c.Appointments.Reset(ds.Appointments)

	c.Bus.ClearHistory()
	c.State.Reset()
	c.Data.InvalidateCache()
	c.Data.ClearPendingChanges()
	c.Undo.Clear()

	c.ClientsView.List.Reload(c.Clients.Snapshot())
	c.PetsView.List.Reload(c.Pets.Snapshot())
	c.VetsView.List.Reload(c.Vets.Snapshot())
	c.AppointmentsView.List.Reload(c.Appointments.Snapshot())
}
