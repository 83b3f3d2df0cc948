package views

import (
	"time"

	"vetclinic-reception/internal/domain/appointments"
	"vetclinic-reception/internal/domain/clients"
	"vetclinic-reception/internal/domain/pets"
	"vetclinic-reception/internal/domain/vets"
	"vetclinic-reception/internal/events"
)

// Dashboard resume las cuatro colecciones y las citas del día.
type Dashboard struct {
	bus   *events.Bus
	cls   *clients.Store
	pts   *pets.Store
	vts   *vets.Store
	appts *appointments.Store
	now   func() time.Time
}

func NewDashboard(bus *events.Bus, cls *clients.Store, pts *pets.Store, vts *vets.Store, appts *appointments.Store) *Dashboard {
	return &Dashboard{bus: bus, cls: cls, pts: pts, vts: vts, appts: appts, now: time.Now}
}

type Stats struct {
	Clients      int
	Pets         int
	Vets         int
	Appointments int
	TodayPending int
}

func (d *Dashboard) Stats() Stats {
	return Stats{
		Clients:      d.cls.Len(),
		Pets:         d.pts.Len(),
		Vets:         d.vts.Len(),
		Appointments: d.appts.Len(),
		TodayPending: len(d.TodayScheduled()),
	}
}

// TodayScheduled devuelve las citas programadas para la fecha de hoy.
func (d *Dashboard) TodayScheduled() []appointments.Appointment {
	today := d.now().Format("2006-01-02")

	out := make([]appointments.Appointment, 0)
	for _, a := range d.appts.ByDate(today) {
		if a.Status == appointments.StatusScheduled {
			out = append(out, a)
		}
	}
	return out
}

// RecentEvents devuelve las últimas n entradas del historial del bus.
func (d *Dashboard) RecentEvents(n int) []events.Entry {
	hist := d.bus.History()
	if len(hist) <= n {
		return hist
	}
	return hist[len(hist)-n:]
}
