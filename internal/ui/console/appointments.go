package console

import (
	"fmt"
	"text/tabwriter"

	"vetclinic-reception/internal/domain/appointments"
	"vetclinic-reception/internal/forms"
	"vetclinic-reception/internal/ui/listview"
)

func (s *Shell) appointmentsLoop() {
	for {
		s.printToasts()
		s.renderAppointments()

		choice, ok := s.prompt("[b]uscar [f]iltrar [l]impiar [r]efrescar [a]gregar [e]ditar [v]er [d]eliminar [m]over [0]volver")
		if !ok {
			return
		}

		v := s.ctx.AppointmentsView
		switch choice {
		case "b":
			if text, ok := s.prompt("Buscar por motivo"); ok {
				v.List.SetSearch(text)
			}
		case "f":
			if cat, ok := s.prompt("Estado (Todos/Scheduled/Attended/Cancelled)"); ok {
				v.List.SetCategory(cat)
			}
		case "l":
			v.List.ClearFilters()
		case "r":
			v.Refresh()
		case "a":
			s.appointmentDialog(forms.ModeAdd, nil)
		case "e":
			if a, ok := s.pickAppointment(); ok {
				s.appointmentDialog(forms.ModeEdit, &a)
			}
		case "v":
			if a, ok := s.pickAppointment(); ok {
				s.showAppointment(a)
			}
		case "d":
			if a, ok := s.pickAppointment(); ok {
				if s.confirm(fmt.Sprintf("¿Eliminar la cita del %s %s?", a.Date, a.Time)) {
					v.Delete(a.ID)
				}
			}
		case "m":
			s.moveAppointment()
		case "0":
			return
		}
	}
}

// moveAppointment reproduce el gesto de arrastre con teclado: fila de
// origen y desplazamiento vertical en píxeles (negativo = hacia arriba).
func (s *Shell) moveAppointment() {
	v := s.ctx.AppointmentsView

	row, ok := s.promptInt("Fila a mover (desde 0)")
	if !ok {
		return
	}
	if !v.Press(row, 0) {
		fmt.Fprintln(s.out, "Fila fuera de rango")
		return
	}

	delta, ok := s.promptInt("Desplazamiento en px")
	if !ok {
		v.Release(0) // soltar sin mover
		return
	}

	if hint := v.Hint(delta); hint != listview.DirectionNone {
		fmt.Fprintf(s.out, "Arrastrando (%s)...\n", hint)
	}
	if _, moved := v.Release(delta); !moved {
		fmt.Fprintln(s.out, "Sin cambios: desplazamiento por debajo del umbral")
	}
}

func (s *Shell) renderAppointments() {
	v := s.ctx.AppointmentsView
	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tFecha\tHora\tMascota\tVeterinario\tMotivo\tEstado")
	for i, a := range v.List.Rows() {
		pet := "-"
		if p, err := s.ctx.Pets.Get(a.PetID); err == nil {
			pet = p.Name
		}
		vet := "-"
		if vt, err := s.ctx.Vets.Get(a.VetID); err == nil {
			vet = vt.FullName()
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n", i, a.Date, a.Time, pet, vet, a.Motive, a.Status)
	}
	w.Flush()
	fmt.Fprintf(s.out, "Mostrando %d de %d citas\n", v.List.Visible(), v.List.Total())
}

func (s *Shell) pickAppointment() (appointments.Appointment, bool) {
	id, ok := s.promptInt("ID de la cita")
	if !ok {
		return appointments.Appointment{}, false
	}
	a, err := s.ctx.Appointments.Get(id)
	if err != nil {
		fmt.Fprintln(s.out, "Cita no encontrada")
		return appointments.Appointment{}, false
	}
	return a, true
}

func (s *Shell) showAppointment(a appointments.Appointment) {
	fmt.Fprintf(s.out, "Fecha: %s\nHora: %s\nMotivo: %s\nObservaciones: %s\nEstado: %s\n",
		a.Date, a.Time, a.Motive, a.Notes, a.Status)
}

func (s *Shell) appointmentDialog(mode forms.Mode, existing *appointments.Appointment) {
	var cur forms.AppointmentForm
	id := 0
	if existing != nil {
		id = existing.ID
		cur = forms.AppointmentForm{
			Date:   existing.Date,
			Time:   existing.Time,
			Motive: existing.Motive,
			Notes:  existing.Notes,
			Status: string(existing.Status),
		}
		if p, err := s.ctx.Pets.Get(existing.PetID); err == nil {
			cur.PetOption = fmt.Sprintf("%s (%d)", p.Name, p.ID)
		}
		if vt, err := s.ctx.Vets.Get(existing.VetID); err == nil {
			cur.VetOption = fmt.Sprintf("Dr. %s - %s", vt.FullName(), vt.Specialty)
		}
	}

	fmt.Fprintln(s.out, "Mascotas:")
	for _, opt := range s.ctx.Pets.Options() {
		fmt.Fprintf(s.out, "  %s\n", opt)
	}
	fmt.Fprintln(s.out, "Veterinarios:")
	for _, opt := range s.ctx.Vets.Options() {
		fmt.Fprintf(s.out, "  %s\n", opt)
	}

	f := forms.AppointmentForm{
		Date:      s.promptDefault("Fecha (YYYY-MM-DD)", cur.Date),
		Time:      s.promptDefault("Hora (HH:MM)", cur.Time),
		PetOption: s.promptDefault("Mascota", cur.PetOption),
		VetOption: s.promptDefault("Veterinario", cur.VetOption),
		Motive:    s.promptDefault("Motivo", cur.Motive),
		Notes:     s.promptDefault("Observaciones", cur.Notes),
		Status:    s.promptDefault("Estado (Scheduled/Attended/Cancelled)", cur.Status),
	}

	if err := f.Submit(s.ctx.Bus, s.ctx.Pets, s.ctx.Vets, mode, id); err != nil {
		s.showError(err)
		return
	}
	if mode == forms.ModeEdit {
		s.ctx.Notify.Success("✓ Cita actualizada")
	} else {
		s.ctx.Notify.Success("✓ Cita agendada")
	}
}
