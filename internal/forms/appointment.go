package forms

import (
	"errors"
	"strconv"
	"strings"

	"vetclinic-reception/internal/domain/appointments"
	"vetclinic-reception/internal/domain/pets"
	"vetclinic-reception/internal/domain/vets"
	"vetclinic-reception/internal/events"
	"vetclinic-reception/internal/validate"
)

// AppointmentForm refleja el diálogo de cita. Mascota y veterinario
// llegan como la etiqueta elegida en el combo y se resuelven de vuelta a
// registros al guardar; una etiqueta sin coincidencia aborta el envío.
type AppointmentForm struct {
	Date      string
	Time      string
	PetOption string // "Nombre (ID)"
	VetOption string // "Dr. Nombre Apellidos - Especialidad"
	Motive    string
	Notes     string
	Status    string
}

func (f AppointmentForm) Validate() error {
	var errs validate.FieldErrors
	errs.Add("Fecha", validate.Date(f.Date))
	errs.Add("Hora", validate.Time(f.Time))
	if strings.TrimSpace(f.Motive) == "" {
		errs.Add("Motivo", errors.New("El motivo es obligatorio"))
	}
	if f.Status != "" && !validStatus(f.Status) {
		errs.Add("Estado", errors.New("Estado de cita desconocido"))
	}
	return errs.OrNil()
}

func validStatus(s string) bool {
	for _, st := range appointments.AllStatuses() {
		if string(st) == s {
			return true
		}
	}
	return false
}

// petOptionID extrae el ID del sufijo "(N)" de la etiqueta del combo.
func petOptionID(label string) (int, error) {
	open := strings.LastIndex(label, "(")
	if open < 0 || !strings.HasSuffix(label, ")") {
		return 0, ErrPetNotFound
	}
	id, err := strconv.Atoi(strings.TrimSpace(label[open+1 : len(label)-1]))
	if err != nil {
		return 0, ErrPetNotFound
	}
	return id, nil
}

// Submit valida, resuelve mascota y veterinario, y emite el evento. Un
// fallo de lookup aborta sin mutación parcial.
func (f AppointmentForm) Submit(bus *events.Bus, petStore *pets.Store, vetStore *vets.Store, mode Mode, existingID int) error {
	if err := f.Validate(); err != nil {
		return err
	}

	petID, err := petOptionID(f.PetOption)
	if err != nil {
		return err
	}
	if _, err := petStore.Get(petID); err != nil {
		return ErrPetNotFound
	}

	vet, err := vetStore.FindByLabel(f.VetOption)
	if err != nil {
		return ErrVetNotFound
	}

	status := appointments.Status(f.Status)
	if f.Status == "" {
		status = appointments.StatusScheduled
	}

	a := appointments.Appointment{
		Date:   strings.TrimSpace(f.Date),
		Time:   strings.TrimSpace(f.Time),
		PetID:  petID,
		VetID:  vet.ID,
		Motive: strings.TrimSpace(f.Motive),
		Notes:  strings.TrimSpace(f.Notes),
		Status: status,
	}

	if mode == ModeEdit {
		a.ID = existingID
		bus.Emit(appointments.Updated{Appointment: a})
		return nil
	}
	bus.Emit(appointments.Added{Appointment: a})
	return nil
}
