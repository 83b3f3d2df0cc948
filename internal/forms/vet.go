package forms

import (
	"strings"

	"vetclinic-reception/internal/domain/vets"
	"vetclinic-reception/internal/events"
	"vetclinic-reception/internal/validate"
)

// VetForm refleja el diálogo de veterinario.
type VetForm struct {
	DNI             string
	FirstName       string
	PaternalSurname string
	MaternalSurname string
	Specialty       string
	License         string
	Phone           string
	Email           string
}

func (f VetForm) Validate() error {
	var errs validate.FieldErrors
	errs.Add("DNI", validate.DNI(f.DNI))
	errs.Add("Nombres", validate.PersonalName(f.FirstName, "nombre"))
	errs.Add("Apellido Paterno", validate.PersonalName(f.PaternalSurname, "apellido"))
	errs.Add("Apellido Materno", validate.PersonalName(f.MaternalSurname, "apellido"))
	errs.Add("Especialidad", validate.PersonalName(f.Specialty, "nombre de la especialidad"))
	errs.Add("Colegiatura", validate.License(f.License))
	errs.Add("Teléfono", validate.Phone(f.Phone))
	errs.Add("Email", validate.Email(f.Email))
	return errs.OrNil()
}

func (f VetForm) Record() vets.Veterinarian {
	return vets.Veterinarian{
		DNI:       strings.TrimSpace(f.DNI),
		FirstName: strings.TrimSpace(f.FirstName),
		LastName:  strings.TrimSpace(f.PaternalSurname) + " " + strings.TrimSpace(f.MaternalSurname),
		Specialty: strings.TrimSpace(f.Specialty),
		License:   strings.TrimSpace(f.License),
		Phone:     strings.TrimSpace(f.Phone),
		Email:     strings.TrimSpace(f.Email),
		Status:    vets.StatusActive,
	}
}

func (f VetForm) Submit(bus *events.Bus, mode Mode, existingID int) error {
	if err := f.Validate(); err != nil {
		return err
	}

	v := f.Record()
	if mode == ModeEdit {
		v.ID = existingID
		bus.Emit(vets.Updated{Veterinarian: v})
		return nil
	}
	bus.Emit(vets.Added{Veterinarian: v})
	return nil
}
