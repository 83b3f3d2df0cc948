package forms

import (
	"strings"

	"vetclinic-reception/internal/domain/clients"
	"vetclinic-reception/internal/events"
	"vetclinic-reception/internal/validate"
)

// ClientForm refleja el diálogo de cliente campo a campo.
type ClientForm struct {
	DNI             string
	FirstName       string
	PaternalSurname string
	MaternalSurname string
	Phone           string
	Email           string
	Address         string
}

// Validate ejecuta todos los validadores de campo y agrega los fallos.
func (f ClientForm) Validate() error {
	var errs validate.FieldErrors
	errs.Add("DNI", validate.DNI(f.DNI))
	errs.Add("Nombres", validate.PersonalName(f.FirstName, "nombre"))
	errs.Add("Apellido Paterno", validate.PersonalName(f.PaternalSurname, "apellido"))
	errs.Add("Apellido Materno", validate.PersonalName(f.MaternalSurname, "apellido"))
	errs.Add("Teléfono", validate.Phone(f.Phone))
	errs.Add("Email", validate.Email(f.Email))
	errs.Add("Dirección", validate.Address(f.Address))
	return errs.OrNil()
}

// Record arma el registro a partir de los campos ya validados.
func (f ClientForm) Record() clients.Client {
	return clients.Client{
		DNI:       strings.TrimSpace(f.DNI),
		FirstName: strings.TrimSpace(f.FirstName),
		LastName:  strings.TrimSpace(f.PaternalSurname) + " " + strings.TrimSpace(f.MaternalSurname),
		Phone:     strings.TrimSpace(f.Phone),
		Email:     strings.TrimSpace(f.Email),
		Address:   strings.TrimSpace(f.Address),
		Status:    clients.StatusActive,
	}
}

// Submit valida y emite el evento de alta o edición. Con cualquier campo
// inválido no se emite nada: el guardado es todo-o-nada.
func (f ClientForm) Submit(bus *events.Bus, mode Mode, existingID int) error {
	if err := f.Validate(); err != nil {
		return err
	}

	c := f.Record()
	if mode == ModeEdit {
		c.ID = existingID
		bus.Emit(clients.Updated{Client: c})
		return nil
	}
	bus.Emit(clients.Added{Client: c})
	return nil
}
