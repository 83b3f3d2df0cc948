package forms

import (
	"errors"
	"strconv"
	"strings"

	"vetclinic-reception/internal/domain/pets"
	"vetclinic-reception/internal/events"
	"vetclinic-reception/internal/validate"
)

// PetForm refleja el diálogo de mascota. Edad y peso llegan como texto,
// tal como los escribe el usuario; se convierten recién en Record.
type PetForm struct {
	OwnerID   int // elegido de un combo de clientes activos
	Name      string
	Species   string
	Breed     string
	Sex       string
	AgeYears  string
	AgeMonths string
	Weight    string
	CoatColor string
}

func (f PetForm) Validate() error {
	var errs validate.FieldErrors
	errs.Add("Nombre", validate.PersonalName(f.Name, "nombre"))
	errs.Add("Edad", validate.Age(f.AgeYears, f.AgeMonths))
	errs.Add("Peso", validate.Weight(f.Weight))
	if f.OwnerID <= 0 {
		errs.Add("Dueño", errors.New("El dueño es obligatorio"))
	}
	if strings.TrimSpace(f.Species) == "" {
		errs.Add("Especie", errors.New("La especie es obligatoria"))
	}
	return errs.OrNil()
}

func (f PetForm) Record() pets.Pet {
	years, _ := strconv.Atoi(strings.TrimSpace(f.AgeYears))
	months, _ := strconv.Atoi(strings.TrimSpace(f.AgeMonths))
	weight, _ := strconv.ParseFloat(strings.TrimSpace(f.Weight), 64)

	return pets.Pet{
		OwnerID:   f.OwnerID,
		Name:      strings.TrimSpace(f.Name),
		Species:   pets.Species(strings.TrimSpace(f.Species)),
		Breed:     strings.TrimSpace(f.Breed),
		Sex:       pets.Sex(strings.TrimSpace(f.Sex)),
		AgeYears:  years,
		AgeMonths: months,
		WeightKg:  weight,
		CoatColor: strings.TrimSpace(f.CoatColor),
		Status:    pets.StatusActive,
	}
}

func (f PetForm) Submit(bus *events.Bus, mode Mode, existingID int) error {
	if err := f.Validate(); err != nil {
		return err
	}

	p := f.Record()
	if mode == ModeEdit {
		p.ID = existingID
		bus.Emit(pets.Updated{Pet: p})
		return nil
	}
	bus.Emit(pets.Added{Pet: p})
	return nil
}
