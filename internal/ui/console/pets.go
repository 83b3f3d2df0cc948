package console

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"vetclinic-reception/internal/domain/pets"
	"vetclinic-reception/internal/forms"
)

func (s *Shell) petsLoop() {
	for {
		s.printToasts()
		s.renderPets()

		choice, ok := s.prompt("[b]uscar [f]iltrar [l]impiar [r]efrescar [a]gregar [e]ditar [v]er [d]eliminar [0]volver")
		if !ok {
			return
		}

		v := s.ctx.PetsView
		switch choice {
		case "b":
			if text, ok := s.prompt("Buscar por nombre o raza"); ok {
				v.List.SetSearch(text)
			}
		case "f":
			if cat, ok := s.prompt("Estado (Todos/Active/Inactive)"); ok {
				v.List.SetCategory(cat)
			}
		case "l":
			v.List.ClearFilters()
		case "r":
			v.Refresh()
		case "a":
			s.petDialog(forms.ModeAdd, nil)
		case "e":
			if p, ok := s.pickPet(); ok {
				s.petDialog(forms.ModeEdit, &p)
			}
		case "v":
			if p, ok := s.pickPet(); ok {
				s.showPet(p)
			}
		case "d":
			if p, ok := s.pickPet(); ok {
				if s.confirm(fmt.Sprintf("¿Eliminar a la mascota %s?", p.Name)) {
					v.Delete(p.ID)
				}
			}
		case "0":
			return
		}
	}
}

func (s *Shell) renderPets() {
	v := s.ctx.PetsView
	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNombre\tEspecie\tRaza\tEdad\tPeso\tEstado")
	for _, p := range v.List.Rows() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%da %dm\t%.1fkg\t%s\n",
			p.ID, p.Name, p.Species, p.Breed, p.AgeYears, p.AgeMonths, p.WeightKg, p.Status)
	}
	w.Flush()
	fmt.Fprintf(s.out, "Mostrando %d de %d mascotas\n", v.List.Visible(), v.List.Total())
}

func (s *Shell) pickPet() (pets.Pet, bool) {
	id, ok := s.promptInt("ID de la mascota")
	if !ok {
		return pets.Pet{}, false
	}
	p, err := s.ctx.Pets.Get(id)
	if err != nil {
		fmt.Fprintln(s.out, "Mascota no encontrada")
		return pets.Pet{}, false
	}
	return p, true
}

func (s *Shell) showPet(p pets.Pet) {
	owner := "-"
	if c, err := s.ctx.Clients.Get(p.OwnerID); err == nil {
		owner = c.FullName()
	}
	fmt.Fprintf(s.out, "Nombre: %s\nDueño: %s\nEspecie: %s\nRaza: %s\nSexo: %s\nEdad: %d años %d meses\nPeso: %.1f kg\nPelaje: %s\nEstado: %s\n",
		p.Name, owner, p.Species, p.Breed, p.Sex, p.AgeYears, p.AgeMonths, p.WeightKg, p.CoatColor, p.Status)
}

func (s *Shell) petDialog(mode forms.Mode, existing *pets.Pet) {
	var cur forms.PetForm
	id := 0
	if existing != nil {
		id = existing.ID
		cur = forms.PetForm{
			OwnerID:   existing.OwnerID,
			Name:      existing.Name,
			Species:   string(existing.Species),
			Breed:     existing.Breed,
			Sex:       string(existing.Sex),
			AgeYears:  strconv.Itoa(existing.AgeYears),
			AgeMonths: strconv.Itoa(existing.AgeMonths),
			Weight:    strconv.FormatFloat(existing.WeightKg, 'f', -1, 64),
			CoatColor: existing.CoatColor,
		}
	}

	// El combo de dueños se puebla solo con clientes activos.
	fmt.Fprintln(s.out, "Dueños disponibles:")
	for _, c := range s.ctx.Clients.Active() {
		fmt.Fprintf(s.out, "  %d. %s\n", c.ID, c.FullName())
	}

	ownerStr := s.promptDefault("ID del dueño", strconv.Itoa(cur.OwnerID))
	ownerID, _ := strconv.Atoi(ownerStr)

	f := forms.PetForm{
		OwnerID:   ownerID,
		Name:      s.promptDefault("Nombre", cur.Name),
		Species:   s.promptDefault("Especie (Dog/Cat/Bird/Rabbit/Other)", cur.Species),
		Breed:     s.promptDefault("Raza", cur.Breed),
		Sex:       s.promptDefault("Sexo (Male/Female)", cur.Sex),
		AgeYears:  s.promptDefault("Edad (años)", cur.AgeYears),
		AgeMonths: s.promptDefault("Edad (meses)", cur.AgeMonths),
		Weight:    s.promptDefault("Peso (kg)", cur.Weight),
		CoatColor: s.promptDefault("Color de pelaje", cur.CoatColor),
	}

	if err := f.Submit(s.ctx.Bus, mode, id); err != nil {
		s.showError(err)
		return
	}
	if mode == forms.ModeEdit {
		s.ctx.Notify.Success("✓ Mascota actualizada correctamente")
	} else {
		s.ctx.Notify.Success("✓ Mascota agregada correctamente")
	}
}
