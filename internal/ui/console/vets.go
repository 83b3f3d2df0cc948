package console

import (
	"fmt"
	"text/tabwriter"

	"vetclinic-reception/internal/domain/vets"
	"vetclinic-reception/internal/forms"
)

func (s *Shell) vetsLoop() {
	for {
		s.printToasts()
		s.renderVets()

		choice, ok := s.prompt("[b]uscar [f]iltrar [l]impiar [r]efrescar [a]gregar [e]ditar [v]er [d]eliminar [0]volver")
		if !ok {
			return
		}

		v := s.ctx.VetsView
		switch choice {
		case "b":
			if text, ok := s.prompt("Buscar por nombre o especialidad"); ok {
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
			s.vetDialog(forms.ModeAdd, nil)
		case "e":
			if vt, ok := s.pickVet(); ok {
				s.vetDialog(forms.ModeEdit, &vt)
			}
		case "v":
			if vt, ok := s.pickVet(); ok {
				s.showVet(vt)
			}
		case "d":
			if vt, ok := s.pickVet(); ok {
				if s.confirm(fmt.Sprintf("¿Eliminar al veterinario %s?", vt.FullName())) {
					v.Delete(vt.ID)
				}
			}
		case "0":
			return
		}
	}
}

func (s *Shell) renderVets() {
	v := s.ctx.VetsView
	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNombres\tApellidos\tEspecialidad\tColegiatura\tEstado")
	for _, vt := range v.List.Rows() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", vt.ID, vt.FirstName, vt.LastName, vt.Specialty, vt.License, vt.Status)
	}
	w.Flush()
	fmt.Fprintf(s.out, "Mostrando %d de %d veterinarios\n", v.List.Visible(), v.List.Total())
}

func (s *Shell) pickVet() (vets.Veterinarian, bool) {
	id, ok := s.promptInt("ID del veterinario")
	if !ok {
		return vets.Veterinarian{}, false
	}
	vt, err := s.ctx.Vets.Get(id)
	if err != nil {
		fmt.Fprintln(s.out, "Veterinario no encontrado")
		return vets.Veterinarian{}, false
	}
	return vt, true
}

func (s *Shell) showVet(vt vets.Veterinarian) {
	fmt.Fprintf(s.out, "DNI: %s\nNombres: %s\nApellidos: %s\nEspecialidad: %s\nColegiatura: %s\nTeléfono: %s\nEmail: %s\nEstado: %s\n",
		vt.DNI, vt.FirstName, vt.LastName, vt.Specialty, vt.License, vt.Phone, vt.Email, vt.Status)
}

func (s *Shell) vetDialog(mode forms.Mode, existing *vets.Veterinarian) {
	var cur forms.VetForm
	id := 0
	if existing != nil {
		id = existing.ID
		paterno, materno := splitSurnames(existing.LastName)
		cur = forms.VetForm{
			DNI:             existing.DNI,
			FirstName:       existing.FirstName,
			PaternalSurname: paterno,
			MaternalSurname: materno,
			Specialty:       existing.Specialty,
			License:         existing.License,
			Phone:           existing.Phone,
			Email:           existing.Email,
		}
	}

	f := forms.VetForm{
		DNI:             s.promptDefault("DNI", cur.DNI),
		FirstName:       s.promptDefault("Nombres", cur.FirstName),
		PaternalSurname: s.promptDefault("Apellido Paterno", cur.PaternalSurname),
		MaternalSurname: s.promptDefault("Apellido Materno", cur.MaternalSurname),
		Specialty:       s.promptDefault("Especialidad", cur.Specialty),
		License:         s.promptDefault("Colegiatura", cur.License),
		Phone:           s.promptDefault("Teléfono", cur.Phone),
		Email:           s.promptDefault("Email", cur.Email),
	}

	if err := f.Submit(s.ctx.Bus, mode, id); err != nil {
		s.showError(err)
		return
	}
	if mode == forms.ModeEdit {
		s.ctx.Notify.Success("✓ Veterinario actualizado correctamente")
	} else {
		s.ctx.Notify.Success("✓ Veterinario agregado correctamente")
	}
}
