package console

import (
	"fmt"
	"text/tabwriter"

	"vetclinic-reception/internal/domain/clients"
	"vetclinic-reception/internal/forms"
)

func (s *Shell) clientsLoop() {
	for {
		s.printToasts()
		s.renderClients()

		choice, ok := s.prompt("[b]uscar [f]iltrar [l]impiar [r]efrescar [a]gregar [e]ditar [v]er [d]eliminar [0]volver")
		if !ok {
			return
		}

		v := s.ctx.ClientsView
		switch choice {
		case "b":
			if text, ok := s.prompt("Buscar"); ok {
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
			s.clientDialog(forms.ModeAdd, nil)
		case "e":
			if c, ok := s.pickClient(); ok {
				s.clientDialog(forms.ModeEdit, &c)
			}
		case "v":
			if c, ok := s.pickClient(); ok {
				s.showClient(c)
			}
		case "d":
			if c, ok := s.pickClient(); ok {
				if s.confirm(fmt.Sprintf("¿Eliminar al cliente %s?", c.FullName())) {
					v.Delete(c.ID)
				}
			}
		case "0":
			return
		}
	}
}

func (s *Shell) renderClients() {
	v := s.ctx.ClientsView
	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDNI\tNombres\tApellidos\tTeléfono\tEstado")
	for _, c := range v.List.Rows() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", c.ID, c.DNI, c.FirstName, c.LastName, c.Phone, c.Status)
	}
	w.Flush()
	fmt.Fprintf(s.out, "Mostrando %d de %d clientes\n", v.List.Visible(), v.List.Total())
}

func (s *Shell) pickClient() (clients.Client, bool) {
	id, ok := s.promptInt("ID del cliente")
	if !ok {
		return clients.Client{}, false
	}
	c, err := s.ctx.Clients.Get(id)
	if err != nil {
		fmt.Fprintln(s.out, "Cliente no encontrado")
		return clients.Client{}, false
	}
	return c, true
}

func (s *Shell) showClient(c clients.Client) {
	fmt.Fprintf(s.out, "DNI: %s\nNombres: %s\nApellidos: %s\nTeléfono: %s\nEmail: %s\nDirección: %s\nEstado: %s\n",
		c.DNI, c.FirstName, c.LastName, c.Phone, c.Email, c.Address, c.Status)
}

// clientDialog es el diálogo modal de alta o edición: pide campo por
// campo y solo emite si el envío completo valida.
func (s *Shell) clientDialog(mode forms.Mode, existing *clients.Client) {
	var cur forms.ClientForm
	id := 0
	if existing != nil {
		id = existing.ID
		paterno, materno := splitSurnames(existing.LastName)
		cur = forms.ClientForm{
			DNI:             existing.DNI,
			FirstName:       existing.FirstName,
			PaternalSurname: paterno,
			MaternalSurname: materno,
			Phone:           existing.Phone,
			Email:           existing.Email,
			Address:         existing.Address,
		}
	}

	f := forms.ClientForm{
		DNI:             s.promptDefault("DNI", cur.DNI),
		FirstName:       s.promptDefault("Nombres", cur.FirstName),
		PaternalSurname: s.promptDefault("Apellido Paterno", cur.PaternalSurname),
		MaternalSurname: s.promptDefault("Apellido Materno", cur.MaternalSurname),
		Phone:           s.promptDefault("Teléfono", cur.Phone),
		Email:           s.promptDefault("Email", cur.Email),
		Address:         s.promptDefault("Dirección", cur.Address),
	}

	if err := f.Submit(s.ctx.Bus, mode, id); err != nil {
		s.showError(err)
		return
	}
	if mode == forms.ModeEdit {
		s.ctx.Notify.Success("✓ Cliente actualizado correctamente")
	} else {
		s.ctx.Notify.Success("✓ Cliente agregado correctamente")
	}
}

func splitSurnames(last string) (string, string) {
	for i := 0; i < len(last); i++ {
		if last[i] == ' ' {
			return last[:i], last[i+1:]
		}
	}
	return last, ""
}
