// Package console es el frente de la aplicación: navegación lateral,
// listas con búsqueda y filtros, diálogos de alta/edición/vista y
// confirmaciones de borrado, todo sobre una terminal. El bucle es
// monohilo: cada acción corre hasta completarse antes de la siguiente,
// igual que el bucle de eventos de un escritorio.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"vetclinic-reception/internal/app"
	"vetclinic-reception/internal/events"
	"vetclinic-reception/internal/state"
)

type Shell struct {
	ctx *app.Context
	in  *bufio.Scanner
	out io.Writer
}

func New(ctx *app.Context, in io.Reader, out io.Writer) *Shell {
	return &Shell{ctx: ctx, in: bufio.NewScanner(in), out: out}
}

// Run ejecuta el bucle principal hasta que el usuario elige salir o se
// agota la entrada.
func (s *Shell) Run() error {
	for {
		s.printToasts()
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "=== VetClinic - Recepción ===")
		fmt.Fprintln(s.out, "1. Panel")
		fmt.Fprintln(s.out, "2. Clientes")
		fmt.Fprintln(s.out, "3. Mascotas")
		fmt.Fprintln(s.out, "4. Citas")
		fmt.Fprintln(s.out, "5. Veterinarios")
		fmt.Fprintln(s.out, "0. Salir")

		choice, ok := s.prompt("Opción")
		if !ok {
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "1":
			s.navigate("dashboard")
			s.dashboard()
		case "2":
			s.navigate("clients")
			s.clientsLoop()
		case "3":
			s.navigate("pets")
			s.petsLoop()
		case "4":
			s.navigate("appointments")
			s.appointmentsLoop()
		case "5":
			s.navigate("vets")
			s.vetsLoop()
		case "0", "salir":
			return nil
		}
	}
}

func (s *Shell) navigate(view string) {
	from, _ := s.ctx.State.Get(state.KeyCurrentView).(string)
	s.ctx.State.SetSilent(state.KeyCurrentView, view)
	s.ctx.Bus.Emit(events.ViewChanged{From: from, To: view})
}

func (s *Shell) dashboard() {
	st := s.ctx.Dashboard.Stats()
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "--- Panel ---")
	fmt.Fprintf(s.out, "Clientes: %d  Mascotas: %d  Veterinarios: %d  Citas: %d\n",
		st.Clients, st.Pets, st.Vets, st.Appointments)

	today := s.ctx.Dashboard.TodayScheduled()
	fmt.Fprintf(s.out, "Citas programadas para hoy: %d\n", len(today))
	for _, a := range today {
		fmt.Fprintf(s.out, "  %s  %s\n", a.Time, a.Motive)
	}

	recent := s.ctx.Dashboard.RecentEvents(5)
	if len(recent) > 0 {
		fmt.Fprintln(s.out, "Actividad reciente:")
		for _, e := range recent {
			fmt.Fprintf(s.out, "  %s  %s\n", e.At.Format("15:04:05"), e.Topic)
		}
	}
}

func (s *Shell) printToasts() {
	for _, n := range s.ctx.Notify.Active() {
		fmt.Fprintf(s.out, "[%s] %s\n", n.Level, n.Message)
	}
}

// prompt lee una línea; ok=false significa fin de la entrada.
func (s *Shell) prompt(label string) (string, bool) {
	fmt.Fprintf(s.out, "%s: ", label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// promptDefault lee una línea; vacía conserva el valor actual. Lo usan
// los diálogos de edición.
func (s *Shell) promptDefault(label, current string) string {
	line, ok := s.prompt(fmt.Sprintf("%s [%s]", label, current))
	if !ok || line == "" {
		return current
	}
	return line
}

// confirm pide una confirmación sí/no. Rechazar no es un error: la
// acción simplemente no ocurre.
func (s *Shell) confirm(label string) bool {
	line, ok := s.prompt(label + " (s/n)")
	if !ok {
		return false
	}
	switch strings.ToLower(line) {
	case "s", "si", "sí":
		return true
	default:
		return false
	}
}

func (s *Shell) promptInt(label string) (int, bool) {
	line, ok := s.prompt(label)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		fmt.Fprintln(s.out, "Número inválido")
		return 0, false
	}
	return n, true
}

func (s *Shell) showError(err error) {
	fmt.Fprintln(s.out, "❌ Error de validación")
	fmt.Fprintln(s.out, "Por favor corrija los siguientes errores:")
	fmt.Fprintln(s.out, err.Error())
}
