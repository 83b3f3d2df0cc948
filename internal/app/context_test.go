package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vetclinic-reception/internal/config"
	"vetclinic-reception/internal/domain/appointments"
	"vetclinic-reception/internal/domain/clients"
	"vetclinic-reception/internal/forms"
	"vetclinic-reception/internal/state"
)

func newTestContext(t *testing.T) *Context {
	t.Helper()
	cfg, err := config.New()
	require.NoError(t, err)

	ctx, err := New(cfg, nil)
	require.NoError(t, err)
	return ctx
}

func TestNew_SeedsStoresAndViews(t *testing.T) {
	ctx := newTestContext(t)

	require.Equal(t, 6, ctx.Clients.Len())
	require.Equal(t, 6, ctx.Pets.Len())
	require.Equal(t, 3, ctx.Vets.Len())
	require.Equal(t, 6, ctx.Appointments.Len())

	require.Equal(t, 6, ctx.ClientsView.List.Total())
	require.Equal(t, 6, ctx.AppointmentsView.List.Total())
}

func TestAppointmentSubmitReachesView(t *testing.T) {
	ctx := newTestContext(t)
	before := ctx.AppointmentsView.List.Total()

	f := forms.AppointmentForm{
		Date:      "2024-12-10",
		Time:      "09:30",
		PetOption: "Max (1)",
		VetOption: "Dr. Pedro Ramírez López - Medicina General",
		Motive:    "Vacunación anual",
	}
	require.NoError(t, f.Submit(ctx.Bus, ctx.Pets, ctx.Vets, forms.ModeAdd, 0))

	require.Equal(t, before+1, ctx.AppointmentsView.List.Total())

	rows := ctx.AppointmentsView.List.Rows()
	got := rows[len(rows)-1]
	require.Equal(t, 7, got.ID)
	require.Equal(t, appointments.StatusScheduled, got.Status)
}

func TestClientSubmitReachesView(t *testing.T) {
	ctx := newTestContext(t)

	f := forms.ClientForm{
		DNI:             "55667788",
		FirstName:       "Elena",
		PaternalSurname: "Vargas",
		MaternalSurname: "Ríos",
		Phone:           "911222333",
		Email:           "elena.vargas@email.com",
		Address:         "Av. Brasil 555, Magdalena",
	}
	require.NoError(t, f.Submit(ctx.Bus, forms.ModeAdd, 0))

	require.Equal(t, 7, ctx.ClientsView.List.Total())
	got, err := ctx.Clients.Get(7)
	require.NoError(t, err)
	require.Equal(t, "Elena", got.FirstName)
}

func TestDeleteClientDoesNotCascade(t *testing.T) {
	ctx := newTestContext(t)

	// El cliente 1 tiene dos mascotas; borrarlo las deja huérfanas.
	ctx.ClientsView.Delete(1)

	require.Equal(t, 5, ctx.Clients.Len())
	require.Len(t, ctx.Pets.ByOwner(1), 2)
}

func TestDeletePetDoesNotCascadeAppointments(t *testing.T) {
	ctx := newTestContext(t)

	ctx.PetsView.Delete(1)

	require.Equal(t, 5, ctx.Pets.Len())
	require.NotEmpty(t, ctx.Appointments.ByPet(1))
}

func TestReset_RestoresInitialState(t *testing.T) {
	ctx := newTestContext(t)

	ctx.ClientsView.Delete(2)
	ctx.AppointmentsView.List.SetSearch("vacun")
	ctx.State.Set("current_view", "clients")
	ctx.Undo.Push(state.Action{Kind: "delete_client", Payload: 2})

	ctx.Reset()

	require.Equal(t, 6, ctx.Clients.Len())
	require.Equal(t, 6, ctx.ClientsView.List.Total())
	require.Empty(t, ctx.Bus.History())
	require.Equal(t, "dashboard", ctx.State.Get("current_view"))
	require.False(t, ctx.Undo.CanUndo())
	require.Equal(t, 0, ctx.Data.CacheLen())
}

func TestDashboard_Stats(t *testing.T) {
	ctx := newTestContext(t)

	stats := ctx.Dashboard.Stats()
	require.Equal(t, 6, stats.Clients)
	require.Equal(t, 6, stats.Pets)
	require.Equal(t, 3, stats.Vets)
	require.Equal(t, 6, stats.Appointments)
}

func TestEventHistoryAccumulates(t *testing.T) {
	ctx := newTestContext(t)

	ctx.ClientsView.Delete(6)
	ctx.Bus.Emit(clients.Selected{ID: 1})

	// El borrado también genera un toast, que viaja por el bus.
	hist := ctx.Bus.History(clients.TopicDeleted, clients.TopicSelected)
	require.Len(t, hist, 2)
	require.Equal(t, clients.TopicDeleted, hist[0].Topic)
	require.Equal(t, clients.TopicSelected, hist[1].Topic)
}
