package forms

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"vetclinic-reception/internal/domain/appointments"
	"vetclinic-reception/internal/domain/clients"
	"vetclinic-reception/internal/domain/pets"
	"vetclinic-reception/internal/domain/vets"
	"vetclinic-reception/internal/events"
	"vetclinic-reception/internal/validate"
)

func validClientForm() ClientForm {
	return ClientForm{
		DNI:             "12345678",
		FirstName:       "Juan",
		PaternalSurname: "Pérez",
		MaternalSurname: "García",
		Phone:           "987654321",
		Email:           "juan.perez@email.com",
		Address:         "Av. Arequipa 1234, Lima",
	}
}

func TestClientForm_SubmitAddEmitsEvent(t *testing.T) {
	bus := events.NewBus(nil)
	store := clients.NewStore(bus, nil, nil)

	err := validClientForm().Submit(bus, ModeAdd, 0)
	require.NoError(t, err)

	require.Equal(t, 1, store.Len())
	got, err := store.Get(1)
	require.NoError(t, err)
	require.Equal(t, "Juan", got.FirstName)
	require.Equal(t, "Pérez García", got.LastName)
	require.Equal(t, clients.StatusActive, got.Status)
}

func TestClientForm_SubmitEditKeepsID(t *testing.T) {
	bus := events.NewBus(nil)
	seed := []clients.Client{{ID: 7, DNI: "11112222", FirstName: "Ana", LastName: "Torres Vega", Status: clients.StatusActive}}
	store := clients.NewStore(bus, seed, nil)

	f := validClientForm()
	require.NoError(t, f.Submit(bus, ModeEdit, 7))

	got, err := store.Get(7)
	require.NoError(t, err)
	require.Equal(t, "Juan", got.FirstName)
	require.Equal(t, 1, store.Len())
}

func TestClientForm_InvalidSubmitAggregatesAndEmitsNothing(t *testing.T) {
	bus := events.NewBus(nil)
	store := clients.NewStore(bus, nil, nil)

	f := validClientForm()
	f.DNI = "123"
	f.Phone = "123456789"
	f.Email = "sin-arroba"

	err := f.Submit(bus, ModeAdd, 0)
	require.Error(t, err)

	var fieldErrs validate.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Equal(t, []string{"DNI", "Teléfono", "Email"}, fieldErrs.Fields())

	require.Equal(t, 0, store.Len())
	require.Empty(t, bus.History())
}

func TestPetForm_SubmitAdd(t *testing.T) {
	bus := events.NewBus(nil)
	store := pets.NewStore(bus, nil, nil)

	f := PetForm{
		OwnerID:  1,
		Name:     "Max",
		Species:  "Dog",
		Breed:    "Labrador",
		Sex:      "Male",
		AgeYears: "3",
		Weight:   "28.5",
	}
	require.NoError(t, f.Submit(bus, ModeAdd, 0))

	got, err := store.Get(1)
	require.NoError(t, err)
	require.Equal(t, pets.SpeciesDog, got.Species)
	require.Equal(t, 3, got.AgeYears)
	require.Equal(t, 28.5, got.WeightKg)
}

func TestPetForm_RequiresOwnerSpeciesAndAge(t *testing.T) {
	f := PetForm{Name: "Max", Weight: "10"}

	err := f.Validate()
	require.Error(t, err)

	var fieldErrs validate.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	fields := fieldErrs.Fields()
	require.True(t, slices.Contains(fields, "Edad"))
	require.True(t, slices.Contains(fields, "Dueño"))
	require.True(t, slices.Contains(fields, "Especie"))
}

func TestVetForm_Submit(t *testing.T) {
	bus := events.NewBus(nil)
	store := vets.NewStore(bus, nil, nil)

	f := VetForm{
		DNI:             "45678912",
		FirstName:       "Carmen",
		PaternalSurname: "Gonzales",
		MaternalSurname: "Díaz",
		Specialty:       "Cirugía",
		License:         "CMP-23456",
		Phone:           "976543210",
		Email:           "carmen.gonzales@vetclinic.com",
	}
	require.NoError(t, f.Submit(bus, ModeAdd, 0))

	got, err := store.Get(1)
	require.NoError(t, err)
	require.Equal(t, "Carmen Gonzales Díaz", got.FullName())
	require.Equal(t, "CMP-23456", got.License)
}

func TestVetForm_ShortLicenseRejected(t *testing.T) {
	f := VetForm{License: "C-1"}

	err := f.Validate()
	require.Error(t, err)

	var fieldErrs validate.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.True(t, slices.Contains(fieldErrs.Fields(), "Colegiatura"))
}

func appointmentStores(t *testing.T) (*events.Bus, *pets.Store, *vets.Store, *appointments.Store) {
	t.Helper()
	bus := events.NewBus(nil)
	petStore := pets.NewStore(bus, []pets.Pet{
		{ID: 1, OwnerID: 1, Name: "Max", Species: pets.SpeciesDog, Status: pets.StatusActive},
	}, nil)
	vetStore := vets.NewStore(bus, []vets.Veterinarian{
		{ID: 1, FirstName: "Pedro", LastName: "Ramírez López", Specialty: "Medicina General", Status: vets.StatusActive},
	}, nil)
	apptStore := appointments.NewStore(bus, nil, nil)
	return bus, petStore, vetStore, apptStore
}

func validAppointmentForm() AppointmentForm {
	return AppointmentForm{
		Date:      "2024-12-10",
		Time:      "09:30",
		PetOption: "Max (1)",
		VetOption: "Dr. Pedro Ramírez López - Medicina General",
		Motive:    "Vacunación anual",
	}
}

func TestAppointmentForm_SubmitAddDefaultsToScheduled(t *testing.T) {
	bus, petStore, vetStore, apptStore := appointmentStores(t)

	require.NoError(t, validAppointmentForm().Submit(bus, petStore, vetStore, ModeAdd, 0))

	got, err := apptStore.Get(1)
	require.NoError(t, err)
	require.Equal(t, 1, got.PetID)
	require.Equal(t, 1, got.VetID)
	require.Equal(t, appointments.StatusScheduled, got.Status)
}

func TestAppointmentForm_UnknownPetAborts(t *testing.T) {
	bus, petStore, vetStore, apptStore := appointmentStores(t)

	f := validAppointmentForm()
	f.PetOption = "Fantasma (99)"

	err := f.Submit(bus, petStore, vetStore, ModeAdd, 0)
	require.True(t, errors.Is(err, ErrPetNotFound))
	require.Equal(t, 0, apptStore.Len())
}

func TestAppointmentForm_MalformedPetOptionAborts(t *testing.T) {
	bus, petStore, vetStore, apptStore := appointmentStores(t)

	f := validAppointmentForm()
	f.PetOption = "Max sin id"

	err := f.Submit(bus, petStore, vetStore, ModeAdd, 0)
	require.True(t, errors.Is(err, ErrPetNotFound))
	require.Equal(t, 0, apptStore.Len())
}

func TestAppointmentForm_UnknownVetAborts(t *testing.T) {
	bus, petStore, vetStore, apptStore := appointmentStores(t)

	f := validAppointmentForm()
	f.VetOption = "Dr. Nadie Conocido - Nada"

	err := f.Submit(bus, petStore, vetStore, ModeAdd, 0)
	require.True(t, errors.Is(err, ErrVetNotFound))
	require.Equal(t, 0, apptStore.Len())
}

func TestAppointmentForm_InvalidFieldsAggregate(t *testing.T) {
	bus, petStore, vetStore, apptStore := appointmentStores(t)

	f := validAppointmentForm()
	f.Date = "10/12/2024"
	f.Time = "25:00"
	f.Motive = "   "

	err := f.Submit(bus, petStore, vetStore, ModeAdd, 0)
	require.Error(t, err)

	var fieldErrs validate.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Equal(t, []string{"Fecha", "Hora", "Motivo"}, fieldErrs.Fields())
	require.Equal(t, 0, apptStore.Len())
}

func TestAppointmentForm_SubmitEdit(t *testing.T) {
	bus, petStore, vetStore, apptStore := appointmentStores(t)

	require.NoError(t, validAppointmentForm().Submit(bus, petStore, vetStore, ModeAdd, 0))

	f := validAppointmentForm()
	f.Status = string(appointments.StatusAttended)
	require.NoError(t, f.Submit(bus, petStore, vetStore, ModeEdit, 1))

	got, err := apptStore.Get(1)
	require.NoError(t, err)
	require.Equal(t, appointments.StatusAttended, got.Status)
	require.Equal(t, 1, apptStore.Len())
}
