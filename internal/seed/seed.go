// Package seed define el dataset inicial de la aplicación. Al reiniciar
// el proceso siempre se vuelve a este estado: no existe persistencia.
package seed

import (
	"vetclinic-reception/internal/domain/appointments"
	"vetclinic-reception/internal/domain/clients"
	"vetclinic-reception/internal/domain/pets"
	"vetclinic-reception/internal/domain/vets"
)

// Dataset agrupa las cuatro colecciones iniciales.
type Dataset struct {
	Clients      []clients.Client
	Pets         []pets.Pet
	Vets         []vets.Veterinarian
	Appointments []appointments.Appointment
}

// Data devuelve una copia nueva del dataset inicial: 6 clientes,
// 6 mascotas, 3 veterinarios y 6 citas.
func Data() Dataset {
	return Dataset{
		Clients: []clients.Client{
			{ID: 1, DNI: "12345678", FirstName: "Juan", LastName: "Pérez García", Phone: "987654321", Email: "juan.perez@email.com", Address: "Av. Principal 123, Lima", Status: clients.StatusActive},
			{ID: 2, DNI: "87654321", FirstName: "María", LastName: "López Silva", Phone: "912345678", Email: "maria.lopez@email.com", Address: "Jr. Los Olivos 456, San Isidro", Status: clients.StatusActive},
			{ID: 3, DNI: "45678912", FirstName: "Carlos", LastName: "Mendoza Ruiz", Phone: "965432178", Email: "carlos.mendoza@email.com", Address: "Calle Las Flores 789, Miraflores", Status: clients.StatusActive},
			{ID: 4, DNI: "78912345", FirstName: "Ana", LastName: "Torres Vega", Phone: "923456789", Email: "ana.torres@email.com", Address: "Av. Arequipa 321, Lima", Status: clients.StatusActive},
			{ID: 5, DNI: "32165498", FirstName: "Roberto", LastName: "Sánchez Castro", Phone: "987123456", Email: "roberto.sanchez@email.com", Address: "Jr. Huancayo 654, Surco", Status: clients.StatusActive},
			{ID: 6, DNI: "11223344", FirstName: "Lucia", LastName: "Flores Ramos", Phone: "999888777", Email: "lucia.flores@email.com", Address: "Av. Larco 888, Miraflores", Status: clients.StatusInactive},
		},
		Pets: []pets.Pet{
			{ID: 1, OwnerID: 1, Name: "Max", Species: pets.SpeciesDog, Breed: "Labrador", Sex: pets.SexMale, AgeYears: 3, AgeMonths: 6, WeightKg: 28.5, CoatColor: "Dorado", Status: pets.StatusActive},
			{ID: 2, OwnerID: 2, Name: "Luna", Species: pets.SpeciesCat, Breed: "Siamés", Sex: pets.SexFemale, AgeYears: 2, AgeMonths: 3, WeightKg: 4.2, CoatColor: "Crema con puntos oscuros", Status: pets.StatusActive},
			{ID: 3, OwnerID: 3, Name: "Rocky", Species: pets.SpeciesDog, Breed: "Pastor Alemán", Sex: pets.SexMale, AgeYears: 4, AgeMonths: 2, WeightKg: 35.0, CoatColor: "Negro y marrón", Status: pets.StatusActive},
			{ID: 4, OwnerID: 4, Name: "Michi", Species: pets.SpeciesCat, Breed: "Persa", Sex: pets.SexFemale, AgeYears: 1, AgeMonths: 8, WeightKg: 3.8, CoatColor: "Blanco", Status: pets.StatusActive},
			{ID: 5, OwnerID: 5, Name: "Toby", Species: pets.SpeciesDog, Breed: "Beagle", Sex: pets.SexMale, AgeYears: 2, AgeMonths: 0, WeightKg: 12.5, CoatColor: "Tricolor", Status: pets.StatusActive},
			{ID: 6, OwnerID: 1, Name: "Bella", Species: pets.SpeciesDog, Breed: "Golden Retriever", Sex: pets.SexFemale, AgeYears: 5, AgeMonths: 1, WeightKg: 30.0, CoatColor: "Dorado claro", Status: pets.StatusActive},
		},
		Vets: []vets.Veterinarian{
			{ID: 1, DNI: "98765432", FirstName: "Pedro", LastName: "Ramírez López", Specialty: "Medicina General", License: "CMP-12345", Phone: "987111222", Email: "pedro.ramirez@vetclinic.com", Status: vets.StatusActive},
			{ID: 2, DNI: "87654321", FirstName: "Carmen", LastName: "Gonzales Díaz", Specialty: "Cirugía", License: "CMP-23456", Phone: "987222333", Email: "carmen.gonzales@vetclinic.com", Status: vets.StatusActive},
			{ID: 3, DNI: "76543210", FirstName: "Miguel", LastName: "Torres Vega", Specialty: "Dermatología", License: "CMP-34567", Phone: "987333444", Email: "miguel.torres@vetclinic.com", Status: vets.StatusActive},
		},
		Appointments: []appointments.Appointment{
			{ID: 1, Date: "2024-12-06", Time: "09:00", PetID: 1, VetID: 1, Motive: "Consulta general y vacunación", Notes: "Revisar peso y aplicar vacuna antirrábica", Status: appointments.StatusScheduled},
			{ID: 2, Date: "2024-12-06", Time: "10:30", PetID: 2, VetID: 2, Motive: "Control post-operatorio", Notes: "Revisión de sutura", Status: appointments.StatusScheduled},
			{ID: 3, Date: "2024-12-06", Time: "11:00", PetID: 3, VetID: 1, Motive: "Consulta por cojera", Notes: "Revisión de pata derecha trasera", Status: appointments.StatusScheduled},
			{ID: 4, Date: "2024-12-05", Time: "14:00", PetID: 4, VetID: 3, Motive: "Dermatología - Revisión de piel", Notes: "Problema de alergia", Status: appointments.StatusAttended},
			{ID: 5, Date: "2024-12-04", Time: "09:30", PetID: 5, VetID: 1, Motive: "Vacunación múltiple", Notes: "Vacunas sextuple", Status: appointments.StatusAttended},
			{ID: 6, Date: "2024-12-03", Time: "16:00", PetID: 6, VetID: 2, Motive: "Esterilización", Notes: "Cirugía programada cancelada por cliente", Status: appointments.StatusCancelled},
		},
	}
}
