package pets

// Species define las especies soportadas.
type Species string

const (
	SpeciesDog    Species = "Dog"
	SpeciesCat    Species = "Cat"
	SpeciesBird   Species = "Bird"
	SpeciesRabbit Species = "Rabbit"
	SpeciesOther  Species = "Other"
)

// AllSpecies en el orden en que las muestran los combos.
func AllSpecies() []Species {
	return []Species{SpeciesDog, SpeciesCat, SpeciesBird, SpeciesRabbit, SpeciesOther}
}

// Sex define el sexo de la mascota.
type Sex string

const (
	SexMale   Sex = "Male"
	SexFemale Sex = "Female"
)

// Status define los estados posibles de una mascota.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// Pet representa el perfil de una mascota registrada.
// OwnerID referencia el ID de un cliente; no hay integridad referencial:
// borrar al cliente no borra ni reasigna sus mascotas.
type Pet struct {
	ID        int
	OwnerID   int
	Name      string
	Species   Species
	Breed     string
	Sex       Sex
	AgeYears  int
	AgeMonths int
	WeightKg  float64
	CoatColor string
	Status    Status
}
