package vets

// Status define los estados posibles de un veterinario.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// Veterinarian representa a un profesional de la clínica.
type Veterinarian struct {
	ID        int
	DNI       string
	FirstName string
	LastName  string
	Specialty string
	License   string // número de colegiatura, ej. "CMP-12345"
	Phone     string
	Email     string
	Status    Status
}

func (v Veterinarian) FullName() string {
	return v.FirstName + " " + v.LastName
}
