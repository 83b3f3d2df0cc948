package appointments

// Status define los estados posibles de una cita.
type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusAttended  Status = "Attended"
	StatusCancelled Status = "Cancelled"
)

// AllStatuses en el orden en que los muestran los combos.
func AllStatuses() []Status {
	return []Status{StatusScheduled, StatusAttended, StatusCancelled}
}

// Appointment representa una cita agendada. PetID y VetID referencian
// registros existentes solo porque los combos se pueblan con activos;
// no hay restricción que lo garantice ni cascada al borrar.
type Appointment struct {
	ID     int
	Date   string // YYYY-MM-DD, sin validez calendario
	Time   string // HH:MM
	PetID  int
	VetID  int
	Motive string
	Notes  string
	Status Status
}
