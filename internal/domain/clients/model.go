package clients

// Status define los estados posibles de un cliente.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// Client representa al dueño de una o más mascotas.
// Los identificadores son enteros asignados como max(existentes)+1
// y nunca se reutilizan tras un borrado.
type Client struct {
	ID        int
	DNI       string // 8 dígitos
	FirstName string // nombres
	LastName  string // apellidos (paterno y materno juntos)
	Phone     string // 9 dígitos, empieza con 9
	Email     string
	Address   string
	Status    Status
}

// FullName devuelve "nombres apellidos" para mostrar en listas y opciones.
func (c Client) FullName() string {
	return c.FirstName + " " + c.LastName
}
