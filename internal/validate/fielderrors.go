package validate

import "strings"

// FieldError asocia un campo del formulario con su mensaje de error.
type FieldError struct {
	Field   string
	Message string
}

// FieldErrors agrega los errores de todos los campos de un envío.
// El guardado es todo-o-nada: basta un campo inválido para rechazarlo.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	lines := make([]string, 0, len(e))
	for _, fe := range e {
		lines = append(lines, "• "+fe.Field+": "+fe.Message)
	}
	return strings.Join(lines, "\n")
}

// Fields devuelve los nombres de los campos que fallaron, en orden.
func (e FieldErrors) Fields() []string {
	out := make([]string, 0, len(e))
	for _, fe := range e {
		out = append(out, fe.Field)
	}
	return out
}

// Add registra el error del campo cuando err no es nil.
func (e *FieldErrors) Add(field string, err error) {
	if err == nil {
		return
	}
	*e = append(*e, FieldError{Field: field, Message: err.Error()})
}

// OrNil devuelve el agregado como error, o nil si no hubo fallos.
func (e FieldErrors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
