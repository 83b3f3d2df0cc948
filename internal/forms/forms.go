// Package forms modela los diálogos de alta y edición: validación
// síncrona de todos los campos, agregada en un solo error, y emisión del
// evento de dominio correspondiente si el envío es válido.
package forms

import "errors"

// Mode distingue alta de edición. El modo "ver" no pasa por aquí:
// un diálogo de solo lectura no emite nada.
type Mode string

const (
	ModeAdd  Mode = "add"
	ModeEdit Mode = "edit"
)

// Errores de lookup al resolver combos de vuelta a registros. Abortan el
// guardado sin mutación parcial; no son errores de validación de campo.
var (
	ErrPetNotFound = errors.New("Mascota no encontrada")
	ErrVetNotFound = errors.New("Veterinario no encontrado")
)
