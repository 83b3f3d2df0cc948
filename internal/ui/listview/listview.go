// Package listview implementa el contrato de las vistas de lista: una
// proyección filtrada recalculada por completo ante cualquier cambio de
// entrada, y el gesto de reordenamiento manual por arrastre.
package listview

import (
	"slices"
	"strings"
)

// Config parametriza un controlador para un tipo de registro.
type Config[T any] struct {
	// SearchFields devuelve los campos sobre los que aplica la búsqueda
	// libre (subcadena, sin distinguir mayúsculas).
	SearchFields func(T) []string
	// Category devuelve el valor de categoría del registro (estado, etc.).
	Category func(T) string
	// AllValue es el centinela del combo que desactiva el filtro de
	// categoría, ej. "Todos".
	AllValue string
	// Drag parametriza el gesto de arrastre; cero usa los defaults.
	Drag DragConfig
}

// Controller mantiene la copia local completa y su proyección filtrada.
// El filtro combinado es el AND del texto y la categoría; los valores de
// categoría no reconocidos simplemente no coinciden con nada.
type Controller[T any] struct {
	cfg Config[T]

	all      []T
	filtered []T
	search   string
	category string

	drag dragState
}

func New[T any](cfg Config[T]) *Controller[T] {
	cfg.Drag = cfg.Drag.withDefaults()
	return &Controller[T]{cfg: cfg, category: cfg.AllValue}
}

// Reload reemplaza la copia local completa y recalcula la proyección con
// los filtros vigentes. Cualquier reorden manual previo se pierde.
func (c *Controller[T]) Reload(records []T) {
	c.all = slices.Clone(records)
	c.apply()
}

// SetSearch fija el texto de búsqueda y recalcula. Se invoca en cada
// pulsación de tecla.
func (c *Controller[T]) SetSearch(text string) {
	c.search = strings.ToLower(text)
	c.apply()
}

// SetCategory fija el filtro de categoría y recalcula.
func (c *Controller[T]) SetCategory(value string) {
	c.category = value
	c.apply()
}

// ClearFilters vuelve a los valores por defecto y recalcula.
func (c *Controller[T]) ClearFilters() {
	c.search = ""
	c.category = c.cfg.AllValue
	c.apply()
}

// Refresh restablece la proyección a la copia completa, ignorando los
// filtros vigentes. No hay fuente externa de la que recargar.
func (c *Controller[T]) Refresh() {
	c.filtered = slices.Clone(c.all)
}

func (c *Controller[T]) apply() {
	out := make([]T, 0, len(c.all))
	for _, rec := range c.all {
		if c.matchesSearch(rec) && c.matchesCategory(rec) {
			out = append(out, rec)
		}
	}
	c.filtered = out
}

func (c *Controller[T]) matchesSearch(rec T) bool {
	if c.search == "" {
		return true
	}
	for _, f := range c.cfg.SearchFields(rec) {
		if strings.Contains(strings.ToLower(f), c.search) {
			return true
		}
	}
	return false
}

func (c *Controller[T]) matchesCategory(rec T) bool {
	if c.category == "" || c.category == c.cfg.AllValue {
		return true
	}
	return c.cfg.Category(rec) == c.category
}

// Rows devuelve una copia de la proyección filtrada, en orden visible.
func (c *Controller[T]) Rows() []T {
	return slices.Clone(c.filtered)
}

// Visible y Total alimentan la etiqueta "Mostrando X de Y".
func (c *Controller[T]) Visible() int { return len(c.filtered) }
func (c *Controller[T]) Total() int   { return len(c.all) }

func (c *Controller[T]) Search() string   { return c.search }
func (c *Controller[T]) Category() string { return c.category }
