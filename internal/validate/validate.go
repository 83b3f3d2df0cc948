// Package validate contiene las reglas de validación de formularios.
// Todas son funciones puras y síncronas: nil significa campo válido,
// un error lleva el mensaje que se muestra al usuario.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	reName  = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ\s]+$`)
	reEmail = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	reDate  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	reTime  = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
)

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// DNI valida un DNI peruano: exactamente 8 dígitos.
func DNI(dni string) error {
	if dni == "" {
		return errors.New("El DNI es obligatorio")
	}
	if !isDigits(dni) {
		return errors.New("Solo números")
	}
	if len(dni) != 8 {
		return errors.New("Debe tener 8 dígitos")
	}
	return nil
}

// PersonalName valida un nombre o apellido: 2-50 caracteres, solo letras
// (incluye acentos y ñ) y espacios. El parámetro field personaliza el
// mensaje de obligatoriedad.
func PersonalName(name, field string) error {
	if name == "" {
		return fmt.Errorf("El %s es obligatorio", field)
	}
	if len([]rune(name)) < 2 {
		return errors.New("Mínimo 2 caracteres")
	}
	if len([]rune(name)) > 50 {
		return errors.New("Máximo 50 caracteres")
	}
	if !reName.MatchString(name) {
		return errors.New("Solo letras")
	}
	return nil
}

// Phone valida un celular peruano: 9 dígitos y empieza con 9.
func Phone(phone string) error {
	if phone == "" {
		return errors.New("El teléfono es obligatorio")
	}
	phone = strings.TrimSpace(phone)
	if !isDigits(phone) {
		return errors.New("Solo números")
	}
	if len(phone) != 9 {
		return errors.New("Debe tener 9 dígitos")
	}
	if phone[0] != '9' {
		return errors.New("Debe comenzar con 9")
	}
	return nil
}

func Email(email string) error {
	if email == "" {
		return errors.New("El email es obligatorio")
	}
	if !reEmail.MatchString(email) {
		return errors.New("Email inválido")
	}
	return nil
}

func Address(address string) error {
	if address == "" {
		return errors.New("La dirección es obligatoria")
	}
	if len([]rune(address)) < 5 {
		return errors.New("Mínimo 5 caracteres")
	}
	if len([]rune(address)) > 200 {
		return errors.New("Máximo 200 caracteres")
	}
	return nil
}

// Weight valida el peso en kg: decimal positivo, máximo 200.
func Weight(weight string) error {
	if weight == "" {
		return errors.New("El peso es obligatorio")
	}
	w, err := strconv.ParseFloat(weight, 64)
	if err != nil {
		return errors.New("El peso debe ser un número válido")
	}
	if w <= 0 {
		return errors.New("El peso debe ser mayor a 0")
	}
	if w > 200 {
		return errors.New("El peso no puede exceder 200 kg")
	}
	return nil
}

// Age valida la edad en años y meses. Basta con uno de los dos, pero no
// pueden faltar ambos; años en [0,50], meses en [0,11].
func Age(years, months string) error {
	if years == "" && months == "" {
		return errors.New("Debe ingresar al menos años o meses")
	}

	if years != "" {
		y, err := strconv.Atoi(years)
		if err != nil {
			return errors.New("La edad debe contener números válidos")
		}
		if y < 0 || y > 50 {
			return errors.New("Los años deben estar entre 0 y 50")
		}
	}

	if months != "" {
		m, err := strconv.Atoi(months)
		if err != nil {
			return errors.New("La edad debe contener números válidos")
		}
		if m < 0 || m > 11 {
			return errors.New("Los meses deben estar entre 0 y 11")
		}
	}

	return nil
}

// License valida el número de colegiatura: mínimo 5 caracteres.
func License(license string) error {
	if license == "" {
		return errors.New("La colegiatura es obligatoria")
	}
	if len([]rune(license)) < 5 {
		return errors.New("La colegiatura debe tener al menos 5 caracteres")
	}
	return nil
}

// Date valida el patrón estricto YYYY-MM-DD. No comprueba validez
// calendario: "2024-13-99" pasa.
func Date(date string) error {
	if date == "" {
		return errors.New("La fecha es obligatoria")
	}
	if !reDate.MatchString(date) {
		return errors.New("Formato de fecha inválido (use YYYY-MM-DD)")
	}
	return nil
}

// Time valida HH:MM con hora 00-23 y minuto 00-59.
func Time(t string) error {
	if t == "" {
		return errors.New("La hora es obligatoria")
	}
	if !reTime.MatchString(t) {
		return errors.New("Formato de hora inválido (use HH:MM)")
	}
	return nil
}
