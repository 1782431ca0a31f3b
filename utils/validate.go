package utils

import "regexp"

var (
	nombreRe   = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚáéíóúÑñ\s]+$`)
	telefonoRe = regexp.MustCompile(`^\d{10,}$`)
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// IsValidNombre accepts letters (including Spanish accents) and spaces only.
func IsValidNombre(nombre string) bool {
	return nombreRe.MatchString(nombre)
}

// IsValidTelefono accepts digits only, minimum 10.
func IsValidTelefono(telefono string) bool {
	return telefonoRe.MatchString(telefono)
}

// IsValidEmail checks the basic local@domain.tld shape.
func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}
