// Package format holds the small display helpers shared by the PDF layout
// and API consumers: es-ES number grouping and Spanish phone formatting.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Precio renders a price-per-liter with five decimals in es-ES style:
// "." groups thousands, "," marks decimals (1234.5 → "1.234,50000").
func Precio(v decimal.Decimal) string {
	fixed := v.StringFixed(5)

	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	partes := strings.SplitN(fixed, ".", 2)
	entero, dec := partes[0], partes[1]

	var agrupado []string
	for i := len(entero); i > 0; i -= 3 {
		inicio := i - 3
		if inicio < 0 {
			inicio = 0
		}
		agrupado = append([]string{entero[inicio:i]}, agrupado...)
	}

	out := strings.Join(agrupado, ".") + "," + dec
	if neg {
		out = "-" + out
	}
	return out
}

// Telefono formats a 9-digit Spanish number as "XXX XXX XXX"; anything else
// is returned untouched.
func Telefono(tel string) string {
	digitos := soloDigitos(tel)
	if len(digitos) != 9 {
		return tel
	}
	return digitos[:3] + " " + digitos[3:6] + " " + digitos[6:]
}

// TelefonoValido reports whether tel contains exactly nine digits.
func TelefonoValido(tel string) bool {
	return len(soloDigitos(tel)) == 9
}

func soloDigitos(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
