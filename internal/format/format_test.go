package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPrecio(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"1.092", "1,09200"},
		{"0", "0,00000"},
		{"1234.5", "1.234,50000"},
		{"1234567.891", "1.234.567,89100"},
		{"-1234.5", "-1.234,50000"},
		{"0.000004", "0,00000"}, // redondeo a cinco decimales
	}
	for _, c := range casos {
		v := decimal.RequireFromString(c.entrada)
		assert.Equal(t, c.esperado, Precio(v), "entrada %s", c.entrada)
	}
}

func TestTelefono(t *testing.T) {
	assert.Equal(t, "600 123 456", Telefono("600123456"))
	assert.Equal(t, "600 123 456", Telefono("600 12 34 56"))
	assert.Equal(t, "600 123 456", Telefono("600-123-456"))
	// fuera del patron de nueve digitos se devuelve tal cual
	assert.Equal(t, "+34 600 123 456", Telefono("+34 600 123 456"))
	assert.Equal(t, "12345", Telefono("12345"))
	assert.Equal(t, "", Telefono(""))
}

func TestTelefonoValido(t *testing.T) {
	assert.True(t, TelefonoValido("600123456"))
	assert.True(t, TelefonoValido("600 12 34 56"))
	assert.False(t, TelefonoValido("12345"))
	assert.False(t, TelefonoValido("+34 600 123 456")) // doce digitos
	assert.False(t, TelefonoValido(""))
}
