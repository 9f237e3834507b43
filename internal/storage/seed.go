package storage

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/berts/gasoleo/internal/model"
)

const (
	// AdminID identifies the default administrator record. It can never be
	// deleted and is re-inserted on load if missing.
	AdminID       = "admin-1"
	AdminUsername = "admin"
	adminPassword = "admin123" // seed credential, change after first login
)

func ptr(s string) *string { return &s }

// defaultDocumento builds the seeded dataset written on first load: two known
// suppliers with their base quotes, one employee and the default admin.
func defaultDocumento(bcryptCost int) model.Documento {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcryptCost)
	if err != nil {
		// bcrypt only fails on an out-of-range cost; the config layer
		// clamps it, so this is unreachable in practice.
		panic(err)
	}
	ahora := time.Now()

	return model.Documento{
		Proveedores: []model.Proveedor{
			{ID: "repsol-1", Nombre: "Repsol", Telefono: "900 000 000", Email: ptr("ventas@repsol.com")},
			{ID: "cepsa-1", Nombre: "Cepsa", Telefono: "900 111 111", Email: ptr("ventas@cepsa.com")},
		},
		Cotizaciones: []model.Cotizacion{
			{
				ID:              "cot-1",
				ProveedorID:     "repsol-1",
				Fecha:           ahora,
				FechaSuministro: ahora,
				PrecioLitro:     decimal.RequireFromString("1.092"),
				Observaciones:   ptr("Precio base marzo 2024"),
			},
			{
				ID:              "cot-2",
				ProveedorID:     "cepsa-1",
				Fecha:           ahora,
				FechaSuministro: ahora,
				PrecioLitro:     decimal.RequireFromString("1.087"),
				Observaciones:   ptr("Precio base marzo 2024"),
			},
		},
		Pedidos:     []model.Pedido{},
		Comunidades: []model.Comunidad{},
		Empleados: []model.Empleado{
			{ID: "emp-1", Nombre: "Juan Pérez", Telefono: "600 000 000", Email: ptr("juan@empresa.com"), Activo: true},
		},
		Vecinos:  []model.Vecino{},
		Usuarios: []model.Usuario{defaultAdmin(hash, ahora)},
	}
}

func defaultAdmin(hash []byte, ahora time.Time) model.Usuario {
	return model.Usuario{
		ID:          AdminID,
		Username:    AdminUsername,
		Password:    string(hash),
		Nombre:      "Administrador",
		Tipo:        model.TipoEmpleado,
		Rol:         model.RolAdmin,
		Activo:      true,
		FechaInicio: ahora,
	}
}
