// Package storage owns the persisted document: a single JSON object holding
// every collection, kept under one key of a local key-value backend. A mutex
// serializes every load-modify-save within the process; concurrent processes
// sharing the same backend remain last-write-wins.
package storage

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/berts/gasoleo/internal/model"
)

const (
	claveDatos  = "app_data"
	claveSesion = "usuario_actual"
)

// ErrAdminProtegido is returned when a caller tries to delete the default
// administrator record.
var ErrAdminProtegido = errors.New("el administrador por defecto no puede eliminarse")

// Store reads and writes the application document through an injected Backend.
// Construct one per process; there is no package-level singleton.
type Store struct {
	mu         sync.Mutex
	backend    Backend
	bcryptCost int
}

func NewStore(backend Backend, bcryptCost int) *Store {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = 12
	}
	return &Store{backend: backend, bcryptCost: bcryptCost}
}

// Load returns the stored document. A missing key seeds and persists the
// default dataset; a parse failure falls back to the defaults without
// overwriting whatever is stored. Either way the returned document is
// guaranteed to contain the admin account — repaired and persisted if absent.
func (s *Store) Load() model.Documento {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// load assumes s.mu is held.
func (s *Store) load() model.Documento {
	raw, ok, err := s.backend.Get(claveDatos)
	if err != nil || !ok {
		if err != nil {
			log.Error().Err(err).Msg("storage: error leyendo datos, usando valores por defecto")
		}
		doc := defaultDocumento(s.bcryptCost)
		if err := s.save(doc); err != nil {
			log.Error().Err(err).Msg("storage: no se pudo persistir el documento inicial")
		}
		return doc
	}

	var doc model.Documento
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		log.Error().Err(err).Msg("storage: documento corrupto, usando valores por defecto")
		return defaultDocumento(s.bcryptCost)
	}

	if !tieneAdmin(doc.Usuarios) {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), s.bcryptCost)
		if err != nil {
			panic(err)
		}
		doc.Usuarios = append(doc.Usuarios, defaultAdmin(hash, time.Now()))
		log.Info().Msg("storage: usuario admin ausente, restaurado")
		if err := s.save(doc); err != nil {
			log.Error().Err(err).Msg("storage: no se pudo persistir la reparacion del admin")
		}
	}
	return doc
}

// Save serializes and overwrites the whole document. The error is returned so
// callers can surface lost durability; in-memory state stays authoritative.
func (s *Store) Save(doc model.Documento) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(doc)
}

// save assumes s.mu is held.
func (s *Store) save(doc model.Documento) error {
	data, err := json.Marshal(doc)
	if err != nil {
		log.Error().Err(err).Msg("storage: error serializando datos")
		return err
	}
	if err := s.backend.Set(claveDatos, string(data)); err != nil {
		log.Error().Err(err).Msg("storage: error guardando datos")
		return err
	}
	return nil
}

// Mutate applies fn to the current document and persists the result as one
// critical section, so no write from another goroutine can land between the
// read and the save. Every read-modify-write in the process goes through here.
func (s *Store) Mutate(fn func(doc *model.Documento)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.load()
	fn(&doc)
	return s.save(doc)
}

// Clear removes the stored document entirely (resets / tests).
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend.Delete(claveDatos)
}

func tieneAdmin(usuarios []model.Usuario) bool {
	for _, u := range usuarios {
		if u.Username == AdminUsername {
			return true
		}
	}
	return false
}

// ── Sesion ───────────────────────────────────────────────────────────────────

// GuardarSesion persists the authenticated user (hash blanked) under the
// session key so a restarted process can restore it.
func (s *Store) GuardarSesion(u model.Usuario) error {
	data, err := json.Marshal(u.SinPassword())
	if err != nil {
		return err
	}
	return s.backend.Set(claveSesion, string(data))
}

// Sesion returns the restored session, if any.
func (s *Store) Sesion() (*model.Usuario, bool) {
	raw, ok, err := s.backend.Get(claveSesion)
	if err != nil || !ok {
		return nil, false
	}
	var u model.Usuario
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		log.Error().Err(err).Msg("storage: sesion corrupta, descartada")
		_ = s.backend.Delete(claveSesion)
		return nil, false
	}
	return &u, true
}

func (s *Store) CerrarSesion() error {
	return s.backend.Delete(claveSesion)
}

// ── Usuarios ─────────────────────────────────────────────────────────────────

func (s *Store) Usuarios() []model.Usuario { return s.Load().Usuarios }

func (s *Store) GetUsuarioByUsername(username string) (*model.Usuario, bool) {
	for _, u := range s.Load().Usuarios {
		if u.Username == username {
			return &u, true
		}
	}
	return nil, false
}

func (s *Store) AddUsuario(u model.Usuario) error {
	return s.Mutate(func(doc *model.Documento) {
		doc.Usuarios = append(doc.Usuarios, u)
	})
}

func (s *Store) UpdateUsuario(u model.Usuario) error {
	return s.Mutate(func(doc *model.Documento) {
		for i := range doc.Usuarios {
			if doc.Usuarios[i].ID == u.ID {
				doc.Usuarios[i] = u
			}
		}
	})
}

func (s *Store) DeleteUsuario(id string) error {
	if id == AdminID {
		return ErrAdminProtegido
	}
	return s.Mutate(func(doc *model.Documento) {
		out := doc.Usuarios[:0]
		for _, u := range doc.Usuarios {
			if u.ID != id {
				out = append(out, u)
			}
		}
		doc.Usuarios = out
	})
}

// ── Proveedores ──────────────────────────────────────────────────────────────

func (s *Store) Proveedores() []model.Proveedor { return s.Load().Proveedores }

func (s *Store) AddProveedor(p model.Proveedor) error {
	return s.Mutate(func(doc *model.Documento) {
		doc.Proveedores = append(doc.Proveedores, p)
	})
}

func (s *Store) UpdateProveedor(p model.Proveedor) error {
	return s.Mutate(func(doc *model.Documento) {
		for i := range doc.Proveedores {
			if doc.Proveedores[i].ID == p.ID {
				doc.Proveedores[i] = p
			}
		}
	})
}

func (s *Store) DeleteProveedor(id string) error {
	return s.Mutate(func(doc *model.Documento) {
		out := doc.Proveedores[:0]
		for _, p := range doc.Proveedores {
			if p.ID != id {
				out = append(out, p)
			}
		}
		doc.Proveedores = out
	})
}

// ── Cotizaciones ─────────────────────────────────────────────────────────────

func (s *Store) Cotizaciones() []model.Cotizacion { return s.Load().Cotizaciones }

func (s *Store) AddCotizacion(c model.Cotizacion) error {
	return s.Mutate(func(doc *model.Documento) {
		doc.Cotizaciones = append(doc.Cotizaciones, c)
	})
}

func (s *Store) UpdateCotizacion(c model.Cotizacion) error {
	return s.Mutate(func(doc *model.Documento) {
		for i := range doc.Cotizaciones {
			if doc.Cotizaciones[i].ID == c.ID {
				doc.Cotizaciones[i] = c
			}
		}
	})
}

func (s *Store) DeleteCotizacion(id string) error {
	return s.Mutate(func(doc *model.Documento) {
		out := doc.Cotizaciones[:0]
		for _, c := range doc.Cotizaciones {
			if c.ID != id {
				out = append(out, c)
			}
		}
		doc.Cotizaciones = out
	})
}

// ── Pedidos ──────────────────────────────────────────────────────────────────

func (s *Store) Pedidos() []model.Pedido { return s.Load().Pedidos }

func (s *Store) AddPedido(p model.Pedido) error {
	return s.Mutate(func(doc *model.Documento) {
		doc.Pedidos = append(doc.Pedidos, p)
	})
}

func (s *Store) UpdatePedido(p model.Pedido) error {
	return s.Mutate(func(doc *model.Documento) {
		for i := range doc.Pedidos {
			if doc.Pedidos[i].ID == p.ID {
				doc.Pedidos[i] = p
			}
		}
	})
}

func (s *Store) DeletePedido(id string) error {
	return s.Mutate(func(doc *model.Documento) {
		out := doc.Pedidos[:0]
		for _, p := range doc.Pedidos {
			if p.ID != id {
				out = append(out, p)
			}
		}
		doc.Pedidos = out
	})
}

// ── Comunidades ──────────────────────────────────────────────────────────────

func (s *Store) Comunidades() []model.Comunidad { return s.Load().Comunidades }

func (s *Store) AddComunidad(c model.Comunidad) error {
	return s.Mutate(func(doc *model.Documento) {
		doc.Comunidades = append(doc.Comunidades, c)
	})
}

func (s *Store) UpdateComunidad(c model.Comunidad) error {
	return s.Mutate(func(doc *model.Documento) {
		for i := range doc.Comunidades {
			if doc.Comunidades[i].ID == c.ID {
				doc.Comunidades[i] = c
			}
		}
	})
}

func (s *Store) DeleteComunidad(id string) error {
	return s.Mutate(func(doc *model.Documento) {
		out := doc.Comunidades[:0]
		for _, c := range doc.Comunidades {
			if c.ID != id {
				out = append(out, c)
			}
		}
		doc.Comunidades = out
	})
}

// ── Empleados / Vecinos ──────────────────────────────────────────────────────

func (s *Store) Empleados() []model.Empleado { return s.Load().Empleados }

func (s *Store) AddEmpleado(e model.Empleado) error {
	return s.Mutate(func(doc *model.Documento) {
		doc.Empleados = append(doc.Empleados, e)
	})
}

func (s *Store) UpdateEmpleado(e model.Empleado) error {
	return s.Mutate(func(doc *model.Documento) {
		for i := range doc.Empleados {
			if doc.Empleados[i].ID == e.ID {
				doc.Empleados[i] = e
			}
		}
	})
}

func (s *Store) DeleteEmpleado(id string) error {
	return s.Mutate(func(doc *model.Documento) {
		out := doc.Empleados[:0]
		for _, e := range doc.Empleados {
			if e.ID != id {
				out = append(out, e)
			}
		}
		doc.Empleados = out
	})
}

func (s *Store) Vecinos() []model.Vecino { return s.Load().Vecinos }

func (s *Store) AddVecino(v model.Vecino) error {
	return s.Mutate(func(doc *model.Documento) {
		doc.Vecinos = append(doc.Vecinos, v)
	})
}

func (s *Store) UpdateVecino(v model.Vecino) error {
	return s.Mutate(func(doc *model.Documento) {
		for i := range doc.Vecinos {
			if doc.Vecinos[i].ID == v.ID {
				doc.Vecinos[i] = v
			}
		}
	})
}

func (s *Store) DeleteVecino(id string) error {
	return s.Mutate(func(doc *model.Documento) {
		out := doc.Vecinos[:0]
		for _, v := range doc.Vecinos {
			if v.ID != id {
				out = append(out, v)
			}
		}
		doc.Vecinos = out
	})
}
