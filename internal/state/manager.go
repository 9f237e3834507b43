package state

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/berts/gasoleo/internal/model"
	"github.com/berts/gasoleo/internal/storage"
)

// Manager is the coordinator around the pure reducer: it hydrates the initial
// snapshot from the Store once at construction and writes the snapshot back
// after every dispatch. Dispatches are serialized, so each reducer call sees
// the result of the previous one. Other processes sharing the same backend
// get no notification of writes — last write wins.
type Manager struct {
	mu       sync.Mutex
	store    *storage.Store
	snapshot Snapshot
}

func NewManager(store *storage.Store) *Manager {
	m := &Manager{store: store}
	m.snapshot = Reduce(Snapshot{}, CargarDatos(FromDocumento(store.Load())))
	return m
}

// Dispatch applies the action and persists the resulting snapshot. The write
// goes through Store.Mutate so the document read and save form one critical
// section and concurrent usuario writes are never reverted. A failed save
// leaves the in-memory snapshot as the only authority; the error is both
// logged and returned so the caller can surface the lost durability.
func (m *Manager) Dispatch(a Action) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.snapshot = Reduce(m.snapshot, a)

	err := m.store.Mutate(func(doc *model.Documento) {
		aplicar(doc, m.snapshot)
	})
	if err != nil {
		log.Error().Err(err).Str("action", a.Type).Msg("state: el snapshot no pudo persistirse")
		return err
	}
	return nil
}

// Snapshot returns a copy whose collection slices are detached from the
// manager's own, so callers can range freely while dispatches continue.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.snapshot
	s.Proveedores = append(s.Proveedores[:0:0], s.Proveedores...)
	s.Cotizaciones = append(s.Cotizaciones[:0:0], s.Cotizaciones...)
	s.Pedidos = append(s.Pedidos[:0:0], s.Pedidos...)
	s.Comunidades = append(s.Comunidades[:0:0], s.Comunidades...)
	s.Responsables = append(s.Responsables[:0:0], s.Responsables...)
	return s
}
