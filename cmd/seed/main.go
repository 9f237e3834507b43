// cmd/seed — wipes the local data file and reseeds the default document
// (demo suppliers + quotes, one employee, admin/admin123).
// Uso: DATA_PATH=gasoleo.db go run ./cmd/seed
package main

import (
	"fmt"
	"log"

	"github.com/berts/gasoleo/internal/config"
	"github.com/berts/gasoleo/internal/infra"
	"github.com/berts/gasoleo/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	db, err := infra.NewDatabase(cfg.DataPath)
	if err != nil {
		log.Fatalf("open data file: %v", err)
	}
	backend, err := storage.NewGormBackend(db)
	if err != nil {
		log.Fatalf("migrate kv table: %v", err)
	}

	store := storage.NewStore(backend, cfg.BcryptCost)
	if err := store.Clear(); err != nil {
		log.Fatalf("clear: %v", err)
	}
	if err := store.CerrarSesion(); err != nil {
		log.Fatalf("clear session: %v", err)
	}
	doc := store.Load() // reseeds and persists the defaults

	fmt.Printf("✅ Documento inicial escrito en '%s' (%d usuarios, %d proveedores)\n",
		cfg.DataPath, len(doc.Usuarios), len(doc.Proveedores))
}
