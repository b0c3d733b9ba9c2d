/*
Package cli implements the command-line interface for tool-advisor.

Each command is implemented as a separate function that returns a
*cobra.Command, allowing for clean separation and easy testing. Commands
share a session: catalog store, key-value store, rating ledger, and the
view controller wired together from configuration.
*/
package cli

import (
	"fmt"
	"log"

	"github.com/khanglvm/tool-advisor/internal/catalog"
	"github.com/khanglvm/tool-advisor/internal/config"
	"github.com/khanglvm/tool-advisor/internal/controller"
	"github.com/khanglvm/tool-advisor/internal/rating"
	"github.com/khanglvm/tool-advisor/internal/storage"
)

// session bundles the wired-up application state for one command run.
type session struct {
	cfg        *config.Config
	store      *catalog.Store
	kv         *storage.SQLiteKV
	controller *controller.Controller
}

// openSession loads configuration, the catalog, and persisted state.
//
// A missing or degraded database never fails the session; the command runs
// from in-memory defaults. A broken catalog or config file does fail: there
// is nothing sensible to browse without them.
func openSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if cfg.EnsureUserID() {
		if path, err := config.GetDefaultConfigPath(); err == nil {
			if err := config.Save(cfg, path); err != nil {
				log.Printf("Warning: failed to save generated user ID: %v", err)
			}
		}
	}

	var store *catalog.Store
	if cfg.CatalogPath != "" {
		store, err = catalog.LoadFile(cfg.CatalogPath)
	} else {
		store, err = catalog.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	var kv *storage.SQLiteKV
	if cfg.DatabasePath != "" {
		kv = storage.NewKVAt(cfg.DatabasePath)
	} else {
		kv = storage.NewKV()
	}
	if err := kv.Init(); err != nil {
		log.Printf("Warning: running without persistence: %v", err)
	}

	ledger := rating.NewLedgerForUser(kv, cfg.UserID)

	return &session{
		cfg:        cfg,
		store:      store,
		kv:         kv,
		controller: controller.New(store, ledger, kv),
	}, nil
}

// close releases session resources.
func (s *session) close() {
	if err := s.kv.Close(); err != nil {
		log.Printf("Warning: failed to close database: %v", err)
	}
}
