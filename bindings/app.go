package bindings

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/MJE43/the-floor-go/internal/assets"
	"github.com/MJE43/the-floor-go/internal/config"
	"github.com/MJE43/the-floor-go/internal/session"
	"github.com/MJE43/the-floor-go/internal/store"
	"github.com/MJE43/the-floor-go/internal/tiles"
)

const appConfigDirName = "the-floor"

// App is the root bound module. It owns the database handle and the
// game coordinator; all frontend calls are serialized through its
// mutex so the single-threaded core never sees concurrent access.
type App struct {
	ctx context.Context

	mu    sync.Mutex
	cfg   config.Config
	db    store.DB
	coord *session.Coordinator
}

func New() *App {
	return &App{}
}

// Startup is called by Wails on application startup. It loads config,
// opens the match history database, reads the tile roster, and builds
// the coordinator.
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	a.cfg = cfg

	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = "."
	}

	appDir := filepath.Join(configDir, appConfigDirName)
	if err := os.MkdirAll(appDir, 0755); err != nil {
		panic(err)
	}

	dbPath := filepath.Join(appDir, "the-floor.db")
	db, err := store.NewSQLiteDB(dbPath)
	if err != nil {
		panic(err)
	}
	a.db = db

	if err := a.db.Migrate(); err != nil {
		panic(err)
	}

	entries, err := tiles.Load(cfg.TilesCSVPath)
	if err != nil {
		// The grid synthesizes placeholder tiles on its own.
		log.Printf("tile roster unavailable (%s): %v", cfg.TilesCSVPath, err)
		entries = nil
	}

	provider := assets.DirProvider{Base: cfg.ImagesBaseDir}
	a.coord = session.New(cfg, entries, provider, a.db)
}

// Shutdown is called by Wails on application exit.
func (a *App) Shutdown(ctx context.Context) {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}
}

// Config returns the loaded configuration. Used by main to wire the
// spectate server.
func (a *App) Config() config.Config {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg
}

// DB exposes the match history store for the spectate server.
func (a *App) DB() store.DB {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.db
}
