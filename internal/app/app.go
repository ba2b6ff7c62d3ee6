package app

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/divi1127/BackendDeepF/internal/config"
	"github.com/divi1127/BackendDeepF/internal/uploads"
	"github.com/divi1127/BackendDeepF/internal/utils"
)

// MaxDBConns caps the shared pool; further requests queue inside pgx.
const MaxDBConns = 10

// App holds the process-wide resources: the connection pool and the
// resume upload store. Both are created once at startup and passed down
// by constructor injection.
type App struct {
	Config      *config.Config
	DB          *pgxpool.Pool
	ResumeStore *uploads.Store
}

func NewApp(cfg *config.Config) (*App, error) {
	utils.Logger.Info("Initializing ", cfg.AppName)

	poolCfg, err := pgxpool.ParseConfig(cfg.DBUrl())
	if err != nil {
		return nil, err
	}
	poolCfg.MaxConns = MaxDBConns

	pool, err := pgxpool.ConnectConfig(context.Background(), poolCfg)
	if err != nil {
		return nil, err
	}

	store, err := uploads.NewStore(cfg.UploadDir)
	if err != nil {
		pool.Close()
		return nil, err
	}

	return &App{
		Config:      cfg,
		DB:          pool,
		ResumeStore: store,
	}, nil
}

// Ping probes the database, for the health endpoint.
func (a *App) Ping(ctx context.Context) error {
	return a.DB.Ping(ctx)
}

func (a *App) Close() {
	utils.Logger.Info(a.Config.AppName, " shutting down")
	a.DB.Close()
}
