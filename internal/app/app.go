// Package app wires configuration, logging, storage, and services into a
// running application.
package app

import (
	"github.com/blackroad/dealflow/internal/common"
	"github.com/blackroad/dealflow/internal/config"
	"github.com/blackroad/dealflow/internal/diligence"
	"github.com/blackroad/dealflow/internal/interfaces"
	"github.com/blackroad/dealflow/internal/pipeline"
	"github.com/blackroad/dealflow/internal/reporting"
	"github.com/blackroad/dealflow/internal/storage"
)

// App holds all application components and dependencies.
type App struct {
	Config  *config.Config
	Logger  *common.Logger
	Storage interfaces.StorageManager

	Pipeline  *pipeline.Service
	Diligence *diligence.Service
	Reporting *reporting.Service
}

// New initializes the application: the store is opened exactly once here,
// and callers own the matching Close.
func New(cfg *config.Config, logger *common.Logger) (*App, error) {
	store, err := storage.NewStorageManager(logger, cfg)
	if err != nil {
		return nil, err
	}

	a := &App{
		Config:    cfg,
		Logger:    logger,
		Storage:   store,
		Pipeline:  pipeline.NewService(store, logger),
		Diligence: diligence.NewService(store, logger),
		Reporting: reporting.NewService(store, logger),
	}

	logger.Debug().Msg("application initialization complete")

	return a, nil
}

// Close releases application resources.
func (a *App) Close() error {
	if a.Storage != nil {
		return a.Storage.Close()
	}
	return nil
}
