package badger

import (
	"github.com/blackroad/dealflow/internal/common"
	"github.com/blackroad/dealflow/internal/config"
	"github.com/blackroad/dealflow/internal/interfaces"
)

// Manager implements the StorageManager interface for Badger.
type Manager struct {
	db           *BadgerDB
	deals        interfaces.DealStorage
	diligence    interfaces.DiligenceStorage
	stageChanges interfaces.StageChangeStorage
	interactions interfaces.InteractionStorage
	logger       *common.Logger
}

// NewManager creates a new Badger storage manager. This is the single
// explicit initialization point for the store; callers own the Close.
func NewManager(logger *common.Logger, cfg *config.BadgerConfig) (interfaces.StorageManager, error) {
	db, err := NewBadgerDB(logger, cfg)
	if err != nil {
		return nil, err
	}

	manager := &Manager{
		db:           db,
		deals:        NewDealStorage(db, logger),
		diligence:    NewDiligenceStorage(db, logger),
		stageChanges: NewStageChangeStorage(db, logger),
		interactions: NewInteractionStorage(db, logger),
		logger:       logger,
	}

	logger.Debug().Msg("Badger storage manager initialized")

	return manager, nil
}

// Deals returns the deal collection.
func (m *Manager) Deals() interfaces.DealStorage {
	return m.deals
}

// Diligence returns the due-diligence report collection.
func (m *Manager) Diligence() interfaces.DiligenceStorage {
	return m.diligence
}

// StageChanges returns the stage change event collection.
func (m *Manager) StageChanges() interfaces.StageChangeStorage {
	return m.stageChanges
}

// Interactions returns the interaction log collection.
func (m *Manager) Interactions() interfaces.InteractionStorage {
	return m.interactions
}

// Close closes the database connection.
func (m *Manager) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}
