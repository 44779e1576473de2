package badger

import (
	"context"
	"fmt"

	"github.com/blackroad/dealflow/internal/common"
	"github.com/blackroad/dealflow/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

// StageChangeStorage implements interfaces.StageChangeStorage using BadgerDB.
type StageChangeStorage struct {
	db     *BadgerDB
	logger *common.Logger
}

// NewStageChangeStorage creates stage change event storage backed by BadgerDB.
func NewStageChangeStorage(db *BadgerDB, logger *common.Logger) *StageChangeStorage {
	return &StageChangeStorage{
		db:     db,
		logger: logger,
	}
}

// Insert stores a new stage change event keyed by its ID.
func (s *StageChangeStorage) Insert(_ context.Context, event *models.StageChangeEvent) error {
	if err := s.db.Store().Insert(event.ID, event); err != nil {
		return fmt.Errorf("failed to insert stage change %s: %w", event.ID, err)
	}
	return nil
}

// ListByDeal returns a deal's stage history in chronological order.
func (s *StageChangeStorage) ListByDeal(_ context.Context, dealID string) ([]models.StageChangeEvent, error) {
	var events []models.StageChangeEvent
	query := badgerhold.Where("DealID").Eq(dealID).SortBy("ChangedAt")
	if err := s.db.Store().Find(&events, query); err != nil {
		return nil, fmt.Errorf("failed to list stage changes for deal %s: %w", dealID, err)
	}
	if events == nil {
		events = []models.StageChangeEvent{}
	}
	return events, nil
}

// InteractionStorage implements interfaces.InteractionStorage using BadgerDB.
type InteractionStorage struct {
	db     *BadgerDB
	logger *common.Logger
}

// NewInteractionStorage creates interaction log storage backed by BadgerDB.
func NewInteractionStorage(db *BadgerDB, logger *common.Logger) *InteractionStorage {
	return &InteractionStorage{
		db:     db,
		logger: logger,
	}
}

// Insert stores a new interaction log keyed by its ID.
func (s *InteractionStorage) Insert(_ context.Context, interaction *models.InteractionLog) error {
	if err := s.db.Store().Insert(interaction.ID, interaction); err != nil {
		return fmt.Errorf("failed to insert interaction %s: %w", interaction.ID, err)
	}
	return nil
}

// ListByDeal returns a deal's interactions, most recent date first.
func (s *InteractionStorage) ListByDeal(_ context.Context, dealID string) ([]models.InteractionLog, error) {
	var interactions []models.InteractionLog
	query := badgerhold.Where("DealID").Eq(dealID).SortBy("Date").Reverse()
	if err := s.db.Store().Find(&interactions, query); err != nil {
		return nil, fmt.Errorf("failed to list interactions for deal %s: %w", dealID, err)
	}
	if interactions == nil {
		interactions = []models.InteractionLog{}
	}
	return interactions, nil
}
