package badger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blackroad/dealflow/internal/common"
	"github.com/blackroad/dealflow/internal/interfaces"
	"github.com/blackroad/dealflow/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

// DealStorage implements interfaces.DealStorage using BadgerDB.
type DealStorage struct {
	db     *BadgerDB
	logger *common.Logger
}

// NewDealStorage creates deal storage backed by BadgerDB.
func NewDealStorage(db *BadgerDB, logger *common.Logger) *DealStorage {
	return &DealStorage{
		db:     db,
		logger: logger,
	}
}

// Insert stores a new deal keyed by its ID.
func (s *DealStorage) Insert(_ context.Context, deal *models.Deal) error {
	if err := s.db.Store().Insert(deal.ID, deal); err != nil {
		return fmt.Errorf("failed to insert deal %s: %w", deal.ID, err)
	}
	return nil
}

// Get retrieves a deal by ID.
func (s *DealStorage) Get(_ context.Context, id string) (*models.Deal, error) {
	var deal models.Deal
	err := s.db.Store().Get(id, &deal)
	if err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil, common.NewNotFoundError("deal", id)
		}
		return nil, fmt.Errorf("failed to get deal %s: %w", id, err)
	}
	return &deal, nil
}

// List returns deals matching the filter, sorted by score descending then
// created_at descending.
func (s *DealStorage) List(_ context.Context, filter interfaces.DealFilter) ([]models.Deal, error) {
	query := badgerhold.Where("Score").Ge(filter.MinScore)
	if filter.Stage != "" {
		query = query.And("Stage").Eq(filter.Stage)
	}
	if filter.Sector != "" {
		query = query.And("Sector").Eq(filter.Sector)
	}
	query = query.SortBy("Score", "CreatedAt").Reverse()

	var deals []models.Deal
	if err := s.db.Store().Find(&deals, query); err != nil {
		return nil, fmt.Errorf("failed to list deals: %w", err)
	}
	if deals == nil {
		deals = []models.Deal{}
	}
	return deals, nil
}

// UpdateFields applies a partial update to a deal. Supported fields:
// Stage, Score, Notes, UpdatedAt. Unknown field names are rejected.
func (s *DealStorage) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	deal, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	for name, value := range fields {
		switch name {
		case "Stage":
			stage, ok := value.(models.DealStage)
			if !ok {
				return fmt.Errorf("field Stage: expected models.DealStage, got %T", value)
			}
			deal.Stage = stage
		case "Score":
			score, ok := value.(int)
			if !ok {
				return fmt.Errorf("field Score: expected int, got %T", value)
			}
			deal.Score = score
		case "Notes":
			notes, ok := value.(string)
			if !ok {
				return fmt.Errorf("field Notes: expected string, got %T", value)
			}
			deal.Notes = notes
		case "UpdatedAt":
			updated, ok := value.(time.Time)
			if !ok {
				return fmt.Errorf("field UpdatedAt: expected time.Time, got %T", value)
			}
			deal.UpdatedAt = updated
		default:
			return fmt.Errorf("unsupported deal field: %s", name)
		}
	}

	if err := s.db.Store().Update(id, deal); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return common.NewNotFoundError("deal", id)
		}
		return fmt.Errorf("failed to update deal %s: %w", id, err)
	}
	return nil
}

// SectorAggregates groups all deals by sector, returning count, average
// score, and total raise per sector.
func (s *DealStorage) SectorAggregates(_ context.Context) ([]interfaces.SectorAggregate, error) {
	results, err := s.db.Store().FindAggregate(&models.Deal{}, nil, "Sector")
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate deals by sector: %w", err)
	}

	aggregates := make([]interfaces.SectorAggregate, 0, len(results))
	for _, result := range results {
		var sector string
		result.Group(&sector)
		aggregates = append(aggregates, interfaces.SectorAggregate{
			Sector:     sector,
			Count:      int(result.Count()),
			AvgScore:   result.Avg("Score"),
			TotalRaise: result.Sum("RaiseAmount"),
		})
	}
	return aggregates, nil
}
