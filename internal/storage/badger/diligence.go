package badger

import (
	"context"
	"fmt"

	"github.com/blackroad/dealflow/internal/common"
	"github.com/blackroad/dealflow/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

// DiligenceStorage implements interfaces.DiligenceStorage using BadgerDB.
type DiligenceStorage struct {
	db     *BadgerDB
	logger *common.Logger
}

// NewDiligenceStorage creates due-diligence report storage backed by BadgerDB.
func NewDiligenceStorage(db *BadgerDB, logger *common.Logger) *DiligenceStorage {
	return &DiligenceStorage{
		db:     db,
		logger: logger,
	}
}

// Insert stores a new due-diligence report keyed by its ID.
func (s *DiligenceStorage) Insert(_ context.Context, report *models.DueDiligenceReport) error {
	if err := s.db.Store().Insert(report.ID, report); err != nil {
		return fmt.Errorf("failed to insert due-diligence report %s: %w", report.ID, err)
	}
	return nil
}

// ListByDeal returns a deal's reports in creation order.
func (s *DiligenceStorage) ListByDeal(_ context.Context, dealID string) ([]models.DueDiligenceReport, error) {
	var reports []models.DueDiligenceReport
	query := badgerhold.Where("DealID").Eq(dealID).SortBy("CreatedAt")
	if err := s.db.Store().Find(&reports, query); err != nil {
		return nil, fmt.Errorf("failed to list due-diligence reports for deal %s: %w", dealID, err)
	}
	if reports == nil {
		reports = []models.DueDiligenceReport{}
	}
	return reports, nil
}
