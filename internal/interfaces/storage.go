// Package interfaces defines the storage contracts consumed by DealFlow
// services. Implementations can be swapped (BadgerDB now, centralised DB
// later).
package interfaces

import (
	"context"

	"github.com/blackroad/dealflow/internal/models"
)

// StorageManager provides access to the four record collections.
type StorageManager interface {
	Deals() DealStorage
	Diligence() DiligenceStorage
	StageChanges() StageChangeStorage
	Interactions() InteractionStorage
	Close() error
}

// DealFilter narrows deal listings. Zero values mean "any".
type DealFilter struct {
	Stage    models.DealStage
	Sector   string
	MinScore int
}

// SectorAggregate is one row of the sector grouping: deal count, average
// score, and total raise amount for a single sector.
type SectorAggregate struct {
	Sector     string
	Count      int
	AvgScore   float64
	TotalRaise float64
}

// DealStorage persists Deal records.
type DealStorage interface {
	Insert(ctx context.Context, deal *models.Deal) error
	Get(ctx context.Context, id string) (*models.Deal, error)
	// List returns deals matching the filter, sorted by score descending
	// then created_at descending.
	List(ctx context.Context, filter DealFilter) ([]models.Deal, error)
	// UpdateFields applies a partial update. Supported fields: Stage,
	// Score, Notes, UpdatedAt.
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	// SectorAggregates groups all deals by sector.
	SectorAggregates(ctx context.Context) ([]SectorAggregate, error)
}

// DiligenceStorage persists due-diligence reports. Reports are append-only.
type DiligenceStorage interface {
	Insert(ctx context.Context, report *models.DueDiligenceReport) error
	// ListByDeal returns a deal's reports in creation order.
	ListByDeal(ctx context.Context, dealID string) ([]models.DueDiligenceReport, error)
}

// StageChangeStorage persists stage transition events. Append-only.
type StageChangeStorage interface {
	Insert(ctx context.Context, event *models.StageChangeEvent) error
	// ListByDeal returns a deal's stage history in chronological order.
	ListByDeal(ctx context.Context, dealID string) ([]models.StageChangeEvent, error)
}

// InteractionStorage persists interaction logs. Append-only.
type InteractionStorage interface {
	Insert(ctx context.Context, interaction *models.InteractionLog) error
	// ListByDeal returns a deal's interactions, most recent date first.
	ListByDeal(ctx context.Context, dealID string) ([]models.InteractionLog, error)
}
