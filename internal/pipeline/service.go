// Package pipeline owns the deal lifecycle: creation, stage transitions,
// passing, and interaction logging.
package pipeline

import (
	"context"
	"time"

	"github.com/blackroad/dealflow/internal/common"
	"github.com/blackroad/dealflow/internal/interfaces"
	"github.com/blackroad/dealflow/internal/models"
	"github.com/google/uuid"
)

// Service is the deal lifecycle manager.
type Service struct {
	store  interfaces.StorageManager
	logger *common.Logger
}

// NewService creates a lifecycle manager over the given store.
func NewService(store interfaces.StorageManager, logger *common.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// NewDeal carries the inputs for Create. Company, Sector, RaiseAmount and
// Valuation are required; the rest are optional.
type NewDeal struct {
	Company      string
	Sector       string
	RaiseAmount  float64
	Valuation    float64
	LeadInvestor string
	CoInvestors  []string
	AssignedTo   string
	Notes        string
	Website      string
	Founder      string
	ContactEmail string
}

// Create adds a new deal to the pipeline in the awareness stage with a
// zero score.
func (s *Service) Create(ctx context.Context, input NewDeal) (*models.Deal, error) {
	if input.Company == "" {
		return nil, common.NewValidationError("company", "must not be empty")
	}
	if input.Sector == "" {
		return nil, common.NewValidationError("sector", "must not be empty")
	}
	if input.RaiseAmount < 0 {
		return nil, common.NewValidationError("raise_amount", "must not be negative")
	}
	if input.Valuation < 0 {
		return nil, common.NewValidationError("valuation", "must not be negative")
	}

	now := time.Now().UTC()
	coInvestors := input.CoInvestors
	if coInvestors == nil {
		coInvestors = []string{}
	}

	deal := &models.Deal{
		ID:           uuid.NewString(),
		Company:      input.Company,
		Sector:       input.Sector,
		RaiseAmount:  input.RaiseAmount,
		Valuation:    input.Valuation,
		Stage:        models.StageAwareness,
		LeadInvestor: input.LeadInvestor,
		CoInvestors:  coInvestors,
		Score:        0,
		Notes:        input.Notes,
		AssignedTo:   input.AssignedTo,
		Website:      input.Website,
		Founder:      input.Founder,
		ContactEmail: input.ContactEmail,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.Deals().Insert(ctx, deal); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("deal_id", deal.ID).
		Str("company", deal.Company).
		Str("sector", deal.Sector).
		Msg("deal created")

	return deal, nil
}

// Advance moves a deal to a new stage and records one StageChangeEvent.
// Any stage value is accepted, including backward moves and skips; the
// pipeline ordering is advisory only.
func (s *Service) Advance(ctx context.Context, dealID string, newStage models.DealStage, changedBy, reason string) (*models.StageChangeEvent, error) {
	deal, err := s.store.Deals().Get(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if changedBy == "" {
		changedBy = "system"
	}

	oldStage := deal.Stage
	now := time.Now().UTC()

	if err := s.store.Deals().UpdateFields(ctx, dealID, map[string]interface{}{
		"Stage":     newStage,
		"UpdatedAt": now,
	}); err != nil {
		return nil, err
	}

	event := &models.StageChangeEvent{
		ID:        uuid.NewString(),
		DealID:    dealID,
		OldStage:  oldStage,
		NewStage:  newStage,
		ChangedBy: changedBy,
		Reason:    reason,
		ChangedAt: now,
	}
	if err := s.store.StageChanges().Insert(ctx, event); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("deal_id", dealID).
		Str("old_stage", string(oldStage)).
		Str("new_stage", string(newStage)).
		Str("changed_by", changedBy).
		Msg("deal stage changed")

	return event, nil
}

// PassOn marks a deal as not proceeding: stage becomes passed, a
// "[PASSED] <reason>" line is appended to the deal's notes, and one
// StageChangeEvent is recorded. There is no guard against re-passing; a
// second call records another event and note line.
func (s *Service) PassOn(ctx context.Context, dealID, reason, passedBy string) (*models.StageChangeEvent, error) {
	deal, err := s.store.Deals().Get(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if passedBy == "" {
		passedBy = "system"
	}

	oldStage := deal.Stage
	now := time.Now().UTC()
	notes := deal.Notes + "\n[PASSED] " + reason

	if err := s.store.Deals().UpdateFields(ctx, dealID, map[string]interface{}{
		"Stage":     models.StagePassed,
		"Notes":     notes,
		"UpdatedAt": now,
	}); err != nil {
		return nil, err
	}

	event := &models.StageChangeEvent{
		ID:        uuid.NewString(),
		DealID:    dealID,
		OldStage:  oldStage,
		NewStage:  models.StagePassed,
		ChangedBy: passedBy,
		Reason:    reason,
		ChangedAt: now,
	}
	if err := s.store.StageChanges().Insert(ctx, event); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("deal_id", dealID).
		Str("old_stage", string(oldStage)).
		Str("reason", reason).
		Msg("deal passed")

	return event, nil
}

// NewInteraction carries the inputs for LogInteraction. Date defaults to
// today (UTC) when zero.
type NewInteraction struct {
	DealID       string
	Type         string
	Description  string
	Participants []string
	Date         time.Time
}

// LogInteraction records an external touchpoint with a deal's company.
func (s *Service) LogInteraction(ctx context.Context, input NewInteraction) (*models.InteractionLog, error) {
	if _, err := s.store.Deals().Get(ctx, input.DealID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	date := input.Date
	if date.IsZero() {
		date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	participants := input.Participants
	if participants == nil {
		participants = []string{}
	}

	interaction := &models.InteractionLog{
		ID:           uuid.NewString(),
		DealID:       input.DealID,
		Type:         input.Type,
		Description:  input.Description,
		Participants: participants,
		Date:         date,
		CreatedAt:    now,
	}
	if err := s.store.Interactions().Insert(ctx, interaction); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("deal_id", input.DealID).
		Str("type", input.Type).
		Msg("interaction logged")

	return interaction, nil
}
