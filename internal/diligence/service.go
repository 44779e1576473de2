// Package diligence owns due-diligence report creation and the deal
// scoring algorithm.
package diligence

import (
	"context"
	"time"

	"github.com/blackroad/dealflow/internal/common"
	"github.com/blackroad/dealflow/internal/interfaces"
	"github.com/blackroad/dealflow/internal/models"
	"github.com/google/uuid"
)

// Scoring weights. Base score scales average rating onto 0-80; red flags
// subtract up to 30; category coverage adds up to 20.
const (
	baseScoreCeiling = 80
	redFlagPenalty   = 5
	maxPenalty       = 30
	coverageBonus    = 4
	maxCoverageBonus = 20
)

// Service is the due-diligence aggregator.
type Service struct {
	store  interfaces.StorageManager
	logger *common.Logger
}

// NewService creates an aggregator over the given store.
func NewService(store interfaces.StorageManager, logger *common.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// NewReport carries the inputs for AddReport.
type NewReport struct {
	DealID   string
	Category models.DDCategory
	Findings []string
	RedFlags []string
	Rating   int
	Reviewer string
	Notes    string
}

// AddReport persists a new due-diligence report with status forced to
// complete. The deal's score is not recomputed; callers run ComputeScore
// explicitly when they want the derived score refreshed.
func (s *Service) AddReport(ctx context.Context, input NewReport) (*models.DueDiligenceReport, error) {
	if _, err := s.store.Deals().Get(ctx, input.DealID); err != nil {
		return nil, err
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, common.NewValidationError("rating", "must be between 1 and 5")
	}

	now := time.Now().UTC()
	findings := input.Findings
	if findings == nil {
		findings = []string{}
	}
	redFlags := input.RedFlags
	if redFlags == nil {
		redFlags = []string{}
	}

	report := &models.DueDiligenceReport{
		ID:        uuid.NewString(),
		DealID:    input.DealID,
		Category:  input.Category,
		Status:    models.StatusComplete,
		Findings:  findings,
		RedFlags:  redFlags,
		Rating:    input.Rating,
		Reviewer:  input.Reviewer,
		Notes:     input.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Diligence().Insert(ctx, report); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("deal_id", input.DealID).
		Str("category", string(input.Category)).
		Int("rating", input.Rating).
		Int("red_flags", len(redFlags)).
		Msg("due-diligence report added")

	return report, nil
}

// ComputeScore derives the 0-100 composite score from all of a deal's
// due-diligence reports and persists it onto the deal.
//
// The average divides the sum of positive ratings by the count of ALL
// reports, so a zero-rated report drags the average down rather than
// being ignored.
func (s *Service) ComputeScore(ctx context.Context, dealID string) (int, error) {
	if _, err := s.store.Deals().Get(ctx, dealID); err != nil {
		return 0, err
	}

	reports, err := s.store.Diligence().ListByDeal(ctx, dealID)
	if err != nil {
		return 0, err
	}

	score := scoreReports(reports)

	if err := s.store.Deals().UpdateFields(ctx, dealID, map[string]interface{}{
		"Score":     score,
		"UpdatedAt": time.Now().UTC(),
	}); err != nil {
		return 0, err
	}

	s.logger.Info().
		Str("deal_id", dealID).
		Int("score", score).
		Int("reports", len(reports)).
		Msg("deal score computed")

	return score, nil
}

// scoreReports is the pure scoring function. Deterministic over the
// report set, independent of order; always yields an integer in [0,100].
func scoreReports(reports []models.DueDiligenceReport) int {
	if len(reports) == 0 {
		return 0
	}

	totalRating := 0
	totalRedFlags := 0
	categories := make(map[models.DDCategory]struct{})
	for _, r := range reports {
		if r.Rating > 0 {
			totalRating += r.Rating
		}
		totalRedFlags += len(r.RedFlags)
		categories[r.Category] = struct{}{}
	}

	avgRating := float64(totalRating) / float64(len(reports))
	baseScore := int(avgRating / 5.0 * baseScoreCeiling)

	penalty := min(totalRedFlags*redFlagPenalty, maxPenalty)
	bonus := min(len(categories)*coverageBonus, maxCoverageBonus)

	return max(0, min(100, baseScore-penalty+bonus))
}
