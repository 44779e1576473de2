// Package reporting builds read-only projections over the deal pipeline.
// It holds no state of its own; every report is derived from the store at
// call time.
package reporting

import (
	"context"
	"math"
	"time"

	"github.com/blackroad/dealflow/internal/common"
	"github.com/blackroad/dealflow/internal/interfaces"
	"github.com/blackroad/dealflow/internal/models"
)

// topScoredLimit caps the leaderboard in the pipeline report.
const topScoredLimit = 5

// Service is the reporting engine.
type Service struct {
	store  interfaces.StorageManager
	logger *common.Logger
}

// NewService creates a reporting engine over the given store.
func NewService(store interfaces.StorageManager, logger *common.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// StageSummary is the per-stage slice of the pipeline report.
type StageSummary struct {
	Count      int           `json:"count"`
	TotalRaise float64       `json:"total_raise"`
	Deals      []models.Deal `json:"deals"`
}

// PipelineReport is the full pipeline snapshot.
type PipelineReport struct {
	GeneratedAt        time.Time                          `json:"generated_at"`
	TotalDeals         int                                `json:"total_deals"`
	ActivePipeline     int                                `json:"active_pipeline"`
	PortfolioCompanies int                                `json:"portfolio_companies"`
	PassedDeals        int                                `json:"passed_deals"`
	TotalPipelineValue float64                            `json:"total_pipeline_value"`
	AvgDealSize        float64                            `json:"avg_deal_size"`
	ByStage            map[models.DealStage]*StageSummary `json:"by_stage"`
	TopScored          []models.Deal                      `json:"top_scored"`
}

// Pipeline groups all deals by stage and computes the headline pipeline
// numbers. Every stage appears in ByStage, zero-count stages included.
// TotalPipelineValue excludes passed deals; ActivePipeline excludes both
// passed and portfolio deals.
func (s *Service) Pipeline(ctx context.Context) (*PipelineReport, error) {
	deals, err := s.store.Deals().List(ctx, interfaces.DealFilter{})
	if err != nil {
		return nil, err
	}

	report := &PipelineReport{
		GeneratedAt: time.Now().UTC(),
		TotalDeals:  len(deals),
		ByStage:     make(map[models.DealStage]*StageSummary, len(models.StageOrder)),
		TopScored:   []models.Deal{},
	}
	for _, stage := range models.StageOrder {
		report.ByStage[stage] = &StageSummary{Deals: []models.Deal{}}
	}

	for _, deal := range deals {
		summary := report.ByStage[deal.Stage]
		summary.Count++
		summary.TotalRaise += deal.RaiseAmount
		summary.Deals = append(summary.Deals, deal)

		switch deal.Stage {
		case models.StagePassed:
			report.PassedDeals++
		case models.StagePortfolio:
			report.PortfolioCompanies++
			report.TotalPipelineValue += deal.RaiseAmount
		default:
			report.ActivePipeline++
			report.TotalPipelineValue += deal.RaiseAmount
		}

		// deals arrive sorted by score desc, so the first five scored
		// deals are the leaderboard
		if deal.Score > 0 && len(report.TopScored) < topScoredLimit {
			report.TopScored = append(report.TopScored, deal)
		}
	}

	if counted := report.ActivePipeline + report.PortfolioCompanies; counted > 0 {
		report.AvgDealSize = report.TotalPipelineValue / float64(counted)
	}

	return report, nil
}

// DealDetail joins a deal with its due-diligence reports (chronological),
// stage history (chronological), and interactions (reverse-chronological).
type DealDetail struct {
	models.Deal
	MultipleOnCapital float64                     `json:"multiple_on_capital"`
	DueDiligence      []models.DueDiligenceReport `json:"due_diligence"`
	StageHistory      []models.StageChangeEvent   `json:"stage_history"`
	Interactions      []models.InteractionLog     `json:"interactions"`
}

// Detail returns the full view of one deal.
func (s *Service) Detail(ctx context.Context, dealID string) (*DealDetail, error) {
	deal, err := s.store.Deals().Get(ctx, dealID)
	if err != nil {
		return nil, err
	}
	reports, err := s.store.Diligence().ListByDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}
	history, err := s.store.StageChanges().ListByDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}
	interactions, err := s.store.Interactions().ListByDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}

	return &DealDetail{
		Deal:              *deal,
		MultipleOnCapital: deal.MultipleOnCapital(),
		DueDiligence:      reports,
		StageHistory:      history,
		Interactions:      interactions,
	}, nil
}

// SectorStats is one sector's slice of the sector breakdown.
type SectorStats struct {
	Count      int     `json:"count"`
	AvgScore   float64 `json:"avg_score"`
	TotalRaise float64 `json:"total_raise"`
}

// SectorBreakdown groups deals by sector with the average score rounded
// to one decimal.
func (s *Service) SectorBreakdown(ctx context.Context) (map[string]SectorStats, error) {
	aggregates, err := s.store.Deals().SectorAggregates(ctx)
	if err != nil {
		return nil, err
	}

	breakdown := make(map[string]SectorStats, len(aggregates))
	for _, agg := range aggregates {
		breakdown[agg.Sector] = SectorStats{
			Count:      agg.Count,
			AvgScore:   math.Round(agg.AvgScore*10) / 10,
			TotalRaise: agg.TotalRaise,
		}
	}
	return breakdown, nil
}

// ListDeals returns filtered deals sorted by score descending then
// created_at descending.
func (s *Service) ListDeals(ctx context.Context, filter interfaces.DealFilter) ([]models.Deal, error) {
	return s.store.Deals().List(ctx, filter)
}
