package reporting

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/blackroad/dealflow/internal/common"
	"github.com/blackroad/dealflow/internal/config"
	"github.com/blackroad/dealflow/internal/interfaces"
	"github.com/blackroad/dealflow/internal/models"
	"github.com/blackroad/dealflow/internal/pipeline"
	"github.com/blackroad/dealflow/internal/storage/badger"
	"github.com/google/uuid"
)

func newTestService(t *testing.T) (*Service, *pipeline.Service, interfaces.StorageManager) {
	t.Helper()

	logger := common.NewSilentLogger()
	store, err := badger.NewManager(logger, &config.BadgerConfig{
		Path: filepath.Join(t.TempDir(), "store"),
	})
	if err != nil {
		t.Fatalf("failed to create storage manager: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close storage manager: %v", err)
		}
	})
	return NewService(store, logger), pipeline.NewService(store, logger), store
}

func TestPipelineAfterPass(t *testing.T) {
	svc, deals, _ := newTestService(t)
	ctx := context.Background()

	keep, err := deals.Create(ctx, pipeline.NewDeal{
		Company: "KeepCo", Sector: "fintech", RaiseAmount: 1_000_000,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	drop, err := deals.Create(ctx, pipeline.NewDeal{
		Company: "DropCo", Sector: "fintech", RaiseAmount: 2_000_000,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := deals.PassOn(ctx, drop.ID, "too expensive", "partner"); err != nil {
		t.Fatalf("pass failed: %v", err)
	}

	report, err := svc.Pipeline(ctx)
	if err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}

	if report.TotalDeals != 2 {
		t.Errorf("expected 2 total deals, got %d", report.TotalDeals)
	}
	if report.ActivePipeline != 1 {
		t.Errorf("expected active pipeline 1, got %d", report.ActivePipeline)
	}
	if report.PassedDeals != 1 {
		t.Errorf("expected 1 passed deal, got %d", report.PassedDeals)
	}
	if got := report.ByStage[models.StageAwareness].Count; got != 1 {
		t.Errorf("expected 1 awareness deal, got %d", got)
	}
	if got := report.ByStage[models.StagePassed].Count; got != 1 {
		t.Errorf("expected 1 passed deal in by_stage, got %d", got)
	}
	// passed deals never count toward pipeline value
	if report.TotalPipelineValue != keep.RaiseAmount {
		t.Errorf("expected pipeline value %v, got %v", keep.RaiseAmount, report.TotalPipelineValue)
	}
	if report.AvgDealSize != keep.RaiseAmount {
		t.Errorf("expected avg deal size %v, got %v", keep.RaiseAmount, report.AvgDealSize)
	}
}

func TestPipelineCoversEveryStage(t *testing.T) {
	svc, _, _ := newTestService(t)

	report, err := svc.Pipeline(context.Background())
	if err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}
	if len(report.ByStage) != len(models.StageOrder) {
		t.Errorf("every stage should appear, got %d entries", len(report.ByStage))
	}
	if report.AvgDealSize != 0 {
		t.Errorf("empty pipeline should have avg deal size 0, got %v", report.AvgDealSize)
	}
	for _, stage := range models.StageOrder {
		summary, ok := report.ByStage[stage]
		if !ok || summary == nil {
			t.Errorf("stage %s missing from empty report", stage)
		}
	}
}

func TestPipelinePortfolioCounts(t *testing.T) {
	svc, deals, _ := newTestService(t)
	ctx := context.Background()

	deal, err := deals.Create(ctx, pipeline.NewDeal{
		Company: "WonCo", Sector: "saas", RaiseAmount: 4_000_000,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := deals.Advance(ctx, deal.ID, models.StagePortfolio, "partner", "closed"); err != nil {
		t.Fatalf("advance failed: %v", err)
	}

	report, err := svc.Pipeline(ctx)
	if err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}
	if report.PortfolioCompanies != 1 {
		t.Errorf("expected 1 portfolio company, got %d", report.PortfolioCompanies)
	}
	if report.ActivePipeline != 0 {
		t.Errorf("portfolio deals are not active pipeline, got %d", report.ActivePipeline)
	}
	// portfolio still counts toward deployed value
	if report.TotalPipelineValue != 4_000_000 {
		t.Errorf("expected pipeline value 4000000, got %v", report.TotalPipelineValue)
	}
	if report.AvgDealSize != 4_000_000 {
		t.Errorf("expected avg deal size 4000000, got %v", report.AvgDealSize)
	}
}

func TestPipelineTopScored(t *testing.T) {
	svc, _, store := newTestService(t)
	ctx := context.Background()

	scores := []int{0, 40, 90, 65, 15, 72, 88}
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i, score := range scores {
		deal := &models.Deal{
			ID:          uuid.NewString(),
			Company:     "Co",
			Sector:      "saas",
			Stage:       models.StageDeepDive,
			CoInvestors: []string{},
			Score:       score,
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
			UpdatedAt:   base,
		}
		if err := store.Deals().Insert(ctx, deal); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}

	report, err := svc.Pipeline(ctx)
	if err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}
	if len(report.TopScored) != 5 {
		t.Fatalf("expected top 5, got %d", len(report.TopScored))
	}
	want := []int{90, 88, 72, 65, 40}
	for i, deal := range report.TopScored {
		if deal.Score != want[i] {
			t.Errorf("top scored [%d] = %d, want %d", i, deal.Score, want[i])
		}
	}
}

func TestDetail(t *testing.T) {
	svc, deals, store := newTestService(t)
	ctx := context.Background()

	deal, err := deals.Create(ctx, pipeline.NewDeal{
		Company: "AcmeCo", Sector: "fintech", RaiseAmount: 5_000_000, Valuation: 25_000_000,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := deals.Advance(ctx, deal.ID, models.StageFirstMeeting, "alex", ""); err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	if _, err := deals.Advance(ctx, deal.ID, models.StageDeepDive, "alex", ""); err != nil {
		t.Fatalf("advance failed: %v", err)
	}

	now := time.Now().UTC()
	report := &models.DueDiligenceReport{
		ID: uuid.NewString(), DealID: deal.ID,
		Category: models.CategoryTechnical, Status: models.StatusComplete,
		Findings: []string{"solid architecture"}, RedFlags: []string{},
		Rating: 4, CreatedAt: now, UpdatedAt: now,
	}
	if err := store.Diligence().Insert(ctx, report); err != nil {
		t.Fatalf("insert report failed: %v", err)
	}

	detail, err := svc.Detail(ctx, deal.ID)
	if err != nil {
		t.Fatalf("detail failed: %v", err)
	}

	if detail.Company != "AcmeCo" {
		t.Errorf("unexpected company: %s", detail.Company)
	}
	if detail.MultipleOnCapital != 5.0 {
		t.Errorf("expected multiple 5.0, got %v", detail.MultipleOnCapital)
	}
	if len(detail.DueDiligence) != 1 {
		t.Errorf("expected 1 report, got %d", len(detail.DueDiligence))
	}
	if len(detail.StageHistory) != 2 {
		t.Fatalf("expected 2 stage changes, got %d", len(detail.StageHistory))
	}
	if detail.StageHistory[0].NewStage != models.StageFirstMeeting {
		t.Errorf("stage history not chronological: %+v", detail.StageHistory[0])
	}
	if detail.Interactions == nil {
		t.Error("interactions should be an empty slice, not nil")
	}
}

func TestDetailMissingDeal(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Detail(context.Background(), "no-such-deal")
	if !common.IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestSectorBreakdownRoundsAverage(t *testing.T) {
	svc, _, store := newTestService(t)
	ctx := context.Background()
	now := time.Now().UTC()

	scores := []int{80, 75, 72} // avg 75.666... -> 75.7
	for _, score := range scores {
		deal := &models.Deal{
			ID:          uuid.NewString(),
			Company:     "Co",
			Sector:      "fintech",
			RaiseAmount: 1_000_000,
			Stage:       models.StageDeepDive,
			CoInvestors: []string{},
			Score:       score,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := store.Deals().Insert(ctx, deal); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}

	breakdown, err := svc.SectorBreakdown(ctx)
	if err != nil {
		t.Fatalf("breakdown failed: %v", err)
	}

	stats, ok := breakdown["fintech"]
	if !ok {
		t.Fatal("fintech sector missing")
	}
	if stats.Count != 3 {
		t.Errorf("expected count 3, got %d", stats.Count)
	}
	if stats.AvgScore != 75.7 {
		t.Errorf("expected avg 75.7, got %v", stats.AvgScore)
	}
	if stats.TotalRaise != 3_000_000 {
		t.Errorf("expected total raise 3000000, got %v", stats.TotalRaise)
	}
}

func TestListDealsFilters(t *testing.T) {
	svc, deals, _ := newTestService(t)
	ctx := context.Background()

	a, err := deals.Create(ctx, pipeline.NewDeal{Company: "A", Sector: "fintech"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := deals.Create(ctx, pipeline.NewDeal{Company: "B", Sector: "saas"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := deals.Advance(ctx, a.ID, models.StageTermSheet, "", ""); err != nil {
		t.Fatalf("advance failed: %v", err)
	}

	got, err := svc.ListDeals(ctx, interfaces.DealFilter{Stage: models.StageTermSheet})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 1 || got[0].Company != "A" {
		t.Errorf("unexpected filtered list: %+v", got)
	}
}
