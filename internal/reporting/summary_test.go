package reporting

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/blackroad/dealflow/internal/models"
	"github.com/blackroad/dealflow/internal/pipeline"
	"github.com/google/uuid"
)

func TestSummaryText(t *testing.T) {
	svc, deals, store := newTestService(t)
	ctx := context.Background()

	deal, err := deals.Create(ctx, pipeline.NewDeal{
		Company:     "AcmeCo",
		Sector:      "fintech",
		RaiseAmount: 5_000_000,
		Valuation:   25_000_000,
		AssignedTo:  "jordan",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := deals.Advance(ctx, deal.ID, models.StageDeepDive, "jordan", "strong intro"); err != nil {
		t.Fatalf("advance failed: %v", err)
	}

	now := time.Now().UTC()
	report := &models.DueDiligenceReport{
		ID: uuid.NewString(), DealID: deal.ID,
		Category: models.CategoryTechnical, Status: models.StatusComplete,
		Findings: []string{}, RedFlags: []string{"single point of failure"},
		Rating: 4, CreatedAt: now, UpdatedAt: now,
	}
	if err := store.Diligence().Insert(ctx, report); err != nil {
		t.Fatalf("insert report failed: %v", err)
	}

	text, err := svc.SummaryText(ctx, deal.ID)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}

	wantLines := []string{
		"DEAL SUMMARY",
		"Company     : AcmeCo",
		"Sector      : fintech",
		"Stage       : DEEP_DIVE",
		"Raise Ask   : $5,000,000",
		"Valuation   : $25,000,000",
		"Lead        : TBD",
		"Assigned To : jordan",
		"Founder     : N/A",
		"DUE DILIGENCE (1 reports)",
		"[TECHNICAL] Rating: 4/5 | Red Flags: 1",
		"! single point of failure",
		"STAGE HISTORY (1 changes)",
		"awareness -> deep_dive",
	}
	for _, want := range wantLines {
		if !strings.Contains(text, want) {
			t.Errorf("summary missing %q\n%s", want, text)
		}
	}

	if !strings.HasPrefix(text, strings.Repeat("=", 65)) {
		t.Error("summary should open with a 65-char rule")
	}
	if !strings.HasSuffix(text, strings.Repeat("=", 65)) {
		t.Error("summary should close with a 65-char rule")
	}
}
