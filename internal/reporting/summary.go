package reporting

import (
	"context"
	"fmt"
	"strings"

	"github.com/blackroad/dealflow/internal/common"
)

const summaryWidth = 65

// SummaryText renders a fixed-width text summary for one deal: headline
// fields, due-diligence ratings with red flags, and stage history.
func (s *Service) SummaryText(ctx context.Context, dealID string) (string, error) {
	detail, err := s.Detail(ctx, dealID)
	if err != nil {
		return "", err
	}

	rule := strings.Repeat("=", summaryWidth)
	divider := strings.Repeat("-", 40)

	lines := []string{
		rule,
		"DEAL SUMMARY",
		rule,
		fmt.Sprintf("Company     : %s", detail.Company),
		fmt.Sprintf("Sector      : %s", detail.Sector),
		fmt.Sprintf("Stage       : %s", strings.ToUpper(string(detail.Stage))),
		fmt.Sprintf("Score       : %d/100", detail.Score),
		fmt.Sprintf("Raise Ask   : %s", common.FormatAmount(detail.RaiseAmount)),
		fmt.Sprintf("Valuation   : %s", common.FormatAmount(detail.Valuation)),
		fmt.Sprintf("Lead        : %s", orDefault(detail.LeadInvestor, "TBD")),
		fmt.Sprintf("Assigned To : %s", orDefault(detail.AssignedTo, "Unassigned")),
		fmt.Sprintf("Founder     : %s", orDefault(detail.Founder, "N/A")),
		"",
		fmt.Sprintf("DUE DILIGENCE (%d reports)", len(detail.DueDiligence)),
		divider,
	}

	for _, report := range detail.DueDiligence {
		lines = append(lines, fmt.Sprintf("  [%s] Rating: %d/5 | Red Flags: %d",
			strings.ToUpper(string(report.Category)), report.Rating, len(report.RedFlags)))
		for _, flag := range report.RedFlags {
			lines = append(lines, fmt.Sprintf("    ! %s", flag))
		}
	}

	lines = append(lines,
		"",
		fmt.Sprintf("STAGE HISTORY (%d changes)", len(detail.StageHistory)),
		divider,
	)
	for _, change := range detail.StageHistory {
		lines = append(lines, fmt.Sprintf("  %s: %s -> %s",
			change.ChangedAt.Format("2006-01-02"), change.OldStage, change.NewStage))
	}

	lines = append(lines, rule)
	return strings.Join(lines, "\n"), nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
