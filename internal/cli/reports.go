package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/blackroad/dealflow/internal/common"
	"github.com/blackroad/dealflow/internal/models"
	"github.com/spf13/cobra"
)

// newPipelineCmd creates the pipeline command.
func newPipelineCmd(c *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "pipeline",
		Short: "Show the full pipeline report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := c.app.Reporting.Pipeline(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total Deals: %d\n", report.TotalDeals)
			fmt.Fprintf(out, "Active Pipeline: %d\n", report.ActivePipeline)
			fmt.Fprintf(out, "Portfolio: %d\n", report.PortfolioCompanies)
			fmt.Fprintf(out, "Passed: %d\n", report.PassedDeals)
			fmt.Fprintf(out, "Total Pipeline Value: %s\n", common.FormatAmount(report.TotalPipelineValue))
			fmt.Fprintf(out, "Avg Deal Size: %s\n", common.FormatMoney(report.AvgDealSize))
			for _, stage := range models.StageOrder {
				summary := report.ByStage[stage]
				if summary.Count == 0 {
					continue
				}
				fmt.Fprintf(out, "  %s: %d deals (%s)\n",
					strings.ToUpper(string(stage)), summary.Count, common.FormatAmount(summary.TotalRaise))
			}
			if len(report.TopScored) > 0 {
				fmt.Fprintln(out, "Top Scored:")
				for _, deal := range report.TopScored {
					fmt.Fprintf(out, "  %d  %s (%s)\n", deal.Score, deal.Company, deal.Sector)
				}
			}
			return nil
		},
	}
}

// newSectorCmd creates the sector command.
func newSectorCmd(c *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "sector",
		Short: "Show the per-sector breakdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			breakdown, err := c.app.Reporting.SectorBreakdown(cmd.Context())
			if err != nil {
				return err
			}

			sectors := make([]string, 0, len(breakdown))
			for sector := range breakdown {
				sectors = append(sectors, sector)
			}
			sort.Strings(sectors)

			for _, sector := range sectors {
				stats := breakdown[sector]
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d deals, avg score %.1f, total raise %s\n",
					sector, stats.Count, stats.AvgScore, common.FormatAmount(stats.TotalRaise))
			}
			return nil
		},
	}
}

// newScoreCmd creates the score command.
func newScoreCmd(c *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "score <deal-id>",
		Short: "Recompute a deal's composite score from its due-diligence reports",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := c.app.Diligence.ComputeScore(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Score: %d/100\n", score)
			return nil
		},
	}
}

// newDetailsCmd creates the details command.
func newDetailsCmd(c *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "details <deal-id>",
		Short: "Show the full detail of a deal as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := c.app.Reporting.Detail(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(detail, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

// newSummaryCmd creates the summary command.
func newSummaryCmd(c *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "summary <deal-id>",
		Short: "Show a text summary of a deal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := c.app.Reporting.SummaryText(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}
