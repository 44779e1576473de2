package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/blackroad/dealflow/internal/common"
	"github.com/blackroad/dealflow/internal/diligence"
	"github.com/blackroad/dealflow/internal/models"
	"github.com/blackroad/dealflow/internal/pipeline"
	"github.com/spf13/cobra"
)

// newReportCmd creates the report command.
func newReportCmd(c *CLI) *cobra.Command {
	var findings []string
	var redFlags []string
	var notes string

	cmd := &cobra.Command{
		Use:   "report <deal-id> <category> <rating> [reviewer]",
		Short: "Add a due-diligence report to a deal",
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, ok := models.ParseCategory(args[1])
			if !ok {
				return common.NewValidationError("category", fmt.Sprintf("unknown category %q", args[1]))
			}
			rating, err := strconv.Atoi(args[2])
			if err != nil {
				return common.NewValidationError("rating", "must be an integer")
			}
			reviewer := ""
			if len(args) > 3 {
				reviewer = args[3]
			}

			report, err := c.app.Diligence.AddReport(cmd.Context(), diligence.NewReport{
				DealID:   args[0],
				Category: category,
				Findings: findings,
				RedFlags: redFlags,
				Rating:   rating,
				Reviewer: reviewer,
				Notes:    notes,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s report %s (rating %d/5, %d red flags)\n",
				report.Category, report.ID, report.Rating, len(report.RedFlags))
			fmt.Fprintln(cmd.OutOrStdout(), "Run 'dealflow score' to refresh the deal score.")
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&findings, "finding", nil, "Finding to record (repeatable)")
	cmd.Flags().StringArrayVar(&redFlags, "red-flag", nil, "Red flag to record (repeatable)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form reviewer notes")

	return cmd
}

// newInteractionCmd creates the interaction command.
func newInteractionCmd(c *CLI) *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "interaction <deal-id> <type> <description> [participant...]",
		Short: "Log an interaction with a deal's company",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var date time.Time
			if dateStr != "" {
				parsed, err := time.Parse("2006-01-02", dateStr)
				if err != nil {
					return common.NewValidationError("date", "must be YYYY-MM-DD")
				}
				date = parsed
			}

			interaction, err := c.app.Pipeline.LogInteraction(cmd.Context(), pipeline.NewInteraction{
				DealID:       args[0],
				Type:         args[1],
				Description:  args[2],
				Participants: args[3:],
				Date:         date,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s interaction on %s", interaction.Type,
				interaction.Date.Format("2006-01-02"))
			if len(interaction.Participants) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), " with %s", strings.Join(interaction.Participants, ", "))
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Interaction date (YYYY-MM-DD, defaults to today)")

	return cmd
}
