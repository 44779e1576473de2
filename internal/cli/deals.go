package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/blackroad/dealflow/internal/common"
	"github.com/blackroad/dealflow/internal/interfaces"
	"github.com/blackroad/dealflow/internal/models"
	"github.com/blackroad/dealflow/internal/pipeline"
	"github.com/spf13/cobra"
)

// newAddCmd creates the add command.
func newAddCmd(c *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "add <company> <sector> <raise> <valuation> [lead] [assigned] [notes] [founder] [email] [website]",
		Short: "Add a new deal to the pipeline",
		Args:  cobra.RangeArgs(4, 10),
		RunE: func(cmd *cobra.Command, args []string) error {
			raise, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return common.NewValidationError("raise_amount", "must be a number")
			}
			valuation, err := strconv.ParseFloat(args[3], 64)
			if err != nil {
				return common.NewValidationError("valuation", "must be a number")
			}

			input := pipeline.NewDeal{
				Company:     args[0],
				Sector:      args[1],
				RaiseAmount: raise,
				Valuation:   valuation,
			}
			optional := []*string{
				&input.LeadInvestor, &input.AssignedTo, &input.Notes,
				&input.Founder, &input.ContactEmail, &input.Website,
			}
			for i, arg := range args[4:] {
				*optional[i] = arg
			}

			deal, err := c.app.Pipeline.Create(cmd.Context(), input)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created deal %s (%s, %s)\n", deal.ID, deal.Company, deal.Sector)
			fmt.Fprintf(cmd.OutOrStdout(), "Raise: %s | Valuation: %s | Multiple: %.2fx\n",
				common.FormatAmount(deal.RaiseAmount), common.FormatAmount(deal.Valuation), deal.MultipleOnCapital())
			return nil
		},
	}
}

// newListCmd creates the list command.
func newListCmd(c *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "list [stage] [sector] [min-score]",
		Short: "List deals with optional stage, sector, and minimum score filters",
		Args:  cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter interfaces.DealFilter
			if len(args) > 0 && args[0] != "" {
				stage, ok := models.ParseStage(args[0])
				if !ok {
					return common.NewValidationError("stage", fmt.Sprintf("unknown stage %q", args[0]))
				}
				filter.Stage = stage
			}
			if len(args) > 1 {
				filter.Sector = args[1]
			}
			if len(args) > 2 {
				minScore, err := strconv.Atoi(args[2])
				if err != nil {
					return common.NewValidationError("min_score", "must be an integer")
				}
				filter.MinScore = minScore
			}

			deals, err := c.app.Reporting.ListDeals(cmd.Context(), filter)
			if err != nil {
				return err
			}

			for _, deal := range deals {
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s | %s | Score: %d | %s\n",
					strings.ToUpper(string(deal.Stage)), deal.Company, deal.Sector,
					deal.Score, common.FormatAmount(deal.RaiseAmount))
			}
			return nil
		},
	}
}

// newPassCmd creates the pass command.
func newPassCmd(c *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "pass <deal-id> <reason> [passed-by]",
		Short: "Pass on a deal (mark as not proceeding)",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			passedBy := ""
			if len(args) > 2 {
				passedBy = args[2]
			}

			event, err := c.app.Pipeline.PassOn(cmd.Context(), args[0], args[1], passedBy)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Passed on deal %s (was %s): %s\n",
				event.DealID, event.OldStage, event.Reason)
			return nil
		},
	}
}

// newAdvanceCmd creates the advance command.
func newAdvanceCmd(c *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "advance <deal-id> <stage> [changed-by] [reason]",
		Short: "Move a deal to another pipeline stage",
		Args:  cobra.RangeArgs(2, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			stage, ok := models.ParseStage(args[1])
			if !ok {
				return common.NewValidationError("stage", fmt.Sprintf("unknown stage %q", args[1]))
			}
			changedBy, reason := "", ""
			if len(args) > 2 {
				changedBy = args[2]
			}
			if len(args) > 3 {
				reason = args[3]
			}

			event, err := c.app.Pipeline.Advance(cmd.Context(), args[0], stage, changedBy, reason)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deal %s: %s -> %s\n", event.DealID, event.OldStage, event.NewStage)
			return nil
		},
	}
}
