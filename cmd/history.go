package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/citizenprep/internal/store"
	"github.com/abhisek/citizenprep/internal/ui/theme"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect previously built session plans",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent session plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryPlanEvents(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query plans: %w", err)
		}
		if len(events) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No session plans recorded yet.")
			return nil
		}

		rows := make([][]string, len(events))
		for i, e := range events {
			rows[i] = planEventRow(e)
		}
		fmt.Fprint(cmd.OutOrStdout(), theme.Table(
			[]string{"Plan", "Created", "Scenario", "Mode", "Tier", "Length", "Acc/Sessions"},
			rows,
		))
		return nil
	},
}

var historyViewCmd = &cobra.Command{
	Use:   "view <plan-id>",
	Short: "Show a recorded plan including its system prompt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetPlanEvent(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("get plan: %w", err)
		}
		if e == nil {
			return fmt.Errorf("plan %s not found", args[0])
		}

		weights := e.Weights
		var pretty map[string]int
		if json.Unmarshal([]byte(e.Weights), &pretty) == nil {
			weights = fmt.Sprintf("civics %d, english %d, n400 %d, reading %d, writing %d",
				pretty["civics"], pretty["english"], pretty["n400"], pretty["reading"], pretty["writing"])
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, theme.Title.Render("Session plan "+e.PlanID))
		fmt.Fprint(out, theme.KeyValues([][2]string{
			{"Created", e.Timestamp.Local().Format("2006-01-02 15:04:05")},
			{"Scenario", e.ScenarioID},
			{"Mode", e.ModeID},
			{"Difficulty", e.DifficultyID},
			{"Duration", fmt.Sprintf("~%d minutes", e.EstimatedMins)},
			{"Weights", weights},
			{"Profile", fmt.Sprintf("accuracy %.1f%%, %d sessions", e.Accuracy, e.Sessions)},
		}))

		calls, err := s.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{PlanID: e.PlanID})
		if err != nil {
			return fmt.Errorf("query plan LLM events: %w", err)
		}
		if len(calls) > 0 {
			var in, outTok, failed int
			for _, c := range calls {
				in += c.InputTokens
				outTok += c.OutputTokens
				if !c.Success {
					failed++
				}
			}
			fmt.Fprint(out, theme.KeyValues([][2]string{
				{"LLM calls", fmt.Sprintf("%d (%d failed), %d in / %d out tokens", len(calls), failed, in, outTok)},
			}))
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, theme.Card.Render(e.SystemPrompt))
		return nil
	},
}

func init() {
	historyListCmd.Flags().Int("limit", 20, "Maximum number of plans to show")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyViewCmd)
}
