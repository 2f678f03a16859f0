package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/citizenprep/internal/catalog"
	"github.com/abhisek/citizenprep/internal/session"
	"github.com/abhisek/citizenprep/internal/store"
	"github.com/abhisek/citizenprep/internal/ui/theme"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build a session plan: system prompt, scoring weights and duration",
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, s, err := buildPlan(cmd)
		if err != nil {
			return err
		}
		if s != nil {
			defer s.Close()
		}

		showPrompt, _ := cmd.Flags().GetBool("show-prompt")
		printPlan(cmd.OutOrStdout(), plan, showPrompt)
		return nil
	},
}

func init() {
	addPlanFlags(planCmd)
	planCmd.Flags().Bool("show-prompt", false, "Print the full system prompt")
}

// buildPlan parses the plan flags and builds a plan, recording it unless
// --no-record is set. The store is nil when recording is off; otherwise the
// caller closes it.
func buildPlan(cmd *cobra.Command) (*session.Plan, *store.Store, error) {
	req, err := planRequestFromFlags(cmd)
	if err != nil {
		return nil, nil, err
	}

	opts := []session.Option{session.WithLogger(log)}

	var s *store.Store
	if noRecord, _ := cmd.Flags().GetBool("no-record"); !noRecord {
		s, err = openStore(cmd)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, session.WithRecorder(session.StoreRecorder{Repo: s.EventRepo()}))
	}

	plan, err := session.NewPlanner(opts...).Build(cmd.Context(), req)
	if err != nil {
		if s != nil {
			s.Close()
		}
		return nil, nil, err
	}
	return plan, s, nil
}

func printPlan(out io.Writer, plan *session.Plan, showPrompt bool) {
	mode := catalog.MustMode(plan.ModeID)
	diff := catalog.MustDifficulty(plan.DifficultyID)

	tier := diff.Name
	if plan.AdjustedFrom != "" {
		tier += " " + theme.Notice.Render(fmt.Sprintf("(adjusted from %s)", plan.AdjustedFrom))
	}
	w := plan.Weights

	fmt.Fprintln(out, theme.Title.Render("Session plan "+plan.ID.String()))
	fmt.Fprint(out, theme.KeyValues([][2]string{
		{"Scenario", string(plan.ScenarioID)},
		{"Mode", mode.Icon + " " + mode.Name},
		{"Difficulty", tier},
		{"Duration", fmt.Sprintf("~%d minutes", plan.EstimatedMins)},
		{"Phases", joinIDs(plan.Phases)},
		{"Weights", fmt.Sprintf("civics %d, english %d, n400 %d, reading %d, writing %d",
			w.Civics, w.English, w.N400, w.Reading, w.Writing)},
	}))

	if showPrompt {
		fmt.Fprintln(out)
		fmt.Fprintln(out, theme.Card.Render(plan.SystemPrompt))
	}
}

// planEventRow formats a stored plan for history listings.
func planEventRow(e store.PlanEventRecord) []string {
	return []string{
		e.PlanID,
		e.Timestamp.Local().Format("2006-01-02 15:04"),
		e.ScenarioID,
		e.ModeID,
		e.DifficultyID,
		fmt.Sprintf("%dm", e.EstimatedMins),
		fmt.Sprintf("%.0f%%/%d", e.Accuracy, e.Sessions),
	}
}
