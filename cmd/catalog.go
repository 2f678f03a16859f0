package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/citizenprep/internal/catalog"
	"github.com/abhisek/citizenprep/internal/prompt"
	"github.com/abhisek/citizenprep/internal/scenario"
	"github.com/abhisek/citizenprep/internal/ui/theme"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List interview practice modes",
	RunE: func(cmd *cobra.Command, args []string) error {
		var rows [][]string
		for _, m := range catalog.ListModes() {
			w, err := prompt.ScoreWeights(m.ID)
			if err != nil {
				return err
			}
			rows = append(rows, []string{
				string(m.ID),
				m.Icon + " " + m.Name,
				joinIDs(m.Phases),
				fmt.Sprintf("%d/%d/%d/%d", m.CivicsQuestions, m.N400Questions, m.ReadingSentences, m.WritingSentences),
				joinIDs(m.SupportedDifficulties),
				fmt.Sprintf("%d/%d/%d/%d/%d", w.Civics, w.English, w.N400, w.Reading, w.Writing),
				fmt.Sprintf("%dm", m.BaseDurationMins),
			})
		}
		fmt.Fprint(cmd.OutOrStdout(), theme.Table(
			[]string{"ID", "Mode", "Phases", "Civ/N400/Read/Write", "Tiers", "Weights", "Base"},
			rows,
		))
		return nil
	},
}

var difficultiesCmd = &cobra.Command{
	Use:   "difficulties",
	Short: "List difficulty tiers",
	RunE: func(cmd *cobra.Command, args []string) error {
		var rows [][]string
		for _, d := range catalog.ListDifficulties() {
			rows = append(rows, []string{
				string(d.ID),
				string(d.Complexity),
				string(d.Pace),
				theme.Check(d.AllowRephrasing),
				strconv.Itoa(d.HintsPerSession),
				string(d.Encouragement),
				string(d.Stress),
				theme.Check(d.TimePressure),
				theme.Check(d.StrictEvaluation),
				string(d.Feedback),
			})
		}
		fmt.Fprint(cmd.OutOrStdout(), theme.Table(
			[]string{"ID", "Complexity", "Pace", "Rephrase", "Hints", "Encouragement", "Stress", "Timed", "Strict", "Feedback"},
			rows,
		))
		return nil
	},
}

var scenariosCmd = &cobra.Command{
	Use:   "scenarios [id]",
	Short: "List applicant scenarios, or show one in detail",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			var rows [][]string
			for _, s := range scenario.List() {
				rows = append(rows, []string{
					string(s.ID),
					s.Icon + " " + s.Name,
					string(s.RecommendedDifficulty),
					fmt.Sprintf("%dm", s.EstimatedMins),
				})
			}
			fmt.Fprint(out, theme.Table([]string{"ID", "Scenario", "Tier", "Length"}, rows))
			return nil
		}

		id, err := scenario.Parse(args[0])
		if err != nil {
			return err
		}
		s, err := scenario.Get(id)
		if err != nil {
			return err
		}

		fmt.Fprintln(out, theme.Title.Render(s.Icon+" "+s.Name))
		fmt.Fprintln(out, theme.Subtitle.Render(s.Description))
		fmt.Fprintln(out)
		fmt.Fprint(out, theme.KeyValues([][2]string{
			{"Age", formatRange(s.Applicant.AgeRange)},
			{"Years in U.S.", formatRange(s.Applicant.YearsRange)},
			{"Background", s.Applicant.Background},
			{"Recommended tier", string(s.RecommendedDifficulty)},
			{"Estimated length", fmt.Sprintf("%d minutes", s.EstimatedMins)},
		}))
		printList(cmd, "Challenges", s.Applicant.Challenges)
		printList(cmd, "Strengths", s.Applicant.Strengths)
		printList(cmd, "N-400 focus", s.N400Focus)
		printList(cmd, "Coaching focus", s.CoachingFocus)
		printList(cmd, "Special considerations", s.SpecialConsiderations)
		return nil
	},
}

func printList(cmd *cobra.Command, title string, items []string) {
	if len(items) == 0 {
		return
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, theme.Label.Render(title))
	for _, it := range items {
		fmt.Fprintf(out, "  • %s\n", it)
	}
}

func formatRange(r scenario.Range) string {
	if r.Max == 0 {
		return fmt.Sprintf("%d+", r.Min)
	}
	return fmt.Sprintf("%d–%d", r.Min, r.Max)
}

func joinIDs[T ~string](ids []T) string {
	s := make([]string, len(ids))
	for i, id := range ids {
		s[i] = string(id)
	}
	return strings.Join(s, ",")
}
