package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/citizenprep/internal/catalog"
	"github.com/abhisek/citizenprep/internal/recommend"
	"github.com/abhisek/citizenprep/internal/scenario"
	"github.com/abhisek/citizenprep/internal/ui/theme"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend a scenario, mode and difficulty for a learner",
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := profileFromFlags(cmd)
		if err != nil {
			return err
		}
		rec := recommend.Recommend(profile)

		sc, err := scenario.Get(rec.Scenario)
		if err != nil {
			return err
		}
		mode, err := catalog.GetMode(rec.Mode)
		if err != nil {
			return err
		}
		diff, err := catalog.GetDifficulty(rec.Difficulty)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), theme.KeyValues([][2]string{
			{"Scenario", fmt.Sprintf("%s %s (%s)", sc.Icon, sc.Name, theme.Hint.Render("rule: "+string(rec.Rule)))},
			{"Mode", mode.Icon + " " + mode.Name},
			{"Difficulty", diff.Name},
		}))
		if !mode.Supports(diff.ID) {
			fmt.Fprintln(cmd.OutOrStdout(), theme.Notice.Render(
				fmt.Sprintf("%s does not run at %s; a plan will adjust the tier.", mode.Name, diff.Name)))
		}
		return nil
	},
}

func init() {
	addProfileFlags(recommendCmd)
}
