package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/citizenprep/internal/catalog"
	"github.com/abhisek/citizenprep/internal/custom"
	"github.com/abhisek/citizenprep/internal/recommend"
	"github.com/abhisek/citizenprep/internal/scenario"
	"github.com/abhisek/citizenprep/internal/session"
)

func addProfileFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int("age", 0, "Applicant age in years")
	f.Int("years", 0, "Years as a permanent resident")
	f.Bool("travel", false, "Applicant has extensive travel history")
	f.Bool("employment-gaps", false, "Applicant has gaps in employment")
	f.Bool("military", false, "Applicant has served in the U.S. military")
	f.Float64("accuracy", 0, "Recent practice accuracy, 0-100")
	f.Int("sessions", 0, "Number of completed practice sessions")
}

// profileFromFlags builds a Profile. Age and years stay nil unless given.
// The recommender takes numbers as given, so ranges are checked here.
func profileFromFlags(cmd *cobra.Command) (recommend.Profile, error) {
	f := cmd.Flags()
	var p recommend.Profile
	if f.Changed("age") {
		v, _ := f.GetInt("age")
		p.Age = &v
	}
	if f.Changed("years") {
		v, _ := f.GetInt("years")
		p.YearsInCountry = &v
	}
	p.HasTravel, _ = f.GetBool("travel")
	p.HasEmploymentGaps, _ = f.GetBool("employment-gaps")
	p.IsMilitary, _ = f.GetBool("military")
	p.Accuracy, _ = f.GetFloat64("accuracy")
	p.Sessions, _ = f.GetInt("sessions")

	switch {
	case p.Accuracy < 0 || p.Accuracy > 100:
		return p, fmt.Errorf("--accuracy must be between 0 and 100, got %g", p.Accuracy)
	case p.Sessions < 0:
		return p, fmt.Errorf("--sessions must not be negative, got %d", p.Sessions)
	case p.Age != nil && *p.Age < 0:
		return p, fmt.Errorf("--age must not be negative, got %d", *p.Age)
	case p.YearsInCountry != nil && *p.YearsInCountry < 0:
		return p, fmt.Errorf("--years must not be negative, got %d", *p.YearsInCountry)
	}
	return p, nil
}

func addPlanFlags(cmd *cobra.Command) {
	addProfileFlags(cmd)

	f := cmd.Flags()
	f.String("mode", "", "Override the recommended mode")
	f.String("difficulty", "", "Override the recommended difficulty tier")
	f.String("scenario", "", "Override the recommended scenario")
	f.Bool("random-scenario", false, "Pick a random scenario")

	// Custom mode.
	f.StringSlice("categories", nil, "Civics categories for custom mode")
	f.Int("questions", 10, "Civics question count for custom mode")
	f.Bool("include-n400", false, "Include N-400 review in custom mode")
	f.Bool("include-reading", false, "Include the reading test in custom mode")
	f.Bool("include-writing", false, "Include the writing test in custom mode")
	f.Int("time-limit", 0, "Time limit in minutes for custom mode")
	f.StringSlice("focus", nil, "Focus areas for custom mode")

	f.Bool("no-record", false, "Do not save the plan to history")
}

// planRequestFromFlags builds a session.Request. Custom settings are only
// attached for the custom mode or when a custom-only flag was given.
func planRequestFromFlags(cmd *cobra.Command) (session.Request, error) {
	f := cmd.Flags()
	profile, err := profileFromFlags(cmd)
	if err != nil {
		return session.Request{}, err
	}
	req := session.Request{Profile: profile}

	if v, _ := f.GetString("mode"); v != "" {
		id, err := catalog.ParseModeID(v)
		if err != nil {
			return req, err
		}
		req.Mode = &id
	}
	if v, _ := f.GetString("difficulty"); v != "" {
		id, err := catalog.ParseDifficultyID(v)
		if err != nil {
			return req, err
		}
		req.Difficulty = &id
	}

	random, _ := f.GetBool("random-scenario")
	if v, _ := f.GetString("scenario"); v != "" {
		if random {
			return req, fmt.Errorf("--scenario and --random-scenario are mutually exclusive")
		}
		id, err := scenario.Parse(v)
		if err != nil {
			return req, err
		}
		req.Scenario = &id
	} else if random {
		id := scenario.Random(nil).ID
		req.Scenario = &id
	}

	customFlags := []string{"categories", "questions", "include-n400", "include-reading", "include-writing", "time-limit", "focus"}
	wantCustom := req.Mode != nil && *req.Mode == catalog.ModeCustom
	for _, name := range customFlags {
		if f.Changed(name) {
			wantCustom = true
		}
	}
	if wantCustom {
		req.Custom = customSettingsFromFlags(cmd)
	}
	return req, nil
}

func customSettingsFromFlags(cmd *cobra.Command) *custom.Settings {
	f := cmd.Flags()
	s := &custom.Settings{}

	cats, _ := f.GetStringSlice("categories")
	for _, c := range cats {
		s.Categories = append(s.Categories, custom.Category(strings.TrimSpace(c)))
	}
	s.QuestionCount, _ = f.GetInt("questions")
	s.IncludeN400, _ = f.GetBool("include-n400")
	s.IncludeReading, _ = f.GetBool("include-reading")
	s.IncludeWriting, _ = f.GetBool("include-writing")
	s.FocusAreas, _ = f.GetStringSlice("focus")
	if f.Changed("time-limit") {
		v, _ := f.GetInt("time-limit")
		s.TimeLimitMins = &v
	}
	// The tier flag doubles as the custom difficulty.
	if v, _ := f.GetString("difficulty"); v != "" {
		s.Difficulty = catalog.DifficultyID(v)
	}
	return s
}
