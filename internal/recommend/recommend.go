// Package recommend maps a learner's history to a scenario, mode and
// difficulty tier.
//
// All functions are pure. Accuracy is a percentage in [0, 100] and sessions
// a non-negative count; values outside those ranges are used as given and
// callers are expected to clamp them at the boundary.
package recommend

import (
	"github.com/abhisek/citizenprep/internal/catalog"
	"github.com/abhisek/citizenprep/internal/scenario"
)

// Profile is a snapshot of the learner supplied by the progress store.
// Nil numeric fields never satisfy a rule.
type Profile struct {
	Age               *int
	YearsInCountry    *int
	HasTravel         bool
	HasEmploymentGaps bool
	IsMilitary        bool

	Accuracy float64
	Sessions int
}

// Rule names the scenario rule that matched.
type Rule string

const (
	RuleSenior         Rule = "senior"
	RuleMilitary       Rule = "military"
	RuleTravel         Rule = "travel"
	RuleEmploymentGaps Rule = "employment-gaps"
	RuleRecentArrival  Rule = "recent-arrival"
	RuleLongResidence  Rule = "long-residence"
	RuleDefault        Rule = "default"
)

// Thresholds used by the scenario decision list.
const (
	SeniorAge           = 65
	SeniorYears         = 20
	RecentArrivalMaxYrs = 6
	LongResidenceMinYrs = 15
)

type scenarioRule struct {
	rule     Rule
	scenario scenario.ID
	match    func(Profile) bool
}

// scenarioRules is evaluated top to bottom; the first match wins.
// Senior eligibility is a legal accommodation and always comes first.
var scenarioRules = []scenarioRule{
	{RuleSenior, scenario.Senior65Plus, func(p Profile) bool {
		return atLeast(p.Age, SeniorAge) && atLeast(p.YearsInCountry, SeniorYears)
	}},
	{RuleMilitary, scenario.MilitaryService, func(p Profile) bool { return p.IsMilitary }},
	{RuleTravel, scenario.ComplexTravel, func(p Profile) bool { return p.HasTravel }},
	{RuleEmploymentGaps, scenario.EmploymentGaps, func(p Profile) bool { return p.HasEmploymentGaps }},
	{RuleRecentArrival, scenario.RecentArrival, func(p Profile) bool {
		return atMost(p.YearsInCountry, RecentArrivalMaxYrs)
	}},
	{RuleLongResidence, scenario.LongResidence, func(p Profile) bool {
		return atLeast(p.YearsInCountry, LongResidenceMinYrs)
	}},
}

// Scenario returns the scenario for a profile.
func Scenario(p Profile) scenario.ID {
	id, _ := matchScenario(p)
	return id
}

func matchScenario(p Profile) (scenario.ID, Rule) {
	for _, r := range scenarioRules {
		if r.match(p) {
			return r.scenario, r.rule
		}
	}
	return scenario.FirstTimeStandard, RuleDefault
}

// Mode returns the practice mode for the learner's accuracy and session count.
func Mode(accuracy float64, sessions int) catalog.ModeID {
	switch {
	case sessions < 3:
		return catalog.ModeConfidence
	case accuracy < 60:
		return catalog.ModeConfidence
	case accuracy < 80:
		return catalog.ModeFull
	default:
		return catalog.ModeStress
	}
}

// Difficulty returns the tier for the learner's accuracy and session count.
func Difficulty(accuracy float64, sessions int) catalog.DifficultyID {
	switch {
	case sessions < 5:
		return catalog.DifficultyBeginner
	case accuracy < 70:
		return catalog.DifficultyBeginner
	case accuracy < 80:
		return catalog.DifficultyIntermediate
	case accuracy < 90:
		return catalog.DifficultyAdvanced
	default:
		return catalog.DifficultyExpert
	}
}

// Recommendation bundles the three selections for a profile.
type Recommendation struct {
	Scenario   scenario.ID
	Mode       catalog.ModeID
	Difficulty catalog.DifficultyID

	// Rule is the scenario rule that produced Scenario.
	Rule Rule
}

// Recommend runs all three selections.
func Recommend(p Profile) Recommendation {
	id, rule := matchScenario(p)
	return Recommendation{
		Scenario:   id,
		Mode:       Mode(p.Accuracy, p.Sessions),
		Difficulty: Difficulty(p.Accuracy, p.Sessions),
		Rule:       rule,
	}
}

func atLeast(v *int, n int) bool { return v != nil && *v >= n }

func atMost(v *int, n int) bool { return v != nil && *v <= n }
