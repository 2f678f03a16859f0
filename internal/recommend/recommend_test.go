package recommend

import (
	"testing"

	"github.com/abhisek/citizenprep/internal/catalog"
	"github.com/abhisek/citizenprep/internal/scenario"
)

func ptr(n int) *int { return &n }

func TestScenario_Precedence(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		want    scenario.ID
	}{
		{"senior beats military", Profile{Age: ptr(70), YearsInCountry: ptr(25), IsMilitary: true}, scenario.Senior65Plus},
		{"senior beats everything", Profile{Age: ptr(65), YearsInCountry: ptr(20), IsMilitary: true, HasTravel: true, HasEmploymentGaps: true}, scenario.Senior65Plus},
		{"senior age without years", Profile{Age: ptr(70), YearsInCountry: ptr(19)}, scenario.LongResidence},
		{"senior age with unknown years", Profile{Age: ptr(80)}, scenario.FirstTimeStandard},
		{"military beats travel", Profile{IsMilitary: true, HasTravel: true}, scenario.MilitaryService},
		{"travel beats employment", Profile{HasTravel: true, HasEmploymentGaps: true}, scenario.ComplexTravel},
		{"employment beats tenure", Profile{HasEmploymentGaps: true, YearsInCountry: ptr(3)}, scenario.EmploymentGaps},
		{"recent arrival", Profile{YearsInCountry: ptr(6)}, scenario.RecentArrival},
		{"recent arrival zero years", Profile{YearsInCountry: ptr(0)}, scenario.RecentArrival},
		{"middle tenure", Profile{YearsInCountry: ptr(10)}, scenario.FirstTimeStandard},
		{"long residence", Profile{YearsInCountry: ptr(15)}, scenario.LongResidence},
		{"all absent", Profile{}, scenario.FirstTimeStandard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Scenario(tt.profile); got != tt.want {
				t.Errorf("Scenario() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Every combination of the profile fields resolves to a registered scenario.
func TestScenario_Total(t *testing.T) {
	members := make(map[scenario.ID]bool)
	for _, id := range scenario.IDs() {
		members[id] = true
	}

	ages := []*int{nil, ptr(30), ptr(65), ptr(90)}
	years := []*int{nil, ptr(0), ptr(6), ptr(10), ptr(15), ptr(20), ptr(40)}
	flags := []bool{false, true}

	for _, age := range ages {
		for _, yrs := range years {
			for _, travel := range flags {
				for _, gaps := range flags {
					for _, mil := range flags {
						p := Profile{Age: age, YearsInCountry: yrs, HasTravel: travel, HasEmploymentGaps: gaps, IsMilitary: mil}
						id := Scenario(p)
						if !members[id] {
							t.Fatalf("Scenario(%+v) = %q, not a registered scenario", p, id)
						}
					}
				}
			}
		}
	}
}

func TestMode(t *testing.T) {
	tests := []struct {
		accuracy float64
		sessions int
		want     catalog.ModeID
	}{
		{50, 1, catalog.ModeConfidence},
		{95, 2, catalog.ModeConfidence},
		{59.9, 3, catalog.ModeConfidence},
		{60, 3, catalog.ModeFull},
		{75, 10, catalog.ModeFull},
		{80, 10, catalog.ModeStress},
		{85, 10, catalog.ModeStress},
	}
	for _, tt := range tests {
		if got := Mode(tt.accuracy, tt.sessions); got != tt.want {
			t.Errorf("Mode(%v, %d) = %q, want %q", tt.accuracy, tt.sessions, got, tt.want)
		}
	}
}

func TestDifficulty(t *testing.T) {
	tests := []struct {
		accuracy float64
		sessions int
		want     catalog.DifficultyID
	}{
		{50, 1, catalog.DifficultyBeginner},
		{99, 4, catalog.DifficultyBeginner},
		{69, 5, catalog.DifficultyBeginner},
		{70, 5, catalog.DifficultyIntermediate},
		{80, 5, catalog.DifficultyAdvanced},
		{89.5, 8, catalog.DifficultyAdvanced},
		{90, 8, catalog.DifficultyExpert},
		{95, 10, catalog.DifficultyExpert},
	}
	for _, tt := range tests {
		if got := Difficulty(tt.accuracy, tt.sessions); got != tt.want {
			t.Errorf("Difficulty(%v, %d) = %q, want %q", tt.accuracy, tt.sessions, got, tt.want)
		}
	}
}

func TestOutOfRangeInputsAcceptedAsGiven(t *testing.T) {
	if got := Mode(-10, 10); got != catalog.ModeConfidence {
		t.Errorf("Mode(-10, 10) = %q, want confidence", got)
	}
	if got := Difficulty(150, 10); got != catalog.DifficultyExpert {
		t.Errorf("Difficulty(150, 10) = %q, want expert", got)
	}
	if got := Mode(90, -1); got != catalog.ModeConfidence {
		t.Errorf("Mode(90, -1) = %q, want confidence", got)
	}
}

func TestRecommend(t *testing.T) {
	rec := Recommend(Profile{HasTravel: true, Accuracy: 85, Sessions: 12})
	if rec.Scenario != scenario.ComplexTravel || rec.Rule != RuleTravel {
		t.Errorf("scenario = %q (%s), want complex_travel (travel)", rec.Scenario, rec.Rule)
	}
	if rec.Mode != catalog.ModeStress {
		t.Errorf("mode = %q, want stress", rec.Mode)
	}
	if rec.Difficulty != catalog.DifficultyAdvanced {
		t.Errorf("difficulty = %q, want advanced", rec.Difficulty)
	}

	if rec := Recommend(Profile{}); rec.Rule != RuleDefault {
		t.Errorf("empty profile rule = %q, want default", rec.Rule)
	}
}
