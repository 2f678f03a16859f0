package scenario

import (
	"github.com/abhisek/citizenprep/internal/catalog"
	"github.com/abhisek/citizenprep/internal/custom"
)

var scenarios = []Scenario{
	{
		ID:          FirstTimeStandard,
		Name:        "First-Time Applicant",
		Description: "A typical applicant with a straightforward history attending their first interview.",
		Applicant: ApplicantProfile{
			AgeRange:   Range{Min: 25, Max: 55},
			YearsRange: Range{Min: 5, Max: 15},
			Background: "Lawful permanent resident with steady employment and no unusual history.",
			Challenges: []string{"Interview nerves", "Unfamiliar with the interview format"},
			Strengths:  []string{"Simple application history", "Conversational English"},
		},
		PromptFragment: "The applicant is attending their first naturalization interview. Their application is straightforward, so conduct a standard interview and keep the tone professional and neutral.",
		N400Focus: []string{
			"What is your full legal name?",
			"What is your current home address?",
			"How long have you lived at this address?",
			"Who is your current employer?",
			"Are you married?",
			"Have you ever claimed to be a U.S. citizen?",
		},
		CoachingFocus: []string{
			"Answer only the question that was asked",
			"Ask the officer to repeat a question if unsure",
			"Bring every document listed on the appointment notice",
		},
		RecommendedDifficulty: catalog.DifficultyIntermediate,
		SpecialConsiderations: []string{"None beyond the standard interview"},
		EstimatedMins:         20,
		Icon:                  "🗽",
		Color:                 "#2563EB",
	},
	{
		ID:          Senior65Plus,
		Name:        "Senior Applicant (65/20)",
		Description: "An applicant aged 65 or older with at least 20 years of permanent residence.",
		Applicant: ApplicantProfile{
			AgeRange:   Range{Min: 65},
			YearsRange: Range{Min: 20},
			Background: "Long-time permanent resident who qualifies for the 65/20 special consideration.",
			Challenges: []string{"Memory of dates and addresses", "Hearing or vision difficulties"},
			Strengths:  []string{"Deep ties to the community", "Long, stable residence"},
		},
		PromptFragment: "The applicant is 65 or older and has been a permanent resident for 20 or more years. They qualify for the 65/20 exemption: they may take the civics test in their preferred language and only study the 20 designated civics questions. Speak slowly and clearly and allow extra time for answers.",
		N400Focus: []string{
			"When did you become a permanent resident?",
			"Where have you lived during the last five years?",
			"Are you retired? What was your last job?",
			"Do you have any children? Where do they live?",
			"Have you filed federal income tax returns?",
		},
		Civics: &CivicsPreferences{
			PreferredCategories: []custom.Category{
				custom.CategoryAmericanGovernment,
				custom.CategorySymbolsAndHolidays,
			},
			AvoidTopics:   []string{"Multi-part history questions"},
			MaxDifficulty: catalog.DifficultyIntermediate,
		},
		CoachingFocus: []string{
			"Study the 20 designated 65/20 civics questions",
			"Bring notes of key dates such as your green card date",
			"Request an interpreter if eligible",
		},
		RecommendedDifficulty: catalog.DifficultyBeginner,
		SpecialConsiderations: []string{
			"Eligible to take the civics test in a native language",
			"Only the 20 designated civics questions are asked",
			"Exempt from the English reading and writing tests",
		},
		EstimatedMins: 25,
		Icon:          "👵",
		Color:         "#7C3AED",
	},
	{
		ID:          ComplexTravel,
		Name:        "Frequent Traveler",
		Description: "An applicant with many or long trips outside the United States.",
		Applicant: ApplicantProfile{
			AgeRange:   Range{Min: 25, Max: 60},
			YearsRange: Range{Min: 5, Max: 20},
			Background: "Travels abroad often for family or work, including at least one trip longer than six months.",
			Challenges: []string{"Recalling exact travel dates", "Questions about continuous residence"},
			Strengths:  []string{"Organized travel records"},
		},
		PromptFragment: "The applicant has traveled outside the United States frequently, including at least one extended trip. Probe trip dates, durations, and purposes, and confirm that continuous residence and physical presence requirements are met. Ask follow-up questions when answers are vague.",
		N400Focus: []string{
			"How many trips have you taken outside the United States in the last five years?",
			"Did any trip last six months or longer?",
			"What was the purpose of your longest trip?",
			"Did you maintain your home and job in the U.S. while abroad?",
			"Have you ever filed taxes as a nonresident?",
		},
		CoachingFocus: []string{
			"Prepare a written list of every trip with dates",
			"Explain long trips calmly and with evidence",
			"Be consistent with the dates on your N-400",
		},
		RecommendedDifficulty: catalog.DifficultyAdvanced,
		SpecialConsiderations: []string{
			"Trips over six months may break continuous residence",
			"Trips over one year require additional evidence",
		},
		EstimatedMins: 25,
		Icon:          "✈️",
		Color:         "#0891B2",
	},
	{
		ID:          MilitaryService,
		Name:        "Military Service Member",
		Description: "A current or former member of the U.S. armed forces applying under military provisions.",
		Applicant: ApplicantProfile{
			AgeRange:   Range{Min: 18, Max: 60},
			YearsRange: Range{Min: 0},
			Background: "Serving or has served honorably in the U.S. armed forces.",
			Challenges: []string{"Deployment affecting residence history", "Gathering service records"},
			Strengths:  []string{"Familiar with formal settings", "Documented service history"},
		},
		PromptFragment: "The applicant is applying based on service in the U.S. armed forces. Confirm their branch, dates of service, and character of discharge, and acknowledge that residence requirements may be reduced or waived for military applicants.",
		N400Focus: []string{
			"Which branch of the military did you serve in?",
			"What were your dates of service?",
			"Were you deployed outside the United States?",
			"Was your discharge honorable?",
			"Have you submitted Form N-426?",
		},
		CoachingFocus: []string{
			"Bring a certified Form N-426 and discharge papers",
			"Know your service dates exactly",
		},
		RecommendedDifficulty: catalog.DifficultyIntermediate,
		SpecialConsiderations: []string{
			"Residence and physical presence requirements may not apply",
			"Application fee is waived for military applicants",
		},
		EstimatedMins: 20,
		Icon:          "🎖️",
		Color:         "#15803D",
	},
	{
		ID:          EmploymentGaps,
		Name:        "Employment Gaps",
		Description: "An applicant whose work history includes unemployment or informal work.",
		Applicant: ApplicantProfile{
			AgeRange:   Range{Min: 25, Max: 60},
			YearsRange: Range{Min: 5, Max: 20},
			Background: "Has periods without formal employment in the last five years.",
			Challenges: []string{"Explaining gaps without sounding evasive", "Proving tax compliance"},
			Strengths:  []string{"Honest, direct answers"},
		},
		PromptFragment: "The applicant's employment history has gaps. Ask what they did during each gap, how they supported themselves, and whether they filed taxes. Assess good moral character without assuming wrongdoing.",
		N400Focus: []string{
			"What jobs have you held in the last five years?",
			"What did you do while you were not working?",
			"How did you support yourself during that time?",
			"Did you receive any public benefits?",
			"Have you filed all required tax returns?",
		},
		CoachingFocus: []string{
			"Describe each gap briefly and truthfully",
			"Bring tax transcripts for the last five years",
		},
		RecommendedDifficulty: catalog.DifficultyIntermediate,
		SpecialConsiderations: []string{"Tax filing history supports good moral character"},
		EstimatedMins:         20,
		Icon:                  "💼",
		Color:                 "#CA8A04",
	},
	{
		ID:          RecentArrival,
		Name:        "Recently Eligible",
		Description: "An applicant who has only just met the residence requirement.",
		Applicant: ApplicantProfile{
			AgeRange:   Range{Min: 20, Max: 50},
			YearsRange: Range{Min: 3, Max: 6},
			Background: "Became eligible recently, possibly through marriage to a U.S. citizen.",
			Challenges: []string{"Limited time to learn civics", "Still building English confidence"},
			Strengths:  []string{"Recent, well-organized paperwork"},
		},
		PromptFragment: "The applicant has only recently become eligible to naturalize. If they are applying through marriage to a U.S. citizen, confirm the marriage and the spouse's citizenship. Keep questions clear and check that eligibility dates are met.",
		N400Focus: []string{
			"When did you become a permanent resident?",
			"Are you applying based on marriage to a U.S. citizen?",
			"When did your spouse become a U.S. citizen?",
			"Do you and your spouse live together?",
			"Have you been outside the U.S. since you became a resident?",
		},
		CoachingFocus: []string{
			"Practice civics answers daily",
			"Review your green card and marriage certificate dates",
		},
		RecommendedDifficulty: catalog.DifficultyBeginner,
		SpecialConsiderations: []string{"Spouses of U.S. citizens may apply after three years"},
		EstimatedMins:         20,
		Icon:                  "🌅",
		Color:                 "#EA580C",
	},
	{
		ID:          LongResidence,
		Name:        "Long-Time Resident",
		Description: "An applicant who has lived in the United States for many years.",
		Applicant: ApplicantProfile{
			AgeRange:   Range{Min: 30, Max: 64},
			YearsRange: Range{Min: 15},
			Background: "Has lived in the U.S. for fifteen years or more and is well settled.",
			Challenges: []string{"Recalling older addresses and employers", "Overconfidence"},
			Strengths:  []string{"Strong English", "Familiar with American life"},
		},
		PromptFragment: "The applicant has lived in the United States for a long time and speaks English comfortably. Conduct a brisk, realistic interview and expect precise answers about their residence and employment history.",
		N400Focus: []string{
			"Why did you wait until now to apply?",
			"List your addresses for the last five years.",
			"Have you ever been arrested or cited by police?",
			"Have you ever registered to vote or voted in a U.S. election?",
			"Do you owe any overdue taxes?",
		},
		CoachingFocus: []string{
			"Do not rely on memory alone for dates",
			"Review questions about voting and claims to citizenship",
		},
		RecommendedDifficulty: catalog.DifficultyAdvanced,
		SpecialConsiderations: []string{"Older records may be requested for any past citations"},
		EstimatedMins:         20,
		Icon:                  "🏡",
		Color:                 "#9333EA",
	},
	{
		ID:          LanguageLearner,
		Name:        "English Learner",
		Description: "An applicant who is still developing spoken and written English.",
		Applicant: ApplicantProfile{
			AgeRange:   Range{Min: 18, Max: 64},
			YearsRange: Range{Min: 5},
			Background: "Meets residence requirements but uses English mostly in simple situations.",
			Challenges: []string{"Understanding fast speech", "Reading and writing tests"},
			Strengths:  []string{"Well prepared on civics content"},
		},
		PromptFragment: "The applicant is still learning English. Use short sentences and common words, and pause between questions. Focus on the English reading and writing tests and on understanding N-400 vocabulary such as \"moral character\" and \"continuous residence\".",
		N400Focus: []string{
			"What does \"good moral character\" mean?",
			"What is your date of birth?",
			"What country are you a citizen of?",
			"Have you ever been a member of a terrorist organization?",
			"Will you support the Constitution of the United States?",
		},
		Civics: &CivicsPreferences{
			PreferredCategories: []custom.Category{
				custom.CategoryAmericanGovernment,
				custom.CategoryIntegratedCivics,
			},
			MaxDifficulty: catalog.DifficultyIntermediate,
		},
		CoachingFocus: []string{
			"Learn the vocabulary used in yes/no N-400 questions",
			"Practice the official reading and writing word lists",
		},
		RecommendedDifficulty: catalog.DifficultyBeginner,
		SpecialConsiderations: []string{"Officers may rephrase questions to check understanding"},
		EstimatedMins:         25,
		Icon:                  "🗣️",
		Color:                 "#DB2777",
	},
}
