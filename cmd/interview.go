package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/citizenprep/internal/interview"
	"github.com/abhisek/citizenprep/internal/llm"
	"github.com/abhisek/citizenprep/internal/store"
	"github.com/abhisek/citizenprep/internal/ui/theme"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Practice an interview against the configured LLM officer",
	Long: `Build a session plan and hand it to the configured LLM provider, which
plays the USCIS officer. Type your answers; an empty line or "quit" ends the
session.

The provider is chosen by CITIZENPREP_LLM_PROVIDER or, when unset, by the
first of GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY or
OPENROUTER_API_KEY found in the environment.`,
	RunE: runInterview,
}

func init() {
	addPlanFlags(interviewCmd)
}

func runInterview(cmd *cobra.Command, args []string) error {
	llmCfg := cfg.LLM
	if !llmCfg.Discover() {
		return fmt.Errorf("no LLM provider configured: set CITIZENPREP_LLM_PROVIDER or a provider API key")
	}

	plan, s, err := buildPlan(cmd)
	if err != nil {
		return err
	}
	// LLM events go to the same database as the plan unless recording is off.
	var events store.EventRepo
	if s != nil {
		defer s.Close()
		events = s.EventRepo()
	}

	out := cmd.OutOrStdout()
	printPlan(out, plan, false)
	fmt.Fprintln(out)

	provider, err := llm.NewProvider(cmd.Context(), llmCfg, events, log)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}
	log.Info("interview starting",
		zap.String("provider", llmCfg.Provider),
		zap.String("model", provider.ModelID()),
		zap.Stringer("plan_id", plan.ID))

	conductor := interview.NewConductor(provider, llmCfg.Timeout, log).
		WithCompressor(interview.NewCompressor(provider, cfg.Interview))
	ctx := cmd.Context()

	opening, err := conductor.Open(ctx, plan)
	if err != nil {
		return err
	}
	first := opening.Greeting + " " + opening.FirstQuestion
	fmt.Fprintf(out, "%s %s\n", theme.Title.Render("Officer:"), first)

	history := &interview.History{}
	history.Add(interview.Officer, first)
	turns := 1

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, theme.Label.Render("You: "))
		if !scanner.Scan() {
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" || strings.EqualFold(answer, "quit") {
			break
		}
		history.Add(interview.Applicant, answer)

		reply, err := conductor.Continue(ctx, plan, history)
		if err != nil {
			return err
		}
		turns += 2
		fmt.Fprintf(out, "%s %s\n", theme.Title.Render("Officer:"), reply)
	}

	fmt.Fprintln(out, theme.Hint.Render(fmt.Sprintf("Session ended after %d turns.", turns)))
	return scanner.Err()
}
