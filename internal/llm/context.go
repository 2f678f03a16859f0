package llm

import "context"

type purposeKey struct{}

type planIDKey struct{}

// WithPurpose labels requests made with ctx, e.g. "officer-reply". The label
// is recorded with each LLM request event.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the purpose label, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok && v != "" {
		return v
	}
	return "unknown"
}

// WithPlanID ties requests made with ctx to a session plan.
func WithPlanID(ctx context.Context, planID string) context.Context {
	return context.WithValue(ctx, planIDKey{}, planID)
}

// PlanIDFrom returns the plan ID attached to ctx, or "".
func PlanIDFrom(ctx context.Context) string {
	v, _ := ctx.Value(planIDKey{}).(string)
	return v
}
