package mealplan

import "context"

// PreviewLookup reports whether an email has already received a free preview
// plan. The store implements it; the assembler stays free of persistence.
type PreviewLookup interface {
	HasFreePlanForEmail(ctx context.Context, email string, excludeBundleID string) (bool, error)
}

// CanGrantPreview applies the free-tier rule: one preview per email across
// all categories. A bundle that already holds a preview keeps it; a paid
// bundle is never blocked.
func CanGrantPreview(ctx context.Context, b *Bundle, lookup PreviewLookup) (bool, error) {
	if b.Preview != nil || b.Paid {
		return true, nil
	}
	if lookup == nil || b.Email == "" {
		return true, nil
	}
	used, err := lookup.HasFreePlanForEmail(ctx, b.Email, b.ID)
	if err != nil {
		return false, err
	}
	return !used, nil
}
