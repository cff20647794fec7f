package mealplan

import (
	"context"
	"errors"
	"testing"
)

type stubPreviewLookup struct {
	used bool
	err  error
}

func (s *stubPreviewLookup) HasFreePlanForEmail(ctx context.Context, email, excludeBundleID string) (bool, error) {
	return s.used, s.err
}

func TestCanGrantPreview(t *testing.T) {
	ctx := context.Background()

	t.Run("FirstPreviewAllowed", func(t *testing.T) {
		ok, err := CanGrantPreview(ctx, &Bundle{ID: "b1", Email: "a@b.com"}, &stubPreviewLookup{used: false})
		if err != nil || !ok {
			t.Errorf("Expected preview to be allowed, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("SecondPreviewBlockedAcrossCategories", func(t *testing.T) {
		ok, err := CanGrantPreview(ctx, &Bundle{ID: "b2", Email: "a@b.com"}, &stubPreviewLookup{used: true})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if ok {
			t.Error("Expected a second preview for the same email to be blocked")
		}
	})

	t.Run("ExistingPreviewIsIdempotent", func(t *testing.T) {
		b := &Bundle{ID: "b3", Email: "a@b.com", Preview: &Plan{}}
		ok, err := CanGrantPreview(ctx, b, &stubPreviewLookup{used: true})
		if err != nil || !ok {
			t.Errorf("Expected re-request of an existing preview to pass, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("PaidBundleNeverBlocked", func(t *testing.T) {
		ok, err := CanGrantPreview(ctx, &Bundle{ID: "b4", Email: "a@b.com", Paid: true}, &stubPreviewLookup{used: true})
		if err != nil || !ok {
			t.Errorf("Expected paid bundle to pass, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("LookupErrorPropagated", func(t *testing.T) {
		wantErr := errors.New("db down")
		_, err := CanGrantPreview(ctx, &Bundle{ID: "b5", Email: "a@b.com"}, &stubPreviewLookup{err: wantErr})
		if !errors.Is(err, wantErr) {
			t.Errorf("Expected the lookup error, got %v", err)
		}
	})
}
