package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/craftlane/storefront-service/internal/domain"
	promodto "github.com/craftlane/storefront-service/internal/usecase/dto/promotion"
)

func validCreateInput() *promodto.CreatePromotionInput {
	now := time.Now().UTC()
	return &promodto.CreatePromotionInput{
		MerchantID:       "merchant-a",
		Kind:             string(domain.KindLimitedOffer),
		ReductionPercent: 20,
		ValidFrom:        now,
		ValidTo:          now.Add(72 * time.Hour),
		Scope:            string(domain.ScopeEntireCart),
		AutoDisplay:      true,
	}
}

func TestCreatePromotion(t *testing.T) {
	repo := &fakePromotionRepo{}
	uc := NewDefaultPromotionUsecase(repo)

	created, err := uc.CreatePromotion(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Error("expected a generated id")
	}
	if !created.Active {
		t.Error("new promotions start active")
	}
	if len(repo.promotions) != 1 {
		t.Errorf("expected one stored promotion, got %d", len(repo.promotions))
	}
}

func TestCreatePromotion_Validation(t *testing.T) {
	uc := NewDefaultPromotionUsecase(&fakePromotionRepo{})
	ctx := context.Background()

	cases := []struct {
		name    string
		mutate  func(*promodto.CreatePromotionInput)
		wantErr error
	}{
		{"unknown kind", func(in *promodto.CreatePromotionInput) { in.Kind = "BOGOF" }, domain.ErrInvalidKind},
		{"unknown scope", func(in *promodto.CreatePromotionInput) { in.Scope = "REGIONS" }, domain.ErrInvalidScope},
		{"percent too high", func(in *promodto.CreatePromotionInput) { in.ReductionPercent = 101 }, domain.ErrInvalidReduction},
		{"negative percent", func(in *promodto.CreatePromotionInput) { in.ReductionPercent = -1 }, domain.ErrInvalidReduction},
		{"inverted window", func(in *promodto.CreatePromotionInput) {
			in.ValidFrom = in.ValidTo.Add(time.Hour)
		}, domain.ErrInvalidWindow},
		{"code kind without code", func(in *promodto.CreatePromotionInput) {
			in.Kind = string(domain.KindCode)
			in.Code = ""
		}, domain.ErrCodeRequired},
	}

	for _, tc := range cases {
		input := validCreateInput()
		tc.mutate(input)
		if _, err := uc.CreatePromotion(ctx, input); err != tc.wantErr {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.wantErr, err)
		}
	}
}

func TestDeactivatePromotion(t *testing.T) {
	repo := &fakePromotionRepo{}
	uc := NewDefaultPromotionUsecase(repo)
	ctx := context.Background()

	created, err := uc.CreatePromotion(ctx, validCreateInput())
	if err != nil {
		t.Fatal(err)
	}

	if err := uc.DeactivatePromotion(ctx, created.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	got, _ := repo.GetPromotionByID(ctx, created.ID)
	if got.Active {
		t.Error("promotion must be inactive after deactivation")
	}

	// deactivating twice is idempotent
	if err := uc.DeactivatePromotion(ctx, created.ID); err != nil {
		t.Errorf("second deactivation must be a no-op, got %v", err)
	}

	if err := uc.DeactivatePromotion(ctx, "ghost"); err != domain.ErrPromotionNotFound {
		t.Errorf("expected ErrPromotionNotFound, got %v", err)
	}
}

func TestDeactivateExpired(t *testing.T) {
	now := time.Now().UTC()
	repo := &fakePromotionRepo{promotions: []*domain.Promotion{
		{ID: "p1", MerchantID: "m", Active: true, ValidTo: now.Add(-time.Hour)},
		{ID: "p2", MerchantID: "m", Active: true, ValidTo: now.Add(time.Hour)},
	}}
	uc := NewDefaultPromotionUsecase(repo)

	n, err := uc.DeactivateExpired(context.Background(), now)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if n != 1 {
		t.Errorf("expected one expired promotion swept, got %d", n)
	}
}
