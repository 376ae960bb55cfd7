package profiles

import (
	"context"
	"testing"
)

func TestGetReturnsEmptyProfileWhenUnset(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	p, err := svc.Get(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.UserID != "user-1" || p.FullName != "" {
		t.Fatalf("expected empty profile, got %+v", p)
	}
}

func TestSaveThenGetRoundTrips(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	saved, err := svc.Save(context.Background(), "user-1", Profile{
		FullName:    "  Jane Doe ",
		DesiredRole: "Staff Engineer",
		CareerGoal:  "Lead a platform team",
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.FullName != "Jane Doe" {
		t.Fatalf("expected trimmed name, got %q", saved.FullName)
	}

	got, err := svc.Get(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.DesiredRole != "Staff Engineer" || got.CareerGoal != "Lead a platform team" {
		t.Fatalf("unexpected profile: %+v", got)
	}
}

func TestSaveReplacesExistingProfile(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	if _, err := svc.Save(context.Background(), "user-1", Profile{FullName: "Jane", DesiredRole: "SRE"}); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	if _, err := svc.Save(context.Background(), "user-1", Profile{FullName: "Jane"}); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	got, err := svc.Get(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.DesiredRole != "" {
		t.Fatalf("expected desired role cleared by full replace, got %q", got.DesiredRole)
	}
}

func TestHintsForMapsProfileFields(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	if _, err := svc.Save(context.Background(), "user-1", Profile{
		FullName:         "Jane Doe",
		DesiredRole:      "Backend Engineer",
		CareerMotivation: "Build reliable systems",
		CareerGoal:       "Grow into staff",
	}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	hints, err := svc.HintsFor(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("HintsFor: %v", err)
	}
	if hints.FullName != "Jane Doe" || hints.DesiredRole != "Backend Engineer" ||
		hints.CareerMotivation != "Build reliable systems" || hints.CareerGoal != "Grow into staff" {
		t.Fatalf("unexpected hints: %+v", hints)
	}
}
