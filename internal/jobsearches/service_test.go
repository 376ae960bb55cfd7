package jobsearches

import (
	"context"
	"errors"
	"testing"
)

func TestSaveAndListNewestFirst(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	if _, err := svc.Save(context.Background(), "user-1", "Backend Engineer", "Berlin"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	second, err := svc.Save(context.Background(), "user-1", "SRE", "")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	searches, err := svc.List(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(searches) != 2 {
		t.Fatalf("expected 2 searches, got %d", len(searches))
	}
	if searches[0].ID != second.ID && !searches[0].CreatedAt.Equal(searches[1].CreatedAt) {
		t.Fatalf("expected newest first, got %+v", searches)
	}
}

func TestSaveRequiresJobTitle(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	if _, err := svc.Save(context.Background(), "user-1", "  ", "Berlin"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDeleteScopedToOwner(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	search, err := svc.Save(context.Background(), "user-1", "Backend Engineer", "")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := svc.Delete(context.Background(), "user-2", search.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for other user, got %v", err)
	}
	if err := svc.Delete(context.Background(), "user-1", search.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	searches, err := svc.List(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(searches) != 0 {
		t.Fatalf("expected empty list after delete, got %+v", searches)
	}
}
