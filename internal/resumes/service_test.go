package resumes

import (
	"context"
	"errors"
	"strings"
	"testing"

	"resume-builder/internal/llm"
	"resume-builder/internal/resume"
	"resume-builder/internal/search"
)

type fakeLLM struct {
	doc    resume.Document
	letter string
	err    error
}

func (f fakeLLM) GenerateResume(ctx context.Context, input llm.GenerateResumeInput) (resume.Document, error) {
	if f.err != nil {
		return resume.Document{}, f.err
	}
	return f.doc, nil
}

func (f fakeLLM) GenerateCoverLetter(ctx context.Context, input llm.CoverLetterInput) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.letter, nil
}

func testDocument() resume.Document {
	return resume.Document{
		FullName: "Jane Doe",
		Contact:  &resume.Contact{Email: "j@x.com", Phone: "555-1111"},
		Summary:  "Backend engineer with Postgres experience.",
		Skills:   []string{"Go", "Postgres"},
	}.Normalized()
}

func newTestService(t *testing.T, client llm.Client) *Service {
	t.Helper()
	idx, err := search.Open("")
	if err != nil {
		t.Fatalf("search.Open: %v", err)
	}
	t.Cleanup(func() { _ = idx.Close() })
	return &Service{
		Repo:   NewMemoryRepo(),
		LLM:    client,
		Search: idx,
	}
}

func TestGenerateStoresAndIndexes(t *testing.T) {
	svc := newTestService(t, fakeLLM{doc: testDocument()})

	rec, err := svc.Generate(context.Background(), "user-1", "I build backends.")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if rec.ID == "" {
		t.Fatal("expected generated id")
	}
	if !strings.HasPrefix(rec.Title, "Resume - ") {
		t.Fatalf("expected dated default title, got %q", rec.Title)
	}

	stored, err := svc.Get(context.Background(), "user-1", rec.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.Content.FullName != "Jane Doe" {
		t.Fatalf("unexpected stored content: %+v", stored.Content)
	}

	found, err := svc.FindByContent(context.Background(), "user-1", "postgres", 10)
	if err != nil {
		t.Fatalf("FindByContent: %v", err)
	}
	if len(found) != 1 || found[0].ID != rec.ID {
		t.Fatalf("expected generated resume in search results, got %+v", found)
	}
}

func TestGenerateRequiresBio(t *testing.T) {
	svc := newTestService(t, fakeLLM{doc: testDocument()})
	if _, err := svc.Generate(context.Background(), "user-1", "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGeneratePropagatesRateLimit(t *testing.T) {
	svc := newTestService(t, fakeLLM{err: &llm.ServiceError{Status: 429}})
	_, err := svc.Generate(context.Background(), "user-1", "bio")
	if !errors.Is(err, llm.ErrRateLimited) {
		t.Fatalf("expected rate limit to propagate, got %v", err)
	}
}

func TestApplyEditsIsAtomic(t *testing.T) {
	svc := newTestService(t, fakeLLM{doc: testDocument()})
	rec, err := svc.Generate(context.Background(), "user-1", "bio")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// Second edit targets a missing container, so the first must not land.
	_, err = svc.ApplyEdits(context.Background(), "user-1", rec.ID, []Edit{
		{Path: []string{"summary"}, Value: "Changed."},
		{Path: []string{"nope", "deep"}, Value: "x"},
	})
	if !errors.Is(err, resume.ErrBadPath) {
		t.Fatalf("expected ErrBadPath, got %v", err)
	}

	stored, err := svc.Get(context.Background(), "user-1", rec.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.Content.Summary != "Backend engineer with Postgres experience." {
		t.Fatalf("partial edit leaked into storage: %q", stored.Content.Summary)
	}

	updated, err := svc.ApplyEdits(context.Background(), "user-1", rec.ID, []Edit{
		{Path: []string{"summary"}, Value: "Changed."},
		{Path: []string{"contact", "email"}, Value: "new@x.com"},
	})
	if err != nil {
		t.Fatalf("ApplyEdits: %v", err)
	}
	if updated.Content.Summary != "Changed." || updated.Content.Contact.Email != "new@x.com" {
		t.Fatalf("edits not applied: %+v", updated.Content)
	}
}

func TestDeleteRemovesFromIndex(t *testing.T) {
	svc := newTestService(t, fakeLLM{doc: testDocument()})
	rec, err := svc.Generate(context.Background(), "user-1", "bio")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if err := svc.Delete(context.Background(), "user-1", rec.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), "user-1", rec.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	found, err := svc.FindByContent(context.Background(), "user-1", "postgres", 10)
	if err != nil {
		t.Fatalf("FindByContent: %v", err)
	}
	if len(found) != 0 {
		t.Fatalf("expected empty search results after delete, got %+v", found)
	}
}

func TestGetScopedToOwner(t *testing.T) {
	svc := newTestService(t, fakeLLM{doc: testDocument()})
	rec, err := svc.Generate(context.Background(), "user-1", "bio")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := svc.Get(context.Background(), "user-2", rec.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for other user, got %v", err)
	}
}

func TestSaveUpdatesTitleOnly(t *testing.T) {
	svc := newTestService(t, fakeLLM{doc: testDocument()})
	rec, err := svc.Generate(context.Background(), "user-1", "bio")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	title := "Staff Engineer Resume"
	updated, err := svc.Save(context.Background(), "user-1", rec.ID, &title, nil)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if updated.Title != title {
		t.Fatalf("expected title %q, got %q", title, updated.Title)
	}
	if updated.Content.FullName != rec.Content.FullName {
		t.Fatalf("content changed on title-only save: %+v", updated.Content)
	}
	if !updated.UpdatedAt.After(rec.UpdatedAt) && !updated.UpdatedAt.Equal(rec.UpdatedAt) {
		t.Fatalf("UpdatedAt went backwards: %v -> %v", rec.UpdatedAt, updated.UpdatedAt)
	}
}
